package reconcile

import (
	"context"
	"fmt"
	"time"

	"count-diff/core/upstream"

	"go.uber.org/zap"
)

// Retrier wraps a Fetcher with bounded retries and linear backoff.
type Retrier struct {
	fetcher    upstream.Fetcher
	maxRetries int
	baseDelay  time.Duration
	logger     *zap.Logger
}

// NewRetrier creates a retrier making at most maxRetries+1 attempts per page.
func NewRetrier(fetcher upstream.Fetcher, maxRetries int, baseDelay time.Duration, logger *zap.Logger) *Retrier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Retrier{
		fetcher:    fetcher,
		maxRetries: max(maxRetries, 0),
		baseDelay:  baseDelay,
		logger:     logger,
	}
}

// FetchWithRetry fetches a page, waiting baseDelay*(attempt) between
// failures. Once attempts are exhausted it returns an error wrapping both
// ErrPageDegraded and the last failure; it never panics or aborts the scan.
func (r *Retrier) FetchWithRetry(ctx context.Context, src upstream.Source, page, size int) (*upstream.Page, error) {
	var lastErr error
	attempts := 0

	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		attempts++
		p, err := r.fetcher.Fetch(ctx, src, page, size)
		if err == nil {
			return p, nil
		}
		lastErr = err

		r.logger.Warn("Page fetch failed",
			zap.String("source", src.String()),
			zap.Int("page", page),
			zap.Int("page_size", size),
			zap.Int("attempt", attempt+1),
			zap.Error(err),
		)

		if attempt == r.maxRetries {
			break
		}
		if err := sleep(ctx, r.baseDelay*time.Duration(attempt+1)); err != nil {
			lastErr = err
			break
		}
	}

	return nil, fmt.Errorf("%w: %s page %d size %d after %d attempts: %w",
		ErrPageDegraded, src, page, size, attempts, lastErr)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
