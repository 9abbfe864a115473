package reconcile

import (
	"context"
	"sync"

	"count-diff/core/upstream"

	"go.uber.org/zap"
)

// Scanner materializes a source by fetching its pages in fixed-width batches.
type Scanner struct {
	retrier *Retrier
	width   int
	logger  *zap.Logger
}

// NewScanner creates a scanner with at most width concurrent page requests.
func NewScanner(retrier *Retrier, width int, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{retrier: retrier, width: max(width, 1), logger: logger}
}

// ScanAllPages fetches ceil(total/pageSize) pages. A batch starts only after
// the previous one has joined, and its results are merged in page order.
// Pages that fail every retry are recorded in FailedPages and skipped.
func (s *Scanner) ScanAllPages(ctx context.Context, src upstream.Source, total, pageSize int) *MaterializedSet {
	set := NewMaterializedSet(pageSize)
	if total <= 0 || pageSize <= 0 {
		return set
	}

	totalPages := pageCount(total, pageSize)
	for first := 1; first <= totalPages; first += s.width {
		if ctx.Err() != nil {
			s.logger.Warn("Scan interrupted",
				zap.String("source", src.String()),
				zap.Int("next_page", first),
				zap.Error(ctx.Err()),
			)
			break
		}
		n := min(s.width, totalPages-first+1)
		set.merge(s.fetchBatch(ctx, src, first, n, pageSize))
	}

	s.logger.Debug("Scan finished",
		zap.String("source", src.String()),
		zap.Int("page_size", pageSize),
		zap.Int("pages", totalPages),
		zap.Int("failed", len(set.FailedPages)),
		zap.Int("records", set.Len()),
	)
	return set
}

// fetchBatch fetches pages first..first+n-1 concurrently. Each goroutine
// writes only its own slot.
func (s *Scanner) fetchBatch(ctx context.Context, src upstream.Source, first, n, size int) []pageResult {
	results := make([]pageResult, n)

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			page := first + i
			p, err := s.retrier.FetchWithRetry(ctx, src, page, size)
			results[i] = pageResult{page: page, err: err}
			if p != nil {
				results[i].records = p.Records
			}
		}(i)
	}
	wg.Wait()

	return results
}

func pageCount(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}
