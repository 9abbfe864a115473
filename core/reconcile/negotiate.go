package reconcile

import (
	"context"

	"count-diff/core/upstream"

	"go.uber.org/zap"
)

// Negotiator retries full scans at smaller page sizes when a size yields
// nothing, which some upstream servers do despite reporting a total.
type Negotiator struct {
	scanner *Scanner
	sizes   []int
	logger  *zap.Logger
}

// NewNegotiator creates a negotiator trying sizes in order.
func NewNegotiator(scanner *Scanner, sizes []int, logger *zap.Logger) *Negotiator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Negotiator{scanner: scanner, sizes: sizes, logger: logger}
}

// ScanAllPages returns the first non-empty scan. When every size comes back
// empty for a positive total it returns an empty set marked Degraded.
func (n *Negotiator) ScanAllPages(ctx context.Context, src upstream.Source, total int) *MaterializedSet {
	if total <= 0 {
		return NewMaterializedSet(0)
	}

	var attempts []Attempt
	for _, size := range n.sizes {
		set := n.scanner.ScanAllPages(ctx, src, total, size)
		attempts = append(attempts, Attempt{
			PageSize: size,
			Pages:    set.PagesRequested(),
			Failed:   len(set.FailedPages),
			Records:  set.Len(),
		})

		if set.Len() > 0 {
			set.Attempts = attempts
			n.logger.Info("Source materialized",
				zap.String("source", src.String()),
				zap.Int("page_size", size),
				zap.Int("records", set.Len()),
				zap.Int("failed_pages", len(set.FailedPages)),
			)
			return set
		}

		n.logger.Warn("Page size returned no records, trying smaller size",
			zap.String("source", src.String()),
			zap.Int("page_size", size),
			zap.Int("failed_pages", len(set.FailedPages)),
		)
		if ctx.Err() != nil {
			break
		}
	}

	n.logger.Error("All page sizes returned no records",
		zap.String("source", src.String()),
		zap.Int("total", total),
	)
	empty := NewMaterializedSet(0)
	empty.Attempts = attempts
	empty.Degraded = true
	return empty
}
