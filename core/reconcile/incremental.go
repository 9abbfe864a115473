package reconcile

import (
	"context"
	"sync"

	"count-diff/core/upstream"

	"go.uber.org/zap"
)

// scanOutcome is what a scanning strategy hands back to the engine.
type scanOutcome struct {
	left      *MaterializedSet
	right     *MaterializedSet
	pages     int
	converged bool
	capped    bool
}

// incremental fetches the same page indexes from both sources, one window at
// a time, and re-evaluates the difference after every page. It stops as soon
// as the unique records account for delta, or at opts.MaxPages.
func (e *Engine) incremental(ctx context.Context, left, right upstream.Source, total1, total2 int, opts Options, emit ProgressFunc) scanOutcome {
	size := opts.BatchSize
	delta := total1 - total2
	totalPages := pageCount(max(total1, total2), size)
	limit := min(totalPages, opts.MaxPages)

	out := scanOutcome{
		left:  NewMaterializedSet(size),
		right: NewMaterializedSet(size),
	}

	for first := 1; first <= limit; first += e.cfg.Concurrency {
		if ctx.Err() != nil {
			break
		}
		n := min(e.cfg.Concurrency, limit-first+1)

		var lb, rb []pageResult
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			lb = e.scanner.fetchBatch(ctx, left, first, n, size)
		}()
		go func() {
			defer wg.Done()
			rb = e.scanner.fetchBatch(ctx, right, first, n, size)
		}()
		wg.Wait()

		for i := range n {
			out.left.mergePage(lb[i])
			out.right.mergePage(rb[i])
			out.pages++

			n1, n2 := uniqueCounts(out.left, out.right)
			emit(ProgressEvent{
				State:        StateScanning,
				Total1:       total1,
				Total2:       total2,
				PagesScanned: out.pages,
				OnlyIn1:      n1,
				OnlyIn2:      n2,
			})

			if n1-n2 == delta && n1+n2 > 0 {
				e.logger.Info("Difference explained early",
					zap.String("left", left.String()),
					zap.String("right", right.String()),
					zap.Int("pages", out.pages),
					zap.Int("pages_total", totalPages),
				)
				out.converged = true
				return out
			}
		}
	}

	out.capped = out.pages < totalPages
	return out
}
