package reconcile

import (
	"context"
	"fmt"
	"strings"

	"count-diff/core/upstream"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Engine compares two sources of the same kind.
// It holds no per-comparison state and is safe for concurrent use.
type Engine struct {
	cfg        Config
	totals     *TotalsCache
	scanner    *Scanner
	negotiator *Negotiator
	logger     *zap.Logger
}

// NewEngine wires the retry, scan and negotiation layers over fetcher.
func NewEngine(fetcher upstream.Fetcher, cfg Config, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg = cfg.withDefaults()

	retrier := NewRetrier(fetcher, cfg.MaxRetries, cfg.RetryBaseDelay, logger.Named("retry"))
	scanner := NewScanner(retrier, cfg.Concurrency, logger.Named("scanner"))

	return &Engine{
		cfg:        cfg,
		totals:     NewTotalsCache(fetcher, cfg.TotalsCacheTTL),
		scanner:    scanner,
		negotiator: NewNegotiator(scanner, cfg.PageSizes, logger.Named("negotiator")),
		logger:     logger,
	}
}

// Config returns the effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Totals exposes the totals cache used for the first-page lookups.
func (e *Engine) Totals() *TotalsCache {
	return e.totals
}

// Compare fetches both totals and, when they differ, scans the sources to
// find the records that explain the difference. Only a failure to read a
// total is returned as an error; page failures degrade the result instead.
func (e *Engine) Compare(ctx context.Context, left, right upstream.Source, opts Options) (*Result, error) {
	if left.Kind != right.Kind {
		return nil, fmt.Errorf("%w: %s vs %s", ErrKindMismatch, left.Kind, right.Kind)
	}
	if !left.Kind.Valid() {
		return nil, fmt.Errorf("%w: %q", upstream.ErrUnknownKind, left.Kind)
	}

	opts = e.cfg.resolve(opts)
	emit := opts.Progress
	if emit == nil {
		emit = func(ProgressEvent) {}
	}
	emit(ProgressEvent{State: StateInit})

	var total1, total2 int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := e.totals.Total(gctx, left)
		if err != nil {
			return &TotalsError{Source: left.String(), Err: err}
		}
		total1 = t
		return nil
	})
	g.Go(func() error {
		t, err := e.totals.Total(gctx, right)
		if err != nil {
			return &TotalsError{Source: right.String(), Err: err}
		}
		total2 = t
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	delta := total1 - total2
	emit(ProgressEvent{State: StateTotalsFetched, Total1: total1, Total2: total2})

	res := &Result{
		Service:    left.Kind,
		Mode:       opts.Mode,
		Total1:     total1,
		Total2:     total2,
		Difference: delta,
		OnlyIn1:    []upstream.DisplayRecord{},
		OnlyIn2:    []upstream.DisplayRecord{},
		Left:       SideReport{Source: left.String(), Total: total1, Loaded: true, FailedPages: []int{}},
		Right:      SideReport{Source: right.String(), Total: total2, Loaded: true, FailedPages: []int{}},
	}

	if delta == 0 {
		res.Status = StatusMatch
		res.Complete = true
		res.Explanation = explain(res)
		emit(ProgressEvent{State: StateMatched, Total1: total1, Total2: total2})
		emit(ProgressEvent{State: StateDone, Total1: total1, Total2: total2})
		return res, nil
	}

	e.logger.Info("Totals differ, scanning",
		zap.String("left", left.String()),
		zap.String("right", right.String()),
		zap.Int("total1", total1),
		zap.Int("total2", total2),
		zap.String("mode", string(opts.Mode)),
	)
	emit(ProgressEvent{State: StateScanning, Total1: total1, Total2: total2})

	var out scanOutcome
	if opts.Mode == ModeIncremental {
		out = e.incremental(ctx, left, right, total1, total2, opts, emit)
	} else {
		out = e.full(ctx, left, right, total1, total2)
	}

	e.fill(res, out)

	final := StateConverged
	if out.capped {
		final = StateCapped
	}
	emit(ProgressEvent{State: final, Total1: total1, Total2: total2, PagesScanned: res.PagesScanned, OnlyIn1: res.OnlyIn1Count, OnlyIn2: res.OnlyIn2Count})
	emit(ProgressEvent{State: StateDone, Total1: total1, Total2: total2, PagesScanned: res.PagesScanned, OnlyIn1: res.OnlyIn1Count, OnlyIn2: res.OnlyIn2Count})

	e.logger.Info("Comparison finished",
		zap.String("left", left.String()),
		zap.String("right", right.String()),
		zap.String("status", string(res.Status)),
		zap.Int("only_in_1", res.OnlyIn1Count),
		zap.Int("only_in_2", res.OnlyIn2Count),
		zap.Int("pages", res.PagesScanned),
		zap.Bool("complete", res.Complete),
	)
	return res, nil
}

// full materializes both sources concurrently through the negotiator.
func (e *Engine) full(ctx context.Context, left, right upstream.Source, total1, total2 int) scanOutcome {
	var ls, rs *MaterializedSet

	// Scans never fail; the group only joins them.
	var g errgroup.Group
	g.Go(func() error {
		ls = e.negotiator.ScanAllPages(ctx, left, total1)
		return nil
	})
	g.Go(func() error {
		rs = e.negotiator.ScanAllPages(ctx, right, total2)
		return nil
	})
	_ = g.Wait()

	pages := 0
	for _, set := range []*MaterializedSet{ls, rs} {
		for _, a := range set.Attempts {
			pages += a.Pages
		}
	}
	return scanOutcome{left: ls, right: rs, pages: pages, converged: true}
}

func (e *Engine) fill(res *Result, out scanOutcome) {
	d := Diff(out.left, out.right, res.Difference)
	res.Left = sideReport(res.Left, out.left)
	res.Right = sideReport(res.Right, out.right)

	// An empty diff only points at a duplicate when both sides were listed
	// in full.
	unlisted := out.capped || !res.Left.Loaded || !res.Right.Loaded
	if unlisted && d.Status == StatusDuplicate {
		d.Status = StatusUnexplained
		d.DuplicateHint = SideNone
		d.DuplicateSample = nil
	}

	res.OnlyIn1Count = len(d.OnlyIn1)
	res.OnlyIn2Count = len(d.OnlyIn2)
	res.OnlyIn1 = e.display(res.Service, d.OnlyIn1)
	res.OnlyIn2 = e.display(res.Service, d.OnlyIn2)
	res.DuplicateHint = d.DuplicateHint
	if d.DuplicateSample != nil {
		sample := res.Service.Format(d.DuplicateSample)
		res.DuplicateSample = &sample
	}
	res.PagesScanned = out.pages
	res.ItemsScanned = out.left.ItemsSeen() + out.right.ItemsSeen()
	res.Complete = !out.capped
	res.Status = d.Status
	res.Explanation = explain(res)
}

func (e *Engine) display(kind upstream.Kind, records []upstream.Record) []upstream.DisplayRecord {
	if e.cfg.DisplayLimit > 0 && len(records) > e.cfg.DisplayLimit {
		records = records[:e.cfg.DisplayLimit]
	}
	out := make([]upstream.DisplayRecord, 0, len(records))
	for _, r := range records {
		out = append(out, kind.Format(r))
	}
	return out
}

func sideReport(base SideReport, set *MaterializedSet) SideReport {
	base.Unique = set.Len()
	base.Duplicates = set.Duplicates
	base.PageSize = set.PageSize
	base.Attempts = set.Attempts
	if len(set.FailedPages) > 0 {
		base.FailedPages = set.FailedPages
	}
	base.Loaded = !set.Degraded && (base.Total <= 0 || set.Len() > 0)
	return base
}

func explain(res *Result) string {
	var parts []string
	for _, side := range []SideReport{res.Left, res.Right} {
		if !side.Loaded {
			parts = append(parts, "items could not be loaded from "+side.Source)
		}
	}

	switch res.Status {
	case StatusMatch:
		parts = append(parts, "totals match")
	case StatusDuplicate:
		parts = append(parts, fmt.Sprintf("no unique records found, the %s side counts a duplicate listing", res.DuplicateHint))
	case StatusExplained:
		parts = append(parts, "unique records account for the difference")
	case StatusUnexplained:
		parts = append(parts, "difference may be in ordering or unsynced data")
	}

	if !res.Complete {
		parts = append(parts, fmt.Sprintf("scan stopped after %d pages", res.PagesScanned))
	}
	return strings.Join(parts, "; ")
}
