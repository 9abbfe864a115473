// Package reconcile finds the records that explain why two servers report
// different totals for the same listing service.
//
// A comparison fetches page 1 at size 1 from both sources to learn their
// totals. Equal totals are reported as a match immediately. Otherwise the
// sources are scanned and their record sets compared by normalized link.
//
// # Architecture
//
// The package is layered, leaf to root:
//
// 1. Retrier: wraps upstream.Fetcher with bounded retries and linear backoff.
// A page that keeps failing yields ErrPageDegraded and contributes nothing.
//
// 2. Scanner: fetches all pages of one source in fixed-width concurrent
// batches. Each goroutine fills its own slot and the batch is merged into the
// MaterializedSet only after it joins, so the set never has concurrent writers.
//
// 3. Negotiator: re-runs the scan at smaller page sizes (100, 50, 20 by
// default) while a size yields no records, and marks the set Degraded when
// none do.
//
// 4. Diff: symmetric difference by key, classified as match, explained,
// duplicate (no unique records, delta blamed on one side's repeated listing)
// or unexplained.
//
// 5. Engine: Compare drives either the full strategy (negotiate both sides,
// diff once) or the incremental one (diff after every page, stop when the
// unique records account for the delta, cap at MaxPages).
//
// # Known Limitations
//
// The normalized path is assumed to identify a record on both servers. Two
// distinct items sharing a path would be treated as the same record.
// Classification assumes a single cause per comparison; when unique gaps and
// duplicates occur together only the unique records are reported.
//
// # Usage Example
//
//	client := upstream.NewClient(upstream.NewTransport(cfg.Upstream), cfg.Upstream.PageTimeout())
//	engine := reconcile.NewEngine(client, cfg.Compare, logger)
//
//	res, err := engine.Compare(ctx,
//	    upstream.Source{Domain: "s10-nacd1.dentons.com", Kind: upstream.KindNews},
//	    upstream.Source{Domain: "s10-eucd1.dentons.com", Kind: upstream.KindNews},
//	    reconcile.Options{Mode: reconcile.ModeIncremental, MaxPages: 120},
//	)
package reconcile
