package reconcile

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"count-diff/core/upstream"
)

// dataset describes what one fake server returns.
type dataset struct {
	links      []string
	pages      [][]string
	total      int
	emptySizes map[int]bool
	failPages  map[int]bool
	failTotals bool
	delay      time.Duration
}

type fetchCall struct {
	domain string
	page   int
	size   int
}

// fakeFetcher serves datasets keyed by domain.
type fakeFetcher struct {
	data map[string]*dataset

	mu    sync.Mutex
	calls []fetchCall

	inflight    atomic.Int32
	maxInflight atomic.Int32
}

func newFakeFetcher(data map[string]*dataset) *fakeFetcher {
	return &fakeFetcher{data: data}
}

func paths(prefix string, from, to int) []string {
	out := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, fmt.Sprintf("%s/%d", prefix, i))
	}
	return out
}

func (f *fakeFetcher) Fetch(ctx context.Context, src upstream.Source, page, size int) (*upstream.Page, error) {
	n := f.inflight.Add(1)
	defer f.inflight.Add(-1)
	for {
		cur := f.maxInflight.Load()
		if n <= cur || f.maxInflight.CompareAndSwap(cur, n) {
			break
		}
	}

	f.mu.Lock()
	f.calls = append(f.calls, fetchCall{domain: src.Domain, page: page, size: size})
	d := f.data[src.Domain]
	f.mu.Unlock()

	if d == nil {
		return nil, errors.New("unknown domain")
	}
	if d.delay > 0 {
		time.Sleep(d.delay)
	}

	total := d.total
	if total == 0 {
		total = len(d.links)
	}

	if page == 1 && size == 1 {
		if d.failTotals {
			return nil, &upstream.FetchError{URL: src.Domain, Status: http.StatusBadGateway}
		}
		return &upstream.Page{Total: total}, nil
	}
	if d.failPages[page] {
		return nil, &upstream.FetchError{URL: src.Domain, Status: http.StatusServiceUnavailable}
	}
	if d.emptySizes[size] {
		return &upstream.Page{Total: total}, nil
	}

	var keys []string
	if d.pages != nil {
		if page-1 < len(d.pages) {
			keys = d.pages[page-1]
		}
	} else {
		start := (page - 1) * size
		end := min(start+size, len(d.links))
		if start < end {
			keys = d.links[start:end]
		}
	}

	records := make([]upstream.Record, 0, len(keys))
	for _, k := range keys {
		records = append(records, upstream.Record{
			"link":    "https://" + src.Domain + k,
			"heading": "Item " + k,
		})
	}
	return &upstream.Page{Total: total, Records: records}, nil
}

func (f *fakeFetcher) callsFor(domain string, page int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.domain == domain && c.page == page && c.size != 1 {
			n++
		}
	}
	return n
}

func (f *fakeFetcher) contentCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if !(c.page == 1 && c.size == 1) {
			n++
		}
	}
	return n
}

func testConfig() Config {
	return Config{
		Concurrency:    5,
		MaxRetries:     2,
		RetryBaseDelay: 0,
		PageSizes:      []int{100, 50, 20},
	}.withDefaults()
}
