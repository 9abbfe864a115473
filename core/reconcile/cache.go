package reconcile

import (
	"context"
	"sync"
	"time"

	"count-diff/core/upstream"

	"golang.org/x/sync/singleflight"
)

// cachedTotal is a total reported by one source at a point in time.
type cachedTotal struct {
	total int
	built time.Time
}

// TotalsCache reads first-page totals, optionally keeping them for a TTL.
// Concurrent lookups of the same source share a single upstream request.
type TotalsCache struct {
	fetcher upstream.Fetcher
	ttl     time.Duration

	mu      sync.RWMutex
	entries map[string]cachedTotal
	sf      singleflight.Group
}

// NewTotalsCache creates a cache over fetcher. A zero ttl disables caching
// but still deduplicates concurrent lookups.
func NewTotalsCache(fetcher upstream.Fetcher, ttl time.Duration) *TotalsCache {
	return &TotalsCache{
		fetcher: fetcher,
		ttl:     ttl,
		entries: make(map[string]cachedTotal),
	}
}

func (c *TotalsCache) fresh(e cachedTotal) bool {
	return c.ttl > 0 && time.Since(e.built) <= c.ttl
}

// Total returns the total reported by src for page 1 at size 1.
func (c *TotalsCache) Total(ctx context.Context, src upstream.Source) (int, error) {
	key := src.CacheKey()

	// Fast path
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && c.fresh(entry) {
		return entry.total, nil
	}

	v, err, _ := c.sf.Do(key, func() (any, error) {
		c.mu.RLock()
		entry, ok := c.entries[key]
		c.mu.RUnlock()
		if ok && c.fresh(entry) {
			return entry.total, nil
		}

		// Shared by every waiter, so one caller leaving must not cancel it.
		page, err := c.fetcher.Fetch(context.WithoutCancel(ctx), src, 1, 1)
		if err != nil {
			return 0, err
		}

		if c.ttl > 0 {
			c.mu.Lock()
			c.entries[key] = cachedTotal{total: page.Total, built: time.Now()}
			c.mu.Unlock()
		}
		return page.Total, nil
	})
	if err != nil {
		return 0, err
	}
	return v.(int), nil
}

// Invalidate drops the cached total for src.
func (c *TotalsCache) Invalidate(src upstream.Source) {
	c.mu.Lock()
	delete(c.entries, src.CacheKey())
	c.mu.Unlock()
}
