// Package cache provides an injectable read-through cache for cleaned
// price series, replacing ambient memoization with a capability the
// hosting layer passes in explicitly.
package cache

import (
	"fmt"
	"sync"
	"time"

	"hedge-analyzer/internal/models"
)

// Key identifies one cached series: the instrument and the exact time
// range requested. Nothing else may enter the key.
type Key struct {
	Symbol string
	From   time.Time
	To     time.Time
}

// String renders the key in a stable form.
func (k Key) String() string {
	return fmt.Sprintf("%s:%d:%d", k.Symbol, k.From.Unix(), k.To.Unix())
}

type item struct {
	series     *models.PriceSeries
	expiration int64
}

// SeriesCache is a thread-safe TTL cache of canonical price series.
type SeriesCache struct {
	mu    sync.RWMutex
	items map[string]item
	ttl   time.Duration

	janitorStop chan struct{}
	janitorOnce sync.Once
}

// New creates a cache whose entries expire after ttl. A background
// janitor sweeps expired entries every cleanup interval.
func New(ttl, cleanupInterval time.Duration) *SeriesCache {
	c := &SeriesCache{
		items:       make(map[string]item),
		ttl:         ttl,
		janitorStop: make(chan struct{}),
	}
	if cleanupInterval > 0 {
		go c.janitor(cleanupInterval)
	}
	return c
}

// Set stores a series under the given key.
func (c *SeriesCache) Set(key Key, series *models.PriceSeries) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key.String()] = item{
		series:     series,
		expiration: time.Now().Add(c.ttl).UnixNano(),
	}
}

// Get retrieves a series if present and not expired.
func (c *SeriesCache) Get(key Key) (*models.PriceSeries, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	it, found := c.items[key.String()]
	if !found {
		return nil, false
	}
	if time.Now().UnixNano() > it.expiration {
		return nil, false
	}
	return it.series, true
}

// Loader produces a series on a cache miss.
type Loader func(Key) (*models.PriceSeries, error)

// GetOrLoad returns the cached series for key, invoking load and
// caching its result on a miss. Load errors are never cached.
func (c *SeriesCache) GetOrLoad(key Key, load Loader) (*models.PriceSeries, error) {
	if series, ok := c.Get(key); ok {
		return series, nil
	}
	series, err := load(key)
	if err != nil {
		return nil, err
	}
	c.Set(key, series)
	return series, nil
}

// Len returns the number of entries, expired or not.
func (c *SeriesCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Flush removes expired entries and reports how many were removed.
func (c *SeriesCache) Flush() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UnixNano()
	removed := 0
	for key, it := range c.items {
		if now > it.expiration {
			delete(c.items, key)
			removed++
		}
	}
	return removed
}

// Close stops the janitor.
func (c *SeriesCache) Close() {
	c.janitorOnce.Do(func() {
		close(c.janitorStop)
	})
}

func (c *SeriesCache) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.Flush()
		case <-c.janitorStop:
			return
		}
	}
}
