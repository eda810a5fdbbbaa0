// Package cache provides the in-memory response cache of the HTTP server.
// It uses patrickmn/go-cache for TTL-based expiry. The catalog never
// changes after load, so entries only expire; nothing invalidates them.
package cache

import (
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache wraps go-cache and counts lookups.
type Cache struct {
	store  *gocache.Cache
	hits   atomic.Uint64
	misses atomic.Uint64
}

// New creates a cache. defaultTTL is the lifetime of an entry and
// cleanupInterval is how often expired entries are purged.
func New(defaultTTL, cleanupInterval time.Duration) *Cache {
	return &Cache{
		store: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a value from the cache.
func (c *Cache) Get(key string) (any, bool) {
	v, found := c.store.Get(key)
	if found {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, found
}

// Set stores a value with the default TTL.
func (c *Cache) Set(key string, value any) {
	c.store.Set(key, value, gocache.DefaultExpiration)
}

// Remember returns the cached value for key, or computes, stores and
// returns it. Errors are returned as-is and nothing is stored.
func (c *Cache) Remember(key string, compute func() (any, error)) (any, error) {
	if v, found := c.Get(key); found {
		return v, nil
	}
	v, err := compute()
	if err != nil {
		return nil, err
	}
	c.Set(key, v)
	return v, nil
}

// Clear removes all items from the cache.
func (c *Cache) Clear() {
	c.store.Flush()
}

// ItemCount returns the number of items in the cache, expired ones included
// until the next cleanup.
func (c *Cache) ItemCount() int {
	return c.store.ItemCount()
}

// Stats are cache counters.
type Stats struct {
	ItemCount int    `json:"item_count"`
	Hits      uint64 `json:"hits"`
	Misses    uint64 `json:"misses"`
}

// GetStats returns current cache statistics.
func (c *Cache) GetStats() Stats {
	return Stats{
		ItemCount: c.store.ItemCount(),
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
	}
}
