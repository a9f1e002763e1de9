package source

import (
	"sync"
	"time"

	"github.com/liamcoop/sift"
)

// Cache stores a materialized record collection between source reads.
type Cache interface {
	// Get returns the cached records, or nil on a miss or after expiry.
	Get() []sift.Record

	// Set stores records and resets the expiry clock.
	Set(records []sift.Record)

	// Invalidate clears the cache so the next Get misses.
	Invalidate()

	// IsValid reports whether the cache holds an unexpired entry.
	IsValid() bool
}

// MemoryCache is an in-memory Cache. Safe for concurrent use.
type MemoryCache struct {
	records  []sift.Record
	cachedAt time.Time
	ttl      time.Duration
	isValid  bool
	mu       sync.RWMutex
}

// NewMemoryCache creates a cache whose entries expire after ttl. A ttl
// of 0 never expires; entries then leave only via Invalidate.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{ttl: ttl}
}

// Get returns a copy of the cached records, or nil when the cache is
// empty, invalidated, or past its TTL.
func (c *MemoryCache) Get() []sift.Record {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.isValid {
		return nil
	}
	if c.ttl > 0 && time.Since(c.cachedAt) > c.ttl {
		return nil
	}

	records := make([]sift.Record, len(c.records))
	copy(records, c.records)
	return records
}

// Set stores a copy of records and marks the cache valid.
func (c *MemoryCache) Set(records []sift.Record) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records = make([]sift.Record, len(records))
	copy(c.records, records)
	c.cachedAt = time.Now()
	c.isValid = true
}

// Invalidate clears the cache.
func (c *MemoryCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records = nil
	c.isValid = false
}

// IsValid reports whether a Get would hit.
func (c *MemoryCache) IsValid() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.isValid {
		return false
	}
	if c.ttl > 0 && time.Since(c.cachedAt) > c.ttl {
		return false
	}
	return true
}

// Cached decorates a source with a cache, so repeated reads skip the
// underlying load until the entry expires or is invalidated.
type Cached struct {
	source Source
	cache  Cache
}

// NewCached wraps source with cache.
func NewCached(source Source, cache Cache) *Cached {
	return &Cached{source: source, cache: cache}
}

// Records serves from the cache when it holds a valid entry, and
// otherwise loads from the underlying source and stores the result.
// A load error leaves the cache untouched.
func (c *Cached) Records() ([]sift.Record, error) {
	if records := c.cache.Get(); records != nil {
		return records, nil
	}

	records, err := c.source.Records()
	if err != nil {
		return nil, err
	}
	c.cache.Set(records)
	return records, nil
}
