// Package cache provides a small in-process TTL cache with lazy expiry.
package cache

import (
	"sync"
	"time"
)

type record[V any] struct {
	value     V
	fetchedAt time.Time
	ttl       time.Duration
}

func (r record[V]) fresh(now time.Time) bool {
	return now.Sub(r.fetchedAt) < r.ttl
}

// TTL holds at most one value per key. Freshness is computed on read;
// there is no background eviction and stale records stay until overwritten.
type TTL[K comparable, V any] struct {
	mu      sync.RWMutex
	records map[K]record[V]
	now     func() time.Time
}

// New creates an empty cache. A nil clock defaults to time.Now.
func New[K comparable, V any](now func() time.Time) *TTL[K, V] {
	if now == nil {
		now = time.Now
	}
	return &TTL[K, V]{
		records: make(map[K]record[V]),
		now:     now,
	}
}

// Get returns the value for key if present and fresh under its stored TTL.
func (c *TTL[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	r, ok := c.records[key]
	c.mu.RUnlock()

	if !ok || !r.fresh(c.now()) {
		var zero V
		return zero, false
	}
	return r.value, true
}

// Put overwrites the record for key. The record is fresh while
// now - fetchedAt < ttl, so a non-positive ttl is never fresh.
func (c *TTL[K, V]) Put(key K, value V, ttl time.Duration, fetchedAt time.Time) {
	c.mu.Lock()
	c.records[key] = record[V]{value: value, fetchedAt: fetchedAt, ttl: ttl}
	c.mu.Unlock()
}

// Len returns the number of records held, fresh or not.
func (c *TTL[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}
