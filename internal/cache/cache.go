package cache

import (
	"strings"
	"sync"
	"time"

	"jobboard-backend/internal/shared/metrics"
)

const sweepThreshold = 4096

// TTL is the two-expiration policy applied to an entry: the sliding window
// resets on every hit, the absolute ceiling bounds staleness even under
// constant traffic. An entry is evicted when either elapses.
type TTL struct {
	Sliding  time.Duration
	Absolute time.Duration
}

// DefaultTTL mirrors the policy used by every read path unless overridden.
func DefaultTTL() TTL {
	return TTL{Sliding: 30 * time.Second, Absolute: time.Hour}
}

type entry struct {
	value    any
	sliding  time.Duration
	lastHit  time.Time
	deadline time.Time
}

// Cache is a process-local, read-through memo store. It is an optimization
// layer only: every caller must be correct against a nil *Cache, where the
// compute function runs unconditionally.
type Cache struct {
	mu       sync.Mutex
	entries  map[string]*entry
	defaults TTL
	now      func() time.Time
}

// New constructs a Cache with the given default TTL policy.
func New(defaults TTL) *Cache {
	if defaults.Sliding <= 0 {
		defaults.Sliding = DefaultTTL().Sliding
	}
	if defaults.Absolute <= 0 {
		defaults.Absolute = DefaultTTL().Absolute
	}
	return &Cache{
		entries:  make(map[string]*entry),
		defaults: defaults,
		now:      time.Now,
	}
}

// Get returns the live value for key, resetting its sliding window.
func (c *Cache) Get(key string) (any, bool) {
	if c == nil {
		return nil, false
	}
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.expired(e, now) {
		delete(c.entries, key)
		return nil, false
	}
	e.lastHit = now
	return e.value, true
}

// Set stores a value under key with the given TTL; zero fields fall back to
// the cache defaults. Concurrent writers race, last one wins.
func (c *Cache) Set(key string, value any, ttl TTL) {
	if c == nil {
		return
	}
	if ttl.Sliding <= 0 {
		ttl.Sliding = c.defaults.Sliding
	}
	if ttl.Absolute <= 0 {
		ttl.Absolute = c.defaults.Absolute
	}
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= sweepThreshold {
		c.sweep(now)
	}
	c.entries[key] = &entry{
		value:    value,
		sliding:  ttl.Sliding,
		lastHit:  now,
		deadline: now.Add(ttl.Absolute),
	}
}

// Invalidate removes every given key. Mutating operations call this for each
// key whose memoized value could be affected.
func (c *Cache) Invalidate(keys ...string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
	}
}

// InvalidatePrefix removes every key starting with prefix. Cascade deletes
// use it where the affected key set cannot be enumerated up front.
func (c *Cache) InvalidatePrefix(prefix string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}

// Len reports the number of stored entries, expired ones included.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) expired(e *entry, now time.Time) bool {
	if now.After(e.deadline) {
		return true
	}
	return now.Sub(e.lastHit) >= e.sliding
}

// sweep drops expired entries; caller holds the lock.
func (c *Cache) sweep(now time.Time) {
	for key, e := range c.entries {
		if c.expired(e, now) {
			delete(c.entries, key)
		}
	}
}

// Memo returns the cached value for key or computes, stores, and returns it
// using the cache's default TTL. The second result reports a cache hit.
// Errors are never cached.
func Memo[T any](c *Cache, key string, compute func() (T, error)) (T, bool, error) {
	return MemoTTL(c, key, TTL{}, compute)
}

// MemoTTL is Memo with an explicit TTL policy.
func MemoTTL[T any](c *Cache, key string, ttl TTL, compute func() (T, error)) (T, bool, error) {
	if c != nil {
		if raw, ok := c.Get(key); ok {
			if val, ok := raw.(T); ok {
				metrics.IncCacheHit()
				return val, true, nil
			}
			// Type changed under the same key; drop and recompute.
			c.Invalidate(key)
		}
		metrics.IncCacheMiss()
	}
	val, err := compute()
	if err != nil {
		var zero T
		return zero, false, err
	}
	c.Set(key, val, ttl)
	return val, false, nil
}
