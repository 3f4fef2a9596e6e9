// Package cache provides the method-keyed response cache used by the
// domain services. Entries are stored per method-identity string plus
// an argument key, but invalidation drops the whole method's entries
// regardless of arguments. The coarse granularity is a deliberate,
// documented contract: mutating one case clears every cached copy for
// that method, not just the affected case.
package cache

import (
	"sync"
	"time"
)

// DefaultMaxAge is how long a cached entry stays fresh.
const DefaultMaxAge = 5 * time.Minute

type entry struct {
	value    any
	storedAt time.Time
}

// Cache is a process-wide, method-keyed response cache. Safe for
// concurrent use.
type Cache struct {
	mu      sync.Mutex
	methods map[string]map[string]entry
	maxAge  time.Duration

	// For testing: allow overriding time
	now func() time.Time
}

// New creates a cache with the default entry lifetime.
func New() *Cache {
	return NewWithMaxAge(DefaultMaxAge)
}

// NewWithMaxAge creates a cache with a custom entry lifetime. A
// non-positive maxAge falls back to the default.
func NewWithMaxAge(maxAge time.Duration) *Cache {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	return &Cache{
		methods: make(map[string]map[string]entry),
		maxAge:  maxAge,
		now:     time.Now,
	}
}

// GetOrFetch returns the cached value for (method, args), calling
// producer to fill the cache when the entry is absent or stale. The
// producer's error is returned as-is and nothing is cached on failure.
func (c *Cache) GetOrFetch(method, args string, producer func() (any, error)) (any, error) {
	c.mu.Lock()
	if e, ok := c.methods[method][args]; ok && c.now().Sub(e.storedAt) < c.maxAge {
		c.mu.Unlock()
		return e.value, nil
	}
	c.mu.Unlock()

	value, err := producer()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.methods[method] == nil {
		c.methods[method] = make(map[string]entry)
	}
	c.methods[method][args] = entry{value: value, storedAt: c.now()}
	c.mu.Unlock()

	return value, nil
}

// Invalidate drops every entry cached under method, across all
// argument values. Dropping an unknown method is a no-op.
func (c *Cache) Invalidate(method string) {
	c.mu.Lock()
	delete(c.methods, method)
	c.mu.Unlock()
}

// Size returns the number of cached entries, stale ones included.
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, entries := range c.methods {
		n += len(entries)
	}
	return n
}
