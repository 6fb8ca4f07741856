// Package statscache holds the last successfully fetched dashboard stats
// and implements the time-based staleness fallback used when a refresh
// fails: a stale copy younger than the threshold is returned as usable, an
// older or missing copy degrades to a zeroed placeholder.
package statscache

import (
	"sync"
	"time"

	"github.com/artisanbay/sellerhub/internal/domain"
)

// State describes where a returned stats value came from.
type State int

const (
	// Fresh: just fetched, authoritative.
	Fresh State = iota
	// StaleButUsable: the refresh failed, but the cached copy is younger
	// than the staleness threshold and is returned as if successful.
	StaleButUsable
	// Degraded: the refresh failed and no usable cache exists; a zeroed
	// placeholder is substituted.
	Degraded
)

// DefaultTTL is the staleness threshold for a cached copy.
const DefaultTTL = time.Hour

// Cache is a single-seller dashboard stats cache. It is safe for
// concurrent use.
type Cache struct {
	mu        sync.Mutex
	stats     *domain.DashboardStats
	fetchedAt time.Time
	ttl       time.Duration
	now       func() time.Time
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL overrides the staleness threshold.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) { c.ttl = ttl }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// New creates an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{ttl: DefaultTTL, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Put installs a freshly fetched stats value and resets the age timer.
func (c *Cache) Put(stats *domain.DashboardStats) {
	c.mu.Lock()
	defer c.mu.Unlock()

	copied := *stats
	copied.Cached = false
	copied.IsMockData = false
	c.stats = &copied
	c.fetchedAt = c.now()
}

// Fallback resolves a failed refresh. It returns the cached copy marked
// Cached=true while it is younger than the threshold, and the zeroed
// placeholder once it is not.
func (c *Cache) Fallback() (*domain.DashboardStats, State) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if c.stats != nil && now.Sub(c.fetchedAt) < c.ttl {
		copied := *c.stats
		copied.Cached = true
		return &copied, StaleButUsable
	}
	return domain.ZeroDashboardStats(now), Degraded
}

// Age returns how old the cached copy is, and false when the cache is empty.
func (c *Cache) Age() (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stats == nil {
		return 0, false
	}
	return c.now().Sub(c.fetchedAt), true
}
