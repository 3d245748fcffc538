// Package cache bounds load on upstream showtime sources: identical
// (provider, site, date) requests within a short window are served from
// memory instead of re-scraping.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tubone24/eiga-miyou/internal/model"
)

const (
	// DefaultTTL is the window during which a scrape result is reusable.
	DefaultTTL = 10 * time.Minute
	// DefaultCapacity bounds the in-memory store. Best effort, not LRU:
	// entries are cheap to regenerate and short-lived.
	DefaultCapacity = 200
)

// ResultCache stores scrape results keyed by Key(provider, site, date).
// Failed results are stored too, so a broken source is not hammered within
// the TTL window; trusting only successful entries is the caller's policy.
type ResultCache interface {
	Get(ctx context.Context, key string) (model.ScrapeResult, bool)
	Set(ctx context.Context, key string, result model.ScrapeResult) error
	SweepExpired(ctx context.Context)
}

// Key builds the canonical cache key for one venue-day.
func Key(provider, siteCode, date string) string {
	return fmt.Sprintf("%s:%s:%s", provider, siteCode, date)
}

type entry struct {
	result    model.ScrapeResult
	expiresAt time.Time
}

// InMemory is the default ResultCache backing: TTL per entry, bounded
// capacity, FIFO eviction. Go maps do not iterate in insertion order, so
// the order slice is maintained explicitly to make eviction deterministic.
type InMemory struct {
	mu       sync.Mutex
	data     map[string]entry
	order    []string // insertion order, oldest first
	ttl      time.Duration
	capacity int
	now      func() time.Time
}

// NewInMemory builds a cache with the given TTL and capacity; zero values
// fall back to the defaults.
func NewInMemory(ttl time.Duration, capacity int) *InMemory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &InMemory{
		data:     make(map[string]entry),
		ttl:      ttl,
		capacity: capacity,
		now:      time.Now,
	}
}

func (c *InMemory) Get(_ context.Context, key string) (model.ScrapeResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.data[key]
	if !ok {
		return model.ScrapeResult{}, false
	}
	if c.now().After(e.expiresAt) {
		c.remove(key)
		return model.ScrapeResult{}, false
	}
	return e.result, true
}

func (c *InMemory) Set(_ context.Context, key string, result model.ScrapeResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.data[key]; !exists && len(c.data) >= c.capacity {
		c.sweepLocked()
		if len(c.data) >= c.capacity && len(c.order) > 0 {
			c.remove(c.order[0])
		}
	}
	if _, exists := c.data[key]; !exists {
		c.order = append(c.order, key)
	}
	c.data[key] = entry{result: result, expiresAt: c.now().Add(c.ttl)}
	return nil
}

// SweepExpired drops every expired entry. Called opportunistically at the
// start of each aggregation request.
func (c *InMemory) SweepExpired(_ context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sweepLocked()
}

// Len reports the number of stored entries, expired or not.
func (c *InMemory) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.data)
}

func (c *InMemory) sweepLocked() {
	now := c.now()
	for key, e := range c.data {
		if now.After(e.expiresAt) {
			c.remove(key)
		}
	}
}

// remove deletes key from both the map and the order list. Callers hold mu.
func (c *InMemory) remove(key string) {
	delete(c.data, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
