package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	data      []byte
	timestamp time.Time
	ttl       time.Duration
}

// MemoryCache is a map-backed Service with per-key time expiry. There is no
// size bound and no eviction beyond expiry-on-read.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: map[string]entry{}, now: time.Now}
}

// NewMemoryCacheWithNow injects the time source, for tests.
func NewMemoryCacheWithNow(now func() time.Time) *MemoryCache {
	return &MemoryCache{entries: map[string]entry{}, now: now}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, ErrCacheMiss
	}

	if c.now().Sub(e.timestamp) >= e.ttl {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, ErrCacheMiss
	}

	return e.data, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{data: value, timestamp: c.now(), ttl: ttl}

	return nil
}

func (c *MemoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		delete(c.entries, key)
	}

	return nil
}
