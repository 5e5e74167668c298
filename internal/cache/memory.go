package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/lifeguardcard/triagecore/internal/model"
)

// MemoryCache holds assessments in process memory with TTL expiry.
// It is the fast layer: repeated identical requests within one
// process lifetime never touch disk.
type MemoryCache struct {
	entries *gocache.Cache
	ttl     time.Duration
}

// NewMemoryCache creates a memory cache sized by the cache config.
// Expired entries are swept at half the TTL, with a one-minute floor.
func NewMemoryCache(cfg model.CacheConfig) *MemoryCache {
	cleanup := cfg.TTL / 2
	if cleanup < time.Minute {
		cleanup = time.Minute
	}
	return &MemoryCache{
		entries: gocache.New(cfg.TTL, cleanup),
		ttl:     cfg.TTL,
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(key string) ([]byte, bool) {
	if v, found := c.entries.Get(key); found {
		return v.([]byte), true
	}
	return nil, false
}

// Set stores a value; a zero ttl falls back to the configured default.
func (c *MemoryCache) Set(key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.ttl
	}
	c.entries.Set(key, value, ttl)
	return nil
}

// Delete removes a value from the cache
func (c *MemoryCache) Delete(key string) error {
	c.entries.Delete(key)
	return nil
}

// Clear removes all values from the cache
func (c *MemoryCache) Clear() error {
	c.entries.Flush()
	return nil
}
