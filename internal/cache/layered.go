package cache

import (
	"time"

	"github.com/lifeguardcard/triagecore/internal/model"
)

// LayeredCache stacks a memory cache in front of a disk cache. Reads
// hit memory first and promote disk hits; writes go to both layers.
type LayeredCache struct {
	memory Cache
	disk   Cache
}

// NewLayeredCache creates a layered cache from the cache config.
func NewLayeredCache(cfg model.CacheConfig) *LayeredCache {
	return &LayeredCache{
		memory: NewMemoryCache(cfg),
		disk:   NewDiskCache(cfg.Dir, cfg.TTL),
	}
}

// Get retrieves a value, checking memory first and then disk.
func (c *LayeredCache) Get(key string) ([]byte, bool) {
	if val, found := c.memory.Get(key); found {
		return val, true
	}

	if val, found := c.disk.Get(key); found {
		_ = c.memory.Set(key, val, 0)
		return val, true
	}

	return nil, false
}

// Set stores a value in both layers.
func (c *LayeredCache) Set(key string, value []byte, ttl time.Duration) error {
	if err := c.memory.Set(key, value, ttl); err != nil {
		return err
	}
	return c.disk.Set(key, value, ttl)
}

// Delete removes a value from both layers.
func (c *LayeredCache) Delete(key string) error {
	_ = c.memory.Delete(key)
	_ = c.disk.Delete(key)
	return nil
}

// Clear removes all values from both layers.
func (c *LayeredCache) Clear() error {
	_ = c.memory.Clear()
	return c.disk.Clear()
}
