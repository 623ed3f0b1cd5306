package backdrop

import (
	"image"
	"sync"
)

// Resolver resolves a backdrop path to a decoded image, or nil.
type Resolver interface {
	Resolve(path string) *image.NRGBA
}

// Cache is a concurrency-safe backdrop cache. Failed loads are cached as nil.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*image.NRGBA
	onErr func(path string, err error)
}

// NewCache creates an empty cache. onErr, if set, is called once per failed path.
func NewCache(onErr func(path string, err error)) *Cache {
	return &Cache{
		items: make(map[string]*image.NRGBA),
		onErr: onErr,
	}
}

// Resolve loads and caches a backdrop. Empty path resolves to nil.
func (c *Cache) Resolve(path string) *image.NRGBA {
	if path == "" {
		return nil
	}

	c.mu.RLock()
	if img, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return img
	}
	c.mu.RUnlock()

	img, err := Load(path)

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, exists := c.items[path]; exists {
		return cached
	}
	if err != nil && c.onErr != nil {
		c.onErr(path, err)
	}
	c.items[path] = img
	return img
}
