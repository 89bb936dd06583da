// Package cache holds rendered listing/detail payloads keyed by view path.
// Mutation actions invalidate the affected paths after a successful write.
package cache

import "sync"

type ViewCache struct {
	mu    sync.RWMutex
	store map[string]interface{}
}

func NewViewCache() *ViewCache {
	return &ViewCache{
		store: make(map[string]interface{}),
	}
}

func (c *ViewCache) Get(path string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	val, ok := c.store[path]
	return val, ok
}

func (c *ViewCache) Set(path string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[path] = value
}

// Invalidate drops the cached payload for a path, if any.
func (c *ViewCache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.store, path)
}
