package translate

import (
	"context"
	"sync"
)

// MemoryCache is a process-local translation cache, used when no Redis is
// configured and in tests.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]string)}
}

func (c *MemoryCache) Get(_ context.Context, text string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	translated, ok := c.entries[text]
	return translated, ok
}

func (c *MemoryCache) Set(_ context.Context, text, translated string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[text] = translated
}
