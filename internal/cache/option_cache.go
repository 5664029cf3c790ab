package cache

import (
	"context"
	"sync"
)

// OptionCache is an in-process option store used for local runs and tests.
// Values are copied on the way in and out so callers cannot alias them.
type OptionCache struct {
	mu    sync.RWMutex
	store map[string][]byte
}

func NewOptionCache() *OptionCache {
	return &OptionCache{
		store: make(map[string][]byte),
	}
}

func (c *OptionCache) GetOptions(_ context.Context, names ...string) (map[string][]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string][]byte, len(names))
	for _, name := range names {
		if val, ok := c.store[name]; ok {
			out[name] = append([]byte(nil), val...)
		}
	}
	return out, nil
}

func (c *OptionCache) SetOptions(_ context.Context, values map[string][]byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for name, val := range values {
		c.store[name] = append([]byte(nil), val...)
	}
	return nil
}
