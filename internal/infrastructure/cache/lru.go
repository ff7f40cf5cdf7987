// Package cache holds in-memory caches for the application layer.
package cache

import (
	"sync"

	"github.com/golang/groupcache/lru"

	"github.com/bnema/tabshell/internal/application/port"
)

// LRU is a typed, mutex-guarded groupcache LRU.
type LRU[K comparable, V any] struct {
	mu    sync.Mutex
	inner *lru.Cache
}

// NewLRU creates a cache holding at most capacity entries (minimum one).
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	return &LRU[K, V]{inner: lru.New(max(capacity, 1))}
}

// Get returns the value for key and marks it recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.inner.Get(key); ok {
		return v.(V), true
	}
	var zero V
	return zero, false
}

// Set stores value, evicting the least recently used entry when full.
func (c *LRU[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inner.Add(key, value)
}

// Remove deletes key if present.
func (c *LRU[K, V]) Remove(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inner.Remove(key)
}

// Len returns the number of entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Len()
}

// Clear drops every entry.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inner.Clear()
}

var _ port.Cache[string, []string] = (*LRU[string, []string])(nil)
