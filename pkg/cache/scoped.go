package cache

import (
	"context"
	"time"
)

// ScopedCache wraps a Cache with a key prefix for namespace isolation.
// This is useful when one backend is shared by several concerns (rendered
// documents, preview images) that must not collide.
//
// Example usage:
//
//	backend := NewMemoryCache()
//	renders := NewScopedCache(backend, "render:")
//	previews := NewScopedCache(backend, "preview:")
type ScopedCache struct {
	inner  Cache
	prefix string
}

// NewScopedCache creates a cache view that prepends prefix to all keys.
// A nil inner cache falls back to NullCache.
func NewScopedCache(inner Cache, prefix string) Cache {
	if inner == nil {
		inner = NewNullCache()
	}
	return &ScopedCache{
		inner:  inner,
		prefix: prefix,
	}
}

// Get retrieves a value using the prefixed key.
func (c *ScopedCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return c.inner.Get(ctx, c.prefix+key)
}

// Set stores a value under the prefixed key.
func (c *ScopedCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.inner.Set(ctx, c.prefix+key, data, ttl)
}

// Delete removes the value under the prefixed key.
func (c *ScopedCache) Delete(ctx context.Context, key string) error {
	return c.inner.Delete(ctx, c.prefix+key)
}

// Close closes the underlying cache.
func (c *ScopedCache) Close() error {
	return c.inner.Close()
}

// Ensure ScopedCache implements Cache.
var _ Cache = (*ScopedCache)(nil)
