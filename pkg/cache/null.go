package cache

import (
	"context"
	"time"
)

// NullCache misses every read and discards every write. It backs
// "serve --cache none" and stands in wherever a Cache is required but
// caching is switched off, so callers never have to nil-check.
type NullCache struct{}

// NewNullCache returns the disabled cache.
func NewNullCache() Cache {
	return NullCache{}
}

// Get reports a miss for every key.
func (NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards the document.
func (NullCache) Set(ctx context.Context, key string, document []byte, ttl time.Duration) error {
	return nil
}

// Delete is a no-op; there is never anything to remove.
func (NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Close is a no-op.
func (NullCache) Close() error {
	return nil
}

// Ensure NullCache implements Cache.
var _ Cache = NullCache{}
