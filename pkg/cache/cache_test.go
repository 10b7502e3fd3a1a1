package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	defer c.Close()

	// Miss before Set
	_, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("Get should miss before Set")
	}

	// Hit after Set
	if err := c.Set(ctx, "key", []byte("value"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("Get should hit after Set")
	}
	if string(data) != "value" {
		t.Errorf("Get returned %q, want %q", data, "value")
	}

	// Miss after Delete
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("Get should miss after Delete")
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Nanosecond); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	_, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("expired entry should be a miss")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry should be evicted on read, Len() = %d", c.Len())
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit || string(data) != "value" {
		t.Errorf("Get = (%q, %v), want (value, true)", data, hit)
	}

	// Expired entries are treated as misses
	if err := c.Set(ctx, "stale", []byte("old"), -time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "stale")
	if hit {
		t.Error("expired entry should be a miss")
	}

	// Delete is idempotent
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete of missing key should not error: %v", err)
	}
}

func TestFileCachePrune(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "fresh", []byte("keep"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if err := c.Set(ctx, "stale", []byte("drop"), -time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	removed, err := c.Prune(ctx)
	if err != nil {
		t.Fatalf("Prune error: %v", err)
	}
	if removed != 1 {
		t.Errorf("Prune removed %d entries, want 1", removed)
	}

	// The live entry survives
	data, hit, _ := c.Get(ctx, "fresh")
	if !hit || string(data) != "keep" {
		t.Errorf("Get after Prune = (%q, %v), want (keep, true)", data, hit)
	}
	_, hit, _ = c.Get(ctx, "stale")
	if hit {
		t.Error("pruned entry should be a miss")
	}
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestScopedCache(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryCache()
	defer backend.Close()

	a := NewScopedCache(backend, "a:")
	b := NewScopedCache(backend, "b:")

	if err := a.Set(ctx, "key", []byte("from-a"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	// Same key in another scope must not collide
	_, hit, _ := b.Get(ctx, "key")
	if hit {
		t.Error("scopes should not share keys")
	}

	data, hit, _ := a.Get(ctx, "key")
	if !hit || string(data) != "from-a" {
		t.Errorf("scoped Get = (%q, %v), want (from-a, true)", data, hit)
	}

	// Backend sees the prefixed key
	data, hit, _ = backend.Get(ctx, "a:key")
	if !hit || string(data) != "from-a" {
		t.Errorf("backend Get = (%q, %v), want (from-a, true)", data, hit)
	}
}

func TestScopedCacheNilInner(t *testing.T) {
	// Should fall back to NullCache when inner is nil
	c := NewScopedCache(nil, "prefix:")
	_, hit, err := c.Get(context.Background(), "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("nil inner should behave like NullCache")
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestKey(t *testing.T) {
	// Key should include all parts in the hash
	k1 := Key("render", "etl", "xml")
	k2 := Key("render", "etl", "dot")
	if k1 == k2 {
		t.Error("different parts should produce different keys")
	}

	// Prefix is preserved verbatim
	if k1[:7] != "render:" {
		t.Errorf("key should start with prefix: %s", k1)
	}

	// Deterministic
	if k1 != Key("render", "etl", "xml") {
		t.Error("Key should be deterministic")
	}
}
