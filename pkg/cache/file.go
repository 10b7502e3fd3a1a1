package cache

import (
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// FileCache keeps rendered documents on disk between runs, so exporting
// the same workflow twice skips the second render. Every entry is one
// JSON file under a directory fanned out by the first two characters of
// the key hash.
type FileCache struct {
	dir string
}

// NewFileCache opens a disk cache rooted at dir, creating it if needed.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// docEntry is the on-disk shape of one cached document.
type docEntry struct {
	Document  []byte    `json:"document"`
	StoredAt  time.Time `json:"stored_at"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// expired reports whether the entry's lifetime has passed at instant now.
// A zero ExpiresAt means the entry never expires.
func (e docEntry) expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && now.After(e.ExpiresAt)
}

// Get returns the cached document for key. Expired and unreadable entries
// are removed and reported as misses.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.entryPath(key)

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var e docEntry
	if err := json.Unmarshal(raw, &e); err != nil || e.expired(time.Now()) {
		_ = os.Remove(path)
		return nil, false, nil
	}

	return e.Document, true, nil
}

// Set stores document under key. A ttl of zero keeps the entry until it
// is deleted or pruned.
func (c *FileCache) Set(ctx context.Context, key string, document []byte, ttl time.Duration) error {
	e := docEntry{
		Document: document,
		StoredAt: time.Now(),
	}
	if ttl > 0 {
		e.ExpiresAt = e.StoredAt.Add(ttl)
	}

	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}

	path := c.entryPath(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0644)
}

// Delete removes the entry for key. Deleting a missing key is not an
// error.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.entryPath(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close releases nothing; entries stay on disk for the next run.
func (c *FileCache) Close() error {
	return nil
}

// Prune removes every expired or unreadable entry and returns how many
// were removed. Get already drops such entries lazily; Prune exists so
// the cache directory can be cleaned without touching every key.
func (c *FileCache) Prune(ctx context.Context) (int, error) {
	now := time.Now()
	removed := 0

	err := filepath.WalkDir(c.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		var e docEntry
		if err := json.Unmarshal(raw, &e); err == nil && !e.expired(now) {
			return nil
		}
		if os.Remove(path) == nil {
			removed++
		}
		return nil
	})
	return removed, err
}

// entryPath maps a key to its file. The two-character fan-out keeps any
// one directory from collecting every entry.
func (c *FileCache) entryPath(key string) string {
	h := Hash([]byte(key))
	return filepath.Join(c.dir, h[:2], h[2:]+".json")
}

// Ensure FileCache implements Cache.
var _ Cache = (*FileCache)(nil)
