package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"jsfmt/internal/project"
)

// CacheSchemaVersion is stamped into every DiskPayload; bump when the shape changes.
const CacheSchemaVersion uint16 = 1

// DiskCache remembers content that is already formatted under a given set
// of options, keyed by cacheKey. Entries are msgpack files under
// <dir>/fmt/<2 hex>/<key>.mp. Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the record stored per key.
type DiskPayload struct {
	Schema  uint16         `msgpack:"schema"`
	Path    string         `msgpack:"path"` // last path the content was seen at
	Size    int            `msgpack:"size"`
	Options project.Digest `msgpack:"options"`
	Stamp   time.Time      `msgpack:"stamp"`
}

// OpenDiskCache opens <user cache dir>/<app>, honoring XDG_CACHE_HOME.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cache: %w", err)
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt opens (creating if needed) a cache rooted at dir.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key project.Digest) string {
	name := key.Hex()
	return filepath.Join(c.dir, "fmt", name[:2], name+".mp")
}

// Put stores payload under key, replacing any previous entry atomically.
// A nil cache drops the write.
func (c *DiskCache) Put(key project.Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	payload.Schema = CacheSchemaVersion
	data, err := msgpack.Marshal(payload)
	if err != nil {
		return fmt.Errorf("cache: encode: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	path := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return writeFileAtomic(path, data)
}

// Get loads the entry for key into out. Missing entries and entries of
// another schema report false without error.
func (c *DiskCache) Get(key project.Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	data, err := os.ReadFile(c.pathFor(key))
	c.mu.RUnlock()
	switch {
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	case err != nil:
		return false, err
	}
	if err := msgpack.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("cache: decode: %w", err)
	}
	return out.Schema == CacheSchemaVersion, nil
}

// Formatted reports whether content of size bytes with hash key is known
// to be formatted already.
func (c *DiskCache) Formatted(key project.Digest, size int) bool {
	var payload DiskPayload
	ok, err := c.Get(key, &payload)
	return err == nil && ok && payload.Size == size
}

// DropAll removes every entry (--clear-cache).
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// переименование атомарно, удаление может идти долго
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// cacheKey combines the file content hash with the options fingerprint.
func cacheKey(content [32]byte, opts project.Digest) project.Digest {
	return project.Combine(project.Digest(content), opts)
}
