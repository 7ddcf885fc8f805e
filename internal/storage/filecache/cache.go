// Package filecache stores JSON blobs on disk with a fixed time-to-live.
//
// Entries are best-effort: a stale, unreadable, or corrupt file is reported
// as a miss, never as an error. Freshness is judged by file modification
// time, so no index or sidecar metadata is kept.
package filecache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

const defaultTTL = time.Hour

// Config defines cache location and freshness window
type Config struct {
	Dir string
	TTL time.Duration
}

// Cache is a file-backed JSON blob store keyed by sanitized strings
type Cache struct {
	dir string
	ttl time.Duration
}

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// New creates the cache directory and returns a ready cache
func New(cfg Config) (*Cache, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("filecache: dir is required")
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("filecache: create dir: %w", err)
	}

	return &Cache{dir: cfg.Dir, ttl: ttl}, nil
}

// Path returns the on-disk location for a key after sanitization
func (c *Cache) Path(key string) string {
	safe := unsafeKeyChars.ReplaceAllString(key, "_")
	return filepath.Join(c.dir, safe+".json")
}

// Get unmarshals a fresh cache entry into v. The second return is true only
// when a fresh, readable entry was found.
func (c *Cache) Get(key string, v any) (bool, error) {
	path := c.Path(key)

	info, err := os.Stat(path)
	if err != nil {
		return false, nil
	}

	if time.Since(info.ModTime()) > c.ttl {
		return false, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false, nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		// Corrupt entries are treated as absent.
		return false, nil
	}

	return true, nil
}

// Set stores v as an indented JSON blob under the sanitized key
func (c *Cache) Set(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("filecache: marshal %q: %w", key, err)
	}

	if err := os.WriteFile(c.Path(key), data, 0o644); err != nil {
		return fmt.Errorf("filecache: write %q: %w", key, err)
	}

	return nil
}
