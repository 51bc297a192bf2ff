// Package cache persists one parse result per source file, keyed by path,
// so a second run over an unchanged tree skips tree-sitter parsing entirely.
package cache

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/scantree/scantree/domain"
)

const (
	cacheVersion = 1
	cacheFile    = "cache.json"
)

// Config bounds the cache's size and advisory age.
type Config struct {
	MaxAge     time.Duration
	MaxEntries int
}

// DefaultConfig matches the reference engine's defaults: a week of advisory
// staleness and a ten-thousand-entry eviction ceiling.
func DefaultConfig() Config {
	return Config{
		MaxAge:     7 * 24 * time.Hour,
		MaxEntries: 10000,
	}
}

// Entry is one file's cached parse result alongside the fingerprint it was
// computed from.
type Entry struct {
	ContentHash  uint64               `json:"content_hash"`
	ModifiedTime int64                `json:"modified_time"`
	Module       *domain.ParsedModule `json:"module"`
}

type cacheData struct {
	Version   int              `json:"version"`
	CreatedAt int64            `json:"created_at"`
	Entries   map[string]Entry `json:"entries"`
}

// Cache is a version-gated, size-bounded JSON store of parse results. It is
// not safe for concurrent use — internal/graph serializes access to it with
// a mutex held for each lookup and each insert (parsing runs outside it).
type Cache struct {
	dir    string
	config Config
	data   cacheData
	dirty  bool
}

// Open loads (or initializes) the cache rooted at dir, creating dir if
// necessary. A cache file from an older/newer version, or one that fails to
// parse, is discarded rather than treated as an error.
func Open(dir string, config Config) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory %s: %w", dir, err)
	}

	c := &Cache{dir: dir, config: config}
	path := filepath.Join(dir, cacheFile)

	content, err := os.ReadFile(path)
	if err != nil {
		c.data = freshCacheData()
		return c, nil
	}

	var data cacheData
	if json.Unmarshal(content, &data) != nil || data.Version != cacheVersion {
		c.data = freshCacheData()
		return c, nil
	}

	c.data = data
	return c, nil
}

func freshCacheData() cacheData {
	return cacheData{
		Version:   cacheVersion,
		CreatedAt: time.Now().Unix(),
		Entries:   make(map[string]Entry),
	}
}

// Get returns the cached entry for path, if any.
func (c *Cache) Get(path string) (Entry, bool) {
	entry, ok := c.data.Entries[path]
	return entry, ok
}

// IsValid reports whether path's cached entry matches contentHash.
func (c *Cache) IsValid(path string, contentHash uint64) bool {
	entry, ok := c.Get(path)
	return ok && entry.ContentHash == contentHash
}

// Insert records (or overwrites) path's entry, evicting the oldest entries
// by ModifiedTime if the cache now exceeds its configured size.
func (c *Cache) Insert(path string, entry Entry) {
	c.data.Entries[path] = entry
	c.dirty = true

	if len(c.data.Entries) > c.config.MaxEntries {
		c.evictOldest()
	}
}

func (c *Cache) evictOldest() {
	type keyed struct {
		path string
		time int64
	}
	entries := make([]keyed, 0, len(c.data.Entries))
	for path, entry := range c.data.Entries {
		entries = append(entries, keyed{path, entry.ModifiedTime})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].time < entries[j].time })

	toRemove := len(entries) - c.config.MaxEntries
	if toRemove <= 0 {
		return
	}
	for _, e := range entries[:toRemove] {
		delete(c.data.Entries, e.path)
	}
}

// Save writes the cache to disk if it has pending changes.
func (c *Cache) Save() error {
	if !c.dirty {
		return nil
	}

	content, err := json.Marshal(c.data)
	if err != nil {
		return fmt.Errorf("marshal cache: %w", err)
	}

	path := filepath.Join(c.dir, cacheFile)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write cache file %s: %w", path, err)
	}
	c.dirty = false
	return nil
}

// Clear empties the cache, in memory and on disk.
func (c *Cache) Clear() error {
	c.data.Entries = make(map[string]Entry)
	c.dirty = true

	path := filepath.Join(c.dir, cacheFile)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove cache file %s: %w", path, err)
	}
	return nil
}

// Len reports how many entries the cache currently holds.
func (c *Cache) Len() int {
	return len(c.data.Entries)
}

// Close saves any pending changes. Call via defer right after Open, the way
// the reference cache saves itself when dropped.
func (c *Cache) Close() error {
	return c.Save()
}

// ContentHash computes a 64-bit FNV-1a hash of file content, the same
// non-cryptographic fingerprint kind the reference cache uses to detect
// whether a file has changed since it was last parsed.
func ContentHash(content []byte) uint64 {
	h := fnv.New64a()
	h.Write(content)
	return h.Sum64()
}

// ModifiedTime returns path's modification time as a Unix timestamp, or 0
// if it cannot be statted.
func ModifiedTime(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.ModTime().Unix()
}
