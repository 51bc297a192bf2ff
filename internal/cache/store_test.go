package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/scantree/scantree/domain"
)

func TestOpen_Empty(t *testing.T) {
	dir := t.TempDir()
	c, err := Open(dir, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestInsertAndGet(t *testing.T) {
	dir := t.TempDir()
	c, err := Open(dir, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	path := "/test/file.ts"
	c.Insert(path, Entry{ContentHash: 12345, Module: &domain.ParsedModule{}})

	if _, ok := c.Get(path); !ok {
		t.Fatal("expected entry to be present")
	}
	if !c.IsValid(path, 12345) {
		t.Error("IsValid(12345) = false, want true")
	}
	if c.IsValid(path, 99999) {
		t.Error("IsValid(99999) = true, want false")
	}
}

func TestSaveAndReopen(t *testing.T) {
	dir := t.TempDir()

	c, err := Open(dir, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	c.Insert("/test/file.ts", Entry{ContentHash: 12345, Module: &domain.ParsedModule{}})
	if err := c.Save(); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(dir, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if reopened.Len() != 1 {
		t.Errorf("Len() after reopen = %d, want 1", reopened.Len())
	}
}

func TestOpen_DiscardsWrongVersion(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, cacheFile), `{"version":999,"entries":{}}`)

	c, err := Open(dir, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0 for a discarded wrong-version cache", c.Len())
	}
}

func TestEvictOldest(t *testing.T) {
	dir := t.TempDir()
	c, err := Open(dir, Config{MaxAge: 0, MaxEntries: 2})
	if err != nil {
		t.Fatal(err)
	}

	c.Insert("/a.ts", Entry{ModifiedTime: 1})
	c.Insert("/b.ts", Entry{ModifiedTime: 2})
	c.Insert("/c.ts", Entry{ModifiedTime: 3})

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 after eviction", c.Len())
	}
	if _, ok := c.Get("/a.ts"); ok {
		t.Error("expected oldest entry /a.ts to be evicted")
	}
	if _, ok := c.Get("/c.ts"); !ok {
		t.Error("expected newest entry /c.ts to survive")
	}
}

func TestClear(t *testing.T) {
	dir := t.TempDir()
	c, err := Open(dir, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	c.Insert("/a.ts", Entry{})
	if err := c.Save(); err != nil {
		t.Fatal(err)
	}
	if err := c.Clear(); err != nil {
		t.Fatal(err)
	}
	if c.Len() != 0 {
		t.Errorf("Len() after Clear() = %d, want 0", c.Len())
	}
}

func TestContentHash(t *testing.T) {
	h1 := ContentHash([]byte("hello world"))
	h2 := ContentHash([]byte("hello world"))
	h3 := ContentHash([]byte("different content"))

	if h1 != h2 {
		t.Error("identical content should hash identically")
	}
	if h1 == h3 {
		t.Error("different content should hash differently")
	}
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
