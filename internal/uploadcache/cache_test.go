// ABOUTME: Tests for the Badger-backed upload cache.
// ABOUTME: Validates round-trips, hashing, counting, and clearing.

package uploadcache

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	cache, err := Open(filepath.Join(t.TempDir(), "uploads"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}

func TestPutGet(t *testing.T) {
	cache := openTestCache(t)

	entry := &Entry{
		ResourceID: "abc123",
		MediaType:  "image/png",
		PublicURI:  "https://drive.google.com/uc?id=abc123",
		ViewerURI:  "https://drive.google.com/file/d/abc123/view",
	}
	if err := cache.Put("digest1", entry); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := cache.Get("digest1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ResourceID != entry.ResourceID || got.MediaType != entry.MediaType {
		t.Errorf("round-trip mismatch: %+v", got)
	}
	if got.UploadedAt == 0 {
		t.Error("expected UploadedAt to be stamped")
	}
}

func TestGetMissing(t *testing.T) {
	cache := openTestCache(t)

	_, err := cache.Get("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCountAndClear(t *testing.T) {
	cache := openTestCache(t)

	for _, d := range []string{"a", "b", "c"} {
		if err := cache.Put(d, &Entry{ResourceID: d}); err != nil {
			t.Fatal(err)
		}
	}

	count, err := cache.Count()
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Errorf("expected 3 entries, got %d", count)
	}

	removed, err := cache.Clear()
	if err != nil {
		t.Fatal(err)
	}
	if removed != 3 {
		t.Errorf("expected 3 removed, got %d", removed)
	}

	count, err = cache.Count()
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("expected empty cache after clear, got %d", count)
	}
}

func TestHashFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.bin")
	if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
		t.Fatal(err)
	}

	h1, err := HashFile(path)
	if err != nil {
		t.Fatalf("HashFile failed: %v", err)
	}
	if len(h1) != 64 {
		t.Errorf("expected hex sha256, got %q", h1)
	}

	h2, _ := HashFile(path)
	if h1 != h2 {
		t.Error("hash not deterministic")
	}

	other := filepath.Join(dir, "b.bin")
	if err := os.WriteFile(other, []byte("different"), 0644); err != nil {
		t.Fatal(err)
	}
	h3, _ := HashFile(other)
	if h1 == h3 {
		t.Error("different content produced the same hash")
	}
}
