package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	key := Key("https://translate.fedoraproject.org/api/projects/")

	if len(key) != KeyLength {
		t.Errorf("Expected key length %d, got %d", KeyLength, len(key))
	}

	// Same URL, same key
	if Key("https://translate.fedoraproject.org/api/projects/") != key {
		t.Error("Key should be deterministic")
	}

	// Different URL, different key
	if Key("https://translate.fedoraproject.org/api/projects/abc/") == key {
		t.Error("Different URLs should produce different keys")
	}
}

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir(), time.Hour)
	url := "https://example.org/api/projects/"
	payload := json.RawMessage(`{"count":1,"results":[{"slug":"anaconda"}]}`)

	if _, ok := store.Get(url); ok {
		t.Fatal("Empty store should miss")
	}

	if err := store.Put(url, payload); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, ok := store.Get(url)
	if !ok {
		t.Fatal("Expected cache hit after Put")
	}
	if string(got) != string(payload) {
		t.Errorf("Got payload %s, want %s", got, payload)
	}
}

func TestStoreExpiry(t *testing.T) {
	store := NewStore(t.TempDir(), time.Hour)
	url := "https://example.org/api/projects/"

	if err := store.Put(url, json.RawMessage(`{}`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	// Fresh entry is served
	if _, ok := store.Get(url); !ok {
		t.Fatal("Fresh entry should hit")
	}

	// Entry just under the TTL is still valid
	store.now = func() time.Time { return time.Now().Add(time.Hour - time.Minute) }
	if _, ok := store.Get(url); !ok {
		t.Error("Entry younger than TTL should hit")
	}

	// Entry older than the TTL is a miss
	store.now = func() time.Time { return time.Now().Add(time.Hour + time.Minute) }
	if _, ok := store.Get(url); ok {
		t.Error("Entry older than TTL should miss")
	}
}

func TestStoreMalformedEntry(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, time.Hour)
	url := "https://example.org/api/projects/"

	path := filepath.Join(dir, Key(url)+EntryExtension)
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatalf("Failed to write corrupt entry: %v", err)
	}

	if _, ok := store.Get(url); ok {
		t.Error("Malformed entry should be a miss, not a hit")
	}
}

func TestStoreClear(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, time.Hour)

	urls := []string{
		"https://example.org/api/projects/",
		"https://example.org/api/projects/anaconda/statistics/",
	}
	for _, u := range urls {
		if err := store.Put(u, json.RawMessage(`{}`)); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	for _, u := range urls {
		if _, ok := store.Get(u); ok {
			t.Errorf("Entry for %s should be gone after Clear", u)
		}
	}

	matches, _ := filepath.Glob(filepath.Join(dir, "*"+EntryExtension))
	if len(matches) != 0 {
		t.Errorf("Expected no entry files after Clear, found %d", len(matches))
	}
}

func TestStoreClearMissingDir(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "does-not-exist"), time.Hour)
	if err := store.Clear(); err != nil {
		t.Errorf("Clear on missing dir should not fail: %v", err)
	}
}

func TestNewStoreDefaultTTL(t *testing.T) {
	store := NewStore(t.TempDir(), 0)
	if store.ttl != DefaultTTL {
		t.Errorf("Expected default TTL %v, got %v", DefaultTTL, store.ttl)
	}
}
