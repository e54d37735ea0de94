package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Default cache behavior
const (
	DefaultTTL = time.Hour

	// KeyLength is the number of hex characters of the URL hash used as filename
	KeyLength = 16

	EntryExtension = ".json"

	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// entry is the on-disk envelope around a cached payload.
type entry struct {
	FetchedAt int64           `json:"fetched_at"`
	Payload   json.RawMessage `json:"payload"`
}

// Store is a disk-backed cache keyed by request URL. Entries older than the
// TTL are treated as missing.
type Store struct {
	dir string
	ttl time.Duration
	now func() time.Time
}

// NewStore creates a cache store rooted at dir with the given TTL.
// A non-positive ttl falls back to DefaultTTL.
func NewStore(dir string, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		dir: dir,
		ttl: ttl,
		now: time.Now,
	}
}

// Dir returns the cache directory.
func (s *Store) Dir() string {
	return s.dir
}

// Key returns the cache filename stem for a request URL.
func Key(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:])[:KeyLength]
}

// path returns the entry file path for a URL.
func (s *Store) path(url string) string {
	return filepath.Join(s.dir, Key(url)+EntryExtension)
}

// Get returns the cached payload for a URL and true if a valid entry exists.
// Missing, expired, or unreadable entries are a miss, never an error.
func (s *Store) Get(url string) (json.RawMessage, bool) {
	data, err := os.ReadFile(s.path(url))
	if err != nil {
		return nil, false
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, false
	}

	age := s.now().Unix() - e.FetchedAt
	if age < 0 || time.Duration(age)*time.Second >= s.ttl {
		return nil, false
	}

	return e.Payload, true
}

// Put stores a payload for a URL with the current timestamp. Write failures
// are returned but callers treat them as non-fatal: the cache is purely an
// optimization.
func (s *Store) Put(url string, payload json.RawMessage) error {
	if err := os.MkdirAll(s.dir, DefaultDirPermissions); err != nil {
		return err
	}

	data, err := json.Marshal(entry{
		FetchedAt: s.now().Unix(),
		Payload:   payload,
	})
	if err != nil {
		return err
	}

	return os.WriteFile(s.path(url), data, DefaultFilePermissions)
}

// Clear removes all cache entries. Missing directories are not an error.
func (s *Store) Clear() error {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*"+EntryExtension))
	if err != nil {
		return err
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}
