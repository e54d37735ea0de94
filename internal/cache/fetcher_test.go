package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestGetOrFetchCacheHit(t *testing.T) {
	store := NewStore(t.TempDir(), time.Hour)
	url := "https://example.org/api/projects/"
	cached := json.RawMessage(`{"cached":true}`)

	if err := store.Put(url, cached); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	calls := 0
	fetcher := NewFetcher(store, func(ctx context.Context, url string) (json.RawMessage, error) {
		calls++
		return json.RawMessage(`{"cached":false}`), nil
	})

	got, err := fetcher.GetOrFetch(context.Background(), url)
	if err != nil {
		t.Fatalf("GetOrFetch failed: %v", err)
	}
	if string(got) != string(cached) {
		t.Errorf("Expected cached payload, got %s", got)
	}
	if calls != 0 {
		t.Errorf("Valid cache entry must not trigger a network call, got %d calls", calls)
	}
}

func TestGetOrFetchExpiredEntryRefetchesOnce(t *testing.T) {
	store := NewStore(t.TempDir(), time.Hour)
	url := "https://example.org/api/projects/"

	if err := store.Put(url, json.RawMessage(`{"stale":true}`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	// Age the entry past the TTL
	store.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	calls := 0
	fresh := json.RawMessage(`{"stale":false}`)
	fetcher := NewFetcher(store, func(ctx context.Context, url string) (json.RawMessage, error) {
		calls++
		return fresh, nil
	})

	got, err := fetcher.GetOrFetch(context.Background(), url)
	if err != nil {
		t.Fatalf("GetOrFetch failed: %v", err)
	}
	if string(got) != string(fresh) {
		t.Errorf("Expected fresh payload, got %s", got)
	}
	if calls != 1 {
		t.Errorf("Expired entry should trigger exactly one refetch, got %d", calls)
	}

	// The refetched payload was stored with the aged clock, so it is now valid
	got2, err := fetcher.GetOrFetch(context.Background(), url)
	if err != nil {
		t.Fatalf("GetOrFetch failed: %v", err)
	}
	if string(got2) != string(fresh) {
		t.Errorf("Expected stored payload on second call, got %s", got2)
	}
	if calls != 1 {
		t.Errorf("Second call should be served from cache, got %d fetches", calls)
	}
}

func TestGetOrFetchFailureNotCached(t *testing.T) {
	store := NewStore(t.TempDir(), time.Hour)
	url := "https://example.org/api/projects/"

	fetchErr := errors.New("boom")
	calls := 0
	fetcher := NewFetcher(store, func(ctx context.Context, url string) (json.RawMessage, error) {
		calls++
		if calls == 1 {
			return nil, fetchErr
		}
		return json.RawMessage(`{}`), nil
	})

	if _, err := fetcher.GetOrFetch(context.Background(), url); !errors.Is(err, fetchErr) {
		t.Fatalf("Expected fetch error, got %v", err)
	}

	if _, ok := store.Get(url); ok {
		t.Fatal("Failed fetch must not be cached")
	}

	// Next call fetches again and succeeds
	if _, err := fetcher.GetOrFetch(context.Background(), url); err != nil {
		t.Fatalf("GetOrFetch failed: %v", err)
	}
	if calls != 2 {
		t.Errorf("Expected 2 fetch calls, got %d", calls)
	}
}
