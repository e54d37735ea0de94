package cache

import (
	"context"
	"encoding/json"
	"log"
)

// FetchFunc retrieves a payload for a URL from the network.
type FetchFunc func(ctx context.Context, url string) (json.RawMessage, error)

// Fetcher composes a Store with a network fetch: cache hits skip the network
// entirely, misses fetch once and store the result. Failed fetches are never
// cached.
type Fetcher struct {
	store *Store
	fetch FetchFunc
}

// NewFetcher creates a cache-backed fetcher.
func NewFetcher(store *Store, fetch FetchFunc) *Fetcher {
	return &Fetcher{
		store: store,
		fetch: fetch,
	}
}

// GetOrFetch returns a valid cached payload for the URL, or fetches and
// stores it.
func (f *Fetcher) GetOrFetch(ctx context.Context, url string) (json.RawMessage, error) {
	if payload, ok := f.store.Get(url); ok {
		return payload, nil
	}

	payload, err := f.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	if err := f.store.Put(url, payload); err != nil {
		// Cache writes are best-effort
		log.Printf("cache write failed for %s: %v", url, err)
	}

	return payload, nil
}

// Store returns the underlying store for cache management (clear, inspection).
func (f *Fetcher) Store() *Store {
	return f.store
}
