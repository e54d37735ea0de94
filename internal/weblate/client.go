package weblate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/yeager/fedora-l10n/internal/cache"
	"github.com/yeager/fedora-l10n/internal/model"
)

// API defaults
const (
	DefaultBaseURL     = "https://translate.fedoraproject.org/api"
	DefaultPageSize    = 50
	DefaultMaxAttempts = 5
	DefaultTimeout     = 30 * time.Second
)

// KeyFunc returns the API key to authenticate with, or "" for anonymous
// requests.
type KeyFunc func() string

// ProgressFunc reports pagination progress while walking a listing.
type ProgressFunc func(page, totalPages int)

// Config configures a Client. Zero values fall back to defaults; a nil Store
// disables caching.
type Config struct {
	BaseURL     string
	HTTPClient  *http.Client
	KeyFunc     KeyFunc
	PageSize    int
	MaxAttempts int
	Store       *cache.Store
	Pacer       *cache.Pacer
	Backoff     *Backoff
}

// Client talks to the Weblate REST API. All requests go through the cache
// layer (when configured), the request pacer, and the retry loop.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	keyFunc     KeyFunc
	pageSize    int
	maxAttempts int
	pacer       *cache.Pacer
	backoff     *Backoff
	fetcher     *cache.Fetcher
}

// NewClient creates a Weblate API client.
func NewClient(cfg Config) *Client {
	c := &Client{
		baseURL:     cfg.BaseURL,
		httpClient:  cfg.HTTPClient,
		keyFunc:     cfg.KeyFunc,
		pageSize:    cfg.PageSize,
		maxAttempts: cfg.MaxAttempts,
		pacer:       cfg.Pacer,
		backoff:     cfg.Backoff,
	}

	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	if c.pageSize <= 0 {
		c.pageSize = DefaultPageSize
	}
	if c.maxAttempts <= 0 {
		c.maxAttempts = DefaultMaxAttempts
	}
	if c.pacer == nil {
		c.pacer = cache.NewPacer(cache.DefaultRequestSpacing)
	}
	if c.backoff == nil {
		c.backoff = NewBackoff(DefaultBaseDelay, DefaultMaxDelay)
	}

	if cfg.Store != nil {
		c.fetcher = cache.NewFetcher(cfg.Store, c.fetch)
	}

	return c
}

// Backoff returns the backoff tracker for inspection.
func (c *Client) Backoff() *Backoff {
	return c.backoff
}

// ListProjects returns all projects, walking the paginated listing. The
// progress callback, when non-nil, receives the current and total page count.
func (c *Client) ListProjects(ctx context.Context, progress ProgressFunc) ([]model.ProjectSummary, error) {
	first := fmt.Sprintf("%s/projects/?page_size=%d", c.baseURL, c.pageSize)
	return listAll[model.ProjectSummary](ctx, c, first, progress)
}

// ListComponents returns all components of a project.
func (c *Client) ListComponents(ctx context.Context, slug string) ([]model.ComponentSummary, error) {
	first := fmt.Sprintf("%s/projects/%s/components/?page_size=%d",
		c.baseURL, url.PathEscape(slug), c.pageSize)
	return listAll[model.ComponentSummary](ctx, c, first, nil)
}

// ProjectStatistics returns overall statistics for a project.
func (c *Client) ProjectStatistics(ctx context.Context, slug string) (model.Stats, error) {
	u := fmt.Sprintf("%s/projects/%s/statistics/", c.baseURL, url.PathEscape(slug))
	return c.getStats(ctx, u)
}

// LanguageStatistics returns per-language statistics for a project.
func (c *Client) LanguageStatistics(ctx context.Context, slug, lang string) (model.Stats, error) {
	u := fmt.Sprintf("%s/projects/%s/statistics/%s/",
		c.baseURL, url.PathEscape(slug), url.PathEscape(lang))
	return c.getStats(ctx, u)
}

// ComponentStatistics returns per-language statistics for a component.
func (c *Client) ComponentStatistics(ctx context.Context, project, component, lang string) (model.Stats, error) {
	u := fmt.Sprintf("%s/components/%s/%s/statistics/%s/",
		c.baseURL, url.PathEscape(project), url.PathEscape(component), url.PathEscape(lang))
	return c.getStats(ctx, u)
}

// listPage is one page of a paginated Weblate listing.
type listPage[T any] struct {
	Count   int     `json:"count"`
	Next    *string `json:"next"`
	Results []T     `json:"results"`
}

// listAll walks a paginated listing following the "next" links.
func listAll[T any](ctx context.Context, c *Client, first string, progress ProgressFunc) ([]T, error) {
	var all []T
	next := first
	page := 0

	for next != "" {
		payload, err := c.getJSON(ctx, next)
		if err != nil {
			return nil, err
		}

		var p listPage[T]
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, &FetchError{
				URL:     next,
				Message: "malformed listing payload",
				Cause:   err,
			}
		}

		all = append(all, p.Results...)
		page++

		if progress != nil {
			totalPages := (p.Count + c.pageSize - 1) / c.pageSize
			progress(page, totalPages)
		}

		if p.Next != nil {
			next = *p.Next
		} else {
			next = ""
		}
	}

	return all, nil
}

// getStats fetches and decodes a statistics payload.
func (c *Client) getStats(ctx context.Context, u string) (model.Stats, error) {
	payload, err := c.getJSON(ctx, u)
	if err != nil {
		return model.Stats{}, err
	}

	var stats model.Stats
	if err := json.Unmarshal(payload, &stats); err != nil {
		return model.Stats{}, &FetchError{
			URL:     u,
			Message: "malformed statistics payload",
			Cause:   err,
		}
	}

	return stats, nil
}

// getJSON returns the payload for a URL, served from cache when a valid entry
// exists.
func (c *Client) getJSON(ctx context.Context, u string) (json.RawMessage, error) {
	if c.fetcher != nil {
		return c.fetcher.GetOrFetch(ctx, u)
	}
	return c.fetch(ctx, u)
}

// fetch performs the paced HTTP GET with retry on rate limiting and network
// errors.
func (c *Client) fetch(ctx context.Context, u string) (json.RawMessage, error) {
	var lastErr error

	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		if attempt > 0 {
			delay := c.backoff.Next()
			log.Printf("weblate: retrying %s in %v (attempt %d/%d)", u, delay, attempt+1, c.maxAttempts)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		if err := c.pacer.Wait(ctx); err != nil {
			return nil, err
		}

		payload, err := c.doRequest(ctx, u)
		if err == nil {
			c.backoff.Reset()
			return payload, nil
		}

		lastErr = err
		if !IsRetryable(err) {
			return nil, err
		}
	}

	return nil, lastErr
}

// doRequest performs a single HTTP GET and validates the response.
func (c *Client) doRequest(ctx context.Context, u string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &FetchError{URL: u, Message: "invalid request", Cause: err}
	}

	req.Header.Set("Accept", "application/json")
	if c.keyFunc != nil {
		if key := c.keyFunc(); key != "" {
			req.Header.Set("Authorization", "Token "+key)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &FetchError{
			URL:       u,
			Message:   "request failed",
			Cause:     err,
			Retryable: true,
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{
			URL:       u,
			Message:   "reading response body",
			Cause:     err,
			Retryable: true,
		}
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &FetchError{
			URL:       u,
			Status:    resp.StatusCode,
			Message:   "rate limited",
			Retryable: true,
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{
			URL:     u,
			Status:  resp.StatusCode,
			Message: http.StatusText(resp.StatusCode),
		}
	}

	if !json.Valid(body) {
		return nil, &FetchError{
			URL:     u,
			Message: "response is not valid JSON",
		}
	}

	return json.RawMessage(body), nil
}
