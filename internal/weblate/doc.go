package weblate

// Package weblate implements the REST client for the Weblate translation
// platform: paginated listings, statistics endpoints, token authentication,
// and retry with exponential backoff on rate limiting.
