package cache

// Package cache provides the disk-backed response cache with TTL expiry and the
// request pacer that spaces outbound API calls. Entries are stored as JSON files
// under the user cache directory and are valid for one hour.
