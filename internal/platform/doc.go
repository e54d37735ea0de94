package platform

// Package platform contains OS/platform integration glue: cache and config
// directory resolution, filesystem helpers, and opening URLs in the system
// browser.
