package stats

// Package stats implements the statistics service: background refresh jobs
// that walk the Weblate API for project and component translation percentages,
// with progress callbacks and cancellation.
