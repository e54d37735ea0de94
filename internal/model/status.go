package model

import "time"

// RefreshStatus represents the status of a background refresh job
type RefreshStatus string

const (
	// RefreshStatusPending means the job is created but not started
	RefreshStatusPending RefreshStatus = "Pending"

	// RefreshStatusLoading means the job is fetching data
	RefreshStatusLoading RefreshStatus = "Loading"

	// RefreshStatusCompleted means the job finished successfully
	RefreshStatusCompleted RefreshStatus = "Completed"

	// RefreshStatusCancelled means the job was cancelled before finishing
	RefreshStatusCancelled RefreshStatus = "Cancelled"

	// RefreshStatusError means the job failed with an error
	RefreshStatusError RefreshStatus = "Error"
)

// String returns the string representation of RefreshStatus
func (rs RefreshStatus) String() string {
	return string(rs)
}

// IsActive returns true if the job is in an active state
func (rs RefreshStatus) IsActive() bool {
	return rs == RefreshStatusPending || rs == RefreshStatusLoading
}

// IsFinished returns true if the job is in a finished state (completed, cancelled, or error)
func (rs RefreshStatus) IsFinished() bool {
	return rs == RefreshStatusCompleted || rs == RefreshStatusCancelled || rs == RefreshStatusError
}

// RefreshKind identifies what a refresh job is loading.
type RefreshKind string

const (
	// RefreshKindOverview loads the project overview list
	RefreshKindOverview RefreshKind = "overview"

	// RefreshKindProject loads a single project's components
	RefreshKindProject RefreshKind = "project"
)

// RefreshJob tracks one background fetch pass against the Weblate API.
type RefreshJob struct {
	ID         string
	Kind       RefreshKind
	Status     RefreshStatus
	Page       int    // current page of the paginated listing
	TotalPages int    // total pages, 0 if unknown
	Done       int    // items with statistics fetched so far
	Total      int    // total items to fetch statistics for
	LastError  string // last error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}
