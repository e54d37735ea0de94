package model

import "testing"

func TestRefreshStatusString(t *testing.T) {
	tests := []struct {
		status   RefreshStatus
		expected string
	}{
		{RefreshStatusPending, "Pending"},
		{RefreshStatusLoading, "Loading"},
		{RefreshStatusCompleted, "Completed"},
		{RefreshStatusCancelled, "Cancelled"},
		{RefreshStatusError, "Error"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestRefreshStatusIsActive(t *testing.T) {
	active := []RefreshStatus{RefreshStatusPending, RefreshStatusLoading}
	for _, s := range active {
		if !s.IsActive() {
			t.Errorf("%s should be active", s)
		}
	}

	inactive := []RefreshStatus{RefreshStatusCompleted, RefreshStatusCancelled, RefreshStatusError}
	for _, s := range inactive {
		if s.IsActive() {
			t.Errorf("%s should not be active", s)
		}
	}
}

func TestRefreshStatusIsFinished(t *testing.T) {
	finished := []RefreshStatus{RefreshStatusCompleted, RefreshStatusCancelled, RefreshStatusError}
	for _, s := range finished {
		if !s.IsFinished() {
			t.Errorf("%s should be finished", s)
		}
	}

	unfinished := []RefreshStatus{RefreshStatusPending, RefreshStatusLoading}
	for _, s := range unfinished {
		if s.IsFinished() {
			t.Errorf("%s should not be finished", s)
		}
	}
}
