package weblate

import (
	"errors"
	"fmt"
)

// FetchError indicates a failed API request: network error, non-2xx status,
// or a malformed JSON body.
type FetchError struct {
	URL       string
	Status    int // HTTP status, 0 for network-level failures
	Message   string
	Cause     error
	Retryable bool // whether the request can be retried
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: HTTP %d: %s", e.URL, e.Status, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch %s: %s", e.URL, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// IsRetryable checks if an error is a retryable fetch failure.
func IsRetryable(err error) bool {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Retryable
	}
	return false
}
