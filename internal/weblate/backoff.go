package weblate

import (
	"sync"
	"time"
)

// Backoff defaults
const (
	DefaultBaseDelay = 600 * time.Millisecond
	DefaultMaxDelay  = 30 * time.Second
)

// Backoff tracks consecutive request failures and produces exponentially
// growing delays: base, 2*base, 4*base, ... capped at the ceiling. A success
// resets the counter to zero.
type Backoff struct {
	base     time.Duration
	max      time.Duration
	failures int
	mu       sync.Mutex
}

// NewBackoff creates a backoff tracker. Non-positive arguments fall back to
// the defaults.
func NewBackoff(base, max time.Duration) *Backoff {
	if base <= 0 {
		base = DefaultBaseDelay
	}
	if max <= 0 {
		max = DefaultMaxDelay
	}
	return &Backoff{base: base, max: max}
}

// Next records a failure and returns the delay to wait before the next
// attempt.
func (b *Backoff) Next() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()

	delay := b.base
	for i := 0; i < b.failures && delay < b.max; i++ {
		delay *= 2
	}
	if delay > b.max {
		delay = b.max
	}

	b.failures++
	return delay
}

// Reset clears the failure counter after a successful request.
func (b *Backoff) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures = 0
}

// Failures returns the current consecutive failure count.
func (b *Backoff) Failures() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.failures
}
