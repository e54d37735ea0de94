package cache

import (
	"context"
	"sync"
	"time"
)

// DefaultRequestSpacing is the minimum delay between outbound API requests.
const DefaultRequestSpacing = 600 * time.Millisecond

// Pacer enforces a minimum spacing between outbound requests. It is a
// simplified single-slot rate limiter: Weblate asks clients to stay well
// under its request quota, and the app never needs bursts.
type Pacer struct {
	spacing time.Duration
	last    time.Time
	mu      sync.Mutex
}

// NewPacer creates a pacer with the given minimum spacing between requests.
// A non-positive spacing falls back to DefaultRequestSpacing.
func NewPacer(spacing time.Duration) *Pacer {
	if spacing <= 0 {
		spacing = DefaultRequestSpacing
	}
	return &Pacer{spacing: spacing}
}

// Wait blocks until the spacing since the previous request has elapsed or the
// context is cancelled. The slot is reserved under the lock before sleeping,
// so concurrent waiters queue up instead of firing together.
func (p *Pacer) Wait(ctx context.Context) error {
	p.mu.Lock()
	now := time.Now()
	slot := p.last.Add(p.spacing)
	if slot.Before(now) {
		slot = now
	}
	p.last = slot
	p.mu.Unlock()

	wait := time.Until(slot)
	if wait <= 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return nil
	}
}
