package cache

import (
	"context"
	"testing"
	"time"
)

func TestPacerFirstRequestImmediate(t *testing.T) {
	pacer := NewPacer(time.Second)

	start := time.Now()
	if err := pacer.Wait(context.Background()); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("First request should not be delayed, waited %v", elapsed)
	}
}

func TestPacerSpacesRequests(t *testing.T) {
	spacing := 50 * time.Millisecond
	pacer := NewPacer(spacing)

	if err := pacer.Wait(context.Background()); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}

	start := time.Now()
	if err := pacer.Wait(context.Background()); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < spacing {
		t.Errorf("Second request should wait at least %v, waited %v", spacing, elapsed)
	}
}

func TestPacerConcurrentWaitersAreSpaced(t *testing.T) {
	spacing := 50 * time.Millisecond
	pacer := NewPacer(spacing)

	done := make(chan time.Time, 2)
	for i := 0; i < 2; i++ {
		go func() {
			if err := pacer.Wait(context.Background()); err != nil {
				t.Errorf("Wait failed: %v", err)
			}
			done <- time.Now()
		}()
	}

	first := <-done
	second := <-done
	if second.Before(first) {
		first, second = second, first
	}

	// Each waiter reserves its own slot, so the second completion must
	// trail the first by roughly the spacing.
	if gap := second.Sub(first); gap < spacing/2 {
		t.Errorf("Concurrent waiters fired %v apart, want at least %v", gap, spacing)
	}
}

func TestPacerCancelledContext(t *testing.T) {
	pacer := NewPacer(time.Minute)

	if err := pacer.Wait(context.Background()); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := pacer.Wait(ctx); err != context.Canceled {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestNewPacerDefaultSpacing(t *testing.T) {
	pacer := NewPacer(0)
	if pacer.spacing != DefaultRequestSpacing {
		t.Errorf("Expected default spacing %v, got %v", DefaultRequestSpacing, pacer.spacing)
	}
}
