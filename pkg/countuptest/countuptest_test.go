package countuptest

import (
	"testing"
	"time"

	"github.com/go-drift/countup/pkg/visibility"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	elapsed := clk.Now().Sub(start)

	if elapsed != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", elapsed)
	}
}

func TestFakeClock_Set(t *testing.T) {
	clk := NewFakeClock()
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clk.Set(target)
	if !clk.Now().Equal(target) {
		t.Errorf("expected %v, got %v", target, clk.Now())
	}
}

func TestFakeObserver_ReportsOnStateChange(t *testing.T) {
	obs := NewFakeObserver()

	var entries []visibility.Entry
	sub := obs.Observe(visibility.NewTarget(), visibility.DefaultThreshold, func(e visibility.Entry) {
		entries = append(entries, e)
	})
	defer sub.Cancel()

	// Initial report: hidden.
	if len(entries) != 1 || entries[0].Intersecting {
		t.Fatalf("unexpected initial entries: %+v", entries)
	}

	obs.SetFraction(0.05) // under threshold, state unchanged
	if len(entries) != 1 {
		t.Fatalf("expected no report under threshold, got %d", len(entries))
	}

	obs.SetFraction(0.5) // crosses
	if len(entries) != 2 || !entries[1].Intersecting {
		t.Fatalf("expected enter report, got %+v", entries)
	}

	obs.SetFraction(0) // leaves
	if len(entries) != 3 || entries[2].Intersecting {
		t.Fatalf("expected leave report, got %+v", entries)
	}
}

func TestFakeObserver_CancelReleasesSubscription(t *testing.T) {
	obs := NewFakeObserver()

	var count int
	sub := obs.Observe(visibility.NewTarget(), 0.5, func(visibility.Entry) { count++ })

	if obs.ActiveCount() != 1 {
		t.Fatalf("ActiveCount = %d, want 1", obs.ActiveCount())
	}

	sub.Cancel()
	sub.Cancel()

	if obs.ActiveCount() != 0 {
		t.Errorf("ActiveCount after cancel = %d, want 0", obs.ActiveCount())
	}

	obs.SetFraction(1)
	if count != 1 {
		t.Errorf("callback fired after cancel: %d calls", count)
	}
}

func TestFakeObserver_Emit(t *testing.T) {
	obs := NewFakeObserver()

	var entries []visibility.Entry
	sub := obs.Observe(visibility.NewTarget(), visibility.DefaultThreshold, func(e visibility.Entry) {
		entries = append(entries, e)
	})
	defer sub.Cancel()

	// Emit bypasses state tracking: duplicates are delivered as-is.
	obs.Emit(visibility.Entry{Fraction: 1, Intersecting: true})
	obs.Emit(visibility.Entry{Fraction: 1, Intersecting: true})

	if len(entries) != 3 {
		t.Errorf("expected 3 entries (1 initial + 2 emitted), got %d", len(entries))
	}
}
