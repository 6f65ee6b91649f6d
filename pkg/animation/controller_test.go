package animation

import (
	"math"
	"testing"
	"time"
)

// stubClock is a minimal controllable clock for package-internal tests.
// External packages should use countuptest.FakeClock instead.
type stubClock struct {
	now time.Time
}

func (c *stubClock) Now() time.Time          { return c.now }
func (c *stubClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func withStubClock(t *testing.T) *stubClock {
	t.Helper()
	clk := &stubClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	prev := SetClock(clk)
	t.Cleanup(func() { SetClock(prev) })
	return clk
}

func TestControllerForwardProgress(t *testing.T) {
	clk := withStubClock(t)

	c := NewAnimationController(1000 * time.Millisecond)
	defer c.Dispose()

	c.Forward()
	if !c.IsAnimating() {
		t.Fatal("expected controller to be animating after Forward")
	}

	clk.advance(250 * time.Millisecond)
	StepTickers()
	if math.Abs(c.Value-0.25) > 1e-9 {
		t.Errorf("value at 250ms = %v, want 0.25", c.Value)
	}

	clk.advance(750 * time.Millisecond)
	StepTickers()
	if c.Value != 1 {
		t.Errorf("value at 1000ms = %v, want 1", c.Value)
	}
	if !c.IsCompleted() {
		t.Error("expected completed status at progress 1")
	}
	if HasActiveTickers() {
		t.Error("expected no active tickers after completion")
	}
}

func TestControllerClampsPastDuration(t *testing.T) {
	clk := withStubClock(t)

	c := NewAnimationController(100 * time.Millisecond)
	defer c.Dispose()

	c.Forward()
	clk.advance(5 * time.Second)
	StepTickers()

	if c.Value != 1 {
		t.Errorf("value = %v, want exactly 1", c.Value)
	}

	// Further frames must not tick a completed controller.
	clk.advance(time.Second)
	StepTickers()
	if c.Value != 1 {
		t.Errorf("value after extra frame = %v, want 1", c.Value)
	}
}

func TestControllerAppliesCurve(t *testing.T) {
	clk := withStubClock(t)

	c := NewAnimationController(1000 * time.Millisecond)
	c.Curve = EaseOutCubic
	defer c.Dispose()

	c.Forward()
	clk.advance(500 * time.Millisecond)
	StepTickers()

	want := 1 - 0.5*0.5*0.5 // 0.875
	if math.Abs(c.Value-want) > 1e-9 {
		t.Errorf("eased value at 50%% = %v, want %v", c.Value, want)
	}
}

func TestControllerZeroDurationJumpsToEnd(t *testing.T) {
	clk := withStubClock(t)

	c := NewAnimationController(0)
	defer c.Dispose()

	c.Forward()
	clk.advance(time.Millisecond)
	StepTickers()

	if c.Value != 1 {
		t.Errorf("value = %v, want 1", c.Value)
	}
	if !c.IsCompleted() {
		t.Error("expected completed status")
	}
}

func TestControllerListeners(t *testing.T) {
	clk := withStubClock(t)

	c := NewAnimationController(100 * time.Millisecond)
	defer c.Dispose()

	var ticks int
	unsub := c.AddListener(func() { ticks++ })

	var statuses []AnimationStatus
	c.AddStatusListener(func(s AnimationStatus) { statuses = append(statuses, s) })

	c.Forward()
	clk.advance(50 * time.Millisecond)
	StepTickers()
	clk.advance(50 * time.Millisecond)
	StepTickers()

	if ticks != 2 {
		t.Errorf("listener fired %d times, want 2", ticks)
	}
	if len(statuses) != 2 || statuses[0] != AnimationForward || statuses[1] != AnimationCompleted {
		t.Errorf("unexpected status sequence: %v", statuses)
	}

	unsub()
	c.Reset()
	if ticks != 2 {
		t.Error("listener fired after unsubscribe")
	}
}

func TestControllerReset(t *testing.T) {
	clk := withStubClock(t)

	c := NewAnimationController(100 * time.Millisecond)
	defer c.Dispose()

	c.Forward()
	clk.advance(time.Second)
	StepTickers()

	c.Reset()
	if c.Value != 0 {
		t.Errorf("value after reset = %v, want 0", c.Value)
	}
	if c.Status() != AnimationDismissed {
		t.Errorf("status after reset = %v, want dismissed", c.Status())
	}
}

func TestControllerDisposeStopsTicker(t *testing.T) {
	withStubClock(t)

	c := NewAnimationController(time.Second)
	c.Forward()
	if !HasActiveTickers() {
		t.Fatal("expected an active ticker")
	}

	c.Dispose()
	if HasActiveTickers() {
		t.Error("expected no active tickers after dispose")
	}
}

func TestTickerElapsed(t *testing.T) {
	clk := withStubClock(t)

	tk := NewTicker(func(time.Duration) {})
	if tk.Elapsed() != 0 {
		t.Error("inactive ticker should report zero elapsed")
	}

	tk.Start()
	clk.advance(42 * time.Millisecond)
	if tk.Elapsed() != 42*time.Millisecond {
		t.Errorf("elapsed = %v, want 42ms", tk.Elapsed())
	}
	tk.Stop()
}
