// Package visibility reports when targets intersect the viewport.
//
// The package defines the minimal observation contract the counter depends
// on ([Observer]) and a registry-based implementation ([ViewportObserver])
// for hosts that know their viewport and element geometry. Tests use a
// scripted fake instead (see package countuptest).
//
// Like the animation frame loop, observation is cooperative: the host
// publishes geometry and calls [ViewportObserver.Step] once per frame;
// callbacks fire synchronously from Step on the same goroutine.
package visibility

import (
	"sync"

	"github.com/go-drift/countup/pkg/geometry"
)

// DefaultThreshold is the visible-area fraction at which counters trigger.
const DefaultThreshold = 0.1

// Entry reports a target's visibility at a point in time.
type Entry struct {
	// Fraction is the portion of the target's area inside the viewport,
	// in [0, 1].
	Fraction float64
	// Intersecting is true when Fraction meets or exceeds the observation
	// threshold.
	Intersecting bool
}

// Subscription is an active observation that can be released.
type Subscription interface {
	// Cancel releases the observation. Safe to call more than once;
	// no callbacks fire after Cancel returns.
	Cancel()
}

// Observer registers visibility callbacks for targets.
//
// Observe reports the target's current visibility once immediately, then
// again whenever the intersection state (relative to threshold) changes.
type Observer interface {
	Observe(target *Target, threshold float64, fn func(Entry)) Subscription
}

// Target is the handle binding a counter to one visual element. The host
// owns the element itself; the target carries only its bounds in viewport
// coordinates.
type Target struct {
	mu     sync.Mutex
	bounds geometry.Rect
}

// NewTarget creates a target with empty bounds.
func NewTarget() *Target {
	return &Target{}
}

// SetBounds updates the target's bounds in viewport coordinates.
// Takes effect on the observer's next Step.
func (t *Target) SetBounds(r geometry.Rect) {
	t.mu.Lock()
	t.bounds = r
	t.mu.Unlock()
}

// Bounds returns the target's current bounds.
func (t *Target) Bounds() geometry.Rect {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.bounds
}
