package visibility

import (
	"sync"

	"github.com/go-drift/countup/pkg/errors"
	"github.com/go-drift/countup/pkg/geometry"
)

// ViewportObserver computes target visibility against a host-published
// viewport rectangle.
//
// The host sets the viewport with SetViewport, updates target bounds as
// layout or scrolling changes them, and calls Step once per frame.
// Callbacks fire synchronously from Step (and from SetViewport, which
// steps implicitly) when a target crosses its observation threshold.
type ViewportObserver struct {
	mu       sync.Mutex
	viewport geometry.Rect
	watches  map[*watch]struct{}
}

// watch is one registered observation.
type watch struct {
	observer  *ViewportObserver
	target    *Target
	threshold float64
	fn        func(Entry)

	intersecting bool
	reported     bool
	cancelled    bool
}

// NewViewportObserver creates an observer with an empty viewport.
func NewViewportObserver() *ViewportObserver {
	return &ViewportObserver{
		watches: make(map[*watch]struct{}),
	}
}

// SetViewport publishes the viewport rectangle and re-evaluates all
// observations against it.
func (o *ViewportObserver) SetViewport(r geometry.Rect) {
	o.mu.Lock()
	o.viewport = r
	o.mu.Unlock()
	o.Step()
}

// Viewport returns the current viewport rectangle.
func (o *ViewportObserver) Viewport() geometry.Rect {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.viewport
}

// Observe registers fn for the target at the given threshold. A threshold
// of 0 or less falls back to DefaultThreshold. The target's current
// visibility is reported once before Observe returns; subsequent reports
// fire from Step when the intersection state changes.
func (o *ViewportObserver) Observe(target *Target, threshold float64, fn func(Entry)) Subscription {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	w := &watch{
		observer:  o,
		target:    target,
		threshold: threshold,
		fn:        fn,
	}

	o.mu.Lock()
	o.watches[w] = struct{}{}
	o.mu.Unlock()

	o.Step()
	return w
}

// ActiveCount returns the number of live observations.
func (o *ViewportObserver) ActiveCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.watches)
}

// Step re-evaluates every observation against the current viewport and
// target bounds, notifying callbacks whose intersection state changed.
// The host calls this once per frame, after layout.
func (o *ViewportObserver) Step() {
	o.mu.Lock()
	viewport := o.viewport
	watches := make([]*watch, 0, len(o.watches))
	for w := range o.watches {
		watches = append(watches, w)
	}
	o.mu.Unlock()

	for _, w := range watches {
		w.evaluate(viewport)
	}
}

// evaluate computes the watch's entry and notifies on state change.
// Runs outside the observer lock so callbacks can cancel subscriptions.
func (w *watch) evaluate(viewport geometry.Rect) {
	if w.cancelled || w.target == nil || w.fn == nil {
		return
	}

	fraction := w.target.Bounds().VisibleFraction(viewport)
	intersecting := fraction >= w.threshold

	if w.reported && intersecting == w.intersecting {
		return
	}
	w.reported = true
	w.intersecting = intersecting

	w.notify(Entry{Fraction: fraction, Intersecting: intersecting})
}

// notify invokes the callback with panic isolation so a faulty host
// callback cannot take down the frame loop.
func (w *watch) notify(entry Entry) {
	defer errors.Recover("visibility.notify")
	w.fn(entry)
}

// Cancel releases the observation.
func (w *watch) Cancel() {
	if w.cancelled {
		return
	}
	w.cancelled = true

	w.observer.mu.Lock()
	delete(w.observer.watches, w)
	w.observer.mu.Unlock()
}
