// Package animation provides the frame-driven animation primitives behind
// the count-up counter.
//
// # Core Components
//
//   - [AnimationController]: Drives an animation over time, managing value
//     progression from 0.0 to 1.0 with a configurable duration and easing curve.
//
//   - [Tween]: Maps the controller's 0-1 value onto another range, such as
//     the counter's start and end numbers.
//
//   - Curves: Easing functions that transform linear progress into
//     natural-feeling motion. [EaseOutCubic] is the counter default;
//     [CubicBezier] builds custom curves matching CSS cubic-bezier().
//
// # Frame Loop
//
// Animations are driven cooperatively by the host's frame loop: the host
// calls [StepTickers] once before each repaint, and every active [Ticker]
// receives the elapsed time since it started. Nothing in this package
// spawns goroutines or sleeps; time comes from the injectable [Clock].
//
// # Basic Usage
//
//	controller := animation.NewAnimationController(2 * time.Second)
//	controller.Curve = animation.EaseOutCubic
//	tween := animation.TweenFloat64(0, 100)
//	controller.AddListener(func() {
//	    render(tween.Transform(controller))
//	})
//	controller.Forward()
//
//	// Host frame loop:
//	for running {
//	    animation.StepTickers()
//	    repaint()
//	}
//
//	// When done:
//	controller.Dispose()
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
//
// Ticker is the low-level timing primitive used by [AnimationController].
// Most code should use AnimationController directly rather than Ticker.
//
// The callback receives the elapsed time since Start was called. Tickers are
// driven by the host's frame loop via [StepTickers].
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return Now().Sub(t.start)
}

// StepTickers advances all active tickers.
// This should be called once per frame from the host loop.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Make a copy to avoid holding lock during callbacks
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			elapsed := Now().Sub(ticker.start)
			ticker.callback(elapsed)
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
