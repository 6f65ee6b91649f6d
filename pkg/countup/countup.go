// Package countup animates a numeric counter from a start value to an end
// value when its bound target scrolls into view.
//
// A [Counter] owns the current numeric value and renders it as a formatted
// string (decimals, thousands separator, prefix/suffix). Bind it to a
// visual element with [Counter.Attach]; the first time the target becomes
// at least 10% visible, the counter runs a single easing-curve
// interpolation from Start to End over Duration. The run is one-shot:
// scrolling the target out and back in does not replay it.
//
// Counters are driven by the same cooperative frame loop as package
// animation: the host calls animation.StepTickers once per frame, and all
// value updates and callbacks happen synchronously on that goroutine.
// A Counter is not safe for concurrent use.
//
//	counter := countup.NewCounter(countup.Config{
//	    End:       12500,
//	    Duration:  2 * time.Second,
//	    Separator: ",",
//	    Prefix:    "$",
//	})
//	counter.AddListener(func() {
//	    label.SetText(counter.Value())
//	})
//	counter.Attach(observer, target)
//	defer counter.Dispose()
package countup

import (
	"time"

	"github.com/go-drift/countup/pkg/animation"
	"github.com/go-drift/countup/pkg/errors"
	"github.com/go-drift/countup/pkg/format"
	"github.com/go-drift/countup/pkg/visibility"
)

// DefaultDuration is used when Config.Duration is zero.
const DefaultDuration = 2 * time.Second

// Config describes one counter. The zero value of every field except End
// is usable: start 0, duration 2s, no decimals, no separator, ease-out
// cubic curve.
type Config struct {
	// End is the value the counter settles on. Required.
	End float64
	// Start is the value the counter begins at.
	Start float64
	// Duration is the length of the animation. Zero means DefaultDuration.
	Duration time.Duration
	// Decimals is the number of digits shown after the decimal point.
	Decimals int
	// Prefix is prepended to the formatted value.
	Prefix string
	// Suffix is appended to the formatted value.
	Suffix string
	// Separator groups integer digits by thousands when non-empty.
	Separator string
	// Curve transforms animation progress. Nil means animation.EaseOutCubic.
	Curve func(float64) float64
}

// duration returns the configured duration with the default applied.
func (c Config) duration() time.Duration {
	if c.Duration == 0 {
		return DefaultDuration
	}
	return c.Duration
}

// curve returns the configured curve with the default applied.
func (c Config) curve() func(float64) float64 {
	if c.Curve == nil {
		return animation.EaseOutCubic
	}
	return c.Curve
}

// formatOptions returns the formatting subset of the config.
func (c Config) formatOptions() format.Options {
	return format.Options{
		Decimals:  c.Decimals,
		Prefix:    c.Prefix,
		Suffix:    c.Suffix,
		Separator: c.Separator,
	}
}

// Counter animates a number into view and renders it as a string.
//
// Create with [NewCounter], bind with [Counter.Attach], and always call
// [Counter.Dispose] when done so the visibility subscription and any
// active ticker are released.
type Counter struct {
	config     Config
	controller *animation.AnimationController
	tween      *animation.Tween[float64]

	value    float64
	animated bool
	disposed bool

	sub visibility.Subscription

	listeners      map[int]func()
	nextListenerID int
}

// NewCounter creates a counter for the given config. The current value
// starts at Config.Start and stays there until the attached target
// becomes visible.
func NewCounter(config Config) *Counter {
	c := &Counter{
		config:    config,
		value:     config.Start,
		tween:     animation.TweenFloat64(config.Start, config.End),
		listeners: make(map[int]func()),
	}

	c.controller = animation.NewAnimationController(config.duration())
	c.controller.Curve = config.curve()
	c.controller.AddListener(func() {
		c.value = c.tween.Transform(c.controller)
		c.notifyListeners()
	})

	return c
}

// Value returns the current value formatted with the configured decimals,
// separator, prefix and suffix.
func (c *Counter) Value() string {
	return format.Format(c.value, c.config.formatOptions())
}

// RawValue returns the current unformatted value.
func (c *Counter) RawValue() float64 {
	return c.value
}

// Config returns the counter's configuration.
func (c *Counter) Config() Config {
	return c.config
}

// HasAnimated reports whether the visibility trigger has fired. The flag
// is set exactly once per counter and never reset.
func (c *Counter) HasAnimated() bool {
	return c.animated
}

// IsAnimating reports whether the interpolation is currently running.
func (c *Counter) IsAnimating() bool {
	return c.controller.IsAnimating()
}

// IsCompleted reports whether the interpolation finished at the end value.
func (c *Counter) IsCompleted() bool {
	return c.controller.IsCompleted()
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (c *Counter) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// AddStatusListener adds a callback that fires whenever the underlying
// animation status changes. Returns an unsubscribe function.
func (c *Counter) AddStatusListener(fn func(animation.AnimationStatus)) func() {
	return c.controller.AddStatusListener(fn)
}

// Attach binds the counter to a target observed at the default 10%
// visibility threshold. Any previous binding is released first. A nil
// observer or target leaves the counter unbound: the value stays at Start
// and the animation never triggers.
func (c *Counter) Attach(observer visibility.Observer, target *visibility.Target) {
	if c.disposed {
		return
	}

	c.Detach()
	if observer == nil || target == nil {
		return
	}

	c.sub = observer.Observe(target, visibility.DefaultThreshold, c.onVisibility)
}

// Detach releases the visibility subscription, if any. The animation, if
// already running, keeps going; detaching only stops future triggers.
func (c *Counter) Detach() {
	if c.sub != nil {
		c.sub.Cancel()
		c.sub = nil
	}
}

// onVisibility handles intersection reports. Only the first intersecting
// report has any effect.
func (c *Counter) onVisibility(entry visibility.Entry) {
	if c.disposed || c.animated || !entry.Intersecting {
		return
	}
	c.animated = true
	c.controller.Forward()
}

// SetConfig replaces the counter's configuration.
//
// If the trigger has already fired, the counter re-animates from the
// current interpolated value to the new end over the new duration rather
// than resuming the interrupted run. If it has not fired yet, the value
// resets to the new start and the counter keeps waiting for visibility;
// the one-shot flag is never reset.
func (c *Counter) SetConfig(config Config) {
	if c.disposed {
		return
	}

	c.config = config
	c.controller.Duration = config.duration()
	c.controller.Curve = config.curve()

	if c.animated {
		c.tween = animation.TweenFloat64(c.value, config.End)
		c.controller.Reset()
		c.controller.Forward()
		return
	}

	c.tween = animation.TweenFloat64(config.Start, config.End)
	c.value = config.Start
	c.notifyListeners()
}

// notifyListeners invokes every listener with panic isolation, so one
// faulty callback cannot stop the others or the frame loop.
func (c *Counter) notifyListeners() {
	for _, listener := range c.listeners {
		func() {
			defer errors.Recover("countup.notifyListeners")
			listener()
		}()
	}
}

// Dispose releases the visibility subscription and stops any active
// ticker. Further intersection reports and ticks are no-ops. Dispose is
// idempotent.
func (c *Counter) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.Detach()
	c.controller.Dispose()
	c.listeners = nil
}
