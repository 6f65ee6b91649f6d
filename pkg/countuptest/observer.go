package countuptest

import (
	"sync"

	"github.com/go-drift/countup/pkg/visibility"
)

// FakeObserver is a scripted visibility.Observer. Tests control the
// visible fraction directly instead of publishing geometry.
type FakeObserver struct {
	mu       sync.Mutex
	subs     map[*fakeSubscription]struct{}
	fraction float64
}

// NewFakeObserver creates an observer whose targets start fully hidden.
func NewFakeObserver() *FakeObserver {
	return &FakeObserver{
		subs: make(map[*fakeSubscription]struct{}),
	}
}

// Observe implements visibility.Observer. The current scripted fraction is
// reported once immediately, matching ViewportObserver's contract.
func (o *FakeObserver) Observe(target *visibility.Target, threshold float64, fn func(visibility.Entry)) visibility.Subscription {
	if threshold <= 0 {
		threshold = visibility.DefaultThreshold
	}

	s := &fakeSubscription{
		observer:  o,
		threshold: threshold,
		fn:        fn,
	}

	o.mu.Lock()
	o.subs[s] = struct{}{}
	fraction := o.fraction
	o.mu.Unlock()

	s.report(fraction)
	return s
}

// SetFraction scripts the visible fraction for every observed target and
// reports to subscriptions whose intersection state changed.
func (o *FakeObserver) SetFraction(fraction float64) {
	o.mu.Lock()
	o.fraction = fraction
	subs := make([]*fakeSubscription, 0, len(o.subs))
	for s := range o.subs {
		subs = append(subs, s)
	}
	o.mu.Unlock()

	for _, s := range subs {
		s.report(fraction)
	}
}

// Emit delivers a raw entry to every active subscription, regardless of
// threshold state. Useful for scripting duplicate or out-of-order reports.
func (o *FakeObserver) Emit(entry visibility.Entry) {
	o.mu.Lock()
	subs := make([]*fakeSubscription, 0, len(o.subs))
	for s := range o.subs {
		subs = append(subs, s)
	}
	o.mu.Unlock()

	for _, s := range subs {
		if !s.cancelled {
			s.fn(entry)
		}
	}
}

// ActiveCount returns the number of outstanding subscriptions.
func (o *FakeObserver) ActiveCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.subs)
}

type fakeSubscription struct {
	observer  *FakeObserver
	threshold float64
	fn        func(visibility.Entry)

	reported     bool
	intersecting bool
	cancelled    bool
}

// report delivers an entry for the given fraction if the intersection
// state changed (or was never reported).
func (s *fakeSubscription) report(fraction float64) {
	if s.cancelled {
		return
	}
	intersecting := fraction >= s.threshold
	if s.reported && intersecting == s.intersecting {
		return
	}
	s.reported = true
	s.intersecting = intersecting
	s.fn(visibility.Entry{Fraction: fraction, Intersecting: intersecting})
}

// Cancel implements visibility.Subscription.
func (s *fakeSubscription) Cancel() {
	if s.cancelled {
		return
	}
	s.cancelled = true

	s.observer.mu.Lock()
	delete(s.observer.subs, s)
	s.observer.mu.Unlock()
}
