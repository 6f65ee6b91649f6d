// Package countuptest provides deterministic collaborators for testing
// counters without real timing or visibility sources.
//
// # Quick Start
//
// Install a fake clock, drive frames manually, and script visibility:
//
//	func TestCounter(t *testing.T) {
//	    clock := countuptest.InstallFakeClock(t)
//	    observer := countuptest.NewFakeObserver()
//
//	    counter := countup.NewCounter(countup.Config{End: 100, Duration: time.Second})
//	    defer counter.Dispose()
//	    counter.Attach(observer, visibility.NewTarget())
//
//	    observer.SetFraction(1) // target scrolls into view
//	    countuptest.Pump(clock, time.Second)
//
//	    if got := counter.Value(); got != "100" {
//	        t.Errorf("Value() = %q, want %q", got, "100")
//	    }
//	}
//
// # Resource Assertions
//
// FakeObserver counts outstanding subscriptions, and
// animation.HasActiveTickers reports scheduled ticks, so teardown tests
// can assert both are zero after Dispose.
package countuptest
