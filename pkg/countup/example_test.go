package countup_test

import (
	"fmt"
	"time"

	"github.com/go-drift/countup/pkg/animation"
	"github.com/go-drift/countup/pkg/countup"
	"github.com/go-drift/countup/pkg/countuptest"
	"github.com/go-drift/countup/pkg/visibility"
)

// This example runs a counter against scripted visibility and a fake
// clock. A linear curve keeps the midway value easy to read; real UIs
// usually keep the default ease-out cubic.
func Example() {
	clock := countuptest.NewFakeClock()
	prev := animation.SetClock(clock)
	defer animation.SetClock(prev)

	observer := countuptest.NewFakeObserver()

	counter := countup.NewCounter(countup.Config{
		End:       1000,
		Duration:  time.Second,
		Separator: ",",
		Curve:     animation.LinearCurve,
	})
	defer counter.Dispose()
	counter.Attach(observer, visibility.NewTarget())

	fmt.Println("before:", counter.Value())

	// The target scrolls into view and the run starts.
	observer.SetFraction(1)
	countuptest.Pump(clock, 500*time.Millisecond)
	fmt.Println("midway:", counter.Value())

	countuptest.Pump(clock, 500*time.Millisecond)
	fmt.Println("done:", counter.Value())

	// Output:
	// before: 0
	// midway: 500
	// done: 1,000
}
