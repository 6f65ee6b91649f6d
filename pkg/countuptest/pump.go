package countuptest

import (
	"time"

	"github.com/go-drift/countup/pkg/animation"
)

// FrameDuration is the simulated frame interval used by Pump (~60 fps).
const FrameDuration = 16 * time.Millisecond

// PumpFrame advances the clock by one frame and steps all active tickers.
func PumpFrame(clock *FakeClock) {
	clock.Advance(FrameDuration)
	animation.StepTickers()
}

// Pump advances the clock by d in frame-sized steps, stepping the tickers
// after each one. The final step is shortened so the clock lands exactly
// on d.
func Pump(clock *FakeClock, d time.Duration) {
	for d > 0 {
		step := FrameDuration
		if d < step {
			step = d
		}
		clock.Advance(step)
		animation.StepTickers()
		d -= step
	}
}
