package animation

import (
	"math"
	"testing"
)

func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{0.25, 1 - 0.75*0.75*0.75},
		{0.5, 0.875},
		{1, 1},
		{-0.5, 0},
		{1.5, 1},
	}

	for _, tt := range tests {
		got := EaseOutCubic(tt.in)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("EaseOutCubic(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEaseOutCubicMonotonic(t *testing.T) {
	prev := EaseOutCubic(0)
	for i := 1; i <= 100; i++ {
		v := EaseOutCubic(float64(i) / 100)
		if v < prev {
			t.Fatalf("curve decreased at t=%v: %v < %v", float64(i)/100, v, prev)
		}
		prev = v
	}
}

func TestCubicBezierEndpoints(t *testing.T) {
	curves := map[string]func(float64) float64{
		"Ease":      Ease,
		"EaseIn":    EaseIn,
		"EaseOut":   EaseOut,
		"EaseInOut": EaseInOut,
	}

	for name, curve := range curves {
		if got := curve(0); got != 0 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := curve(1); got != 1 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestCubicBezierMidpoint(t *testing.T) {
	// cubic-bezier(0.4, 0.0, 0.2, 1.0) at t=0.5 is ~0.78 (CSS ease-in-out).
	got := EaseInOut(0.5)
	if math.Abs(got-0.78) > 0.01 {
		t.Errorf("EaseInOut(0.5) = %v, want ~0.78", got)
	}
}
