package anim

import (
	"time"

	"github.com/tanema/gween/ease"

	"github.com/go-drift/motion/pkg/geometry"
)

// tweenSampleCount is the number of segments an easing function is sampled
// into. Timing functions interpolate linearly between samples, so a modest
// count keeps curve strings small without visible stepping.
const tweenSampleCount = 24

// Tween animates with an easing function from the gween library, sampled
// into a linear() timing function at construction time. It covers all four
// transition contracts: enter and leave fade through the eased curve, moves
// and resizes follow it directly.
type Tween struct {
	Duration time.Duration

	easing string
}

// NewTween creates a tween strategy with the given duration and easing
// function, e.g. ease.OutBounce.
func NewTween(duration time.Duration, fn ease.TweenFunc) Tween {
	samples := make([]float64, tweenSampleCount+1)
	for i := range samples {
		t := float32(i) / tweenSampleCount
		samples[i] = float64(fn(t, 0, 1, 1))
	}
	return Tween{
		Duration: duration,
		easing:   LinearEasing(samples),
	}
}

// Enter fades the element in along the eased curve.
func (t Tween) Enter() Config {
	return Config{
		Duration:  t.Duration,
		Easing:    t.easing,
		Keyframes: opacityFrames(0, 1),
	}
}

// Leave fades the element out along the eased curve.
func (t Tween) Leave() Config {
	return Config{
		Duration:  t.Duration,
		Easing:    t.easing,
		Keyframes: opacityFrames(1, 0),
	}
}

// Move returns the eased timing.
func (t Tween) Move(_, _ geometry.Snapshot) MoveConfig {
	return MoveConfig{Duration: t.Duration, Easing: t.easing}
}

// Resize returns the eased timing.
func (t Tween) Resize(_, _ geometry.Extent) MoveConfig {
	return MoveConfig{Duration: t.Duration, Easing: t.easing}
}
