package anim

import (
	"time"

	"github.com/go-drift/motion/pkg/dynamics"
	"github.com/go-drift/motion/pkg/geometry"
)

// dynamicsSampleRate is the sample frequency for precomputed physics curves.
const dynamicsSampleRate = 60

// Dynamics animates moves and resizes along a physically simulated curve.
//
// The curve is precomputed at construction time: a second-order simulation
// runs from 0 to 1 and its samples are serialized into a linear() timing
// function; the duration is the simulation's settle time. A simulation that
// fails to settle is truncated with a diagnostic and the partial curve is
// used as-is.
type Dynamics struct {
	duration time.Duration
	easing   string
}

// NewDynamics creates a physics-based strategy from the simulation
// parameters (frequency, damping ratio, initial response); see
// [dynamics.New] for their meaning. A damping ratio below 1 produces motion
// that overshoots the goal and springs back.
func NewDynamics(f, z, r float32) Dynamics {
	samples, duration := dynamics.SampleCurve(f, z, r, 0, 1, dynamicsSampleRate)
	return Dynamics{
		duration: duration,
		easing:   LinearEasing(samples),
	}
}

// Duration returns the precomputed settle time.
func (d Dynamics) Duration() time.Duration {
	return d.duration
}

// Move returns the precomputed physics timing.
func (d Dynamics) Move(_, _ geometry.Snapshot) MoveConfig {
	return MoveConfig{Duration: d.duration, Easing: d.easing}
}

// Resize returns the precomputed physics timing.
func (d Dynamics) Resize(_, _ geometry.Extent) MoveConfig {
	return MoveConfig{Duration: d.duration, Easing: d.easing}
}
