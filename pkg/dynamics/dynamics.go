// Package dynamics implements a discrete-time second-order damped simulation
// used to generate physically plausible timing curves.
//
// The simulation follows the standard second-order dynamics recurrence with
// constants derived from a frequency, a damping ratio and an initial
// response. Constants and integration arithmetic are single precision,
// matching the timing-curve consumers which never need more.
package dynamics

import "math"

// Value is the constraint for simulated quantities. Scalar values and small
// vectors qualify; rotations do not, they need a different recurrence.
type Value[T any] interface {
	// Scale returns the value multiplied by a constant.
	Scale(s float32) T
	// Add returns self + other.
	Add(other T) T
	// Sub returns self - other.
	Sub(other T) T
}

// Scalar is a one-dimensional simulated value.
type Scalar float64

// Scale returns v * s.
func (v Scalar) Scale(s float32) Scalar { return v * Scalar(s) }

// Add returns v + other.
func (v Scalar) Add(other Scalar) Scalar { return v + other }

// Sub returns v - other.
func (v Scalar) Sub(other Scalar) Scalar { return v - other }

// SecondOrderDynamics simulates a damped second-order system tracking a
// moving goal.
type SecondOrderDynamics[T Value[T]] struct {
	// goal is the value the system is currently tracking.
	goal T
	// y is the current value.
	y T
	// yd is the current velocity.
	yd T

	k1 float32
	k2 float32
	k3 float32
}

// New creates a simulation at rest at x0.
//
//   - f is the frequency: how quickly the system responds.
//   - z is the damping ratio: below 1 the system rings past the goal,
//     1 is critically damped, above 1 it approaches the goal slowly.
//   - r is the initial response: 0 starts slowly, above 1 overshoots,
//     negative values anticipate the motion.
//
// No stability clamp is applied: callers selecting f near zero or stepping
// with dt near zero divide by near-zero constants.
func New[T Value[T]](f, z, r float32, x0 T) *SecondOrderDynamics[T] {
	const pi = float32(math.Pi)
	var zero T
	return &SecondOrderDynamics[T]{
		goal: x0,
		y:    x0,
		yd:   zero,
		k1:   z / (pi * f),
		k2:   1.0 / ((2 * pi * f) * (2 * pi * f)),
		k3:   r * z / (2 * pi * f),
	}
}

// Update steps the simulation toward newGoal over the timestep dt.
// The goal's velocity is estimated by finite difference, position is
// integrated with semi-implicit Euler, then velocity follows the
// second-order recurrence.
func (d *SecondOrderDynamics[T]) Update(newGoal T, dt float32) {
	xd := newGoal.Sub(d.goal).Scale(1.0 / dt)
	d.goal = newGoal
	d.y = d.y.Add(d.yd.Scale(dt))
	d.yd = d.yd.Add(
		newGoal.
			Add(xd.Scale(d.k3)).
			Sub(d.y).
			Sub(d.yd.Scale(d.k1)).
			Scale(dt / d.k2),
	)
}

// Get returns the current simulated value.
func (d *SecondOrderDynamics[T]) Get() T {
	return d.y
}

// Velocity returns the current velocity. Useful for convergence checks.
func (d *SecondOrderDynamics[T]) Velocity() T {
	return d.yd
}
