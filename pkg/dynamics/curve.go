package dynamics

import (
	"fmt"
	"math"
	"time"

	"github.com/go-drift/motion/pkg/errors"
)

const (
	// maxSamples caps a curve sampling run. A simulation that has not
	// settled by then is truncated, not retried; this is a safety valve
	// against runaway parameter choices, not a correctness guarantee.
	maxSamples = 1000

	// velocityEpsilon is the settle threshold for the velocity magnitude,
	// in the value's own units.
	velocityEpsilon = 0.01

	// positionEpsilon is the settle threshold for the remaining distance
	// to the goal.
	positionEpsilon = 0.1
)

// SampleCurve runs a scalar simulation from initial toward goal at the given
// sample rate and returns the sampled values together with the settle time.
//
// The simulation is considered settled once the value is within 0.1 of the
// goal and the velocity magnitude is below 0.01. A run that fails to settle
// within 1000 samples is truncated and reported as a diagnostic; the
// truncated curve is still returned and usable.
func SampleCurve(f, z, r float32, initial, goal Scalar, rate float32) ([]float64, time.Duration) {
	sim := New(f, z, r, initial)
	dt := 1.0 / rate

	values := []float64{float64(initial)}
	for !settled(sim, goal) {
		sim.Update(goal, dt)
		values = append(values, float64(sim.Get()))
		if len(values) > maxSamples {
			errors.Report(&errors.MotionError{
				Op:   "dynamics.SampleCurve",
				Kind: errors.KindSimulation,
				Err: fmt.Errorf("simulation did not settle after %d samples (f=%v z=%v r=%v)",
					maxSamples, f, z, r),
			})
			break
		}
	}

	duration := time.Duration(float64(len(values)-1) / float64(rate) * float64(time.Second))
	return values, duration
}

func settled(sim *SecondOrderDynamics[Scalar], goal Scalar) bool {
	return math.Abs(float64(sim.Get()-goal)) < positionEpsilon &&
		math.Abs(float64(sim.Velocity())) < velocityEpsilon
}
