// Package errors provides the diagnostic error types for the motion toolkit.
//
// Animation failures are local by design: a failed measurement or playback
// attempt for one item must never abort reconciliation for the rest of the
// collection. Errors are therefore reported to a process-wide handler for
// developer diagnostics instead of being returned up through the engine.
package errors

import (
	"errors"
	"fmt"
)

// Kind identifies the category of a motion error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindInvariant indicates a broken engine invariant, such as a missing
	// element handle for an alive item in an interactive context.
	KindInvariant
	// KindMeasure indicates a geometry measurement failure, such as a
	// computed style value outside the expected pixel unit.
	KindMeasure
	// KindSimulation indicates a physics simulation that failed to converge
	// within its sample cap. The truncated curve is still used.
	KindSimulation
	// KindPlayback indicates an animation playback failure, such as the
	// playback service being invoked in a non-interactive rendering context.
	KindPlayback
)

func (k Kind) String() string {
	switch k {
	case KindInvariant:
		return "invariant"
	case KindMeasure:
		return "measure"
	case KindSimulation:
		return "simulation"
	case KindPlayback:
		return "playback"
	default:
		return "unknown"
	}
}

// ErrNonInteractive is returned by animation playback services when playback
// is requested outside an interactive rendering context. Callers are expected
// to consult the host's rendering mode first; this is fail-fast by design.
var ErrNonInteractive = errors.New("animation playback requires an interactive rendering context")

// MotionError represents a structured error in the motion toolkit.
type MotionError struct {
	// Op is the operation that failed (e.g., "flip.Apply").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Key is the reconciliation key of the affected item, if any.
	Key any
	// Err is the underlying error.
	Err error
}

func (e *MotionError) Error() string {
	if e.Key != nil {
		return fmt.Sprintf("%s [%s] key=%v: %v", e.Op, e.Kind, e.Key, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *MotionError) Unwrap() error {
	return e.Err
}
