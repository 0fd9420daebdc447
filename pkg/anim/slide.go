package anim

import (
	"time"

	"github.com/go-drift/motion/pkg/geometry"
)

// Sliding animates moves and resizes with a fixed duration and a named
// timing function. It supplies no custom keyframes; the wrapper synthesizes
// the translate or margin keyframes.
type Sliding struct {
	Duration time.Duration
	Easing   string
}

// NewSliding creates a sliding strategy with the given duration and timing
// function.
func NewSliding(duration time.Duration, easing string) Sliding {
	return Sliding{Duration: duration, Easing: easing}
}

// DefaultSliding is the move strategy used when none is configured:
// 200ms ease-out.
func DefaultSliding() Sliding {
	return Sliding{Duration: 200 * time.Millisecond, Easing: EaseOut}
}

// Move returns the sliding timing regardless of the snapshot delta.
func (s Sliding) Move(_, _ geometry.Snapshot) MoveConfig {
	return MoveConfig{Duration: s.Duration, Easing: s.Easing}
}

// Resize returns the sliding timing regardless of the extent delta.
func (s Sliding) Resize(_, _ geometry.Extent) MoveConfig {
	return MoveConfig{Duration: s.Duration, Easing: s.Easing}
}
