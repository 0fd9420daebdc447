package anim

import (
	"time"

	"github.com/go-drift/motion/pkg/host"
)

// Fade animates opacity: 0 to 1 on enter, 1 to 0 on leave.
type Fade struct {
	Duration time.Duration
	Easing   string
}

// NewFade creates a fade with the given duration and timing function.
func NewFade(duration time.Duration, easing string) Fade {
	return Fade{Duration: duration, Easing: easing}
}

// DefaultFade is the fade used when no strategy is configured:
// 200ms ease-out.
func DefaultFade() Fade {
	return Fade{Duration: 200 * time.Millisecond, Easing: EaseOut}
}

// Enter fades the element in.
func (f Fade) Enter() Config {
	return Config{
		Duration:  f.Duration,
		Easing:    f.Easing,
		Keyframes: opacityFrames(0, 1),
	}
}

// Leave fades the element out.
func (f Fade) Leave() Config {
	return Config{
		Duration:  f.Duration,
		Easing:    f.Easing,
		Keyframes: opacityFrames(1, 0),
	}
}

func opacityFrames(from, to float64) []host.Keyframe {
	return []host.Keyframe{
		{{Property: "opacity", Value: formatSample(from)}},
		{{Property: "opacity", Value: formatSample(to)}},
	}
}
