package anim

import (
	"strconv"
	"strings"
)

// Named easing expressions understood by CSS-compatible playback services.
const (
	EaseLinear = "linear"
	Ease       = "ease"
	EaseIn     = "ease-in"
	EaseOut    = "ease-out"
	EaseInOut  = "ease-in-out"
)

// CubicBezier returns a cubic-bezier timing-function expression with the
// control points (x1,y1) and (x2,y2), matching CSS cubic-bezier().
func CubicBezier(x1, y1, x2, y2 float64) string {
	var b strings.Builder
	b.WriteString("cubic-bezier(")
	for i, v := range [...]float64{x1, y1, x2, y2} {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatSample(v))
	}
	b.WriteString(")")
	return b.String()
}

// LinearEasing serializes sampled progress values into a linear() timing
// function. Samples are interpreted as evenly spaced over the animation's
// duration; the first sample should be the start value and the last the
// settled value.
func LinearEasing(samples []float64) string {
	var b strings.Builder
	b.WriteString("linear(")
	for i, v := range samples {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatSample(v))
	}
	b.WriteString(")")
	return b.String()
}

func formatSample(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 32)
}
