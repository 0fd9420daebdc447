// Package anim provides the pluggable animation strategies consumed by the
// reconciliation engine: enter, leave, move and resize policies producing
// timing and keyframe data for each transition type.
//
// Strategies are stateless except for construction-time parameters. Concrete
// strategies describe WHAT to animate ([Config] / [MoveConfig]); the Any*
// wrappers erase the concrete type behind a fixed-shape scheduling contract
// and perform playback against a [host.Element]. The engine only ever holds
// the Any* wrappers.
package anim

import (
	"strconv"
	"time"

	"github.com/go-drift/motion/pkg/geometry"
	"github.com/go-drift/motion/pkg/host"
)

// Config describes one enter or leave animation: a duration, an optional
// timing-curve expression and an ordered keyframe list. Zero keyframes or a
// zero duration are valid and play as an instant no-op animation.
type Config struct {
	Duration  time.Duration
	Easing    string
	Keyframes []host.Keyframe
}

// MoveConfig describes a move or resize animation. Keyframes for these are
// synthesized by the wrapper from the snapshot delta, not by the strategy.
type MoveConfig struct {
	Duration time.Duration
	Easing   string
}

// EnterAnimation produces the animation played on a newly mounted element.
type EnterAnimation interface {
	Enter() Config
}

// LeaveAnimation produces the animation played on a leaving element. The
// element is pinned to absolute positioning before the animation starts.
type LeaveAnimation interface {
	Leave() Config
}

// MoveAnimation produces the timing for an element whose geometry changed
// between two snapshots.
type MoveAnimation interface {
	Move(from, to geometry.Snapshot) MoveConfig
}

// ResizeAnimation produces the timing for a size-only container transition.
type ResizeAnimation interface {
	Resize(from, to geometry.Extent) MoveConfig
}

// AnyEnter is the type-erased form of an [EnterAnimation].
type AnyEnter struct {
	anim EnterAnimation
}

// Enter wraps a concrete enter strategy.
func Enter(a EnterAnimation) AnyEnter {
	return AnyEnter{anim: a}
}

// IsZero reports whether no strategy is wrapped.
func (a AnyEnter) IsZero() bool { return a.anim == nil }

// Animate plays the enter animation on el.
func (a AnyEnter) Animate(el host.Element) (host.Animation, error) {
	cfg := a.anim.Enter()
	return el.Animate(cfg.Keyframes, options(cfg.Duration, cfg.Easing))
}

// AnyLeave is the type-erased form of a [LeaveAnimation].
type AnyLeave struct {
	anim LeaveAnimation
}

// Leave wraps a concrete leave strategy.
func Leave(a LeaveAnimation) AnyLeave {
	return AnyLeave{anim: a}
}

// IsZero reports whether no strategy is wrapped.
func (a AnyLeave) IsZero() bool { return a.anim == nil }

// Animate plays the leave animation on el.
func (a AnyLeave) Animate(el host.Element) (host.Animation, error) {
	cfg := a.anim.Leave()
	return el.Animate(cfg.Keyframes, options(cfg.Duration, cfg.Easing))
}

// AnyMove is the type-erased form of a [MoveAnimation].
type AnyMove struct {
	anim MoveAnimation
}

// Move wraps a concrete move strategy.
func Move(a MoveAnimation) AnyMove {
	return AnyMove{anim: a}
}

// IsZero reports whether no strategy is wrapped.
func (a AnyMove) IsZero() bool { return a.anim == nil }

// Animate plays a FLIP move on el: the element is translated by the
// position delta between the snapshots and animated back to rest. When
// animateSize is set and both snapshots carry extents, width and height
// keyframes are included as well.
func (a AnyMove) Animate(el host.Element, from, to geometry.Snapshot, animateSize bool) (host.Animation, error) {
	cfg := a.anim.Move(from, to)
	diff := from.Position.Sub(to.Position)

	first := host.Keyframe{
		{Property: "transformOrigin", Value: "top left"},
		{Property: "transform", Value: translate(diff)},
	}
	last := host.Keyframe{
		{Property: "transformOrigin", Value: "top left"},
		{Property: "transform", Value: "none"},
	}
	if animateSize && from.Extent != nil && to.Extent != nil {
		first = append(first,
			host.Style{Property: "width", Value: px(from.Extent.Width)},
			host.Style{Property: "height", Value: px(from.Extent.Height)},
		)
		last = append(last,
			host.Style{Property: "width", Value: px(to.Extent.Width)},
			host.Style{Property: "height", Value: px(to.Extent.Height)},
		)
	}

	return el.Animate([]host.Keyframe{first, last}, options(cfg.Duration, cfg.Easing))
}

// AnyResize is the type-erased form of a [ResizeAnimation].
type AnyResize struct {
	anim ResizeAnimation
}

// Resize wraps a concrete resize strategy.
func Resize(a ResizeAnimation) AnyResize {
	return AnyResize{anim: a}
}

// IsZero reports whether no strategy is wrapped.
func (a AnyResize) IsZero() bool { return a.anim == nil }

// Animate plays a size-only transition on el. The width change is expressed
// through a margin-right offset relative to the goal width, chosen so the
// animated property cannot retrigger a resize observation of the element.
func (a AnyResize) Animate(el host.Element, from, to geometry.Extent) (host.Animation, error) {
	cfg := a.anim.Resize(from, to)
	frames := []host.Keyframe{
		{{Property: "marginRight", Value: px(from.Width - to.Width)}},
		{{Property: "marginRight", Value: px(0)}},
	}
	return el.Animate(frames, options(cfg.Duration, cfg.Easing))
}

func options(d time.Duration, easing string) host.Options {
	return host.Options{
		Duration: d,
		Easing:   easing,
		Fill:     host.FillNone,
	}
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

func translate(d geometry.Position) string {
	return "translate(" + px(d.X) + ", " + px(d.Y) + ")"
}
