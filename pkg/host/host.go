// Package host defines the contracts between the motion toolkit and the UI
// framework embedding it: element measurement, style mutation, animation
// playback, disposable observation scopes, and the rendering-mode and
// microtask services that drive a reconciliation cycle.
//
// The toolkit never touches a real DOM. Embedders implement these interfaces
// against their rendering backend; [hosttest] provides a scriptable fake for
// tests and development.
package host

import (
	"time"

	"github.com/go-drift/motion/pkg/geometry"
)

// RenderingMode describes the interactivity of the current render pass.
//
// The mode is an explicit, injected value rather than a hidden global query:
// the engine polls it at the top of every cycle and skips all animation work
// in non-interactive passes so no animation artifacts appear on first paint.
type RenderingMode int

const (
	// Interactive means a live render target exists and animations may run.
	Interactive RenderingMode = iota
	// Static means a server-side or other non-interactive render pass.
	Static
	// Hydrating means the client is attaching to server-rendered output.
	// Animations are skipped exactly as in Static mode.
	Hydrating
)

func (m RenderingMode) String() string {
	switch m {
	case Interactive:
		return "interactive"
	case Static:
		return "static"
	case Hydrating:
		return "hydrating"
	default:
		return "unknown"
	}
}

// IsInteractive reports whether animations may run in this mode.
func (m RenderingMode) IsInteractive() bool {
	return m == Interactive
}

// Style is a single property declaration within a keyframe.
type Style struct {
	Property string
	Value    string
}

// Keyframe is one step of a keyframe animation: an ordered list of property
// declarations. The toolkit treats keyframes as opaque once built; only the
// playback service interprets them.
type Keyframe []Style

// FillMode controls whether an animation's effect applies outside its
// active interval.
type FillMode int

const (
	// FillNone applies no effect outside the animation. Fill modes can
	// shadow timing bugs, so the toolkit uses FillNone throughout.
	FillNone FillMode = iota
	// FillForwards retains the final keyframe after the animation ends.
	FillForwards
	// FillBackwards applies the first keyframe before the animation starts.
	FillBackwards
	// FillBoth combines FillForwards and FillBackwards.
	FillBoth
)

// Options configures one playback of a keyframe animation.
type Options struct {
	// Duration is the playback length. A zero duration is a valid
	// instant animation.
	Duration time.Duration
	// Easing is an optional timing-function expression such as "ease-out",
	// "cubic-bezier(...)" or "linear(...)". Empty means the host default.
	Easing string
	// Fill is the fill mode; the zero value is FillNone.
	Fill FillMode
}

// Animation is a handle to a running animation. Handles are cancellable and
// completion-observable; there is no pause/resume surface.
type Animation interface {
	// Cancel aborts the animation and discards its effect. Cancelling a
	// finished or already-cancelled animation is a no-op.
	Cancel()
	// OnFinish registers a one-shot callback invoked when the animation
	// completes naturally. Cancelled animations never finish.
	OnFinish(fn func())
}

// Element is the toolkit's handle to one mounted element. It bundles the
// synchronous measurement service, style mutation, and animation playback
// for that element.
type Element interface {
	// Connected reports whether the element is still attached to the
	// document. Detached elements cannot meaningfully animate and are
	// skipped during snapshot passes.
	Connected() bool

	// BoundingRect returns the element's rendered bounding box in viewport
	// coordinates. Bounding boxes avoid the padding-related first-paint
	// inaccuracies of offset boxes.
	BoundingRect() geometry.Rect

	// OffsetParent returns the element's layout-offset parent, or nil when
	// the document root is the offset parent.
	OffsetParent() Element

	// OffsetPosition returns the element's layout offset relative to its
	// offset parent. Whether margins are included is host-defined, which is
	// why the margin-sensitive capture path zeroes margins around this read.
	OffsetPosition() geometry.Position

	// ComputedStyle returns the computed value of a style property.
	ComputedStyle(property string) string

	// SetStyle sets an inline style property.
	SetStyle(property, value string)

	// RemoveStyle removes an inline style property.
	RemoveStyle(property string)

	// Animate starts a cancellable, completion-observable animation on the
	// element. It returns [errors.ErrNonInteractive] when no live render
	// target exists; callers must consult the host rendering mode first.
	Animate(keyframes []Keyframe, opts Options) (Animation, error)
}

// Scope is a disposable observation scope owned by one rendered item. The
// engine disposes it exactly once when the item leaves, preventing further
// reactive updates from mutating an element that is mid-animation.
type Scope interface {
	Dispose()
}

// Host provides the per-frame services of the embedding framework.
type Host interface {
	// RenderingMode returns the interactivity of the current render pass.
	RenderingMode() RenderingMode

	// QueueMicrotask schedules fn to run after the current update batch,
	// strictly after child views for newly rendered items have mounted.
	QueueMicrotask(fn func())
}

// Scroller reports viewport scroll state. Hosts whose update cycles can move
// the viewport, typically route transitions with scroll restoration, provide
// it alongside [Host]; the engine discovers it by type assertion.
type Scroller interface {
	// ScrollY returns the current vertical scroll offset of the viewport.
	ScrollY() float64

	// OnNextScroll invokes fn exactly once: with scrolled true on the next
	// viewport scroll, or with scrolled false once the host decides no
	// scroll is coming for the current update. The returned cancel stops
	// the notification.
	OnNextScroll(fn func(scrolled bool)) (cancel func())
}

// ResizeObserver reports content-box size changes for observed elements.
type ResizeObserver interface {
	// Observe registers fn for size changes of el, reporting the initial
	// size as the first observation. The returned cancel function stops
	// the observation.
	Observe(el Element, fn func(geometry.Extent)) (cancel func())
}
