package hosttest

import (
	"fmt"

	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/geometry"
	"github.com/go-drift/motion/pkg/host"
)

// Element is a fake host.Element with scriptable geometry and computed
// styles. It records every inline style mutation and started animation.
type Element struct {
	// Name identifies the element in test failures.
	Name string

	hst       *Host
	connected bool
	rect      geometry.Rect
	parent    *Element

	marginTop  float64
	marginLeft float64

	computed map[string]string
	inline   map[string]string

	// Animations holds every animation started on the element, including
	// cancelled ones, in start order.
	Animations []*Animation
}

// NewElement creates a connected element with zero margins at the origin.
func NewElement(h *Host, name string) *Element {
	return &Element{
		Name:      name,
		hst:       h,
		connected: true,
		computed:  map[string]string{},
		inline:    map[string]string{},
	}
}

// SetRect scripts the bounding rect.
func (e *Element) SetRect(r geometry.Rect) { e.rect = r }

// MoveTo scripts the bounding rect origin, keeping the size.
func (e *Element) MoveTo(x, y float64) {
	e.rect.X, e.rect.Y = x, y
}

// SetSize scripts the bounding rect size, keeping the origin.
func (e *Element) SetSize(width, height float64) {
	e.rect.Width, e.rect.Height = width, height
}

// SetMargins scripts the computed margins exposed through ComputedStyle and
// included in OffsetPosition reads.
func (e *Element) SetMargins(top, left float64) {
	e.marginTop, e.marginLeft = top, left
}

// SetComputedStyle scripts an arbitrary computed style value, overriding
// the synthesized margin values.
func (e *Element) SetComputedStyle(property, value string) {
	e.computed[property] = value
}

// SetOffsetParent scripts the offset parent.
func (e *Element) SetOffsetParent(parent *Element) {
	e.parent = parent
}

// Disconnect detaches the element from the fake document.
func (e *Element) Disconnect() { e.connected = false }

// Connected reports whether the element is attached.
func (e *Element) Connected() bool { return e.connected }

// BoundingRect returns the scripted rect.
func (e *Element) BoundingRect() geometry.Rect { return e.rect }

// OffsetParent returns the scripted offset parent.
func (e *Element) OffsetParent() host.Element {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

// OffsetPosition returns the offset relative to the scripted parent. Like
// real layout engines whose offset reads include margins, the scripted
// margins are added unless an inline style has zeroed them.
func (e *Element) OffsetPosition() geometry.Position {
	pos := e.rect.Origin()
	if e.parent != nil {
		pos = pos.Sub(e.parent.rect.Origin())
	}
	if e.inline["margin"] != "0px" {
		pos = pos.Add(geometry.Position{X: e.marginLeft, Y: e.marginTop})
	}
	return pos
}

// ComputedStyle returns the inline value if set, then any scripted computed
// value, then synthesized pixel margins.
func (e *Element) ComputedStyle(property string) string {
	if v, ok := e.inline[property]; ok {
		return v
	}
	if v, ok := e.computed[property]; ok {
		return v
	}
	switch property {
	case "margin-top":
		return fmt.Sprintf("%gpx", e.marginTop)
	case "margin-left":
		return fmt.Sprintf("%gpx", e.marginLeft)
	}
	return ""
}

// SetStyle records an inline style.
func (e *Element) SetStyle(property, value string) {
	e.inline[property] = value
}

// RemoveStyle removes an inline style.
func (e *Element) RemoveStyle(property string) {
	delete(e.inline, property)
}

// InlineStyle returns a recorded inline style value.
func (e *Element) InlineStyle(property string) (string, bool) {
	v, ok := e.inline[property]
	return v, ok
}

// Animate records and returns a fake animation. In a non-interactive mode it
// returns errors.ErrNonInteractive without recording anything.
func (e *Element) Animate(keyframes []host.Keyframe, opts host.Options) (host.Animation, error) {
	if e.hst != nil && !e.hst.RenderingMode().IsInteractive() {
		return nil, errors.ErrNonInteractive
	}
	a := &Animation{Keyframes: keyframes, Opts: opts}
	e.Animations = append(e.Animations, a)
	return a, nil
}

// ActiveAnimations returns the started animations that have been neither
// cancelled nor finished.
func (e *Element) ActiveAnimations() []*Animation {
	var active []*Animation
	for _, a := range e.Animations {
		if !a.Cancelled && !a.finished {
			active = append(active, a)
		}
	}
	return active
}

// LastAnimation returns the most recently started animation, or nil.
func (e *Element) LastAnimation() *Animation {
	if len(e.Animations) == 0 {
		return nil
	}
	return e.Animations[len(e.Animations)-1]
}

// Animation is a fake host.Animation recording its configuration. Tests
// drive completion with Finish.
type Animation struct {
	Keyframes []host.Keyframe
	Opts      host.Options
	Cancelled bool

	finished bool
	onFinish func()
}

// Cancel marks the animation cancelled. Cancelled animations never finish.
func (a *Animation) Cancel() {
	a.Cancelled = true
}

// OnFinish registers the completion callback.
func (a *Animation) OnFinish(fn func()) {
	a.onFinish = fn
}

// Finish completes the animation, firing the registered callback once.
// Finishing a cancelled or already-finished animation is a no-op.
func (a *Animation) Finish() {
	if a.Cancelled || a.finished {
		return
	}
	a.finished = true
	if a.onFinish != nil {
		a.onFinish()
	}
}

// Finished reports whether the animation completed naturally.
func (a *Animation) Finished() bool {
	return a.finished
}

// Keyframe returns the value of a property in keyframe i, if present.
func (a *Animation) Keyframe(i int, property string) (string, bool) {
	if i < 0 || i >= len(a.Keyframes) {
		return "", false
	}
	for _, s := range a.Keyframes[i] {
		if s.Property == property {
			return s.Value, true
		}
	}
	return "", false
}
