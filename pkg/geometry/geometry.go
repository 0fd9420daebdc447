// Package geometry provides the position and size value types used by the
// snapshot/diff cycle of the animation engine.
//
// All comparisons are fuzzy with a 0.1px tolerance. Browsers report
// sub-pixel layout jitter between otherwise identical frames, and exact
// comparison would schedule move animations for elements that never moved.
package geometry

import "math"

// Tolerance is the comparison slack applied by the ApproxEqual methods.
const Tolerance = 0.1

func approx(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Position is a point relative to an element's layout-offset parent,
// excluding the element's own margins.
type Position struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of two positions.
func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the component-wise difference p - o.
func (p Position) Sub(o Position) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y}
}

// ApproxEqual reports whether both coordinates are within [Tolerance].
func (p Position) ApproxEqual(o Position) bool {
	return approx(p.X, o.X) && approx(p.Y, o.Y)
}

// Extent is a rendered content-box size.
type Extent struct {
	Width  float64
	Height float64
}

// ApproxEqual reports whether both dimensions are within [Tolerance].
func (e Extent) ApproxEqual(o Extent) bool {
	return approx(e.Width, o.Width) && approx(e.Height, o.Height)
}

// Rect is a bounding box as reported by the host measurement service.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Origin returns the top-left corner of the rect.
func (r Rect) Origin() Position {
	return Position{X: r.X, Y: r.Y}
}

// Size returns the width and height of the rect.
func (r Rect) Size() Extent {
	return Extent{Width: r.Width, Height: r.Height}
}

// Snapshot captures an element's position and, optionally, its size at one
// instant. A nil Extent means size was not recorded for this snapshot.
type Snapshot struct {
	Position Position
	Extent   *Extent
}

// ApproxEqual compares a "before" snapshot (the receiver) against an "after"
// snapshot. Positions are always compared; extents are compared only when the
// after snapshot recorded one, so disabling size tracking between snapshots
// never triggers a spurious move.
func (s Snapshot) ApproxEqual(after Snapshot) bool {
	if !s.Position.ApproxEqual(after.Position) {
		return false
	}
	if after.Extent == nil {
		return true
	}
	return s.Extent != nil && s.Extent.ApproxEqual(*after.Extent)
}
