package flip

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/motion/pkg/geometry"
	"github.com/go-drift/motion/pkg/host"
)

// captureSnapshot measures an element's position relative to its layout
// offset parent, excluding the element's own margins, so that re-applying
// the same numbers under absolute positioning does not shift the element.
//
// The default path compares two bounding rects and subtracts the computed
// margins; bounding rects avoid the sub-pixel issues of offset reads. A
// margin value outside the pixel unit is a host-environment assumption
// violation and fails the measurement rather than defaulting to zero.
//
// With handleMargins set, the offset-based path is used instead: margins are
// temporarily zeroed around the offset read because offset reads include
// margins inconsistently across hosts. The mutation is synchronous with no
// intervening paint and is isolated to this function.
func captureSnapshot(el host.Element, recordExtent, handleMargins bool) (geometry.Snapshot, error) {
	var extent *geometry.Extent
	if recordExtent {
		size := el.BoundingRect().Size()
		extent = &size
	}

	if handleMargins {
		el.SetStyle("margin", "0px")
		pos := el.OffsetPosition()
		el.RemoveStyle("margin")
		return geometry.Snapshot{Position: pos, Extent: extent}, nil
	}

	rect := el.BoundingRect()
	var parentOrigin geometry.Position
	if parent := el.OffsetParent(); parent != nil {
		parentOrigin = parent.BoundingRect().Origin()
	}

	marginTop, err := parsePx(el.ComputedStyle("margin-top"))
	if err != nil {
		return geometry.Snapshot{}, fmt.Errorf("margin-top: %w", err)
	}
	marginLeft, err := parsePx(el.ComputedStyle("margin-left"))
	if err != nil {
		return geometry.Snapshot{}, fmt.Errorf("margin-left: %w", err)
	}

	pos := rect.Origin().
		Sub(parentOrigin).
		Sub(geometry.Position{X: marginLeft, Y: marginTop})
	return geometry.Snapshot{Position: pos, Extent: extent}, nil
}

func parsePx(v string) (float64, error) {
	s, ok := strings.CutSuffix(strings.TrimSpace(v), "px")
	if !ok {
		return 0, fmt.Errorf("style value %q is not in pixels", v)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("style value %q is not a number", v)
	}
	return f, nil
}
