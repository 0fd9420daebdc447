package geometry

import "testing"

func TestPositionApproxEqual(t *testing.T) {
	base := Position{X: 10, Y: 20}

	tests := []struct {
		name  string
		other Position
		want  bool
	}{
		{"identical", Position{X: 10, Y: 20}, true},
		{"within tolerance", Position{X: 10.09, Y: 19.91}, true},
		{"x beyond tolerance", Position{X: 10.11, Y: 20}, false},
		{"y beyond tolerance", Position{X: 10, Y: 20.2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.ApproxEqual(tt.other); got != tt.want {
				t.Errorf("ApproxEqual(%v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestPositionArithmetic(t *testing.T) {
	a := Position{X: 5, Y: 7}
	b := Position{X: 2, Y: 10}

	if got := a.Add(b); got != (Position{X: 7, Y: 17}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Position{X: 3, Y: -3}) {
		t.Errorf("Sub = %v", got)
	}
}

func TestRectAccessors(t *testing.T) {
	r := Rect{X: 1, Y: 2, Width: 30, Height: 40}

	if got := r.Origin(); got != (Position{X: 1, Y: 2}) {
		t.Errorf("Origin = %v", got)
	}
	if got := r.Size(); got != (Extent{Width: 30, Height: 40}) {
		t.Errorf("Size = %v", got)
	}
}

func TestSnapshotApproxEqualIgnoresExtentWhenAfterHasNone(t *testing.T) {
	before := Snapshot{
		Position: Position{X: 1, Y: 1},
		Extent:   &Extent{Width: 100, Height: 50},
	}
	after := Snapshot{Position: Position{X: 1, Y: 1}}

	if !before.ApproxEqual(after) {
		t.Error("snapshots differing only in a before-side extent should compare equal")
	}
}

func TestSnapshotApproxEqualComparesExtentWhenAfterHasOne(t *testing.T) {
	pos := Position{X: 1, Y: 1}

	tests := []struct {
		name   string
		before Snapshot
		after  Snapshot
		want   bool
	}{
		{
			"matching extents",
			Snapshot{Position: pos, Extent: &Extent{Width: 100, Height: 50}},
			Snapshot{Position: pos, Extent: &Extent{Width: 100.05, Height: 50}},
			true,
		},
		{
			"width changed",
			Snapshot{Position: pos, Extent: &Extent{Width: 100, Height: 50}},
			Snapshot{Position: pos, Extent: &Extent{Width: 140, Height: 50}},
			false,
		},
		{
			"before missing extent",
			Snapshot{Position: pos},
			Snapshot{Position: pos, Extent: &Extent{Width: 100, Height: 50}},
			false,
		},
		{
			"position dominates",
			Snapshot{Position: Position{X: 5, Y: 5}, Extent: &Extent{Width: 100, Height: 50}},
			Snapshot{Position: pos, Extent: &Extent{Width: 100, Height: 50}},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.before.ApproxEqual(tt.after); got != tt.want {
				t.Errorf("ApproxEqual = %v, want %v", got, tt.want)
			}
		})
	}
}
