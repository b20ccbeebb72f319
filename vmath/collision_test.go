package vmath

import "testing"

func TestRectOverlaps(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"inside", Rect{2, 2, 2, 2}, true},
		{"partial", Rect{5, 5, 10, 10}, true},
		{"touching right edge", Rect{10, 0, 5, 5}, false},
		{"touching bottom edge", Rect{0, 10, 5, 5}, false},
		{"disjoint", Rect{20, 20, 5, 5}, false},
		{"enclosing", Rect{-5, -5, 30, 30}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.other.Overlaps(base); got != tt.want {
				t.Errorf("overlap must be symmetric, reverse = %v", got)
			}
		})
	}
}

func TestPushOut(t *testing.T) {
	wall := Rect{X: 100, Y: 100, W: 100, H: 100}

	tests := []struct {
		name  string
		mover Rect
		want  Vec2
		axis  Axis
	}{
		{"from left", Rect{95, 130, 10, 10}, V2(-5, 0), AxisX},
		{"from right", Rect{196, 130, 10, 10}, V2(4, 0), AxisX},
		{"from top", Rect{130, 92, 10, 10}, V2(0, -2), AxisY},
		{"from bottom", Rect{130, 197, 10, 10}, V2(0, 3), AxisY},
		{"no overlap", Rect{0, 0, 10, 10}, Vec2{}, AxisX},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, axis := PushOut(wall, tt.mover)
			if !approx(got.X, tt.want.X) || !approx(got.Y, tt.want.Y) {
				t.Errorf("PushOut = %v, want %v", got, tt.want)
			}
			if got != (Vec2{}) && axis != tt.axis {
				t.Errorf("axis = %v, want %v", axis, tt.axis)
			}

			moved := Rect{tt.mover.X + got.X, tt.mover.Y + got.Y, tt.mover.W, tt.mover.H}
			if wall.Overlaps(moved) {
				t.Errorf("mover still overlaps after push: %v", moved)
			}
		})
	}
}
