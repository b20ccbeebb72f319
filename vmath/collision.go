package vmath

// Rect is an axis-aligned rectangle, Pos is the top-left corner
type Rect struct {
	X, Y, W, H float64
}

// Center returns the midpoint of the rectangle
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Overlaps is the strict AABB test used by the collision pass
// Touching edges do not overlap
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// Contains reports whether point p lies inside r, right/bottom edges exclusive
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Inflate grows the rectangle by m on every side
func (r Rect) Inflate(m float64) Rect {
	return Rect{r.X - m, r.Y - m, r.W + 2*m, r.H + 2*m}
}

// Axis identifies the push-out axis of a resolved overlap
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// PushOut computes the displacement that moves mover out of the static rect
// Overlap is measured on both axes and the smaller one wins; the sign comes from
// which side of the static rect's center the mover's position falls on
// Returns the zero vector when the rects do not overlap
func PushOut(static, mover Rect) (Vec2, Axis) {
	if !static.Overlaps(mover) {
		return Vec2{}, AxisX
	}

	overlapX := min(mover.X+mover.W, static.X+static.W) - max(mover.X, static.X)
	overlapY := min(mover.Y+mover.H, static.Y+static.H) - max(mover.Y, static.Y)
	center := static.Center()

	if overlapX < overlapY {
		if mover.X < center.X {
			return Vec2{X: -overlapX}, AxisX
		}
		return Vec2{X: overlapX}, AxisX
	}
	if mover.Y < center.Y {
		return Vec2{Y: -overlapY}, AxisY
	}
	return Vec2{Y: overlapY}, AxisY
}
