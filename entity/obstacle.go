package entity

import "github.com/lixenwraith/dead-arena/vmath"

// NewObstacle creates a static box; obstacles never update
func NewObstacle(r vmath.Rect) *Entity {
	return newEntity(KindObstacle, vmath.Vec2{X: r.X, Y: r.Y}, r.W, r.H)
}

// pushOut moves other out of obstacle e along the axis of least overlap
func (e *Entity) pushOut(other *Entity) {
	delta, _ := vmath.PushOut(e.Bounds(), other.Bounds())
	other.Pos = other.Pos.Add(delta)
}
