package render

import (
	"math"

	"github.com/lixenwraith/dead-arena/vmath"
)

// Transform is a 2D affine matrix in canvas order:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
type Transform struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform
func Identity() Transform {
	return Transform{A: 1, D: 1}
}

// Translate post-multiplies a translation
func (t Transform) Translate(dx, dy float64) Transform {
	t.E += t.A*dx + t.C*dy
	t.F += t.B*dx + t.D*dy
	return t
}

// Rotate post-multiplies a rotation by angle radians
func (t Transform) Rotate(angle float64) Transform {
	sin, cos := math.Sincos(angle)
	a, b, c, d := t.A, t.B, t.C, t.D
	t.A = a*cos + c*sin
	t.B = b*cos + d*sin
	t.C = c*cos - a*sin
	t.D = d*cos - b*sin
	return t
}

// Apply maps a local point to world coordinates
func (t Transform) Apply(p vmath.Vec2) vmath.Vec2 {
	return vmath.Vec2{
		X: t.A*p.X + t.C*p.Y + t.E,
		Y: t.B*p.X + t.D*p.Y + t.F,
	}
}

// Invert returns the inverse transform, ok is false for singular matrices
func (t Transform) Invert() (Transform, bool) {
	det := t.A*t.D - t.B*t.C
	if det == 0 {
		return Transform{}, false
	}
	inv := 1 / det
	return Transform{
		A: t.D * inv,
		B: -t.B * inv,
		C: -t.C * inv,
		D: t.A * inv,
		E: (t.C*t.F - t.D*t.E) * inv,
		F: (t.B*t.E - t.A*t.F) * inv,
	}, true
}

// IsAxisAligned reports whether the transform is a pure translation
func (t Transform) IsAxisAligned() bool {
	return t.B == 0 && t.C == 0 && t.A == 1 && t.D == 1
}

// transformStack implements Save/Restore bookkeeping shared by surfaces
type transformStack struct {
	current Transform
	saved   []Transform
}

func newTransformStack() transformStack {
	return transformStack{current: Identity()}
}

func (s *transformStack) Save() {
	s.saved = append(s.saved, s.current)
}

// Restore pops the last saved transform, unbalanced calls are ignored
func (s *transformStack) Restore() {
	if len(s.saved) == 0 {
		return
	}
	s.current = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

func (s *transformStack) Translate(dx, dy float64) {
	s.current = s.current.Translate(dx, dy)
}

func (s *transformStack) Rotate(angle float64) {
	s.current = s.current.Rotate(angle)
}

// reset drops all saved state, called by Clear at frame start
func (s *transformStack) reset() {
	s.current = Identity()
	s.saved = s.saved[:0]
}
