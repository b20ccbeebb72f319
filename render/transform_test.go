package render

import (
	"math"
	"testing"

	"github.com/lixenwraith/dead-arena/vmath"
)

func V(x, y float64) vmath.Vec2 { return vmath.Vec2{X: x, Y: y} }

func near(a, b vmath.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestTransformTranslateRotate(t *testing.T) {
	tr := Identity().Translate(10, 20).Rotate(math.Pi / 2)

	// Local +X maps to world +Y after a quarter turn
	if got := tr.Apply(V(5, 0)); !near(got, V(10, 25)) {
		t.Errorf("Apply(5,0) = %v, want (10,25)", got)
	}
	if tr.IsAxisAligned() {
		t.Error("rotated transform must not report axis aligned")
	}
	if !Identity().Translate(3, 4).IsAxisAligned() {
		t.Error("pure translation must report axis aligned")
	}
}

func TestTransformInvert(t *testing.T) {
	tr := Identity().Translate(-7, 3).Rotate(0.7).Translate(2, 9)
	inv, ok := tr.Invert()
	if !ok {
		t.Fatal("expected invertible transform")
	}
	p := V(13, -4)
	if got := inv.Apply(tr.Apply(p)); !near(got, p) {
		t.Errorf("round trip = %v, want %v", got, p)
	}

	if _, ok := (Transform{}).Invert(); ok {
		t.Error("zero matrix must not invert")
	}
}

func TestRecorderTransformStack(t *testing.T) {
	r := NewRecorder(800, 600)
	r.Clear(RGBArena)
	r.Save()
	r.Translate(100, 50)
	r.FillRect(5, 5, 10, 10, RGBPlayer)
	r.Restore()
	r.FillRect(5, 5, 10, 10, RGBPlayer)
	r.Restore() // unbalanced restore is ignored

	if r.Count(OpFillRect) != 2 {
		t.Fatalf("expected 2 fills, got %d", r.Count(OpFillRect))
	}
	if got := r.Ops[1].Origin; !near(got, V(105, 55)) {
		t.Errorf("translated origin = %v, want (105,55)", got)
	}
	if r.Ops[1].Depth != 1 {
		t.Errorf("expected depth 1 inside Save, got %d", r.Ops[1].Depth)
	}
	if got := r.Ops[2].Origin; !near(got, V(5, 5)) {
		t.Errorf("restored origin = %v, want (5,5)", got)
	}
	if r.Depth() != 0 {
		t.Errorf("expected balanced stack, depth %d", r.Depth())
	}

	r.Clear(RGBArena)
	if len(r.Ops) != 1 || r.Ops[0].Kind != OpClear {
		t.Errorf("Clear must start a fresh frame, got %d ops", len(r.Ops))
	}
}
