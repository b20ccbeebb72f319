package render

import (
	"image"

	"github.com/lixenwraith/dead-arena/vmath"
)

// OpKind identifies a recorded drawing call
type OpKind uint8

const (
	OpClear OpKind = iota
	OpFillRect
	OpStrokeRect
	OpDrawImage
	OpText
)

// Op is one recorded drawing call, Origin is the transformed (x, y)
type Op struct {
	Kind   OpKind
	Origin vmath.Vec2
	W, H   float64
	Color  RGB
	Text   string
	Depth  int // Transform stack depth at call time
}

// Recorder is a headless Surface that records drawing calls
// Used by tests and by the shell when no terminal rendering is wanted
type Recorder struct {
	width, height float64
	stack         transformStack
	Ops           []Op
}

// NewRecorder creates a recorder with the given world size
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{width: w, height: h, stack: newTransformStack()}
}

func (r *Recorder) Size() (float64, float64) {
	return r.width, r.height
}

// Clear drops previously recorded ops so Ops always holds the latest frame
func (r *Recorder) Clear(c RGB) {
	r.Ops = r.Ops[:0]
	r.stack.reset()
	r.record(OpClear, 0, 0, r.width, r.height, c, "")
}

func (r *Recorder) FillRect(x, y, w, h float64, c RGB) {
	r.record(OpFillRect, x, y, w, h, c, "")
}

func (r *Recorder) StrokeRect(x, y, w, h float64, c RGB) {
	r.record(OpStrokeRect, x, y, w, h, c, "")
}

func (r *Recorder) DrawImage(img image.Image, x, y, w, h float64) {
	r.record(OpDrawImage, x, y, w, h, RGB{}, "")
}

func (r *Recorder) Text(x, y float64, s string, c RGB, align Align) {
	r.record(OpText, x, y, 0, 0, c, s)
}

func (r *Recorder) Save() { r.stack.Save() }
func (r *Recorder) Restore() { r.stack.Restore() }
func (r *Recorder) Translate(dx, dy float64) { r.stack.Translate(dx, dy) }
func (r *Recorder) Rotate(angle float64) { r.stack.Rotate(angle) }

func (r *Recorder) record(kind OpKind, x, y, w, h float64, c RGB, s string) {
	r.Ops = append(r.Ops, Op{
		Kind:   kind,
		Origin: r.stack.current.Apply(vmath.Vec2{X: x, Y: y}),
		W:      w,
		H:      h,
		Color:  c,
		Text:   s,
		Depth:  len(r.stack.saved),
	})
}

// Count returns the number of recorded ops of the given kind
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Texts returns all recorded strings in call order
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Depth returns the current transform stack depth
func (r *Recorder) Depth() int {
	return len(r.stack.saved)
}
