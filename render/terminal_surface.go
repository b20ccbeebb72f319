package render

import (
	"errors"
	"image"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/dead-arena/vmath"
)

// CellAspect is the height/width ratio of a terminal cell
const CellAspect = 2.0

// ErrNoScreen is returned when a terminal surface is built without a screen
var ErrNoScreen = errors.New("render: no terminal screen available")

// TerminalSurface rasterizes world-space primitives onto a tcell screen
// The world rectangle is scaled to fit the terminal, letterboxed and centered
// Each cell is treated as one sample taken at its center
type TerminalSurface struct {
	screen tcell.Screen
	stack  transformStack

	worldW, worldH float64

	// Cells per world unit and letterbox offsets in cells
	scaleX, scaleY   float64
	offsetX, offsetY int
	cols, rows       int

	border RGB
}

// NewTerminalSurface binds a surface to an initialized screen
func NewTerminalSurface(screen tcell.Screen, worldW, worldH float64) (*TerminalSurface, error) {
	if screen == nil {
		return nil, ErrNoScreen
	}
	if worldW <= 0 || worldH <= 0 {
		return nil, errors.New("render: world size must be positive")
	}
	s := &TerminalSurface{
		screen: screen,
		stack:  newTransformStack(),
		worldW: worldW,
		worldH: worldH,
		border: RGBBorder,
	}
	s.Resize()
	return s, nil
}

// Resize recomputes the world to cell mapping from the current screen size
func (s *TerminalSurface) Resize() {
	cols, rows := s.screen.Size()
	s.cols, s.rows = cols, rows
	if cols <= 0 || rows <= 0 {
		s.scaleX, s.scaleY = 0, 0
		return
	}

	// Fit in "square pixel" units where one row counts as CellAspect columns
	scale := math.Min(float64(cols)/s.worldW, float64(rows)*CellAspect/s.worldH)
	s.scaleX = scale
	s.scaleY = scale / CellAspect

	s.offsetX = (cols - int(math.Round(s.worldW*s.scaleX))) / 2
	s.offsetY = (rows - int(math.Round(s.worldH*s.scaleY))) / 2
}

func (s *TerminalSurface) Size() (float64, float64) {
	return s.worldW, s.worldH
}

// CellToWorld maps a terminal cell to the world point at its center
func (s *TerminalSurface) CellToWorld(cx, cy int) vmath.Vec2 {
	if s.scaleX == 0 || s.scaleY == 0 {
		return vmath.Vec2{}
	}
	return vmath.Vec2{
		X: (float64(cx-s.offsetX) + 0.5) / s.scaleX,
		Y: (float64(cy-s.offsetY) + 0.5) / s.scaleY,
	}
}

// worldToCell maps a world point to the containing cell
func (s *TerminalSurface) worldToCell(p vmath.Vec2) (int, int) {
	return int(math.Floor(p.X*s.scaleX)) + s.offsetX, int(math.Floor(p.Y*s.scaleY)) + s.offsetY
}

// Clear paints the letterbox with the border color and the arena with c
func (s *TerminalSurface) Clear(c RGB) {
	s.stack.reset()
	outside := tcell.StyleDefault.Background(toTcell(s.border.Scale(0.3)))
	inside := tcell.StyleDefault.Background(toTcell(c))

	x0, y0 := s.worldToCell(vmath.Vec2{})
	x1, y1 := s.worldToCell(vmath.Vec2{X: s.worldW, Y: s.worldH})
	for y := 0; y < s.rows; y++ {
		for x := 0; x < s.cols; x++ {
			style := outside
			if x >= x0 && x < x1 && y >= y0 && y < y1 {
				style = inside
			}
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (s *TerminalSurface) FillRect(x, y, w, h float64, c RGB) {
	s.raster(x, y, w, h, func(_, _ float64) (RGB, bool) { return c, true })
}

// StrokeRect draws the outline one cell thick
func (s *TerminalSurface) StrokeRect(x, y, w, h float64, c RGB) {
	if w <= 0 || h <= 0 {
		return
	}
	// Edge thickness of one cell expressed in local units
	tx := 1 / s.scaleX
	ty := 1 / s.scaleY
	if tx > w/2 {
		tx = w / 2
	}
	if ty > h/2 {
		ty = h / 2
	}
	s.FillRect(x, y, w, ty, c)
	s.FillRect(x, y+h-ty, w, ty, c)
	s.FillRect(x, y, tx, h, c)
	s.FillRect(x+w-tx, y, tx, h, c)
}

// DrawImage stretches img over the rectangle, one nearest sample per cell
// Transparent pixels leave the cell untouched
func (s *TerminalSurface) DrawImage(img image.Image, x, y, w, h float64) {
	if img == nil {
		return
	}
	b := img.Bounds()
	if b.Empty() {
		return
	}
	s.raster(x, y, w, h, func(u, v float64) (RGB, bool) {
		px := b.Min.X + vmath.ClampInt(int(u*float64(b.Dx())), 0, b.Dx()-1)
		py := b.Min.Y + vmath.ClampInt(int(v*float64(b.Dy())), 0, b.Dy()-1)
		return FromColor(img.At(px, py))
	})
}

// Text writes s starting at the cell containing the transformed (x, y)
// Rotation is ignored for text; existing background colors are kept
func (s *TerminalSurface) Text(x, y float64, str string, c RGB, align Align) {
	cx, cy := s.worldToCell(s.stack.current.Apply(vmath.Vec2{X: x, Y: y}))
	runes := []rune(str)
	switch align {
	case AlignCenter:
		cx -= len(runes) / 2
	case AlignRight:
		cx -= len(runes)
	}
	if cy < 0 || cy >= s.rows {
		return
	}
	fg := toTcell(c)
	for i, r := range runes {
		px := cx + i
		if px < 0 || px >= s.cols {
			continue
		}
		_, _, style, _ := s.screen.GetContent(px, cy)
		_, bg, _ := style.Decompose()
		s.screen.SetContent(px, cy, r, nil, tcell.StyleDefault.Foreground(fg).Background(bg).Bold(true))
	}
}

func (s *TerminalSurface) Save() { s.stack.Save() }
func (s *TerminalSurface) Restore() { s.stack.Restore() }
func (s *TerminalSurface) Translate(dx, dy float64) { s.stack.Translate(dx, dy) }
func (s *TerminalSurface) Rotate(angle float64) { s.stack.Rotate(angle) }

// Show flushes the frame to the terminal
func (s *TerminalSurface) Show() {
	s.screen.Show()
}

// raster fills every cell whose center maps inside the local rectangle
// sample receives normalized local coordinates (u, v) in [0, 1)
func (s *TerminalSurface) raster(x, y, w, h float64, sample func(u, v float64) (RGB, bool)) {
	if w <= 0 || h <= 0 || s.scaleX == 0 {
		return
	}
	t := s.stack.current
	inv, ok := t.Invert()
	if !ok {
		return
	}

	// Cell bounding box of the transformed corners
	corners := [4]vmath.Vec2{
		t.Apply(vmath.Vec2{X: x, Y: y}),
		t.Apply(vmath.Vec2{X: x + w, Y: y}),
		t.Apply(vmath.Vec2{X: x, Y: y + h}),
		t.Apply(vmath.Vec2{X: x + w, Y: y + h}),
	}
	minX, minY := corners[0].X, corners[0].Y
	maxX, maxY := minX, minY
	for _, p := range corners[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	cx0, cy0 := s.worldToCell(vmath.Vec2{X: minX, Y: minY})
	cx1, cy1 := s.worldToCell(vmath.Vec2{X: maxX, Y: maxY})
	cx0, cy0 = max(cx0, 0), max(cy0, 0)
	cx1, cy1 = min(cx1, s.cols-1), min(cy1, s.rows-1)

	local := vmath.Rect{X: x, Y: y, W: w, H: h}
	drawn := false
	for cy := cy0; cy <= cy1; cy++ {
		for cx := cx0; cx <= cx1; cx++ {
			p := inv.Apply(s.CellToWorld(cx, cy))
			if !local.Contains(p) {
				continue
			}
			if c, ok := sample((p.X-x)/w, (p.Y-y)/h); ok {
				s.setCell(cx, cy, c)
			}
			drawn = true
		}
	}

	// Sub-cell rectangles still get one cell so small entities stay visible
	if !drawn {
		center := t.Apply(vmath.Vec2{X: x + w/2, Y: y + h/2})
		cx, cy := s.worldToCell(center)
		if cx >= 0 && cx < s.cols && cy >= 0 && cy < s.rows {
			if c, ok := sample(0.5, 0.5); ok {
				s.setCell(cx, cy, c)
			}
		}
	}
}

func (s *TerminalSurface) setCell(x, y int, c RGB) {
	s.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(toTcell(c)))
}

func toTcell(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
