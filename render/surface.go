package render

import "image"

// Align controls horizontal text anchoring relative to the x coordinate
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Surface is the 2D drawing target, coordinates are world units
// Implementations apply the current transform to every primitive
type Surface interface {
	// Size returns the drawable area in world units
	Size() (w, h float64)

	Clear(c RGB)
	FillRect(x, y, w, h float64, c RGB)
	StrokeRect(x, y, w, h float64, c RGB)
	DrawImage(img image.Image, x, y, w, h float64)
	Text(x, y float64, s string, c RGB, align Align)

	// Transform stack
	Save()
	Restore()
	Translate(dx, dy float64)
	Rotate(angle float64)
}
