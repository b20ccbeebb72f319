package render

import "image/color"

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Palette
var (
	RGBBlack      = RGB{0, 0, 0}
	RGBWhite      = RGB{255, 255, 255}
	RGBArena      = RGB{24, 26, 30}
	RGBBorder     = RGB{70, 74, 82}
	RGBPlayer     = RGB{64, 160, 255}
	RGBBarrel     = RGB{200, 220, 255}
	RGBEnemy      = RGB{90, 170, 70}
	RGBEnemyFast  = RGB{230, 200, 60}
	RGBEnemyTank  = RGB{170, 50, 50}
	RGBProjectile = RGB{255, 230, 90}
	RGBHostile    = RGB{255, 90, 200}
	RGBObstacle   = RGB{96, 96, 104}
	RGBObstacleHi = RGB{150, 150, 160}
	RGBHealth     = RGB{220, 60, 60}
	RGBAmmo       = RGB{230, 170, 50}
	RGBHealthBar  = RGB{60, 200, 90}
	RGBBarBack    = RGB{60, 20, 20}
	RGBText       = RGB{230, 230, 230}
	RGBTextDim    = RGB{140, 140, 150}
	RGBTitle      = RGB{255, 80, 60}
)

// Scale multiplies each channel by f, clamped to [0, 255]
func (c RGB) Scale(f float64) RGB {
	return RGB{clamp(float64(c.R) * f), clamp(float64(c.G) * f), clamp(float64(c.B) * f)}
}

// Lerp blends from c toward o by t in [0, 1]
func (c RGB) Lerp(o RGB, t float64) RGB {
	return RGB{
		clamp(float64(c.R) + (float64(o.R)-float64(c.R))*t),
		clamp(float64(c.G) + (float64(o.G)-float64(c.G))*t),
		clamp(float64(c.B) + (float64(o.B)-float64(c.B))*t),
	}
}

// FromColor converts any image color, returning false for fully transparent pixels
func FromColor(c color.Color) (RGB, bool) {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGB{}, false
	}
	// Un-premultiply
	r = r * 0xffff / a
	g = g * 0xffff / a
	b = b * 0xffff / a
	return RGB{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}, true
}

// clamp converts float to uint8
func clamp(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
