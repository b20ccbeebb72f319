package asset

import (
	"image"
	"time"
)

// Sound describes a registered sound
type Sound struct {
	Key      string
	Duration time.Duration
	// Procedural is true when the file was missing or unreadable and a generated fallback was used
	Procedural bool
}

// Provider loads and serves images and sounds by key
// Load failures never surface as errors: they are logged, counted as done,
// and the caller falls back to primitives or procedural sound
type Provider interface {
	LoadImage(key, source string) image.Image
	LoadSound(key, source string) Sound
	// Progress is completed loads over requested loads, 1 when nothing is pending
	Progress() float64
	Play(key string, volume float64, loop bool)
	Stop(key string)
	Image(key string) (image.Image, bool)
}
