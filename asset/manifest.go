package asset

import (
	"path/filepath"

	"github.com/lixenwraith/dead-arena/core"
)

// Manifest lists asset sources by key, paths relative to the asset directory
type Manifest struct {
	Images map[string]string
	Sounds map[string]string
}

// DefaultManifest expects images/<key>.png and sounds/<key>.wav
func DefaultManifest() Manifest {
	m := Manifest{
		Images: make(map[string]string),
		Sounds: make(map[string]string),
	}
	for _, k := range []string{
		core.ImagePlayer, core.ImageEnemyNormal, core.ImageEnemyFast,
		core.ImageEnemyTank, core.ImagePickup, core.ImageObstacle,
	} {
		m.Images[k] = filepath.Join("images", k+".png")
	}
	for _, k := range []string{
		core.SoundShootPistol, core.SoundShootShotgun, core.SoundShootRifle,
		core.SoundEnemyHit, core.SoundEnemyDie, core.SoundPickup, core.SoundPlayerHurt,
		core.SoundWaveStart, core.SoundGameOver, core.SoundMusic,
	} {
		m.Sounds[k] = filepath.Join("sounds", k+".wav")
	}
	return m
}

// Len returns the number of assets in the manifest
func (m Manifest) Len() int {
	return len(m.Images) + len(m.Sounds)
}
