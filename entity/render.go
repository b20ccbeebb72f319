package entity

import (
	"image"

	"github.com/lixenwraith/dead-arena/core"
	"github.com/lixenwraith/dead-arena/parameter"
	"github.com/lixenwraith/dead-arena/render"
)

// ImageSource resolves sprite keys to loaded images
type ImageSource interface {
	Image(key string) (image.Image, bool)
}

const healthBarHeight = 3.0

// SpriteKey returns the image key used for this entity, empty when none applies
func (e *Entity) SpriteKey() string {
	switch e.Kind {
	case KindPlayer:
		return core.ImagePlayer
	case KindEnemy:
		switch e.Enemy.Kind {
		case EnemyFast:
			return core.ImageEnemyFast
		case EnemyTank:
			return core.ImageEnemyTank
		}
		return core.ImageEnemyNormal
	case KindPickup:
		return core.ImagePickup
	case KindObstacle:
		return core.ImageObstacle
	}
	return ""
}

// Render draws the entity; a registered sprite replaces the primitive shape
func (e *Entity) Render(s render.Surface, images ImageSource) {
	var img image.Image
	if images != nil {
		if key := e.SpriteKey(); key != "" {
			img, _ = images.Image(key)
		}
	}

	switch e.Kind {
	case KindPlayer:
		e.renderPlayer(s, img)
	case KindEnemy:
		e.renderEnemy(s, img)
	case KindProjectile:
		c := render.RGBProjectile
		if e.Projectile.Source == SourceEnemy {
			c = render.RGBHostile
		}
		s.FillRect(e.Pos.X, e.Pos.Y, e.W, e.H, c)
	case KindPickup:
		e.renderPickup(s, img)
	case KindObstacle:
		if img != nil {
			s.DrawImage(img, e.Pos.X, e.Pos.Y, e.W, e.H)
			return
		}
		s.FillRect(e.Pos.X, e.Pos.Y, e.W, e.H, render.RGBObstacle)
		s.StrokeRect(e.Pos.X, e.Pos.Y, e.W, e.H, render.RGBObstacleHi)
	}
}

// renderPlayer draws in a local frame rotated toward the aim direction
func (e *Entity) renderPlayer(s render.Surface, img image.Image) {
	c := e.Center()
	s.Save()
	s.Translate(c.X, c.Y)
	s.Rotate(e.Player.Direction.Angle())
	if img != nil {
		s.DrawImage(img, -e.W/2, -e.H/2, e.W, e.H)
	} else {
		s.FillRect(-e.W/2, -e.H/2, e.W, e.H, render.RGBPlayer)
		s.FillRect(0, -3, parameter.PlayerBarrelLength, 6, render.RGBBarrel)
	}
	s.Restore()
}

func (e *Entity) renderEnemy(s render.Surface, img image.Image) {
	en := e.Enemy
	if img != nil {
		s.DrawImage(img, e.Pos.X, e.Pos.Y, e.W, e.H)
	} else {
		c := render.RGBEnemy
		switch en.Kind {
		case EnemyFast:
			c = render.RGBEnemyFast
		case EnemyTank:
			c = render.RGBEnemyTank
		}
		s.FillRect(e.Pos.X, e.Pos.Y, e.W, e.H, c)
	}

	if en.Health < en.MaxHealth && en.MaxHealth > 0 {
		y := e.Pos.Y - 2*healthBarHeight
		s.FillRect(e.Pos.X, y, e.W, healthBarHeight, render.RGBBarBack)
		s.FillRect(e.Pos.X, y, e.W*en.Health/en.MaxHealth, healthBarHeight, render.RGBHealthBar)
	}
}

var pickupGlyphs = [PickupKindCount]string{
	PickupHealth:      "+",
	PickupAmmoPistol:  "P",
	PickupAmmoShotgun: "S",
	PickupAmmoRifle:   "R",
}

func (e *Entity) renderPickup(s render.Surface, img image.Image) {
	pk := e.Pickup
	if img != nil {
		s.DrawImage(img, e.Pos.X, e.Pos.Y, e.W, e.H)
	} else {
		c := render.RGBAmmo
		if pk.Kind == PickupHealth {
			c = render.RGBHealth
		}
		s.FillRect(e.Pos.X, e.Pos.Y, e.W, e.H, c)
	}
	glyph := "?"
	if pk.Kind < PickupKindCount {
		glyph = pickupGlyphs[pk.Kind]
	}
	center := e.Center()
	s.Text(center.X, center.Y, glyph, render.RGBText, render.AlignCenter)
}
