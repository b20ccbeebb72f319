package entity

import (
	"github.com/lixenwraith/dead-arena/parameter"
	"github.com/lixenwraith/dead-arena/vmath"
)

// Source is the faction that fired a projectile
type Source uint8

const (
	SourcePlayer Source = iota
	SourceEnemy
)

type ProjectileState struct {
	Velocity vmath.Vec2
	Damage   float64
	Source   Source
	Lifespan float64
}

// NewProjectile creates a projectile centered on origin
func NewProjectile(origin, velocity vmath.Vec2, damage float64, source Source) *Entity {
	size := parameter.ProjectileSize
	e := newEntity(KindProjectile, vmath.Vec2{X: origin.X - size/2, Y: origin.Y - size/2}, size, size)
	e.Projectile = &ProjectileState{
		Velocity: velocity,
		Damage:   damage,
		Source:   source,
		Lifespan: parameter.ProjectileLifespan,
	}
	return e
}

func (e *Entity) updateProjectile(dt float64) {
	pr := e.Projectile
	e.Pos = e.Pos.Add(pr.Velocity.Scale(dt))
	pr.Lifespan -= dt
	if pr.Lifespan <= 0 {
		e.MarkForDeletion()
	}
}
