package entity

import (
	"sync/atomic"

	"github.com/lixenwraith/dead-arena/vmath"
)

// Kind is the fixed role of an entity
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindProjectile
	KindPickup
	KindObstacle
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	case KindPickup:
		return "pickup"
	case KindObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

var nextID atomic.Uint64

// Entity is a tagged variant: Kind selects which state pointer is populated
// Obstacles carry no state beyond position and size
type Entity struct {
	ID   uint64
	Kind Kind
	Pos  vmath.Vec2 // Top-left corner in world units
	W, H float64

	// MarkedForDeletion is observed by the engine at the next prune
	MarkedForDeletion bool

	Player     *PlayerState
	Enemy      *EnemyState
	Projectile *ProjectileState
	Pickup     *PickupState
}

func newEntity(kind Kind, pos vmath.Vec2, w, h float64) *Entity {
	return &Entity{
		ID:   nextID.Add(1),
		Kind: kind,
		Pos:  pos,
		W:    w,
		H:    h,
	}
}

// Bounds returns the axis-aligned box used for collision
func (e *Entity) Bounds() vmath.Rect {
	return vmath.Rect{X: e.Pos.X, Y: e.Pos.Y, W: e.W, H: e.H}
}

// Center returns the midpoint of the entity's box
func (e *Entity) Center() vmath.Vec2 {
	return vmath.Vec2{X: e.Pos.X + e.W/2, Y: e.Pos.Y + e.H/2}
}

// MarkForDeletion flags the entity for removal at the next prune
func (e *Entity) MarkForDeletion() {
	e.MarkedForDeletion = true
}

// Update advances per-kind behaviour by dt seconds
func (e *Entity) Update(dt float64) {
	switch e.Kind {
	case KindPlayer:
		e.updatePlayer(dt)
	case KindEnemy:
		e.updateEnemy(dt)
	case KindProjectile:
		e.updateProjectile(dt)
	}
}
