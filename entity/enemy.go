package entity

import (
	"github.com/lixenwraith/dead-arena/events"
	"github.com/lixenwraith/dead-arena/parameter"
	"github.com/lixenwraith/dead-arena/vmath"
)

// EnemyKind selects an enemy's stat block
type EnemyKind uint8

const (
	EnemyNormal EnemyKind = iota
	EnemyFast
	EnemyTank
	enemyKindCount
)

type enemyStats struct {
	name   string
	speed  float64
	health float64
	damage float64
	size   float64
	score  int
}

var enemyTable = [enemyKindCount]enemyStats{
	EnemyNormal: {"normal", parameter.EnemyNormalSpeed, parameter.EnemyNormalHealth, parameter.EnemyNormalDamage, parameter.EnemyNormalSize, parameter.EnemyNormalScore},
	EnemyFast:   {"fast", parameter.EnemyFastSpeed, parameter.EnemyFastHealth, parameter.EnemyFastDamage, parameter.EnemyFastSize, parameter.EnemyFastScore},
	EnemyTank:   {"tank", parameter.EnemyTankSpeed, parameter.EnemyTankHealth, parameter.EnemyTankDamage, parameter.EnemyTankSize, parameter.EnemyTankScore},
}

func (k EnemyKind) String() string {
	if k >= enemyKindCount {
		return "unknown"
	}
	return enemyTable[k].name
}

// Score returns the points awarded for killing this kind
func (k EnemyKind) Score() int {
	if k >= enemyKindCount {
		return 0
	}
	return enemyTable[k].score
}

// Size returns the side length of this kind's square box
func (k EnemyKind) Size() float64 {
	if k >= enemyKindCount {
		return enemyTable[EnemyNormal].size
	}
	return enemyTable[k].size
}

// EnemyState is the enemy-specific portion of an Entity
type EnemyState struct {
	Kind      EnemyKind
	Speed     float64
	Health    float64
	MaxHealth float64
	Damage    float64

	// Target is a non-owning reference; a nil target leaves the enemy inert
	Target *Entity

	AttackCooldown float64

	// HitThisFrame limits projectile damage to one hit per frame
	// Set during collision, cleared in update
	HitThisFrame bool

	Events *events.Queue
}

// NewEnemy creates an enemy of kind with its top-left corner at pos
// Unknown kinds fall back to normal
func NewEnemy(kind EnemyKind, pos vmath.Vec2, target *Entity, q *events.Queue) *Entity {
	if kind >= enemyKindCount {
		kind = EnemyNormal
	}
	s := enemyTable[kind]
	e := newEntity(KindEnemy, pos, s.size, s.size)
	e.Enemy = &EnemyState{
		Kind:      kind,
		Speed:     s.speed,
		Health:    s.health,
		MaxHealth: s.health,
		Damage:    s.damage,
		Target:    target,
		Events:    q,
	}
	return e
}

func (e *Entity) updateEnemy(dt float64) {
	en := e.Enemy
	en.HitThisFrame = false
	if en.Target == nil {
		return
	}
	dir := en.Target.Center().Sub(e.Center()).Normalize()
	e.Pos = e.Pos.Add(dir.Scale(en.Speed * dt))
	if en.AttackCooldown > 0 {
		en.AttackCooldown -= dt
	}
}

// hitByProjectile applies one projectile's damage, at most once per frame
func (e *Entity) hitByProjectile(damage float64) {
	en := e.Enemy
	if en.HitThisFrame || en.Health <= 0 {
		return
	}
	en.HitThisFrame = true
	en.Health -= damage
	if en.Health <= 0 {
		en.Health = 0
		e.MarkForDeletion()
		return
	}
	en.Events.Push(events.GameEvent{
		Type:     events.EventEnemyHit,
		EntityID: e.ID,
		Label:    en.Kind.String(),
		Amount:   damage,
		Pos:      e.Center(),
	})
}

// Killed reports whether the enemy died from damage rather than being removed
func (e *Entity) Killed() bool {
	return e.Enemy != nil && e.Enemy.Health <= 0
}
