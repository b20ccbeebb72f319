package entity

import (
	"github.com/lixenwraith/dead-arena/events"
	"github.com/lixenwraith/dead-arena/parameter"
)

// Collide applies the effect of other on self for one overlapping pair
// The engine calls it once per ordering, so each rule reads from self's side only
func Collide(self, other *Entity) {
	switch self.Kind {
	case KindPlayer:
		playerCollide(self, other)
	case KindEnemy:
		enemyCollide(self, other)
	case KindProjectile:
		projectileCollide(self, other)
	case KindPickup:
		pickupCollide(self, other)
	case KindObstacle:
		obstacleCollide(self, other)
	}
}

func playerCollide(self, other *Entity) {
	switch other.Kind {
	case KindEnemy:
		self.TakeDamage(parameter.PlayerContactDamage)
	case KindProjectile:
		if other.Projectile.Source == SourceEnemy {
			self.TakeDamage(other.Projectile.Damage)
		}
	}
}

func enemyCollide(self, other *Entity) {
	en := self.Enemy
	switch other.Kind {
	case KindPlayer:
		if en.Target == nil || en.AttackCooldown > 0 {
			return
		}
		en.Target.TakeDamage(en.Damage)
		en.AttackCooldown = parameter.EnemyAttackCooldown
	case KindProjectile:
		if other.Projectile.Source == SourcePlayer {
			self.hitByProjectile(other.Projectile.Damage)
		}
	}
}

func projectileCollide(self, other *Entity) {
	switch {
	case other.Kind == KindEnemy && self.Projectile.Source == SourcePlayer:
		self.MarkForDeletion()
	case other.Kind == KindPlayer && self.Projectile.Source == SourceEnemy:
		self.MarkForDeletion()
	}
}

func pickupCollide(self, other *Entity) {
	if other.Kind != KindPlayer || self.MarkedForDeletion {
		return
	}
	pk := self.Pickup
	pk.Kind.Apply(other, pk.Value)
	self.MarkForDeletion()
	pk.Events.Push(events.GameEvent{
		Type:     events.EventPickupCollected,
		EntityID: self.ID,
		Label:    pk.Kind.String(),
		Amount:   float64(pk.Value),
		Pos:      self.Center(),
	})
}

func obstacleCollide(self, other *Entity) {
	switch other.Kind {
	case KindPlayer, KindEnemy:
		self.pushOut(other)
	case KindProjectile:
		other.MarkForDeletion()
	}
}
