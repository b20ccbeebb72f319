package entity

import (
	"github.com/lixenwraith/dead-arena/events"
	"github.com/lixenwraith/dead-arena/parameter"
	"github.com/lixenwraith/dead-arena/vmath"
)

// PickupKind selects a pickup's effect
type PickupKind uint8

const (
	PickupHealth PickupKind = iota
	PickupAmmoPistol
	PickupAmmoShotgun
	PickupAmmoRifle
	PickupKindCount
)

var pickupNames = [PickupKindCount]string{
	PickupHealth:      "health",
	PickupAmmoPistol:  "ammo_pistol",
	PickupAmmoShotgun: "ammo_shotgun",
	PickupAmmoRifle:   "ammo_rifle",
}

var pickupValues = [PickupKindCount]int{
	PickupHealth:      parameter.PickupHealthValue,
	PickupAmmoPistol:  parameter.PickupPistolValue,
	PickupAmmoShotgun: parameter.PickupShotgunValue,
	PickupAmmoRifle:   parameter.PickupRifleValue,
}

func (k PickupKind) String() string {
	if k >= PickupKindCount {
		return "unknown"
	}
	return pickupNames[k]
}

// DefaultValue returns the standard amount granted by this kind
func (k PickupKind) DefaultValue() int {
	if k >= PickupKindCount {
		return 0
	}
	return pickupValues[k]
}

// ParsePickupKind resolves a pickup name, false for unknown names
func ParsePickupKind(name string) (PickupKind, bool) {
	for k := PickupKind(0); k < PickupKindCount; k++ {
		if pickupNames[k] == name {
			return k, true
		}
	}
	return 0, false
}

type PickupState struct {
	Kind   PickupKind
	Value  int
	Events *events.Queue
}

// NewPickup creates a pickup with its top-left corner at pos
func NewPickup(kind PickupKind, value int, pos vmath.Vec2, q *events.Queue) *Entity {
	size := parameter.PickupSize
	e := newEntity(KindPickup, pos, size, size)
	e.Pickup = &PickupState{Kind: kind, Value: value, Events: q}
	return e
}

// Apply grants the pickup's effect to player; unknown kinds do nothing
func (k PickupKind) Apply(player *Entity, value int) {
	switch k {
	case PickupHealth:
		player.Heal(float64(value))
	case PickupAmmoPistol:
		player.AddAmmo(WeaponPistol, value)
	case PickupAmmoShotgun:
		player.AddAmmo(WeaponShotgun, value)
	case PickupAmmoRifle:
		player.AddAmmo(WeaponRifle, value)
	}
}
