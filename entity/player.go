package entity

import (
	"github.com/lixenwraith/dead-arena/events"
	"github.com/lixenwraith/dead-arena/parameter"
	"github.com/lixenwraith/dead-arena/vmath"
)

// Weapon selects fire rate, damage and projectile pattern
type Weapon uint8

const (
	WeaponPistol Weapon = iota
	WeaponShotgun
	WeaponRifle
	weaponCount
)

type weaponStats struct {
	name     string
	interval float64
	damage   float64
	speed    float64
	pellets  int
	initial  int
	max      int
}

var weaponTable = [weaponCount]weaponStats{
	WeaponPistol: {
		name:     "pistol",
		interval: parameter.PistolFireInterval,
		damage:   parameter.PistolDamage,
		speed:    parameter.ProjectileSpeed,
		pellets:  1,
		initial:  parameter.AmmoUnlimited,
		max:      parameter.AmmoUnlimited,
	},
	WeaponShotgun: {
		name:     "shotgun",
		interval: parameter.ShotgunFireInterval,
		damage:   parameter.ShotgunDamage,
		speed:    parameter.ProjectileSpeed,
		pellets:  parameter.ShotgunPellets,
		initial:  parameter.ShotgunInitialAmmo,
		max:      parameter.ShotgunMaxAmmo,
	},
	WeaponRifle: {
		name:     "rifle",
		interval: parameter.RifleFireInterval,
		damage:   parameter.RifleDamage,
		speed:    parameter.ProjectileSpeed * parameter.RifleSpeedFactor,
		pellets:  1,
		initial:  parameter.RifleInitialAmmo,
		max:      parameter.RifleMaxAmmo,
	},
}

func (w Weapon) Valid() bool { return w < weaponCount }

func (w Weapon) String() string {
	if !w.Valid() {
		return "unknown"
	}
	return weaponTable[w].name
}

// FireInterval returns the cooldown installed by a successful shot
func (w Weapon) FireInterval() float64 {
	if !w.Valid() {
		return 0
	}
	return weaponTable[w].interval
}

// ParseWeapon resolves a weapon name, false for unknown names
func ParseWeapon(name string) (Weapon, bool) {
	for w := Weapon(0); w < weaponCount; w++ {
		if weaponTable[w].name == name {
			return w, true
		}
	}
	return 0, false
}

// PlayerState is the player-specific portion of an Entity
type PlayerState struct {
	Health    float64
	MaxHealth float64

	// Direction is the unit aim vector
	Direction vmath.Vec2
	// Move is the movement intent, normalized by the caller
	Move  vmath.Vec2
	Speed float64

	Weapon        Weapon
	FireInterval  float64
	ShootCooldown float64
	Ammo          [weaponCount]int

	// Arena clamps movement when non-empty
	Arena vmath.Rect

	// Events receives hurt and death notifications, may be nil
	Events *events.Queue
}

// NewPlayer creates a player centered on center, clamped to arena when arena is non-empty
func NewPlayer(center vmath.Vec2, arena vmath.Rect, q *events.Queue) *Entity {
	size := parameter.PlayerSize
	e := newEntity(KindPlayer, vmath.Vec2{X: center.X - size/2, Y: center.Y - size/2}, size, size)
	p := &PlayerState{
		Health:       parameter.PlayerMaxHealth,
		MaxHealth:    parameter.PlayerMaxHealth,
		Direction:    vmath.Vec2{X: 1},
		Speed:        parameter.PlayerSpeed,
		Weapon:       WeaponPistol,
		FireInterval: WeaponPistol.FireInterval(),
		Arena:        arena,
		Events:       q,
	}
	for w := Weapon(0); w < weaponCount; w++ {
		p.Ammo[w] = weaponTable[w].initial
	}
	e.Player = p
	return e
}

func (e *Entity) updatePlayer(dt float64) {
	p := e.Player
	if !p.Move.IsZero() {
		e.Pos = e.Pos.Add(p.Move.Scale(p.Speed * dt))
		if p.Arena.W > 0 && p.Arena.H > 0 {
			e.Pos.X = vmath.Clamp(e.Pos.X, p.Arena.X, p.Arena.X+p.Arena.W-e.W)
			e.Pos.Y = vmath.Clamp(e.Pos.Y, p.Arena.Y, p.Arena.Y+p.Arena.H-e.H)
		}
	}
	if p.ShootCooldown > 0 {
		p.ShootCooldown -= dt
	}
}

// TakeDamage reduces health clamped at zero; reaching zero marks the player deleted
// Damage to an already dead player is ignored
func (e *Entity) TakeDamage(amount float64) {
	p := e.Player
	if p == nil || amount <= 0 || p.Health <= 0 {
		return
	}
	before := p.Health
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
	p.Events.Push(events.GameEvent{
		Type:     events.EventPlayerHurt,
		EntityID: e.ID,
		Amount:   before - p.Health,
		Pos:      e.Center(),
	})
	if p.Health == 0 {
		e.MarkForDeletion()
		p.Events.Push(events.GameEvent{Type: events.EventPlayerDied, EntityID: e.ID, Pos: e.Center()})
	}
}

// Heal restores health up to the maximum
func (e *Entity) Heal(amount float64) {
	p := e.Player
	if p == nil || amount <= 0 {
		return
	}
	p.Health = vmath.Clamp(p.Health+amount, 0, p.MaxHealth)
}

// AddAmmo adds rounds to a weapon's pool, clamped to its maximum
// Unlimited pools are left unchanged
func (e *Entity) AddAmmo(w Weapon, n int) {
	p := e.Player
	if p == nil || !w.Valid() || n <= 0 {
		return
	}
	if p.Ammo[w] == parameter.AmmoUnlimited {
		return
	}
	p.Ammo[w] += n
	if limit := weaponTable[w].max; limit != parameter.AmmoUnlimited && p.Ammo[w] > limit {
		p.Ammo[w] = limit
	}
}

// SwitchWeapon selects w and installs its fire interval, unknown weapons are ignored
// A running cooldown is kept so switching cannot be used to fire faster
func (e *Entity) SwitchWeapon(w Weapon) {
	p := e.Player
	if p == nil || !w.Valid() {
		return
	}
	p.Weapon = w
	p.FireInterval = w.FireInterval()
}

// Aim points the player at target, unchanged when target is the player center
func (e *Entity) Aim(target vmath.Vec2) {
	if e.Player == nil {
		return
	}
	dir := target.Sub(e.Center()).Normalize()
	if dir.IsZero() {
		return
	}
	e.Player.Direction = dir
}

// Shoot fires the current weapon and returns the spawned projectiles
// Returns nil without side effects while cooling down or out of ammo
func (e *Entity) Shoot(rng *vmath.FastRand) []*Entity {
	p := e.Player
	if p == nil || p.ShootCooldown > 0 || !p.Weapon.Valid() {
		return nil
	}
	if p.Ammo[p.Weapon] == 0 {
		return nil
	}

	p.ShootCooldown = p.FireInterval
	if p.Ammo[p.Weapon] != parameter.AmmoUnlimited {
		p.Ammo[p.Weapon]--
	}

	stats := weaponTable[p.Weapon]
	origin := e.Center()
	shots := make([]*Entity, 0, stats.pellets)
	for i := 0; i < stats.pellets; i++ {
		dir := p.Direction
		if stats.pellets > 1 && rng != nil {
			dir = dir.Rotate(rng.Range(-parameter.ShotgunSpread, parameter.ShotgunSpread))
		}
		shots = append(shots, NewProjectile(origin, dir.Scale(stats.speed), stats.damage, SourcePlayer))
	}
	return shots
}
