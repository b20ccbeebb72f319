package parameter

// Player Entity
const (
	PlayerSize      = 40.0
	PlayerMaxHealth = 100.0

	// PlayerSpeed is movement speed in world units per second
	PlayerSpeed = 200.0

	// PlayerContactDamage is applied to the player for every frame it overlaps an enemy
	PlayerContactDamage = 10.0

	// PlayerBarrelLength is the rendered gun barrel beyond the player center
	PlayerBarrelLength = 28.0
)

// Ammo sentinel for weapons that never run dry
const AmmoUnlimited = -1

// Weapon Stats
const (
	PistolFireInterval  = 0.4
	ShotgunFireInterval = 0.8
	RifleFireInterval   = 0.15

	PistolDamage  = 25.0
	ShotgunDamage = 20.0
	RifleDamage   = 40.0

	// ProjectileSpeed is the base muzzle speed, rifle fires at RifleSpeedFactor times this
	ProjectileSpeed  = 500.0
	RifleSpeedFactor = 1.5

	ShotgunPellets = 5
	// ShotgunSpread is the max absolute angular offset per pellet in radians
	ShotgunSpread = 0.25

	ShotgunInitialAmmo = 10
	RifleInitialAmmo   = 30
	ShotgunMaxAmmo     = 40
	RifleMaxAmmo       = 120
)

// Projectile Entity
const (
	ProjectileSize     = 5.0
	ProjectileLifespan = 2.0
)
