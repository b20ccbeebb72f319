package core

// Sound keys shared by the director and the asset loader
const (
	SoundShootPistol  = "shoot_pistol"
	SoundShootShotgun = "shoot_shotgun"
	SoundShootRifle   = "shoot_rifle"
	SoundEnemyHit     = "enemy_hit"
	SoundEnemyDie     = "enemy_die"
	SoundPickup       = "pickup"
	SoundPlayerHurt   = "player_hurt"
	SoundWaveStart    = "wave_start"
	SoundGameOver     = "game_over"
	SoundMusic        = "music"
)

// Image keys, each optional; entities fall back to primitive shapes when absent
const (
	ImagePlayer      = "player"
	ImageEnemyNormal = "enemy_normal"
	ImageEnemyFast   = "enemy_fast"
	ImageEnemyTank   = "enemy_tank"
	ImagePickup      = "pickup"
	ImageObstacle    = "obstacle"
)
