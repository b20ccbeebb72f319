package parameter

// Wave Scheduling
const (
	// WaveBaseEnemies and WaveEnemiesPerWave give count(N) = base + perWave*N
	WaveBaseEnemies    = 5
	WaveEnemiesPerWave = 2

	// Spawn interval = max(SpawnIntervalMin, SpawnIntervalBase - min(SpawnIntervalMaxCut, wave*SpawnIntervalStep))
	SpawnIntervalBase   = 1.5
	SpawnIntervalStep   = 0.1
	SpawnIntervalMaxCut = 1.3
	SpawnIntervalMin    = 0.2

	// SpawnEdgeOffset is the distance outside the arena edge where enemies appear
	SpawnEdgeOffset = 50.0

	// WaveBreak is the pause after the last spawn of a wave before the next starts
	WaveBreak = 5.0

	// Enemy kind roll thresholds, evaluated in order against one draw
	TankMinWave = 5
	TankChance  = 0.1
	FastMinWave = 3
	FastChance  = 0.2
)

// Pickup Spawning
const (
	PickupSize          = 20.0
	PickupSpawnInterval = 15.0
	PickupMargin        = 50.0
	PickupPlaceAttempts = 10

	PickupHealthValue  = 25
	PickupPistolValue  = 15
	PickupShotgunValue = 5
	PickupRifleValue   = 10
)

// Obstacle Layout
const (
	ObstacleCount         = 6
	ObstacleMinSide       = 40.0
	ObstacleMaxSide       = 120.0
	ObstacleMargin        = 50.0
	ObstacleSafeZone      = 200.0
	ObstaclePlaceAttempts = 50
)

// Engine Timing
const (
	// MaxFrameDelta clamps a single frame's delta time in seconds
	MaxFrameDelta = 0.25
)
