package parameter

// Enemy Kinds
const (
	EnemyNormalSpeed  = 80.0
	EnemyNormalHealth = 100.0
	EnemyNormalDamage = 10.0
	EnemyNormalSize   = 30.0
	EnemyNormalScore  = 10

	EnemyFastSpeed  = 150.0
	EnemyFastHealth = 50.0
	EnemyFastDamage = 5.0
	EnemyFastSize   = 24.0
	EnemyFastScore  = 20

	EnemyTankSpeed  = 60.0
	EnemyTankHealth = 200.0
	EnemyTankDamage = 20.0
	EnemyTankSize   = 44.0
	EnemyTankScore  = 50

	// EnemyAttackCooldown gates repeated contact damage from one enemy
	EnemyAttackCooldown = 1.0
)
