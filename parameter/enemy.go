package parameter

// Enemy body
const (
	// EnemyHeight is the rendered/collision center height above the floor
	EnemyHeight = 0.101

	// EnemyContactHalfExtent is the box half-size used against the player
	EnemyContactHalfExtent = 0.10

	// EnemyEnvironmentHalfExtent is the box half-size used against pillars
	EnemyEnvironmentHalfExtent = 0.15

	// EnemyHitRadius is the sphere radius used against projectiles
	EnemyHitRadius = 0.10

	EnemyBaseSpeed     = 0.4
	EnemyDefaultHealth = 100

	// EnemyDeathDuration is the death animation length (s)
	EnemyDeathDuration = 0.5
)

// Enemy health bands rolled on spawn
const (
	EnemyHealthEasyMin   = 200
	EnemyHealthMediumMin = 400
	EnemyHealthHardMin   = 600
	EnemyHealthBandWidth = 100
)

// Speed ramp over play time
const (
	EnemySpeedRampInterval = 30.0
	EnemySpeedRampStep     = 0.15
	EnemySpeedRampMax      = 2.0
)
