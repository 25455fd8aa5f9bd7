package parameter

// Contact damage
const (
	ContactDamage = 10
	// BossContactMultiplier scales ContactDamage for boss contact
	BossContactMultiplier = 2
)

// Boss
const (
	BossX              = -3.5
	BossZ              = 0.0
	BossHealth         = 1500
	BossContactRadius  = 0.55
	BossHitRadius      = 0.45
	BossHitHeight      = 0.15
	BossAttackInterval = 2.5
	BossMuzzleHeight   = 0.25
	BossAimHeight      = 0.15
)

// Projectiles
const (
	ProjectileShotSpeed     = 6.0
	ProjectileFireballSpeed = 3.0
	ProjectileLifetime      = 3.0
	ProjectileMaxCount      = 30
	ProjectileMaxDistance   = 10.0
	ProjectileRadius        = 0.05
	ProjectileTrailLength   = 6
	ProjectileTrailInterval = 0.015
	ProjectileMuzzleOffset  = 0.3

	ShotDamage     = 100
	FireballDamage = 15
)
