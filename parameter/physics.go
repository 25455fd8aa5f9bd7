package parameter

// Knockback kinetics
const (
	// KnockbackForce applied to an enemy on player contact
	KnockbackForce = 6.0

	// KnockbackDecayRate: velocity *= max(0, 1 - rate*dt) per tick
	KnockbackDecayRate = 8.0

	// KnockbackSettleThreshold: both components below it snap to zero
	KnockbackSettleThreshold = 0.05

	// ShotKnockbackForce shoves an enemy hit by a player projectile
	ShotKnockbackForce = 1.5
)

// Push-out
const (
	// SpherePushEpsilon is extra clearance added by circular push-out
	SpherePushEpsilon = 0.01
)
