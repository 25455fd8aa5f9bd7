package physics

import (
	"github.com/lixenwraith/pillar-arena/parameter"
)

// Knockback profiles - pre-defined for zero allocation in hot path

// PlayerToEnemy is the contact shove an enemy takes when the player walks into it
var PlayerToEnemy = KnockbackProfile{
	Force: parameter.KnockbackForce,
	Mode:  ImpulseOverride,
}

// ShotToEnemy nudges an enemy hit by a player projectile; stacks with a running knockback
var ShotToEnemy = KnockbackProfile{
	Force: parameter.ShotKnockbackForce,
	Mode:  ImpulseAdditive,
}
