package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/pillar-arena/vmath"
)

// ImpulseMode defines how impulse is applied to velocity
type ImpulseMode uint8

const (
	// ImpulseAdditive adds impulse to existing velocity
	ImpulseAdditive ImpulseMode = iota
	// ImpulseOverride replaces velocity with impulse (stun/hard redirect)
	ImpulseOverride
)

// KnockbackProfile defines a shove applied on collision
type KnockbackProfile struct {
	Force float64
	Mode  ImpulseMode
}

// ApplyCollision applies a profile along dir, which is normalized on the ground plane here
// A zero direction falls back to +X
func ApplyCollision(k *Knockback, dir mgl64.Vec3, profile KnockbackProfile) {
	d := vmath.SafeNormalize(vmath.Flatten(dir), vmath.AxisX)

	switch profile.Mode {
	case ImpulseAdditive:
		ApplyImpulse(k, d.X(), d.Z(), profile.Force)
	case ImpulseOverride:
		SetImpulse(k, d.X(), d.Z(), profile.Force)
	}
}
