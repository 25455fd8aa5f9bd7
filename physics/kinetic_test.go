package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestSetImpulse_Overrides(t *testing.T) {
	k := Knockback{VelX: 3, VelZ: -2}
	SetImpulse(&k, 0, 1, 6)
	assert.Equal(t, Knockback{VelX: 0, VelZ: 6}, k)
}

func TestApplyImpulse_Adds(t *testing.T) {
	k := Knockback{VelX: 1}
	ApplyImpulse(&k, 1, 1, 0.5)
	assert.Equal(t, Knockback{VelX: 1.5, VelZ: 0.5}, k)
}

func TestIntegrate(t *testing.T) {
	k := Knockback{VelX: 2, VelZ: -4}
	dx, dz := Integrate(&k, 0.25)
	assert.Equal(t, 0.5, dx)
	assert.Equal(t, -1.0, dz)
}

func TestDecay(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
		want float64
	}{
		{"partial", 0.05, 6 * 0.6},
		{"exact zero", 0.125, 0},
		{"overshoot clamps", 0.2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := Knockback{VelX: 6, VelZ: -6}
			Decay(&k, tt.dt, 8)
			assert.InDelta(t, tt.want, k.VelX, 1e-12)
			assert.InDelta(t, -tt.want, k.VelZ, 1e-12)
		})
	}
}

func TestSettle(t *testing.T) {
	k := Knockback{VelX: 0.04, VelZ: 0.06}
	assert.False(t, Settle(&k, 0.05), "one component above threshold")

	k.VelZ = -0.049
	assert.True(t, Settle(&k, 0.05))
	assert.False(t, k.Active())

	assert.True(t, Settle(&k, 0.05), "idle knockback is at rest")
}

func TestApplyCollision(t *testing.T) {
	k := Knockback{VelX: 5, VelZ: 5}
	ApplyCollision(&k, mgl64.Vec3{3, 7, 4}, KnockbackProfile{Force: 10, Mode: ImpulseOverride})
	assert.InDelta(t, 6, k.VelX, 1e-12)
	assert.InDelta(t, 8, k.VelZ, 1e-12)

	ApplyCollision(&k, mgl64.Vec3{}, KnockbackProfile{Force: 1, Mode: ImpulseAdditive})
	assert.InDelta(t, 7, k.VelX, 1e-12, "zero direction falls back to +x")
	assert.InDelta(t, 8, k.VelZ, 1e-12)
}

func TestProfiles(t *testing.T) {
	assert.Equal(t, ImpulseOverride, PlayerToEnemy.Mode)
	assert.Equal(t, ImpulseAdditive, ShotToEnemy.Mode)
	assert.Greater(t, PlayerToEnemy.Force, ShotToEnemy.Force)
}
