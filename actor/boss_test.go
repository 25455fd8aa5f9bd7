package actor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBoss() *Boss {
	return NewBoss(mgl64.Vec3{-3.5, 0, 0}, BossTuning{
		Health:         1500,
		ContactRadius:  0.55,
		HitRadius:      0.45,
		HitHeight:      0.15,
		AttackInterval: 2.5,
		MuzzleHeight:   0.25,
		AimHeight:      0.15,
	})
}

func TestBoss_AttackTimer(t *testing.T) {
	b := testBoss()
	fired := 0
	for i := 0; i < 100; i++ {
		if b.Update(0.1) {
			fired++
		}
	}
	// 10 s at 2.5 s intervals, within float accumulation
	assert.InDelta(t, 4, fired, 1)
}

func TestBoss_AimAt(t *testing.T) {
	b := testBoss()
	dir := b.AimAt(mgl64.Vec3{0.5, 0.1, 0})
	assert.InDelta(t, 1, dir.Len(), 1e-12)
	assert.Greater(t, dir.X(), 0.0)
	assert.Equal(t, 0.0, dir.Z())
}

func TestBoss_DamageAndShapes(t *testing.T) {
	b := testBoss()
	require.True(t, b.TakeDamage(1400))
	require.True(t, b.TakeDamage(200))
	assert.Equal(t, 0, b.Health())
	assert.True(t, b.IsDead())
	assert.False(t, b.TakeDamage(1))
	assert.False(t, b.Update(10), "dead boss does not attack")

	assert.Equal(t, 0.55, b.ContactZone().Radius)
	assert.InDelta(t, 0.15, b.HitSphere().Center.Y(), 1e-12)
}
