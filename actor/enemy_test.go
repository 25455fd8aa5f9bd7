package actor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pillar-arena/collision"
	"github.com/lixenwraith/pillar-arena/navigation"
	"github.com/lixenwraith/pillar-arena/vmath"
)

var wideBox = collision.AABB{Min: mgl64.Vec3{-100, 0, -100}, Max: mgl64.Vec3{100, 0, 100}}

// wideEnemy has no effective arena clamp, isolating locomotion from bounds
func wideEnemy(x, z, speed float64, seed uint64) *Enemy {
	planner := navigation.DefaultPlanner()
	planner.Bounds = wideBox
	tuning := DefaultEnemyTuning()
	tuning.Bounds = wideBox
	tuning.Speed = speed
	return NewEnemy(x, z, 100, tuning, &planner, vmath.NewFastRand(seed))
}

func TestEnemy_SingleLongStepLandsOnFrozenTarget(t *testing.T) {
	e := wideEnemy(0, 0, 1.0, 1)
	require.Equal(t, LocomotionUninitialized, e.Locomotion())

	e.Update(5.0, mgl64.Vec3{5, 0, 0})

	prev, ok := e.PreviousCurve()
	require.True(t, ok)
	assert.Equal(t, 1.0, prev.T)
	assert.Equal(t, mgl64.Vec3{5, 0, 0}, prev.P3)
	assert.True(t, e.Position().Sub(mgl64.Vec3{0, e.tuning.Height, 0}).ApproxEqualThreshold(prev.P3, 1e-12))
	assert.Equal(t, LocomotionTraveling, e.Locomotion())
}

func TestEnemy_TargetSnapshotIsFrozen(t *testing.T) {
	e := wideEnemy(0, 0, 0.4, 2)

	e.Update(0.1, mgl64.Vec3{3, 0, 0})
	e.Update(0.1, mgl64.Vec3{-3, 0, 1})

	assert.Equal(t, mgl64.Vec3{3, 0, 0}, e.Curve().P3)
}

func TestEnemy_ArrivalReplanIsC1(t *testing.T) {
	e := wideEnemy(0, 0, 2.0, 3)

	e.Update(0.1, mgl64.Vec3{3, 0, 0})
	for i := 0; i < 100; i++ {
		if _, ok := e.PreviousCurve(); ok {
			break
		}
		e.Update(0.1, mgl64.Vec3{-1, 0, 1})
	}

	prev, ok := e.PreviousCurve()
	require.True(t, ok)
	require.Equal(t, 1.0, prev.T, "replan triggered by arrival")

	plan := e.LastPlan()
	require.True(t, plan.Continued)
	assert.Equal(t, prev.Derivative(1), plan.V0)
	assert.True(t, e.Curve().Derivative(0).ApproxEqualThreshold(prev.Derivative(1), 1e-9))
	assert.Equal(t, mgl64.Vec3{-1, 0, 1}, e.Curve().P3)
}

func TestEnemy_KnockbackSettlesThenResumes(t *testing.T) {
	e := wideEnemy(0, 0, 0.4, 4)
	e.Update(0.1, mgl64.Vec3{3, 0, 0})
	start := e.Position()

	e.ApplyKnockback(1, 0, 10)
	require.Equal(t, LocomotionKnockback, e.Locomotion())

	player := mgl64.Vec3{-3, 0, 0}
	e.Update(0.2, player)
	settle := vmath.Flatten(e.Position())
	assert.InDelta(t, start.X()+2, settle.X(), 1e-12)
	assert.Equal(t, LocomotionUninitialized, e.Locomotion(), "settled on the first tick")
	assert.Equal(t, settle, e.Curve().P0)

	for i := 0; i < 3 && e.Locomotion() != LocomotionTraveling; i++ {
		e.Update(0.2, player)
	}
	require.Equal(t, LocomotionTraveling, e.Locomotion())
	assert.Equal(t, settle, e.Curve().P0)
	assert.Equal(t, player, e.Curve().P3)
}

func TestEnemy_KnockbackOverridesVelocity(t *testing.T) {
	e := wideEnemy(0, 0, 0.4, 5)
	e.ApplyKnockback(1, 0, 6)
	e.ApplyKnockback(0, -1, 6)

	vx, vz := e.Knockback()
	assert.Equal(t, 0.0, vx)
	assert.Equal(t, -6.0, vz)
}

func TestEnemy_ObstacleCollisionInvalidates(t *testing.T) {
	e := wideEnemy(0, 0, 0.4, 6)
	e.Update(0.5, mgl64.Vec3{3, 0, 0})
	require.Equal(t, LocomotionTraveling, e.Locomotion())

	e.SetPosition(mgl64.Vec3{0.1, 5, 0.2})
	e.OnObstacleCollision()

	assert.Equal(t, LocomotionUninitialized, e.Locomotion())
	assert.Equal(t, mgl64.Vec3{0.1, 0, 0.2}, e.Curve().P0)
	assert.Equal(t, 0.0, e.Curve().T)
	assert.Equal(t, 0.0, e.ReplanIn())
	vx, vz := e.Knockback()
	assert.Zero(t, vx)
	assert.Zero(t, vz)

	e.Update(0.1, mgl64.Vec3{3, 0, 0})
	assert.False(t, e.LastPlan().Continued, "an invalidated segment does not seed continuity")
}

func TestEnemy_ArenaClampInvalidates(t *testing.T) {
	planner := navigation.DefaultPlanner()
	e := NewEnemy(4.0, 0, 100, DefaultEnemyTuning(), &planner, vmath.NewFastRand(7))
	target := mgl64.Vec3{8, 0, 0}

	e.Update(0.1, target)
	require.Equal(t, LocomotionTraveling, e.Locomotion())
	require.Less(t, e.Position().X(), 4.2, "still inside the clamp box")

	// One long step lands on the frozen target outside the box
	e.Update(100, target)
	assert.Equal(t, 4.2, e.Position().X())
	assert.Equal(t, 0.0, e.Position().Z())
	assert.Equal(t, LocomotionUninitialized, e.Locomotion(), "wall clamp drops the segment")
	assert.Equal(t, mgl64.Vec3{4.2, 0, 0}, e.Curve().P0)
	assert.Equal(t, 0.0, e.Curve().T)
	assert.Equal(t, 0.0, e.ReplanIn())

	e.Update(0.1, mgl64.Vec3{0, 0, 0})
	assert.Equal(t, LocomotionTraveling, e.Locomotion())
	assert.Equal(t, mgl64.Vec3{4.2, 0, 0}, e.Curve().P0)
}

func TestEnemy_KnockbackWallClampKeepsCurve(t *testing.T) {
	planner := navigation.DefaultPlanner()
	e := NewEnemy(4.0, 0, 100, DefaultEnemyTuning(), &planner, vmath.NewFastRand(11))
	e.Update(0.1, mgl64.Vec3{0, 0, 0})
	require.Equal(t, LocomotionTraveling, e.Locomotion())
	curve, replanIn := e.Curve(), e.ReplanIn()

	e.ApplyKnockback(1, 0, 6)
	e.Update(0.1, mgl64.Vec3{0, 0, 0})

	assert.Equal(t, 4.2, e.Position().X())
	assert.Equal(t, LocomotionKnockback, e.Locomotion())
	assert.Equal(t, replanIn, e.ReplanIn())
	assert.Equal(t, curve, e.Curve())
}

func TestEnemy_ReplanCountdown(t *testing.T) {
	e := wideEnemy(0, 0, 0.01, 8)
	e.Update(0.1, mgl64.Vec3{10, 0, 0})
	first := e.ReplanIn()
	require.GreaterOrEqual(t, first, 1.9)

	for i := 0; i < 40; i++ {
		e.Update(0.1, mgl64.Vec3{10, 0, 0})
	}
	prev, ok := e.PreviousCurve()
	require.True(t, ok, "countdown forced a replan")
	assert.Less(t, prev.T, 1.0)
}

func TestEnemy_Lifecycle(t *testing.T) {
	e := wideEnemy(1, 1, 0.4, 9)
	assert.Equal(t, LifecycleAlive, e.Lifecycle())
	assert.True(t, e.Solid())

	assert.True(t, e.TakeDamage(60))
	assert.Equal(t, 40, e.Health())
	assert.True(t, e.TakeDamage(100))
	assert.Equal(t, 0, e.Health())
	assert.True(t, e.IsDead())

	e.StartDying()
	assert.False(t, e.TakeDamage(10), "dying enemies take no damage")
	assert.Equal(t, LifecycleDying, e.Lifecycle())
	assert.False(t, e.Solid())

	pos := e.Position()
	e.Update(0.25, mgl64.Vec3{3, 0, 0})
	assert.Equal(t, pos, e.Position(), "dying enemies do not move")
	assert.InDelta(t, 0.5, e.DeathProgress(), 1e-12)
	assert.InDelta(t, 1.75, e.DeathScale(), 1e-12)

	e.StartDying()
	assert.InDelta(t, 0.5, e.DeathProgress(), 1e-12, "StartDying is idempotent")

	e.Update(0.25, mgl64.Vec3{})
	assert.True(t, e.IsReadyForRemoval())
	assert.Equal(t, LifecycleRemovable, e.Lifecycle())
	assert.Equal(t, 2.0, e.DeathScale())

	e.Update(1, mgl64.Vec3{})
	assert.Equal(t, 1.0, e.DeathProgress())
}

func TestEnemy_Facing(t *testing.T) {
	e := wideEnemy(0, 0, 0.4, 10)
	assert.InDelta(t, 0, e.Facing(mgl64.Vec3{0, 0, 1}), 1e-12)
	assert.InDelta(t, 1.5707963267948966, e.Facing(mgl64.Vec3{1, 0, 0}), 1e-12)
}
