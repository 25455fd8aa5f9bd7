// Package actor holds the arena's bodies: enemies with their curve locomotion
// and death lifecycle, the player, the boss and the static pillars.
package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/pillar-arena/collision"
	"github.com/lixenwraith/pillar-arena/navigation"
	"github.com/lixenwraith/pillar-arena/parameter"
	"github.com/lixenwraith/pillar-arena/physics"
)

// Locomotion is the movement state of a living enemy
type Locomotion uint8

const (
	LocomotionUninitialized Locomotion = iota
	LocomotionTraveling
	LocomotionKnockback
)

func (l Locomotion) String() string {
	switch l {
	case LocomotionTraveling:
		return "traveling"
	case LocomotionKnockback:
		return "knockback"
	default:
		return "uninitialized"
	}
}

// Lifecycle is the death progression of an enemy
type Lifecycle uint8

const (
	LifecycleAlive Lifecycle = iota
	LifecycleDying
	LifecycleRemovable
)

func (l Lifecycle) String() string {
	switch l {
	case LifecycleDying:
		return "dying"
	case LifecycleRemovable:
		return "removable"
	default:
		return "alive"
	}
}

// EnemyTuning is the per-enemy movement and lifecycle configuration
type EnemyTuning struct {
	Height             float64
	Speed              float64
	MinAdvanceDistance float64
	DecayRate          float64
	SettleThreshold    float64
	DeathDuration      float64
	// Ground clamp; only X and Z are used
	Bounds collision.AABB
}

// DefaultEnemyTuning returns the stock tuning
func DefaultEnemyTuning() EnemyTuning {
	return EnemyTuning{
		Height:             parameter.EnemyHeight,
		Speed:              parameter.EnemyBaseSpeed,
		MinAdvanceDistance: parameter.CurveMinAdvanceDistance,
		DecayRate:          parameter.KnockbackDecayRate,
		SettleThreshold:    parameter.KnockbackSettleThreshold,
		DeathDuration:      parameter.EnemyDeathDuration,
		Bounds: collision.AABB{
			Min: mgl64.Vec3{parameter.ArenaEnemyMinX, 0, parameter.ArenaEnemyMinZ},
			Max: mgl64.Vec3{parameter.ArenaEnemyMaxX, 0, parameter.ArenaEnemyMaxZ},
		},
	}
}

// Enemy is a ground-bound pursuer following cubic segments toward a frozen snapshot
// of the player, interrupted by knockback and obstacle pushes
type Enemy struct {
	x, z float64

	health    int
	maxHealth int
	speed     float64
	tuning    EnemyTuning

	planner *navigation.Planner
	rng     navigation.Rand

	knockback physics.Knockback

	curve       navigation.Curve
	prev        navigation.Curve
	hasPrev     bool
	replanIn    float64
	initialized bool
	lastPlan    navigation.Plan

	dying      bool
	deathTimer float64
}

// NewEnemy places an enemy on the ground at (x, z)
// The planner is shared and read-only; rng is owned by the enemy
func NewEnemy(x, z float64, health int, tuning EnemyTuning, planner *navigation.Planner, rng navigation.Rand) *Enemy {
	e := &Enemy{
		x:         x,
		z:         z,
		health:    health,
		maxHealth: health,
		speed:     tuning.Speed,
		tuning:    tuning,
		planner:   planner,
		rng:       rng,
	}
	e.curve = navigation.CurveAt(e.ground())
	return e
}

// Update advances the enemy by dt toward player.
// Dying enemies only advance their death timer.
func (e *Enemy) Update(dt float64, player mgl64.Vec3) {
	if e.dying {
		e.deathTimer += dt
		return
	}

	if e.knockback.Active() {
		dx, dz := physics.Integrate(&e.knockback, dt)
		e.x += dx
		e.z += dz
		physics.Decay(&e.knockback, dt, e.tuning.DecayRate)
		settled := physics.Settle(&e.knockback, e.tuning.SettleThreshold)

		e.clampToArena()
		if settled {
			e.invalidate()
		}
		return
	}

	if !e.initialized {
		e.replan(player, nil)
	}

	e.replanIn -= dt
	e.curve.Advance(e.speed*dt, e.tuning.MinAdvanceDistance)

	if e.curve.Done() || e.replanIn <= 0 {
		e.curve.ClampT()
		e.moveTo(e.curve.Position())

		e.prev = e.curve
		e.hasPrev = true
		e.replan(player, &e.prev)
	} else {
		e.moveTo(e.curve.Position())
	}

	if e.clampToArena() {
		e.invalidate()
	}
}

// ApplyKnockback overwrites the knockback velocity with dir*force
// Any running curve is abandoned once the knockback settles
func (e *Enemy) ApplyKnockback(dirX, dirZ, force float64) {
	if e.dying {
		return
	}
	physics.SetImpulse(&e.knockback, dirX, dirZ, force)
}

// ApplyProfile shoves the enemy along dir using a collision profile
func (e *Enemy) ApplyProfile(dir mgl64.Vec3, profile physics.KnockbackProfile) {
	if e.dying {
		return
	}
	physics.ApplyCollision(&e.knockback, dir, profile)
}

// OnObstacleCollision drops the current segment; the next update plans from where the enemy stands
func (e *Enemy) OnObstacleCollision() {
	e.invalidate()
}

func (e *Enemy) invalidate() {
	e.curve.P0 = e.ground()
	e.curve.T = 0
	e.replanIn = 0
	e.initialized = false
}

func (e *Enemy) replan(player mgl64.Vec3, prev *navigation.Curve) {
	e.lastPlan = e.planner.Plan(e.ground(), player, prev, e.rng)
	e.curve = e.lastPlan.Curve
	e.replanIn = e.lastPlan.ReplanIn
	e.initialized = true
}

func (e *Enemy) moveTo(p mgl64.Vec3) {
	e.x, e.z = p.X(), p.Z()
}

// clampToArena returns true when the position was outside the ground box
func (e *Enemy) clampToArena() bool {
	b := e.tuning.Bounds
	x := math.Max(b.Min.X(), math.Min(e.x, b.Max.X()))
	z := math.Max(b.Min.Z(), math.Min(e.z, b.Max.Z()))
	moved := x != e.x || z != e.z
	e.x, e.z = x, z
	return moved
}

func (e *Enemy) ground() mgl64.Vec3 {
	return mgl64.Vec3{e.x, 0, e.z}
}

// --- Health and lifecycle ---

// TakeDamage subtracts amount, clamping at zero
// Returns false when the enemy was already dead or dying
func (e *Enemy) TakeDamage(amount int) bool {
	if e.dying || e.health <= 0 {
		return false
	}
	e.health = max(0, e.health-amount)
	return true
}

// IsDead reports zero health
func (e *Enemy) IsDead() bool {
	return e.health <= 0
}

// StartDying begins the death timer; repeated calls are ignored
func (e *Enemy) StartDying() {
	if e.dying {
		return
	}
	e.dying = true
	e.deathTimer = 0
	physics.Stop(&e.knockback)
}

// IsDying reports whether the death timer is running
func (e *Enemy) IsDying() bool {
	return e.dying
}

// DeathProgress is the death animation fraction in [0, 1]
func (e *Enemy) DeathProgress() float64 {
	if !e.dying {
		return 0
	}
	if e.tuning.DeathDuration <= 0 {
		return 1
	}
	return math.Min(e.deathTimer/e.tuning.DeathDuration, 1)
}

// DeathScale grows from 1 to 2 with an ease-out over the death animation
func (e *Enemy) DeathScale() float64 {
	p := e.DeathProgress()
	return 1 + p*(2-p)
}

// IsReadyForRemoval reports a finished death animation
func (e *Enemy) IsReadyForRemoval() bool {
	return e.dying && e.deathTimer >= e.tuning.DeathDuration
}

// Lifecycle returns the derived lifecycle state
func (e *Enemy) Lifecycle() Lifecycle {
	switch {
	case !e.dying:
		return LifecycleAlive
	case e.IsReadyForRemoval():
		return LifecycleRemovable
	default:
		return LifecycleDying
	}
}

// Locomotion returns the derived movement state
func (e *Enemy) Locomotion() Locomotion {
	switch {
	case e.knockback.Active():
		return LocomotionKnockback
	case !e.initialized:
		return LocomotionUninitialized
	default:
		return LocomotionTraveling
	}
}

// --- Accessors ---

// Position is the body center: ground position lifted to the enemy height
func (e *Enemy) Position() mgl64.Vec3 {
	return mgl64.Vec3{e.x, e.tuning.Height, e.z}
}

// SetPosition moves the enemy on the ground plane; Y is ignored
func (e *Enemy) SetPosition(p mgl64.Vec3) {
	e.x, e.z = p.X(), p.Z()
}

// Solid is false once dying
func (e *Enemy) Solid() bool {
	return !e.dying
}

func (e *Enemy) Health() int    { return e.health }
func (e *Enemy) MaxHealth() int { return e.maxHealth }
func (e *Enemy) Speed() float64 { return e.speed }

// SetSpeed changes travel speed; the current segment keeps its shape
func (e *Enemy) SetSpeed(speed float64) {
	e.speed = speed
}

// Knockback returns the current knockback velocity
func (e *Enemy) Knockback() (vx, vz float64) {
	return e.knockback.Velocity()
}

// Curve returns the active segment
func (e *Enemy) Curve() navigation.Curve {
	return e.curve
}

// PreviousCurve returns the last retired segment, if any
func (e *Enemy) PreviousCurve() (navigation.Curve, bool) {
	return e.prev, e.hasPrev
}

// LastPlan returns the most recent synthesis result
func (e *Enemy) LastPlan() navigation.Plan {
	return e.lastPlan
}

// ReplanIn returns the remaining countdown before a forced replan
func (e *Enemy) ReplanIn() float64 {
	return e.replanIn
}

// Facing returns the yaw from +Z toward target, in radians
func (e *Enemy) Facing(target mgl64.Vec3) float64 {
	return math.Atan2(target.X()-e.x, target.Z()-e.z)
}
