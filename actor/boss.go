package actor

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/pillar-arena/collision"
	"github.com/lixenwraith/pillar-arena/vmath"
)

// BossTuning configures the stationary boss
type BossTuning struct {
	Health         int
	ContactRadius  float64
	HitRadius      float64
	HitHeight      float64
	AttackInterval float64
	MuzzleHeight   float64
	AimHeight      float64
}

// Boss sits at a fixed point, blocks a circular zone and fires on a timer
type Boss struct {
	pos         mgl64.Vec3
	health      int
	maxHealth   int
	attackTimer float64
	tuning      BossTuning
}

func NewBoss(pos mgl64.Vec3, tuning BossTuning) *Boss {
	return &Boss{pos: pos, health: tuning.Health, maxHealth: tuning.Health, tuning: tuning}
}

// Update accumulates the attack timer and returns true when an attack is due
func (b *Boss) Update(dt float64) bool {
	if b.health <= 0 {
		return false
	}
	b.attackTimer += dt
	if b.attackTimer >= b.tuning.AttackInterval {
		b.attackTimer = 0
		return true
	}
	return false
}

// Muzzle is the fireball launch point
func (b *Boss) Muzzle() mgl64.Vec3 {
	return b.pos.Add(mgl64.Vec3{0, b.tuning.MuzzleHeight, 0})
}

// AimAt returns the unit direction from the muzzle to the target's aim point
func (b *Boss) AimAt(target mgl64.Vec3) mgl64.Vec3 {
	aim := target.Add(mgl64.Vec3{0, b.tuning.AimHeight, 0})
	return vmath.SafeNormalize(aim.Sub(b.Muzzle()), vmath.AxisX)
}

// TakeDamage clamps at zero; false once dead
func (b *Boss) TakeDamage(amount int) bool {
	if b.health <= 0 {
		return false
	}
	b.health = max(0, b.health-amount)
	return true
}

// ContactZone is the circle the player is pushed out of
func (b *Boss) ContactZone() collision.Sphere {
	return collision.Sphere{Center: b.pos, Radius: b.tuning.ContactRadius}
}

// HitSphere is what player shots are tested against
func (b *Boss) HitSphere() collision.Sphere {
	return collision.Sphere{Center: b.pos.Add(mgl64.Vec3{0, b.tuning.HitHeight, 0}), Radius: b.tuning.HitRadius}
}

func (b *Boss) IsDead() bool         { return b.health <= 0 }
func (b *Boss) Health() int          { return b.health }
func (b *Boss) MaxHealth() int       { return b.maxHealth }
func (b *Boss) Position() mgl64.Vec3 { return b.pos }
