package actor

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/pillar-arena/collision"
	"github.com/lixenwraith/pillar-arena/vmath"
)

// PlayerTuning configures the player body
type PlayerTuning struct {
	Health         int
	Speed          float64
	DamageCooldown float64
	HitRadius      float64
	HitHeight      float64
}

// Player is the controlled body; damage is gated by a cooldown
type Player struct {
	pos       mgl64.Vec3
	health    int
	maxHealth int
	cooldown  float64
	tuning    PlayerTuning
}

func NewPlayer(pos mgl64.Vec3, tuning PlayerTuning) *Player {
	return &Player{
		pos:       pos,
		health:    tuning.Health,
		maxHealth: tuning.Health,
		tuning:    tuning,
	}
}

// Update ticks the damage cooldown
func (p *Player) Update(dt float64) {
	p.cooldown = max(0, p.cooldown-dt)
}

// Move walks along the ground direction (dx, dz) at the player's speed
// Zero input does nothing; diagonal input is not faster
func (p *Player) Move(dx, dz, dt float64) {
	dir := vmath.SafeNormalize(vmath.XZ(dx, dz), mgl64.Vec3{})
	p.pos = p.pos.Add(dir.Mul(p.tuning.Speed * dt))
}

// TakeDamage applies amount unless the cooldown is running or the player is dead
// A landed hit restarts the cooldown
func (p *Player) TakeDamage(amount int) bool {
	if p.cooldown > 0 || p.health <= 0 {
		return false
	}
	p.health = max(0, p.health-amount)
	p.cooldown = p.tuning.DamageCooldown
	return true
}

// Heal adds amount, capped at max health
func (p *Player) Heal(amount int) {
	if p.health <= 0 {
		return
	}
	p.health = min(p.maxHealth, p.health+amount)
}

// Reset restores full health at pos
func (p *Player) Reset(pos mgl64.Vec3) {
	p.pos = pos
	p.health = p.maxHealth
	p.cooldown = 0
}

func (p *Player) IsDead() bool             { return p.health <= 0 }
func (p *Player) Health() int              { return p.health }
func (p *Player) MaxHealth() int           { return p.maxHealth }
func (p *Player) Cooldown() float64        { return p.cooldown }
func (p *Player) Position() mgl64.Vec3     { return p.pos }
func (p *Player) SetPosition(v mgl64.Vec3) { p.pos = v }
func (p *Player) Solid() bool              { return p.health > 0 }

// HitSphere is the sphere projectiles are tested against
func (p *Player) HitSphere() collision.Sphere {
	return collision.Sphere{
		Center: p.pos.Add(mgl64.Vec3{0, p.tuning.HitHeight, 0}),
		Radius: p.tuning.HitRadius,
	}
}
