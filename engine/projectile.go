package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/pillar-arena/collision"
	"github.com/lixenwraith/pillar-arena/config"
)

// ProjectileKind distinguishes player shots from boss fireballs
type ProjectileKind uint8

const (
	ProjectileShot ProjectileKind = iota
	ProjectileFireball
)

// Projectile is a straight-flying sphere with a short position trail
type Projectile struct {
	Kind     ProjectileKind
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Age      float64
	Active   bool

	trail      []mgl64.Vec3
	trailHead  int
	trailCount int
	trailTimer float64
}

// Sphere returns the collision sphere
func (p *Projectile) Sphere(radius float64) collision.Sphere {
	return collision.Sphere{Center: p.Position, Radius: radius}
}

// Trail appends recorded positions to dst, newest first
func (p *Projectile) Trail(dst []mgl64.Vec3) []mgl64.Vec3 {
	n := len(p.trail)
	for i := 0; i < p.trailCount; i++ {
		dst = append(dst, p.trail[(p.trailHead-1-i+n)%n])
	}
	return dst
}

func (p *Projectile) record() {
	p.trail[p.trailHead] = p.Position
	p.trailHead = (p.trailHead + 1) % len(p.trail)
	p.trailCount = min(p.trailCount+1, len(p.trail))
}

// ProjectilePool holds at most MaxCount projectiles; slots are reused once full
type ProjectilePool struct {
	items []*Projectile
	cfg   config.Projectile
}

func NewProjectilePool(cfg config.Projectile) *ProjectilePool {
	return &ProjectilePool{items: make([]*Projectile, 0, cfg.MaxCount), cfg: cfg}
}

// Spawn launches a projectile from pos along unit dir at the kind's speed.
// When the pool is full the first inactive slot is reused; with none free the launch is dropped.
func (pp *ProjectilePool) Spawn(kind ProjectileKind, pos, dir mgl64.Vec3) bool {
	speed := pp.cfg.ShotSpeed
	if kind == ProjectileFireball {
		speed = pp.cfg.FireballSpeed
	}

	var p *Projectile
	if len(pp.items) < pp.cfg.MaxCount {
		p = &Projectile{trail: make([]mgl64.Vec3, pp.cfg.TrailLength)}
		pp.items = append(pp.items, p)
	} else {
		for _, it := range pp.items {
			if !it.Active {
				p = it
				break
			}
		}
		if p == nil {
			return false
		}
	}

	trail := p.trail
	*p = Projectile{
		Kind:     kind,
		Position: pos,
		Velocity: dir.Mul(speed),
		Active:   true,
		trail:    trail,
	}
	p.record()
	return true
}

// Update integrates active projectiles and retires expired or escaped ones
func (pp *ProjectilePool) Update(dt float64) {
	limit := pp.cfg.MaxDistance
	for _, p := range pp.items {
		if !p.Active {
			continue
		}
		p.Position = p.Position.Add(p.Velocity.Mul(dt))
		p.Age += dt

		p.trailTimer += dt
		if p.trailTimer >= pp.cfg.TrailInterval {
			p.trailTimer = 0
			p.record()
		}

		if p.Age >= pp.cfg.Lifetime ||
			math.Abs(p.Position.X()) > limit ||
			math.Abs(p.Position.Y()) > limit ||
			math.Abs(p.Position.Z()) > limit {
			p.Active = false
		}
	}
}

// Compact drops inactive projectiles, keeping launch order
func (pp *ProjectilePool) Compact() {
	n := 0
	for _, p := range pp.items {
		if p.Active {
			pp.items[n] = p
			n++
		}
	}
	clear(pp.items[n:])
	pp.items = pp.items[:n]
}

// Items returns the pool view; valid until the next Spawn or Compact
func (pp *ProjectilePool) Items() []*Projectile {
	return pp.items
}

// Active counts live projectiles
func (pp *ProjectilePool) Active() int {
	n := 0
	for _, p := range pp.items {
		if p.Active {
			n++
		}
	}
	return n
}
