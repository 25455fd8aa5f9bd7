package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/pillar-arena/collision"
	"github.com/lixenwraith/pillar-arena/vmath"
)

// Body is anything the resolver can move
type Body interface {
	Position() mgl64.Vec3
	SetPosition(p mgl64.Vec3)
	// Solid bodies block and are blocked; dying enemies are not solid
	Solid() bool
}

// ResolverConfig carries shapes and constants for both passes
type ResolverConfig struct {
	Ground       collision.Plane
	PlayerBounds collision.AABB

	PlayerExtents           mgl64.Vec3
	EnemyContactExtents     mgl64.Vec3
	EnemyEnvironmentExtents mgl64.Vec3

	Contact       KnockbackProfile
	SphereEpsilon float64
}

// Resolver runs the pairwise push-out passes over one frame's bodies
// Obstacles and Boss are owned by the caller and read on every pass
type Resolver struct {
	Config    ResolverConfig
	Obstacles []collision.AABB
	// Boss is the circular no-go zone around the boss; nil disables it
	Boss *collision.Sphere
}

// NewResolver returns a resolver over the given static obstacles
func NewResolver(cfg ResolverConfig, obstacles []collision.AABB) *Resolver {
	return &Resolver{Config: cfg, Obstacles: obstacles}
}

// ResolveEnemies pushes every solid enemy out of every obstacle, in roster then obstacle order.
// The enemy box is rebuilt from the corrected position before each subsequent obstacle.
// Each push is reported as an ObstacleHit; the enemies' locomotion is not touched.
func ResolveEnemies[B Body](r *Resolver, enemies []B, report *Report) {
	ext := r.Config.EnemyEnvironmentExtents

	for i, e := range enemies {
		if !e.Solid() {
			continue
		}
		pos := e.Position()
		moved := false

		for j, box := range r.Obstacles {
			next, axis, hit := collision.PushOutAABB(pos, ext, box)
			if !hit {
				continue
			}
			pos = next
			moved = true
			report.ObstacleHits = append(report.ObstacleHits, ObstacleHit{
				Enemy:    i,
				Obstacle: j,
				Axis:     axis,
				Position: pos,
			})
		}

		if moved {
			e.SetPosition(pos)
		}
	}
}

// ResolvePlayer runs the player pass: ground plane, arena clamp, obstacles, solid enemies, boss.
// Every push recomputes the player box so later checks see the corrected position.
// Enemy contacts carry the knockback the enemy should take, directed from the corrected
// player position toward the enemy. Damage and knockback application are left to the caller.
func ResolvePlayer[B Body](r *Resolver, player Body, enemies []B, report *Report) {
	cfg := &r.Config
	pos := player.Position()
	start := pos

	if collision.ResolveAABBPlane(&pos, cfg.PlayerExtents, cfg.Ground) {
		report.GroundContact = true
	}

	collision.ClampPositionToBox(&pos, cfg.PlayerBounds.Min, cfg.PlayerBounds.Max)

	for _, box := range r.Obstacles {
		pos, _, _ = collision.PushOutAABB(pos, cfg.PlayerExtents, box)
	}

	for i, e := range enemies {
		if !e.Solid() {
			continue
		}
		ep := e.Position()
		enemyBox := collision.FromCenter(ep, cfg.EnemyContactExtents)

		next, _, hit := collision.PushOutAABB(pos, cfg.PlayerExtents, enemyBox)
		if !hit {
			continue
		}
		pos = next

		dir := vmath.SafeNormalize(vmath.Flatten(ep.Sub(pos)), vmath.AxisX)
		report.Contacts = append(report.Contacts, Contact{
			Enemy:   i,
			Dir:     dir,
			Profile: cfg.Contact,
		})
	}

	if r.Boss != nil {
		// Circular push on the ground plane; height is kept
		flat := vmath.Flatten(pos)
		zone := collision.Sphere{Center: vmath.Flatten(r.Boss.Center), Radius: r.Boss.Radius}
		if out, hit := collision.PushOutSphere(flat, zone, cfg.SphereEpsilon); hit {
			pos[0], pos[2] = out.X(), out.Z()
			report.BossContact = true
		}
	}

	if pos != start {
		player.SetPosition(pos)
		report.PlayerMoved = true
	}
}
