package engine

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/pillar-arena/actor"
	"github.com/lixenwraith/pillar-arena/collision"
	"github.com/lixenwraith/pillar-arena/config"
	"github.com/lixenwraith/pillar-arena/vmath"
)

// Pickup is a health orb lying on the floor
type Pickup struct {
	Position mgl64.Vec3
}

// pickupField spawns orbs while the player is hurt and hands them out on touch
type pickupField struct {
	cfg   config.Pickup
	reach float64
	timer float64
	items []Pickup
}

func newPickupField(cfg config.Pickup, playerHalfExtent float64) pickupField {
	return pickupField{cfg: cfg, reach: cfg.Radius + playerHalfExtent}
}

// update runs the spawn timer, then collects every orb within reach of the player.
// The timer only restarts on a spawn, so an overdue orb appears as soon as the player is hurt.
func (f *pickupField) update(dt float64, rng *vmath.FastRand, player *actor.Player, log *EventLog) {
	f.timer += dt
	if f.timer >= f.cfg.Interval &&
		player.Health() < player.MaxHealth()/2 && len(f.items) < f.cfg.MaxActive {
		f.timer = 0
		p := mgl64.Vec3{
			f.cfg.MinX + rng.Float64()*f.cfg.SpanX,
			f.cfg.Height,
			f.cfg.MinZ + rng.Float64()*f.cfg.SpanZ,
		}
		f.items = append(f.items, Pickup{Position: p})
		log.push(EventPickupSpawned, NoEnemy, p, 0)
	}

	flat := vmath.Flatten(player.Position())
	n := 0
	for _, it := range f.items {
		if collision.TestPointSphere(flat, vmath.Flatten(it.Position), f.reach) {
			player.Heal(f.cfg.Heal)
			log.push(EventPickupCollected, NoEnemy, it.Position, f.cfg.Heal)
			continue
		}
		f.items[n] = it
		n++
	}
	f.items = f.items[:n]
}
