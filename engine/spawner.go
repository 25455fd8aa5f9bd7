package engine

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/pillar-arena/collision"
	"github.com/lixenwraith/pillar-arena/config"
	"github.com/lixenwraith/pillar-arena/vmath"
)

// Spawner decides when and where enemies appear
type Spawner struct {
	spawn      config.Spawn
	enemy      config.Enemy
	clearance  float64
	lastSecond int
}

func NewSpawner(spawn config.Spawn, enemy config.Enemy) *Spawner {
	return &Spawner{spawn: spawn, enemy: enemy, clearance: enemy.EnvironmentHalfExtent, lastSecond: 0}
}

// Due reports whether gameTime crossed a new spawn boundary and living is below the cap
// Each whole second triggers at most once
func (s *Spawner) Due(gameTime float64, living int) bool {
	sec := int(gameTime)
	if sec == s.lastSecond || sec%s.spawn.Interval != 0 {
		return false
	}
	s.lastSecond = sec
	return living < s.spawn.MaxEnemies
}

// Place picks a ground point inside the spawn rectangle, away from the player and
// clear of every obstacle. Returns false when no attempt succeeded.
func (s *Spawner) Place(rng *vmath.FastRand, player mgl64.Vec3, obstacles []collision.AABB) (mgl64.Vec3, bool) {
	minSq := s.spawn.MinPlayerDistance * s.spawn.MinPlayerDistance
	for i := 0; i < s.spawn.MaxAttempts; i++ {
		p := vmath.XZ(
			s.spawn.MinX+rng.Float64()*s.spawn.SpanX,
			s.spawn.MinZ+rng.Float64()*s.spawn.SpanZ,
		)
		if vmath.DistSqXZ(p, player) < minSq {
			continue
		}
		if s.blocked(p, obstacles) {
			continue
		}
		return p, true
	}
	return mgl64.Vec3{}, false
}

func (s *Spawner) blocked(p mgl64.Vec3, obstacles []collision.AABB) bool {
	// Test at enemy height so the floor-standing pillar boxes overlap on Y
	probe := mgl64.Vec3{p.X(), s.enemy.Height, p.Z()}
	for _, box := range obstacles {
		if collision.TestPointExpandedAABB(probe, s.clearance, box.Min, box.Max) {
			return true
		}
	}
	return false
}

// RollHealth draws a percentile and picks a health band, then a value within it
func (s *Spawner) RollHealth(rng *vmath.FastRand) int {
	roll := rng.Intn(100)
	base := s.enemy.HealthHard
	switch {
	case roll < s.enemy.RollEasy:
		base = s.enemy.HealthEasy
	case roll < s.enemy.RollMedium:
		base = s.enemy.HealthMedium
	}
	return base + rng.Intn(s.enemy.HealthBandWidth+1)
}
