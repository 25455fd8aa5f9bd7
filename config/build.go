package config

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/pillar-arena/actor"
	"github.com/lixenwraith/pillar-arena/collision"
	"github.com/lixenwraith/pillar-arena/navigation"
	"github.com/lixenwraith/pillar-arena/physics"
)

func groundBox(lo, hi [2]float64) collision.AABB {
	return collision.AABB{
		Min: mgl64.Vec3{lo[0], 0, lo[1]},
		Max: mgl64.Vec3{hi[0], 0, hi[1]},
	}
}

func cube(h float64) mgl64.Vec3 {
	return mgl64.Vec3{h, h, h}
}

// Pillars lays out both pillar rows
func (c *Config) Pillars() []actor.Pillar {
	a := &c.Arena
	return actor.PillarRows(a.PillarColumns, a.PillarRowZ, a.PillarSize, a.PillarHeight)
}

// PlayerStart is the spawn position of the player
func (c *Config) PlayerStart() mgl64.Vec3 {
	return mgl64.Vec3(c.Player.Start)
}

// PlayerTuning builds the player body settings
func (c *Config) PlayerTuning() actor.PlayerTuning {
	return actor.PlayerTuning{
		Health:         c.Player.Health,
		Speed:          c.Player.Speed,
		DamageCooldown: c.Player.DamageCooldown,
		HitRadius:      c.Player.HitRadius,
		HitHeight:      c.Player.HitHeight,
	}
}

// EnemyTuning builds the enemy movement and lifecycle settings
func (c *Config) EnemyTuning() actor.EnemyTuning {
	return actor.EnemyTuning{
		Height:             c.Enemy.Height,
		Speed:              c.Enemy.Speed,
		MinAdvanceDistance: c.Locomotion.MinAdvanceDistance,
		DecayRate:          c.Knockback.DecayRate,
		SettleThreshold:    c.Knockback.SettleThreshold,
		DeathDuration:      c.Enemy.DeathDuration,
		Bounds:             groundBox(c.Arena.EnemyMin, c.Arena.EnemyMax),
	}
}

// BossPosition is the boss center on the floor
func (c *Config) BossPosition() mgl64.Vec3 {
	return mgl64.Vec3{c.Boss.Position[0], 0, c.Boss.Position[1]}
}

// BossTuning builds the boss settings
func (c *Config) BossTuning() actor.BossTuning {
	return actor.BossTuning{
		Health:         c.Boss.Health,
		ContactRadius:  c.Boss.ContactRadius,
		HitRadius:      c.Boss.HitRadius,
		HitHeight:      c.Boss.HitHeight,
		AttackInterval: c.Boss.AttackInterval,
		MuzzleHeight:   c.Boss.MuzzleHeight,
		AimHeight:      c.Boss.AimHeight,
	}
}

// Planner builds the curve planner; obstacles are attached when pillar avoidance is on
func (c *Config) Planner(obstacles []collision.AABB) navigation.Planner {
	l := &c.Locomotion
	p := navigation.Planner{
		Bounds:              groundBox(c.Arena.CurveMin, c.Arena.CurveMax),
		DegenerateDistance:  l.DegenerateDistance,
		ContinuityMinT:      l.ContinuityMinT,
		InitialTangentScale: l.InitialTangentScale,
		FinalTangentScale:   l.FinalTangentScale,
		PerpOffsetMin:       l.PerpOffsetMin,
		PerpOffsetMax:       l.PerpOffsetMax,
		ReplanMin:           l.ReplanMin,
		ReplanSpan:          l.ReplanSpan,
		ProbeRadius:         c.Enemy.EnvironmentHalfExtent,
		ProbeSamples:        l.ProbeSamples,
	}
	if l.AvoidPillars {
		p.Obstacles = obstacles
	}
	return p
}

// ResolverConfig builds the collision pass settings
func (c *Config) ResolverConfig() physics.ResolverConfig {
	a := &c.Arena
	return physics.ResolverConfig{
		Ground: collision.Ground,
		PlayerBounds: collision.AABB{
			Min: mgl64.Vec3(a.PlayerMin),
			Max: mgl64.Vec3(a.PlayerMax),
		},
		PlayerExtents:           cube(c.Player.HalfExtent),
		EnemyContactExtents:     cube(c.Enemy.ContactHalfExtent),
		EnemyEnvironmentExtents: cube(c.Enemy.EnvironmentHalfExtent),
		Contact:                 c.ContactProfile(),
		SphereEpsilon:           c.Collision.SpherePushEpsilon,
	}
}

// ContactProfile is the shove an enemy takes from player contact
func (c *Config) ContactProfile() physics.KnockbackProfile {
	p := physics.PlayerToEnemy
	p.Force = c.Knockback.Force
	return p
}

// ShotProfile is the shove an enemy takes from a player shot
func (c *Config) ShotProfile() physics.KnockbackProfile {
	p := physics.ShotToEnemy
	p.Force = c.Knockback.ShotForce
	return p
}
