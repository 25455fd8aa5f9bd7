package config

import (
	"github.com/pkg/errors"
)

// ErrInvalid is the cause of every validation failure
var ErrInvalid = errors.New("invalid config")

func invalid(key, format string, args ...any) error {
	return errors.Wrapf(ErrInvalid, key+": "+format, args...)
}

// Validate returns the first violated constraint, naming its key
func (c *Config) Validate() error {
	if c.Difficulty != "" && !c.Difficulty.Valid() {
		return invalid("difficulty", "unknown preset %q", c.Difficulty)
	}

	a := &c.Arena
	for i := 0; i < 3; i++ {
		if a.PlayerMin[i] >= a.PlayerMax[i] {
			return invalid("arena.player_min", "must be below player_max on every axis")
		}
	}
	for i := 0; i < 2; i++ {
		if a.EnemyMin[i] >= a.EnemyMax[i] {
			return invalid("arena.enemy_min", "must be below enemy_max")
		}
		if a.CurveMin[i] >= a.CurveMax[i] {
			return invalid("arena.curve_min", "must be below curve_max")
		}
	}
	if a.PillarSize <= 0 || a.PillarHeight <= 0 {
		return invalid("arena.pillar_size", "pillar size and height must be positive")
	}

	if c.Player.HalfExtent <= 0 {
		return invalid("player.half_extent", "must be positive")
	}
	if c.Player.Health <= 0 {
		return invalid("player.health", "must be positive")
	}
	if c.Player.Speed < 0 || c.Player.DamageCooldown < 0 {
		return invalid("player.speed", "speed and damage_cooldown must not be negative")
	}

	e := &c.Enemy
	if e.ContactHalfExtent <= 0 || e.EnvironmentHalfExtent <= 0 {
		return invalid("enemy.contact_half_extent", "enemy extents must be positive")
	}
	if e.Speed < 0 {
		return invalid("enemy.speed", "must not be negative")
	}
	if e.DeathDuration <= 0 {
		return invalid("enemy.death_duration", "must be positive")
	}
	if e.RollEasy < 0 || e.RollEasy > e.RollMedium || e.RollMedium > 100 {
		return invalid("enemy.roll_easy", "need 0 <= roll_easy <= roll_medium <= 100")
	}
	if e.HealthEasy <= 0 || e.HealthBandWidth < 0 {
		return invalid("enemy.health_easy", "health bands must be positive")
	}
	if e.RampInterval <= 0 || e.RampMax < 1 {
		return invalid("enemy.ramp_interval", "ramp interval must be positive and ramp_max at least 1")
	}

	l := &c.Locomotion
	if l.DegenerateDistance <= 0 {
		return invalid("locomotion.degenerate_distance", "must be positive")
	}
	if l.MinAdvanceDistance <= 0 {
		return invalid("locomotion.min_advance_distance", "must be positive")
	}
	if l.ContinuityMinT <= 0 || l.ContinuityMinT >= 1 {
		return invalid("locomotion.continuity_min_t", "must be in (0, 1)")
	}
	if l.InitialTangentScale <= 0 || l.FinalTangentScale <= 0 {
		return invalid("locomotion.final_tangent_scale", "tangent scales must be positive")
	}
	if l.PerpOffsetMin < 0 || l.PerpOffsetMin > l.PerpOffsetMax {
		return invalid("locomotion.perp_offset_min", "need 0 <= perp_offset_min <= perp_offset_max")
	}
	if l.ReplanMin <= 0 || l.ReplanSpan < 0 {
		return invalid("locomotion.replan_min", "replan_min must be positive, replan_span not negative")
	}
	if l.ProbeSamples < 1 {
		return invalid("locomotion.probe_samples", "must be at least 1")
	}

	k := &c.Knockback
	if k.Force <= 0 {
		return invalid("knockback.force", "must be positive")
	}
	if k.ShotForce < 0 {
		return invalid("knockback.shot_force", "must not be negative")
	}
	if k.DecayRate < 0 {
		return invalid("knockback.decay_rate", "must not be negative")
	}
	if k.SettleThreshold <= 0 {
		return invalid("knockback.settle_threshold", "must be positive")
	}

	if c.Collision.SpherePushEpsilon < 0 {
		return invalid("collision.sphere_push_epsilon", "must not be negative")
	}

	if c.Boss.Enabled {
		if c.Boss.Health <= 0 {
			return invalid("boss.health", "must be positive")
		}
		if c.Boss.ContactRadius < 0 || c.Boss.HitRadius < 0 {
			return invalid("boss.contact_radius", "radii must not be negative")
		}
		if c.Boss.AttackInterval <= 0 {
			return invalid("boss.attack_interval", "must be positive")
		}
	}

	p := &c.Projectile
	if p.MaxCount < 1 {
		return invalid("projectile.max_count", "must be at least 1")
	}
	if p.TrailLength < 1 || p.TrailInterval <= 0 {
		return invalid("projectile.trail_length", "trail needs at least one entry and a positive interval")
	}
	if p.Lifetime <= 0 || p.MaxDistance <= 0 {
		return invalid("projectile.lifetime", "lifetime and max_distance must be positive")
	}

	if c.Spawn.Interval < 1 {
		return invalid("spawn.interval", "must be at least 1 second")
	}
	if c.Spawn.MaxEnemies < 0 {
		return invalid("spawn.max_enemies", "must not be negative")
	}
	if c.Spawn.MaxAttempts < 1 {
		return invalid("spawn.max_attempts", "must be at least 1")
	}

	if c.Pickup.Interval <= 0 {
		return invalid("pickup.interval", "must be positive")
	}
	if c.Pickup.MaxActive < 0 || c.Pickup.Heal < 0 {
		return invalid("pickup.max_active", "max_active and heal must not be negative")
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return invalid("audio.volume", "must be in [0, 1], got %v", c.Audio.Volume)
	}

	return nil
}
