// Package config holds the tunable simulation settings, their TOML form, and
// the builders that turn them into the per-package tuning structs.
package config

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/pillar-arena/parameter"
)

// Config is the full tuning tree; zero values are never meaningful, start from Default
type Config struct {
	Difficulty Difficulty `toml:"difficulty"`
	// Seed for the world RNG; 0 picks a time-based seed in the sandbox
	Seed uint64 `toml:"seed"`

	Arena      Arena      `toml:"arena"`
	Player     Player     `toml:"player"`
	Enemy      Enemy      `toml:"enemy"`
	Locomotion Locomotion `toml:"locomotion"`
	Knockback  Knockback  `toml:"knockback"`
	Collision  Collision  `toml:"collision"`
	Boss       Boss       `toml:"boss"`
	Projectile Projectile `toml:"projectile"`
	Spawn      Spawn      `toml:"spawn"`
	Pickup     Pickup     `toml:"pickup"`
	Audio      Audio      `toml:"audio"`
}

// Arena bounds and pillar layout
type Arena struct {
	PlayerMin [3]float64 `toml:"player_min"`
	PlayerMax [3]float64 `toml:"player_max"`
	// Ground boxes as [x, z]
	EnemyMin [2]float64 `toml:"enemy_min"`
	EnemyMax [2]float64 `toml:"enemy_max"`
	CurveMin [2]float64 `toml:"curve_min"`
	CurveMax [2]float64 `toml:"curve_max"`

	PillarColumns []float64 `toml:"pillar_columns"`
	PillarRowZ    float64   `toml:"pillar_row_z"`
	PillarSize    float64   `toml:"pillar_size"`
	PillarHeight  float64   `toml:"pillar_height"`
}

type Player struct {
	Start          [3]float64 `toml:"start"`
	HalfExtent     float64    `toml:"half_extent"`
	Speed          float64    `toml:"speed"`
	Health         int        `toml:"health"`
	HitRadius      float64    `toml:"hit_radius"`
	HitHeight      float64    `toml:"hit_height"`
	DamageCooldown float64    `toml:"damage_cooldown"`
}

type Enemy struct {
	Height                float64 `toml:"height"`
	ContactHalfExtent     float64 `toml:"contact_half_extent"`
	EnvironmentHalfExtent float64 `toml:"environment_half_extent"`
	HitRadius             float64 `toml:"hit_radius"`
	Speed                 float64 `toml:"speed"`
	DeathDuration         float64 `toml:"death_duration"`
	ContactDamage         int     `toml:"contact_damage"`

	// Health roll on spawn: percent below RollEasy -> easy band, below RollMedium -> medium, else hard
	RollEasy        int `toml:"roll_easy"`
	RollMedium      int `toml:"roll_medium"`
	HealthEasy      int `toml:"health_easy"`
	HealthMedium    int `toml:"health_medium"`
	HealthHard      int `toml:"health_hard"`
	HealthBandWidth int `toml:"health_band_width"`

	RampInterval float64 `toml:"ramp_interval"`
	RampStep     float64 `toml:"ramp_step"`
	RampMax      float64 `toml:"ramp_max"`
}

type Locomotion struct {
	DegenerateDistance  float64 `toml:"degenerate_distance"`
	MinAdvanceDistance  float64 `toml:"min_advance_distance"`
	ContinuityMinT      float64 `toml:"continuity_min_t"`
	InitialTangentScale float64 `toml:"initial_tangent_scale"`
	FinalTangentScale   float64 `toml:"final_tangent_scale"`
	PerpOffsetMin       float64 `toml:"perp_offset_min"`
	PerpOffsetMax       float64 `toml:"perp_offset_max"`
	ReplanMin           float64 `toml:"replan_min"`
	ReplanSpan          float64 `toml:"replan_span"`
	AvoidPillars        bool    `toml:"avoid_pillars"`
	ProbeSamples        int     `toml:"probe_samples"`
}

type Knockback struct {
	Force           float64 `toml:"force"`
	DecayRate       float64 `toml:"decay_rate"`
	SettleThreshold float64 `toml:"settle_threshold"`
	ShotForce       float64 `toml:"shot_force"`
}

type Collision struct {
	SpherePushEpsilon float64 `toml:"sphere_push_epsilon"`
}

type Boss struct {
	Enabled           bool       `toml:"enabled"`
	Position          [2]float64 `toml:"position"`
	Health            int        `toml:"health"`
	ContactRadius     float64    `toml:"contact_radius"`
	ContactMultiplier int        `toml:"contact_multiplier"`
	HitRadius         float64    `toml:"hit_radius"`
	HitHeight         float64    `toml:"hit_height"`
	AttackInterval    float64    `toml:"attack_interval"`
	MuzzleHeight      float64    `toml:"muzzle_height"`
	AimHeight         float64    `toml:"aim_height"`
}

type Projectile struct {
	ShotSpeed      float64 `toml:"shot_speed"`
	FireballSpeed  float64 `toml:"fireball_speed"`
	Lifetime       float64 `toml:"lifetime"`
	MaxCount       int     `toml:"max_count"`
	MaxDistance    float64 `toml:"max_distance"`
	Radius         float64 `toml:"radius"`
	TrailLength    int     `toml:"trail_length"`
	TrailInterval  float64 `toml:"trail_interval"`
	MuzzleOffset   float64 `toml:"muzzle_offset"`
	ShotDamage     int     `toml:"shot_damage"`
	FireballDamage int     `toml:"fireball_damage"`
}

type Spawn struct {
	Interval          int     `toml:"interval"`
	MaxEnemies        int     `toml:"max_enemies"`
	MinX              float64 `toml:"min_x"`
	SpanX             float64 `toml:"span_x"`
	MinZ              float64 `toml:"min_z"`
	SpanZ             float64 `toml:"span_z"`
	MinPlayerDistance float64 `toml:"min_player_distance"`
	MaxAttempts       int     `toml:"max_attempts"`
}

type Pickup struct {
	Interval  float64 `toml:"interval"`
	MaxActive int     `toml:"max_active"`
	Heal      int     `toml:"heal"`
	Radius    float64 `toml:"radius"`
	Height    float64 `toml:"height"`
	MinX      float64 `toml:"min_x"`
	SpanX     float64 `toml:"span_x"`
	MinZ      float64 `toml:"min_z"`
	SpanZ     float64 `toml:"span_z"`
}

// Audio drives the sandbox cue player; the simulation never reads it
type Audio struct {
	Enabled bool `toml:"enabled"`
	// Linear gain in [0, 1]
	Volume float64 `toml:"volume"`
}

// Default returns the stock configuration at normal difficulty
func Default() *Config {
	c := &Config{
		Difficulty: Normal,
		Arena: Arena{
			PlayerMin:     [3]float64{parameter.ArenaPlayerMinX, parameter.ArenaPlayerMinY, parameter.ArenaPlayerMinZ},
			PlayerMax:     [3]float64{parameter.ArenaPlayerMaxX, parameter.ArenaPlayerMaxY, parameter.ArenaPlayerMaxZ},
			EnemyMin:      [2]float64{parameter.ArenaEnemyMinX, parameter.ArenaEnemyMinZ},
			EnemyMax:      [2]float64{parameter.ArenaEnemyMaxX, parameter.ArenaEnemyMaxZ},
			CurveMin:      [2]float64{parameter.ArenaCurveMinX, parameter.ArenaCurveMinZ},
			CurveMax:      [2]float64{parameter.ArenaCurveMaxX, parameter.ArenaCurveMaxZ},
			PillarColumns: append([]float64(nil), parameter.PillarColumnsX[:]...),
			PillarRowZ:    parameter.PillarRowZ,
			PillarSize:    parameter.PillarSize,
			PillarHeight:  parameter.PillarHeight,
		},
		Player: Player{
			Start:          [3]float64{parameter.PlayerStartX, parameter.PlayerStartY, parameter.PlayerStartZ},
			HalfExtent:     parameter.PlayerHalfExtent,
			Speed:          parameter.PlayerSpeed,
			Health:         parameter.PlayerHealth,
			HitRadius:      parameter.PlayerHitRadius,
			HitHeight:      parameter.PlayerHitHeight,
			DamageCooldown: parameter.PlayerDamageCooldown,
		},
		Enemy: Enemy{
			Height:                parameter.EnemyHeight,
			ContactHalfExtent:     parameter.EnemyContactHalfExtent,
			EnvironmentHalfExtent: parameter.EnemyEnvironmentHalfExtent,
			HitRadius:             parameter.EnemyHitRadius,
			Speed:                 parameter.EnemyBaseSpeed,
			DeathDuration:         parameter.EnemyDeathDuration,
			ContactDamage:         parameter.ContactDamage,
			HealthEasy:            parameter.EnemyHealthEasyMin,
			HealthMedium:          parameter.EnemyHealthMediumMin,
			HealthHard:            parameter.EnemyHealthHardMin,
			HealthBandWidth:       parameter.EnemyHealthBandWidth,
			RampInterval:          parameter.EnemySpeedRampInterval,
			RampStep:              parameter.EnemySpeedRampStep,
			RampMax:               parameter.EnemySpeedRampMax,
		},
		Locomotion: Locomotion{
			DegenerateDistance:  parameter.CurveDegenerateDistance,
			MinAdvanceDistance:  parameter.CurveMinAdvanceDistance,
			ContinuityMinT:      parameter.CurveContinuityMinT,
			InitialTangentScale: parameter.CurveInitialTangentScale,
			FinalTangentScale:   parameter.CurveFinalTangentScale,
			PerpOffsetMin:       parameter.CurvePerpOffsetMin,
			PerpOffsetMax:       parameter.CurvePerpOffsetMax,
			ReplanMin:           parameter.CurveReplanMin,
			ReplanSpan:          parameter.CurveReplanSpan,
			AvoidPillars:        true,
			ProbeSamples:        parameter.CurveProbeSamples,
		},
		Knockback: Knockback{
			Force:           parameter.KnockbackForce,
			DecayRate:       parameter.KnockbackDecayRate,
			SettleThreshold: parameter.KnockbackSettleThreshold,
			ShotForce:       parameter.ShotKnockbackForce,
		},
		Collision: Collision{
			SpherePushEpsilon: parameter.SpherePushEpsilon,
		},
		Boss: Boss{
			Enabled:           true,
			Position:          [2]float64{parameter.BossX, parameter.BossZ},
			Health:            parameter.BossHealth,
			ContactRadius:     parameter.BossContactRadius,
			ContactMultiplier: parameter.BossContactMultiplier,
			HitRadius:         parameter.BossHitRadius,
			HitHeight:         parameter.BossHitHeight,
			AttackInterval:    parameter.BossAttackInterval,
			MuzzleHeight:      parameter.BossMuzzleHeight,
			AimHeight:         parameter.BossAimHeight,
		},
		Projectile: Projectile{
			ShotSpeed:      parameter.ProjectileShotSpeed,
			FireballSpeed:  parameter.ProjectileFireballSpeed,
			Lifetime:       parameter.ProjectileLifetime,
			MaxCount:       parameter.ProjectileMaxCount,
			MaxDistance:    parameter.ProjectileMaxDistance,
			Radius:         parameter.ProjectileRadius,
			TrailLength:    parameter.ProjectileTrailLength,
			TrailInterval:  parameter.ProjectileTrailInterval,
			MuzzleOffset:   parameter.ProjectileMuzzleOffset,
			ShotDamage:     parameter.ShotDamage,
			FireballDamage: parameter.FireballDamage,
		},
		Spawn: Spawn{
			Interval:          parameter.SpawnIntervalSeconds,
			MaxEnemies:        parameter.SpawnMaxEnemies,
			MinX:              parameter.SpawnMinX,
			SpanX:             parameter.SpawnSpanX,
			MinZ:              parameter.SpawnMinZ,
			SpanZ:             parameter.SpawnSpanZ,
			MinPlayerDistance: parameter.SpawnMinPlayerDist,
			MaxAttempts:       parameter.SpawnMaxAttempts,
		},
		Pickup: Pickup{
			Interval:  parameter.PickupSpawnInterval,
			MaxActive: parameter.PickupMaxActive,
			Heal:      parameter.PickupHeal,
			Radius:    parameter.PickupRadius,
			Height:    parameter.PickupHeight,
			MinX:      parameter.PickupMinX,
			SpanX:     parameter.PickupSpanX,
			MinZ:      parameter.PickupMinZ,
			SpanZ:     parameter.PickupSpanZ,
		},
		Audio: Audio{
			Enabled: true,
			Volume:  parameter.AudioVolume,
		},
	}
	c.Difficulty.apply(c)
	return c
}

// Load reads a TOML file over the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	c, err := Decode(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return c, nil
}

// Decode parses TOML over the defaults.
// A difficulty key applies its preset first, so explicit keys in the same document win.
// Unknown keys are rejected; the result is validated.
func Decode(data string) (*Config, error) {
	var head struct {
		Difficulty Difficulty `toml:"difficulty"`
	}
	if _, err := toml.Decode(data, &head); err != nil {
		return nil, errors.Wrap(err, "parse")
	}

	c := Default()
	if head.Difficulty != "" {
		if _, ok := presets[head.Difficulty]; !ok {
			return nil, errors.Wrapf(ErrInvalid, "difficulty: unknown preset %q", head.Difficulty)
		}
		c.Difficulty = head.Difficulty
		c.Difficulty.apply(c)
	}

	md, err := toml.Decode(data, c)
	if err != nil {
		return nil, errors.Wrap(err, "parse")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("unknown keys: %v", undecoded)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Encode writes the configuration as TOML
func (c *Config) Encode(w io.Writer) error {
	return errors.Wrap(toml.NewEncoder(w).Encode(c), "encode config")
}
