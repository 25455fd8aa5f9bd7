// Package engine runs the arena simulation: a single-threaded fixed-order tick over
// the player, the enemy roster, the boss, projectiles and pickups.
package engine

import (
	"io"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/pillar-arena/actor"
	"github.com/lixenwraith/pillar-arena/collision"
	"github.com/lixenwraith/pillar-arena/config"
	"github.com/lixenwraith/pillar-arena/navigation"
	"github.com/lixenwraith/pillar-arena/physics"
	"github.com/lixenwraith/pillar-arena/vmath"
)

// Outcome is the match state
type Outcome uint8

const (
	OutcomeRunning Outcome = iota
	OutcomePlayerDead
	OutcomeBossDefeated
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlayerDead:
		return "player_dead"
	case OutcomeBossDefeated:
		return "boss_defeated"
	default:
		return "running"
	}
}

// World owns every body of one match. Not safe for concurrent use.
type World struct {
	cfg *config.Config
	log *logrus.Entry
	rng *vmath.FastRand

	frame   int64
	time    float64
	outcome Outcome

	player    *actor.Player
	boss      *actor.Boss
	pillars   []actor.Pillar
	obstacles []collision.AABB

	planner  navigation.Planner
	resolver *physics.Resolver
	report   physics.Report

	roster      Roster
	spawner     *Spawner
	projectiles *ProjectilePool
	pickups     pickupField
	events      EventLog

	enemyTuning actor.EnemyTuning
	shotProfile physics.KnockbackProfile
	speedScale  float64

	aim    mgl64.Vec3
	firing bool
}

// Option configures a World
type Option func(*World)

// WithLogger routes world logs to entry
func WithLogger(entry *logrus.Entry) Option {
	return func(w *World) {
		w.log = entry
	}
}

// WithRand replaces the world RNG; enemies fork theirs from it
func WithRand(rng *vmath.FastRand) Option {
	return func(w *World) {
		w.rng = rng
	}
}

// NewWorld builds a match from a validated configuration
func NewWorld(cfg *config.Config, opts ...Option) *World {
	w := &World{
		cfg:        cfg,
		rng:        vmath.NewFastRand(cfg.Seed),
		speedScale: 1,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		w.log = logrus.NewEntry(l)
	}

	w.pillars = cfg.Pillars()
	w.obstacles = actor.PillarBounds(w.pillars)
	w.planner = cfg.Planner(w.obstacles)
	w.resolver = physics.NewResolver(cfg.ResolverConfig(), w.obstacles)

	w.player = actor.NewPlayer(cfg.PlayerStart(), cfg.PlayerTuning())
	if cfg.Boss.Enabled {
		w.boss = actor.NewBoss(cfg.BossPosition(), cfg.BossTuning())
		zone := w.boss.ContactZone()
		w.resolver.Boss = &zone
	}

	w.spawner = NewSpawner(cfg.Spawn, cfg.Enemy)
	w.projectiles = NewProjectilePool(cfg.Projectile)
	w.pickups = newPickupField(cfg.Pickup, cfg.Player.HalfExtent)
	w.enemyTuning = cfg.EnemyTuning()
	w.shotProfile = cfg.ShotProfile()

	w.log.WithFields(logrus.Fields{
		"difficulty": cfg.Difficulty,
		"pillars":    len(w.pillars),
		"boss":       cfg.Boss.Enabled,
	}).Debug("world created")
	return w
}

// SpawnEnemy places an enemy at ground point (x, z) with the given health
// The enemy gets its own RNG forked from the world's
func (w *World) SpawnEnemy(x, z float64, health int) int {
	tuning := w.enemyTuning
	tuning.Speed = w.cfg.Enemy.Speed * w.speedScale
	e := actor.NewEnemy(x, z, health, tuning, &w.planner, w.rng.Fork())
	id := w.roster.Add(e)

	w.events.push(EventEnemySpawned, id, e.Position(), health)
	w.log.WithFields(logrus.Fields{"enemy": id, "hp": health, "x": x, "z": z}).Debug("enemy spawned")
	return id
}

// MovePlayer walks the player along ground direction (dx, dz) for dt
func (w *World) MovePlayer(dx, dz, dt float64) {
	if w.outcome != OutcomeRunning || w.player.IsDead() {
		return
	}
	w.player.Move(dx, dz, dt)
}

// Fire requests a player shot along ground direction dir; it launches during the next tick
func (w *World) Fire(dir mgl64.Vec3) {
	d := vmath.SafeNormalize(vmath.Flatten(dir), mgl64.Vec3{})
	if d == (mgl64.Vec3{}) {
		return
	}
	w.aim = d
	w.firing = true
}

// Tick advances the match by dt in fixed phase order
func (w *World) Tick(dt float64) {
	w.frame++
	w.events.reset(w.frame)
	if w.outcome != OutcomeRunning {
		return
	}
	w.time += dt

	w.spawnPhase()
	w.rampSpeed()

	w.player.Update(dt)
	playerPos := w.player.Position()
	enemies := w.roster.Enemies()
	for _, e := range enemies {
		e.Update(dt, playerPos)
	}

	w.report.Reset()
	physics.ResolveEnemies(w.resolver, enemies, &w.report)
	for _, hit := range w.report.ObstacleHits {
		enemies[hit.Enemy].OnObstacleCollision()
		w.events.push(EventEnemyObstacle, w.roster.ID(hit.Enemy), hit.Position, 0)
	}

	w.report.Reset()
	physics.ResolvePlayer(w.resolver, w.player, enemies, &w.report)
	w.applyContacts(enemies)

	w.shootPhase()

	w.roster.Sweep(w.onKilled, w.onRemoved)

	w.bossPhase(dt)
	w.projectiles.Update(dt)
	w.projectileHits()
	w.projectiles.Compact()

	w.pickups.update(dt, w.rng, w.player, &w.events)

	w.updateOutcome()
}

func (w *World) spawnPhase() {
	if !w.spawner.Due(w.time, w.roster.Living()) {
		return
	}
	pos, ok := w.spawner.Place(w.rng, w.player.Position(), w.obstacles)
	if !ok {
		w.log.WithField("t", w.time).Debug("spawn skipped, no clear point")
		return
	}
	w.SpawnEnemy(pos.X(), pos.Z(), w.spawner.RollHealth(w.rng))
}

// rampSpeed scales enemy speed with play time, capped
func (w *World) rampSpeed() {
	e := &w.cfg.Enemy
	w.speedScale = min(e.RampMax, 1+(w.time/e.RampInterval)*e.RampStep)
	speed := e.Speed * w.speedScale
	for _, en := range w.roster.Enemies() {
		en.SetSpeed(speed)
	}
}

func (w *World) applyContacts(enemies []*actor.Enemy) {
	for _, c := range w.report.Contacts {
		e := enemies[c.Enemy]
		e.ApplyProfile(c.Dir, c.Profile)
		w.events.push(EventEnemyContact, w.roster.ID(c.Enemy), e.Position(), 0)
		w.damagePlayer(w.cfg.Enemy.ContactDamage)
	}
	if w.report.BossContact {
		w.damagePlayer(w.cfg.Enemy.ContactDamage * w.cfg.Boss.ContactMultiplier)
	}
}

func (w *World) damagePlayer(amount int) {
	if w.player.TakeDamage(amount) {
		w.events.push(EventPlayerDamaged, NoEnemy, w.player.Position(), amount)
		w.log.WithFields(logrus.Fields{"damage": amount, "hp": w.player.Health()}).Debug("player damaged")
	}
}

func (w *World) shootPhase() {
	if !w.firing {
		return
	}
	w.firing = false
	if w.player.IsDead() {
		return
	}
	muzzle := w.player.Position().Add(w.aim.Mul(w.cfg.Projectile.MuzzleOffset))
	if w.projectiles.Spawn(ProjectileShot, muzzle, w.aim) {
		w.events.push(EventShotFired, NoEnemy, muzzle, 0)
	}
}

func (w *World) onKilled(id int, e *actor.Enemy) {
	w.events.push(EventEnemyKilled, id, e.Position(), 0)
	w.log.WithField("enemy", id).Debug("enemy killed")
}

func (w *World) onRemoved(id int, e *actor.Enemy) {
	w.events.push(EventEnemyRemoved, id, e.Position(), 0)
	w.log.WithField("enemy", id).Debug("enemy removed")
}

func (w *World) bossPhase(dt float64) {
	if w.boss == nil || !w.boss.Update(dt) {
		return
	}
	muzzle := w.boss.Muzzle()
	dir := w.boss.AimAt(w.player.Position())
	if w.projectiles.Spawn(ProjectileFireball, muzzle, dir) {
		w.events.push(EventFireballFired, NoEnemy, muzzle, 0)
		w.log.WithField("t", w.time).Debug("boss fired")
	}
}

func (w *World) projectileHits() {
	pc := &w.cfg.Projectile
	enemies := w.roster.Enemies()

	for _, p := range w.projectiles.Items() {
		if !p.Active {
			continue
		}
		shape := p.Sphere(pc.Radius)

		switch p.Kind {
		case ProjectileShot:
			for i, e := range enemies {
				if !e.Solid() || e.IsDead() {
					continue
				}
				target := collision.Sphere{Center: e.Position(), Radius: w.cfg.Enemy.HitRadius}
				if !collision.TestSphereSphere(shape, target) {
					continue
				}
				e.TakeDamage(pc.ShotDamage)
				e.ApplyProfile(p.Velocity, w.shotProfile)
				w.events.push(EventEnemyHit, w.roster.ID(i), e.Position(), pc.ShotDamage)
				p.Active = false
				break
			}
			if p.Active && w.boss != nil && !w.boss.IsDead() &&
				collision.TestSphereSphere(shape, w.boss.HitSphere()) {
				w.boss.TakeDamage(pc.ShotDamage)
				w.events.push(EventBossHit, NoEnemy, p.Position, pc.ShotDamage)
				p.Active = false
			}

		case ProjectileFireball:
			if w.player.IsDead() || !collision.TestSphereSphere(shape, w.player.HitSphere()) {
				continue
			}
			w.damagePlayer(pc.FireballDamage)
			p.Active = false
		}
	}
}

func (w *World) updateOutcome() {
	switch {
	case w.player.IsDead():
		w.outcome = OutcomePlayerDead
	case w.boss != nil && w.boss.IsDead():
		w.outcome = OutcomeBossDefeated
	default:
		return
	}
	w.events.push(EventOutcome, NoEnemy, w.player.Position(), int(w.outcome))
	w.log.WithFields(logrus.Fields{"outcome": w.outcome, "t": w.time}).Info("match over")
}

// --- Accessors ---

func (w *World) Config() *config.Config     { return w.cfg }
func (w *World) Player() *actor.Player      { return w.player }
func (w *World) Pillars() []actor.Pillar    { return w.pillars }
func (w *World) Roster() *Roster            { return &w.roster }
func (w *World) Projectiles() []*Projectile { return w.projectiles.Items() }
func (w *World) Pickups() []Pickup          { return w.pickups.items }
func (w *World) Events() []Event            { return w.events.Events() }
func (w *World) EventCount(t EventType) int { return w.events.Count(t) }
func (w *World) Outcome() Outcome           { return w.outcome }
func (w *World) Time() float64              { return w.time }
func (w *World) Frame() int64               { return w.frame }
func (w *World) SpeedScale() float64        { return w.speedScale }

// Boss returns nil when the boss is disabled
func (w *World) Boss() *actor.Boss { return w.boss }
