// Package render draws a top-down view of an arena world onto a tcell screen.
// It reads the world and never mutates it.
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/pillar-arena/actor"
	"github.com/lixenwraith/pillar-arena/engine"
)

const (
	glyphPlayer   = '@'
	glyphEnemy    = 'E'
	glyphDying    = 'x'
	glyphFading   = '.'
	glyphBoss     = 'B'
	glyphBossRing = 'o'
	glyphPillar   = '█'
	glyphShot     = '*'
	glyphFireball = 'O'
	glyphTrail    = '.'
	glyphPickup   = '+'
	glyphPath     = '∙'
	glyphFloor    = '·'

	// bossRingSegments samples the contact circle
	bossRingSegments = 48
	// pathSamples per curve preview
	pathSamples = 24
	// floorStep draws every n-th floor cell
	floorStep = 4
	// fadeProgress of the death animation after which a dying enemy is drawn faded
	fadeProgress = 0.5
)

// Renderer owns the screen layout: HUD row on top, arena in the middle, status row at the bottom
type Renderer struct {
	screen tcell.Screen
	width  int
	height int
	view   Viewport

	// ShowPaths overlays each enemy's current segment
	ShowPaths bool

	trail []mgl64.Vec3
	path  []mgl64.Vec3
}

// NewRenderer creates a renderer; layout is computed on each frame from the screen size
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Viewport returns the arena mapping used by the last frame
func (r *Renderer) Viewport() Viewport {
	return r.view
}

// RenderFrame draws the whole world and shows it
func (r *Renderer) RenderFrame(w *engine.World, status string) {
	r.layout(w)
	r.screen.Clear()
	base := tcell.StyleDefault.Background(RgbBackground)

	if !r.view.Empty() {
		r.drawFloor(base)
		r.drawPillars(w.Pillars(), base)
		if r.ShowPaths {
			r.drawPaths(w.Roster().Enemies(), w.Player().Position(), base)
		}
		r.drawPickups(w.Pickups(), base)
		if boss := w.Boss(); boss != nil && !boss.IsDead() {
			r.drawBoss(boss, base)
		}
		r.drawEnemies(w.Roster().Enemies(), base)
		r.drawProjectiles(w.Projectiles(), base)
		r.drawPlayer(w.Player(), base)
	}

	r.drawHUD(w, base)
	r.drawStatus(status, base)
	if w.Outcome() != engine.OutcomeRunning {
		r.drawBanner(w.Outcome(), base)
	}

	r.screen.Show()
}

func (r *Renderer) layout(w *engine.World) {
	r.width, r.height = r.screen.Size()
	arena := w.Config().Arena
	r.view = Fit(0, 1, r.width, r.height-2,
		arena.PlayerMin[0], arena.PlayerMax[0], arena.PlayerMin[2], arena.PlayerMax[2])
}

func (r *Renderer) set(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.set(x+i, y, ch, style)
	}
}

func (r *Renderer) plot(p mgl64.Vec3, ch rune, style tcell.Style) {
	if col, row, ok := r.view.Project(p); ok {
		r.set(col, row, ch, style)
	}
}

func (r *Renderer) drawFloor(base tcell.Style) {
	v := r.view
	edge := base.Foreground(RgbArenaEdge)
	dot := base.Foreground(RgbFloorDot)

	for x := v.Left - 1; x <= v.Left+v.Width; x++ {
		r.set(x, v.Top-1, '─', edge)
		r.set(x, v.Top+v.Height, '─', edge)
	}
	for y := v.Top; y < v.Top+v.Height; y++ {
		r.set(v.Left-1, y, '│', edge)
		r.set(v.Left+v.Width, y, '│', edge)
	}
	r.set(v.Left-1, v.Top-1, '┌', edge)
	r.set(v.Left+v.Width, v.Top-1, '┐', edge)
	r.set(v.Left-1, v.Top+v.Height, '└', edge)
	r.set(v.Left+v.Width, v.Top+v.Height, '┘', edge)

	for y := v.Top; y < v.Top+v.Height; y += floorStep / 2 {
		for x := v.Left; x < v.Left+v.Width; x += floorStep {
			r.set(x, y, glyphFloor, dot)
		}
	}
}

func (r *Renderer) drawPillars(pillars []actor.Pillar, base tcell.Style) {
	style := base.Foreground(RgbPillar)
	for _, p := range pillars {
		b := p.Bounds()
		c0, r0 := r.view.ProjectClamped(b.Min)
		c1, r1 := r.view.ProjectClamped(b.Max)
		for y := r0; y <= r1; y++ {
			for x := c0; x <= c1; x++ {
				r.set(x, y, glyphPillar, style)
			}
		}
	}
}

// drawPaths samples each traveling enemy's segment and marks the cell next to it
// in the direction the enemy faces the player
func (r *Renderer) drawPaths(enemies []*actor.Enemy, player mgl64.Vec3, base tcell.Style) {
	style := base.Foreground(RgbPath)
	for _, e := range enemies {
		if e.Lifecycle() != actor.LifecycleAlive || e.Locomotion() != actor.LocomotionTraveling {
			continue
		}
		r.path = e.Curve().Sample(r.path[:0], pathSamples)
		for _, p := range r.path {
			r.plot(p, glyphPath, style)
		}
		if col, row, ok := r.view.Project(e.Position()); ok {
			ch, dx, dy := headingGlyph(e.Facing(player))
			r.set(col+dx, row+dy, ch, style.Bold(true))
		}
	}
}

// headingGlyph snaps a yaw measured from +Z to one of four arrows and the cell offset it points to.
// Z grows downward on screen.
func headingGlyph(yaw float64) (ch rune, dx, dy int) {
	switch a := math.Abs(yaw); {
	case a <= math.Pi/4:
		return 'v', 0, 1
	case a >= 3*math.Pi/4:
		return '^', 0, -1
	case yaw > 0:
		return '>', 1, 0
	default:
		return '<', -1, 0
	}
}

func (r *Renderer) drawPickups(pickups []engine.Pickup, base tcell.Style) {
	style := base.Foreground(RgbPickup).Bold(true)
	for _, p := range pickups {
		r.plot(p.Position, glyphPickup, style)
	}
}

func (r *Renderer) drawBoss(boss *actor.Boss, base tcell.Style) {
	zone := boss.ContactZone()
	ring := base.Foreground(RgbBossZone)
	for i := 0; i < bossRingSegments; i++ {
		a := 2 * math.Pi * float64(i) / bossRingSegments
		p := zone.Center.Add(mgl64.Vec3{math.Cos(a) * zone.Radius, 0, math.Sin(a) * zone.Radius})
		r.plot(p, glyphBossRing, ring)
	}
	r.plot(boss.Position(), glyphBoss, base.Foreground(RgbBoss).Bold(true))
}

func (r *Renderer) drawEnemies(enemies []*actor.Enemy, base tcell.Style) {
	for _, e := range enemies {
		var ch rune
		var fg tcell.Color
		switch {
		case e.IsDying():
			ch, fg = glyphDying, RgbEnemyDying
			if e.DeathProgress() >= fadeProgress {
				ch = glyphFading
			}
		case e.Locomotion() == actor.LocomotionKnockback:
			ch, fg = glyphEnemy, RgbEnemyKnockback
		default:
			ch, fg = glyphEnemy, enemyColor(e.Health(), e.MaxHealth())
		}
		r.plot(e.Position(), ch, base.Foreground(fg))
	}
}

func (r *Renderer) drawProjectiles(items []*engine.Projectile, base tcell.Style) {
	trail := base.Foreground(RgbTrail)
	for _, p := range items {
		if !p.Active {
			continue
		}
		r.trail = p.Trail(r.trail[:0])
		for _, t := range r.trail {
			r.plot(t, glyphTrail, trail)
		}

		ch, fg := glyphShot, RgbShot
		if p.Kind == engine.ProjectileFireball {
			ch, fg = glyphFireball, RgbFireball
		}
		r.plot(p.Position, ch, base.Foreground(fg).Bold(true))
	}
}

func (r *Renderer) drawPlayer(p *actor.Player, base tcell.Style) {
	fg := RgbPlayer
	if p.Cooldown() > 0 {
		fg = RgbPlayerHurt
	}
	r.plot(p.Position(), glyphPlayer, base.Foreground(fg).Bold(true))
}

func (r *Renderer) drawHUD(w *engine.World, base tcell.Style) {
	for x := 0; x < r.width; x++ {
		r.set(x, 0, ' ', base)
	}

	player := w.Player()
	hud := fmt.Sprintf(" HP %d/%d  Enemies %d  Time %.1fs  Speed x%.2f  [%s]",
		max(player.Health(), 0), player.MaxHealth(),
		w.Roster().Living(), w.Time(), w.SpeedScale(), w.Config().Difficulty)
	if boss := w.Boss(); boss != nil {
		hud += fmt.Sprintf("  Boss %d/%d", max(boss.Health(), 0), boss.MaxHealth())
	}
	r.text(0, 0, hud, base.Foreground(RgbStatusBar))
}

func (r *Renderer) drawStatus(status string, base tcell.Style) {
	y := r.height - 1
	for x := 0; x < r.width; x++ {
		r.set(x, y, ' ', base)
	}
	r.text(1, y, status, base.Foreground(RgbStatusBar))
}

func (r *Renderer) drawBanner(outcome engine.Outcome, base tcell.Style) {
	msg := " DEFEATED "
	if outcome == engine.OutcomeBossDefeated {
		msg = " VICTORY "
	}
	y := r.height / 2
	x := (r.width - len(msg)) / 2
	r.text(x, y, msg, base.Foreground(tcell.ColorBlack).Background(RgbBanner).Bold(true))
}
