package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/pillar-arena/parameter"
	"github.com/lixenwraith/pillar-arena/vmath"
)

// action is what a key press asks the loop to do beyond movement
type action uint8

const (
	actionNone action = iota
	actionQuit
	actionPause
	actionMute
	actionPaths
	actionRestart
)

// controls turns key presses into a held movement direction and fire requests.
// Terminals report presses only, so a direction stays held for a few frames after its last repeat.
type controls struct {
	moveX, moveZ float64
	hold         int

	// facing is the last non-zero movement direction, used by the fire key
	facing mgl64.Vec3
	fire   mgl64.Vec3
	firing bool
}

func newControls() *controls {
	return &controls{facing: mgl64.Vec3{-1, 0, 0}}
}

// handleKey consumes a key event
func (c *controls) handleKey(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyUp:
		c.move(0, -1)
	case tcell.KeyDown:
		c.move(0, 1)
	case tcell.KeyLeft:
		c.move(-1, 0)
	case tcell.KeyRight:
		c.move(1, 0)
	case tcell.KeyRune:
		return c.handleRune(ev.Rune())
	}
	return actionNone
}

func (c *controls) handleRune(r rune) action {
	switch r {
	case 'w', 'W':
		c.move(0, -1)
	case 's', 'S':
		c.move(0, 1)
	case 'a', 'A':
		c.move(-1, 0)
	case 'd', 'D':
		c.move(1, 0)
	case ' ':
		c.shoot(c.facing)
	case 'i':
		c.shoot(mgl64.Vec3{0, 0, -1})
	case 'k':
		c.shoot(mgl64.Vec3{0, 0, 1})
	case 'j':
		c.shoot(mgl64.Vec3{-1, 0, 0})
	case 'l':
		c.shoot(mgl64.Vec3{1, 0, 0})
	case 'q':
		return actionQuit
	case 'p':
		return actionPause
	case 'm':
		return actionMute
	case 'v':
		return actionPaths
	case 'r':
		return actionRestart
	}
	return actionNone
}

func (c *controls) move(dx, dz float64) {
	c.moveX, c.moveZ = dx, dz
	c.hold = parameter.InputHoldFrames
	c.facing = vmath.XZ(dx, dz)
}

func (c *controls) shoot(dir mgl64.Vec3) {
	c.fire = dir
	c.firing = true
}

// frame returns this frame's movement and consumes a pending shot
func (c *controls) frame() (dx, dz float64, fire mgl64.Vec3, firing bool) {
	if c.hold > 0 {
		dx, dz = c.moveX, c.moveZ
		c.hold--
	}
	fire, firing = c.fire, c.firing
	c.firing = false
	return dx, dz, fire, firing
}

// reset drops held input, used on restart
func (c *controls) reset() {
	*c = *newControls()
}
