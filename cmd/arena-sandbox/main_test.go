package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pillar-arena/config"
	"github.com/lixenwraith/pillar-arena/engine"
	"github.com/lixenwraith/pillar-arena/parameter"
)

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	cfg, err := loadConfig("", "hard", 42)
	require.NoError(t, err)
	assert.Equal(t, config.Hard, cfg.Difficulty)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 75, cfg.Player.Health)
}

func TestLoadConfig_FileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.toml")
	require.NoError(t, os.WriteFile(path, []byte("difficulty = \"easy\"\nseed = 9\n\n[audio]\nvolume = 0.25\n"), 0644))

	cfg, err := loadConfig(path, "", 0)
	require.NoError(t, err)
	assert.Equal(t, config.Easy, cfg.Difficulty)
	assert.Equal(t, uint64(9), cfg.Seed)
	assert.Equal(t, 0.25, cfg.Audio.Volume)

	cfg, err = loadConfig(path, "normal", 5)
	require.NoError(t, err)
	assert.Equal(t, config.Normal, cfg.Difficulty)
	assert.Equal(t, uint64(5), cfg.Seed)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := loadConfig("", "nightmare", 0)
	assert.Error(t, err)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.toml"), "", 0)
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[audio]\nvolume = 3.0\n"), 0644))
	_, err = loadConfig(path, "", 0)
	require.Error(t, err)
	assert.Equal(t, config.ErrInvalid, errors.Cause(err))
}

func TestControls_MovementHoldsThenReleases(t *testing.T) {
	c := newControls()
	assert.Equal(t, actionNone, c.handleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)))

	for i := 0; i < parameter.InputHoldFrames; i++ {
		dx, dz, _, _ := c.frame()
		assert.Equal(t, -1.0, dx)
		assert.Equal(t, 0.0, dz)
	}
	dx, dz, _, _ := c.frame()
	assert.Zero(t, dx)
	assert.Zero(t, dz)
}

func TestControls_FireUsesFacing(t *testing.T) {
	c := newControls()
	c.handleKey(tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone))
	c.handleKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))

	_, dz, fire, firing := c.frame()
	assert.Equal(t, 1.0, dz)
	require.True(t, firing)
	assert.Equal(t, mgl64.Vec3{0, 0, 1}, fire)

	_, _, _, firing = c.frame()
	assert.False(t, firing, "a press fires once")

	c.handleKey(tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone))
	_, _, fire, firing = c.frame()
	require.True(t, firing)
	assert.Equal(t, mgl64.Vec3{1, 0, 0}, fire)
}

func TestControls_Actions(t *testing.T) {
	c := newControls()
	tests := []struct {
		ev   *tcell.EventKey
		want action
	}{
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), actionQuit},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), actionQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), actionQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), actionPause},
		{tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), actionMute},
		{tcell.NewEventKey(tcell.KeyRune, 'v', tcell.ModNone), actionPaths},
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), actionRestart},
		{tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), actionNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.handleKey(tt.ev))
	}

	c.handleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	c.reset()
	dx, dz, _, firing := c.frame()
	assert.Zero(t, dx)
	assert.Zero(t, dz)
	assert.False(t, firing)
}

func TestLowHealthAndStatus(t *testing.T) {
	cfg := config.Default()
	cfg.Boss.Enabled = false
	cfg.Spawn.MaxEnemies = 0
	w := engine.NewWorld(cfg)

	assert.False(t, lowHealth(w))
	w.Player().TakeDamage(w.Player().MaxHealth() - 10)
	assert.True(t, lowHealth(w))

	assert.Contains(t, statusLine(true, true), "PAUSED")
	assert.Contains(t, statusLine(true, true), "[muted]")
	assert.Equal(t, helpText, statusLine(false, false))
}
