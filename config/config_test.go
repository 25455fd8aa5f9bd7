package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pillar-arena/actor"
	"github.com/lixenwraith/pillar-arena/physics"
)

func TestDefault_Valid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, Normal, c.Difficulty)
	assert.Equal(t, 100, c.Player.Health)
	assert.Equal(t, 0.25, c.Enemy.Speed)
	assert.Equal(t, 2, c.Spawn.MaxEnemies)
	assert.Len(t, c.Pillars(), 10)
	assert.True(t, c.Audio.Enabled)
}

func TestDecode_DifficultyThenOverrides(t *testing.T) {
	c, err := Decode(`
difficulty = "hard"

[player]
health = 80
`)
	require.NoError(t, err)
	assert.Equal(t, Hard, c.Difficulty)
	assert.Equal(t, 80, c.Player.Health, "explicit key wins over preset")
	assert.Equal(t, 0.35, c.Enemy.Speed)
	assert.Equal(t, 3, c.Spawn.MaxEnemies)
	assert.Equal(t, 20, c.Enemy.ContactDamage)
}

func TestDecode_Tables(t *testing.T) {
	c, err := Decode(`
[arena]
pillar_columns = [-1.0, 1.0]
enemy_min = [-3.0, -1.0]

[locomotion]
perp_offset_min = 0.1
perp_offset_max = 0.2
avoid_pillars = false
`)
	require.NoError(t, err)
	assert.Len(t, c.Pillars(), 4)
	assert.Equal(t, [2]float64{-3, -1}, c.Arena.EnemyMin)

	p := c.Planner(nil)
	assert.Equal(t, 0.1, p.PerpOffsetMin)
	assert.Nil(t, p.Obstacles)
}

func TestDecode_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		invalid bool
	}{
		{"unknown key", "[player]\nhelth = 3\n", false},
		{"syntax", "[player\n", false},
		{"unknown difficulty", `difficulty = "nightmare"`, true},
		{"offset order", "[locomotion]\nperp_offset_min = 0.6\nperp_offset_max = 0.5\n", true},
		{"probe samples", "[locomotion]\nprobe_samples = 0\n", true},
		{"settle threshold", "[knockback]\nsettle_threshold = 0.0\n", true},
		{"knockback force", "[knockback]\nforce = 0.0\n", true},
		{"negative shot force", "[knockback]\nshot_force = -1.0\n", true},
		{"advance distance", "[locomotion]\nmin_advance_distance = 0.0\n", true},
		{"continuity t", "[locomotion]\ncontinuity_min_t = -0.5\n", true},
		{"final tangent", "[locomotion]\nfinal_tangent_scale = 0.0\n", true},
		{"initial tangent", "[locomotion]\ninitial_tangent_scale = -1.0\n", true},
		{"projectile pool", "[projectile]\nmax_count = 0\n", true},
		{"inverted arena", "[arena]\nplayer_min = [5.0, -10.0, -1.3]\n", true},
		{"audio volume", "[audio]\nvolume = 1.5\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.doc)
			require.Error(t, err)
			assert.Equal(t, tt.invalid, errors.Cause(err) == ErrInvalid, "err: %v", err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "arena.toml")
	require.NoError(t, os.WriteFile(path, []byte("seed = 42\n[boss]\nenabled = false\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), c.Seed)
	assert.False(t, c.Boss.Enabled)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestEncode_RoundTrip(t *testing.T) {
	c := Default()
	c.Seed = 7
	Easy.Apply(c)

	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf))

	back, err := Decode(buf.String())
	require.NoError(t, err)
	assert.Equal(t, c, back)
}

func TestDifficulty_Apply(t *testing.T) {
	c := Default()
	assert.False(t, Difficulty("odd").Apply(c))
	assert.Equal(t, Normal, c.Difficulty)

	require.True(t, Easy.Apply(c))
	assert.Equal(t, 150, c.Player.Health)
	assert.Equal(t, 1, c.Spawn.MaxEnemies)
	assert.Equal(t, 70, c.Enemy.RollEasy)
	assert.Equal(t, 95, c.Enemy.RollMedium)

	assert.Len(t, Difficulties(), 3)
}

func TestBuilders(t *testing.T) {
	c := Default()

	rc := c.ResolverConfig()
	assert.Equal(t, mgl64.Vec3{0.108, 0.108, 0.108}, rc.PlayerExtents)
	assert.Equal(t, 6.0, rc.Contact.Force)
	assert.Equal(t, physics.ImpulseOverride, rc.Contact.Mode)
	assert.Equal(t, mgl64.Vec3{4.3, 10, 1.3}, rc.PlayerBounds.Max)

	et := c.EnemyTuning()
	assert.Equal(t, 0.25, et.Speed)
	assert.Equal(t, 4.2, et.Bounds.Max.X())

	p := c.Planner(actor.PillarBounds(c.Pillars()))
	assert.Len(t, p.Obstacles, 10)
	assert.Equal(t, 4.1, p.Bounds.Max.X())
	assert.Equal(t, 0.15, p.ProbeRadius)

	assert.Equal(t, physics.ImpulseAdditive, c.ShotProfile().Mode)
	assert.Equal(t, mgl64.Vec3{-3.5, 0, 0}, c.BossPosition())
	assert.Equal(t, mgl64.Vec3{3.5, 0.101, 0}, c.PlayerStart())
}
