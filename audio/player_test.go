package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pillar-arena/engine"
)

// offlinePlayer skips speaker.Init; the mixer collects cues without a device
func offlinePlayer() *CuePlayer {
	p := NewCuePlayer(0.5)
	p.initialized = true
	return p
}

func TestCuePlayer_UninitializedIsSilent(t *testing.T) {
	p := NewCuePlayer(1.0)

	require.NotPanics(t, func() {
		assert.False(t, p.Play(CueShot))
		assert.Equal(t, 0, p.HandleEvents([]engine.Event{{Type: engine.EventShotFired}}))
		p.SetAlarm(true)
		assert.False(t, p.AlarmActive())
		p.Cleanup()
	})
	assert.Equal(t, uint64(0), p.Played())
	assert.Equal(t, 0, p.mixer.Len())
}

func TestCuePlayer_HandleEventsDeduplicatesPerCall(t *testing.T) {
	p := offlinePlayer()

	events := []engine.Event{
		{Type: engine.EventShotFired},
		{Type: engine.EventEnemyHit, Enemy: 0, Amount: 10},
		{Type: engine.EventEnemyHit, Enemy: 1, Amount: 10},
		{Type: engine.EventShotFired},
		{Type: engine.EventEnemySpawned},
	}
	assert.Equal(t, 2, p.HandleEvents(events))
	assert.Equal(t, 2, p.mixer.Len())

	// A new call is a new tick
	assert.Equal(t, 1, p.HandleEvents(events[:1]))
	assert.Equal(t, uint64(3), p.Played())
}

func TestCuePlayer_PlayRejectsNone(t *testing.T) {
	p := offlinePlayer()
	assert.False(t, p.Play(CueNone))
	assert.True(t, p.Play(CuePickup))
	assert.Equal(t, 1, p.mixer.Len())
}

func TestCuePlayer_MuteBlocksCuesAndAlarm(t *testing.T) {
	p := offlinePlayer()

	p.SetAlarm(true)
	require.True(t, p.AlarmActive())

	assert.True(t, p.ToggleMute())
	assert.True(t, p.IsMuted())
	assert.False(t, p.AlarmActive())
	assert.False(t, p.Play(CueShot))

	p.SetAlarm(true)
	assert.False(t, p.AlarmActive(), "alarm stays down while muted")

	assert.False(t, p.ToggleMute())
	assert.True(t, p.Play(CueShot))
}

func TestCuePlayer_AlarmIsReused(t *testing.T) {
	p := offlinePlayer()

	p.SetAlarm(true)
	p.SetAlarm(false)
	assert.False(t, p.AlarmActive())
	p.SetAlarm(true)
	assert.True(t, p.AlarmActive())
	assert.Equal(t, 1, p.mixer.Len(), "one looping streamer, toggled rather than re-added")
}

func TestCuePlayer_CleanupClearsMixer(t *testing.T) {
	p := offlinePlayer()
	p.Play(CueKill)
	p.SetAlarm(true)
	require.Equal(t, 2, p.mixer.Len())

	p.Cleanup()
	assert.Equal(t, 0, p.mixer.Len())
	assert.False(t, p.AlarmActive())
	assert.False(t, p.Play(CueKill), "cleaned up player is uninitialized again")
}
