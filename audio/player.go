// Package audio synthesizes short tone cues for world events and plays them
// through the beep speaker. Audio is optional: without a device every call is a no-op.
package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/pillar-arena/engine"
	"github.com/lixenwraith/pillar-arena/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
)

// CuePlayer turns world events into tone cues on the system speaker.
// Every method is a no-op until Initialize succeeds, so the game runs silently without a device.
type CuePlayer struct {
	mu          sync.Mutex
	alarm       *beep.Ctrl
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
	played      uint64
}

// NewCuePlayer creates a player at the given linear volume
func NewCuePlayer(volume float64) *CuePlayer {
	return &CuePlayer{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker and starts the mixer
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences everything; beep has no speaker close, clearing the mixer is enough
func (p *CuePlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	if p.alarm != nil {
		p.alarm.Paused = true
	}
	p.mixer.Clear()
	speaker.Unlock()

	p.alarm = nil
	p.initialized = false
}

// Play queues one cue, reporting whether it reached the mixer
func (p *CuePlayer) Play(c Cue) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.play(c)
}

func (p *CuePlayer) play(c Cue) bool {
	if !p.initialized || p.muted {
		return false
	}
	s := Synthesize(c, sampleRate, p.volume)
	if s == nil {
		return false
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()

	p.played++
	return true
}

// HandleEvents plays the cues for one tick's events.
// A cue sounds at most once per call so a burst of identical events does not stack.
func (p *CuePlayer) HandleEvents(events []engine.Event) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	var seen [cueCount]bool
	n := 0
	for _, ev := range events {
		c := CueFor(ev)
		if c == CueNone || seen[c] {
			continue
		}
		seen[c] = true
		if p.play(c) {
			n++
		}
	}
	return n
}

// SetAlarm starts or pauses the low health pulse loop
func (p *CuePlayer) SetAlarm(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if !on || p.muted {
		if p.alarm != nil {
			p.alarm.Paused = true
		}
		return
	}

	if p.alarm != nil {
		p.alarm.Paused = false
		return
	}

	pulse := NewPulseGenerator(sampleRate, parameter.AlarmBeatDuration, parameter.AlarmKickDuration)
	p.alarm = &beep.Ctrl{Streamer: newVolume(pulse, p.volume), Paused: false}
	p.mixer.Add(p.alarm)
}

// AlarmActive reports whether the pulse loop is currently audible
func (p *CuePlayer) AlarmActive() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.alarm == nil {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return !p.alarm.Paused
}

// ToggleMute flips mute and returns the new state; muting also pauses the alarm
func (p *CuePlayer) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = !p.muted
	if p.muted && p.alarm != nil {
		speaker.Lock()
		p.alarm.Paused = true
		speaker.Unlock()
	}
	return p.muted
}

func (p *CuePlayer) IsMuted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Played returns how many cues reached the mixer
func (p *CuePlayer) Played() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}
