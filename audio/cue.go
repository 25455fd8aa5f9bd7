package audio

import (
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/pillar-arena/engine"
	"github.com/lixenwraith/pillar-arena/parameter"
)

// Cue is a short sound tied to a world event
type Cue uint8

const (
	CueNone Cue = iota
	CueShot
	CueFireball
	CueHit
	CueBossHit
	CueKill
	CueContact
	CueDamage
	CuePickup
	CueVictory
	CueDefeat
	cueCount
)

var cueNames = [...]string{
	CueNone:     "none",
	CueShot:     "shot",
	CueFireball: "fireball",
	CueHit:      "hit",
	CueBossHit:  "boss_hit",
	CueKill:     "kill",
	CueContact:  "contact",
	CueDamage:   "damage",
	CuePickup:   "pickup",
	CueVictory:  "victory",
	CueDefeat:   "defeat",
}

func (c Cue) String() string {
	if int(c) < len(cueNames) {
		return cueNames[c]
	}
	return "unknown"
}

// CueFor maps a world event to its cue; silent events map to CueNone
func CueFor(ev engine.Event) Cue {
	switch ev.Type {
	case engine.EventShotFired:
		return CueShot
	case engine.EventFireballFired:
		return CueFireball
	case engine.EventEnemyHit:
		return CueHit
	case engine.EventBossHit:
		return CueBossHit
	case engine.EventEnemyKilled:
		return CueKill
	case engine.EventEnemyContact:
		return CueContact
	case engine.EventPlayerDamaged:
		return CueDamage
	case engine.EventPickupCollected:
		return CuePickup
	case engine.EventOutcome:
		switch engine.Outcome(ev.Amount) {
		case engine.OutcomeBossDefeated:
			return CueVictory
		case engine.OutcomePlayerDead:
			return CueDefeat
		}
	}
	return CueNone
}

// Synthesize builds a finite streamer for c at the given linear volume; nil for CueNone
func Synthesize(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueShot:
		tone, err := generators.SineTone(rate, parameter.ShotCueFrequency)
		if err != nil {
			// Sample rate below twice the tone frequency
			tone = NewOscillator(parameter.ShotCueFrequency, parameter.ShotCueDuration, WaveSquare, rate)
		}
		s = NewEnvelope(beep.Take(rate.N(parameter.ShotCueDuration), tone),
			parameter.ShotCueDuration, parameter.ShotCueAttack, parameter.ShotCueRelease, rate)

	case CueFireball:
		sweep := NewSweep(parameter.FireballCueStartFreq, parameter.FireballCueEndFreq,
			parameter.FireballCueDuration, WaveSaw, rate)
		s = NewEnvelope(sweep, parameter.FireballCueDuration,
			parameter.FireballCueAttack, parameter.FireballCueRelease, rate)

	case CueHit:
		osc := NewOscillator(parameter.HitCueFrequency, parameter.HitCueDuration, WaveSquare, rate)
		s = newVolume(NewEnvelope(osc, parameter.HitCueDuration,
			parameter.HitCueAttack, parameter.HitCueRelease, rate), 0.5)

	case CueBossHit:
		osc := NewOscillator(parameter.BossHitCueFrequency, parameter.BossHitCueDuration, WaveSquare, rate)
		s = newVolume(NewEnvelope(osc, parameter.BossHitCueDuration,
			parameter.HitCueAttack, parameter.HitCueRelease, rate), 0.5)

	case CueKill:
		s = beep.Take(rate.N(parameter.KillCueDuration), NewCrackleGenerator(rate))

	case CueContact:
		noise := NewOscillator(0, parameter.ContactCueDuration, WaveNoise, rate)
		s = newVolume(NewEnvelope(noise, parameter.ContactCueDuration,
			parameter.ContactCueAttack, parameter.ContactCueRelease, rate), 0.4)

	case CueDamage:
		s = beep.Take(rate.N(parameter.DamageCueDuration), NewBuzzGenerator(rate, parameter.DamageCueFrequency))

	case CuePickup:
		fund := NewOscillator(880.0, parameter.PickupCueDuration, WaveSine, rate)
		over := NewOscillator(1760.0, parameter.PickupCueDuration, WaveSine, rate)
		s = beep.Mix(
			newVolume(NewEnvelope(fund, parameter.PickupCueDuration,
				parameter.PickupCueAttack, parameter.PickupCueFundamentalRel, rate), 0.7),
			newVolume(NewEnvelope(over, parameter.PickupCueDuration,
				parameter.PickupCueAttack, parameter.PickupCueOvertoneRelease, rate), 0.3),
		)

	case CueVictory:
		s = jingle(parameter.VictoryNotes[:], WaveSquare, rate)

	case CueDefeat:
		s = jingle(parameter.DefeatNotes[:], WaveSaw, rate)

	default:
		return nil
	}
	return newVolume(s, volume)
}

func jingle(notes []float64, wave WaveType, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, freq := range notes {
		osc := NewOscillator(freq, parameter.OutcomeNoteDuration, wave, rate)
		parts = append(parts, newVolume(NewEnvelope(osc, parameter.OutcomeNoteDuration,
			parameter.OutcomeNoteAttack, parameter.OutcomeNoteRelease, rate), 0.5))
	}
	return beep.Seq(parts...)
}
