package parameter

import "time"

// Audio output
const (
	AudioSampleRate = 48000
	// AudioBufferDuration sets speaker latency
	AudioBufferDuration = 100 * time.Millisecond
	AudioVolume         = 0.6
)

// Shot: short sine blip
const (
	ShotCueFrequency = 880.0
	ShotCueDuration  = 60 * time.Millisecond
	ShotCueAttack    = 2 * time.Millisecond
	ShotCueRelease   = 40 * time.Millisecond
)

// Fireball: falling saw sweep
const (
	FireballCueStartFreq = 220.0
	FireballCueEndFreq   = 90.0
	FireballCueDuration  = 250 * time.Millisecond
	FireballCueAttack    = 10 * time.Millisecond
	FireballCueRelease   = 120 * time.Millisecond
)

// Enemy and boss hits
const (
	HitCueFrequency     = 180.0
	HitCueDuration      = 70 * time.Millisecond
	HitCueAttack        = 2 * time.Millisecond
	HitCueRelease       = 30 * time.Millisecond
	BossHitCueFrequency = 330.0
	BossHitCueDuration  = 90 * time.Millisecond
)

// Kill crackle and contact shove
const (
	KillCueDuration    = 300 * time.Millisecond
	ContactCueDuration = 120 * time.Millisecond
	ContactCueAttack   = 30 * time.Millisecond
	ContactCueRelease  = 80 * time.Millisecond
)

// Player damage buzz
const (
	DamageCueFrequency = 120.0
	DamageCueDuration  = 150 * time.Millisecond
)

// Pickup bell
const (
	PickupCueDuration        = 400 * time.Millisecond
	PickupCueAttack          = 5 * time.Millisecond
	PickupCueFundamentalRel  = 350 * time.Millisecond
	PickupCueOvertoneRelease = 150 * time.Millisecond
)

// Outcome jingles, one note per entry
const (
	OutcomeNoteDuration = 140 * time.Millisecond
	OutcomeNoteAttack   = 5 * time.Millisecond
	OutcomeNoteRelease  = 60 * time.Millisecond
)

var (
	VictoryNotes = [...]float64{1046.50, 1318.51, 1567.98}
	DefeatNotes  = [...]float64{392.00, 311.13, 196.00}
)

// Low health pulse loop
const (
	AlarmBeatDuration = 600 * time.Millisecond
	AlarmKickDuration = 100 * time.Millisecond
	// AlarmHealthFraction of max health at or below which the pulse plays
	AlarmHealthFraction = 0.25
)
