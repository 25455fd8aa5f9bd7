package engine

import (
	"github.com/go-gl/mathgl/mgl64"
)

// EventType identifies something that happened during a tick.
// Events are produced by World.Tick in phase order and are read-only for consumers;
// nothing in the world reacts to them, they exist for renderers, audio and logs.
type EventType uint8

const (
	// EventEnemySpawned is pushed when the spawner places an enemy.
	// Amount: rolled health
	EventEnemySpawned EventType = iota

	// EventEnemyObstacle is pushed once per enemy-pillar push-out.
	// The enemy's segment has already been dropped when consumers see it.
	// Position: corrected enemy position
	EventEnemyObstacle

	// EventEnemyContact is pushed when the player overlaps a solid enemy.
	// The enemy has been shoved away from the player.
	// Position: enemy position at contact
	EventEnemyContact

	// EventPlayerDamaged is pushed when damage lands on the player
	// (contact, boss contact or fireball; cooldown-gated hits that did not land are not reported).
	// Amount: damage applied before clamping
	EventPlayerDamaged

	// EventEnemyHit is pushed when a player shot strikes a living enemy.
	// Amount: damage
	EventEnemyHit

	// EventEnemyKilled is pushed when an enemy at zero health starts dying
	EventEnemyKilled

	// EventEnemyRemoved is pushed when a dying enemy finishes and leaves the roster
	EventEnemyRemoved

	// EventShotFired is pushed when a player shot enters the projectile pool
	EventShotFired

	// EventFireballFired is pushed when the boss attack timer fires
	EventFireballFired

	// EventBossHit is pushed when a player shot strikes the boss.
	// Amount: damage
	EventBossHit

	// EventPickupSpawned and EventPickupCollected track health pickups.
	// Amount on collection: heal applied
	EventPickupSpawned
	EventPickupCollected

	// EventOutcome is pushed once, on the tick the outcome leaves OutcomeRunning
	EventOutcome
)

var eventNames = [...]string{
	EventEnemySpawned:    "enemy_spawned",
	EventEnemyObstacle:   "enemy_obstacle",
	EventEnemyContact:    "enemy_contact",
	EventPlayerDamaged:   "player_damaged",
	EventEnemyHit:        "enemy_hit",
	EventEnemyKilled:     "enemy_killed",
	EventEnemyRemoved:    "enemy_removed",
	EventShotFired:       "shot_fired",
	EventFireballFired:   "fireball_fired",
	EventBossHit:         "boss_hit",
	EventPickupSpawned:   "pickup_spawned",
	EventPickupCollected: "pickup_collected",
	EventOutcome:         "outcome",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// NoEnemy marks events not tied to an enemy
const NoEnemy = -1

// Event is one tick occurrence
type Event struct {
	Type  EventType
	Frame int64
	// Enemy is the stable roster ID, NoEnemy when not applicable
	Enemy    int
	Position mgl64.Vec3
	Amount   int
}

// EventLog collects one tick's events; Reset at tick start keeps it bounded
type EventLog struct {
	events []Event
	frame  int64
}

func (l *EventLog) reset(frame int64) {
	l.events = l.events[:0]
	l.frame = frame
}

func (l *EventLog) push(t EventType, enemy int, pos mgl64.Vec3, amount int) {
	l.events = append(l.events, Event{Type: t, Frame: l.frame, Enemy: enemy, Position: pos, Amount: amount})
}

// Events returns this tick's events; the slice is reused by the next tick
func (l *EventLog) Events() []Event {
	return l.events
}

// Count returns how many events of type t were pushed this tick
func (l *EventLog) Count(t EventType) int {
	n := 0
	for i := range l.events {
		if l.events[i].Type == t {
			n++
		}
	}
	return n
}
