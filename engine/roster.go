package engine

import (
	"github.com/lixenwraith/pillar-arena/actor"
)

// Roster is the ordered enemy collection with stable IDs
// Order is insertion order and survives removal
type Roster struct {
	enemies []*actor.Enemy
	ids     []int
	nextID  int
}

// Add appends an enemy and returns its ID
func (r *Roster) Add(e *actor.Enemy) int {
	id := r.nextID
	r.nextID++
	r.enemies = append(r.enemies, e)
	r.ids = append(r.ids, id)
	return id
}

// Len returns the number of enemies, dying ones included
func (r *Roster) Len() int {
	return len(r.enemies)
}

// At returns the enemy at roster index i
func (r *Roster) At(i int) *actor.Enemy {
	return r.enemies[i]
}

// ID returns the stable ID of roster index i
func (r *Roster) ID(i int) int {
	return r.ids[i]
}

// Enemies returns the roster view; valid until the next Add or Sweep
func (r *Roster) Enemies() []*actor.Enemy {
	return r.enemies
}

// Living counts enemies that have not started dying
func (r *Roster) Living() int {
	n := 0
	for _, e := range r.enemies {
		if !e.IsDying() {
			n++
		}
	}
	return n
}

// Sweep runs the two removal phases.
// Mark: every enemy at zero health that is not yet dying starts dying (onKilled).
// Compact: enemies whose death animation finished are dropped with an order-preserving
// filter (onRemoved). The slice is never mutated while it is being iterated.
func (r *Roster) Sweep(onKilled, onRemoved func(id int, e *actor.Enemy)) {
	for i, e := range r.enemies {
		if e.IsDead() && !e.IsDying() {
			e.StartDying()
			if onKilled != nil {
				onKilled(r.ids[i], e)
			}
		}
	}

	n := 0
	for i, e := range r.enemies {
		if e.IsReadyForRemoval() {
			if onRemoved != nil {
				onRemoved(r.ids[i], e)
			}
			continue
		}
		r.enemies[n] = e
		r.ids[n] = r.ids[i]
		n++
	}
	clear(r.enemies[n:])
	r.enemies = r.enemies[:n]
	r.ids = r.ids[:n]
}
