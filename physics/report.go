package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/pillar-arena/collision"
)

// ObstacleHit records one enemy pushed out of one obstacle
type ObstacleHit struct {
	Enemy    int // roster index
	Obstacle int
	Axis     collision.Axis
	Position mgl64.Vec3 // corrected position after this push
}

// Contact records the player overlapping a solid enemy
type Contact struct {
	Enemy   int
	Dir     mgl64.Vec3 // unit, ground plane, player toward enemy
	Profile KnockbackProfile
}

// Report collects the events of one resolver frame
// Slices are reused across frames; call Reset before each frame
type Report struct {
	ObstacleHits []ObstacleHit
	Contacts     []Contact

	BossContact   bool
	GroundContact bool
	PlayerMoved   bool
}

// Reset clears events, keeping capacity
func (r *Report) Reset() {
	r.ObstacleHits = r.ObstacleHits[:0]
	r.Contacts = r.Contacts[:0]
	r.BossContact = false
	r.GroundContact = false
	r.PlayerMoved = false
}

// Empty reports whether the frame produced no events
func (r *Report) Empty() bool {
	return len(r.ObstacleHits) == 0 && len(r.Contacts) == 0 && !r.BossContact
}
