package physics

// Knockback is the planar velocity an enemy carries while shoved
// Zero on both axes means no knockback is in progress
type Knockback struct {
	VelX, VelZ float64
}

// Active reports whether any knockback velocity remains
func (k *Knockback) Active() bool {
	return k.VelX != 0 || k.VelZ != 0
}

// Velocity returns the current velocity pair
func (k *Knockback) Velocity() (vx, vz float64) {
	return k.VelX, k.VelZ
}

// SetImpulse overrides velocity with dir*force (hard shove, discards prior motion)
// dir is used as given; callers normalize
func SetImpulse(k *Knockback, dirX, dirZ, force float64) {
	k.VelX = dirX * force
	k.VelZ = dirZ * force
}

// ApplyImpulse adds dir*force to the current velocity
func ApplyImpulse(k *Knockback, dirX, dirZ, force float64) {
	k.VelX += dirX * force
	k.VelZ += dirZ * force
}

// Integrate returns the displacement for one step: v*dt
func Integrate(k *Knockback, dt float64) (dx, dz float64) {
	return k.VelX * dt, k.VelZ * dt
}

// Decay scales velocity by max(0, 1 - rate*dt)
func Decay(k *Knockback, dt, rate float64) {
	f := 1 - rate*dt
	if f < 0 {
		f = 0
	}
	k.VelX *= f
	k.VelZ *= f
}

// Settle zeroes velocity once both components are below threshold in magnitude
// Returns true when the knockback is at rest after the call
func Settle(k *Knockback, threshold float64) bool {
	if abs(k.VelX) < threshold && abs(k.VelZ) < threshold {
		k.VelX, k.VelZ = 0, 0
		return true
	}
	return false
}

// Stop clears velocity without reporting a settle
func Stop(k *Knockback) {
	k.VelX, k.VelZ = 0, 0
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
