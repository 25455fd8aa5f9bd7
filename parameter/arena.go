package parameter

// Arena bounds, world units
const (
	// Player box clamp
	ArenaPlayerMinX = -4.3
	ArenaPlayerMaxX = 4.3
	ArenaPlayerMinY = -10.0
	ArenaPlayerMaxY = 10.0
	ArenaPlayerMinZ = -1.3
	ArenaPlayerMaxZ = 1.3

	// Enemy ground clamp, tighter than the player's so enemies stay clear of the wall mesh
	ArenaEnemyMinX = -4.2
	ArenaEnemyMaxX = 4.2
	ArenaEnemyMinZ = -1.2
	ArenaEnemyMaxZ = 1.2

	// Curve control points are kept inside this inset box
	ArenaCurveMinX = -4.1
	ArenaCurveMaxX = 4.1
	ArenaCurveMinZ = -1.1
	ArenaCurveMaxZ = 1.1
)

// Pillar rows along both long walls
const (
	PillarSize   = 0.5
	PillarHeight = 3.0
	PillarRowZ   = 1.2
)

// PillarColumnsX are the x positions of each pillar pair
var PillarColumnsX = [...]float64{-3.0, -1.5, 0.0, 1.5, 3.0}
