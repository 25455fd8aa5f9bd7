package parameter

// Spawning
const (
	SpawnIntervalSeconds = 5
	SpawnMaxEnemies      = 2
	SpawnMinX            = -3.5
	SpawnSpanX           = 5.5
	SpawnMinZ            = -1.0
	SpawnSpanZ           = 2.0
	SpawnMinPlayerDist   = 1.0
	// SpawnMaxAttempts bounds the rejection loop for a clear spawn point
	SpawnMaxAttempts = 64
)

// Health pickups
const (
	PickupSpawnInterval = 10.0
	PickupMaxActive     = 2
	PickupHeal          = 25
	PickupRadius        = 0.15
	PickupHeight        = 0.05
	PickupMinX          = -3.0
	PickupSpanX         = 6.0
	PickupMinZ          = -1.0
	PickupSpanZ         = 2.0
)
