package parameter

// Player body
const (
	PlayerHalfExtent     = 0.108
	PlayerSpeed          = 0.4
	PlayerHealth         = 100
	PlayerHitRadius      = 0.10
	PlayerHitHeight      = 0.1
	PlayerDamageCooldown = 1.0
)

// Player spawn
const (
	PlayerStartX = 3.5
	PlayerStartY = 0.101
	PlayerStartZ = 0.0
)
