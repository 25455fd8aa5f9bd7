package render

import "github.com/gdamore/tcell/v2"

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbArenaEdge  = tcell.NewRGBColor(86, 95, 137)   // Muted blue border
	RgbFloorDot   = tcell.NewRGBColor(41, 46, 66)    // Faint floor grid
	RgbPillar     = tcell.NewRGBColor(169, 177, 214) // Pale stone
	RgbPlayer     = tcell.NewRGBColor(255, 255, 255) // White
	RgbPlayerHurt = tcell.NewRGBColor(255, 80, 80)   // Flash while the damage cooldown runs

	RgbEnemyHealthy   = tcell.NewRGBColor(0, 200, 0)     // Green
	RgbEnemyWounded   = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbEnemyCritical  = tcell.NewRGBColor(255, 80, 80)   // Red
	RgbEnemyKnockback = tcell.NewRGBColor(140, 190, 255) // Bright blue while shoved
	RgbEnemyDying     = tcell.NewRGBColor(101, 67, 33)   // Dark brown
	RgbPath           = tcell.NewRGBColor(60, 60, 80)    // Planned curve preview

	RgbBoss      = tcell.NewRGBColor(187, 154, 247) // Purple
	RgbBossZone  = tcell.NewRGBColor(70, 50, 100)   // Contact ring
	RgbShot      = tcell.NewRGBColor(255, 255, 0)   // Yellow
	RgbFireball  = tcell.NewRGBColor(255, 120, 0)   // Flame orange
	RgbTrail     = tcell.NewRGBColor(120, 120, 120) // Gray
	RgbPickup    = tcell.NewRGBColor(50, 255, 50)   // Bright green
	RgbStatusBar = tcell.NewRGBColor(255, 255, 255) // White
	RgbBanner    = tcell.NewRGBColor(255, 215, 0)   // Gold
)

// enemyColor picks a health band color; dying and shoved enemies override it
func enemyColor(health, maxHealth int) tcell.Color {
	if maxHealth <= 0 {
		return RgbEnemyCritical
	}
	switch frac := float64(health) / float64(maxHealth); {
	case frac > 0.66:
		return RgbEnemyHealthy
	case frac > 0.33:
		return RgbEnemyWounded
	default:
		return RgbEnemyCritical
	}
}
