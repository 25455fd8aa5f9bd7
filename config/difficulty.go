package config

// Difficulty names a preset applied over the defaults
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Normal Difficulty = "normal"
	Hard   Difficulty = "hard"
)

type preset struct {
	playerHealth  int
	enemySpeed    float64
	maxEnemies    int
	contactDamage int
	rollEasy      int
	rollMedium    int
}

var presets = map[Difficulty]preset{
	Easy:   {playerHealth: 150, enemySpeed: 0.15, maxEnemies: 1, contactDamage: 5, rollEasy: 70, rollMedium: 95},
	Normal: {playerHealth: 100, enemySpeed: 0.25, maxEnemies: 2, contactDamage: 10, rollEasy: 33, rollMedium: 67},
	Hard:   {playerHealth: 75, enemySpeed: 0.35, maxEnemies: 3, contactDamage: 20, rollEasy: 5, rollMedium: 30},
}

// Difficulties lists the known presets in ascending order
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Normal, Hard}
}

// Valid reports whether d names a preset
func (d Difficulty) Valid() bool {
	_, ok := presets[d]
	return ok
}

// Apply overwrites the preset-controlled fields of c and records d
func (d Difficulty) Apply(c *Config) bool {
	if !d.Valid() {
		return false
	}
	c.Difficulty = d
	d.apply(c)
	return true
}

func (d Difficulty) apply(c *Config) {
	p, ok := presets[d]
	if !ok {
		return
	}
	c.Player.Health = p.playerHealth
	c.Enemy.Speed = p.enemySpeed
	c.Enemy.ContactDamage = p.contactDamage
	c.Enemy.RollEasy = p.rollEasy
	c.Enemy.RollMedium = p.rollMedium
	c.Spawn.MaxEnemies = p.maxEnemies
}
