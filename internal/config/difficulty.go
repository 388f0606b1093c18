package config

// DifficultyManager calculates dynamic monster parameters based on
// dungeon depth or score.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on
// floor depth and score.
func (d *DifficultyManager) Level(floor int, score int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "floor":
		progress = float64(floor-1) / maxAt
	case "score":
		progress = float64(score) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// MonsterHP returns scaled monster hit points for the given floor.
func (d *DifficultyManager) MonsterHP(baseHP int, floor int, score int) int {
	level := d.Level(floor, score)
	hp := float64(baseHP) * (1.0 + level*d.cfg.Scaling.HPMultiplier)
	if hp < 1 {
		hp = 1
	}
	return int(hp)
}

// MonsterAttack returns scaled monster attack for the given floor.
func (d *DifficultyManager) MonsterAttack(baseAttack int, floor int, score int) int {
	level := d.Level(floor, score)
	atk := float64(baseAttack) * (1.0 + level*d.cfg.Scaling.AttackMultiplier)
	if atk < 1 {
		atk = 1
	}
	return int(atk)
}

// clampF restricts a float64 value to be within [min, max].
func clampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
