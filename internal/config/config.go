// Package config handles game configuration loading from YAML files
// with embedded defaults and difficulty presets.
package config

// CrawlerConfig is the full configuration for the dungeon crawler.
type CrawlerConfig struct {
	Player     CrawlerPlayer    `yaml:"player"`
	Monsters   CrawlerMonsters  `yaml:"monsters"`
	Dungeon    CrawlerDungeon   `yaml:"dungeon"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CrawlerPlayer configures the player character.
type CrawlerPlayer struct {
	MaxHP        int `yaml:"max_hp"`
	Attack       int `yaml:"attack"`
	PotionHeal   int `yaml:"potion_heal"`
	StartPotions int `yaml:"start_potions"`
}

// CrawlerMonsters configures monster stats and spawn counts.
type CrawlerMonsters struct {
	BaseHP     int `yaml:"base_hp"`
	BaseAttack int `yaml:"base_attack"`
	CountMin   int `yaml:"count_min"`
	CountMax   int `yaml:"count_max"`
}

// CrawlerDungeon configures floor generation.
type CrawlerDungeon struct {
	Floors       int `yaml:"floors"`
	RoomAttempts int `yaml:"room_attempts"`
	MinRoomSize  int `yaml:"min_room_size"`
	MaxRoomSize  int `yaml:"max_room_size"`
}

// DifficultyConfig controls difficulty progression.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"`
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty advances.
type ProgressionConfig struct {
	// Type is "floor" (scale with dungeon depth), "score", or "none".
	Type  string `yaml:"type"`
	MaxAt int    `yaml:"max_at"` // Floor/score at which difficulty maxes out
}

// ScalingConfig defines what max difficulty does to monster stats.
type ScalingConfig struct {
	HPMultiplier     float64 `yaml:"hp_multiplier"`
	AttackMultiplier float64 `yaml:"attack_multiplier"`
}

// DifficultyPreset names a coarse difficulty selection from the CLI.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means "use config as-is".
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	}
	return "", false
}

// InitialLevelForPreset returns the starting difficulty level for a preset.
func InitialLevelForPreset(p DifficultyPreset) float64 {
	switch p {
	case DifficultyEasy:
		return 0.0
	case DifficultyHard:
		return 0.7
	default:
		return 0.3
	}
}
