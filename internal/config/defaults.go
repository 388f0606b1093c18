package config

import (
	_ "embed"
)

//go:embed defaults/crawler.yaml
var defaultCrawlerYAML []byte

// DefaultCrawlerConfig returns the default crawler configuration.
// Used as a hardcoded fallback if the embedded YAML cannot be parsed.
func DefaultCrawlerConfig() CrawlerConfig {
	return CrawlerConfig{
		Player: CrawlerPlayer{
			MaxHP:        20,
			Attack:       3,
			PotionHeal:   8,
			StartPotions: 1,
		},
		Monsters: CrawlerMonsters{
			BaseHP:     6,
			BaseAttack: 2,
			CountMin:   3,
			CountMax:   6,
		},
		Dungeon: CrawlerDungeon{
			Floors:       5,
			RoomAttempts: 30,
			MinRoomSize:  4,
			MaxRoomSize:  9,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.3,
			Progression: ProgressionConfig{
				Type:  "floor",
				MaxAt: 5,
			},
			Scaling: ScalingConfig{
				HPMultiplier:     1.0,
				AttackMultiplier: 0.5,
			},
		},
	}
}
