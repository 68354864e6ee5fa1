package config

import (
	_ "embed"
)

//go:embed defaults/tubesort.yaml
var defaultTubeSortYAML []byte

// DefaultTubeSortConfig returns the built-in configuration.
func DefaultTubeSortConfig() TubeSortConfig {
	return TubeSortConfig{
		Rules: RulesConfig{
			Shuffle:  "uniform",
			WinRule:  "loose",
			MaxLevel: 10,

			EnsureSolvable: true,
		},
		Scoring: ScoringConfig{
			LevelBonus: 100,
			MoveBonus:  5,
		},
		Hints: HintsConfig{
			Enabled: true,
			Budget:  50000,
		},
		Difficulty: DifficultyConfig{
			StartLevel: 1,
		},
	}
}
