// Package config provides YAML-based game configuration loading and
// difficulty presets for tubesort.
package config

// TubeSortConfig contains all configuration for the puzzle.
type TubeSortConfig struct {
	Rules      RulesConfig      `yaml:"rules"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Hints      HintsConfig      `yaml:"hints"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RulesConfig defines how boards are generated and judged.
type RulesConfig struct {
	Shuffle  string `yaml:"shuffle"`   // "uniform" or "biased"
	WinRule  string `yaml:"win_rule"`  // "loose" or "strict"
	MaxLevel int    `yaml:"max_level"` // Last campaign level; 0 = no cap

	// EnsureSolvable re-deals boards that provably have no solution.
	EnsureSolvable bool `yaml:"ensure_solvable"`
}

// ScoringConfig defines points awarded for a cleared level.
type ScoringConfig struct {
	LevelBonus int `yaml:"level_bonus"` // Multiplied by the level number
	MoveBonus  int `yaml:"move_bonus"`  // Per move under par
}

// HintsConfig controls the hint solver.
type HintsConfig struct {
	Enabled bool `yaml:"enabled"`
	Budget  int  `yaml:"budget"` // Max positions searched per hint
}

// DifficultyConfig picks the starting level.
type DifficultyConfig struct {
	StartLevel int `yaml:"start_level"`
}
