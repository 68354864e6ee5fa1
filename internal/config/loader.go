package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadTubeSort loads the puzzle configuration.
// Search order: customPath -> ~/.tubesort/configs/tubesort.yaml -> ./configs/tubesort.yaml -> embedded default
func LoadTubeSort(customPath string) (TubeSortConfig, error) {
	// Start from defaults so partial files only override what they set
	cfg := DefaultTubeSortConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tubesort.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
			cfg = DefaultTubeSortConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "tubesort.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = DefaultTubeSortConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTubeSortYAML, &cfg); err != nil {
		return DefaultTubeSortConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Validate checks names and value ranges that YAML cannot express.
func (c TubeSortConfig) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Rules.Shuffle)) {
	case "", "uniform", "biased":
	default:
		return fmt.Errorf("config: rules.shuffle must be uniform or biased, got %q", c.Rules.Shuffle)
	}
	switch strings.ToLower(strings.TrimSpace(c.Rules.WinRule)) {
	case "", "loose", "strict":
	default:
		return fmt.Errorf("config: rules.win_rule must be loose or strict, got %q", c.Rules.WinRule)
	}
	if c.Rules.MaxLevel < 0 {
		return fmt.Errorf("config: max_level must be >= 0, got %d", c.Rules.MaxLevel)
	}
	if c.Difficulty.StartLevel < 0 {
		return fmt.Errorf("config: start_level must be >= 0, got %d", c.Difficulty.StartLevel)
	}
	if c.Hints.Budget < 0 {
		return fmt.Errorf("config: hints.budget must be >= 0, got %d", c.Hints.Budget)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tubesort", "configs", filename)
}
