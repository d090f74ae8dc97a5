package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadClimber loads the climber configuration.
// Search order: customPath -> ~/.climber/configs/climber.yaml -> ./configs/climber.yaml -> embedded default.
// Files are unmarshalled on top of the defaults, so partial configs
// inherit every key they do not set. A file that exists but does not
// parse or validate is an error, never silently skipped.
func LoadClimber(customPath string) (ClimberConfig, error) {
	// Try custom path first
	if customPath != "" {
		return loadFile(customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("climber.yaml"); userCfgPath != "" {
		if _, err := os.Stat(userCfgPath); err == nil {
			return loadFile(userCfgPath)
		}
	}

	// Try local configs directory
	if _, err := os.Stat("configs/climber.yaml"); err == nil {
		return loadFile("configs/climber.yaml")
	}

	// Use embedded default YAML
	var cfg ClimberConfig
	if err := yaml.Unmarshal(defaultClimberYAML, &cfg); err != nil {
		return DefaultClimberConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile reads one config file over the defaults.
func loadFile(path string) (ClimberConfig, error) {
	cfg := DefaultClimberConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".climber", "configs", filename)
}

// ApplyClimberPreset modifies the config based on a difficulty preset.
func ApplyClimberPreset(cfg *ClimberConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust run flow based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Player.CoyoteTicks = 6
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Player.CoyoteTicks = 2
	}
}
