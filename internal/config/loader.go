package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory under $HOME holding configs and scores.
const AppDir = ".rocket"

// LoadRocket loads the rocket game configuration.
// Search order: customPath -> ~/.rocket/configs/rocket.yaml -> ./configs/rocket.yaml -> embedded default
//
// Files only need to set the keys they change; everything else keeps its
// default value. A custom path that cannot be read, parsed or validated is
// an error; the other locations are skipped when unusable.
func LoadRocket(customPath string) (RocketConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RocketConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parseRocket(data)
		if err != nil {
			return RocketConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("rocket.yaml"), filepath.Join("configs", "rocket.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseRocket(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseRocket(defaultRocketYAML)
	if err != nil {
		return DefaultRocketConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseRocket decodes YAML over the defaults and validates the result.
func parseRocket(data []byte) (RocketConfig, error) {
	cfg := DefaultRocketConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RocketConfig{}, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RocketConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}

// ApplyRocketPreset modifies the config based on a difficulty preset.
func ApplyRocketPreset(cfg *RocketConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Enemies.Speed *= 0.75
		cfg.Enemies.SpawnInterval *= 1.5
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Enemies.Speed *= 1.25
		cfg.Enemies.SpawnInterval *= 0.7
	}
}
