package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.runner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
func LoadRunner(customPath string) (RunnerConfig, error) {
	cfg, err := loadYAML(customPath, "runner.yaml", defaultRunnerYAML, DefaultRunnerConfig())
	if err != nil {
		return cfg, err
	}
	if len(cfg.Archetypes) == 0 {
		cfg.Archetypes = DefaultRunnerConfig().Archetypes
	}
	return cfg, nil
}

// loadYAML resolves a config file by the common search order and decodes it
// over fallback. A custom path that cannot be read or parsed is an error;
// the other locations are skipped silently.
func loadYAML[T any](customPath, filename string, embedded []byte, fallback T) (T, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fallback, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := unmarshalOver(data, fallback)
		if err != nil {
			return fallback, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := unmarshalOver(data, fallback); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if cfg, err := unmarshalOver(data, fallback); err == nil {
			return cfg, nil
		}
	}

	cfg, err := unmarshalOver(embedded, fallback)
	if err != nil {
		return fallback, nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "configs", filename)
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	d := &cfg.Difficulty
	switch preset {
	case DifficultyFixed:
		d.Enabled = false
	case DifficultyEasy:
		d.Enabled = true
		d.InitialSpeed = 3
		d.RampStep = 0.25
	case DifficultyNormal:
		def := DefaultRunnerConfig().Difficulty
		d.Enabled = true
		d.InitialSpeed = def.InitialSpeed
		d.RampStep = def.RampStep
	case DifficultyHard:
		d.Enabled = true
		d.InitialSpeed = 5
		d.RampStep = 0.75
	}
}
