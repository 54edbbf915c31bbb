package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory under $HOME for config, scores and logs.
const AppDir = ".arcade-collab"

const configFile = "arcade.yaml"

// Load loads the arcade configuration.
// Search order: customPath -> ~/.arcade-collab/configs/arcade.yaml ->
// ./configs/arcade.yaml -> embedded default.
// Files are applied over the built-in defaults, so they only need to list
// the settings they change.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := UserPath("configs", configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultArcadeYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings the scenes cannot work with.
func (c Config) Validate() error {
	var errs []error
	if c.Display.Width < 40 || c.Display.Height < 16 {
		errs = append(errs, fmt.Errorf("display: %dx%d is smaller than 40x16", c.Display.Width, c.Display.Height))
	}
	if c.Display.TickRate <= 0 {
		errs = append(errs, errors.New("display: tick_rate must be positive"))
	}
	if c.Lobby.PerPage <= 0 || c.Lobby.Columns <= 0 {
		errs = append(errs, errors.New("lobby: per_page and columns must be positive"))
	}
	if c.Snake.Speed <= 0 || c.Snake.CellWidth <= 0 {
		errs = append(errs, errors.New("snake: speed and cell_width must be positive"))
	}
	if c.Snake.DirectionQueue <= 0 || c.Snake.GrowthPerApple <= 0 {
		errs = append(errs, errors.New("snake: direction_queue and growth_per_apple must be positive"))
	}
	if c.SpaceWar.WorldWidth < c.Display.Width || c.SpaceWar.WorldHeight < c.Display.Height {
		errs = append(errs, errors.New("space_war: world must be at least the display size"))
	}
	return errors.Join(errs...)
}

// UserPath returns a path under the user's app directory, or empty if home
// is unavailable.
func UserPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, AppDir}, elem...)...)
}

// ParsePreset validates a difficulty preset name. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Snake.Difficulty.Enabled = false
	default:
		cfg.Snake.Difficulty.Enabled = true
		cfg.Snake.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Snake.GrowthPerApple = 2
	case DifficultyHard:
		cfg.Snake.GrowthPerApple = 4
	}
}
