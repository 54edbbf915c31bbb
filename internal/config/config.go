// Package config provides YAML-based configuration loading and difficulty
// management for the arcade.
package config

import "time"

// Config is the complete arcade configuration.
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Input    InputConfig    `yaml:"input"`
	Splash   SplashConfig   `yaml:"splash"`
	Title    TitleConfig    `yaml:"title"`
	Lobby    LobbyConfig    `yaml:"lobby"`
	Credits  CreditsConfig  `yaml:"credits"`
	Scores   ScoresConfig   `yaml:"scores"`
	Snake    SnakeConfig    `yaml:"snake"`
	SpaceWar SpaceWarConfig `yaml:"space_war"`
}

// DisplayConfig defines the fixed render area and the main loop.
type DisplayConfig struct {
	Width      int    `yaml:"width"`  // Render width in cells
	Height     int    `yaml:"height"` // Render height in cells
	Caption    string `yaml:"caption"`
	TickRate   int    `yaml:"tick_rate"`
	StartScene string `yaml:"start_scene"`
	ShowFPS    bool   `yaml:"show_fps"`
}

// InputConfig tunes keyboard handling.
type InputConfig struct {
	// HoldWindow is how long a key counts as held after its last press.
	// Terminals send no key-up, so held state is inferred from auto-repeat.
	HoldWindow time.Duration `yaml:"hold_window"`
}

// SplashConfig defines the opening fade-in.
type SplashConfig struct {
	Timeout  time.Duration `yaml:"timeout"`
	FadeStep int           `yaml:"fade_step"` // Alpha added per update, out of 255
}

// TitleConfig defines the title screen prompt.
type TitleConfig struct {
	Prompt        string        `yaml:"prompt"`
	BlinkInterval time.Duration `yaml:"blink_interval"`
}

// LobbyConfig defines the game picker layout and page scrolling.
type LobbyConfig struct {
	PerPage        int           `yaml:"per_page"`
	Columns        int           `yaml:"columns"`
	ScrollDuration time.Duration `yaml:"scroll_duration"`
	Transition     string        `yaml:"transition"`
}

// CreditsConfig lists the contributors shown on the credits screen.
type CreditsConfig struct {
	Names  []string `yaml:"names"`
	Prompt string   `yaml:"prompt"`
}

// ScoresConfig defines the high score screen.
type ScoresConfig struct {
	Limit int `yaml:"limit"`
}

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Speed          float64          `yaml:"speed"` // Cells per second
	GrowthPerApple int              `yaml:"growth_per_apple"`
	DirectionQueue int              `yaml:"direction_queue"`
	CellWidth      int              `yaml:"cell_width"` // Terminal columns per board cell
	Difficulty     DifficultyConfig `yaml:"difficulty"`
}

// SpaceWarConfig contains all configuration for the space flight demo.
// Distances are in columns; a row counts as two columns of distance.
type SpaceWarConfig struct {
	WorldWidth   int     `yaml:"world_width"`  // World size in columns
	WorldHeight  int     `yaml:"world_height"` // World size in rows
	TopSpeed     float64 `yaml:"top_speed"`    // Columns per second
	AngularSpeed float64 `yaml:"angular_speed"`
	StartOffset  int     `yaml:"start_offset"` // Rows above the bottom edge
	MidParallax  float64 `yaml:"mid_parallax"`
	BaseParallax float64 `yaml:"base_parallax"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
