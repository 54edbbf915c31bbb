package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/arcade.yaml
var defaultArcadeYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Width:      80,
			Height:     24,
			Caption:    "Arcade Collab",
			TickRate:   60,
			StartScene: "snake_splash",
		},
		Input: InputConfig{
			HoldWindow: 250 * time.Millisecond,
		},
		Splash: SplashConfig{
			Timeout:  7 * time.Second,
			FadeStep: 2,
		},
		Title: TitleConfig{
			Prompt:        "[Please Insert Coin]",
			BlinkInterval: 350 * time.Millisecond,
		},
		Lobby: LobbyConfig{
			PerPage:        6,
			Columns:        3,
			ScrollDuration: 350 * time.Millisecond,
			Transition:     "in_out_quint",
		},
		Credits: CreditsConfig{
			Names:  []string{"/u/mekire", "/u/bitcraft", "/u/iminurnamez"},
			Prompt: "[Press Any Key]",
		},
		Scores: ScoresConfig{
			Limit: 10,
		},
		Snake: SnakeConfig{
			Speed:          8,
			GrowthPerApple: 3,
			DirectionQueue: 5,
			CellWidth:      2,
			Difficulty: DifficultyConfig{
				Enabled:      true,
				InitialLevel: 0.0,
				Progression: ProgressionConfig{
					Type:  "score",
					MaxAt: 40,
				},
				Scaling: ScalingConfig{
					SpeedMultiplier: 1.0,
				},
			},
		},
		SpaceWar: SpaceWarConfig{
			WorldWidth:   200,
			WorldHeight:  64,
			TopSpeed:     36,
			AngularSpeed: 200,
			StartOffset:  2,
			MidParallax:  0.5,
			BaseParallax: 0.1,
		},
	}
}
