package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-collab/internal/platform/tui"
	"github.com/vovakirdan/arcade-collab/internal/registry"
)

var (
	flagStraight   string
	flagShowFPS    bool
	flagProfile    string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [scene]",
	Short: "Start the arcade",
	Long: `Start the arcade at the configured start scene, or straight at the
given scene.

Controls:
  Arrows/WASD  - Move, steer, pick a game
  Enter        - Press the focused button
  Esc          - Back to the lobby
  F5           - Toggle FPS in the window title
  Ctrl+S       - Save a text screenshot
  Ctrl+C       - Quit

Difficulty options (Snake):
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade-collab play
  arcade-collab play snake --difficulty hard
  arcade-collab play --straight lobby
  arcade-collab play space_war --show-fps
  arcade-collab play --profile cpu.out`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagStraight, "straight", "", "Skip to this scene instead of the splash")
	playCmd.Flags().BoolVar(&flagShowFPS, "show-fps", false, "Show FPS in the window title")
	playCmd.Flags().StringVar(&flagProfile, "profile", "", "Write a CPU profile to this file")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	start := flagStraight
	if len(args) == 1 {
		start = args[0]
	}
	if start != "" && !registry.Exists(start) {
		return fmt.Errorf("unknown scene %q (run 'arcade-collab list' to see available scenes)", start)
	}

	cfg, err := loadConfig(flagDifficulty)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if flagShowFPS {
		cfg.Display.ShowFPS = true
	}

	logFile, err := openLogFile()
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	logger, err := newLogger(logFile, "arcade")
	if err != nil {
		return err
	}

	if flagProfile != "" {
		f, err := os.Create(flagProfile)
		if err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("start profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	store, scores := openScores(logger)
	if store != nil {
		defer store.Close()
	}

	env := registry.NewEnv(cfg, scores, logger, flagSeed)
	app, err := tui.NewApp(env, tui.WithStartScene(start))
	if err != nil {
		return err
	}

	logger.Info("arcade started", "scene", app.Scene(), "games", len(env.Games))
	if err := tui.Run(app); err != nil {
		logger.Error("arcade stopped", "error", err)
		return fmt.Errorf("run arcade: %w", err)
	}
	logger.Info("arcade stopped")
	return nil
}
