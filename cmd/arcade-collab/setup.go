package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-collab/internal/config"
	"github.com/vovakirdan/arcade-collab/internal/registry"
	"github.com/vovakirdan/arcade-collab/internal/storage"
)

// loadConfig reads the config and applies the global overrides.
func loadConfig(difficulty string) (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return nil, err
	}
	config.ApplyPreset(&cfg, preset)
	if flagFPS > 0 {
		cfg.Display.TickRate = flagFPS
	}
	return &cfg, nil
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	}), nil
}

// openLogFile opens ~/.arcade-collab/arcade.log for appending. Bubble Tea
// owns the terminal while playing, so local logs go to a file.
func openLogFile() (*os.File, error) {
	path := config.UserPath("arcade.log")
	if path == "" {
		return nil, fmt.Errorf("cannot resolve home directory for log file")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

// openScores opens the score store. The arcade still runs without one, so
// failures are logged and a nil store is returned.
func openScores(logger *log.Logger) (*storage.Store, registry.Scoreboard) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil, nil
	}
	return store, store
}

// mustOpenStore opens the score store for the score commands, exiting on
// failure.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	return store
}

// requireGame exits unless id names a registered game.
func requireGame(id string) registry.Info {
	info, ok := registry.Lookup(id)
	if !ok || info.Kind != registry.KindGame {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'arcade-collab list' to see available games.")
		os.Exit(1)
	}
	return info
}
