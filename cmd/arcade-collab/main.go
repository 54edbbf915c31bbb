// arcade-collab is a terminal arcade: a lobby of small games, each a scene
// in a shared state machine.
//
// Usage:
//
//	arcade-collab play [scene]     - Start the arcade (optionally at a scene)
//	arcade-collab list             - List registered scenes and games
//	arcade-collab scores <game>    - Show high scores for a game
//	arcade-collab stats            - Show play statistics for every game
//	arcade-collab serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default from config)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade-collab/scores.db)
//	--config <path>     - Use a custom config file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import scenes and games to register them
	_ "github.com/vovakirdan/arcade-collab/internal/games/asteroids"
	_ "github.com/vovakirdan/arcade-collab/internal/games/snake"
	_ "github.com/vovakirdan/arcade-collab/internal/games/spacewar"
	_ "github.com/vovakirdan/arcade-collab/internal/screens"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade-collab",
	Short: "Arcade Collab - a lobby of small games in your terminal",
	Long: `Arcade Collab is a terminal arcade. A splash and title screen lead to a
lobby where you pick a game; every game returns to the lobby when done.

Available commands:
  play     - Start the arcade
  list     - Show registered scenes and games
  scores   - View high scores
  stats    - View play statistics
  serve    - Start SSH server for remote play

Examples:
  arcade-collab play
  arcade-collab play snake
  arcade-collab play --straight lobby --show-fps
  arcade-collab scores snake
  arcade-collab serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade-collab/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}
