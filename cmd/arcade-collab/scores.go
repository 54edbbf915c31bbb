package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagClear bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified game.

Examples:
  arcade-collab scores snake
  arcade-collab scores snake --limit 3
  arcade-collab scores snake --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the game")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]
	info := requireGame(gameID)

	store := mustOpenStore()
	defer store.Close()

	if flagClear {
		n, err := store.ClearGame(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared %d plays of %s.\n", n, info.Title)
		return
	}

	plays, err := store.TopPlays(gameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(plays) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade-collab play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-16s  %s\n", "Rank", "Score", "Player", "Date")
	fmt.Printf("  %-4s  %-10s  %-16s  %s\n", "----", "-----", "------", "----")

	for i, p := range plays {
		fmt.Printf("  %-4d  %-10d  %-16s  %s\n", i+1, p.Score, p.Player, p.PlayedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if st, err := store.Stats(gameID); err == nil {
		fmt.Printf("Best: %d  Plays: %d  Players: %d\n", st.Best, st.Plays, st.Players)
	}
}
