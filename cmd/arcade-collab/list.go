package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-collab/internal/registry"
)

var flagGamesOnly bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered scenes and games",
	Long:  `Shows every scene registered in the arcade. Games appear in the lobby.`,
	Run:   runList,
}

func init() {
	listCmd.Flags().BoolVar(&flagGamesOnly, "games", false, "Only list games")
}

func runList(_ *cobra.Command, _ []string) {
	infos := registry.List()
	if flagGamesOnly {
		infos = registry.ListKind(registry.KindGame)
	}

	if len(infos) == 0 {
		fmt.Println("No scenes registered.")
		return
	}

	fmt.Println("Available scenes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, info := range infos {
		maxIDLen = max(maxIDLen, len(info.ID))
	}

	// Print header
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Kind", "Title")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "----", "-----")

	for _, info := range infos {
		fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, info.ID, info.Kind, info.Title)
	}

	fmt.Println()
	fmt.Println("Run 'arcade-collab play <id>' to start at a scene.")
}
