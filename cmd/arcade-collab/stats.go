package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-collab/internal/registry"
	"github.com/vovakirdan/arcade-collab/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show play statistics for every game",
	Long:  `Display the number of plays, best and average score, and distinct players for each game.`,
	Args:  cobra.NoArgs,
	Run:   runStats,
}

func runStats(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	all, err := store.AllStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(statsTable(registry.ListKind(registry.KindGame), all))
}

// statsTable lists every game, including ones never played.
func statsTable(games []registry.Info, all map[string]*storage.GameStats) string {
	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Game", "Plays", "Best", "Average", "Players", "Last played").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, g := range games {
		st, ok := all[g.ID]
		if !ok {
			t.Row(g.Title, "0", "-", "-", "0", "never")
			continue
		}
		last := "never"
		if !st.LastPlayed.IsZero() {
			last = st.LastPlayed.Format("2006-01-02 15:04")
		}
		t.Row(g.Title,
			strconv.Itoa(st.Plays),
			strconv.Itoa(st.Best),
			strconv.FormatFloat(st.Average, 'f', 1, 64),
			strconv.Itoa(st.Players),
			last,
		)
	}
	return t.String()
}
