package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/feldrin/starfall/internal/registry"
	"github.com/feldrin/starfall/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows a list of all registered modes with their archived run counts.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	// Per-mode stats are optional; the list still works without the DB
	stats := make(map[string]*storage.GameStats)
	if store, err := storage.Open(flagDBPath); err == nil {
		for _, g := range games {
			if gs, statsErr := store.GetGameStats(g.ID); statsErr == nil {
				stats[g.ID] = gs
			}
		}
		store.Close()
	}

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-20s  %6s  %6s\n", maxIDLen, "ID", "Title", "Runs", "Best")
	fmt.Printf("  %-*s  %-20s  %6s  %6s\n", maxIDLen, "--", "-----", "----", "----")

	// Print modes
	for _, g := range games {
		runs, best := "-", "-"
		if gs, ok := stats[g.ID]; ok && gs.RunsCount > 0 {
			runs = fmt.Sprintf("%d", gs.RunsCount)
			best = fmt.Sprintf("%d", gs.HighScore)
		}
		fmt.Printf("  %-*s  %-20s  %6s  %6s\n", maxIDLen, g.ID, g.Title, runs, best)
	}

	fmt.Println()
	fmt.Println("Run 'starfall play <id>' to play a mode.")
}
