package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/feldrin/starfall/internal/registry"
	"github.com/feldrin/starfall/internal/storage"
)

var flagClearRuns bool

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the run archive for a mode",
	Long: `Display the top 10 archived runs for the specified mode (default: classic).

Each run records the final score along with shot accuracy, enemies
bypassed, and the highest difficulty the engine reached.

Examples:
  starfall scores
  starfall scores practice
  starfall scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearRuns, "clear", false, "Delete all archived runs for the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := "classic"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'starfall list' to see available modes.")
		os.Exit(1)
	}

	// Get mode title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating mode: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearRuns {
		if err := store.ClearRuns(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all archived runs for %s.\n", title)
		return
	}

	// Get top runs
	runs, err := store.TopRuns(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	// Display runs
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'starfall play %s' to get on the board!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-5s  %-8s  %s\n", "Rank", "Score", "Acc", "Peak", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-8s  %s\n", "----", "-----", "---", "----", "----")

	// Print runs
	for i, run := range runs {
		dateStr := run.CreatedAt.Format("2006-01-02 15:04")
		accStr := fmt.Sprintf("%d%%", int(run.Accuracy*100))
		fmt.Printf("  %-4d  %-10d  %-5s  %-8s  %s\n", i+1, run.Score, accStr, run.PeakDifficulty, dateStr)
	}

	// Show high score
	fmt.Println()
	highScore, err := store.HighScore(gameID)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
