// starfall is a terminal shooter with an adaptive difficulty engine.
//
// Usage:
//
//	starfall                   - Start the interactive menu
//	starfall list              - List available modes
//	starfall play [mode]       - Play a mode (classic or practice)
//	starfall menu              - Start menu to pick a mode interactively
//	starfall serve             - Start SSH server for remote play
//	starfall scores [mode]     - Show the run archive for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.starfall/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/feldrin/starfall/internal/games/shooter"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starfall",
	Short: "Starfall - terminal shooter that adapts to how you play",
	Long: `Starfall is a terminal shooter where enemies fall from the top of the
screen and the difficulty engine retunes the pace from your recent play.

Shoot enemies before they cross the danger line. Every few seconds the
engine looks at your accuracy and bypasses and moves the difficulty up
or down. Let too many enemies through and the run ends.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View the run archive

Examples:
  starfall
  starfall play practice --difficulty hard
  starfall serve --ssh :2222
  starfall scores classic`,
	Args: cobra.NoArgs,
	Run:  runMenu, // Bare "starfall" drops into the menu
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.starfall/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
