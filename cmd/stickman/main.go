// stickman is a 2D stick figure brawler: one player against a handful of
// enemies whose behavior is picked by a rules engine.
//
// Usage:
//
//	stickman play     - Play in a window
//	stickman tui      - Play in the terminal
//	stickman sim      - Run a match headless from an input script
//	stickman scores   - Show the results ledger
//
// Global flags:
//
//	--config <path>  - Runtime config TOML (logging, classifier, storage, display)
//	--match <dir>    - Directory holding match.yaml (default: built-in arena)
//	--db <path>      - Results database path (overrides the runtime config)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagMatch  string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stickman",
	Short: "Stickman Champion - a 2D melee brawler",
	Long: `Stickman Champion pits one stick figure against a group of enemies on a
single-screen arena of platforms. Defeat every enemy to become champion.

Available commands:
  play     - Play in a window
  tui      - Play in the terminal
  sim      - Run a match headless from an input script
  scores   - View the results ledger

Examples:
  stickman play
  stickman play --record run.json
  stickman tui --config ./stickman.toml
  stickman sim --script run.json --ticks 3600
  stickman scores --limit 5`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to runtime config TOML")
	rootCmd.PersistentFlags().StringVar(&flagMatch, "match", "", "Directory containing match.yaml (default: built-in)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (default from config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
}
