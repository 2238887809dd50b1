package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/younwookim/stickman/internal/infrastructure/storage"
)

var (
	flagLimit  int
	flagRecent bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the results ledger",
	Long: `Display the best (or most recent) finished matches.

Examples:
  stickman scores
  stickman scores --recent --limit 20
  stickman scores --db ./results.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest matches instead of the best")
}

func runScores(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	a, err := newApp(ctx, flagConfig, flagMatch, flagDBPath, appOptions{needStore: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	var results []storage.MatchResult
	title := "Best Scores"
	if flagRecent {
		title = "Recent Matches"
		results, err = a.store.RecentResults(ctx, flagLimit)
	} else {
		results, err = a.store.BestScores(ctx, flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	printResults(os.Stdout, title, results)
}

func printResults(w io.Writer, title string, results []storage.MatchResult) {
	fmt.Fprintf(w, "%s - Stickman Champion\n\n", title)

	if len(results) == 0 {
		fmt.Fprintln(w, "No matches recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'stickman play' to set the first score!")
		return
	}

	fmt.Fprintf(w, "  %-4s  %-16s  %-7s  %-6s  %-6s  %s\n", "Rank", "Player", "Outcome", "Score", "Ticks", "Date")
	fmt.Fprintf(w, "  %-4s  %-16s  %-7s  %-6s  %-6s  %s\n", "----", "------", "-------", "-----", "-----", "----")
	for i, r := range results {
		fmt.Fprintf(w, "  %-4d  %-16s  %-7s  %-6d  %-6d  %s\n",
			i+1, r.PlayerName, r.Outcome, r.Score, r.Ticks, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
