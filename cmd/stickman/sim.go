package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/younwookim/stickman/internal/application/match"
	"github.com/younwookim/stickman/internal/application/replay"
	"github.com/younwookim/stickman/internal/application/state"
	"github.com/younwookim/stickman/internal/application/system"
)

var (
	flagScript   string
	flagMaxTicks int
	flagNoStore  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a match headless",
	Long: `Run a match without a window, feeding the player's input from a
script recorded with 'stickman play --record' (or written by hand). Without a
script the player stands still.

Each tick waits for the rules engine to answer before the next one, so runs
are slower than real time but do not depend on classifier latency.

Examples:
  stickman sim --script run.json
  stickman sim --ticks 600 --no-store`,
	Args: cobra.NoArgs,
	Run:  runSimCmd,
}

func init() {
	simCmd.Flags().StringVar(&flagScript, "script", "", "Input script JSON")
	simCmd.Flags().IntVar(&flagMaxTicks, "ticks", 3600, "Maximum ticks to simulate")
	simCmd.Flags().BoolVar(&flagNoStore, "no-store", false, "Do not record the result in the ledger")
}

func runSimCmd(cmd *cobra.Command, args []string) {
	var src system.InputSource = system.InputSourceFunc(func() system.Intent { return system.Intent{} })
	if flagScript != "" {
		script, err := replay.LoadScript(flagScript)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading script: %v\n", err)
			os.Exit(1)
		}
		r, err := replay.NewReplayer(*script)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading script: %v\n", err)
			os.Exit(1)
		}
		src = r
	}

	a, err := newApp(context.Background(), flagConfig, flagMatch, flagDBPath, appOptions{disableStore: flagNoStore})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	m, err := a.newMatch()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting match: %v\n", err)
		os.Exit(1)
	}
	defer m.Close()

	printReport(os.Stdout, simulate(m, src, flagMaxTicks))
}

// simulate runs m until it is decided or maxTicks have passed. Every tick
// waits for in-flight rules calls so their answers land on the next tick.
func simulate(m *match.Match, src system.InputSource, maxTicks int) match.Snapshot {
	for i := 0; i < maxTicks && m.State() == state.StatePlaying; i++ {
		m.Update(src.Next())
		m.Wait()
	}
	m.Wait()
	m.Poll()
	return m.Snapshot()
}

func printReport(w io.Writer, snap match.Snapshot) {
	outcome := snap.State.String()
	if !snap.State.IsTerminal() {
		outcome = "Undecided"
	}

	fmt.Fprintf(w, "Outcome:  %s\n", outcome)
	fmt.Fprintf(w, "Player:   %s (%d/%d HP)\n", snap.PlayerName, snap.Player.Health, snap.Player.MaxHealth)
	fmt.Fprintf(w, "Score:    %d\n", snap.Score)
	fmt.Fprintf(w, "Ticks:    %d\n", snap.Tick)
	if snap.VictoryMessage != "" {
		fmt.Fprintf(w, "Message:  %s\n", snap.VictoryMessage)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-4s  %-7s  %-7s  %s\n", "ID", "Health", "Mode", "Reasoning")
	for _, e := range snap.Enemies {
		fmt.Fprintf(w, "  %-4d  %-7d  %-7s  %s\n", e.ID, e.Health, e.Behavior, e.Reasoning)
	}
}
