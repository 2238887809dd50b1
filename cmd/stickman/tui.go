package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/younwookim/stickman/internal/platform/tui"
)

var flagLogFile string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play in the terminal",
	Long: `Start a match rendered with terminal characters.

Terminals do not report key releases, so a movement key keeps moving for a
moment after the last press. Hold it down to keep walking.

Controls:
  A/D or Left/Right   - Move
  Space/W/Up          - Jump
  J                   - Attack
  P/Esc               - Pause
  R                   - Restart (after the match ends)
  Q/Ctrl+C            - Quit

Legend:
  @ you   p/c/A/D enemy patrolling/chasing/attacking/defending   x defeated   * strike`,
	Args: cobra.NoArgs,
	Run:  runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.stickman/stickman.log", "Where to write logs while the terminal is in use")
}

func runTUI(cmd *cobra.Command, args []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: stickman tui needs an interactive terminal (try 'stickman sim')")
		os.Exit(1)
	}

	a, err := newApp(context.Background(), flagConfig, flagMatch, flagDBPath, appOptions{logFile: flagLogFile})
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

	// Get terminal size for the first frame
	var width, height int
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	if err := tui.Run(m, a.runtime.Display.TickRate, width, height, a.log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
