package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/stickman/internal/application/game"
	"github.com/younwookim/stickman/internal/application/scene/playing"
)

var flagRecord string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a window",
	Long: `Open a window and start a match.

Controls:
  A/D or Left/Right   - Move
  Space/W/Up          - Jump
  J                   - Attack
  P/Esc               - Pause
  R                   - Restart (after the match ends)
  F5                  - Save the recording now

Examples:
  stickman play
  stickman play --record run.json
  stickman play --match ./arenas/tower`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (e.g., --record run.json)")
}

func runPlay(cmd *cobra.Command, args []string) {
	a, err := newApp(context.Background(), flagConfig, flagMatch, flagDBPath, appOptions{})
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

	scene := playing.New(m, playing.Options{
		Logger:     a.log,
		RecordPath: flagRecord,
	})
	w, h := scene.Layout(0, 0)
	tickRate := a.runtime.Display.TickRate
	g := game.New(scene, w, h, tickRate)
	defer g.Close()

	scale := a.runtime.Display.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(float64(w)*scale), int(float64(h)*scale))
	ebiten.SetWindowTitle("Stickman Champion")
	ebiten.SetTPS(tickRate)

	if err := ebiten.RunGame(g); err != nil {
		a.log.Sugar().Errorf("game stopped: %v", err)
	}
}
