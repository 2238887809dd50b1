package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/younwookim/stickman/internal/application/match"
	"github.com/younwookim/stickman/internal/application/state"
)

// colorStyles maps Color to lipgloss styles.
var colorStyles = map[Color]lipgloss.Style{
	ColorDefault:  lipgloss.NewStyle(),
	ColorPlatform: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	ColorPlayer:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	ColorPatrol:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	ColorChase:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	ColorAttack:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	ColorDefend:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	ColorDefeated: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	ColorStrike:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
}

var (
	hudStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	victoryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	defeatStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	pausedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	frameStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238"))
)

// RenderGrid converts a Grid to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderGrid(g *Grid) string {
	var sb strings.Builder
	sb.Grow(g.cols*g.rows*2 + g.rows)

	for y := 0; y < g.rows; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < g.cols {
			startColor := g.At(x, y).Color

			var run strings.Builder
			for x < g.cols {
				cell := g.At(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// hudLine summarizes the player's status
func hudLine(snap match.Snapshot) string {
	alive := 0
	for _, e := range snap.Enemies {
		if !e.Defeated {
			alive++
		}
	}
	return fmt.Sprintf("%s  HP %d/%d  Score %d  Enemies %d/%d  Tick %d",
		snap.PlayerName, snap.Player.Health, snap.Player.MaxHealth,
		snap.Score, alive, len(snap.Enemies), snap.Tick)
}

// statusLine describes the match state below the arena
func statusLine(snap match.Snapshot) string {
	switch snap.State {
	case state.StatePaused:
		return pausedStyle.Render("PAUSED - press p to resume")
	case state.StateVictory:
		msg := snap.VictoryMessage
		if msg == "" {
			msg = "..."
		}
		return victoryStyle.Render("VICTORY! "+msg) + helpStyle.Render("  (r to restart)")
	case state.StateDefeat:
		return defeatStyle.Render("DEFEAT") + helpStyle.Render("  (r to restart)")
	}
	return helpStyle.Render("a/d move  w/space jump  j attack  p pause  q quit")
}
