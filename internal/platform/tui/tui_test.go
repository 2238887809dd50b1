package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/stickman/internal/application/match"
	"github.com/younwookim/stickman/internal/application/state"
	"github.com/younwookim/stickman/internal/application/system"
	"github.com/younwookim/stickman/internal/domain/entity"
	"github.com/younwookim/stickman/internal/infrastructure/config"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapper_HoldWindows(t *testing.T) {
	km := &KeyMapper{}

	assert.Equal(t, CommandNone, km.MapKey(keyMsg("d"), 0))
	assert.Equal(t, CommandNone, km.MapKey(keyMsg("j"), 0))

	assert.Equal(t, system.Intent{Right: true, Attack: true}, km.Intent(0))
	assert.Equal(t, system.Intent{Right: true}, km.Intent(actionHoldTicks))
	assert.Equal(t, system.Intent{}, km.Intent(moveHoldTicks))

	// Pressing the opposite direction replaces the held one.
	km.MapKey(keyMsg("d"), 20)
	km.MapKey(keyMsg("left"), 21)
	assert.Equal(t, system.Intent{Left: true}, km.Intent(22))

	km.Release()
	assert.True(t, km.Intent(22).IsZero())
}

func TestKeyMapper_Commands(t *testing.T) {
	tests := []struct {
		key  string
		want Command
	}{
		{"q", CommandQuit},
		{"ctrl+c", CommandQuit},
		{"p", CommandPause},
		{"esc", CommandPause},
		{"r", CommandRestart},
		{"w", CommandNone},
		{" ", CommandNone},
		{"z", CommandNone},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			km := &KeyMapper{}
			assert.Equal(t, tt.want, km.MapKey(keyMsg(tt.key), 0))
		})
	}

	km := &KeyMapper{}
	km.MapKey(keyMsg(" "), 0)
	assert.True(t, km.Intent(0).Jump, "space jumps")
}

func createTestSnapshot() match.Snapshot {
	return match.Snapshot{
		State:       state.StatePlaying,
		ArenaWidth:  100,
		ArenaHeight: 50,
		Platforms:   []entity.Rect{{X: 0, Y: 40, W: 100, H: 10}},
		PlayerName:  "Chen Zhiyan",
		Player: match.FighterView{
			Bounds:    entity.Rect{X: 10, Y: 30, W: 10, H: 10},
			Health:    100,
			MaxHealth: 100,
		},
		Enemies: []match.EnemyView{
			{
				FighterView: match.FighterView{Bounds: entity.Rect{X: 60, Y: 30, W: 10, H: 10}, Health: 50, MaxHealth: 50},
				Behavior:    entity.BehaviorChase,
			},
			{
				FighterView: match.FighterView{Bounds: entity.Rect{X: 80, Y: 30, W: 10, H: 10}, Defeated: true},
				Behavior:    entity.BehaviorAttack,
			},
		},
	}
}

func TestRasterize(t *testing.T) {
	g := Rasterize(createTestSnapshot(), 10, 5)

	require.Equal(t, 10, g.Cols())
	require.Equal(t, 5, g.Rows())
	assert.Equal(t, "==========", g.Row(4))
	assert.Equal(t, " @    c x ", g.Row(3))
	assert.Equal(t, "          ", g.Row(0))
	assert.Equal(t, ColorPlayer, g.At(1, 3).Color)
	assert.Equal(t, ColorChase, g.At(6, 3).Color)
	assert.Equal(t, ColorDefeated, g.At(8, 3).Color)
}

func TestRasterize_AttackBoxOnTop(t *testing.T) {
	snap := createTestSnapshot()
	snap.Player.AttackBox = &entity.Rect{X: 20, Y: 32, W: 10, H: 5}

	g := Rasterize(snap, 10, 5)
	assert.Equal(t, Cell{glyphStrike, ColorStrike}, g.At(2, 3))
}

func TestRasterize_Degenerate(t *testing.T) {
	g := Rasterize(match.Snapshot{}, 0, 0)
	assert.Equal(t, 1, g.Cols())
	assert.Equal(t, " ", g.Row(0))
	assert.Equal(t, blank, g.At(-1, 7))
}

func TestRenderGrid(t *testing.T) {
	out := RenderGrid(Rasterize(createTestSnapshot(), 10, 5))
	assert.Equal(t, 5, len(strings.Split(out, "\n")))
	assert.Contains(t, out, "@")
}

func TestStatusLine(t *testing.T) {
	snap := createTestSnapshot()
	assert.Contains(t, statusLine(snap), "attack")

	snap.State = state.StateVictory
	assert.Contains(t, statusLine(snap), "...")
	snap.VictoryMessage = "Champion!"
	assert.Contains(t, statusLine(snap), "Champion!")

	snap.State = state.StateDefeat
	assert.Contains(t, statusLine(snap), "DEFEAT")

	assert.Contains(t, hudLine(snap), "Enemies 1/2")
}

type idleClassifier struct{}

func (idleClassifier) Classify(context.Context, entity.BehaviorQuery) (entity.BehaviorVerdict, error) {
	return entity.BehaviorVerdict{Behavior: "patrol"}, nil
}

func createTestModel(t *testing.T) Model {
	t.Helper()
	cfg, err := config.DefaultMatch()
	require.NoError(t, err)
	m, err := match.New(cfg, match.Deps{Classifier: idleClassifier{}})
	require.NoError(t, err)
	t.Cleanup(m.Close)
	return NewModel(m, 60, nil)
}

func TestModel_TickMovesPlayer(t *testing.T) {
	model := createTestModel(t)
	start := model.match.Snapshot().Player.Bounds.X

	next, _ := model.Update(keyMsg("d"))
	model = next.(Model)
	for i := 0; i < 3; i++ {
		next, cmd := model.Update(TickMsg{})
		require.NotNil(t, cmd, "ticking continues")
		model = next.(Model)
	}

	assert.Equal(t, uint64(3), model.match.Ticks())
	assert.Greater(t, model.match.Snapshot().Player.Bounds.X, start)
}

func TestModel_PauseAndQuit(t *testing.T) {
	model := createTestModel(t)

	next, _ := model.Update(keyMsg("p"))
	model = next.(Model)
	assert.Equal(t, state.StatePaused, model.match.State())

	next, _ = model.Update(TickMsg{})
	model = next.(Model)
	assert.Zero(t, model.match.Ticks())

	next, cmd := model.Update(keyMsg("q"))
	model = next.(Model)
	assert.NotNil(t, cmd)
	assert.Empty(t, model.View())
}

func TestModel_ResizeAndView(t *testing.T) {
	model := createTestModel(t)

	next, _ := model.Update(tea.WindowSizeMsg{Width: 62, Height: 24})
	model = next.(Model)
	assert.Equal(t, 60, model.cols)
	assert.Equal(t, 20, model.rows)

	view := model.View()
	assert.Contains(t, view, "Chen Zhiyan")
	assert.Contains(t, view, "@")
}
