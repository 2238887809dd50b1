package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/younwookim/stickman/internal/application/match"
)

// Arena size used until the terminal reports its dimensions
const (
	defaultCols = 100
	defaultRows = 30

	// Rows taken by the HUD, status line and frame border
	chromeRows = 4
	chromeCols = 2
)

// Model is the Bubble Tea model for running a match.
type Model struct {
	match    *match.Match
	keys     *KeyMapper
	log      *zap.Logger
	tickRate int
	frame    uint64 // frames since start; drives key hold windows
	cols     int
	rows     int
	quitting bool
	err      error
}

// NewModel creates a new Bubble Tea model for the given match.
func NewModel(m *match.Match, tickRate int, log *zap.Logger) Model {
	if tickRate <= 0 {
		tickRate = 60
	}
	if log == nil {
		log = zap.NewNop()
	}
	return Model{
		match:    m,
		keys:     &KeyMapper{},
		log:      log,
		tickRate: tickRate,
		cols:     defaultCols,
		rows:     defaultRows,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height), nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// resize fits the arena view inside a terminal of the given size
func (m Model) resize(width, height int) Model {
	m.cols = max(width-chromeCols, 10)
	m.rows = max(height-chromeRows, 5)
	return m
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg, m.frame) {
	case CommandQuit:
		m.quitting = true
		return m, tea.Quit
	case CommandPause:
		m.match.TogglePause()
		m.keys.Release()
	case CommandRestart:
		if m.match.State().IsTerminal() {
			if err := m.match.Reset(); err != nil {
				m.err = err
				m.log.Error("restart failed", zap.Error(err))
				return m, tea.Quit
			}
			m.keys.Release()
		}
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.match.Update(m.keys.Intent(m.frame))
	m.frame++
	return m, tickCmd(m.tickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.match.Snapshot()
	grid := Rasterize(snap, m.cols, m.rows)

	var sb strings.Builder
	sb.WriteString(hudStyle.Render(hudLine(snap)))
	sb.WriteRune('\n')
	sb.WriteString(frameStyle.Render(RenderGrid(grid)))
	sb.WriteRune('\n')
	sb.WriteString(statusLine(snap))
	return sb.String()
}

// Err returns the error that stopped the model, if any
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for the given match. A zero width or
// height keeps the default view until the terminal reports its size.
func Run(m *match.Match, tickRate, width, height int, log *zap.Logger) error {
	model := NewModel(m, tickRate, log)
	if width > 0 && height > 0 {
		model = model.resize(width, height)
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
