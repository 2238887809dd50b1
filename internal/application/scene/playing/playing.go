// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"github.com/younwookim/stickman/internal/application/match"
	"github.com/younwookim/stickman/internal/application/replay"
	"github.com/younwookim/stickman/internal/application/scene"
	"github.com/younwookim/stickman/internal/application/state"
	"github.com/younwookim/stickman/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{26, 26, 46, 255}
	colorPlatform   = color.RGBA{80, 80, 100, 255}
	colorPlayer     = color.RGBA{100, 200, 100, 255}
	colorEnemy      = color.RGBA{200, 100, 100, 255}
	colorDefeated   = color.RGBA{70, 70, 70, 255}
	colorStunned    = color.RGBA{255, 255, 255, 255}
	colorAttackBox  = color.RGBA{255, 215, 0, 140}
	colorHealthBG   = color.RGBA{60, 60, 60, 255}
	colorHealthFG   = color.RGBA{100, 200, 100, 255}
	colorHealthLow  = color.RGBA{220, 60, 60, 255}
	colorPauseShade = color.RGBA{0, 0, 0, 128}
	colorVictory    = color.RGBA{0, 60, 0, 180}
	colorDefeat     = color.RGBA{100, 0, 0, 180}
)

// behaviorColors tints enemies by their current behavior
var behaviorColors = map[entity.Behavior]color.RGBA{
	entity.BehaviorPatrol: colorEnemy,
	entity.BehaviorChase:  {230, 140, 60, 255},
	entity.BehaviorAttack: {230, 60, 60, 255},
	entity.BehaviorDefend: {90, 140, 220, 255},
}

const healthBarHeight = 4.0

// Options configures a Playing scene
type Options struct {
	Controls   Controls    // defaults to Keyboard
	Logger     *zap.Logger // optional
	RecordPath string      // record intents to this file when set
}

// Playing is the main gameplay scene
type Playing struct {
	match    *match.Match
	controls Controls
	log      *zap.Logger
	screenW  int
	screenH  int

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

var _ scene.Scene = (*Playing)(nil)

// New creates a new Playing scene around a running match.
// If opts.RecordPath is not empty, gameplay will be recorded.
func New(m *match.Match, opts Options) *Playing {
	snap := m.Snapshot()
	p := &Playing{
		match:          m,
		controls:       opts.Controls,
		log:            opts.Logger,
		screenW:        int(snap.ArenaWidth),
		screenH:        int(snap.ArenaHeight),
		recordFilename: opts.RecordPath,
	}
	if p.controls == nil {
		p.controls = Keyboard{}
	}
	if p.log == nil {
		p.log = zap.NewNop()
	}

	if p.recordFilename != "" {
		p.recorder = replay.NewRecorder(snap.PlayerName)
		p.log.Info("recording enabled", zap.String("path", p.recordFilename))
	}
	return p
}

// Update advances the match by one frame (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	if p.controls.PausePressed() {
		p.match.TogglePause()
	}
	if p.controls.SavePressed() {
		p.saveRecording()
	}

	switch p.match.State() {
	case state.StatePlaying:
		intent := p.controls.Intent()
		if p.recorder != nil {
			p.recorder.RecordTick(intent)
		}
		p.match.Update(intent)
		if p.match.State().IsTerminal() {
			p.saveRecording()
		}
	case state.StateVictory, state.StateDefeat:
		if p.controls.RestartPressed() {
			return nil, p.restart()
		}
		p.match.Poll()
	default:
		p.match.Poll()
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) restart() error {
	if err := p.match.Reset(); err != nil {
		return fmt.Errorf("restart match: %w", err)
	}
	if p.recordFilename != "" {
		p.recorder = replay.NewRecorder(p.match.Snapshot().PlayerName)
		p.log.Info("recording restarted")
	}
	return nil
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.TickCount() == 0 {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.log.Warn("failed to save recording", zap.Error(err))
		return
	}
	p.log.Info("recording saved",
		zap.String("path", filename),
		zap.Int("ticks", p.recorder.TickCount()))
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	snap := p.match.Snapshot()

	screen.Fill(colorBG)

	for _, r := range snap.Platforms {
		ebitenutil.DrawRect(screen, r.X, r.Y, r.W, r.H, colorPlatform)
	}
	for _, e := range snap.Enemies {
		c, ok := behaviorColors[e.Behavior]
		if !ok {
			c = colorEnemy
		}
		drawFighter(screen, e.FighterView, c)
	}
	drawFighter(screen, snap.Player, colorPlayer)

	p.drawHUD(screen, snap)

	switch snap.State {
	case state.StatePaused:
		p.drawOverlay(screen, colorPauseShade, "PAUSED\n\nPress P or ESC to resume")
	case state.StateVictory:
		msg := snap.VictoryMessage
		if msg == "" {
			msg = "..."
		}
		p.drawOverlay(screen, colorVictory,
			fmt.Sprintf("VICTORY\n\n%s\n\nScore: %d\n\nPress R to restart", msg, snap.Score))
	case state.StateDefeat:
		p.drawOverlay(screen, colorDefeat,
			fmt.Sprintf("DEFEAT\n\nScore: %d\n\nPress R to restart", snap.Score))
	}
}

func drawFighter(screen *ebiten.Image, f match.FighterView, c color.RGBA) {
	b := f.Bounds
	switch {
	case f.Defeated:
		c = colorDefeated
	case f.HitStun > 0 && f.HitStun%6 < 3:
		c = colorStunned
	}

	// Stick figure: head, torso and a facing marker
	head := b.W * 0.6
	ebitenutil.DrawRect(screen, b.X+(b.W-head)/2, b.Y, head, head, c)
	ebitenutil.DrawRect(screen, b.X+b.W/2-2, b.Y+head, 4, b.H-head, c)
	ebitenutil.DrawLine(screen, b.X+b.W/2, b.Y+head+6, b.X+b.W/2+f.Facing.Sign()*b.W*0.6, b.Y+head+6, c)

	if f.AttackBox != nil {
		a := f.AttackBox
		ebitenutil.DrawRect(screen, a.X, a.Y, a.W, a.H, colorAttackBox)
	}

	if f.Defeated || f.MaxHealth <= 0 {
		return
	}
	ratio := float64(f.Health) / float64(f.MaxHealth)
	fg := colorHealthFG
	if ratio < 0.3 {
		fg = colorHealthLow
	}
	ebitenutil.DrawRect(screen, b.X, b.Y-healthBarHeight-3, b.W, healthBarHeight, colorHealthBG)
	ebitenutil.DrawRect(screen, b.X, b.Y-healthBarHeight-3, b.W*ratio, healthBarHeight, fg)
}

func (p *Playing) drawHUD(screen *ebiten.Image, snap match.Snapshot) {
	status := fmt.Sprintf("%s  HP %d/%d  Score %d  Tick %d",
		snap.PlayerName, snap.Player.Health, snap.Player.MaxHealth, snap.Score, snap.Tick)
	ebitenutil.DebugPrintAt(screen, status, 10, 20)

	// Enemy behavior readout
	for i, e := range snap.Enemies {
		line := fmt.Sprintf("#%d %-6s %3d HP  %s", e.ID, e.Behavior, e.Health, e.Reasoning)
		if e.Defeated {
			line = fmt.Sprintf("#%d down", e.ID)
		}
		ebitenutil.DebugPrintAt(screen, line, p.screenW-360, 20+i*16)
	}

	// Controls
	ebitenutil.DebugPrint(screen, "A/D: Move | Space/W: Jump | J: Attack | P/ESC: Pause | R: Restart")
}

func (p *Playing) drawOverlay(screen *ebiten.Image, shade color.RGBA, text string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), shade)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-120, p.screenH/2-40)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.log.Debug("entered playing scene")
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
