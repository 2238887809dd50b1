package playing

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/stickman/internal/application/system"
)

// Controls reads the player's keys once per frame
type Controls interface {
	// Intent returns the held movement and combat controls
	Intent() system.Intent
	// PausePressed reports a pause toggle this frame
	PausePressed() bool
	// RestartPressed reports a restart request this frame
	RestartPressed() bool
	// SavePressed reports a request to save the recording this frame
	SavePressed() bool
}

// Keyboard maps ebiten key state to Controls.
// A/Left and D/Right move, Space/W/Up jump, J attacks.
type Keyboard struct{}

var _ Controls = Keyboard{}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// Intent implements Controls
func (Keyboard) Intent() system.Intent {
	return system.Intent{
		Left:   anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right:  anyPressed(ebiten.KeyD, ebiten.KeyArrowRight),
		Jump:   anyPressed(ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp),
		Attack: ebiten.IsKeyPressed(ebiten.KeyJ),
	}
}

// PausePressed implements Controls
func (Keyboard) PausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// RestartPressed implements Controls
func (Keyboard) RestartPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}

// SavePressed implements Controls
func (Keyboard) SavePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF5)
}
