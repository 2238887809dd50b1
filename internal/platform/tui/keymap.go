package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/younwookim/stickman/internal/application/system"
)

// Terminals report key presses (and auto-repeats) but never releases, so a
// press holds its control for a short window of ticks.
const (
	moveHoldTicks   = 10
	actionHoldTicks = 3
)

// Command is a non-gameplay key
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandPause
	CommandRestart
)

type control int

const (
	controlLeft control = iota
	controlRight
	controlJump
	controlAttack
	controlCount
)

// KeyMapper translates Bubble Tea key messages to held controls and commands.
type KeyMapper struct {
	heldUntil [controlCount]uint64
}

// MapKey records a key press at tick now and returns the command it maps to,
// if any.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, now uint64) Command {
	switch msg.String() {
	case "ctrl+c", "q":
		return CommandQuit
	case "p", "esc":
		return CommandPause
	case "r":
		return CommandRestart
	case "a", "left":
		km.hold(controlLeft, now, moveHoldTicks)
		km.heldUntil[controlRight] = 0
	case "d", "right":
		km.hold(controlRight, now, moveHoldTicks)
		km.heldUntil[controlLeft] = 0
	case " ", "space", "w", "up":
		km.hold(controlJump, now, actionHoldTicks)
	case "j":
		km.hold(controlAttack, now, actionHoldTicks)
	}
	return CommandNone
}

func (km *KeyMapper) hold(c control, now, ticks uint64) {
	km.heldUntil[c] = now + ticks
}

// Intent returns the controls still held at tick now
func (km *KeyMapper) Intent(now uint64) system.Intent {
	return system.Intent{
		Left:   km.heldUntil[controlLeft] > now,
		Right:  km.heldUntil[controlRight] > now,
		Jump:   km.heldUntil[controlJump] > now,
		Attack: km.heldUntil[controlAttack] > now,
	}
}

// Release drops every held control
func (km *KeyMapper) Release() {
	km.heldUntil = [controlCount]uint64{}
}
