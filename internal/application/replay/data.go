package replay

import (
	"errors"
	"fmt"

	"github.com/younwookim/stickman/internal/application/system"
)

// ScriptVersion is written into every recorded script
const ScriptVersion = "1.0"

// ErrInvalidScript is returned for scripts whose frames overlap or go backwards
var ErrInvalidScript = errors.New("invalid input script")

// FrameInput holds the controls for a run of ticks starting at tick F.
// Ticks between runs are idle.
type FrameInput struct {
	F int  `json:"f"`           // First tick
	N int  `json:"n,omitempty"` // Ticks held, 0 means 1
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	J bool `json:"j,omitempty"` // Jump
	A bool `json:"a,omitempty"` // Attack
}

// Ticks returns how many ticks the run covers
func (fi FrameInput) Ticks() int {
	if fi.N < 1 {
		return 1
	}
	return fi.N
}

// End returns the first tick after the run
func (fi FrameInput) End() int {
	return fi.F + fi.Ticks()
}

// Intent converts the run's controls to a player intent
func (fi FrameInput) Intent() system.Intent {
	return system.Intent{Left: fi.L, Right: fi.R, Jump: fi.J, Attack: fi.A}
}

func frameOf(tick int, intent system.Intent) FrameInput {
	return FrameInput{F: tick, L: intent.Left, R: intent.Right, J: intent.Jump, A: intent.Attack}
}

// Script is a recorded or hand-written sequence of player inputs
type Script struct {
	Version   string       `json:"version"`
	Player    string       `json:"player,omitempty"`
	StartTime string       `json:"startTime,omitempty"`
	Frames    []FrameInput `json:"frames"`
}

// Validate checks that runs start at non-negative ticks in ascending order
// and do not overlap
func (s *Script) Validate() error {
	next := 0
	for i, fi := range s.Frames {
		if fi.F < 0 || fi.N < 0 {
			return fmt.Errorf("%w: frame %d has negative tick or length", ErrInvalidScript, i)
		}
		if fi.F < next {
			return fmt.Errorf("%w: frame %d starts at tick %d before tick %d", ErrInvalidScript, i, fi.F, next)
		}
		next = fi.End()
	}
	return nil
}

// Length returns the number of ticks the script covers
func (s *Script) Length() int {
	if len(s.Frames) == 0 {
		return 0
	}
	return s.Frames[len(s.Frames)-1].End()
}
