package state

// GameState represents the current state of a match
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateVictory
	StateDefeat
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateVictory:
		return "Victory"
	case StateDefeat:
		return "Defeat"
	default:
		return "Unknown"
	}
}

// IsTerminal returns true once the match has been decided
func (s GameState) IsTerminal() bool {
	return s == StateVictory || s == StateDefeat
}
