package entity

import (
	"fmt"
	"strings"
)

// Behavior is the high-level action an enemy is currently performing
type Behavior int

const (
	BehaviorPatrol Behavior = iota
	BehaviorChase
	BehaviorAttack
	BehaviorDefend
)

// String returns the wire label of the behavior
func (b Behavior) String() string {
	switch b {
	case BehaviorPatrol:
		return "patrol"
	case BehaviorChase:
		return "chase"
	case BehaviorAttack:
		return "attack"
	case BehaviorDefend:
		return "defend"
	default:
		return "unknown"
	}
}

// Valid reports whether b is one of the four known behaviors
func (b Behavior) Valid() bool {
	return b >= BehaviorPatrol && b <= BehaviorDefend
}

// ParseBehavior maps a classifier label to a Behavior.
// Unknown labels return BehaviorPatrol and false.
func ParseBehavior(label string) (Behavior, bool) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "patrol":
		return BehaviorPatrol, true
	case "chase":
		return BehaviorChase, true
	case "attack":
		return BehaviorAttack, true
	case "defend":
		return BehaviorDefend, true
	default:
		return BehaviorPatrol, false
	}
}

// Enemy is an AI-controlled fighter
type Enemy struct {
	Body

	Behavior    Behavior
	Reasoning   string // explanation attached to the last applied behavior
	PatrolStart float64
	PatrolEnd   float64
	PatrolDir   float64 // -1 or +1

	// AITimer counts down to the next classifier request
	AITimer int

	// RequestSeq is the sequence number of the latest issued request,
	// AppliedSeq the newest one whose result has been applied.
	RequestSeq uint64
	AppliedSeq uint64
}

// NewEnemy creates a patrolling enemy walking left first
func NewEnemy(id EntityID, x, y, w, h float64, maxHealth int, patrolStart, patrolEnd float64, aiTimer int) *Enemy {
	return &Enemy{
		Body:        NewBody(id, x, y, w, h, maxHealth),
		Behavior:    BehaviorPatrol,
		PatrolStart: patrolStart,
		PatrolEnd:   patrolEnd,
		PatrolDir:   -1,
		AITimer:     aiTimer,
	}
}

// Validate checks body and patrol range
func (e *Enemy) Validate() error {
	if err := e.Body.Validate(); err != nil {
		return err
	}
	if e.PatrolStart >= e.PatrolEnd {
		return fmt.Errorf("%w: enemy %d patrol range [%.1f, %.1f] is empty",
			ErrInvalidEntity, e.ID, e.PatrolStart, e.PatrolEnd)
	}
	if e.AITimer < 0 {
		return fmt.Errorf("%w: enemy %d has negative ai timer", ErrInvalidEntity, e.ID)
	}
	return nil
}
