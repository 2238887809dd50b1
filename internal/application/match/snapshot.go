package match

import (
	"github.com/younwookim/stickman/internal/application/state"
	"github.com/younwookim/stickman/internal/domain/entity"
)

// FighterView is a read-only copy of a body for renderers
type FighterView struct {
	ID        entity.EntityID
	Bounds    entity.Rect
	VX, VY    float64
	Health    int
	MaxHealth int
	Facing    entity.Facing
	Grounded  bool
	Attacking bool
	AttackBox *entity.Rect
	HitStun   int
	Defeated  bool
}

// EnemyView adds the AI state to a FighterView
type EnemyView struct {
	FighterView
	Behavior  entity.Behavior
	Reasoning string
}

// Snapshot is a deep copy of everything a frontend draws. Mutating it has no
// effect on the match.
type Snapshot struct {
	State          state.GameState
	Tick           uint64
	Score          int
	VictoryMessage string

	ArenaWidth  float64
	ArenaHeight float64
	Platforms   []entity.Rect

	PlayerName string
	Player     FighterView
	Enemies    []EnemyView
}

// Snapshot copies the current match state
func (m *Match) Snapshot() Snapshot {
	player := m.world.Player()
	s := Snapshot{
		State:          m.state,
		Tick:           m.tick,
		Score:          m.score,
		VictoryMessage: m.message,
		ArenaWidth:     m.arena.Width,
		ArenaHeight:    m.arena.Height,
		Platforms:      make([]entity.Rect, 0, len(m.arena.Platforms)),
		PlayerName:     player.Name,
		Player:         viewOf(&player.Body),
	}
	for _, p := range m.arena.Platforms {
		s.Platforms = append(s.Platforms, p.Rect)
	}
	for _, e := range m.world.Enemies() {
		s.Enemies = append(s.Enemies, EnemyView{
			FighterView: viewOf(&e.Body),
			Behavior:    e.Behavior,
			Reasoning:   e.Reasoning,
		})
	}
	return s
}

func viewOf(b *entity.Body) FighterView {
	v := FighterView{
		ID:        b.ID,
		Bounds:    b.Bounds(),
		VX:        b.VX,
		VY:        b.VY,
		Health:    b.Health,
		MaxHealth: b.MaxHealth,
		Facing:    b.Facing,
		Grounded:  b.Grounded,
		Attacking: b.Attacking,
		HitStun:   b.HitStun,
		Defeated:  b.IsDefeated(),
	}
	if b.AttackBox != nil {
		box := *b.AttackBox
		v.AttackBox = &box
	}
	return v
}
