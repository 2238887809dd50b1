package system

import "github.com/younwookim/stickman/internal/domain/entity"

// CollisionSystem resolves bodies against the arena after integration
type CollisionSystem struct {
	arena *entity.Arena
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(arena *entity.Arena) *CollisionSystem {
	return &CollisionSystem{arena: arena}
}

// Resolve lands the body on platforms, clamps it to the arena, and defeats it
// when it falls out the bottom.
//
// Platforms are visited in arena order and every match snaps the body, so with
// overlapping candidates the last match wins. Each test runs against the state
// left by the previous snap.
func (s *CollisionSystem) Resolve(b *entity.Body) {
	b.Grounded = false

	for i := range s.arena.Platforms {
		p := &s.arena.Platforms[i]
		if landsOn(b, p.Rect) {
			b.Y = p.Y - b.Height
			b.VY = 0
			b.Grounded = true
		}
	}

	maxX := s.arena.Width - b.Width
	if b.X < 0 {
		b.X = 0
	} else if b.X > maxX {
		b.X = maxX
	}

	if b.Y > s.arena.Height {
		b.Health = 0
	}
}

// landsOn is the one-way platform test: horizontal overlap, and feet inside the
// band [top, top+height+vy) while not moving up. The band grows with vy so fast
// falls cannot tunnel through thin platforms.
func landsOn(b *entity.Body, p entity.Rect) bool {
	if b.VY < 0 {
		return false
	}
	if !(b.X < p.Right() && b.X+b.Width > p.X) {
		return false
	}
	bottom := b.Bottom()
	return bottom > p.Y && bottom < p.Y+p.H+b.VY
}
