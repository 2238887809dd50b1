package system

import (
	"github.com/younwookim/stickman/internal/domain/entity"
	"github.com/younwookim/stickman/internal/infrastructure/config"
)

// PhysicsSystem integrates gravity, jumps and velocity once per tick
type PhysicsSystem struct {
	config *config.PhysicsConfig
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig) *PhysicsSystem {
	return &PhysicsSystem{config: cfg}
}

// Integrate advances one body by one tick.
// Gravity is applied unconditionally; a jump from the ground then replaces vy
// with the impulse, so the jumping tick ends with vy equal to the impulse.
// There is no terminal velocity.
func (s *PhysicsSystem) Integrate(b *entity.Body, jump bool) {
	b.VY += s.config.Gravity

	if jump && b.Grounded {
		b.VY = s.config.JumpImpulse
		b.Grounded = false
	}

	b.X += b.VX
	b.Y += b.VY
}
