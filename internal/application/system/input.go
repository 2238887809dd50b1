package system

import (
	"github.com/younwookim/stickman/internal/domain/entity"
	"github.com/younwookim/stickman/internal/infrastructure/config"
)

// InputSystem turns player intent into horizontal velocity and facing
type InputSystem struct {
	config *config.PhysicsConfig
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg *config.PhysicsConfig) *InputSystem {
	return &InputSystem{config: cfg}
}

// UpdatePlayer overwrites vx from the held direction. Velocity never accumulates.
func (s *InputSystem) UpdatePlayer(player *entity.Player, intent Intent) {
	dir := intent.Direction()
	player.VX = dir * s.config.PlayerSpeed
	player.Face(dir)
}
