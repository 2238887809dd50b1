package system

import (
	"fmt"

	"github.com/younwookim/stickman/internal/domain/entity"
	"github.com/younwookim/stickman/internal/ecs"
	"github.com/younwookim/stickman/internal/infrastructure/config"
)

// LoadStage builds the arena and spawns the player and enemies into world.
// The world is cleared first; entity IDs keep increasing across loads.
func LoadStage(cfg *config.MatchConfig, world *ecs.World) (*entity.Arena, error) {
	arena, err := cfg.Arena.Build()
	if err != nil {
		return nil, fmt.Errorf("build arena: %w", err)
	}

	world.Clear()

	pc := cfg.Player
	if _, err := world.SpawnPlayer(pc.Name, pc.Spawn.X, pc.Spawn.Y, pc.Size.Width, pc.Size.Height, pc.MaxHealth); err != nil {
		return nil, fmt.Errorf("spawn player: %w", err)
	}

	for i, ec := range cfg.Enemies {
		_, err := world.SpawnEnemy(ec.Spawn.X, ec.Spawn.Y, ec.Size.Width, ec.Size.Height,
			ec.MaxHealth, ec.Patrol.Start, ec.Patrol.End, ec.AITimer)
		if err != nil {
			return nil, fmt.Errorf("spawn enemy %d: %w", i, err)
		}
	}

	return arena, nil
}
