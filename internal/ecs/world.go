package ecs

import "github.com/younwookim/stickman/internal/domain/entity"

// World holds the fighters of one match and the next entity ID.
// IDs are never recycled, not even across Clear, so a result addressed to an
// entity from a previous match can never land on a new one.
type World struct {
	nextID entity.EntityID

	player  *entity.Player
	enemies map[entity.EntityID]*entity.Enemy
	order   []entity.EntityID // spawn order, the AI processing order
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:  1, // 0 is "nil"
		enemies: make(map[entity.EntityID]*entity.Enemy),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() entity.EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// SpawnPlayer creates the player and makes it the world's singleton
func (w *World) SpawnPlayer(name string, x, y, width, height float64, maxHealth int) (*entity.Player, error) {
	p := entity.NewPlayer(w.NewEntity(), name, x, y, width, height, maxHealth)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	w.player = p
	return p, nil
}

// SpawnEnemy creates an enemy and appends it to the processing order
func (w *World) SpawnEnemy(x, y, width, height float64, maxHealth int, patrolStart, patrolEnd float64, aiTimer int) (*entity.Enemy, error) {
	e := entity.NewEnemy(w.NewEntity(), x, y, width, height, maxHealth, patrolStart, patrolEnd, aiTimer)
	if err := e.Validate(); err != nil {
		return nil, err
	}
	w.enemies[e.ID] = e
	w.order = append(w.order, e.ID)
	return e, nil
}

// Player returns the player, or nil before SpawnPlayer
func (w *World) Player() *entity.Player {
	return w.player
}

// Enemy looks up an enemy by ID
func (w *World) Enemy(id entity.EntityID) (*entity.Enemy, bool) {
	e, ok := w.enemies[id]
	return e, ok
}

// Enemies returns all enemies in spawn order, defeated ones included
func (w *World) Enemies() []*entity.Enemy {
	out := make([]*entity.Enemy, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.enemies[id])
	}
	return out
}

// CountEnemies returns the number of enemies, defeated ones included
func (w *World) CountEnemies() int {
	return len(w.order)
}

// AllEnemiesDefeated reports whether every enemy has zero health.
// A world with no enemies counts as cleared.
func (w *World) AllEnemiesDefeated() bool {
	for _, id := range w.order {
		if !w.enemies[id].IsDefeated() {
			return false
		}
	}
	return true
}

// Clear removes every entity but keeps the ID counter
func (w *World) Clear() {
	w.player = nil
	w.enemies = make(map[entity.EntityID]*entity.Enemy)
	w.order = w.order[:0]
}
