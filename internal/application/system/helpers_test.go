package system

import (
	"context"
	"sync"

	"github.com/younwookim/stickman/internal/domain/entity"
	"github.com/younwookim/stickman/internal/infrastructure/config"
)

// createTestTuning returns the default match tuning
func createTestTuning() *config.TuningConfig {
	return &config.TuningConfig{
		Physics: config.PhysicsConfig{
			Gravity:     0.6,
			JumpImpulse: -13,
			PlayerSpeed: 5,
			PatrolSpeed: 1,
			ChaseSpeed:  2.5,
		},
		Combat: config.CombatConfig{
			AttackDuration: 20,
			AttackWidth:    40,
			AttackHeight:   30,
			HitStun:        30,
			PlayerDamage:   25,
			EnemyDamage:    10,
			KillBonus:      100,
		},
		AI: config.AIConfig{
			Interval:     120,
			MeleeRange:   60,
			NearDistance: 150,
			FarDistance:  400,
		},
	}
}

// createTestArena returns a 1000x600 arena with a ground platform at y=450
func createTestArena(extra ...entity.Rect) *entity.Arena {
	rects := append([]entity.Rect{{X: 0, Y: 450, W: 1000, H: 150}}, extra...)
	arena, err := entity.NewArena(1000, 600, rects)
	if err != nil {
		panic(err)
	}
	return arena
}

// createGroundedBody returns a 30x50 body standing on the test ground
func createGroundedBody(id entity.EntityID, x float64) *entity.Body {
	b := entity.NewBody(id, x, 400, 30, 50, 100)
	b.Grounded = true
	return &b
}

// stubClassifier answers every query with a fixed verdict or error
type stubClassifier struct {
	mu      sync.Mutex
	verdict entity.BehaviorVerdict
	err     error
	panics  bool
	queries []entity.BehaviorQuery
}

func (c *stubClassifier) Classify(_ context.Context, q entity.BehaviorQuery) (entity.BehaviorVerdict, error) {
	c.mu.Lock()
	c.queries = append(c.queries, q)
	c.mu.Unlock()
	if c.panics {
		panic("classifier exploded")
	}
	return c.verdict, c.err
}

func (c *stubClassifier) Queries() []entity.BehaviorQuery {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.BehaviorQuery(nil), c.queries...)
}

// blockingClassifier waits for its context to end
type blockingClassifier struct{}

func (blockingClassifier) Classify(ctx context.Context, _ entity.BehaviorQuery) (entity.BehaviorVerdict, error) {
	<-ctx.Done()
	return entity.BehaviorVerdict{}, ctx.Err()
}
