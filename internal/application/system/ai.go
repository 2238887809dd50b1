package system

import (
	"go.uber.org/zap"

	"github.com/younwookim/stickman/internal/domain/entity"
	"github.com/younwookim/stickman/internal/ecs"
	"github.com/younwookim/stickman/internal/infrastructure/config"
)

// AISystem drives enemy behavior: it periodically asks the classifier what
// each enemy should do, applies answers at the start of a tick, and executes
// the current behavior every tick.
type AISystem struct {
	config     *config.TuningConfig
	combat     *CombatSystem
	dispatcher *Dispatcher
	log        *zap.Logger
	epoch      uint64
}

// NewAISystem creates a new AI system
func NewAISystem(cfg *config.TuningConfig, combat *CombatSystem, dispatcher *Dispatcher, log *zap.Logger) *AISystem {
	return &AISystem{
		config:     cfg,
		combat:     combat,
		dispatcher: dispatcher,
		log:        log,
	}
}

// SetEpoch starts a new match generation. Results issued under an older epoch
// are discarded when drained.
func (s *AISystem) SetEpoch(epoch uint64) {
	s.epoch = epoch
}

// Epoch returns the current match generation
func (s *AISystem) Epoch() uint64 {
	return s.epoch
}

// ApplyResults drains the classifier queue into the world. Results from an
// older epoch, for enemies that no longer exist or are defeated, or older than
// the newest applied one for that enemy are dropped. Returns the number applied.
func (s *AISystem) ApplyResults(world *ecs.World) int {
	applied := 0
	for _, r := range s.dispatcher.Drain() {
		if r.Epoch != s.epoch {
			s.log.Debug("discard stale behavior result",
				zap.Uint64("epoch", r.Epoch), zap.Uint64("current", s.epoch))
			continue
		}
		enemy, ok := world.Enemy(r.EnemyID)
		if !ok || enemy.IsDefeated() {
			continue
		}
		if r.Seq <= enemy.AppliedSeq {
			s.log.Debug("discard out-of-order behavior result",
				zap.Uint64("enemy", uint64(r.EnemyID)),
				zap.Uint64("seq", r.Seq), zap.Uint64("applied", enemy.AppliedSeq))
			continue
		}
		enemy.AppliedSeq = r.Seq
		enemy.Behavior = r.Behavior
		enemy.Reasoning = r.Reasoning
		applied++
	}
	return applied
}

// Update counts down the enemy's AI timer and issues a classifier request when
// it expires. The request never blocks; the current behavior stays in effect
// until an answer is applied.
func (s *AISystem) Update(enemy *entity.Enemy, player *entity.Player) {
	if enemy.AITimer > 0 {
		enemy.AITimer--
	}
	if enemy.AITimer > 0 {
		return
	}
	enemy.AITimer = s.config.AI.Interval

	enemy.RequestSeq++
	s.dispatcher.Request(Ticket{
		Epoch:   s.epoch,
		EnemyID: enemy.ID,
		Seq:     enemy.RequestSeq,
	}, entity.BehaviorQuery{
		Proximity:    entity.BucketProximity(player.X-enemy.X, s.config.AI.NearDistance, s.config.AI.FarDistance),
		PlayerAction: entity.ClassifyAction(&player.Body),
		EnemyHealth:  enemy.Health,
	})
}

// Execute sets the enemy's velocity (and possibly starts an attack) for the
// current behavior.
func (s *AISystem) Execute(enemy *entity.Enemy, player *entity.Player) {
	switch enemy.Behavior {
	case entity.BehaviorPatrol:
		s.patrol(enemy)
	case entity.BehaviorChase:
		s.chase(enemy, player)
	case entity.BehaviorAttack:
		s.attack(enemy, player)
	case entity.BehaviorDefend:
		enemy.VX = 0
	default:
		enemy.Behavior = entity.BehaviorPatrol
		s.patrol(enemy)
	}
}

// patrol walks between the patrol bounds, turning at each end. Once inside the
// range the step is shortened so x never leaves it.
func (s *AISystem) patrol(e *entity.Enemy) {
	if e.PatrolDir == 0 {
		e.PatrolDir = -1
	}
	if e.X <= e.PatrolStart {
		e.PatrolDir = 1
	} else if e.X >= e.PatrolEnd {
		e.PatrolDir = -1
	}

	vx := e.PatrolDir * s.config.Physics.PatrolSpeed
	if e.X >= e.PatrolStart && e.X <= e.PatrolEnd {
		next := e.X + vx
		if next < e.PatrolStart {
			vx = e.PatrolStart - e.X
		} else if next > e.PatrolEnd {
			vx = e.PatrolEnd - e.X
		}
	}
	e.VX = vx
	e.Face(e.PatrolDir)
}

func (s *AISystem) chase(e *entity.Enemy, player *entity.Player) {
	dx := player.X - e.X
	switch {
	case dx > 0:
		e.VX = s.config.Physics.ChaseSpeed
	case dx < 0:
		e.VX = -s.config.Physics.ChaseSpeed
	default:
		e.VX = 0
	}
	e.Face(dx)
}

func (s *AISystem) attack(e *entity.Enemy, player *entity.Player) {
	e.VX = 0
	if e.Attacking {
		return
	}
	dx := player.X - e.X
	if absFloat(dx) < s.config.AI.MeleeRange {
		e.Face(dx)
		s.combat.StartAttack(&e.Body)
	}
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
