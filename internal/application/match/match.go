// Package match runs one Stickman Champion match: the fixed per-tick order of
// input, physics, collision, combat and AI, the terminal rules, and the bridge
// to the asynchronous classifier and victory message services.
package match

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/younwookim/stickman/internal/application/state"
	"github.com/younwookim/stickman/internal/application/system"
	"github.com/younwookim/stickman/internal/domain/entity"
	"github.com/younwookim/stickman/internal/ecs"
	"github.com/younwookim/stickman/internal/infrastructure/config"
)

// ErrNoClassifier is returned by New when no behavior classifier is given
var ErrNoClassifier = errors.New("match: behavior classifier is required")

const (
	defaultMaxInFlight = 4
	defaultTimeout     = 3 * time.Second
)

// Deps are the collaborators of a match
type Deps struct {
	Classifier system.BehaviorClassifier
	Messenger  VictoryMessenger // optional; nil always yields the fallback message
	Logger     *zap.Logger      // optional

	MaxInFlight int64         // concurrent collaborator calls, default 4
	Timeout     time.Duration // per call, default 3s
}

// Result summarizes a finished match
type Result struct {
	PlayerName string
	Outcome    state.GameState // StateVictory or StateDefeat
	Score      int
	Ticks      uint64
}

// Match owns the world and systems of one match. All methods except Wait and
// Close must be called from a single goroutine (the frame loop).
type Match struct {
	cfg   *config.MatchConfig
	world *ecs.World
	arena *entity.Arena

	input      *system.InputSystem
	physics    *system.PhysicsSystem
	collision  *system.CollisionSystem
	combat     *system.CombatSystem
	ai         *system.AISystem
	dispatcher *system.Dispatcher
	runner     *system.Runner

	messenger VictoryMessenger
	victory   system.Pending[victoryResult]
	log       *zap.Logger

	state   state.GameState
	epoch   uint64
	tick    uint64
	score   int
	message string

	// OnFinish is called once when the match reaches Victory or Defeat
	OnFinish func(Result)
}

// New builds a match from configuration and starts it in the Playing state
func New(cfg *config.MatchConfig, deps Deps) (*Match, error) {
	if deps.Classifier == nil {
		return nil, ErrNoClassifier
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	maxInFlight := deps.MaxInFlight
	if maxInFlight <= 0 {
		maxInFlight = defaultMaxInFlight
	}
	timeout := deps.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	runner := system.NewRunner(maxInFlight, timeout)
	combat := system.NewCombatSystem(&cfg.Tuning.Combat)
	dispatcher := system.NewDispatcher(deps.Classifier, runner, log)

	m := &Match{
		cfg:        cfg,
		world:      ecs.NewWorld(),
		input:      system.NewInputSystem(&cfg.Tuning.Physics),
		physics:    system.NewPhysicsSystem(&cfg.Tuning.Physics),
		combat:     combat,
		ai:         system.NewAISystem(&cfg.Tuning, combat, dispatcher, log),
		dispatcher: dispatcher,
		runner:     runner,
		messenger:  deps.Messenger,
		log:        log,
	}
	if err := m.load(); err != nil {
		runner.Close()
		return nil, err
	}

	log.Info("match started",
		zap.String("player", m.world.Player().Name),
		zap.Int("enemies", m.world.CountEnemies()))
	return m, nil
}

// load (re)creates every entity from configuration
func (m *Match) load() error {
	arena, err := system.LoadStage(m.cfg, m.world)
	if err != nil {
		return fmt.Errorf("load match: %w", err)
	}
	m.arena = arena
	m.collision = system.NewCollisionSystem(arena)
	m.ai.SetEpoch(m.epoch)
	m.state = state.StatePlaying
	m.tick = 0
	m.score = 0
	m.message = ""
	return nil
}

// Update is the frame entry point: it collects finished async work, then
// advances the simulation by one tick.
func (m *Match) Update(intent system.Intent) {
	m.Poll()
	m.Tick(intent)
}

// Poll applies async results that arrived since the last call. It runs in
// every state so the victory message lands after the match has halted.
func (m *Match) Poll() {
	m.ai.ApplyResults(m.world)
	for _, r := range m.victory.Drain() {
		if r.epoch != m.epoch {
			continue
		}
		m.message = r.message
	}
}

// Tick advances the match by one tick. Only a Playing match advances. Tick
// does not collect async results; callers driving it directly call Poll first.
func (m *Match) Tick(intent system.Intent) {
	if m.state != state.StatePlaying {
		return
	}
	m.tick++

	player := m.world.Player()
	enemies := m.world.Enemies()

	m.input.UpdatePlayer(player, intent)
	if intent.Attack {
		m.combat.StartAttack(&player.Body)
	}
	m.physics.Integrate(&player.Body, intent.Jump)
	m.collision.Resolve(&player.Body)

	targets := make([]*entity.Body, 0, len(enemies))
	for _, e := range enemies {
		targets = append(targets, &e.Body)
	}
	for _, hit := range m.combat.Update(&player.Body, entity.SidePlayer, targets) {
		if hit.Defeated {
			m.score += m.cfg.Tuning.Combat.KillBonus
			m.log.Debug("enemy defeated", zap.Uint64("enemy", uint64(hit.Target)), zap.Int("score", m.score))
		}
	}

	playerTarget := []*entity.Body{&player.Body}
	for _, e := range enemies {
		if e.IsDefeated() {
			// Defeated bodies still fall and their stun still decays, but
			// they neither think nor strike.
			e.ClearAttack()
			e.VX = 0
			m.physics.Integrate(&e.Body, false)
			m.collision.Resolve(&e.Body)
			m.combat.Update(&e.Body, entity.SideEnemy, nil)
			continue
		}
		m.ai.Update(e, player)
		m.ai.Execute(e, player)
		m.physics.Integrate(&e.Body, false)
		m.collision.Resolve(&e.Body)
		m.combat.Update(&e.Body, entity.SideEnemy, playerTarget)
	}

	m.checkTerminal()
}

// checkTerminal decides the match. Defeat is checked first, so a tick in which
// both sides fall is a defeat.
func (m *Match) checkTerminal() {
	player := m.world.Player()
	switch {
	case player.IsDefeated():
		m.finish(state.StateDefeat)
	case m.world.AllEnemiesDefeated():
		m.finish(state.StateVictory)
		m.requestVictoryMessage(player.Name)
	}
}

func (m *Match) finish(outcome state.GameState) {
	m.state = outcome
	m.log.Info("match finished",
		zap.String("outcome", outcome.String()),
		zap.Int("score", m.score),
		zap.Uint64("ticks", m.tick))
	if m.OnFinish != nil {
		m.OnFinish(Result{
			PlayerName: m.world.Player().Name,
			Outcome:    outcome,
			Score:      m.score,
			Ticks:      m.tick,
		})
	}
}

// Reset starts a fresh match from configuration. Async results issued before
// the reset are discarded when they arrive.
func (m *Match) Reset() error {
	m.epoch++
	if err := m.load(); err != nil {
		return err
	}
	m.log.Info("match reset", zap.Uint64("epoch", m.epoch))
	return nil
}

// TogglePause switches between Playing and Paused. Finished matches stay finished.
func (m *Match) TogglePause() {
	switch m.state {
	case state.StatePlaying:
		m.state = state.StatePaused
	case state.StatePaused:
		m.state = state.StatePlaying
	}
}

// State returns the current match state
func (m *Match) State() state.GameState {
	return m.state
}

// Score returns the player's score
func (m *Match) Score() int {
	return m.score
}

// Ticks returns the number of ticks simulated since the last start or reset
func (m *Match) Ticks() uint64 {
	return m.tick
}

// VictoryMessage returns the congratulation, empty until it arrives
func (m *Match) VictoryMessage() string {
	return m.message
}

// Wait blocks until all in-flight collaborator calls have finished. Their
// results are applied on the next Poll or Tick.
func (m *Match) Wait() {
	m.runner.Wait()
}

// Close cancels in-flight collaborator calls
func (m *Match) Close() {
	m.runner.Close()
}
