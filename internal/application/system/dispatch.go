package system

import (
	"context"

	"go.uber.org/zap"

	"github.com/younwookim/stickman/internal/domain/entity"
)

// BehaviorClassifier decides what an enemy should do given what it observes.
// Implementations may be slow, fail, or return labels outside the known set.
type BehaviorClassifier interface {
	Classify(ctx context.Context, q entity.BehaviorQuery) (entity.BehaviorVerdict, error)
}

// Ticket identifies one classifier request. Epoch changes on every match reset,
// Seq increases per enemy with every request it issues.
type Ticket struct {
	Epoch   uint64
	EnemyID entity.EntityID
	Seq     uint64
}

// Classification is a sanitized classifier result waiting to be applied
type Classification struct {
	Ticket
	Behavior  entity.Behavior
	Reasoning string
	Fallback  bool // the classifier failed or answered with an unknown label
}

// Dispatcher sends classifier requests without blocking the tick and queues
// the sanitized results for the next drain.
type Dispatcher struct {
	classifier BehaviorClassifier
	runner     *Runner
	results    Pending[Classification]
	log        *zap.Logger
}

// NewDispatcher creates a dispatcher running requests on runner
func NewDispatcher(classifier BehaviorClassifier, runner *Runner, log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		classifier: classifier,
		runner:     runner,
		log:        log,
	}
}

// Request issues a classification and returns immediately
func (d *Dispatcher) Request(t Ticket, q entity.BehaviorQuery) {
	d.log.Debug("behavior request",
		zap.Uint64("enemy", uint64(t.EnemyID)),
		zap.Uint64("seq", t.Seq),
		zap.String("proximity", string(q.Proximity)),
		zap.String("action", string(q.PlayerAction)),
		zap.Int("health", q.EnemyHealth))

	d.runner.Go(func(ctx context.Context) {
		verdict, err := Guard(func() (entity.BehaviorVerdict, error) {
			return d.classifier.Classify(ctx, q)
		})
		d.results.Push(d.sanitize(t, verdict, err))
	})
}

// Drain returns every result received since the last drain
func (d *Dispatcher) Drain() []Classification {
	return d.results.Drain()
}

// sanitize maps failures and unknown labels to the patrol fallback
func (d *Dispatcher) sanitize(t Ticket, verdict entity.BehaviorVerdict, err error) Classification {
	if err != nil {
		d.log.Warn("behavior classifier failed, falling back to patrol",
			zap.Uint64("enemy", uint64(t.EnemyID)), zap.Error(err))
		return fallbackClassification(t)
	}
	behavior, ok := entity.ParseBehavior(verdict.Behavior)
	if !ok {
		d.log.Warn("behavior classifier returned unknown label, falling back to patrol",
			zap.Uint64("enemy", uint64(t.EnemyID)), zap.String("label", verdict.Behavior))
		return fallbackClassification(t)
	}
	return Classification{Ticket: t, Behavior: behavior, Reasoning: verdict.Reasoning}
}

func fallbackClassification(t Ticket) Classification {
	fb := entity.FallbackVerdict()
	return Classification{
		Ticket:    t,
		Behavior:  entity.BehaviorPatrol,
		Reasoning: fb.Reasoning,
		Fallback:  true,
	}
}
