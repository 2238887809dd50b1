package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig wraps every tuning validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks tuning values. Geometry and entity shapes are checked by the
// domain constructors when the match is built.
func (c *MatchConfig) Validate() error {
	t := c.Tuning
	switch {
	case t.Combat.AttackDuration <= 0:
		return fmt.Errorf("%w: attack_duration must be positive", ErrInvalidConfig)
	case t.Combat.AttackWidth <= 0 || t.Combat.AttackHeight <= 0:
		return fmt.Errorf("%w: attack box must have positive size", ErrInvalidConfig)
	case t.Combat.HitStun < 0:
		return fmt.Errorf("%w: hit_stun must not be negative", ErrInvalidConfig)
	case t.Combat.PlayerDamage < 0 || t.Combat.EnemyDamage < 0:
		return fmt.Errorf("%w: damage must not be negative", ErrInvalidConfig)
	case t.AI.Interval <= 0:
		return fmt.Errorf("%w: ai interval must be positive", ErrInvalidConfig)
	case t.AI.NearDistance <= 0 || t.AI.FarDistance <= t.AI.NearDistance:
		return fmt.Errorf("%w: need 0 < near_distance < far_distance", ErrInvalidConfig)
	case t.Physics.PlayerSpeed < 0 || t.Physics.PatrolSpeed < 0 || t.Physics.ChaseSpeed < 0:
		return fmt.Errorf("%w: speeds must not be negative", ErrInvalidConfig)
	case c.Player.Name == "":
		return fmt.Errorf("%w: player name is required", ErrInvalidConfig)
	}
	return nil
}
