package system

import (
	"github.com/younwookim/stickman/internal/domain/entity"
	"github.com/younwookim/stickman/internal/infrastructure/config"
)

// Hit describes one landed attack
type Hit struct {
	Attacker entity.EntityID
	Target   entity.EntityID
	Damage   int
	Defeated bool // this hit took the target to zero health
}

// CombatSystem runs the melee state machine: attack windows, hit boxes,
// damage and hit-stun debounce.
type CombatSystem struct {
	config *config.CombatConfig

	// Event callbacks
	OnHit func(hit Hit)
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(cfg *config.CombatConfig) *CombatSystem {
	return &CombatSystem{config: cfg}
}

// StartAttack opens an attack window. Ignored while one is already open.
func (s *CombatSystem) StartAttack(b *entity.Body) bool {
	if b.Attacking {
		return false
	}
	b.Attacking = true
	b.AttackTimer = s.config.AttackDuration
	box := s.attackBox(b)
	b.AttackBox = &box
	return true
}

// Update advances the attacker's combat timers by one tick and resolves its
// attack box against opponents. Damage depends on the attacker's side.
//
// Order: own hit-stun decays, the box follows the attacker, the window timer
// decrements, live opponents that are not stunned take damage and become
// stunned, and the window closes when the timer reaches zero. An opponent can
// be hit again inside one window once its stun wears off.
func (s *CombatSystem) Update(attacker *entity.Body, side entity.Side, opponents []*entity.Body) []Hit {
	if attacker.HitStun > 0 {
		attacker.HitStun--
	}
	if !attacker.Attacking {
		return nil
	}

	box := s.attackBox(attacker)
	attacker.AttackBox = &box
	attacker.AttackTimer--

	damage := s.config.PlayerDamage
	if side == entity.SideEnemy {
		damage = s.config.EnemyDamage
	}

	var hits []Hit
	for _, opp := range opponents {
		if opp.IsDefeated() || opp.HitStun > 0 {
			continue
		}
		if !box.Intersects(opp.Bounds()) {
			continue
		}
		hit := Hit{
			Attacker: attacker.ID,
			Target:   opp.ID,
			Damage:   damage,
			Defeated: opp.TakeDamage(damage),
		}
		opp.HitStun = s.config.HitStun
		hits = append(hits, hit)
		if s.OnHit != nil {
			s.OnHit(hit)
		}
	}

	if attacker.AttackTimer <= 0 {
		attacker.ClearAttack()
	}
	return hits
}

// attackBox places the box flush against the facing side, vertically centered
func (s *CombatSystem) attackBox(b *entity.Body) entity.Rect {
	w, h := s.config.AttackWidth, s.config.AttackHeight
	x := b.X + b.Width
	if b.Facing == entity.FacingLeft {
		x = b.X - w
	}
	return entity.Rect{X: x, Y: b.Y + (b.Height-h)/2, W: w, H: h}
}
