package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/stickman/internal/domain/entity"
)

func TestCombatSystem_StartAttack(t *testing.T) {
	combat := NewCombatSystem(&createTestTuning().Combat)
	b := createGroundedBody(1, 100)

	require.True(t, combat.StartAttack(b))
	assert.True(t, b.Attacking)
	assert.Equal(t, 20, b.AttackTimer)
	require.NotNil(t, b.AttackBox)
	assert.Equal(t, entity.Rect{X: 130, Y: 410, W: 40, H: 30}, *b.AttackBox)

	b.AttackTimer = 7
	assert.False(t, combat.StartAttack(b), "ignored while already attacking")
	assert.Equal(t, 7, b.AttackTimer, "timer is not restarted")
}

func TestCombatSystem_AttackBoxFollowsFacing(t *testing.T) {
	combat := NewCombatSystem(&createTestTuning().Combat)
	b := createGroundedBody(1, 100)
	b.Facing = entity.FacingLeft

	combat.StartAttack(b)
	assert.Equal(t, 60.0, b.AttackBox.X, "box sits flush left of the body")

	b.X = 200
	b.Facing = entity.FacingRight
	combat.Update(b, entity.SidePlayer, nil)
	assert.Equal(t, 230.0, b.AttackBox.X, "box is recomputed each tick")
}

// Attacking is true exactly while the timer is positive, and the window lasts
// AttackDuration updates.
func TestCombatSystem_WindowLifecycle(t *testing.T) {
	combat := NewCombatSystem(&createTestTuning().Combat)
	b := createGroundedBody(1, 100)
	combat.StartAttack(b)

	for i := 1; i <= 20; i++ {
		combat.Update(b, entity.SidePlayer, nil)
		assert.Equal(t, b.AttackTimer > 0, b.Attacking, "update %d", i)
		assert.Equal(t, b.Attacking, b.AttackBox != nil, "update %d", i)
	}
	assert.False(t, b.Attacking)
	assert.Zero(t, b.AttackTimer)
	assert.Nil(t, b.AttackBox)
}

func TestCombatSystem_AsymmetricDamage(t *testing.T) {
	tests := []struct {
		name       string
		side       entity.Side
		wantDamage int
	}{
		{"player hits for 25", entity.SidePlayer, 25},
		{"enemy hits for 10", entity.SideEnemy, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			combat := NewCombatSystem(&createTestTuning().Combat)
			attacker := createGroundedBody(1, 100)
			target := createGroundedBody(2, 140)

			combat.StartAttack(attacker)
			hits := combat.Update(attacker, tt.side, []*entity.Body{target})

			require.Len(t, hits, 1)
			assert.Equal(t, tt.wantDamage, hits[0].Damage)
			assert.Equal(t, 100-tt.wantDamage, target.Health)
			assert.Equal(t, 30, target.HitStun)
		})
	}
}

// Holding an overlapping box for fewer ticks than the stun lands exactly one hit.
func TestCombatSystem_HitStunDebounce(t *testing.T) {
	combat := NewCombatSystem(&createTestTuning().Combat)
	attacker := createGroundedBody(1, 100)
	target := createGroundedBody(2, 140)

	combat.StartAttack(attacker)
	total := 0
	for i := 0; i < 20; i++ {
		total += len(combat.Update(attacker, entity.SidePlayer, []*entity.Body{target}))
		// the target's own combat update decays its stun
		combat.Update(target, entity.SideEnemy, nil)
	}

	assert.Equal(t, 1, total)
	assert.Equal(t, 75, target.Health)
}

// With a stun shorter than the window the same opponent can be hit again.
func TestCombatSystem_MultiHitWhenStunShorterThanWindow(t *testing.T) {
	tuning := createTestTuning()
	tuning.Combat.HitStun = 5
	combat := NewCombatSystem(&tuning.Combat)
	attacker := createGroundedBody(1, 100)
	target := createGroundedBody(2, 140)

	combat.StartAttack(attacker)
	total := 0
	for i := 0; i < 20; i++ {
		total += len(combat.Update(attacker, entity.SidePlayer, []*entity.Body{target}))
		combat.Update(target, entity.SideEnemy, nil)
	}

	assert.Greater(t, total, 1)
}

func TestCombatSystem_SkipsDefeatedAndOutOfRange(t *testing.T) {
	combat := NewCombatSystem(&createTestTuning().Combat)
	attacker := createGroundedBody(1, 100)
	defeated := createGroundedBody(2, 140)
	defeated.Health = 0
	far := createGroundedBody(3, 500)

	combat.StartAttack(attacker)
	hits := combat.Update(attacker, entity.SidePlayer, []*entity.Body{defeated, far})

	assert.Empty(t, hits)
	assert.Equal(t, 0, defeated.Health)
	assert.Equal(t, 100, far.Health)
}

func TestCombatSystem_HealthClampsAndReportsDefeat(t *testing.T) {
	combat := NewCombatSystem(&createTestTuning().Combat)
	attacker := createGroundedBody(1, 100)
	target := createGroundedBody(2, 140)
	target.Health = 10

	var events []Hit
	combat.OnHit = func(h Hit) { events = append(events, h) }

	combat.StartAttack(attacker)
	hits := combat.Update(attacker, entity.SidePlayer, []*entity.Body{target})

	require.Len(t, hits, 1)
	assert.True(t, hits[0].Defeated)
	assert.Equal(t, 0, target.Health)
	assert.Equal(t, hits, events)
}

func TestCombatSystem_HitStunDecays(t *testing.T) {
	combat := NewCombatSystem(&createTestTuning().Combat)
	b := createGroundedBody(1, 100)
	b.HitStun = 2

	combat.Update(b, entity.SidePlayer, nil)
	assert.Equal(t, 1, b.HitStun)
	combat.Update(b, entity.SidePlayer, nil)
	combat.Update(b, entity.SidePlayer, nil)
	assert.Equal(t, 0, b.HitStun, "never goes negative")
}
