package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestVelocityStabilityWhenIdle tests that a standing body neither drifts nor
// accumulates velocity over many ticks
func TestVelocityStabilityWhenIdle(t *testing.T) {
	tuning := createTestTuning()
	input := NewInputSystem(&tuning.Physics)
	physics := NewPhysicsSystem(&tuning.Physics)
	collision := NewCollisionSystem(createTestArena())

	p := createTestPlayerForInput()

	for i := 0; i < 600; i++ {
		input.UpdatePlayer(p, Intent{})
		physics.Integrate(&p.Body, false)
		collision.Resolve(&p.Body)

		assert.True(t, p.Grounded, "tick %d", i)
		assert.Zero(t, p.VX, "tick %d", i)
		assert.Zero(t, p.VY, "tick %d", i)
		assert.Equal(t, 400.0, p.Y, "tick %d", i)
	}
	assert.Equal(t, 100.0, p.X)
}

// TestVelocityStabilityWhenWalking tests that holding a direction moves at a
// constant speed instead of accelerating
func TestVelocityStabilityWhenWalking(t *testing.T) {
	tuning := createTestTuning()
	input := NewInputSystem(&tuning.Physics)
	physics := NewPhysicsSystem(&tuning.Physics)
	collision := NewCollisionSystem(createTestArena())

	p := createTestPlayerForInput()

	for i := 0; i < 50; i++ {
		before := p.X
		input.UpdatePlayer(p, Intent{Right: true})
		physics.Integrate(&p.Body, false)
		collision.Resolve(&p.Body)
		assert.Equal(t, 5.0, p.X-before, "tick %d", i)
	}
	assert.Equal(t, 350.0, p.X)
}
