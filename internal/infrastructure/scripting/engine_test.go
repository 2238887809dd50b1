package scripting

import (
	"context"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/younwookim/stickman/internal/domain/entity"
)

func createTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine("", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(e.Close)
	return e
}

func TestEngine_Classify(t *testing.T) {
	tests := []struct {
		name      string
		query     entity.BehaviorQuery
		wantLabel string
	}{
		{"close and healthy attacks", entity.BehaviorQuery{Proximity: entity.ProximityClose, PlayerAction: entity.ActionIdle, EnemyHealth: 50}, "attack"},
		{"close, wounded and under attack defends", entity.BehaviorQuery{Proximity: entity.ProximityClose, PlayerAction: entity.ActionAttacking, EnemyHealth: 25}, "defend"},
		{"medium chases", entity.BehaviorQuery{Proximity: entity.ProximityMedium, PlayerAction: entity.ActionMoving, EnemyHealth: 50}, "chase"},
		{"far patrols", entity.BehaviorQuery{Proximity: entity.ProximityFar, PlayerAction: entity.ActionIdle, EnemyHealth: 50}, "patrol"},
		{"badly hurt and close defends", entity.BehaviorQuery{Proximity: entity.ProximityClose, PlayerAction: entity.ActionIdle, EnemyHealth: 10}, "defend"},
		{"badly hurt and far patrols", entity.BehaviorQuery{Proximity: entity.ProximityMedium, PlayerAction: entity.ActionIdle, EnemyHealth: 10}, "patrol"},
	}

	e := createTestEngine(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := e.Classify(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLabel, v.Behavior)
			assert.NotEmpty(t, v.Reasoning)

			_, ok := entity.ParseBehavior(v.Behavior)
			assert.True(t, ok, "built-in rules only answer known labels")
		})
	}
}

func TestEngine_VictoryMessage(t *testing.T) {
	e := createTestEngine(t)

	msg, err := e.VictoryMessage(context.Background(), "Chen Zhiyan")
	require.NoError(t, err)
	assert.Contains(t, msg, "Chen Zhiyan")
	assert.Contains(t, msg, "Stickman Champion")

	msg, err = e.VictoryMessage(context.Background(), "Ada")
	require.NoError(t, err)
	assert.Contains(t, msg, "Ada")

	msg, err = e.VictoryMessage(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "Congratulations! You are a champion!", msg)
}

func TestEngine_ConcurrentCalls(t *testing.T) {
	e := createTestEngine(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.Classify(context.Background(), entity.BehaviorQuery{Proximity: entity.ProximityFar, EnemyHealth: 50})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}

func TestEngine_ScriptErrors(t *testing.T) {
	t.Run("missing functions", func(t *testing.T) {
		e, err := NewEngineFS(fstest.MapFS{"empty.lua": {Data: []byte("x = 1")}}, zap.NewNop())
		require.NoError(t, err)
		defer e.Close()

		_, err = e.Classify(context.Background(), entity.BehaviorQuery{})
		assert.ErrorIs(t, err, ErrMissingFunction)
		_, err = e.VictoryMessage(context.Background(), "x")
		assert.ErrorIs(t, err, ErrMissingFunction)
	})

	t.Run("runtime error", func(t *testing.T) {
		src := `function classify_behavior(ctx) error("rules broke") end`
		e, err := NewEngineFS(fstest.MapFS{"bad.lua": {Data: []byte(src)}}, zap.NewNop())
		require.NoError(t, err)
		defer e.Close()

		_, err = e.Classify(context.Background(), entity.BehaviorQuery{})
		assert.ErrorContains(t, err, "rules broke")
	})

	t.Run("wrong return type", func(t *testing.T) {
		src := `function classify_behavior(ctx) return 42 end
function victory_message(name) return {} end`
		e, err := NewEngineFS(fstest.MapFS{"odd.lua": {Data: []byte(src)}}, zap.NewNop())
		require.NoError(t, err)
		defer e.Close()

		_, err = e.Classify(context.Background(), entity.BehaviorQuery{})
		assert.Error(t, err)
		_, err = e.VictoryMessage(context.Background(), "x")
		assert.Error(t, err)
	})

	t.Run("syntax error fails load", func(t *testing.T) {
		_, err := NewEngineFS(fstest.MapFS{"broken.lua": {Data: []byte("function (")}}, zap.NewNop())
		assert.Error(t, err)
	})

	t.Run("cancelled context stops a runaway script", func(t *testing.T) {
		src := `function classify_behavior(ctx) while true do end end`
		e, err := NewEngineFS(fstest.MapFS{"loop.lua": {Data: []byte(src)}}, zap.NewNop())
		require.NoError(t, err)
		defer e.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		_, err = e.Classify(ctx, entity.BehaviorQuery{})
		assert.Error(t, err)
	})
}

func TestNewEngine_FromDir(t *testing.T) {
	_, err := NewEngine(t.TempDir(), zap.NewNop())
	assert.NoError(t, err, "an empty directory loads nothing")
}
