package playing

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/stickman/internal/application/match"
	"github.com/younwookim/stickman/internal/application/replay"
	"github.com/younwookim/stickman/internal/application/state"
	"github.com/younwookim/stickman/internal/application/system"
	"github.com/younwookim/stickman/internal/domain/entity"
	"github.com/younwookim/stickman/internal/infrastructure/config"
)

// fakeControls replays a fixed set of controls; the one-shot presses are
// cleared after each read
type fakeControls struct {
	intent  system.Intent
	pause   bool
	restart bool
	save    bool
}

func (f *fakeControls) Intent() system.Intent { return f.intent }

func (f *fakeControls) PausePressed() bool {
	v := f.pause
	f.pause = false
	return v
}

func (f *fakeControls) RestartPressed() bool {
	v := f.restart
	f.restart = false
	return v
}

func (f *fakeControls) SavePressed() bool {
	v := f.save
	f.save = false
	return v
}

type patrolClassifier struct{}

func (patrolClassifier) Classify(context.Context, entity.BehaviorQuery) (entity.BehaviorVerdict, error) {
	return entity.BehaviorVerdict{Behavior: "patrol"}, nil
}

// createTestMatch builds the default arena with a single 25 HP enemy standing
// in front of the player, so one attack wins
func createTestMatch(t *testing.T) *match.Match {
	t.Helper()
	cfg, err := config.DefaultMatch()
	require.NoError(t, err)
	cfg.Enemies = []config.EnemySpawnConfig{{
		Spawn:     config.PositionConfig{X: 140, Y: 400},
		Size:      config.SizeConfig{Width: 30, Height: 50},
		MaxHealth: 25,
		Patrol:    config.PatrolConfig{Start: 130, End: 160},
		AITimer:   1000,
	}}

	m, err := match.New(cfg, match.Deps{Classifier: patrolClassifier{}})
	require.NoError(t, err)
	t.Cleanup(m.Close)
	return m
}

func TestNew(t *testing.T) {
	p := New(createTestMatch(t), Options{Controls: &fakeControls{}})

	w, h := p.Layout(0, 0)
	assert.Equal(t, 1000, w, "screen matches the arena")
	assert.Equal(t, 600, h)
	assert.Nil(t, p.recorder, "no recorder without a path")
}

func TestPlaying_UpdateAdvancesMatch(t *testing.T) {
	m := createTestMatch(t)
	controls := &fakeControls{intent: system.Intent{Left: true}}
	p := New(m, Options{Controls: controls})

	for i := 0; i < 3; i++ {
		next, err := p.Update(1.0 / 60)
		require.NoError(t, err)
		assert.Nil(t, next)
	}

	assert.Equal(t, uint64(3), m.Ticks())
	assert.Less(t, m.Snapshot().Player.Bounds.X, 100.0)
}

func TestPlaying_Pause(t *testing.T) {
	m := createTestMatch(t)
	controls := &fakeControls{pause: true}
	p := New(m, Options{Controls: controls})

	_, err := p.Update(0)
	require.NoError(t, err)
	assert.Equal(t, state.StatePaused, m.State())
	assert.Zero(t, m.Ticks())

	controls.pause = true
	_, err = p.Update(0)
	require.NoError(t, err)
	assert.Equal(t, state.StatePlaying, m.State())
	assert.Equal(t, uint64(1), m.Ticks())
}

func TestPlaying_VictoryAndRestart(t *testing.T) {
	m := createTestMatch(t)
	controls := &fakeControls{intent: system.Intent{Attack: true}}
	p := New(m, Options{Controls: controls})

	_, err := p.Update(0)
	require.NoError(t, err)
	require.Equal(t, state.StateVictory, m.State())

	// Held keys do nothing once the match is decided.
	_, err = p.Update(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), m.Ticks())

	m.Wait()
	_, err = p.Update(0)
	require.NoError(t, err)
	assert.Equal(t, match.FallbackVictoryMessage, m.VictoryMessage())

	controls.restart = true
	_, err = p.Update(0)
	require.NoError(t, err)
	assert.Equal(t, state.StatePlaying, m.State())
	assert.Zero(t, m.Ticks())
}

func TestPlaying_RestartIgnoredWhilePlaying(t *testing.T) {
	m := createTestMatch(t)
	controls := &fakeControls{intent: system.Intent{Right: true}}
	p := New(m, Options{Controls: controls})

	_, _ = p.Update(0)
	controls.restart = true
	_, _ = p.Update(0)

	assert.Equal(t, uint64(2), m.Ticks())
}

func TestPlaying_RecordsUntilMatchEnds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	m := createTestMatch(t)
	controls := &fakeControls{intent: system.Intent{Right: true}}
	p := New(m, Options{Controls: controls, RecordPath: path})

	_, _ = p.Update(0)
	_, _ = p.Update(0)
	controls.intent = system.Intent{Attack: true}
	_, _ = p.Update(0)
	require.True(t, m.State().IsTerminal())

	// The finishing tick saves the recording.
	_, err := os.Stat(path)
	require.NoError(t, err)

	script, err := replay.LoadScript(path)
	require.NoError(t, err)
	assert.Equal(t, "Chen Zhiyan", script.Player)
	assert.Equal(t, []replay.FrameInput{
		{F: 0, N: 2, R: true},
		{F: 2, A: true},
	}, script.Frames)

	controls.restart = true
	_, _ = p.Update(0)
	assert.Zero(t, p.recorder.TickCount(), "restart starts a fresh recording")
}
