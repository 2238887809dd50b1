package match

import (
	"context"

	"go.uber.org/zap"

	"github.com/younwookim/stickman/internal/application/system"
)

// FallbackVictoryMessage is shown when the message service fails
const FallbackVictoryMessage = "Congratulations! You are a champion!"

// VictoryMessenger writes a congratulation for the winning player
type VictoryMessenger interface {
	VictoryMessage(ctx context.Context, playerName string) (string, error)
}

type victoryResult struct {
	epoch   uint64
	message string
}

// requestVictoryMessage asks for the message off the tick goroutine. The
// answer is picked up by Poll.
func (m *Match) requestVictoryMessage(name string) {
	if m.messenger == nil {
		m.victory.Push(victoryResult{epoch: m.epoch, message: FallbackVictoryMessage})
		return
	}

	epoch := m.epoch
	m.runner.Go(func(ctx context.Context) {
		msg, err := system.Guard(func() (string, error) {
			return m.messenger.VictoryMessage(ctx, name)
		})
		if err != nil || msg == "" {
			m.log.Warn("victory message failed, using fallback", zap.Error(err))
			msg = FallbackVictoryMessage
		}
		m.victory.Push(victoryResult{epoch: epoch, message: msg})
	})
}
