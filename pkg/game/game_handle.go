package game

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/six78/arbiter-client/pkg/protocol"
)

// handleMessage reacts to one message and reports whether the game is over.
func (g *Game) handleMessage(message protocol.Message) (bool, error) {
	logger := g.logger.With(zap.String("type", string(message.Type())))

	switch m := message.(type) {
	case protocol.EndOfGame:
		g.leaderBoard = m.LeaderBoard
		logger.Info("end of game received", zap.Int("players", len(m.LeaderBoard)))
		return true, nil

	case protocol.PublicLeaderBoard:
		g.handleLeaderBoardMessage(m)

	case protocol.Challenge:
		return false, g.handleChallengeMessage(m)

	case protocol.Welcome:
		logger.Info("welcome received", zap.Int("version", m.Version))

	case protocol.SubscribeResult:
		if !m.OK() {
			logger.Warn("subscription rejected", zap.String("error", string(m.Err)))
		}

	case protocol.RoundSummary:
		logger.Debug("round summary received",
			zap.String("challenge", m.Challenge),
			zap.Any("chain", m.Chain))

	default:
		logger.Debug("message ignored")
	}

	return false, nil
}

func (g *Game) handleLeaderBoardMessage(board protocol.PublicLeaderBoard) {
	last, ok := board.Last()
	if !ok {
		g.logger.Warn("empty leader board received, next target unchanged")
		return
	}
	g.nextTarget = last.Name
	g.logger.Debug("next target updated", zap.String("nextTarget", g.nextTarget))
}

func (g *Game) handleChallengeMessage(message protocol.Challenge) error {
	if message.Input == nil {
		return errors.New("challenge without input")
	}

	kind := message.Input.Kind()
	solve, ok := g.solvers[kind]
	if !ok {
		return errors.Wrap(ErrNoSolver, string(kind))
	}

	logger := g.logger.With(zap.String("challenge", string(kind)))
	logger.Info("solving challenge")

	start := g.clock.Now()
	output, name, err := solve(message.Input)
	if err != nil {
		return errors.Wrapf(err, "failed to solve %s", kind)
	}

	logger.Info("challenge solved",
		zap.String("solver", name),
		zap.Duration("duration", g.clock.Since(start)),
		zap.Any("answer", output))

	result := protocol.ChallengeResult{
		Answer:     protocol.ChallengeAnswer{Output: output},
		NextTarget: g.nextTarget,
	}

	err = g.send(result)
	if err != nil {
		return errors.Wrap(err, "failed to send challenge result")
	}

	g.solved++
	return nil
}
