package game

import (
	"context"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/six78/arbiter-client/internal/transport"
	"github.com/six78/arbiter-client/pkg/challenge/hashcash"
	"github.com/six78/arbiter-client/pkg/protocol"
)

var (
	ErrNoSolver = errors.New("no solver for challenge")
)

type State int

const (
	StateConnecting State = iota
	StateHandshaking
	StatePlaying
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateHandshaking:
		return "handshaking"
	case StatePlaying:
		return "playing"
	case StateTerminated:
		return "terminated"
	}
	return "unknown"
}

// Game plays one session against the arbiter. It owns the transport and
// handles one message at a time.
type Game struct {
	logger    *zap.Logger
	ctx       context.Context
	transport transport.Service
	clock     clockwork.Clock
	random    hashcash.Source
	config    configuration
	session   SessionID
	solvers   map[protocol.ChallengeKind]solver

	state       State
	nextTarget  string
	leaderBoard protocol.PublicLeaderBoard
	solved      int
}

func NewGame(opts []Option) *Game {
	game := &Game{
		config:  defaultConfig,
		session: GenerateSessionID(),
		state:   StateConnecting,
	}

	for _, opt := range opts {
		opt(game)
	}

	if game.ctx == nil {
		game.ctx = context.Background()
	}

	if game.logger == nil {
		game.logger = zap.NewNop()
	}

	if game.transport == nil {
		game.logger.Error("transport is required")
		return nil
	}

	if game.clock == nil {
		game.logger.Error("clock is required")
		return nil
	}

	if game.config.PlayerName == "" {
		game.logger.Error("player name is required")
		return nil
	}

	game.logger = game.logger.Named("game").With(zap.String("session", string(game.session)))
	game.solvers = game.defaultSolvers()

	return game
}

// Run connects, subscribes and answers challenges until the arbiter ends
// the game. Any transport or protocol failure ends the session and is
// returned; nothing is retried.
func (g *Game) Run() error {
	err := g.run()
	g.state = StateTerminated
	if err != nil {
		g.logger.Error("game terminated", zap.Error(err))
		return err
	}
	g.logger.Info("game over", zap.Int("solved", g.solved))
	return nil
}

func (g *Game) run() error {
	g.state = StateConnecting
	err := g.transport.Connect(g.ctx)
	if err != nil {
		return errors.Wrap(err, "failed to connect")
	}

	g.state = StateHandshaking
	err = g.send(protocol.Hello{})
	if err != nil {
		return errors.Wrap(err, "failed to send hello")
	}

	err = g.send(protocol.Subscribe{Name: g.config.PlayerName})
	if err != nil {
		return errors.Wrap(err, "failed to subscribe")
	}

	g.state = StatePlaying
	g.logger.Info("subscribed", zap.String("player", g.config.PlayerName))

	for {
		if err := g.ctx.Err(); err != nil {
			return err
		}

		payload, err := g.transport.Receive()
		if err != nil {
			return errors.Wrap(err, "failed to receive message")
		}

		message, err := protocol.Decode(payload)
		if err != nil {
			return errors.Wrap(err, "failed to decode message")
		}

		finished, err := g.handleMessage(message)
		if err != nil {
			return err
		}
		if finished {
			return nil
		}
	}
}

func (g *Game) send(message protocol.Message) error {
	payload, err := protocol.MarshalMessage(message)
	if err != nil {
		return err
	}

	g.logger.Debug("sending message",
		zap.String("type", string(message.Type())),
		zap.ByteString("payload", payload))

	return g.transport.Send(payload)
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Session() SessionID {
	return g.session
}

func (g *Game) PlayerName() string {
	return g.config.PlayerName
}

// NextTarget is the last player of the latest leader board, reported with
// every challenge result.
func (g *Game) NextTarget() string {
	return g.nextTarget
}

// LeaderBoard is the final board, set once the game is over.
func (g *Game) LeaderBoard() protocol.PublicLeaderBoard {
	return g.leaderBoard
}

func (g *Game) Solved() int {
	return g.solved
}
