package game

import (
	"context"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/six78/arbiter-client/internal/transport"
	"github.com/six78/arbiter-client/pkg/challenge/hashcash"
)

type Option func(*Game)

func WithContext(ctx context.Context) Option {
	return func(g *Game) {
		g.ctx = ctx
	}
}

func WithTransport(t transport.Service) Option {
	return func(g *Game) {
		g.transport = t
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

func WithClock(c clockwork.Clock) Option {
	return func(g *Game) {
		g.clock = c
	}
}

// WithRandomSource sets where proof-of-work seeds are drawn from.
func WithRandomSource(s hashcash.Source) Option {
	return func(g *Game) {
		g.random = s
	}
}

func WithPlayerName(name string) Option {
	return func(g *Game) {
		g.config.PlayerName = name
	}
}
