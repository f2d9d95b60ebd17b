package app

import (
	"context"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/six78/arbiter-client/internal/config"
	"github.com/six78/arbiter-client/internal/transport"
	"github.com/six78/arbiter-client/pkg/game"
	"github.com/six78/arbiter-client/pkg/protocol"
)

type App struct {
	Game      *game.Game
	transport transport.Service
	logger    *zap.Logger

	ctx  context.Context
	quit context.CancelFunc
}

func NewApp(ctx context.Context, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, quit := context.WithCancel(ctx)

	return &App{
		logger: logger.Named("app"),
		ctx:    ctx,
		quit:   quit,
	}
}

// Initialize creates the transport and the game from the parsed settings.
func (a *App) Initialize() error {
	a.transport = transport.NewClient(config.Address(), config.DialTimeout(), a.logger)
	return a.initializeGame(a.transport)
}

func (a *App) initializeGame(service transport.Service) error {
	a.transport = service
	a.Game = game.NewGame([]game.Option{
		game.WithContext(a.ctx),
		game.WithTransport(service),
		game.WithClock(clockwork.NewRealClock()),
		game.WithLogger(a.logger),
		game.WithPlayerName(config.PlayerName()),
	})
	if a.Game == nil {
		return errors.New("failed to create game")
	}
	return nil
}

// Run plays the game until it ends. Canceling the context closes the
// connection so a pending read returns. The watcher has exited by the time
// Run returns.
func (a *App) Run() error {
	if a.Game == nil {
		return errors.New("app is not initialized")
	}

	finished := make(chan struct{})

	var group errgroup.Group
	group.Go(func() error {
		select {
		case <-a.ctx.Done():
			a.logger.Info("interrupted, closing connection")
			return a.transport.Close()
		case <-finished:
			return nil
		}
	})

	err := a.Game.Run()
	close(finished)
	closeErr := group.Wait()

	if err != nil && a.ctx.Err() != nil {
		return errors.Wrap(a.ctx.Err(), "game interrupted")
	}
	if closeErr != nil {
		a.logger.Warn("failed to close transport", zap.Error(closeErr))
	}
	return err
}

func (a *App) LeaderBoard() protocol.PublicLeaderBoard {
	if a.Game == nil {
		return nil
	}
	return a.Game.LeaderBoard()
}

func (a *App) Stop() {
	a.quit()
	if a.transport == nil {
		return
	}
	err := a.transport.Close()
	if err != nil {
		a.logger.Warn("failed to close transport", zap.Error(err))
	}
}
