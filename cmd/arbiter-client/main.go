package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/six78/arbiter-client/internal/app"
	"github.com/six78/arbiter-client/internal/config"
	"github.com/six78/arbiter-client/internal/version"
	"github.com/six78/arbiter-client/internal/view"
)

var rootCmd = &cobra.Command{
	Use:           "arbiter-client [flags] <address> <name>",
	Short:         "Plays challenge rounds against an arbiter server",
	Version:       version.Version(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	config.RegisterFlags(rootCmd.Flags())
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if !config.SetArguments(args) {
		return nil
	}

	err := config.SetupLogger()
	if err != nil {
		return err
	}
	defer func() { _ = config.Logger.Sync() }()

	config.Logger.Info("starting",
		zap.String("version", version.Version()),
		zap.String("address", config.Address()),
		zap.String("player", config.PlayerName()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := app.NewApp(ctx, config.Logger)
	defer a.Stop()

	err = a.Initialize()
	if err != nil {
		return err
	}

	err = a.Run()
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), view.RenderLeaderBoard(a.LeaderBoard(), config.PlayerName()))
	return nil
}
