// internal/cli/root.go

// Package cli provides the command-line interface for homewatch.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tamzrod/homewatch/internal/api"
	"github.com/tamzrod/homewatch/internal/config"
	"github.com/tamzrod/homewatch/internal/notify"
	"github.com/tamzrod/homewatch/internal/notify/telegram"
	"github.com/tamzrod/homewatch/internal/watcher"
)

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath string
		once    bool
		verbose bool
		quiet   bool
	)

	cmd := &cobra.Command{
		Use:   "homewatch",
		Short: "Watch homework review status and alert via Telegram",
		Long: `homewatch polls the homework status API on a fixed interval and
sends a Telegram message when the review status of a submitted work
changes. Transient failures are retried forever; each distinct failure
condition is alerted once, not once per cycle.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cfgPath, once, verbose, quiet)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	cmd.Flags().BoolVar(&once, "once", false, "run a single cycle and exit")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "warnings and errors only")

	cmd.AddCommand(newConfigCmd())

	return cmd
}

func run(ctx context.Context, cfgPath string, once, verbose, quiet bool) error {
	// --------------------
	// Load + validate config (missing secrets abort here, before the loop)
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	logger, logCloser := initLogger(cfg.Log, verbose, quiet)
	if logCloser != nil {
		defer logCloser.Close()
	}

	// --------------------
	// Build collaborators
	// --------------------

	apiClient, err := api.New(api.Config{
		Endpoint: cfg.API.Endpoint,
		Token:    cfg.API.Token,
		Timeout:  cfg.API.Timeout,
	})
	if err != nil {
		return fmt.Errorf("build api client: %w", err)
	}

	tg, err := telegram.New(telegram.Config{
		Token:   cfg.Telegram.Token,
		Timeout: cfg.Telegram.Timeout,
	})
	if err != nil {
		return fmt.Errorf("build telegram client: %w", err)
	}

	notifier := notify.New(tg, cfg.Telegram.ChatID, logger)

	w, err := watcher.New(
		watcher.Config{
			Interval:         cfg.Poll.Interval,
			InitialWatermark: time.Now().Add(-cfg.Poll.Lookback).Unix(),
		},
		apiClient,
		notifier,
		logger,
	)
	if err != nil {
		return fmt.Errorf("build watcher: %w", err)
	}

	// --------------------
	// Run
	// --------------------

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if once {
		w.RunCycle(ctx)
		return nil
	}

	logger.Info().
		Dur("interval", cfg.Poll.Interval).
		Str("endpoint", cfg.API.Endpoint).
		Msg("starting watch loop")

	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logger.Info().Msg("watch loop stopped")
	return nil
}
