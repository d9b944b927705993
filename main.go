package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"impulse-snake/config"
	"impulse-snake/logger"
	"impulse-snake/sim"

	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	flags := config.Flags()
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	dir, err := flags.GetString("config")
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(dir, flags)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Development); err != nil {
		return err
	}
	log := logger.Log
	defer log.Sync()

	if cfg.Headless.Episodes > 0 {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		runner, err := sim.NewRunner(cfg.Engine(), cfg.Headless.MaxTicks, sim.WithLogger(log.Named("sim")))
		if err != nil {
			return err
		}
		if _, err := runner.Run(ctx, cfg.Headless.Episodes); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}

	log.Infow("opening window",
		"width", cfg.Window.Width,
		"height", cfg.Window.Height,
		"grid", cfg.Game.GridSize,
		"tick", cfg.Game.TickInterval)
	return runWindow(cfg, log)
}
