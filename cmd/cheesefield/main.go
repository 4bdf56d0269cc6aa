package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cheesefield/internal/config"
	"cheesefield/internal/game"
	"cheesefield/internal/logger"
	"cheesefield/internal/render"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults are used when empty)")
	seed := flag.Int64("seed", 0, "world seed, overrides simulation.seed when non-zero")
	flag.Parse()

	if err := run(*configPath, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "cheesefield: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, seed int64) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if seed != 0 {
		cfg.Simulation.Seed = seed
	}

	base, err := logger.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer base.Sync()
	log, _ := logger.WithSession(base)

	log.Info("Starting cheesefield",
		zap.String("config", configPath),
		zap.String("time_step", cfg.Simulation.TimeStep),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session, err := game.NewSession(ctx, cfg, log)
	if err != nil {
		log.Error("Failed to build world", zap.Error(err))
		return err
	}

	window, err := render.Open(cfg, session.World, log)
	if err != nil {
		log.Error("Failed to open window", zap.Error(err))
		return err
	}
	defer window.Close()

	driver := game.NewDriver(session, window, log)
	if err := driver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("Frame loop failed", zap.Error(err))
		return err
	}
	return nil
}
