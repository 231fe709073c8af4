package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "YAML or TOML config file")
	backend := flag.String("backend", "", "display backend: window or terminal")
	seed := flag.Int64("seed", 0, "random seed (0 seeds from the clock)")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *backend != "" {
		cfg.Display.Backend = *backend
	}
	if *seed != 0 {
		cfg.Spawn.Seed = *seed
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	log, err := buildLogger(cfg)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting",
		zap.String("backend", cfg.Display.Backend),
		zap.Int("width", cfg.Display.Width),
		zap.Int("height", cfg.Display.Height),
		zap.Duration("spawn_interval", cfg.Spawn.Interval))

	if cfg.Display.Backend == BackendTerminal {
		return runTerminal(ctx, cfg, log)
	}
	return runWindow(ctx, cfg, log)
}

// buildLogger keeps the terminal backend quiet unless logs go to a file.
func buildLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.Display.Backend == BackendTerminal && cfg.Logging.File == "" {
		return zap.NewNop(), nil
	}
	return newLogger(cfg.Logging)
}
