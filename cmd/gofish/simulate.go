package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/gofish/internal/config"
	"github.com/lox/gofish/internal/display"
	"github.com/lox/gofish/internal/simulator"
)

// SimulateCmd plays a batch of games
type SimulateCmd struct {
	Games             int           `short:"n" help:"Number of games to play (overrides config)"`
	Players           int           `short:"p" help:"Number of players, 2 to 7 (overrides config)"`
	Mode              string        `short:"m" help:"Turn selection: random or sequential (overrides config)"`
	Seed              int64         `short:"s" help:"Base RNG seed (overrides config, 0 for random)"`
	Workers           int           `short:"w" help:"Parallel workers (overrides config)"`
	Timeout           time.Duration `help:"Per game timeout (overrides config)"`
	CheckConservation bool          `help:"Validate the card set after every ask"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}
	c.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(os.Stderr, cfg.Level())
	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	return c.simulate(ctx, cfg, logger, quartz.NewReal(), os.Stdout, !g.NoColor)
}

// apply copies flags that were set over the loaded config
func (c *SimulateCmd) apply(cfg *config.Config) {
	if c.Games != 0 {
		cfg.Simulation.Games = c.Games
	}
	if c.Players != 0 {
		cfg.Game.Players = c.Players
	}
	if c.Mode != "" {
		cfg.Game.Mode = c.Mode
	}
	if c.Seed != 0 {
		cfg.Game.Seed = c.Seed
	}
	if c.Workers != 0 {
		cfg.Simulation.Workers = c.Workers
	}
	if c.Timeout != 0 {
		cfg.Simulation.Timeout = c.Timeout.String()
	}
}

func (c *SimulateCmd) simulate(ctx context.Context, cfg *config.Config, logger *log.Logger, clock quartz.Clock, out io.Writer, color bool) error {
	timeout, err := cfg.Simulation.TimeoutDuration()
	if err != nil {
		return err
	}

	result, err := simulator.New(simulator.Config{
		Games:             cfg.Simulation.Games,
		Players:           cfg.Game.Players,
		Mode:              cfg.GameMode(),
		Seed:              cfg.Game.Seed,
		Workers:           cfg.Simulation.Workers,
		Timeout:           timeout,
		MaxTurns:          cfg.Game.MaxTurns,
		StallWindow:       cfg.Game.StallWindow,
		CheckConservation: c.CheckConservation,
		Logger:            logger,
		Clock:             clock,
	}).Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	display.New(out, color).ShowStatistics(result.Stats)
	fmt.Fprintf(out, "\nSeed %d, %d games in %s\n", result.Seed, result.Stats.Games, result.Elapsed.Round(time.Millisecond))
	return nil
}
