package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/gofish/internal/cards"
	"github.com/lox/gofish/internal/config"
	"github.com/lox/gofish/internal/display"
	"github.com/lox/gofish/internal/game"
	"github.com/lox/gofish/internal/randutil"
	"github.com/lox/gofish/internal/transcript"
)

// PlayCmd plays a single game
type PlayCmd struct {
	Players     int    `short:"p" help:"Number of players, 2 to 7 (overrides config)"`
	Mode        string `short:"m" help:"Turn selection: random or sequential (overrides config)"`
	Seed        int64  `short:"s" help:"RNG seed (overrides config, 0 for random)"`
	FixedDeck   bool   `help:"Deal from an unshuffled standard deck"`
	MaxTurns    int    `help:"Maximum number of asks (overrides config)"`
	StallWindow int    `help:"Sequential mode: asks without progress on an empty deck before a stalemate (overrides config)"`
	Transcript  string `short:"t" type:"path" help:"Write a JSON transcript of the game to this file"`
	Quiet       bool   `short:"q" help:"Only show the result"`
}

func (c *PlayCmd) Run(g *Globals) error {
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

	return c.play(ctx, cfg, logger, os.Stdout, !g.NoColor)
}

// apply copies flags that were set over the loaded config
func (c *PlayCmd) apply(cfg *config.Config) {
	if c.Players != 0 {
		cfg.Game.Players = c.Players
	}
	if c.Mode != "" {
		cfg.Game.Mode = c.Mode
	}
	if c.Seed != 0 {
		cfg.Game.Seed = c.Seed
	}
	if c.MaxTurns != 0 {
		cfg.Game.MaxTurns = c.MaxTurns
	}
	if c.StallWindow != 0 {
		cfg.Game.StallWindow = c.StallWindow
	}
}

func (c *PlayCmd) play(ctx context.Context, cfg *config.Config, logger *log.Logger, out io.Writer, color bool) error {
	seed := randutil.Seed(cfg.Game.Seed)
	rng := randutil.New(seed)

	deck := cards.NewShuffledDeck(rng)
	if c.FixedDeck {
		deck = cards.NewStandardDeck()
	}

	view := display.New(out, color)
	rec := transcript.NewRecorder(quartz.NewReal())
	observer := game.ObserverFunc(func(e game.Event) {
		rec.Observe(e)
		if !c.Quiet {
			view.Observe(e)
		}
	})

	g, err := game.NewWithDeck(cfg.Game.Players, deck, cfg.GameMode(),
		game.WithRand(rng),
		game.WithLogger(logger),
		game.WithObserver(observer),
		game.WithMaxTurns(cfg.Game.MaxTurns),
		game.WithStallWindow(cfg.Game.StallWindow),
		game.WithConservationCheck(true),
	)
	if err != nil {
		return err
	}
	logger.Debug("Starting game", "game", g.ID(), "players", cfg.Game.Players, "mode", cfg.GameMode(), "seed", seed)

	if err := g.Deal(); err != nil {
		return err
	}
	cond, err := g.RunGame(ctx)
	if err != nil {
		return fmt.Errorf("game %s (seed %d): %w", g.ID(), seed, err)
	}

	if c.Quiet {
		view.ShowResult(cond, g.EndReason(), g.Turns(), g.Scores())
	}

	if c.Transcript != "" {
		if err := rec.WriteFile(c.Transcript); err != nil {
			return fmt.Errorf("writing transcript: %w", err)
		}
		logger.Info("Wrote transcript", "path", c.Transcript, "events", rec.Len())
	}
	return nil
}
