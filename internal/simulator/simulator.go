// Package simulator plays batches of independent seeded games in parallel
// and aggregates their results.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/gofish/internal/cards"
	"github.com/lox/gofish/internal/game"
	"github.com/lox/gofish/internal/randutil"
	"github.com/lox/gofish/internal/statistics"
)

// ErrGameTimeout is returned when a single game runs past Config.Timeout
var ErrGameTimeout = errors.New("game timed out")

// Config holds configuration for running simulations
type Config struct {
	Games       int
	Players     int
	Mode        game.Mode
	Seed        int64 // base seed, every game derives its own
	Workers     int
	Timeout     time.Duration // per game, zero disables
	MaxTurns    int
	StallWindow int

	// CheckConservation validates the card set after every ask
	CheckConservation bool

	// GameOptions are appended to the options of every game
	GameOptions []game.Option

	Logger *log.Logger
	Clock  quartz.Clock
}

// Result is the outcome of a simulation run
type Result struct {
	Stats   *statistics.Statistics
	Seed    int64
	Elapsed time.Duration
}

// Simulator runs Go Fish game simulations
type Simulator struct {
	config Config
	logger *log.Logger
	clock  quartz.Clock
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers < 1 {
		config.Workers = 1
	}
	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := config.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Simulator{
		config: config,
		logger: logger.WithPrefix("simulator"),
		clock:  clock,
	}
}

// Run plays every game and returns the aggregated statistics. The first
// failing game cancels the rest.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	if s.config.Games < 1 {
		return nil, fmt.Errorf("games must be positive, got %d", s.config.Games)
	}
	if s.config.Players < 2 {
		return nil, fmt.Errorf("%w: got %d", game.ErrTooFewPlayers, s.config.Players)
	}

	seed := randutil.Seed(s.config.Seed)
	workers := min(s.config.Workers, s.config.Games)
	start := s.clock.Now()

	s.logger.Info("Starting simulation",
		"games", s.config.Games,
		"players", s.config.Players,
		"mode", s.config.Mode,
		"workers", workers,
		"seed", seed)

	g, ctx := errgroup.WithContext(ctx)
	results := make(chan *statistics.Statistics, workers)

	for w := range workers {
		g.Go(func() error {
			stats := &statistics.Statistics{}
			for n := w; n < s.config.Games; n += workers {
				result, err := s.playGame(ctx, seed, n)
				if err != nil {
					return err
				}
				stats.Add(result)
			}

			select {
			case results <- stats:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(results)

	stats := &statistics.Statistics{}
	for partial := range results {
		stats.Merge(partial)
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	elapsed := s.clock.Since(start)
	s.logger.Info("Simulation complete", "games", stats.Games, "elapsed", elapsed)

	return &Result{Stats: stats, Seed: seed, Elapsed: elapsed}, nil
}

// playGame runs the n-th game of the batch with timeout protection
func (s *Simulator) playGame(ctx context.Context, base int64, n int) (statistics.GameResult, error) {
	gameSeed := randutil.Derive(base, n)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var timedOut atomic.Bool
	if s.config.Timeout > 0 {
		timer := s.clock.AfterFunc(s.config.Timeout, func() {
			timedOut.Store(true)
			cancel()
		})
		defer timer.Stop()
	}

	gameLogger := log.New(io.Discard)
	if s.logger.GetLevel() <= log.DebugLevel {
		gameLogger = s.logger
	}

	rng := randutil.New(gameSeed)
	opts := []game.Option{
		game.WithRand(rng),
		game.WithLogger(gameLogger),
		game.WithMaxTurns(s.config.MaxTurns),
		game.WithStallWindow(s.config.StallWindow),
		game.WithConservationCheck(s.config.CheckConservation),
	}
	opts = append(opts, s.config.GameOptions...)

	g, err := game.NewWithDeck(s.config.Players, cards.NewShuffledDeck(rng), s.config.Mode, opts...)
	if err != nil {
		return statistics.GameResult{}, fmt.Errorf("game %d (seed %d): %w", n, gameSeed, err)
	}
	if err := g.Deal(); err != nil {
		return statistics.GameResult{}, fmt.Errorf("game %d (seed %d): %w", n, gameSeed, err)
	}

	cond, err := g.RunGame(ctx)
	if err != nil {
		if timedOut.Load() {
			return statistics.GameResult{}, fmt.Errorf("%w after %v (game %d, seed %d, turns %d)", ErrGameTimeout, s.config.Timeout, n, gameSeed, g.Turns())
		}
		return statistics.GameResult{}, fmt.Errorf("game %d (seed %d): %w", n, gameSeed, err)
	}

	if g.EndReason() != game.EndReasonEmptyHand {
		s.logger.Debug("Game ended without an empty hand", "game", g.ID(), "seed", gameSeed, "reason", g.EndReason(), "turns", g.Turns())
	}

	return statistics.GameResult{
		GameID:    g.ID(),
		Seed:      gameSeed,
		Players:   s.config.Players,
		Turns:     g.Turns(),
		Condition: cond,
		Reason:    g.EndReason(),
		Scores:    g.Scores(),
	}, nil
}
