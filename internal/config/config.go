// Package config loads gofish settings from an HCL file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/gofish/internal/game"
)

// DefaultFile is the config file read when no path is given
const DefaultFile = "gofish.hcl"

// Config represents the complete gofish configuration
type Config struct {
	LogLevel   string           `hcl:"log_level,optional"`
	Game       GameConfig       `hcl:"game,block"`
	Simulation SimulationConfig `hcl:"simulation,block"`
}

// GameConfig describes a single game
type GameConfig struct {
	Players     int    `hcl:"players,optional"`
	Mode        string `hcl:"mode,optional"`
	Seed        int64  `hcl:"seed,optional"`
	MaxTurns    int    `hcl:"max_turns,optional"`
	StallWindow int    `hcl:"stall_window,optional"`
}

// SimulationConfig describes a batch of games
type SimulationConfig struct {
	Games   int    `hcl:"games,optional"`
	Workers int    `hcl:"workers,optional"`
	Timeout string `hcl:"timeout,optional"`
}

// file mirrors Config with optional blocks so a file may omit either one
type file struct {
	LogLevel   string            `hcl:"log_level,optional"`
	Game       *GameConfig       `hcl:"game,block"`
	Simulation *SimulationConfig `hcl:"simulation,block"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Game: GameConfig{
			Players:  4,
			Mode:     game.Random.String(),
			MaxTurns: game.DefaultMaxTurns,
		},
		Simulation: SimulationConfig{
			Games:   1000,
			Workers: 4,
			Timeout: "30s",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw file
	diags = gohcl.DecodeBody(f.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := &Config{LogLevel: raw.LogLevel}
	if raw.Game != nil {
		cfg.Game = *raw.Game
	}
	if raw.Simulation != nil {
		cfg.Simulation = *raw.Simulation
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.Game.Players == 0 {
		c.Game.Players = def.Game.Players
	}
	if c.Game.Mode == "" {
		c.Game.Mode = def.Game.Mode
	}
	if c.Game.MaxTurns == 0 {
		c.Game.MaxTurns = def.Game.MaxTurns
	}
	if c.Simulation.Games == 0 {
		c.Simulation.Games = def.Simulation.Games
	}
	if c.Simulation.Workers == 0 {
		c.Simulation.Workers = def.Simulation.Workers
	}
	if c.Simulation.Timeout == "" {
		c.Simulation.Timeout = def.Simulation.Timeout
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}

	maxPlayers := 52 / game.HandSize
	if c.Game.Players < 2 || c.Game.Players > maxPlayers {
		return fmt.Errorf("game: players must be between 2 and %d, got %d", maxPlayers, c.Game.Players)
	}
	if _, err := game.ParseMode(c.Game.Mode); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	if c.Game.MaxTurns < 1 {
		return fmt.Errorf("game: max_turns must be positive")
	}
	if c.Game.StallWindow < 0 {
		return fmt.Errorf("game: stall_window must not be negative")
	}

	if c.Simulation.Games < 1 {
		return fmt.Errorf("simulation: games must be positive")
	}
	if c.Simulation.Workers < 1 {
		return fmt.Errorf("simulation: workers must be positive")
	}
	if _, err := c.Simulation.TimeoutDuration(); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}
	return nil
}

// GameMode returns the parsed game mode
func (c *Config) GameMode() game.Mode {
	m, _ := game.ParseMode(c.Game.Mode)
	return m
}

// Level returns the parsed log level, defaulting to info
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// TimeoutDuration parses the per-game timeout
func (s SimulationConfig) TimeoutDuration() (time.Duration, error) {
	d, err := time.ParseDuration(s.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", s.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("timeout must be positive, got %s", s.Timeout)
	}
	return d, nil
}
