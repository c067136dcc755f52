package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/gofish/internal/game"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gofish.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadFullFile(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"

game {
  players      = 3
  mode         = "sequential"
  seed         = 42
  max_turns    = 500
  stall_window = 12
}

simulation {
  games   = 250
  workers = 2
  timeout = "5s"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, log.DebugLevel, cfg.Level())
	assert.Equal(t, GameConfig{Players: 3, Mode: "sequential", Seed: 42, MaxTurns: 500, StallWindow: 12}, cfg.Game)
	assert.Equal(t, game.Sequential, cfg.GameMode())
	assert.Equal(t, SimulationConfig{Games: 250, Workers: 2, Timeout: "5s"}, cfg.Simulation)

	d, err := cfg.Simulation.TimeoutDuration()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, d)
}

func TestLoadPartialFileAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
game {
  players = 6
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Game.Players)
	assert.Equal(t, "random", cfg.Game.Mode)
	assert.Equal(t, game.DefaultMaxTurns, cfg.Game.MaxTurns)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, Default().Simulation, cfg.Simulation)
}

func TestLoadInvalidHCL(t *testing.T) {
	path := writeConfig(t, `game { players = `)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadUnknownAttribute(t *testing.T) {
	path := writeConfig(t, `
game {
  hand_size = 5
}
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "seven players", mutate: func(c *Config) { c.Game.Players = 7 }},
		{name: "one player", mutate: func(c *Config) { c.Game.Players = 1 }, wantErr: true},
		{name: "eight players", mutate: func(c *Config) { c.Game.Players = 8 }, wantErr: true},
		{name: "unknown mode", mutate: func(c *Config) { c.Game.Mode = "chaotic" }, wantErr: true},
		{name: "zero max turns", mutate: func(c *Config) { c.Game.MaxTurns = 0 }, wantErr: true},
		{name: "negative stall window", mutate: func(c *Config) { c.Game.StallWindow = -1 }, wantErr: true},
		{name: "zero games", mutate: func(c *Config) { c.Simulation.Games = 0 }, wantErr: true},
		{name: "zero workers", mutate: func(c *Config) { c.Simulation.Workers = 0 }, wantErr: true},
		{name: "bad timeout", mutate: func(c *Config) { c.Simulation.Timeout = "soon" }, wantErr: true},
		{name: "negative timeout", mutate: func(c *Config) { c.Simulation.Timeout = "-1s" }, wantErr: true},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
