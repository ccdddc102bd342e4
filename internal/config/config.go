// Package config loads shipit settings from an HCL file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/shipit/internal/game"
)

// Default simulation and logging settings.
const (
	DefaultGames     = 100
	DefaultWorkers   = 4
	DefaultPlayers   = 3
	DefaultSimSeed   = "shipit"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config represents the complete configuration file. Every block is optional.
type Config struct {
	Game       *GameSettings       `hcl:"game,block"`
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Logging    *LoggingSettings    `hcl:"logging,block"`
}

// GameSettings mirrors game.Config plus the table's player names.
type GameSettings struct {
	Seed                    string   `hcl:"seed,optional"`
	Players                 []string `hcl:"players,optional"`
	ResourceWeight          float64  `hcl:"resource_weight,optional"`
	LogRetention            int      `hcl:"log_retention,optional"`
	TargetMultiplier        int      `hcl:"target_multiplier,optional"`
	MaxTurns                int      `hcl:"max_turns,optional"`
	SingleCompletionPerTurn bool     `hcl:"single_completion_per_turn,optional"`
}

// SimulationSettings controls batch runs.
type SimulationSettings struct {
	Games   int    `hcl:"games,optional"`
	Workers int    `hcl:"workers,optional"`
	Players int    `hcl:"players,optional"`
	Seed    string `hcl:"seed,optional"`
}

// LoggingSettings controls the process logger.
type LoggingSettings struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads configuration from an HCL file. A missing file yields Default.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file.Body)
}

// Parse decodes configuration from HCL source. filename only appears in
// diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file.Body)
}

func decode(body hcl.Body) (*Config, error) {
	var config Config
	if diags := gohcl.DecodeBody(body, nil, &config); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	config.applyDefaults()
	return &config, nil
}

// applyDefaults fills zero values. Out-of-range values are left for Validate.
func (c *Config) applyDefaults() {
	if c.Game == nil {
		c.Game = &GameSettings{}
	}
	if c.Simulation == nil {
		c.Simulation = &SimulationSettings{}
	}
	if c.Logging == nil {
		c.Logging = &LoggingSettings{}
	}

	g := c.Game
	if g.ResourceWeight == 0 {
		g.ResourceWeight = game.DefaultResourceWeight
	}
	if g.LogRetention == 0 {
		g.LogRetention = game.DefaultLogRetention
	}
	if g.TargetMultiplier == 0 {
		g.TargetMultiplier = game.DefaultTargetMultiplier
	}
	if g.MaxTurns == 0 {
		g.MaxTurns = game.DefaultMaxTurns
	}

	s := c.Simulation
	if s.Games == 0 {
		s.Games = DefaultGames
	}
	if s.Workers == 0 {
		s.Workers = DefaultWorkers
	}
	if s.Players == 0 {
		s.Players = len(g.Players)
		if s.Players == 0 {
			s.Players = DefaultPlayers
		}
	}
	if s.Seed == "" {
		s.Seed = DefaultSimSeed
	}

	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	g := c.Game
	if g.ResourceWeight <= 0 || g.ResourceWeight > 1 {
		return fmt.Errorf("game: resource_weight must be in (0, 1], got %v", g.ResourceWeight)
	}
	if g.LogRetention < 1 {
		return fmt.Errorf("game: log_retention must be positive")
	}
	if g.TargetMultiplier < 1 {
		return fmt.Errorf("game: target_multiplier must be positive")
	}
	if g.MaxTurns < 1 {
		return fmt.Errorf("game: max_turns must be positive")
	}
	if len(g.Players) > game.MaxPlayers {
		return fmt.Errorf("game: at most %d players, got %d", game.MaxPlayers, len(g.Players))
	}
	for i, name := range g.Players {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("game: player %d has a blank name", i+1)
		}
	}

	s := c.Simulation
	if s.Games < 1 {
		return fmt.Errorf("simulation: games must be positive")
	}
	if s.Workers < 1 {
		return fmt.Errorf("simulation: workers must be positive")
	}
	if s.Players < 1 || s.Players > game.MaxPlayers {
		return fmt.Errorf("simulation: players must be between 1 and %d", game.MaxPlayers)
	}

	if _, err := log.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if _, ok := formatters[c.Logging.Format]; !ok {
		return fmt.Errorf("logging: invalid format %q", c.Logging.Format)
	}
	return nil
}

var formatters = map[string]log.Formatter{
	"text":   log.TextFormatter,
	"json":   log.JSONFormatter,
	"logfmt": log.LogfmtFormatter,
}

// GameConfig converts the game block into engine configuration.
func (c *Config) GameConfig() game.Config {
	g := c.Game
	return game.Config{
		Seed:                    g.Seed,
		SingleCompletionPerTurn: g.SingleCompletionPerTurn,
		ResourceWeight:          g.ResourceWeight,
		LogRetention:            g.LogRetention,
		TargetMultiplier:        g.TargetMultiplier,
		MaxTurns:                g.MaxTurns,
	}
}

// PlayerNames returns the configured names, or n generated ones when the
// game block names nobody.
func (c *Config) PlayerNames(n int) []string {
	if len(c.Game.Players) > 0 {
		return append([]string(nil), c.Game.Players...)
	}
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("Player %d", i+1)
	}
	return names
}

// ApplyLogging configures logger from the logging block. Call Validate first.
func (c *Config) ApplyLogging(logger *log.Logger) {
	if level, err := log.ParseLevel(c.Logging.Level); err == nil {
		logger.SetLevel(level)
	}
	if f, ok := formatters[c.Logging.Format]; ok {
		logger.SetFormatter(f)
	}
}
