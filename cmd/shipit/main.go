package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/shipit/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Config string `short:"c" default:"shipit.hcl" help:"Path to an HCL config file (ignored when missing)"`
	Debug  bool   `short:"d" help:"Enable debug logging"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Simulate SimulateCmd      `cmd:"" help:"Play a batch of games and report statistics"`
	Deal     DealCmd          `cmd:"" help:"Deal a new game and print it as JSON"`
	Replay   ReplayCmd        `cmd:"" help:"Play one seeded game and print its action log"`
}

// setup loads configuration and builds the process logger.
func (g *Globals) setup() (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "shipit",
	})
	cfg.ApplyLogging(logger)
	if g.Debug {
		logger.SetLevel(log.DebugLevel)
	}
	return cfg, logger, nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("shipit"),
		kong.Description("Cooperative feature-shipping card game engine"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
