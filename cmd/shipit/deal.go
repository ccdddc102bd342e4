package main

import (
	"encoding/json"
	"os"

	"github.com/lox/shipit/internal/game"
	"github.com/lox/shipit/internal/registry"
)

// DealCmd creates a game and prints its initial snapshot.
type DealCmd struct {
	Names []string `arg:"" optional:"" help:"Player names (default from config)"`
	Count int      `short:"n" help:"Number of generated players when no names are given"`
	Seed  string   `short:"s" help:"Game seed (default from config, else time-based)"`
}

func (cmd *DealCmd) Run(globals *Globals) error {
	cfg, logger, err := globals.setup()
	if err != nil {
		return err
	}

	names := cmd.Names
	if len(names) == 0 {
		names = cfg.PlayerNames(pick(cmd.Count, cfg.Simulation.Players))
	}

	games := registry.New(logger, nil)
	id, err := games.Create(game.CreateOptions{
		PlayerNames: names,
		Config:      cfg.GameConfig(),
		Seed:        cmd.Seed,
	})
	if err != nil {
		return err
	}
	snap, err := games.Snapshot(id)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}
