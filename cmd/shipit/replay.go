package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/lox/shipit/internal/simulator"
)

// replayLogRetention keeps the whole action log of a replayed game.
const replayLogRetention = 10_000

// ReplayCmd plays a single seeded game and prints what happened.
type ReplayCmd struct {
	Seed    string `arg:"" help:"Game seed, e.g. shipit-7 from a simulation"`
	Players int    `short:"p" help:"Players, 1-4 (default from config)"`
	Policy  string `default:"greedy" enum:"greedy,passive" help:"Player policy: greedy, passive"`
	JSON    bool   `help:"Print the final game state as JSON instead of the log"`
}

func (cmd *ReplayCmd) Run(globals *Globals) error {
	cfg, logger, err := globals.setup()
	if err != nil {
		return err
	}
	policy, err := simulator.NewPolicy(cmd.Policy)
	if err != nil {
		return err
	}

	gc := cfg.GameConfig()
	gc.LogRetention = max(gc.LogRetention, replayLogRetention)
	sim := simulator.New(simulator.Config{
		Players:    pick(cmd.Players, cfg.Simulation.Players),
		Policy:     policy,
		GameConfig: gc,
		Logger:     logger,
	})

	g, _, err := sim.PlayGame(context.Background(), cmd.Seed)
	if err != nil {
		return err
	}

	if cmd.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(g)
	}
	fmt.Fprint(os.Stdout, renderLog(g))
	fmt.Fprint(os.Stdout, renderOutcome(g))
	return nil
}
