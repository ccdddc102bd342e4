package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/lox/shipit/internal/simulator"
)

// SimulateCmd runs many games with a scripted policy.
type SimulateCmd struct {
	Games   int           `short:"n" help:"Number of games (default from config)"`
	Players int           `short:"p" help:"Players per game, 1-4 (default from config)"`
	Workers int           `short:"w" help:"Games played in parallel (default from config)"`
	Seed    string        `short:"s" help:"Base seed; game i uses <seed>-<i> (default from config)"`
	Policy  string        `default:"greedy" enum:"greedy,passive" help:"Player policy: greedy, passive"`
	Timeout time.Duration `default:"10s" help:"Per-game timeout"`
}

func (cmd *SimulateCmd) Run(globals *Globals) error {
	cfg, logger, err := globals.setup()
	if err != nil {
		return err
	}
	policy, err := simulator.NewPolicy(cmd.Policy)
	if err != nil {
		return err
	}

	sc := simulator.Config{
		Games:      pick(cmd.Games, cfg.Simulation.Games),
		Players:    pick(cmd.Players, cfg.Simulation.Players),
		Workers:    pick(cmd.Workers, cfg.Simulation.Workers),
		Seed:       cfg.Simulation.Seed,
		Policy:     policy,
		GameConfig: cfg.GameConfig(),
		Timeout:    cmd.Timeout,
		Logger:     logger,
	}
	if cmd.Seed != "" {
		sc.Seed = cmd.Seed
	}
	if sc.Players < 1 || sc.Players > 4 {
		return fmt.Errorf("players must be between 1 and 4, got %d", sc.Players)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("Starting simulation", "games", sc.Games, "players", sc.Players, "workers", sc.Workers, "seed", sc.Seed, "policy", policy.Name())
	start := time.Now()
	stats, err := simulator.New(sc).Run(ctx)
	if err != nil {
		return err
	}

	fmt.Fprint(os.Stdout, renderReport(stats, sc, time.Since(start)))
	return nil
}

// pick returns flag when set, otherwise fallback.
func pick(flag, fallback int) int {
	if flag > 0 {
		return flag
	}
	return fallback
}
