package simulator

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/shipit/internal/game"
	"github.com/lox/shipit/internal/randutil"
	"github.com/lox/shipit/internal/statistics"
)

// maxEndTurns caps a single game. MaxTurns bounds real games far below it;
// hitting the cap means the engine failed to terminate.
const maxEndTurns = 10_000

// Config holds configuration for running simulations
type Config struct {
	Games      int
	Players    int
	Seed       string // Game i is seeded "<Seed>-<i>"
	Workers    int
	Policy     Policy
	GameConfig game.Config
	Timeout    time.Duration // Per game; zero means none
	Clock      quartz.Clock
	Logger     *log.Logger
}

// Simulator runs batches of games
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers < 1 {
		config.Workers = 1
	}
	if config.Players < 1 {
		config.Players = 1
	}
	if config.Policy == nil {
		config.Policy = Greedy{}
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Simulator{config: config}
}

// SeedFor returns the seed of game i in a batch.
func SeedFor(base string, i int) string {
	return fmt.Sprintf("%s-%d", base, i)
}

// Run plays every game and aggregates the results. Results are added in game
// order, so the statistics do not depend on the worker count.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	results := make([]statistics.GameResult, s.config.Games)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(s.config.Workers)
	for i := range results {
		seed := SeedFor(s.config.Seed, i)
		eg.Go(func() error {
			_, result, err := s.PlayGame(ctx, seed)
			if err != nil {
				return fmt.Errorf("game %d (seed %q): %w", i, seed, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Add(r)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	s.config.Logger.Info("Simulation finished", "games", stats.Games, "wins", stats.Wins, "policy", s.config.Policy.Name())
	return stats, nil
}

// PlayGame plays one game to the end and returns it with its result.
func (s *Simulator) PlayGame(ctx context.Context, seed string) (*game.Game, statistics.GameResult, error) {
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	names := make([]string, s.config.Players)
	for i := range names {
		names[i] = fmt.Sprintf("Player %d", i+1)
	}
	g, rng, err := game.Create(game.CreateOptions{
		PlayerNames: names,
		Config:      s.config.GameConfig,
		Seed:        seed,
		Clock:       s.config.Clock,
		Logger:      s.config.Logger,
	})
	if err != nil {
		return nil, statistics.GameResult{}, err
	}

	result := statistics.GameResult{Seed: seed, Players: len(g.Players), Events: map[string]int{}}
	for turns := 0; !g.Status.Terminal(); turns++ {
		if err := ctx.Err(); err != nil {
			return g, result, err
		}
		if turns >= maxEndTurns {
			return g, result, fmt.Errorf("game did not finish after %d turns", turns)
		}
		if err := s.playTurn(g, rng, &result); err != nil {
			return g, result, err
		}
	}

	result.Won = g.Status == game.StatusWon
	result.Turns = g.Turn
	for _, p := range g.Players {
		result.Score += p.Score
	}
	return g, result, nil
}

func (s *Simulator) playTurn(g *game.Game, rng *randutil.Rng, result *statistics.GameResult) error {
	policy := s.config.Policy
	p := g.Active()

	drawn, err := g.Draw(p.ID, rng)
	if err != nil {
		return err
	}
	if drawn.Event != nil {
		result.Events[string(drawn.Event.Kind)]++
		sel := policy.Select(g, p, *drawn.Event)
		if _, err := g.AcknowledgeEvent(p.ID, rng, sel); err != nil {
			return fmt.Errorf("acknowledge %s: %w", drawn.Event.Kind, err)
		}
	}

	cands, err := g.CompletionCandidates(p.ID)
	if err != nil {
		return err
	}
	if cands.Coverable && policy.Complete(cands) {
		done, err := g.AttemptComplete(p.ID, []string{cands.FeatureID}, cands.Suggested)
		if err != nil {
			return fmt.Errorf("complete %s: %w", cands.FeatureID, err)
		}
		result.Completions++
		if done.Penalized {
			result.Penalized++
		}
		if done.Won {
			return nil
		}
	}

	if to, cardID, ok := policy.Trade(g, p); ok {
		if _, err := g.Trade(p.ID, to, cardID); err != nil {
			return fmt.Errorf("trade %s: %w", cardID, err)
		}
	}

	before := len(p.CompletedFeatures)
	if _, err := g.EndTurn(); err != nil {
		return err
	}
	result.Revoked += before - len(p.CompletedFeatures)
	return nil
}
