package game

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/shipit/internal/deck"
	"github.com/lox/shipit/internal/randutil"
)

// startingHandSize is the number of resource cards dealt to each player.
const startingHandSize = 3

// CreateOptions configures a new game.
type CreateOptions struct {
	// ID defaults to "game-<seed>".
	ID          string
	PlayerNames []string
	Config      Config
	// Seed overrides Config.Seed. When both are empty a seed is derived from
	// the clock.
	Seed string
	// FeatureDeck replaces the built-in catalog. It is copied, then shuffled.
	FeatureDeck []deck.FeatureCard

	Clock  quartz.Clock
	Logger *log.Logger
}

// Create builds a fresh game and returns it with the live Rng. The caller
// must keep that Rng and pass it to every later operation on this game.
func Create(opts CreateOptions) (*Game, *randutil.Rng, error) {
	if n := len(opts.PlayerNames); n == 0 || n > MaxPlayers {
		return nil, nil, fmt.Errorf("%w: got %d", ErrInvalidPlayerCount, n)
	}
	names := make([]string, len(opts.PlayerNames))
	for i, name := range opts.PlayerNames {
		names[i] = strings.TrimSpace(name)
		if names[i] == "" {
			return nil, nil, fmt.Errorf("%w: seat %d", ErrInvalidPlayerName, i)
		}
	}

	clock := opts.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	logger := opts.Logger
	if logger == nil {
		logger = discardLogger
	}

	cfg := NormalizeConfig(opts.Config)
	seed := opts.Seed
	if seed == "" {
		seed = cfg.Seed
	}
	if seed == "" {
		seed = randutil.DefaultSeed(clock.Now())
	}
	cfg.Seed = seed

	rng := randutil.New(seed)

	var cards []deck.FeatureCard
	if opts.FeatureDeck != nil {
		cards = make([]deck.FeatureCard, len(opts.FeatureDeck))
		for i, f := range opts.FeatureDeck {
			cards[i] = f.Clone()
		}
	} else {
		cards = deck.Catalog()
	}
	deck.Shuffle(cards, rng)

	id := opts.ID
	if id == "" {
		id = "game-" + seed
	}

	g := &Game{
		ID:          id,
		CreatedAt:   clock.Now(),
		Players:     make([]*Player, 0, len(names)),
		FeatureDeck: deck.New(cards),
		DiscardPile: []deck.FeatureCard{},
		Config:      cfg,
		Log:         []ActionLogEntry{},
		Status:      StatusActive,
		clock:       clock,
		logger:      logger.WithPrefix("game").With("game", id),
	}

	for seat, name := range names {
		p := &Player{
			ID:                fmt.Sprintf("p%d", seat+1),
			Name:              name,
			Seat:              seat,
			Hand:              make([]ResourceCard, 0, startingHandSize),
			CompletedFeatures: []string{},
			PtoCards:          []PtoLock{},
		}
		if f, ok := g.FeatureDeck.Draw(); ok {
			p.ActiveFeature = &f
		}
		for k := 0; k < startingHandSize; k++ {
			role := deck.CoreRoles[(seat+k)%len(deck.CoreRoles)]
			p.Hand = append(p.Hand, g.newResource(role, levelFromRoll(rng.Next())))
		}
		g.Players = append(g.Players, p)
	}

	g.TargetFeatures = len(g.Players) * cfg.TargetMultiplier
	g.logf("", LogStart, "Game started with %d players (seed %q, target %d features in %d turns)",
		len(g.Players), seed, g.TargetFeatures, cfg.MaxTurns)
	g.Turn = 1
	g.ActivePlayer = g.Players[0].ID

	g.log().Debug("Created game", "players", len(g.Players), "seed", seed, "deck", g.FeatureDeck.Len())
	return g, rng, nil
}
