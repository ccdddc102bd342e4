package game

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/shipit/internal/deck"
)

// Status is the lifecycle state of a game. ACTIVE is the only state that
// accepts moves; WON and LOST are terminal.
type Status string

const (
	StatusActive Status = "ACTIVE"
	StatusWon    Status = "WON"
	StatusLost   Status = "LOST"
)

// Terminal reports whether no further transitions are possible.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// Default configuration values.
const (
	DefaultResourceWeight   = 0.8
	DefaultLogRetention     = 200
	DefaultTargetMultiplier = 3
	DefaultMaxTurns         = 10
	MaxPlayers              = 4
)

// Config holds the tunable rules of a game.
type Config struct {
	Seed string `json:"seed"`
	// SingleCompletionPerTurn is carried for clients but no operation
	// enforces it.
	SingleCompletionPerTurn bool    `json:"singleCompletionPerTurn"`
	ResourceWeight          float64 `json:"resourceWeight"`
	LogRetention            int     `json:"logRetention"`
	TargetMultiplier        int     `json:"targetMultiplier"`
	MaxTurns                int     `json:"maxTurns"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		ResourceWeight:   DefaultResourceWeight,
		LogRetention:     DefaultLogRetention,
		TargetMultiplier: DefaultTargetMultiplier,
		MaxTurns:         DefaultMaxTurns,
	}
}

// NormalizeConfig replaces missing or out-of-range values with defaults.
func NormalizeConfig(c Config) Config {
	if c.ResourceWeight <= 0 || c.ResourceWeight > 1 {
		c.ResourceWeight = DefaultResourceWeight
	}
	if c.LogRetention <= 0 {
		c.LogRetention = DefaultLogRetention
	}
	if c.TargetMultiplier < 1 {
		c.TargetMultiplier = DefaultTargetMultiplier
	}
	if c.MaxTurns < 1 {
		c.MaxTurns = DefaultMaxTurns
	}
	return c
}

// Game is the root aggregate. Exported fields are the serialized state;
// mutate them only through the engine methods.
type Game struct {
	ID             string             `json:"id"`
	CreatedAt      time.Time          `json:"createdAt"`
	Turn           int                `json:"turn"`
	ActivePlayer   string             `json:"activePlayer"`
	Players        []*Player          `json:"players"`
	FeatureDeck    *deck.Deck         `json:"featureDeck"`
	DiscardPile    []deck.FeatureCard `json:"discardPile"`
	Config         Config             `json:"config"`
	Log            []ActionLogEntry   `json:"log"`
	Status         Status             `json:"status"`
	TargetFeatures int                `json:"targetFeatures"`
	DrawnThisTurn  bool               `json:"drawnThisTurn"`
	PendingEvent   *EventCard         `json:"pendingEvent,omitempty"`

	logSeq  int
	cardSeq int
	clock   quartz.Clock
	logger  *log.Logger
}

var discardLogger = log.New(io.Discard)

func (g *Game) now() time.Time {
	if g.clock == nil {
		return time.Now()
	}
	return g.clock.Now()
}

func (g *Game) log() *log.Logger {
	if g.logger == nil {
		return discardLogger
	}
	return g.logger
}

// Player returns the player with the given id.
func (g *Game) Player(id string) (*Player, error) {
	for _, p := range g.Players {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, id)
}

// Active returns the player whose turn it is.
func (g *Game) Active() *Player {
	for _, p := range g.Players {
		if p.ID == g.ActivePlayer {
			return p
		}
	}
	return nil
}

// actingPlayer resolves id and checks it is the active player.
func (g *Game) actingPlayer(id string) (*Player, error) {
	p, err := g.Player(id)
	if err != nil {
		return nil, err
	}
	if p.ID != g.ActivePlayer {
		return nil, fmt.Errorf("%w: %s (active is %s)", ErrNotActivePlayer, id, g.ActivePlayer)
	}
	return p, nil
}

// ensureActive guards every mutating operation except EndTurn, which reports
// terminal states instead of failing.
func (g *Game) ensureActive() error {
	if g.Status != StatusActive {
		return fmt.Errorf("%w: status %s", ErrGameOver, g.Status)
	}
	return nil
}

// ensureNoPendingEvent enforces that nothing proceeds while an event waits.
func (g *Game) ensureNoPendingEvent() error {
	if g.PendingEvent != nil {
		return fmt.Errorf("%w: %s %s", ErrEventPending, g.PendingEvent.Kind, g.PendingEvent.ID)
	}
	return nil
}

// Clone returns a deep copy that shares no mutable state with g. The copy
// keeps g's clock, logger and id counters.
func (g *Game) Clone() *Game {
	out := *g
	out.Players = make([]*Player, len(g.Players))
	for i, p := range g.Players {
		out.Players[i] = p.clone()
	}
	if g.FeatureDeck != nil {
		out.FeatureDeck = deck.New(g.FeatureDeck.Cards())
	}
	out.DiscardPile = make([]deck.FeatureCard, len(g.DiscardPile))
	for i, f := range g.DiscardPile {
		out.DiscardPile[i] = f.Clone()
	}
	out.Log = slices.Clone(g.Log)
	if g.PendingEvent != nil {
		evt := *g.PendingEvent
		out.PendingEvent = &evt
	}
	return &out
}
