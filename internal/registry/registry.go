// Package registry keeps live games in memory and serializes access to each
// of them. The engine itself is single-threaded; the registry is what lets a
// transport layer drive many games from concurrent goroutines.
package registry

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/shipit/internal/game"
	"github.com/lox/shipit/internal/randutil"
)

// ErrGameNotFound is returned for ids the registry does not hold.
var ErrGameNotFound = errors.New("game not found")

// Summary holds lightweight metadata for listing games.
type Summary struct {
	ID        string      `json:"id"`
	Seed      string      `json:"seed"`
	Players   int         `json:"players"`
	Turn      int         `json:"turn"`
	Status    game.Status `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

type entry struct {
	mu   sync.Mutex
	game *game.Game
	rng  *randutil.Rng
}

// Registry maps game ids to games and their Rngs.
type Registry struct {
	logger *log.Logger
	clock  quartz.Clock

	mu    sync.RWMutex
	games map[string]*entry
}

// New constructs an empty registry. A nil logger discards output and a nil
// clock uses wall time.
func New(logger *log.Logger, clock quartz.Clock) *Registry {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Registry{
		logger: logger.WithPrefix("registry"),
		clock:  clock,
		games:  make(map[string]*entry),
	}
}

// Create starts a new game and returns its id. Ids are UUIDv7 so listing
// them in order lists games by creation time. opts.ID is ignored; the
// registry's clock and logger fill in when opts leaves them unset.
func (r *Registry) Create(opts game.CreateOptions) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate game id: %w", err)
	}
	opts.ID = id.String()
	if opts.Clock == nil {
		opts.Clock = r.clock
	}
	if opts.Logger == nil {
		opts.Logger = r.logger
	}

	g, rng, err := game.Create(opts)
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	r.games[g.ID] = &entry{game: g, rng: rng}
	total := len(r.games)
	r.mu.Unlock()

	r.logger.Info("Game created", "id", g.ID, "seed", g.Config.Seed, "players", len(g.Players), "games", total)
	return g.ID, nil
}

func (r *Registry) lookup(id string) (*entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return e, nil
}

// With runs fn with exclusive access to the game and its Rng. Calls for the
// same game are serialized; calls for different games run in parallel. fn
// must not retain either pointer after it returns.
func (r *Registry) With(id string, fn func(*game.Game, *randutil.Rng) error) error {
	e, err := r.lookup(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.game, e.rng)
}

// Snapshot returns a deep copy of the game safe to hand to serializers.
func (r *Registry) Snapshot(id string) (game.Snapshot, error) {
	var snap game.Snapshot
	err := r.With(id, func(g *game.Game, _ *randutil.Rng) error {
		snap = g.Snapshot()
		return nil
	})
	return snap, err
}

// Delete removes a game. It reports whether the game existed.
func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.games[id]; !ok {
		return false
	}
	delete(r.games, id)
	r.logger.Debug("Game deleted", "id", id, "games", len(r.games))
	return true
}

// Len returns the number of games held.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.games)
}

// List returns a summary of every game, oldest first.
func (r *Registry) List() []Summary {
	r.mu.RLock()
	entries := make([]*entry, 0, len(r.games))
	for _, e := range r.games {
		entries = append(entries, e)
	}
	r.mu.RUnlock()

	summaries := make([]Summary, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		g := e.game
		summaries = append(summaries, Summary{
			ID:        g.ID,
			Seed:      g.Config.Seed,
			Players:   len(g.Players),
			Turn:      g.Turn,
			Status:    g.Status,
			CreatedAt: g.CreatedAt,
		})
		e.mu.Unlock()
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].ID < summaries[j].ID })
	return summaries
}
