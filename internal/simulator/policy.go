package simulator

import (
	"fmt"

	"github.com/lox/shipit/internal/deck"
	"github.com/lox/shipit/internal/game"
)

// Policy decides the optional choices of a turn. Drawing, acknowledging the
// drawn event and ending the turn are mandatory and handled by the
// simulator.
type Policy interface {
	Name() string
	// Select targets a pending event. nil leaves the choice to the Rng.
	Select(g *game.Game, p *game.Player, event game.EventCard) *game.Selection
	// Complete reports whether to spend c.Suggested on the active feature.
	Complete(c game.Candidates) bool
	// Trade returns a card to hand to a teammate, if any.
	Trade(g *game.Game, p *game.Player) (toPlayerID, cardID string, ok bool)
}

// NewPolicy returns the named policy.
func NewPolicy(name string) (Policy, error) {
	switch name {
	case "greedy", "":
		return Greedy{}, nil
	case "passive":
		return Passive{}, nil
	default:
		return nil, fmt.Errorf("unknown policy %q", name)
	}
}

// Greedy completes whenever it can and feeds teammates the roles they are
// short of.
type Greedy struct{}

func (Greedy) Name() string { return "greedy" }

// Select sacrifices a card the player's own feature has no use for when a
// LAYOFF or PTO hits.
func (Greedy) Select(g *game.Game, p *game.Player, event game.EventCard) *game.Selection {
	if event.Kind != game.Layoff && event.Kind != game.PTO {
		return nil
	}
	for _, c := range p.Hand {
		if p.IsLocked(c.ID, g.Turn) || needs(p, c.Role) || c.IsContractor() {
			continue
		}
		return &game.Selection{CardID: c.ID}
	}
	return nil
}

func (Greedy) Complete(c game.Candidates) bool { return c.Coverable }

// Trade gives away the first card whose role the player does not need and
// the next teammate in seat order does.
func (Greedy) Trade(g *game.Game, p *game.Player) (string, string, bool) {
	n := len(g.Players)
	for step := 1; step < n; step++ {
		mate := g.Players[(p.Seat+step)%n]
		cands, err := g.CompletionCandidates(mate.ID)
		if err != nil {
			continue
		}
		for _, rc := range cands.Roles {
			if rc.Deficit == 0 || needs(p, rc.Role) {
				continue
			}
			for _, c := range p.Hand {
				if c.Role == rc.Role {
					return mate.ID, c.ID, true
				}
			}
		}
	}
	return "", "", false
}

// needs reports whether the player's active feature requires role.
func needs(p *game.Player, role deck.Role) bool {
	if p.ActiveFeature == nil {
		return false
	}
	_, ok := p.ActiveFeature.Requirement(role)
	return ok
}

// Passive never completes or trades. Every game it plays runs out the clock.
type Passive struct{}

func (Passive) Name() string { return "passive" }

func (Passive) Select(*game.Game, *game.Player, game.EventCard) *game.Selection { return nil }

func (Passive) Complete(game.Candidates) bool { return false }

func (Passive) Trade(*game.Game, *game.Player) (string, string, bool) { return "", "", false }
