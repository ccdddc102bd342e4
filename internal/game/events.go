package game

import (
	"fmt"

	"github.com/lox/shipit/internal/randutil"
)

// Selection lets the acting player choose what an event hits instead of
// leaving it to the Rng. Empty fields mean "random".
type Selection struct {
	CardID         string `json:"cardId,omitempty"`
	TargetPlayerID string `json:"targetPlayerId,omitempty"`
}

// EventOutcome describes what an event resolution did. Applied is false when
// the event had nothing to act on.
type EventOutcome struct {
	EventID        string    `json:"eventId"`
	Kind           EventKind `json:"type"`
	Applied        bool      `json:"applied"`
	CardID         string    `json:"cardId,omitempty"`
	TargetPlayerID string    `json:"targetPlayerId,omitempty"`
	Message        string    `json:"message"`
}

// ResolveEvent applies event to the player. It writes exactly one EVENT log
// entry on success and leaves Game.PendingEvent untouched; AcknowledgeEvent
// is the variant that also clears it.
//
// A nil rng is allowed: random choices then fall back to the first eligible
// card or player.
func (g *Game) ResolveEvent(playerID string, event EventCard, rng *randutil.Rng, sel *Selection) (EventOutcome, error) {
	if err := g.ensureActive(); err != nil {
		return EventOutcome{}, err
	}
	p, err := g.Player(playerID)
	if err != nil {
		return EventOutcome{}, err
	}
	if sel == nil {
		sel = &Selection{}
	}

	var out EventOutcome
	switch event.Kind {
	case Layoff:
		out, err = g.resolveLayoff(p, rng, sel)
	case Reorg:
		out, err = g.resolveReorg(p, rng, sel)
	case Competition:
		out = g.resolveCompetition(p)
	case PTO:
		out, err = g.resolvePTO(p, rng, sel)
	default:
		return EventOutcome{}, fmt.Errorf("%w: %q", ErrUnknownEvent, event.Kind)
	}
	if err != nil {
		return EventOutcome{}, err
	}

	out.EventID = event.ID
	out.Kind = event.Kind
	g.logf(p.ID, LogEvent, "%s", out.Message)
	g.log().Debug("Resolved event", "player", p.ID, "kind", event.Kind, "applied", out.Applied, "card", out.CardID)
	return out, nil
}

// AcknowledgeEvent resolves the pending event for the active player and
// clears it.
func (g *Game) AcknowledgeEvent(playerID string, rng *randutil.Rng, sel *Selection) (EventOutcome, error) {
	if err := g.ensureActive(); err != nil {
		return EventOutcome{}, err
	}
	if g.PendingEvent == nil {
		return EventOutcome{}, ErrNoPendingEvent
	}
	if _, err := g.actingPlayer(playerID); err != nil {
		return EventOutcome{}, err
	}
	out, err := g.ResolveEvent(playerID, *g.PendingEvent, rng, sel)
	if err != nil {
		return EventOutcome{}, err
	}
	g.PendingEvent = nil
	return out, nil
}

// pick returns a uniform index in [0,n), or 0 without an rng.
func pick(rng *randutil.Rng, n int) int {
	if rng == nil {
		return 0
	}
	return rng.Intn(n)
}

// chooseCard resolves sel.CardID against candidates, or picks one at random.
func chooseCard(p *Player, candidates []ResourceCard, rng *randutil.Rng, sel *Selection) (ResourceCard, error) {
	if sel.CardID == "" {
		return candidates[pick(rng, len(candidates))], nil
	}
	for _, c := range candidates {
		if c.ID == sel.CardID {
			return c, nil
		}
	}
	if p.HasCard(sel.CardID) {
		return ResourceCard{}, fmt.Errorf("%w: %s is not eligible", ErrInvalidSelection, sel.CardID)
	}
	return ResourceCard{}, fmt.Errorf("%w: %s not in %s's hand", ErrCardNotFound, sel.CardID, p.ID)
}

func (g *Game) resolveLayoff(p *Player, rng *randutil.Rng, sel *Selection) (EventOutcome, error) {
	if len(p.Hand) == 0 {
		return EventOutcome{Message: fmt.Sprintf("Layoff: %s had no one to let go", p.Name)}, nil
	}
	card, err := chooseCard(p, p.Hand, rng, sel)
	if err != nil {
		return EventOutcome{}, err
	}
	p.removeCard(card.ID)
	return EventOutcome{
		Applied: true,
		CardID:  card.ID,
		Message: fmt.Sprintf("Layoff: %s lost %s %s", p.Name, card.Level, card.Role),
	}, nil
}

func (g *Game) resolveReorg(p *Player, rng *randutil.Rng, sel *Selection) (EventOutcome, error) {
	others := make([]*Player, 0, len(g.Players)-1)
	for _, other := range g.Players {
		if other.ID != p.ID {
			others = append(others, other)
		}
	}
	if len(others) == 0 || len(p.Hand) == 0 {
		return EventOutcome{Message: fmt.Sprintf("Reorg: nothing moved for %s", p.Name)}, nil
	}

	var target *Player
	if sel.TargetPlayerID != "" {
		if sel.TargetPlayerID == p.ID {
			return EventOutcome{}, fmt.Errorf("%w: reorg target must be another player", ErrInvalidSelection)
		}
		t, err := g.Player(sel.TargetPlayerID)
		if err != nil {
			return EventOutcome{}, err
		}
		target = t
	} else {
		target = others[pick(rng, len(others))]
	}

	card, err := chooseCard(p, p.Hand, rng, sel)
	if err != nil {
		return EventOutcome{}, err
	}
	moved, lock, _ := p.removeCard(card.ID)
	target.addCard(moved, lock)
	return EventOutcome{
		Applied:        true,
		CardID:         card.ID,
		TargetPlayerID: target.ID,
		Message:        fmt.Sprintf("Reorg: %s %s moved from %s to %s", card.Level, card.Role, p.Name, target.Name),
	}, nil
}

func (g *Game) resolveCompetition(p *Player) EventOutcome {
	if p.Challenge != nil {
		return EventOutcome{Message: fmt.Sprintf("Competition: %s already has a deadline on turn %d", p.Name, p.Challenge.MustCompleteByTurn)}
	}
	p.Challenge = &Challenge{MustCompleteByTurn: g.Turn + 1, AppliedTurn: g.Turn}
	return EventOutcome{
		Applied: true,
		Message: fmt.Sprintf("Competition: %s must ship a feature by turn %d", p.Name, g.Turn+1),
	}
}

func (g *Game) resolvePTO(p *Player, rng *randutil.Rng, sel *Selection) (EventOutcome, error) {
	if sel.CardID != "" {
		if !p.HasCard(sel.CardID) {
			return EventOutcome{}, fmt.Errorf("%w: %s not in %s's hand", ErrCardNotFound, sel.CardID, p.ID)
		}
		if _, locked := p.lockFor(sel.CardID); locked {
			return EventOutcome{}, fmt.Errorf("%w: %s", ErrCardLocked, sel.CardID)
		}
	}

	candidates := make([]ResourceCard, 0, len(p.Hand))
	for _, c := range p.Hand {
		if _, locked := p.lockFor(c.ID); !locked {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return EventOutcome{Message: fmt.Sprintf("PTO: %s has no one available to take leave", p.Name)}, nil
	}

	card, err := chooseCard(p, candidates, rng, sel)
	if err != nil {
		return EventOutcome{}, err
	}
	available := g.Turn + 2
	p.PtoCards = append(p.PtoCards, PtoLock{CardID: card.ID, AvailableOnTurn: available})
	return EventOutcome{
		Applied: true,
		CardID:  card.ID,
		Message: fmt.Sprintf("PTO: %s's %s %s is out until turn %d", p.Name, card.Level, card.Role, available),
	}, nil
}
