package game

import (
	"fmt"

	"github.com/lox/shipit/internal/deck"
	"github.com/lox/shipit/internal/randutil"
)

// DrawResult reports what a draw produced. Exactly one of Resource and Event
// is set.
type DrawResult struct {
	Resource *ResourceCard `json:"resource,omitempty"`
	Event    *EventCard    `json:"event,omitempty"`
}

// Draw resolves the active player's draw for the turn. With probability
// Config.ResourceWeight the player receives a new resource card; otherwise an
// event card becomes the pending event and must be acknowledged before play
// continues. Either way the player's draw for the turn is used.
func (g *Game) Draw(playerID string, rng *randutil.Rng) (DrawResult, error) {
	if err := g.ensureActive(); err != nil {
		return DrawResult{}, err
	}
	p, err := g.actingPlayer(playerID)
	if err != nil {
		return DrawResult{}, err
	}
	if g.DrawnThisTurn {
		return DrawResult{}, fmt.Errorf("%w: %s on turn %d", ErrAlreadyDrawn, playerID, g.Turn)
	}

	if rng.Next() < g.Config.ResourceWeight {
		role := deck.AllRoles[rng.Intn(len(deck.AllRoles))]
		level := Contract
		if role != deck.Contractor {
			level = levelFromRoll(rng.Next())
		}
		card := g.newResource(role, level)
		p.Hand = append(p.Hand, card)
		g.DrawnThisTurn = true

		g.logf(p.ID, LogDraw, "%s drew %s %s (%d pts)", p.Name, card.Level, card.Role, card.Points)
		g.log().Debug("Drew resource", "player", p.ID, "card", card.ID, "role", card.Role, "points", card.Points)
		return DrawResult{Resource: &card}, nil
	}

	kind := EventKinds[rng.Intn(len(EventKinds))]
	if g.PendingEvent != nil {
		return DrawResult{}, fmt.Errorf("%w: %s %s", ErrEventPending, g.PendingEvent.Kind, g.PendingEvent.ID)
	}
	evt := EventCard{ID: g.nextCardID("evt"), Kind: kind}
	g.PendingEvent = &evt
	g.DrawnThisTurn = true

	g.logf(p.ID, LogDraw, "%s drew event %s (pending)", p.Name, kind)
	g.log().Debug("Drew event", "player", p.ID, "event", evt.ID, "kind", kind)
	out := evt
	return DrawResult{Event: &out}, nil
}
