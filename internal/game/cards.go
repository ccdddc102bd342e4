package game

import (
	"fmt"

	"github.com/lox/shipit/internal/deck"
)

// Level is the seniority of a resource card.
type Level string

const (
	Entry    Level = "ENTRY"
	Junior   Level = "JUNIOR"
	Senior   Level = "SENIOR"
	Contract Level = "CONTRACT"
)

// contractorPoints is the fixed value of a contractor card, both as printed
// and as a completion wildcard.
const contractorPoints = 2

// Points returns the value printed on a card of this level.
func (l Level) Points() int {
	switch l {
	case Senior:
		return 3
	case Junior:
		return 2
	case Entry:
		return 1
	case Contract:
		return contractorPoints
	default:
		return 0
	}
}

// levelFromRoll maps a roll in [0,1) onto uniform thirds.
func levelFromRoll(roll float64) Level {
	switch {
	case roll < 1.0/3.0:
		return Entry
	case roll < 2.0/3.0:
		return Junior
	default:
		return Senior
	}
}

// ResourceCard is a staff member a player can spend on a feature. Cards are
// immutable; only their owner changes.
type ResourceCard struct {
	ID     string    `json:"id"`
	Role   deck.Role `json:"role"`
	Level  Level     `json:"level"`
	Points int       `json:"points"`
}

// IsContractor reports whether the card is a completion wildcard.
func (c ResourceCard) IsContractor() bool {
	return c.Role == deck.Contractor
}

// String returns e.g. "res-4 DEV/SENIOR(3)"
func (c ResourceCard) String() string {
	return fmt.Sprintf("%s %s/%s(%d)", c.ID, c.Role, c.Level, c.Points)
}

// EventKind identifies an event card.
type EventKind string

const (
	Layoff      EventKind = "LAYOFF"
	Reorg       EventKind = "REORG"
	Competition EventKind = "COMPETITION"
	PTO         EventKind = "PTO"
)

// EventKinds lists every kind in draw order.
var EventKinds = []EventKind{Layoff, Reorg, Competition, PTO}

// String returns the string representation of the event kind
func (k EventKind) String() string {
	return string(k)
}

// EventCard is a drawn event waiting to be resolved. It only ever lives in
// Game.PendingEvent.
type EventCard struct {
	ID      string         `json:"id"`
	Kind    EventKind      `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

// nextCardID returns a deterministic id unique within the game.
func (g *Game) nextCardID(prefix string) string {
	g.cardSeq++
	return fmt.Sprintf("%s-%d", prefix, g.cardSeq)
}

// newResource builds a resource card of the given role. Contractors ignore
// level.
func (g *Game) newResource(role deck.Role, level Level) ResourceCard {
	if role == deck.Contractor {
		level = Contract
	}
	return ResourceCard{
		ID:     g.nextCardID("res"),
		Role:   role,
		Level:  level,
		Points: level.Points(),
	}
}
