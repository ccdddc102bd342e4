package game

import (
	"slices"

	"github.com/lox/shipit/internal/deck"
)

// Challenge is a COMPETITION deadline: complete a feature by MustCompleteByTurn
// or take a penalty when that turn ends.
type Challenge struct {
	MustCompleteByTurn int `json:"mustCompleteByTurn"`
	AppliedTurn        int `json:"appliedTurn"`
}

// PtoLock keeps a card in hand but out of completions until AvailableOnTurn.
type PtoLock struct {
	CardID          string `json:"cardId"`
	AvailableOnTurn int    `json:"availableOnTurn"`
}

// Player is one seat at the table.
type Player struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Seat              int               `json:"seat"`
	Hand              []ResourceCard    `json:"hand"`
	ActiveFeature     *deck.FeatureCard `json:"activeFeature,omitempty"`
	CompletedFeatures []string          `json:"completedFeatures"`
	Score             int               `json:"score"`
	Challenge         *Challenge        `json:"challenge,omitempty"`
	PtoCards          []PtoLock         `json:"ptoCards"`
	TradedThisTurn    bool              `json:"tradedThisTurn"`
}

// CardIndex returns the position of a card in the hand, or -1.
func (p *Player) CardIndex(cardID string) int {
	for i, card := range p.Hand {
		if card.ID == cardID {
			return i
		}
	}
	return -1
}

// HasCard reports whether the card is in the hand.
func (p *Player) HasCard(cardID string) bool {
	return p.CardIndex(cardID) >= 0
}

// removeCard takes a card out of the hand. Any PTO lock on it is returned so
// it can follow the card to its next owner.
func (p *Player) removeCard(cardID string) (ResourceCard, *PtoLock, bool) {
	i := p.CardIndex(cardID)
	if i < 0 {
		return ResourceCard{}, nil, false
	}
	card := p.Hand[i]
	p.Hand = append(p.Hand[:i:i], p.Hand[i+1:]...)

	var lock *PtoLock
	for j, l := range p.PtoCards {
		if l.CardID == cardID {
			found := l
			lock = &found
			p.PtoCards = append(p.PtoCards[:j:j], p.PtoCards[j+1:]...)
			break
		}
	}
	return card, lock, true
}

// addCard puts a card, and its lock if it had one, into the hand.
func (p *Player) addCard(card ResourceCard, lock *PtoLock) {
	p.Hand = append(p.Hand, card)
	if lock != nil {
		p.PtoCards = append(p.PtoCards, *lock)
	}
}

// lockFor returns the PTO lock on a card, if any.
func (p *Player) lockFor(cardID string) (PtoLock, bool) {
	for _, l := range p.PtoCards {
		if l.CardID == cardID {
			return l, true
		}
	}
	return PtoLock{}, false
}

// IsLocked reports whether a card is unusable on the given turn.
func (p *Player) IsLocked(cardID string, turn int) bool {
	l, ok := p.lockFor(cardID)
	return ok && l.AvailableOnTurn > turn
}

// clone returns a deep copy.
func (p *Player) clone() *Player {
	out := *p
	out.Hand = slices.Clone(p.Hand)
	out.CompletedFeatures = slices.Clone(p.CompletedFeatures)
	out.PtoCards = slices.Clone(p.PtoCards)
	if p.ActiveFeature != nil {
		f := p.ActiveFeature.Clone()
		out.ActiveFeature = &f
	}
	if p.Challenge != nil {
		c := *p.Challenge
		out.Challenge = &c
	}
	return &out
}
