package deck

import "encoding/json"

// Intner is the slice of an RNG that shuffling needs.
type Intner interface {
	Intn(n int) int
}

// Shuffle randomizes cards in place using Fisher-Yates from the last index
// down. The same rng state always yields the same order.
func Shuffle(cards []FeatureCard, rng Intner) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// Deck is a queue of feature cards; index 0 is drawn next.
type Deck struct {
	cards []FeatureCard
}

// New creates a deck holding cards in the given order.
func New(cards []FeatureCard) *Deck {
	return &Deck{cards: append([]FeatureCard(nil), cards...)}
}

// Draw removes and returns the front card
func (d *Deck) Draw() (FeatureCard, bool) {
	if len(d.cards) == 0 {
		return FeatureCard{}, false
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// Peek returns the front card without removing it
func (d *Deck) Peek() (FeatureCard, bool) {
	if len(d.cards) == 0 {
		return FeatureCard{}, false
	}
	return d.cards[0], true
}

// Remove takes the card with the given id out of the deck, reporting whether
// it was present.
func (d *Deck) Remove(id string) bool {
	for i, card := range d.cards {
		if card.ID == id {
			d.cards = append(d.cards[:i:i], d.cards[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether a card with the given id is in the deck.
func (d *Deck) Contains(id string) bool {
	for _, card := range d.cards {
		if card.ID == id {
			return true
		}
	}
	return false
}

// Len returns the number of cards left
func (d *Deck) Len() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the remaining cards in draw order.
func (d *Deck) Cards() []FeatureCard {
	out := make([]FeatureCard, len(d.cards))
	for i, card := range d.cards {
		out[i] = card.Clone()
	}
	return out
}

// MarshalJSON encodes the deck as its ordered card list.
func (d *Deck) MarshalJSON() ([]byte, error) {
	if d.cards == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(d.cards)
}

// UnmarshalJSON decodes an ordered card list.
func (d *Deck) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &d.cards)
}
