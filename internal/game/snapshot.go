package game

// Snapshot is a read-only view of a game for serializers: a deep copy of the
// state plus each player's completion preview.
type Snapshot struct {
	Game       *Game                 `json:"game"`
	Candidates map[string]Candidates `json:"candidates"`
}

// Snapshot copies the game for transport. Mutating the result never affects g.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Game:       g.Clone(),
		Candidates: make(map[string]Candidates, len(g.Players)),
	}
	for _, p := range g.Players {
		c, err := g.CompletionCandidates(p.ID)
		if err != nil {
			continue
		}
		snap.Candidates[p.ID] = c
	}
	return snap
}

// CardCensus counts every card id the game currently holds, wherever it is:
// feature deck, discard pile, active features, hands and the pending event.
// Any count above 1 means a card was duplicated.
func (g *Game) CardCensus() map[string]int {
	counts := make(map[string]int)
	if g.FeatureDeck != nil {
		for _, f := range g.FeatureDeck.Cards() {
			counts[f.ID]++
		}
	}
	for _, f := range g.DiscardPile {
		counts[f.ID]++
	}
	for _, p := range g.Players {
		if p.ActiveFeature != nil {
			counts[p.ActiveFeature.ID]++
		}
		for _, c := range p.Hand {
			counts[c.ID]++
		}
	}
	if g.PendingEvent != nil {
		counts[g.PendingEvent.ID]++
	}
	return counts
}
