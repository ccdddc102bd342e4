package game

import "fmt"

// TradeResult reports a completed trade.
type TradeResult struct {
	From   string       `json:"from"`
	To     string       `json:"to"`
	Card   ResourceCard `json:"card"`
	Locked bool         `json:"locked"`
}

// Trade gives one resource card from the active player to a teammate. Each
// player may trade once per turn. A PTO lock on the card travels with it.
func (g *Game) Trade(fromPlayerID, toPlayerID, cardID string) (TradeResult, error) {
	if err := g.ensureActive(); err != nil {
		return TradeResult{}, err
	}
	if err := g.ensureNoPendingEvent(); err != nil {
		return TradeResult{}, err
	}
	from, err := g.actingPlayer(fromPlayerID)
	if err != nil {
		return TradeResult{}, err
	}
	if toPlayerID == fromPlayerID {
		return TradeResult{}, ErrSelfTrade
	}
	to, err := g.Player(toPlayerID)
	if err != nil {
		return TradeResult{}, err
	}
	if from.TradedThisTurn {
		return TradeResult{}, fmt.Errorf("%w: %s on turn %d", ErrAlreadyTraded, from.ID, g.Turn)
	}

	card, lock, ok := from.removeCard(cardID)
	if !ok {
		return TradeResult{}, fmt.Errorf("%w: %s not in %s's hand", ErrCardNotFound, cardID, from.ID)
	}
	to.addCard(card, lock)
	from.TradedThisTurn = true

	g.logf(from.ID, LogTrade, "%s gave %s %s to %s", from.Name, card.Level, card.Role, to.Name)
	g.log().Debug("Traded card", "from", from.ID, "to", to.ID, "card", card.ID)
	return TradeResult{From: from.ID, To: to.ID, Card: card, Locked: lock != nil}, nil
}

// TradedInRound reports whether the log holds a TRADE by the player for the
// current turn number. Trimmed entries are invisible to it, so enforcement
// uses Player.TradedThisTurn; this is for audit tooling only.
func (g *Game) TradedInRound(playerID string) bool {
	for i := len(g.Log) - 1; i >= 0; i-- {
		entry := g.Log[i]
		if entry.Turn < g.Turn {
			break
		}
		if entry.Type == LogTrade && entry.PlayerID == playerID {
			return true
		}
	}
	return false
}
