package game

import "fmt"

// challengeDiscard is how many hand cards a challenge penalty discards when
// the player has no completed feature to give up.
const challengeDiscard = 2

// EndTurn passes play to the next seat. It is a no-op on a finished game and
// fails while an event is pending.
//
// Before rotating, a due COMPETITION challenge on the outgoing player is
// settled: the most recent completed feature is revoked or, failing that, up
// to two cards are discarded from the end of the hand. Wrapping back to seat
// 0 starts a new round: the turn counter advances, PTO timers tick and the
// game is lost once the counter passes Config.MaxTurns.
func (g *Game) EndTurn() (Status, error) {
	if g.Status.Terminal() {
		return g.Status, nil
	}
	if err := g.ensureNoPendingEvent(); err != nil {
		return g.Status, err
	}
	current := g.Active()
	if current == nil {
		return g.Status, fmt.Errorf("%w: active player %q", ErrPlayerNotFound, g.ActivePlayer)
	}

	if c := current.Challenge; c != nil && g.Turn >= c.MustCompleteByTurn {
		g.applyChallengePenalty(current)
		current.Challenge = nil
	}

	current.TradedThisTurn = false
	next := g.Players[(current.Seat+1)%len(g.Players)]
	g.ActivePlayer = next.ID
	g.DrawnThisTurn = false

	if next.Seat == 0 {
		g.Turn++
		g.TickTimers()
		g.logf(next.ID, LogPass, "Round %d begins", g.Turn)
		if g.Turn > g.Config.MaxTurns && g.Status == StatusActive {
			g.Status = StatusLost
			g.logf("", LogPass, "Turn limit of %d reached, the team loses", g.Config.MaxTurns)
			g.log().Info("Game lost", "turn", g.Turn)
		}
	}
	g.log().Debug("Turn ended", "from", current.ID, "to", next.ID, "turn", g.Turn)
	return g.Status, nil
}

func (g *Game) applyChallengePenalty(p *Player) {
	if n := len(p.CompletedFeatures); n > 0 {
		revoked := p.CompletedFeatures[n-1]
		p.CompletedFeatures = p.CompletedFeatures[:n-1]
		g.logf(p.ID, LogEvent, "Competition: %s missed the deadline and lost credit for %s", p.Name, revoked)
		return
	}
	discarded := 0
	for discarded < challengeDiscard && len(p.Hand) > 0 {
		p.removeCard(p.Hand[len(p.Hand)-1].ID)
		discarded++
	}
	g.logf(p.ID, LogEvent, "Competition: %s missed the deadline and discarded %d cards", p.Name, discarded)
}

// TickTimers releases PTO locks that have matured by the current turn. It
// runs once per round, from EndTurn.
func (g *Game) TickTimers() {
	for _, p := range g.Players {
		kept := p.PtoCards[:0:0]
		released := 0
		for _, l := range p.PtoCards {
			if l.AvailableOnTurn <= g.Turn {
				released++
				continue
			}
			kept = append(kept, l)
		}
		if released == 0 {
			continue
		}
		p.PtoCards = kept
		g.logf(p.ID, LogEvent, "PTO over: %d of %s's cards are available again", released, p.Name)
	}
}
