package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/require"

	"github.com/lox/shipit/internal/deck"
	"github.com/lox/shipit/internal/randutil"
)

// newTestGame creates a game on a mock clock with the built-in catalog.
func newTestGame(t *testing.T, seed string, names ...string) (*Game, *randutil.Rng) {
	t.Helper()
	g, rng, err := Create(CreateOptions{
		PlayerNames: names,
		Seed:        seed,
		Clock:       quartz.NewMock(t),
		Logger:      log.New(io.Discard),
	})
	require.NoError(t, err)
	return g, rng
}

// res builds a resource card with an explicit id.
func res(id string, role deck.Role, points int) ResourceCard {
	level := map[int]Level{1: Entry, 2: Junior, 3: Senior}[points]
	if role == deck.Contractor {
		level, points = Contract, contractorPoints
	}
	return ResourceCard{ID: id, Role: role, Level: level, Points: points}
}

// feature builds a feature card with the given requirements.
func feature(id string, total int, reqs ...deck.Requirement) *deck.FeatureCard {
	return &deck.FeatureCard{ID: id, Name: "Feature " + id, TotalPoints: total, Requirements: reqs}
}

// handIDs lists the ids in a player's hand.
func handIDs(p *Player) []string {
	ids := make([]string, len(p.Hand))
	for i, c := range p.Hand {
		ids[i] = c.ID
	}
	return ids
}

// lastLog returns the newest log entry.
func lastLog(t *testing.T, g *Game) ActionLogEntry {
	t.Helper()
	require.NotEmpty(t, g.Log)
	return g.Log[len(g.Log)-1]
}

// playout drives a game to the end with a simple cooperative policy and
// returns the number of EndTurn calls. It fails the test on any unexpected
// engine error.
func playout(t *testing.T, g *Game, rng *randutil.Rng, check func()) int {
	t.Helper()
	turns := 0
	for !g.Status.Terminal() {
		id := g.ActivePlayer
		drawn, err := g.Draw(id, rng)
		require.NoError(t, err)
		check()
		if drawn.Event != nil {
			_, err := g.AcknowledgeEvent(id, rng, nil)
			require.NoError(t, err)
			check()
		}

		cands, err := g.CompletionCandidates(id)
		require.NoError(t, err)
		if cands.Coverable {
			_, err := g.AttemptComplete(id, []string{cands.FeatureID}, cands.Suggested)
			require.NoError(t, err)
			check()
			if g.Status.Terminal() {
				break
			}
		}

		p, _ := g.Player(id)
		if len(g.Players) > 1 && len(p.Hand) > 0 {
			to := g.Players[(p.Seat+1)%len(g.Players)]
			_, err := g.Trade(id, to.ID, p.Hand[0].ID)
			require.NoError(t, err)
			check()
		}

		_, err = g.EndTurn()
		require.NoError(t, err)
		check()
		turns++
		require.Less(t, turns, 1000, "game did not terminate")
	}
	return turns
}
