package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/shipit/internal/deck"
)

func TestTrade(t *testing.T) {
	g := eventGame(t)

	got, err := g.Trade("p1", "p2", "a2")
	require.NoError(t, err)
	assert.Equal(t, "p1", got.From)
	assert.Equal(t, "p2", got.To)
	assert.Equal(t, res("a2", deck.PM, 2), got.Card)
	assert.False(t, got.Locked)

	assert.Equal(t, []string{"a1", "a3"}, handIDs(g.Players[0]))
	assert.Equal(t, []string{"b1", "a2"}, handIDs(g.Players[1]))
	assert.True(t, g.Players[0].TradedThisTurn)
	assert.True(t, g.TradedInRound("p1"))
	assert.False(t, g.TradedInRound("p2"))

	entry := lastLog(t, g)
	assert.Equal(t, LogTrade, entry.Type)
	assert.Equal(t, "p1", entry.PlayerID)
	assert.Equal(t, g.Turn, entry.Turn)
}

func TestTradeOncePerTurn(t *testing.T) {
	g := eventGame(t)

	_, err := g.Trade("p1", "p2", "a1")
	require.NoError(t, err)
	_, err = g.Trade("p1", "p2", "a2")
	assert.True(t, errors.Is(err, ErrAlreadyTraded))
	assert.Len(t, g.Players[0].Hand, 2)

	// the allowance comes back on the player's next turn
	_, err = g.EndTurn()
	require.NoError(t, err)
	assert.False(t, g.Players[0].TradedThisTurn)
	_, err = g.Trade("p2", "p1", "b1")
	require.NoError(t, err)
	_, err = g.EndTurn()
	require.NoError(t, err)

	_, err = g.Trade("p1", "p2", "a2")
	require.NoError(t, err)
}

func TestTradeKeepsLock(t *testing.T) {
	g := eventGame(t)
	g.Players[0].PtoCards = []PtoLock{{CardID: "a1", AvailableOnTurn: 3}}

	got, err := g.Trade("p1", "p2", "a1")
	require.NoError(t, err)
	assert.True(t, got.Locked)
	assert.Empty(t, g.Players[0].PtoCards)
	assert.True(t, g.Players[1].IsLocked("a1", g.Turn))
}

func TestTradeErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Game)
		from  string
		to    string
		card  string
		want  error
	}{
		{name: "not active", from: "p2", to: "p1", card: "b1", want: ErrNotActivePlayer},
		{name: "self", from: "p1", to: "p1", card: "a1", want: ErrSelfTrade},
		{name: "unknown target", from: "p1", to: "p5", card: "a1", want: ErrPlayerNotFound},
		{name: "unknown source", from: "p5", to: "p1", card: "a1", want: ErrPlayerNotFound},
		{name: "card not held", from: "p1", to: "p2", card: "b1", want: ErrCardNotFound},
		{
			name:  "pending event",
			setup: func(g *Game) { g.PendingEvent = &EventCard{ID: "evt-1", Kind: Reorg} },
			from:  "p1",
			to:    "p2",
			card:  "a1",
			want:  ErrEventPending,
		},
		{
			name:  "game over",
			setup: func(g *Game) { g.Status = StatusWon },
			from:  "p1",
			to:    "p2",
			card:  "a1",
			want:  ErrGameOver,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := eventGame(t)
			if tt.setup != nil {
				tt.setup(g)
			}
			logs := len(g.Log)

			_, err := g.Trade(tt.from, tt.to, tt.card)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Len(t, g.Players[0].Hand, 3)
			assert.Len(t, g.Players[1].Hand, 1)
			assert.False(t, g.Players[0].TradedThisTurn)
			assert.Len(t, g.Log, logs)
		})
	}
}
