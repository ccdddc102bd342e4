package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/shipit/internal/deck"
)

func TestDrawPreconditions(t *testing.T) {
	g, rng := newTestGame(t, "draw", "Ada", "Grace")

	_, err := g.Draw("p2", rng)
	assert.True(t, errors.Is(err, ErrNotActivePlayer))

	_, err = g.Draw("nobody", rng)
	assert.True(t, errors.Is(err, ErrPlayerNotFound))
	assert.Equal(t, KindNotFound, Kind(err))

	_, err = g.Draw("p1", rng)
	require.NoError(t, err)
	assert.True(t, g.DrawnThisTurn)

	_, err = g.Draw("p1", rng)
	assert.True(t, errors.Is(err, ErrAlreadyDrawn))

	g.Status = StatusLost
	g.DrawnThisTurn = false
	_, err = g.Draw("p1", rng)
	assert.True(t, errors.Is(err, ErrGameOver))
	assert.Equal(t, KindGameOver, Kind(err))
}

func TestDrawResource(t *testing.T) {
	g, rng := newTestGame(t, "resources", "Ada")
	g.Config.ResourceWeight = 1
	p := g.Players[0]

	for i := 0; i < 200; i++ {
		before := len(p.Hand)
		logs := len(g.Log)
		got, err := g.Draw("p1", rng)
		require.NoError(t, err)
		require.NotNil(t, got.Resource)
		require.Nil(t, got.Event)

		card := *got.Resource
		require.Len(t, p.Hand, before+1)
		assert.Equal(t, card, p.Hand[len(p.Hand)-1])
		assert.True(t, card.Role.Valid())
		if card.Role == deck.Contractor {
			assert.Equal(t, Contract, card.Level)
			assert.Equal(t, 2, card.Points)
		} else {
			assert.Contains(t, []Level{Entry, Junior, Senior}, card.Level)
			assert.Equal(t, card.Level.Points(), card.Points)
		}
		require.Len(t, g.Log, min(logs+1, g.Config.LogRetention))
		assert.Equal(t, LogDraw, lastLog(t, g).Type)

		g.DrawnThisTurn = false
	}
}

func TestDrawEvent(t *testing.T) {
	g, rng := newTestGame(t, "events", "Ada", "Grace")
	g.Config.ResourceWeight = 0 // every roll is an event
	hand := len(g.Players[0].Hand)

	got, err := g.Draw("p1", rng)
	require.NoError(t, err)
	require.NotNil(t, got.Event)
	assert.Nil(t, got.Resource)
	assert.Contains(t, EventKinds, got.Event.Kind)

	require.NotNil(t, g.PendingEvent)
	assert.Equal(t, *got.Event, *g.PendingEvent)
	assert.True(t, g.DrawnThisTurn)
	assert.Len(t, g.Players[0].Hand, hand, "events are not added to the hand")

	entry := lastLog(t, g)
	assert.Equal(t, LogDraw, entry.Type)
	assert.True(t, strings.Contains(entry.Message, "pending"), entry.Message)

	// a second event cannot displace the first
	g.DrawnThisTurn = false
	pending := *g.PendingEvent
	_, err = g.Draw("p1", rng)
	assert.True(t, errors.Is(err, ErrEventPending))
	assert.Equal(t, pending, *g.PendingEvent)
}

func TestDrawCoversAllKinds(t *testing.T) {
	g, rng := newTestGame(t, "kinds", "Ada")
	g.Config.ResourceWeight = 0

	seen := make(map[EventKind]bool)
	for i := 0; i < 100; i++ {
		got, err := g.Draw("p1", rng)
		require.NoError(t, err)
		seen[got.Event.Kind] = true
		g.PendingEvent = nil
		g.DrawnThisTurn = false
	}
	assert.Len(t, seen, 4)
}

func TestDrawIsDeterministic(t *testing.T) {
	a, rngA := newTestGame(t, "same", "Ada", "Grace")
	b, rngB := newTestGame(t, "same", "Ada", "Grace")

	for i := 0; i < 20; i++ {
		ra, errA := a.Draw(a.ActivePlayer, rngA)
		rb, errB := b.Draw(b.ActivePlayer, rngB)
		require.Equal(t, errA, errB)
		require.Equal(t, ra, rb)
		a.DrawnThisTurn, b.DrawnThisTurn = false, false
		a.PendingEvent, b.PendingEvent = nil, nil
	}
	assert.Equal(t, a.Players, b.Players)
}
