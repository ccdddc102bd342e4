package main

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/shipit/internal/simulator"
)

func TestPick(t *testing.T) {
	assert.Equal(t, 3, pick(3, 7))
	assert.Equal(t, 7, pick(0, 7))
	assert.Equal(t, 7, pick(-1, 7))
}

func TestRenderReport(t *testing.T) {
	sc := simulator.Config{
		Games:   5,
		Players: 2,
		Seed:    "render",
		Workers: 2,
		Policy:  simulator.Greedy{},
		Clock:   quartz.NewMock(t),
		Logger:  log.New(io.Discard),
	}
	stats, err := simulator.New(sc).Run(context.Background())
	require.NoError(t, err)

	out := renderReport(stats, sc, 1500*time.Millisecond)
	assert.Contains(t, out, "5 games, 2 players, greedy policy")
	assert.Contains(t, out, "seed render")
	assert.Contains(t, out, "Win rate 95% CI")
	assert.Contains(t, out, "Features per game")
}

func TestRenderReplay(t *testing.T) {
	sim := simulator.New(simulator.Config{Players: 2, Clock: quartz.NewMock(t), Logger: log.New(io.Discard)})
	g, _, err := sim.PlayGame(context.Background(), "render-replay")
	require.NoError(t, err)

	logOut := renderLog(g)
	require.NotEmpty(t, g.Log)
	assert.Contains(t, logOut, g.Log[len(g.Log)-1].Message)

	outcome := renderOutcome(g)
	assert.Contains(t, outcome, string(g.Status))
	assert.Contains(t, outcome, "Player 1")
}
