package registry

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/lox/shipit/internal/game"
	"github.com/lox/shipit/internal/randutil"
)

func newTestRegistry(t *testing.T) (*Registry, *quartz.Mock) {
	t.Helper()
	clock := quartz.NewMock(t)
	return New(log.New(io.Discard), clock), clock
}

func TestCreateAndWith(t *testing.T) {
	r, clock := newTestRegistry(t)

	id, err := r.Create(game.CreateOptions{PlayerNames: []string{"Ada", "Grace"}, Seed: "reg"})
	require.NoError(t, err)
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())

	err = r.With(id, func(g *game.Game, rng *randutil.Rng) error {
		assert.Equal(t, id, g.ID)
		assert.Equal(t, "reg", rng.Seed())
		assert.Equal(t, clock.Now(), g.CreatedAt)
		_, err := g.Draw(g.ActivePlayer, rng)
		return err
	})
	require.NoError(t, err)

	// state persists between calls
	err = r.With(id, func(g *game.Game, rng *randutil.Rng) error {
		_, err := g.Draw(g.ActivePlayer, rng)
		return err
	})
	assert.True(t, errors.Is(err, game.ErrAlreadyDrawn))
}

func TestCreatePropagatesEngineErrors(t *testing.T) {
	r, _ := newTestRegistry(t)
	_, err := r.Create(game.CreateOptions{})
	assert.True(t, errors.Is(err, game.ErrInvalidPlayerCount))
	assert.Zero(t, r.Len())
}

func TestUnknownGame(t *testing.T) {
	r, _ := newTestRegistry(t)

	called := false
	err := r.With("missing", func(*game.Game, *randutil.Rng) error {
		called = true
		return nil
	})
	assert.True(t, errors.Is(err, ErrGameNotFound))
	assert.False(t, called)

	_, err = r.Snapshot("missing")
	assert.True(t, errors.Is(err, ErrGameNotFound))
	assert.False(t, r.Delete("missing"))
}

func TestSnapshotIsDetached(t *testing.T) {
	r, _ := newTestRegistry(t)
	id, err := r.Create(game.CreateOptions{PlayerNames: []string{"Ada"}, Seed: "snap"})
	require.NoError(t, err)

	snap, err := r.Snapshot(id)
	require.NoError(t, err)
	snap.Game.Players[0].Hand = nil
	require.Contains(t, snap.Candidates, "p1")

	err = r.With(id, func(g *game.Game, _ *randutil.Rng) error {
		assert.Len(t, g.Players[0].Hand, 3)
		return nil
	})
	require.NoError(t, err)
}

func TestListAndDelete(t *testing.T) {
	r, _ := newTestRegistry(t)

	var ids []string
	for i := 0; i < 3; i++ {
		id, err := r.Create(game.CreateOptions{PlayerNames: []string{"Ada"}, Seed: fmt.Sprintf("list-%d", i)})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	list := r.List()
	require.Len(t, list, 3)
	assert.True(t, sort.SliceIsSorted(list, func(i, j int) bool { return list[i].ID < list[j].ID }))
	for _, s := range list {
		assert.Contains(t, ids, s.ID)
		assert.Equal(t, 1, s.Players)
		assert.Equal(t, 1, s.Turn)
		assert.Equal(t, game.StatusActive, s.Status)
	}

	assert.True(t, r.Delete(ids[1]))
	assert.False(t, r.Delete(ids[1]))
	assert.Len(t, r.List(), 2)
	assert.Equal(t, 2, r.Len())
}

func TestWithSerializesAccess(t *testing.T) {
	r, _ := newTestRegistry(t)
	id, err := r.Create(game.CreateOptions{PlayerNames: []string{"Ada", "Grace"}, Seed: "race"})
	require.NoError(t, err)
	other, err := r.Create(game.CreateOptions{PlayerNames: []string{"Linus"}, Seed: "race-2"})
	require.NoError(t, err)

	const writers = 50
	var eg errgroup.Group
	for i := 0; i < writers; i++ {
		target := id
		if i%5 == 0 {
			target = other
		}
		eg.Go(func() error {
			return r.With(target, func(g *game.Game, _ *randutil.Rng) error {
				g.PushLog(game.ActionLogEntry{Type: game.LogPass, Message: "tick"})
				return nil
			})
		})
		eg.Go(func() error {
			r.List()
			return nil
		})
	}
	require.NoError(t, eg.Wait())

	err = r.With(id, func(g *game.Game, _ *randutil.Rng) error {
		assert.Len(t, g.Log, 1+40)
		return nil
	})
	require.NoError(t, err)
	err = r.With(other, func(g *game.Game, _ *randutil.Rng) error {
		assert.Len(t, g.Log, 1+10)
		return nil
	})
	require.NoError(t, err)
}
