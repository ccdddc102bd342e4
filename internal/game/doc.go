// Package game implements the deterministic state engine for shipit, a
// cooperative card game where players draw resource and event cards, spend
// resources to complete feature cards, trade with each other and race a
// turn limit.
//
// The root type is Game. Every operation is a method that mutates the Game
// synchronously and returns a result or an error; nothing blocks, schedules
// work or takes a lock.
//
// # Basic Usage
//
//	g, rng, err := game.Create(game.CreateOptions{
//	    PlayerNames: []string{"Ada", "Grace"},
//	    Seed:        "sprint-42",
//	})
//	res, err := g.Draw(g.ActivePlayer, rng)
//	if res.Event != nil {
//	    _, err = g.AcknowledgeEvent(g.ActivePlayer, rng, nil)
//	}
//	status, err := g.EndTurn()
//
// # Determinism
//
// Create returns the live *randutil.Rng alongside the Game. Callers must keep
// that instance and pass it to every later call: the same seed and the same
// sequence of calls always produce the same Game, log included, provided the
// clock is fixed (see quartz.NewMock). Recreating the Rng from its seed
// mid-game restarts the stream and breaks replay.
//
// # Concurrency
//
// A Game is not safe for concurrent use. Hosts running several games
// serialize access per game, see the registry package.
//
// # Errors
//
// Failures are returned as wrapped sentinel errors (ErrNotActivePlayer,
// ErrCardNotFound, ...). Kind classifies an error as a precondition
// violation, a missing entity or a finished game, which is what a transport
// layer needs to pick a status code.
package game
