// Package randutil provides the seeded random stream every game is built on.
//
// # Determinism
//
// An Rng is fully determined by its seed string. Two instances created from
// the same seed return the same sequence of values, across runs and across
// processes. The generator is mulberry32 seeded with the xmur3 hash of the
// seed's UTF-16 code units, so seeds produce the same stream as the browser
// client that first issued them.
//
// State reports how many values have been drawn. It is for audit display
// only: resuming a game means creating a new Rng from the seed and replaying
// the same calls, not seeking to a position.
package randutil

import (
	"errors"
	"fmt"
	"strconv"
	"time"
	"unicode/utf16"
)

// ErrInvalidBound is returned by Int when the bound is not positive.
var ErrInvalidBound = errors.New("bound must be positive")

// State is an observational snapshot of an Rng.
type State struct {
	Seed     string `json:"seed"`
	Position uint64 `json:"position"`
}

// Rng is a deterministic pseudorandom stream. It is not safe for concurrent
// use; callers own exactly one Rng per game and thread it through every call.
type Rng struct {
	seed     string
	state    uint32
	position uint64
}

// New returns an Rng seeded from the given string.
func New(seed string) *Rng {
	return &Rng{seed: seed, state: hashSeed(seed)}
}

// DefaultSeed derives a seed from the supplied time, used when a caller does
// not provide one.
func DefaultSeed(now time.Time) string {
	return "seed-" + strconv.FormatInt(now.UnixMilli(), 36)
}

// Next returns a float in [0,1).
func (r *Rng) Next() float64 {
	r.position++
	r.state += 0x6D2B79F5
	a := r.state
	t := (a ^ a>>15) * (a | 1)
	t = (t + (t^t>>7)*(t|61)) ^ t
	return float64(t^t>>14) / 4294967296.0
}

// Int returns floor(Next()*max).
func (r *Rng) Int(max int) (int, error) {
	if max <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidBound, max)
	}
	return int(r.Next() * float64(max)), nil
}

// Intn is Int for callers that have already checked the bound. It panics if
// n <= 0, like math/rand.
func (r *Rng) Intn(n int) int {
	v, err := r.Int(n)
	if err != nil {
		panic(err)
	}
	return v
}

// State returns the seed and the number of values drawn so far.
func (r *Rng) State() State {
	return State{Seed: r.seed, Position: r.position}
}

// Seed returns the seed string the Rng was created from.
func (r *Rng) Seed() string {
	return r.seed
}

// hashSeed is xmur3 over UTF-16 code units, taking the first output.
func hashSeed(seed string) uint32 {
	units := utf16.Encode([]rune(seed))
	h := uint32(1779033703) ^ uint32(len(units))
	for _, u := range units {
		h = (h ^ uint32(u)) * 3432918353
		h = h<<13 | h>>19
	}
	h = (h ^ h>>16) * 2246822507
	h = (h ^ h>>13) * 3266489909
	h ^= h >> 16
	return h
}
