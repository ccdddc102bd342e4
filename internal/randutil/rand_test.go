package randutil

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextMatchesReferenceStream(t *testing.T) {
	tests := []struct {
		seed string
		hash uint32
		want []float64
	}{
		{"x", 3439761885, []float64{0.591182969044894, 0.592788509093225, 0.2216330743394792, 0.6173690836876631}},
		{"shipit", 2893791962, []float64{0.7291779450606555, 0.5104155763983727, 0.16021332703530788, 0.3734340607188642}},
		// surrogate pairs hash as two UTF-16 code units
		{"é🚀", 4282432294, []float64{0.011385384015738964, 0.2561114903073758, 0.99707365850918, 0.5422608216758817}},
	}

	for _, tt := range tests {
		t.Run(tt.seed, func(t *testing.T) {
			assert.Equal(t, tt.hash, hashSeed(tt.seed))

			r := New(tt.seed)
			for i, want := range tt.want {
				assert.Equal(t, want, r.Next(), "value %d", i)
			}
		})
	}
}

func TestSameSeedSameStream(t *testing.T) {
	a := New("replay-me")
	b := New("replay-me")
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Next(), b.Next(), "diverged at %d", i)
	}

	c := New("replay-me-too")
	same := 0
	for i := 0; i < 100; i++ {
		if a.Next() == c.Next() {
			same++
		}
	}
	assert.Less(t, same, 5)
}

func TestNextRange(t *testing.T) {
	r := New("range")
	for i := 0; i < 10000; i++ {
		v := r.Next()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestInt(t *testing.T) {
	r := New("x")
	// floor of the reference values * 10
	for _, want := range []int{5, 5, 2} {
		got, err := r.Int(10)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	for _, bound := range []int{0, -1} {
		_, err := r.Int(bound)
		assert.True(t, errors.Is(err, ErrInvalidBound))
	}
	assert.Panics(t, func() { r.Intn(0) })
}

func TestIntStaysInBounds(t *testing.T) {
	r := New("bounds")
	for i := 0; i < 5000; i++ {
		v := r.Intn(3)
		require.True(t, v >= 0 && v < 3, "got %d", v)
	}
}

func TestState(t *testing.T) {
	r := New("audit")
	assert.Equal(t, State{Seed: "audit", Position: 0}, r.State())

	r.Next()
	_, _ = r.Int(4)
	assert.Equal(t, State{Seed: "audit", Position: 2}, r.State())

	// a failed Int does not consume a value
	_, _ = r.Int(0)
	assert.Equal(t, uint64(2), r.State().Position)
	assert.Equal(t, "audit", r.Seed())
}

func TestDefaultSeed(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	assert.Equal(t, DefaultSeed(now), DefaultSeed(now))
	assert.NotEqual(t, DefaultSeed(now), DefaultSeed(now.Add(time.Millisecond)))
	assert.Contains(t, DefaultSeed(now), "seed-")
}
