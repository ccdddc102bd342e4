package statistics

import (
	"fmt"
	"math"
	"sort"
)

// MaxTableSize bounds the per-table-size breakdown.
const MaxTableSize = 4

// GameResult represents the outcome of a single simulated game
type GameResult struct {
	Seed        string         // Seed the game was created with (for replay)
	Players     int            // Table size, 1-4
	Won         bool           // Team reached its target before the turn limit
	Turns       int            // Final value of the turn counter
	Completions int            // Features completed across the team
	Score       int            // Points scored across the team
	Penalized   int            // Completions that used contractors
	Revoked     int            // Completions lost to missed COMPETITION deadlines
	Events      map[string]int // Events drawn, by kind
}

// TableStats tracks statistics for one table size
type TableStats struct {
	Games int
	Wins  int
}

// Statistics aggregates simulated game results
type Statistics struct {
	Games  int
	Wins   int
	Losses int

	SumTurns  float64
	SumTurns2 float64   // Sum of squares for variance calculation
	Turns     []float64 // Store all values for median/percentile calculation

	Completions int
	Score       int
	Penalized   int
	Revoked     int
	Events      map[string]int

	// Index 0 unused, 1-4 for table sizes
	Tables [MaxTableSize + 1]TableStats
}

// Add incorporates a new game result into the statistics
func (s *Statistics) Add(result GameResult) {
	s.Games++
	if result.Won {
		s.Wins++
	} else {
		s.Losses++
	}

	turns := float64(result.Turns)
	s.SumTurns += turns
	s.SumTurns2 += turns * turns
	s.Turns = append(s.Turns, turns)

	s.Completions += result.Completions
	s.Score += result.Score
	s.Penalized += result.Penalized
	s.Revoked += result.Revoked

	if len(result.Events) > 0 && s.Events == nil {
		s.Events = make(map[string]int)
	}
	for kind, n := range result.Events {
		s.Events[kind] += n
	}

	if result.Players >= 1 && result.Players <= MaxTableSize {
		s.Tables[result.Players].Games++
		if result.Won {
			s.Tables[result.Players].Wins++
		}
	}
}

// WinRate returns the fraction of games won
func (s *Statistics) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// WinRateCI95 returns the normal-approximation 95% interval for the win
// rate, clamped to [0, 1]
func (s *Statistics) WinRateCI95() (float64, float64) {
	if s.Games == 0 {
		return 0, 0
	}
	p := s.WinRate()
	margin := 1.96 * math.Sqrt(p*(1-p)/float64(s.Games))
	return math.Max(0, p-margin), math.Min(1, p+margin)
}

// TableWinRate returns the win rate for games with n players
func (s *Statistics) TableWinRate(n int) float64 {
	if n < 1 || n > MaxTableSize {
		return 0
	}
	ts := s.Tables[n]
	if ts.Games == 0 {
		return 0
	}
	return float64(ts.Wins) / float64(ts.Games)
}

// MeanTurns returns the arithmetic mean of the final turn counter
func (s *Statistics) MeanTurns() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumTurns / float64(s.Games)
}

// Variance returns the sample variance of the turn counts
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.MeanTurns()
	return (s.SumTurns2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of the turn counts
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean turn count
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// Median returns the median turn count
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the turn count at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Turns) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Turns))
	copy(sorted, s.Turns)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// CompletionsPerGame returns the mean number of features completed
func (s *Statistics) CompletionsPerGame() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Completions) / float64(s.Games)
}

// PenaltyRate returns the fraction of completions that used contractors
func (s *Statistics) PenaltyRate() float64 {
	if s.Completions == 0 {
		return 0
	}
	return float64(s.Penalized) / float64(s.Completions)
}

// Validate checks the aggregates are internally consistent
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}
	if s.Wins+s.Losses != s.Games {
		return fmt.Errorf("wins (%d) + losses (%d) does not match games (%d)", s.Wins, s.Losses, s.Games)
	}
	if len(s.Turns) != s.Games {
		return fmt.Errorf("turns array length (%d) does not match games count (%d)", len(s.Turns), s.Games)
	}
	if s.Penalized > s.Completions {
		return fmt.Errorf("penalized completions (%d) exceed completions (%d)", s.Penalized, s.Completions)
	}

	tableGames := 0
	for n := 1; n <= MaxTableSize; n++ {
		tableGames += s.Tables[n].Games
		if s.Tables[n].Wins > s.Tables[n].Games {
			return fmt.Errorf("table size %d: wins (%d) exceed games (%d)", n, s.Tables[n].Wins, s.Tables[n].Games)
		}
	}
	if tableGames != s.Games {
		return fmt.Errorf("table games total (%d) does not match games (%d)", tableGames, s.Games)
	}
	return nil
}
