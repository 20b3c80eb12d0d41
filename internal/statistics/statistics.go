// Package statistics aggregates per-player outcomes across simulated games.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// GameOutcome is one player's result in one game.
type GameOutcome struct {
	Turns         int  // turns the player started
	VictoryPoints int  // points held when the game stopped
	Ended         bool // the end condition was reached before the turn limit
	Won           bool // tied or sole highest victory points
}

// Statistics tracks one player's outcomes over a run.
type Statistics struct {
	Games     int
	SumTurns  float64
	SumTurns2 float64   // Sum of squares for variance calculation
	Values    []float64 // Turn counts in game order, for median/percentile

	SumVP  float64
	SumVP2 float64

	Ended int // games that reached the end condition
	Wins  int

	MinTurns int
	MaxTurns int
}

// Add incorporates one game outcome.
func (s *Statistics) Add(o GameOutcome) {
	turns := float64(o.Turns)
	if s.Games == 0 || o.Turns < s.MinTurns {
		s.MinTurns = o.Turns
	}
	if o.Turns > s.MaxTurns {
		s.MaxTurns = o.Turns
	}
	s.Games++
	s.SumTurns += turns
	s.SumTurns2 += turns * turns
	s.Values = append(s.Values, turns)

	vp := float64(o.VictoryPoints)
	s.SumVP += vp
	s.SumVP2 += vp * vp

	if o.Ended {
		s.Ended++
	}
	if o.Won {
		s.Wins++
	}
}

// Mean returns the average number of turns per game.
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumTurns / float64(s.Games)
}

// Variance returns the sample variance of the turn counts.
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumTurns2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of the turn counts.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(math.Max(s.Variance(), 0))
}

// StdError returns the standard error of the mean turn count.
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
// turn count.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median turn count.
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the turn count at the given percentile (0.0 to 1.0),
// interpolating between neighbours.
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

func (s *Statistics) sorted() []float64 {
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)
	return sorted
}

// MeanVictoryPoints returns the average points held at game end.
func (s *Statistics) MeanVictoryPoints() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumVP / float64(s.Games)
}

// StdDevVictoryPoints returns the sample standard deviation of the points
// held at game end.
func (s *Statistics) StdDevVictoryPoints() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.MeanVictoryPoints()
	variance := (s.SumVP2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
	return math.Sqrt(math.Max(variance, 0))
}

// WinRate returns the fraction of games won or tied for the lead.
func (s *Statistics) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// EndRate returns the fraction of games that reached the end condition.
func (s *Statistics) EndRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Ended) / float64(s.Games)
}

// Validate checks the accumulated counters for consistency.
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}
	if len(s.Values) != s.Games {
		return fmt.Errorf("values array length (%d) does not match games count (%d)",
			len(s.Values), s.Games)
	}
	if s.Wins > s.Games {
		return fmt.Errorf("wins (%d) exceed games (%d)", s.Wins, s.Games)
	}
	if s.Ended > s.Games {
		return fmt.Errorf("ended games (%d) exceed games (%d)", s.Ended, s.Games)
	}
	if s.MinTurns > s.MaxTurns {
		return fmt.Errorf("min turns (%d) exceed max turns (%d)", s.MinTurns, s.MaxTurns)
	}
	return nil
}
