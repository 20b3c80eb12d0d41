package statistics

import (
	"math"
	"testing"
)

func TestStatistics_Empty(t *testing.T) {
	stats := &Statistics{}

	if stats.Mean() != 0 {
		t.Errorf("Expected mean of 0 for empty stats, got %f", stats.Mean())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for empty stats, got %f", stats.Variance())
	}
	if stats.StdError() != 0 {
		t.Errorf("Expected stderr of 0 for empty stats, got %f", stats.StdError())
	}
	if stats.Median() != 0 {
		t.Errorf("Expected median of 0 for empty stats, got %f", stats.Median())
	}
	if stats.Percentile(0.5) != 0 {
		t.Errorf("Expected percentile of 0 for empty stats, got %f", stats.Percentile(0.5))
	}
	if stats.WinRate() != 0 || stats.EndRate() != 0 || stats.MeanVictoryPoints() != 0 {
		t.Error("Expected zero rates for empty stats")
	}
	if err := stats.Validate(); err == nil {
		t.Error("Expected validation error for empty stats")
	}
}

func TestStatistics_SingleValue(t *testing.T) {
	stats := &Statistics{}
	stats.Add(GameOutcome{Turns: 17, VictoryPoints: 27, Ended: true, Won: true})

	if stats.Games != 1 {
		t.Errorf("Expected 1 game, got %d", stats.Games)
	}
	if stats.Mean() != 17 {
		t.Errorf("Expected mean of 17, got %f", stats.Mean())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for single value, got %f", stats.Variance())
	}
	if stats.Median() != 17 {
		t.Errorf("Expected median of 17, got %f", stats.Median())
	}
	if stats.MinTurns != 17 || stats.MaxTurns != 17 {
		t.Errorf("Expected min/max of 17, got %d/%d", stats.MinTurns, stats.MaxTurns)
	}
	if stats.WinRate() != 1 || stats.EndRate() != 1 {
		t.Errorf("Expected win and end rate of 1, got %f and %f", stats.WinRate(), stats.EndRate())
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Unexpected validation error: %v", err)
	}
}

func TestStatistics_MultipleValues(t *testing.T) {
	stats := &Statistics{}
	outcomes := []GameOutcome{
		{Turns: 15, VictoryPoints: 24, Ended: true, Won: true},
		{Turns: 18, VictoryPoints: 27, Ended: true},
		{Turns: 30, VictoryPoints: 12},
		{Turns: 16, VictoryPoints: 24, Ended: true, Won: true},
		{Turns: 17, VictoryPoints: 21, Ended: true},
	}
	for _, o := range outcomes {
		stats.Add(o)
	}

	expectedMean := (15.0 + 18 + 30 + 16 + 17) / 5
	if math.Abs(stats.Mean()-expectedMean) > 1e-9 {
		t.Errorf("Expected mean of %f, got %f", expectedMean, stats.Mean())
	}

	// sorted: 15 16 17 18 30
	if stats.Median() != 17 {
		t.Errorf("Expected median of 17, got %f", stats.Median())
	}
	if got := stats.Percentile(0.25); got != 16 {
		t.Errorf("Expected P25 of 16, got %f", got)
	}
	if got := stats.Percentile(1); got != 30 {
		t.Errorf("Expected P100 of 30, got %f", got)
	}
	if stats.MinTurns != 15 || stats.MaxTurns != 30 {
		t.Errorf("Expected min 15 max 30, got %d/%d", stats.MinTurns, stats.MaxTurns)
	}

	expectedVP := (24.0 + 27 + 12 + 24 + 21) / 5
	if math.Abs(stats.MeanVictoryPoints()-expectedVP) > 1e-9 {
		t.Errorf("Expected mean VP of %f, got %f", expectedVP, stats.MeanVictoryPoints())
	}
	if stats.WinRate() != 0.4 {
		t.Errorf("Expected win rate 0.4, got %f", stats.WinRate())
	}
	if stats.EndRate() != 0.8 {
		t.Errorf("Expected end rate 0.8, got %f", stats.EndRate())
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Unexpected validation error: %v", err)
	}
}

func TestStatistics_Variance(t *testing.T) {
	stats := &Statistics{}
	for _, turns := range []int{2, 4, 4, 4, 5, 5, 7, 9} {
		stats.Add(GameOutcome{Turns: turns})
	}

	// Sample variance of the classic dataset: 32/7.
	if math.Abs(stats.Variance()-32.0/7.0) > 1e-9 {
		t.Errorf("Expected variance %f, got %f", 32.0/7.0, stats.Variance())
	}
	if math.Abs(stats.StdDev()-math.Sqrt(32.0/7.0)) > 1e-9 {
		t.Errorf("Expected stddev %f, got %f", math.Sqrt(32.0/7.0), stats.StdDev())
	}

	low, high := stats.ConfidenceInterval95()
	if low >= stats.Mean() || high <= stats.Mean() {
		t.Errorf("Expected CI around mean %f, got [%f, %f]", stats.Mean(), low, high)
	}
	if math.Abs((high-low)/2-1.96*stats.StdError()) > 1e-9 {
		t.Error("Expected CI half-width of 1.96 standard errors")
	}
}

func TestStatistics_ValidateDetectsCorruption(t *testing.T) {
	stats := &Statistics{}
	stats.Add(GameOutcome{Turns: 10})
	stats.Add(GameOutcome{Turns: 12})

	stats.Values = stats.Values[:1]
	if err := stats.Validate(); err == nil {
		t.Error("Expected error for mismatched values length")
	}

	stats.Values = []float64{10, 12}
	stats.Wins = 3
	if err := stats.Validate(); err == nil {
		t.Error("Expected error for wins exceeding games")
	}
}

func TestStatistics_VictoryPointSpread(t *testing.T) {
	stats := &Statistics{}
	for _, vp := range []int{20, 24, 28} {
		stats.Add(GameOutcome{Turns: 15, VictoryPoints: vp})
	}

	if got := stats.MeanVictoryPoints(); got != 24 {
		t.Errorf("Expected mean VP of 24, got %f", got)
	}
	// Sample variance of 20, 24, 28 is 16.
	if got := stats.StdDevVictoryPoints(); math.Abs(got-4) > 1e-9 {
		t.Errorf("Expected VP std dev of 4, got %f", got)
	}

	single := &Statistics{}
	single.Add(GameOutcome{Turns: 15, VictoryPoints: 30})
	if got := single.StdDevVictoryPoints(); got != 0 {
		t.Errorf("Expected VP std dev of 0 for one game, got %f", got)
	}
}
