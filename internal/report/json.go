package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/lox/dominionsim/internal/simulator"
)

// Document is the JSON export of one run.
type Document struct {
	RunID       string                 `json:"run_id"`
	GeneratedAt time.Time              `json:"generated_at"`
	Seed        int64                  `json:"seed"`
	Games       int                    `json:"games"`
	DurationMS  int64                  `json:"duration_ms"`
	Players     []PlayerSummary        `json:"players"`
	GameResults []simulator.GameResult `json:"game_results,omitempty"`
}

// PlayerSummary is one player's aggregate over the run.
type PlayerSummary struct {
	Name                string  `json:"name"`
	Strategy            string  `json:"strategy"`
	Turns               []int   `json:"turns"`
	MeanTurns           float64 `json:"mean_turns"`
	MedianTurns         float64 `json:"median_turns"`
	StdDevTurns         float64 `json:"stddev_turns"`
	MeanVictoryPoints   float64 `json:"mean_victory_points"`
	StdDevVictoryPoints float64 `json:"stddev_victory_points"`
	WinRate             float64 `json:"win_rate"`
	EndRate             float64 `json:"end_rate"`
}

// NewDocument summarises result. Per-game snapshots are included only when
// withGames is set.
func NewDocument(result *simulator.SimulationResult, runID uuid.UUID, now time.Time, withGames bool) Document {
	doc := Document{
		RunID:       runID.String(),
		GeneratedAt: now.UTC(),
		Seed:        result.Seed,
		Games:       len(result.GameResults),
		DurationMS:  result.Duration.Milliseconds(),
	}
	stats := result.Statistics()
	turns := result.TurnCounts()
	strategies := strategyNames(result)
	for _, name := range result.Players {
		ps := PlayerSummary{
			Name:     name,
			Strategy: strategies[name],
			Turns:    turns[name],
		}
		if s, ok := stats[name]; ok {
			ps.MeanTurns = s.Mean()
			ps.MedianTurns = s.Median()
			ps.StdDevTurns = s.StdDev()
			ps.MeanVictoryPoints = s.MeanVictoryPoints()
			ps.StdDevVictoryPoints = s.StdDevVictoryPoints()
			ps.WinRate = s.WinRate()
			ps.EndRate = s.EndRate()
		}
		doc.Players = append(doc.Players, ps)
	}
	if withGames {
		doc.GameResults = result.GameResults
	}
	return doc
}

// WriteJSON writes doc to filename. The file is written to a temporary name
// in the same directory and renamed into place, so readers never see a
// partial document.
func WriteJSON(filename string, doc Document) error {
	dir := filepath.Dir(filename)
	tmp, err := os.CreateTemp(dir, filepath.Base(filename)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	tmp = nil

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, filename); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
