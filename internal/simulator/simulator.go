// Package simulator plays many independent games and collects their results.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/dominionsim/internal/card"
	"github.com/lox/dominionsim/internal/game"
	"github.com/lox/dominionsim/internal/randutil"
)

// PlayerSpec seats one player. New is called once per game with that game's
// random source.
type PlayerSpec struct {
	Name     string
	Strategy string
	New      func(rng *rand.Rand) game.Strategy
}

// Config holds configuration for running simulations
type Config struct {
	Games    int
	MaxTurns int // rounds per game before it is stopped
	Seed     int64

	Players         []PlayerSpec
	Kingdom         []card.Name
	InitialDeck     []card.Name
	ShuffleTurnZero bool
	EndCondition    EndCondition // nil means StandardEnd
	Catalog         *card.Catalog

	Logger           *log.Logger
	Clock            quartz.Clock
	RecordPlayLog    bool
	ProgressInterval time.Duration // zero disables progress logging
}

// Simulator runs games sequentially.
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Catalog == nil {
		config.Catalog = card.DefaultCatalog()
	}
	if config.EndCondition == nil {
		config.EndCondition = StandardEnd()
	}
	for i := range config.Players {
		if config.Players[i].Name == "" {
			config.Players[i].Name = fmt.Sprintf("player%d", i+1)
		}
	}
	return &Simulator{config: config}
}

func (s *Simulator) validate() error {
	c := s.config
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if c.MaxTurns <= 0 {
		return fmt.Errorf("max turns must be positive, got %d", c.MaxTurns)
	}
	if len(c.Players) == 0 {
		return errors.New("no players configured")
	}
	for i, p := range c.Players {
		if p.New == nil {
			return fmt.Errorf("player %d (%s) has no strategy", i+1, p.Name)
		}
	}
	if err := c.Catalog.Validate(c.Kingdom); err != nil {
		return fmt.Errorf("kingdom: %w", err)
	}
	if err := c.Catalog.Validate(c.InitialDeck); err != nil {
		return fmt.Errorf("initial deck: %w", err)
	}
	return nil
}

// Run plays every game and returns the collected results. Cancelling ctx
// stops the run between games.
func (s *Simulator) Run(ctx context.Context) (*SimulationResult, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	c := s.config
	clock := c.Clock
	start := clock.Now()
	lastProgress := start

	result := &SimulationResult{Seed: c.Seed}
	for _, p := range c.Players {
		result.Players = append(result.Players, p.Name)
	}

	c.Logger.Info("Starting simulation",
		"games", c.Games,
		"maxTurns", c.MaxTurns,
		"players", strings.Join(result.Players, ","),
		"kingdom", joinNames(c.Kingdom),
		"seed", c.Seed)

	for id := 1; id <= c.Games; id++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("simulation stopped after %d games: %w", id-1, err)
		}
		gr, err := s.playGame(id)
		if err != nil {
			return nil, fmt.Errorf("game %d: %w", id, err)
		}
		result.GameResults = append(result.GameResults, gr)

		if c.ProgressInterval > 0 && clock.Since(lastProgress) >= c.ProgressInterval {
			lastProgress = clock.Now()
			c.Logger.Info("Progress", "games", id, "total", c.Games, "elapsed", clock.Since(start).Round(time.Millisecond))
		}
	}

	for name, stats := range result.Statistics() {
		if err := stats.Validate(); err != nil {
			return nil, fmt.Errorf("statistics validation failed for %s: %w", name, err)
		}
	}

	result.Duration = clock.Since(start)
	c.Logger.Info("Simulation finished", "games", len(result.GameResults), "duration", result.Duration)
	return result, nil
}

func (s *Simulator) playGame(id int) (GameResult, error) {
	c := s.config
	seed := randutil.GameSeed(c.Seed, id)
	rng := randutil.New(seed)

	seats := make([]game.Seat, len(c.Players))
	for i, p := range c.Players {
		seats[i] = game.Seat{Name: p.Name, Strategy: p.New(rng)}
	}
	board, err := game.NewBoard(game.BoardConfig{
		Catalog:         c.Catalog,
		Seats:           seats,
		Kingdom:         c.Kingdom,
		InitialDeck:     c.InitialDeck,
		ShuffleTurnZero: c.ShuffleTurnZero,
		Rand:            rng,
		Logger:          c.Logger.With("game", id),
		RecordPlayLog:   c.RecordPlayLog,
	})
	if err != nil {
		return GameResult{}, err
	}

	rounds, ended := 0, false
	for rounds < c.MaxTurns && !ended {
		rounds++
		for _, p := range board.Players() {
			p.ProcessTurn()
			if c.EndCondition(board) {
				ended = true
				break
			}
		}
	}

	result := snapshot(id, seed, rounds, ended, board, c.Players)
	for _, p := range board.Players() {
		c.Logger.Debug("Final deck",
			"game", id,
			"player", p.Name(),
			"turns", p.TurnNum(),
			"vp", p.VictoryPoints(),
			"cards", joinNames(p.CardNames()))
	}
	if !ended {
		c.Logger.Debug("Game hit the turn limit", "game", id, "rounds", rounds)
	}
	return result, nil
}

func joinNames(names []card.Name) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = string(n)
	}
	return strings.Join(parts, " ")
}
