package config

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/dominionsim/internal/card"
	"github.com/lox/dominionsim/internal/game"
	"github.com/lox/dominionsim/internal/simulator"
	"github.com/lox/dominionsim/internal/strategy"
)

// Build validates the configuration and turns it into a simulator
// configuration.
func (c *Config) Build(catalog *card.Catalog, logger *log.Logger, clock quartz.Clock) (simulator.Config, error) {
	if catalog == nil {
		catalog = card.DefaultCatalog()
	}
	c.applyDefaults()
	if err := c.Validate(catalog); err != nil {
		return simulator.Config{}, err
	}
	progress, _ := c.Progress()

	specs := make([]simulator.PlayerSpec, len(c.Players))
	for i, p := range c.Players {
		specs[i] = c.playerSpec(p, logger)
	}

	return simulator.Config{
		Games:            c.Simulation.Games,
		MaxTurns:         c.Simulation.MaxTurns,
		Seed:             *c.Simulation.Seed,
		Players:          specs,
		Kingdom:          toNames(c.Kingdom),
		InitialDeck:      toNames(c.InitialDeck),
		ShuffleTurnZero:  *c.Simulation.ShuffleTurn0,
		EndCondition:     c.endCondition(),
		Catalog:          catalog,
		Logger:           logger,
		Clock:            clock,
		RecordPlayLog:    c.Simulation.RecordPlayLog,
		ProgressInterval: progress,
	}, nil
}

func (c *Config) playerSpec(p PlayerConfig, logger *log.Logger) simulator.PlayerSpec {
	spec := simulator.PlayerSpec{Name: p.Name, Strategy: p.Strategy}
	if p.Strategy == priorityStrategy {
		spec.New = func(*rand.Rand) game.Strategy { return p.priority(logger) }
		return spec
	}
	name := p.Strategy
	spec.New = func(rng *rand.Rand) game.Strategy {
		// Validate has already checked the name.
		s, _ := strategy.New(name, rng, logger)
		return s
	}
	return spec
}

func (c *Config) endCondition() simulator.EndCondition {
	if c.GameEnd == nil {
		return simulator.StandardEnd()
	}
	var conds []simulator.EndCondition
	if c.GameEnd.Standard {
		conds = append(conds, simulator.StandardEnd())
	}
	for _, g := range c.GameEnd.Goals {
		conds = append(conds, simulator.PlayerHas(g.Player-1, toCounts(g.Cards)))
	}
	if len(conds) == 0 {
		return simulator.StandardEnd()
	}
	return simulator.AnyOf(conds...)
}
