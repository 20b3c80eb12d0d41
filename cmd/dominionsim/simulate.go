package main

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/dominionsim/internal/config"
	"github.com/lox/dominionsim/internal/simulator"
)

// overrides are the command line values that replace config file settings.
// Zero values leave the file setting alone.
type overrides struct {
	Games         int
	Seed          *int64
	MaxTurns      int
	LogLevel      string
	RecordPlayLog bool
}

func (o overrides) apply(cfg *config.Config) {
	if o.Games > 0 {
		cfg.Simulation.Games = o.Games
	}
	if o.Seed != nil {
		seed := *o.Seed
		cfg.Simulation.Seed = &seed
	}
	if o.MaxTurns > 0 {
		cfg.Simulation.MaxTurns = o.MaxTurns
	}
	if o.LogLevel != "" {
		cfg.Simulation.LogLevel = o.LogLevel
	}
	if o.RecordPlayLog {
		cfg.Simulation.RecordPlayLog = true
	}
}

// loadConfig reads path and applies the overrides. The log level is
// validated here so the logger can be built before the rest of the config.
func loadConfig(path string, o overrides) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	o.apply(cfg)
	if _, err := log.ParseLevel(cfg.Simulation.LogLevel); err != nil {
		return nil, err
	}
	return cfg, nil
}

func simulate(ctx context.Context, cfg *config.Config, logger *log.Logger) (*simulator.SimulationResult, error) {
	simCfg, err := cfg.Build(nil, logger, quartz.NewReal())
	if err != nil {
		return nil, err
	}
	return simulator.New(simCfg).Run(ctx)
}
