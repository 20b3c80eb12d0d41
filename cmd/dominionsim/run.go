package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/lox/dominionsim/internal/report"
)

// RunCmd runs one simulation
type RunCmd struct {
	Config        string `short:"c" default:"dominion.hcl" type:"path" help:"HCL config file (built-in defaults when missing)"`
	Games         int    `short:"n" help:"Number of games (overrides config)"`
	Seed          *int64 `help:"Run seed (overrides config)"`
	MaxTurns      int    `help:"Turn limit per player (overrides config)"`
	JSON          string `name:"json" type:"path" help:"Write a JSON report to this file"`
	IncludeGames  bool   `help:"Include every game snapshot in the JSON report"`
	RecordPlayLog bool   `help:"Keep per-turn play logs in game snapshots"`
	Plain         bool   `help:"Disable colour in the summary"`
	Averages      bool   `help:"Print only the average turn count per player"`
}

func (c *RunCmd) Run(cli *CLI) error {
	cfg, err := loadConfig(c.Config, overrides{
		Games:         c.Games,
		Seed:          c.Seed,
		MaxTurns:      c.MaxTurns,
		LogLevel:      cli.LogLevel,
		RecordPlayLog: c.RecordPlayLog,
	})
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Level())

	ctx, cancel := signalContext(logger)
	defer cancel()

	result, err := simulate(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if c.Averages {
		if err := report.TurnAverages(os.Stdout, result); err != nil {
			return err
		}
	} else {
		title := fmt.Sprintf("Simulation results (%s)", c.Config)
		if err := report.Summary(os.Stdout, result, report.Options{Title: title, Plain: c.Plain}); err != nil {
			return err
		}
	}

	if c.JSON != "" {
		doc := report.NewDocument(result, uuid.New(), time.Now(), c.IncludeGames)
		if err := report.WriteJSON(c.JSON, doc); err != nil {
			return err
		}
		logger.Info("Wrote JSON report", "path", c.JSON, "run_id", doc.RunID)
	}
	return nil
}
