package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/dominionsim/internal/config"
	"github.com/lox/dominionsim/internal/report"
	"github.com/lox/dominionsim/internal/simulator"
)

type configEntry struct {
	name string
	cfg  *config.Config
}

// CompareCmd runs several configurations side by side
type CompareCmd struct {
	Configs  []string `arg:"" type:"existingfile" help:"HCL config files to compare"`
	Parallel int      `short:"p" default:"1" help:"Simulations to run at once"`
	Games    int      `short:"n" help:"Number of games for every config"`
	Seed     *int64   `help:"Run seed for every config"`
	Plain    bool     `help:"Disable colour in the summary"`
}

func (c *CompareCmd) Run(cli *CLI) error {
	logger := newLogger(log.InfoLevel)
	entries, err := c.load(cli.LogLevel, logger)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	return c.compare(ctx, os.Stdout, entries, logger)
}

// load reads every config up front so a bad file fails before any
// simulation starts. logger is lowered to the most verbose configured level.
func (c *CompareCmd) load(logLevel string, logger *log.Logger) ([]configEntry, error) {
	o := overrides{Games: c.Games, Seed: c.Seed, LogLevel: logLevel}
	entries := make([]configEntry, len(c.Configs))
	for i, path := range c.Configs {
		cfg, err := loadConfig(path, o)
		if err != nil {
			return nil, err
		}
		entries[i] = configEntry{name: filepath.Base(path), cfg: cfg}
		if cfg.Level() < logger.GetLevel() {
			logger.SetLevel(cfg.Level())
		}
	}
	return entries, nil
}

func (c *CompareCmd) compare(ctx context.Context, w io.Writer, entries []configEntry, logger *log.Logger) error {
	results := make([]*simulator.SimulationResult, len(entries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(c.Parallel, 1))
	for i, entry := range entries {
		g.Go(func() error {
			l := logger.With("config", entry.name)
			l.SetLevel(entry.cfg.Level())
			result, err := simulate(ctx, entry.cfg, l)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.name
	}
	return report.Comparison(w, names, results, report.Options{Plain: c.Plain})
}
