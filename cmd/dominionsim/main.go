package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	LogLevel string           `short:"l" help:"Log level: debug, info, warn, error (overrides config)"`

	Run     RunCmd     `cmd:"" default:"withargs" help:"Run a simulation from a config file"`
	Compare CompareCmd `cmd:"" help:"Run several config files and compare the results"`
	Cards   CardsCmd   `cmd:"" help:"List the card catalog"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("dominionsim"),
		kong.Description("Monte Carlo simulator for Dominion deck-building strategies"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
