package main

import (
	"os"

	"github.com/lox/dominionsim/internal/card"
	"github.com/lox/dominionsim/internal/report"
)

// CardsCmd lists the card catalog
type CardsCmd struct {
	Players int  `default:"2" help:"Player count used for pile sizes"`
	Plain   bool `help:"Disable colour"`
}

func (c *CardsCmd) Run() error {
	return report.Cards(os.Stdout, card.DefaultCatalog(), c.Players, report.Options{Plain: c.Plain})
}
