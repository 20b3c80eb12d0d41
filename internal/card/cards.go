package card

// BasicCards are placed in every supply after the kingdom cards.
var BasicCards = []Name{Gold, Silver, Copper, Province, Duchy, Estate, Platinum, Colony}

func coins(n int) Effect {
	return func(a Actor, _ *Card, _ any) {
		a.AddCoins(n)
	}
}

func draw(n int) Effect {
	return func(a Actor, _ *Card, _ any) {
		a.Draw(n)
	}
}

// chain plays partner from hand after the card's own bonus, if it is there.
func chain(partner Name) func(a Actor, ctx any) {
	return func(a Actor, ctx any) {
		if a.Hand().Has(partner) {
			a.PlayFromHand(partner, ctx)
		}
	}
}

// DefaultRecords returns the modeled card set.
func DefaultRecords() []Record {
	return []Record{
		{Name: Gold, Types: []Type{Treasure}, Cost: Cost{Coin: 6}, Supply: 30, Play: coins(3)},
		{Name: Silver, Types: []Type{Treasure}, Cost: Cost{Coin: 3}, Supply: 40, Play: coins(2)},
		{Name: Copper, Types: []Type{Treasure}, Cost: Cost{Coin: 0}, Supply: 60, Play: coins(1)},
		{Name: Province, Types: []Type{Victory}, Cost: Cost{Coin: 8}, VictoryPoints: 6, Supply: 12, Policy: VictoryPolicy},
		{Name: Duchy, Types: []Type{Victory}, Cost: Cost{Coin: 5}, VictoryPoints: 3, Supply: 12, Policy: VictoryPolicy},
		{Name: Estate, Types: []Type{Victory}, Cost: Cost{Coin: 2}, VictoryPoints: 1, Supply: 12},
		{Name: Platinum, Types: []Type{Treasure}, Cost: Cost{Coin: 9}, Supply: 12, Play: coins(5)},
		{Name: Colony, Types: []Type{Victory}, Cost: Cost{Coin: 11}, VictoryPoints: 10, Supply: 12, Policy: VictoryPolicy},
		{Name: Smithy, Types: []Type{Action}, Cost: Cost{Coin: 4}, Supply: 10, Play: draw(3)},
		{
			Name: Scholar, Types: []Type{Action}, Cost: Cost{Coin: 5}, Supply: 10,
			Play: func(a Actor, _ *Card, _ any) {
				a.DiscardHand()
				a.Draw(7)
			},
		},
		{
			Name: Laboratory, Types: []Type{Action}, Cost: Cost{Coin: 5}, Supply: 10,
			Play: func(a Actor, _ *Card, _ any) {
				a.Draw(2)
				a.AddActions(1)
			},
		},
		{
			Name: Market, Types: []Type{Action}, Cost: Cost{Coin: 5}, Supply: 10,
			Play: func(a Actor, _ *Card, _ any) {
				a.Draw(1)
				a.AddActions(1)
				a.AddBuys(1)
				a.AddCoins(1)
			},
		},
		{
			Name: Festival, Types: []Type{Action}, Cost: Cost{Coin: 5}, Supply: 10,
			Play: func(a Actor, _ *Card, _ any) {
				a.AddActions(2)
				a.AddBuys(1)
				a.AddCoins(2)
			},
		},
		{
			Name: Sauna, Types: []Type{Action}, Cost: Cost{Coin: 4}, Supply: 5,
			Play: func(a Actor, _ *Card, ctx any) {
				a.AddActions(1)
				a.Draw(1)
				chain(Avanto)(a, ctx)
			},
		},
		{
			Name: Avanto, Types: []Type{Action}, Cost: Cost{Coin: 5}, Supply: 5,
			Play: func(a Actor, _ *Card, ctx any) {
				a.Draw(3)
				chain(Sauna)(a, ctx)
			},
		},
		{
			Name: Hireling, Types: []Type{Action, Duration}, Cost: Cost{Coin: 6}, Supply: 10,
			Duration: DrawEachTurn,
			Play: func(a Actor, c *Card, _ any) {
				a.ScheduleTurnStart(c, DrawEachTurn, Unlimited)
				c.Durational = true
			},
		},
		{
			Name: Pirate, Types: []Type{Action, Duration}, Cost: Cost{Coin: 5}, Supply: 10,
			Duration: GainGoldToHand,
			Play: func(a Actor, c *Card, _ any) {
				a.ScheduleTurnStart(c, GainGoldToHand, 1)
				c.Durational = true
			},
		},
	}
}

// DefaultCatalog returns a catalog of the modeled card set.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultRecords()...)
	if err != nil {
		panic("card: invalid default records: " + err.Error())
	}
	return c
}
