package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/dominionsim/internal/card"
)

func TestPrepare_UnshuffledFirstHand(t *testing.T) {
	deck := []card.Name{
		card.Estate, card.Copper, card.Silver, card.Copper, card.Estate,
		card.Copper, card.Copper, card.Copper, card.Copper, card.Estate,
	}
	b := newTestBoard(t, BoardConfig{
		Seats:       seats(idle(), idle()),
		Kingdom:     []card.Name{card.Smithy},
		InitialDeck: deck,
	})

	for _, p := range b.Players() {
		assert.Equal(t, deck[:5], p.Hand().Names(), p.Name())
		assert.Equal(t, 5, p.Deck().Len())
		assert.Equal(t, 10, p.CardTotal())
	}
}

func TestPrepare_DefaultDeckFirstHand(t *testing.T) {
	b := newTestBoard(t, BoardConfig{
		Seats:   seats(idle(), idle()),
		Kingdom: []card.Name{card.Smithy},
	})
	for _, p := range b.Players() {
		assert.Equal(t, names(card.Copper, 5), p.Hand().Names())
	}
	assert.Equal(t, 60-14, b.Supply().Count(card.Copper))
	assert.Equal(t, 12-6, b.Supply().Count(card.Estate))
}

func TestDraw_Reshuffle(t *testing.T) {
	b := newTestBoard(t, BoardConfig{})
	p := b.Players()[0]

	p.DiscardHand()
	p.Draw(3)
	require.Equal(t, 2, p.Deck().Len())
	require.Equal(t, 5, p.DiscardPile().Len())

	drawn := p.Draw(4)
	assert.Len(t, drawn, 4)
	assert.Equal(t, 3, p.Deck().Len(), "d+k-n cards left in deck")
	assert.True(t, p.DiscardPile().IsEmpty())
	assert.Equal(t, 7, p.Hand().Len())
}

func TestDraw_RunsOut(t *testing.T) {
	b := newTestBoard(t, BoardConfig{})
	p := b.Players()[0]

	drawn := p.Draw(20)
	assert.Len(t, drawn, 5)
	assert.True(t, p.Deck().IsEmpty())
	assert.Equal(t, 10, p.Hand().Len())
	assert.Empty(t, p.Draw(1))
	assert.Empty(t, p.Draw(0))
}

func TestProcessTurn_CountersAtActionPhase(t *testing.T) {
	type snapshot struct {
		coins, actions, buys int
		phase                Phase
	}
	var seen []snapshot
	strategy := StrategyFunc{
		Action: func(p *Player) bool {
			seen = append(seen, snapshot{p.Coins(), p.Actions(), p.Buys(), p.Phase()})
			return false
		},
		Buy: bigMoney().BuyPhase,
	}
	b := newTestBoard(t, BoardConfig{Seats: seats(strategy)})
	p := b.Players()[0]

	for range 6 {
		p.ProcessTurn()
		assert.Equal(t, PhaseCleanUp, p.Phase())
	}
	require.Len(t, seen, 6)
	for i, s := range seen {
		assert.Equal(t, snapshot{0, 1, 1, PhaseAction}, s, "turn %d", i+1)
	}
	assert.Equal(t, 6, p.TurnNum())
}

func TestProcessTurn_BuysProvinceOverGold(t *testing.T) {
	deck := []card.Name{
		card.Gold, card.Gold, card.Silver, card.Estate, card.Estate,
		card.Copper, card.Copper, card.Copper, card.Copper, card.Copper,
	}
	b := newTestBoard(t, BoardConfig{
		Seats:       seats(bigMoney(), bigMoney()),
		Kingdom:     []card.Name{card.Smithy},
		InitialDeck: deck,
	})
	p := b.Players()[0]
	require.Equal(t, 8, b.Supply().Count(card.Province))
	gold := b.Supply().Count(card.Gold)

	p.ProcessTurn()

	assert.Equal(t, 7, b.Supply().Count(card.Province))
	assert.Equal(t, gold, b.Supply().Count(card.Gold))
	assert.Equal(t, 1, p.CountInDeck(card.Province))
	assert.Equal(t, 8, p.VictoryPoints())
}

func TestProcessTurn_ActionLoop(t *testing.T) {
	calls := 0
	strategy := StrategyFunc{
		Action: func(p *Player) bool {
			calls++
			for _, name := range []card.Name{card.Festival, card.Laboratory, card.Market, card.Smithy} {
				if p.TryPlayCard(name, nil) {
					return true
				}
			}
			return false
		},
	}
	deck := []card.Name{
		card.Festival, card.Laboratory, card.Smithy, card.Copper, card.Copper,
		card.Copper, card.Copper, card.Copper, card.Estate, card.Estate,
	}
	b := newTestBoard(t, BoardConfig{
		Seats:       seats(strategy),
		Kingdom:     []card.Name{card.Festival, card.Laboratory, card.Smithy},
		InitialDeck: deck,
	})
	p := b.Players()[0]

	p.ProcessTurn()

	// Festival (+2 actions), Laboratory (+2 cards, +1 action), Smithy (+3 cards).
	// The loop ends after Smithy: no action card is left in hand.
	assert.Equal(t, 3, calls)
	assert.Equal(t, 1, p.CountInDeck(card.Festival))
	assert.Equal(t, 10, p.CardTotal())
}

func TestProcessTurn_NoActionsSkipsStrategy(t *testing.T) {
	calls := 0
	strategy := StrategyFunc{
		Action: func(p *Player) bool {
			calls++
			return p.TryPlayCard(card.Smithy, nil)
		},
	}
	deck := []card.Name{
		card.Smithy, card.Smithy, card.Copper, card.Copper, card.Copper,
		card.Copper, card.Copper, card.Copper, card.Estate, card.Estate,
	}
	b := newTestBoard(t, BoardConfig{
		Seats:       seats(strategy),
		Kingdom:     []card.Name{card.Smithy},
		InitialDeck: deck,
	})
	b.Players()[0].ProcessTurn()

	assert.Equal(t, 1, calls, "no action left after the first smithy")
}

func TestProcessTurn_LyingStrategyTerminates(t *testing.T) {
	strategy := StrategyFunc{
		Action: func(*Player) bool { return true },
		Buy:    func(*Player) bool { return true },
	}
	deck := []card.Name{
		card.Smithy, card.Copper, card.Copper, card.Copper, card.Copper,
		card.Copper, card.Copper, card.Copper, card.Estate, card.Estate,
	}
	b := newTestBoard(t, BoardConfig{
		Seats:       seats(strategy),
		Kingdom:     []card.Name{card.Smithy},
		InitialDeck: deck,
	})
	p := b.Players()[0]
	p.ProcessTurn()
	assert.Equal(t, 1, p.TurnNum())
	assert.Equal(t, PhaseCleanUp, p.Phase())
}

func TestPlayAction_Errors(t *testing.T) {
	var errs []error
	strategy := StrategyFunc{
		Action: func(p *Player) bool {
			errs = append(errs,
				p.PlayAction(card.Copper, nil),
				p.PlayAction(card.Smithy, nil),
			)
			return false
		},
	}
	b := newTestBoard(t, BoardConfig{Seats: seats(strategy), Kingdom: []card.Name{card.Smithy}})
	p := b.Players()[0]
	p.ProcessTurn()

	require.Len(t, errs, 2)
	assert.ErrorIs(t, errs[0], ErrNotAction)
	assert.ErrorIs(t, errs[1], ErrCardNotInHand)

	require.True(t, p.Gain(card.Smithy, card.ZoneHand))
	assert.ErrorIs(t, p.PlayAction(card.Smithy, nil), ErrWrongPhase)
	assert.False(t, p.CanPlayAction(card.Smithy))
}

func TestBuy_Errors(t *testing.T) {
	var checks []func(*testing.T)
	strategy := StrategyFunc{
		Buy: func(p *Player) bool {
			p.PlayAllTreasures()
			coins := p.Coins()

			errUnknown := p.Buy("VILLAGE")
			errCost := p.Buy(card.Colony)
			for !p.Supply().IsEmpty(card.Sauna) {
				p.Supply().Pop(card.Sauna)
			}
			errEmpty := p.Buy(card.Sauna)
			coinsAfterFailures := p.Coins()
			errNone := p.Buy(card.Copper)
			errBuys := p.Buy(card.Copper)

			checks = append(checks, func(t *testing.T) {
				assert.ErrorIs(t, errUnknown, ErrUnknownCard)
				assert.ErrorIs(t, errCost, ErrNotAffordable)
				assert.ErrorIs(t, errEmpty, ErrPileEmpty)
				assert.Equal(t, coins, coinsAfterFailures)
				assert.NoError(t, errNone)
				assert.ErrorIs(t, errBuys, ErrNoBuys)
			})
			return false
		},
	}
	b := newTestBoard(t, BoardConfig{Seats: seats(strategy), Kingdom: []card.Name{card.Sauna}})
	p := b.Players()[0]
	p.ProcessTurn()

	require.Len(t, checks, 1)
	checks[0](t)
	assert.Equal(t, 8, p.CountInDeck(card.Copper))
}

func TestSaunaChainsAvanto(t *testing.T) {
	var played []card.Name
	var actionsAfter int
	strategy := StrategyFunc{
		Action: func(p *Player) bool {
			ok := p.TryPlayCard(card.Sauna, nil)
			played = p.PlayArea().Names()
			actionsAfter = p.Actions()
			return ok
		},
	}
	deck := []card.Name{
		card.Sauna, card.Avanto, card.Copper, card.Copper, card.Copper,
		card.Copper, card.Copper, card.Copper, card.Estate, card.Estate,
	}
	b := newTestBoard(t, BoardConfig{
		Seats:       seats(strategy),
		Kingdom:     []card.Name{card.Sauna, card.Avanto},
		InitialDeck: deck,
	})
	b.Players()[0].ProcessTurn()

	// Avanto resolves inside Sauna's effect, so it reaches the play area first.
	assert.Equal(t, []card.Name{card.Avanto, card.Sauna}, played)
	assert.Equal(t, 1, actionsAfter)
}

func TestPlayFromHand_OnlyWhileResolving(t *testing.T) {
	type outcome struct {
		smithy, estate bool
		hand, played   int
		actions        int
	}
	var got []outcome
	check := func(p *Player) {
		o := outcome{
			smithy: p.PlayFromHand(card.Smithy, nil),
			estate: p.PlayFromHand(card.Estate, nil),
		}
		o.hand = p.Hand().Len()
		o.played = p.PlayArea().Len()
		o.actions = p.Actions()
		got = append(got, o)
	}
	strategy := StrategyFunc{
		Action: func(p *Player) bool { check(p); return false },
		Buy:    func(p *Player) bool { check(p); return false },
	}
	deck := []card.Name{
		card.Smithy, card.Estate, card.Copper, card.Copper, card.Copper,
		card.Copper, card.Copper, card.Copper, card.Copper, card.Estate,
	}
	b := newTestBoard(t, BoardConfig{Seats: seats(strategy), Kingdom: []card.Name{card.Smithy}, InitialDeck: deck})
	p := b.Players()[0]
	p.ProcessTurn()

	require.Len(t, got, 2, "action and buy phase")
	for _, o := range got {
		assert.Equal(t, outcome{hand: 5, actions: 1}, o)
	}
	assert.Equal(t, 1, p.CountInDeck(card.Smithy))
}

func TestScholar(t *testing.T) {
	var hand int
	strategy := StrategyFunc{
		Action: func(p *Player) bool {
			ok := p.TryPlayCard(card.Scholar, nil)
			hand = p.Hand().Len()
			return ok
		},
	}
	deck := []card.Name{
		card.Scholar, card.Copper, card.Copper, card.Copper, card.Copper,
		card.Copper, card.Copper, card.Copper, card.Estate, card.Estate,
	}
	b := newTestBoard(t, BoardConfig{Seats: seats(strategy), Kingdom: []card.Name{card.Scholar}, InitialDeck: deck})
	b.Players()[0].ProcessTurn()

	assert.Equal(t, 7, hand)
}

func TestDurational_Pirate(t *testing.T) {
	var goldAtTurnStart []int
	strategy := StrategyFunc{
		Action: func(p *Player) bool {
			goldAtTurnStart = append(goldAtTurnStart, p.Hand().CountByName(card.Gold))
			return p.TryPlayCard(card.Pirate, nil)
		},
	}
	deck := []card.Name{
		card.Pirate, card.Copper, card.Copper, card.Copper, card.Copper,
		card.Copper, card.Copper, card.Estate, card.Estate, card.Estate,
	}
	b := newTestBoard(t, BoardConfig{Seats: seats(strategy), Kingdom: []card.Name{card.Pirate}, InitialDeck: deck})
	p := b.Players()[0]

	p.ProcessTurn()
	assert.Equal(t, []card.Name{card.Pirate}, p.PlayArea().Names(), "durational card stays in play")
	assert.Equal(t, 1, p.Tasks().Len())

	p.ProcessTurn()
	assert.Equal(t, []int{0, 1}, goldAtTurnStart)
	assert.True(t, p.PlayArea().IsEmpty(), "discarded once its flag clears")
	assert.Zero(t, p.Tasks().Len())
	assert.Equal(t, 1, p.CountInDeck(card.Pirate))
	assert.Equal(t, 1, p.CountInDeck(card.Gold))
}

func TestDurational_Hireling(t *testing.T) {
	var handAtActionPhase []int
	strategy := StrategyFunc{
		Action: func(p *Player) bool {
			handAtActionPhase = append(handAtActionPhase, p.Hand().Len())
			return p.TryPlayCard(card.Hireling, nil)
		},
	}
	deck := []card.Name{
		card.Hireling, card.Copper, card.Copper, card.Copper, card.Copper,
		card.Copper, card.Copper, card.Copper, card.Estate, card.Estate,
	}
	b := newTestBoard(t, BoardConfig{Seats: seats(strategy), Kingdom: []card.Name{card.Hireling}, InitialDeck: deck})
	p := b.Players()[0]

	for range 4 {
		p.ProcessTurn()
		assert.Equal(t, []card.Name{card.Hireling}, p.PlayArea().Names())
	}
	assert.Equal(t, []int{5, 6, 6, 6}, handAtActionPhase)
	assert.Equal(t, 1, p.Tasks().Len())
}

func TestSupplyConservation(t *testing.T) {
	b := newTestBoard(t, BoardConfig{
		Seats:           seats(bigMoney(), bigMoney()),
		Kingdom:         []card.Name{card.Smithy, card.Market},
		ShuffleTurnZero: true,
	})
	total := func() int {
		n := b.Supply().Total()
		for _, p := range b.Players() {
			n += p.CardTotal()
		}
		return n
	}
	start := total()

	for range 15 {
		for _, p := range b.Players() {
			p.ProcessTurn()
			require.Equal(t, start, total())
		}
	}
}

func TestPutOnDeck(t *testing.T) {
	b := newTestBoard(t, BoardConfig{})
	p := b.Players()[0]

	require.True(t, p.PutOnDeck(card.Copper))
	top, ok := p.Deck().Peek()
	require.True(t, ok)
	assert.Equal(t, card.Copper, top.Name())

	require.True(t, p.PutOnDeck(card.Gold), "falls back to the last hand card")
	assert.Equal(t, 3, p.Hand().Len())

	p.DiscardHand()
	assert.False(t, p.PutOnDeck(card.Copper))
}
