package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/lox/dominionsim/internal/card"
	"github.com/lox/dominionsim/internal/randutil"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
}

func newTestBoard(t *testing.T, cfg BoardConfig) *Board {
	t.Helper()
	if cfg.Rand == nil {
		cfg.Rand = randutil.New(1)
	}
	if cfg.Logger == nil {
		cfg.Logger = testLogger()
	}
	if cfg.InitialDeck == nil {
		cfg.InitialDeck = DefaultInitialDeck()
	}
	if len(cfg.Seats) == 0 {
		cfg.Seats = []Seat{{Strategy: idle()}}
	}
	b, err := NewBoard(cfg)
	require.NoError(t, err)
	return b
}

func seats(strategies ...Strategy) []Seat {
	out := make([]Seat, len(strategies))
	for i, s := range strategies {
		out[i] = Seat{Strategy: s}
	}
	return out
}

func idle() Strategy {
	return StrategyFunc{}
}

// bigMoney plays every treasure and buys the best of Province, Gold, Silver.
func bigMoney() Strategy {
	return StrategyFunc{
		Buy: func(p *Player) bool {
			p.PlayAllTreasures()
			for _, name := range []card.Name{card.Province, card.Gold, card.Silver} {
				if p.TryBuy(name) {
					return true
				}
			}
			return false
		},
	}
}

func names(list ...any) []card.Name {
	var out []card.Name
	for i := 0; i < len(list); i += 2 {
		name := list[i].(card.Name)
		for range list[i+1].(int) {
			out = append(out, name)
		}
	}
	return out
}
