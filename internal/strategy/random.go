package strategy

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/dominionsim/internal/card"
	"github.com/lox/dominionsim/internal/game"
)

// Random plays a uniformly chosen playable action and buys a uniformly chosen
// affordable card. It draws from the game's random source, so runs stay
// reproducible.
type Random struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandom creates a Random strategy.
func NewRandom(rng *rand.Rand, logger *log.Logger) *Random {
	return &Random{rng: rng, logger: logger}
}

func (r *Random) ActionPhase(p *game.Player) bool {
	var playable []card.Name
	for _, name := range p.Hand().Names() {
		if p.CanPlayAction(name) {
			playable = append(playable, name)
		}
	}
	if len(playable) == 0 {
		return false
	}
	return p.TryPlayCard(playable[r.rng.IntN(len(playable))], nil)
}

func (r *Random) BuyPhase(p *game.Player) bool {
	p.PlayAllTreasures()
	var buyable []card.Name
	for _, name := range p.Supply().Names() {
		if name != card.Copper && p.CanBuy(name) {
			buyable = append(buyable, name)
		}
	}
	if len(buyable) == 0 {
		return false
	}
	// Passing is one of the choices.
	i := r.rng.IntN(len(buyable) + 1)
	if i == len(buyable) {
		return false
	}
	return p.TryBuy(buyable[i])
}
