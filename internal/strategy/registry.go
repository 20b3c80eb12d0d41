package strategy

import (
	"errors"
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/dominionsim/internal/game"
)

// ErrUnknownStrategy is returned for a name with no built-in strategy.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Builtin lists the names New accepts.
var Builtin = []string{"big-money", "smithy", "engine", "random"}

// New creates the built-in strategy called name. rng is the game's random
// source and is only used by strategies that make random choices.
func New(name string, rng *rand.Rand, logger *log.Logger) (game.Strategy, error) {
	switch name {
	case "big-money":
		return NewBigMoney(logger), nil
	case "smithy":
		return NewSmithyBigMoney(logger), nil
	case "engine":
		return NewEngine(logger), nil
	case "random":
		if rng == nil {
			return nil, fmt.Errorf("strategy %s needs a random source", name)
		}
		return NewRandom(rng, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
