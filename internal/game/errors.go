package game

import (
	"errors"

	"github.com/lox/dominionsim/internal/card"
)

var (
	// ErrUnknownCard means a name is not defined by the catalog or has no
	// supply pile.
	ErrUnknownCard = card.ErrUnknownCard

	ErrPileEmpty     = errors.New("supply pile is empty")
	ErrNotAffordable = errors.New("not enough coins")
	ErrNoBuys        = errors.New("no buys left")
	ErrNoActions     = errors.New("no actions left")
	ErrCardNotInHand = errors.New("card not in hand")
	ErrNotAction     = errors.New("card is not an action")
	ErrWrongPhase    = errors.New("not in the action phase")
)
