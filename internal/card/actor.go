package card

// Zone is a destination for a gained card.
type Zone int

const (
	ZoneDiscard Zone = iota
	ZoneHand
	ZoneDeck
)

func (z Zone) String() string {
	switch z {
	case ZoneDiscard:
		return "discard"
	case ZoneHand:
		return "hand"
	case ZoneDeck:
		return "deck"
	default:
		return "unknown"
	}
}

// DurationKind selects the delayed effect a durational card schedules.
type DurationKind int

const (
	NoDuration DurationKind = iota
	// DrawEachTurn draws one card at the start of every later turn.
	DrawEachTurn
	// GainGoldToHand gains a Gold into hand at the start of the next turn.
	GainGoldToHand
)

func (k DurationKind) String() string {
	switch k {
	case NoDuration:
		return "none"
	case DrawEachTurn:
		return "draw-each-turn"
	case GainGoldToHand:
		return "gain-gold-to-hand"
	default:
		return "unknown"
	}
}

// Unlimited marks a scheduled effect that fires every turn for the rest of
// the game.
const Unlimited = -1

// Actor is the part of a player that card effects may act on. Effects never
// reach the player's collections directly except through Hand.
type Actor interface {
	Draw(n int) []*Card
	AddActions(n int)
	AddCoins(n int)
	AddBuys(n int)
	DiscardHand()
	Hand() *Hand
	// PlayFromHand plays a named action card from hand without spending an
	// action. It only works while another card's effect is resolving and
	// reports false otherwise, or when the card is not an action in hand.
	PlayFromHand(name Name, ctx any) bool
	Gain(name Name, to Zone) bool
	// ScheduleTurnStart registers a delayed effect owned by c that fires at
	// the start of the owner's next turns, firings times or Unlimited.
	ScheduleTurnStart(c *Card, kind DurationKind, firings int)
}
