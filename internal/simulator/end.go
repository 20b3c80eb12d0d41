package simulator

import (
	"github.com/lox/dominionsim/internal/card"
	"github.com/lox/dominionsim/internal/game"
)

// EndCondition reports whether a game is over. It is checked after every
// single player's turn.
type EndCondition func(b *game.Board) bool

// PlayerHas ends the game once the player at index (counting from 0) owns at
// least the given number of every listed card.
func PlayerHas(index int, counts map[card.Name]int) EndCondition {
	return func(b *game.Board) bool {
		p, ok := b.Player(index)
		if !ok {
			return false
		}
		for name, n := range counts {
			if p.CountInDeck(name) < n {
				return false
			}
		}
		return true
	}
}

// AnyOf ends the game when any condition holds.
func AnyOf(conds ...EndCondition) EndCondition {
	return func(b *game.Board) bool {
		for _, c := range conds {
			if c(b) {
				return true
			}
		}
		return false
	}
}

// AllOf ends the game when every condition holds. With no conditions it
// never ends the game.
func AllOf(conds ...EndCondition) EndCondition {
	return func(b *game.Board) bool {
		if len(conds) == 0 {
			return false
		}
		for _, c := range conds {
			if !c(b) {
				return false
			}
		}
		return true
	}
}

// StandardEnd is the tabletop rule: the Province or Colony pile is empty, or
// any three piles are.
func StandardEnd() EndCondition {
	return func(b *game.Board) bool {
		s := b.Supply()
		if s.IsEmpty(card.Province) || s.IsEmpty(card.Colony) {
			return true
		}
		return s.EmptyPiles() >= 3
	}
}

// ProvinceRace is the default goal: the first player holds four Provinces,
// or three Provinces and two Duchies.
func ProvinceRace() EndCondition {
	return AnyOf(
		PlayerHas(0, map[card.Name]int{card.Province: 4}),
		PlayerHas(0, map[card.Name]int{card.Province: 3, card.Duchy: 2}),
	)
}
