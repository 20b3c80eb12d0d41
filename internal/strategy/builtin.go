package strategy

import (
	"github.com/charmbracelet/log"

	"github.com/lox/dominionsim/internal/card"
)

// NewBigMoney buys Province at 8, Gold at 6 and Silver at 3, and never plays
// actions.
func NewBigMoney(logger *log.Logger) *Priority {
	return NewPriority("big-money", nil, []BuyRule{
		{Card: card.Province, MinCoins: 8},
		{Card: card.Gold, MinCoins: 6},
		{Card: card.Silver, MinCoins: 3},
	}, logger)
}

// NewSmithyBigMoney is big money with a single Smithy. Provinces wait until
// the deck holds a Gold.
func NewSmithyBigMoney(logger *log.Logger) *Priority {
	return NewPriority("smithy", []card.Name{card.Smithy}, []BuyRule{
		{Card: card.Province, MinCoins: 8, AtLeast: map[card.Name]int{card.Gold: 1}},
		{Card: card.Gold, MinCoins: 6},
		{Card: card.Smithy, MinCoins: 4, Below: map[card.Name]int{card.Smithy: 1}},
		{Card: card.Silver, MinCoins: 3},
	}, logger)
}

// NewEngine plays non-terminal actions before terminal draw and builds
// toward a Laboratory and Market deck before greening.
func NewEngine(logger *log.Logger) *Priority {
	return NewPriority("engine",
		[]card.Name{
			card.Festival, card.Laboratory, card.Market, card.Sauna,
			card.Hireling, card.Pirate, card.Avanto, card.Smithy, card.Scholar,
		},
		[]BuyRule{
			{Card: card.Colony, MinCoins: 11},
			{Card: card.Province, MinCoins: 8, AtLeast: map[card.Name]int{card.Gold: 1}},
			{Card: card.Platinum, MinCoins: 9},
			{Card: card.Gold, MinCoins: 6, AtLeast: map[card.Name]int{card.Laboratory: 2}},
			{Card: card.Laboratory, MinCoins: 5, Below: map[card.Name]int{card.Laboratory: 4}},
			{Card: card.Market, MinCoins: 5, Below: map[card.Name]int{card.Market: 2}},
			{Card: card.Gold, MinCoins: 6},
			{Card: card.Duchy, MinCoins: 5, AtLeast: map[card.Name]int{card.Province: 3}},
			{Card: card.Smithy, MinCoins: 4, Below: map[card.Name]int{card.Smithy: 1}},
			{Card: card.Silver, MinCoins: 3},
		}, logger)
}
