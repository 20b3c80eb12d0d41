// Package card defines card definitions, the catalog they are built from and
// the ordered collections that hold card instances during a game.
package card

import (
	"fmt"
	"slices"
)

// Name identifies a card definition. Instances with the same name are
// interchangeable for rules purposes but remain distinct objects.
type Name string

const (
	Gold       Name = "GOLD"
	Silver     Name = "SILVER"
	Copper     Name = "COPPER"
	Province   Name = "PROVINCE"
	Duchy      Name = "DUCHY"
	Estate     Name = "ESTATE"
	Platinum   Name = "PLATINUM"
	Colony     Name = "COLONY"
	Smithy     Name = "SMITHY"
	Scholar    Name = "SCHOLAR"
	Laboratory Name = "LABORATORY"
	Market     Name = "MARKET"
	Festival   Name = "FESTIVAL"
	Sauna      Name = "SAUNA"
	Avanto     Name = "AVANTO"
	Hireling   Name = "HIRELING"
	Pirate     Name = "PIRATE"
)

// Type is a card type tag. A card may carry several.
type Type string

const (
	Action   Type = "ACTION"
	Treasure Type = "TREASURE"
	Victory  Type = "VICTORY"
	Duration Type = "DURATION"
)

// Cost is the price of a card in each currency.
type Cost struct {
	Coin   int
	Potion int
	Debt   int
}

// String renders the cost, e.g. "$5" or "$4 1P".
func (c Cost) String() string {
	s := fmt.Sprintf("$%d", c.Coin)
	if c.Potion > 0 {
		s += fmt.Sprintf(" %dP", c.Potion)
	}
	if c.Debt > 0 {
		s += fmt.Sprintf(" %dD", c.Debt)
	}
	return s
}

// Card is one physical card. It is owned by exactly one collection at a time.
type Card struct {
	record *Record

	// Durational is set while a delayed effect of this card is still pending.
	// Clean-up leaves durational cards in the play area.
	Durational bool
}

// Name returns the card name.
func (c *Card) Name() Name {
	return c.record.Name
}

// Is reports whether the card has the given name.
func (c *Card) Is(name Name) bool {
	return c.record.Name == name
}

// Types returns the card's type tags.
func (c *Card) Types() []Type {
	return c.record.Types
}

// HasType reports whether the card carries the given type tag.
func (c *Card) HasType(t Type) bool {
	return slices.Contains(c.record.Types, t)
}

// Cost returns the card's cost.
func (c *Card) Cost() Cost {
	return c.record.Cost
}

// VictoryPoints returns the points the card is worth at game end.
func (c *Card) VictoryPoints() int {
	return c.record.VictoryPoints
}

// Record returns the definition this card was built from.
func (c *Card) Record() *Record {
	return c.record
}

// Play resolves the card's play effect against the acting player. Cards
// without an effect (victory cards) do nothing.
func (c *Card) Play(actor Actor, ctx any) {
	if c.record.Play == nil {
		return
	}
	c.record.Play(actor, c, ctx)
}

func (c *Card) String() string {
	return string(c.record.Name)
}
