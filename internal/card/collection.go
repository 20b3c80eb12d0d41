package card

import (
	rand "math/rand/v2"
	"slices"
)

// Collection is an ordered group of card instances. The end of the slice is
// the top: Pop, PopN and Peek work from there.
type Collection struct {
	cards []*Card
}

// NewCollection returns a collection holding cards in the given order.
func NewCollection(cards ...*Card) *Collection {
	c := &Collection{}
	c.PushAll(cards...)
	return c
}

// IsEmpty reports whether the collection holds no cards.
func (c *Collection) IsEmpty() bool {
	return len(c.cards) == 0
}

// Len returns the number of cards held.
func (c *Collection) Len() int {
	return len(c.cards)
}

// CountByName returns how many cards are named name.
func (c *Collection) CountByName(name Name) int {
	return c.CountMatching(func(card *Card) bool { return card.Is(name) })
}

// CountMatching returns how many cards satisfy pred.
func (c *Collection) CountMatching(pred func(*Card) bool) int {
	n := 0
	for _, card := range c.cards {
		if pred(card) {
			n++
		}
	}
	return n
}

// Has reports whether at least one card is named name.
func (c *Collection) Has(name Name) bool {
	return slices.ContainsFunc(c.cards, func(card *Card) bool { return card.Is(name) })
}

// Find returns the first card named name without removing it.
func (c *Collection) Find(name Name) (*Card, bool) {
	i := slices.IndexFunc(c.cards, func(card *Card) bool { return card.Is(name) })
	if i < 0 {
		return nil, false
	}
	return c.cards[i], true
}

// PopByName removes the first card named name.
func (c *Collection) PopByName(name Name) (*Card, bool) {
	i := slices.IndexFunc(c.cards, func(card *Card) bool { return card.Is(name) })
	if i < 0 {
		return nil, false
	}
	card := c.cards[i]
	c.cards = slices.Delete(c.cards, i, i+1)
	return card, true
}

// Pop removes the top card.
func (c *Collection) Pop() (*Card, bool) {
	if len(c.cards) == 0 {
		return nil, false
	}
	last := len(c.cards) - 1
	card := c.cards[last]
	c.cards[last] = nil
	c.cards = c.cards[:last]
	return card, true
}

// Peek returns the top card without removing it.
func (c *Collection) Peek() (*Card, bool) {
	if len(c.cards) == 0 {
		return nil, false
	}
	return c.cards[len(c.cards)-1], true
}

// PopN removes up to n cards from the top, returning them top first. It
// returns fewer than n when the collection runs out.
func (c *Collection) PopN(n int) []*Card {
	n = min(n, len(c.cards))
	if n <= 0 {
		return nil
	}
	out := make([]*Card, 0, n)
	for range n {
		card, _ := c.Pop()
		out = append(out, card)
	}
	return out
}

// PopAll removes every card, top first.
func (c *Collection) PopAll() []*Card {
	return c.PopN(len(c.cards))
}

// PopAllMatching removes every card satisfying pred. Both the removed cards
// and the ones left behind keep their relative order.
func (c *Collection) PopAllMatching(pred func(*Card) bool) []*Card {
	var picked []*Card
	kept := c.cards[:0]
	for _, card := range c.cards {
		if pred(card) {
			picked = append(picked, card)
		} else {
			kept = append(kept, card)
		}
	}
	clear(c.cards[len(kept):])
	c.cards = kept
	return picked
}

// Push adds a card on top.
func (c *Collection) Push(card *Card) {
	c.cards = append(c.cards, card)
}

// PushAll adds cards on top in order, so the last one ends up topmost.
func (c *Collection) PushAll(cards ...*Card) {
	c.cards = append(c.cards, cards...)
}

// Reverse reverses the order of the collection.
func (c *Collection) Reverse() {
	slices.Reverse(c.cards)
}

// Cards returns a copy of the held cards, bottom first.
func (c *Collection) Cards() []*Card {
	return slices.Clone(c.cards)
}

// Names returns the card names, bottom first.
func (c *Collection) Names() []Name {
	names := make([]Name, len(c.cards))
	for i, card := range c.cards {
		names[i] = card.Name()
	}
	return names
}

// Deck is a player's draw pile.
type Deck struct {
	Collection
}

// Shuffle randomises the deck order in place.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Hand is the set of cards a player holds.
type Hand struct {
	Collection
}

// PopAllByType removes every card carrying t, keeping hand order.
func (h *Hand) PopAllByType(t Type) []*Card {
	return h.PopAllMatching(func(c *Card) bool { return c.HasType(t) })
}

// CountByType returns how many held cards carry t.
func (h *Hand) CountByType(t Type) int {
	return h.CountMatching(func(c *Card) bool { return c.HasType(t) })
}

// PlayArea holds cards played this turn and durational cards still in effect.
type PlayArea struct {
	Collection
}

// DiscardPile holds discarded and gained cards until the next reshuffle.
type DiscardPile struct {
	Collection
}
