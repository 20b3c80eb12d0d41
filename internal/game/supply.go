package game

import (
	"fmt"

	"github.com/lox/dominionsim/internal/card"
)

// SupplyPile is the finite stock of one card name.
type SupplyPile struct {
	card.Collection
	name card.Name
}

// Name returns the card name the pile holds.
func (p *SupplyPile) Name() card.Name {
	return p.name
}

// Supply is the shared set of piles a game buys and gains from. Piles are
// created once at setup and never refilled.
type Supply struct {
	piles []*SupplyPile
	index map[card.Name]*SupplyPile
}

// NewSupply builds one pile per kingdom card followed by the basic cards,
// sized for the given player count. Repeated names share a single pile.
func NewSupply(catalog *card.Catalog, kingdom []card.Name, players int) (*Supply, error) {
	s := &Supply{index: make(map[card.Name]*SupplyPile)}

	names := make([]card.Name, 0, len(kingdom)+len(card.BasicCards))
	names = append(names, kingdom...)
	names = append(names, card.BasicCards...)

	for _, name := range names {
		if _, exists := s.index[name]; exists {
			continue
		}
		size, err := catalog.PileSize(name, players)
		if err != nil {
			return nil, fmt.Errorf("building supply: %w", err)
		}
		cards, err := catalog.NewN(name, size)
		if err != nil {
			return nil, fmt.Errorf("building supply: %w", err)
		}
		pile := &SupplyPile{name: name}
		pile.PushAll(cards...)
		s.piles = append(s.piles, pile)
		s.index[name] = pile
	}
	return s, nil
}

// Pile returns the pile for name.
func (s *Supply) Pile(name card.Name) (*SupplyPile, bool) {
	p, ok := s.index[name]
	return p, ok
}

// Has reports whether the supply has a pile for name, empty or not.
func (s *Supply) Has(name card.Name) bool {
	_, ok := s.index[name]
	return ok
}

// IsEmpty reports whether the pile for name is empty. A missing pile counts
// as empty.
func (s *Supply) IsEmpty(name card.Name) bool {
	p, ok := s.index[name]
	return !ok || p.IsEmpty()
}

// Count returns the number of cards left in the pile for name.
func (s *Supply) Count(name card.Name) int {
	p, ok := s.index[name]
	if !ok {
		return 0
	}
	return p.Len()
}

// Peek returns the top card of the pile for name without removing it.
func (s *Supply) Peek(name card.Name) (*card.Card, bool) {
	p, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return p.Peek()
}

// Pop removes the top card of the pile for name. It reports false when the
// pile is missing or empty.
func (s *Supply) Pop(name card.Name) (*card.Card, bool) {
	p, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return p.Pop()
}

// Names returns the pile names in setup order.
func (s *Supply) Names() []card.Name {
	names := make([]card.Name, len(s.piles))
	for i, p := range s.piles {
		names[i] = p.name
	}
	return names
}

// Counts returns the remaining size of every pile.
func (s *Supply) Counts() map[card.Name]int {
	counts := make(map[card.Name]int, len(s.piles))
	for _, p := range s.piles {
		counts[p.name] = p.Len()
	}
	return counts
}

// Total returns the number of cards left across all piles.
func (s *Supply) Total() int {
	total := 0
	for _, p := range s.piles {
		total += p.Len()
	}
	return total
}

// EmptyPiles returns how many piles have run out.
func (s *Supply) EmptyPiles() int {
	n := 0
	for _, p := range s.piles {
		if p.IsEmpty() {
			n++
		}
	}
	return n
}
