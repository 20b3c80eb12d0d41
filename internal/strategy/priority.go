// Package strategy provides deterministic player strategies for the
// simulator.
package strategy

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/dominionsim/internal/card"
	"github.com/lox/dominionsim/internal/game"
)

// BuyRule is one entry of a purchase priority list.
type BuyRule struct {
	Card card.Name

	// MinCoins is the coin total required before the rule is considered.
	MinCoins int

	// AtLeast requires the player to already own at least this many of each
	// card.
	AtLeast map[card.Name]int

	// Below requires the player to own fewer than this many of each card.
	Below map[card.Name]int
}

// Allows reports whether the rule's conditions hold for p. Affordability of
// the card itself is left to the buy.
func (r BuyRule) Allows(p *game.Player) bool {
	if p.Coins() < r.MinCoins {
		return false
	}
	for name, n := range r.AtLeast {
		if p.CountInDeck(name) < n {
			return false
		}
	}
	for name, n := range r.Below {
		if p.CountInDeck(name) >= n {
			return false
		}
	}
	return true
}

func (r BuyRule) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s", r.Card)
	if r.MinCoins > 0 {
		fmt.Fprintf(&b, " coins>=%d", r.MinCoins)
	}
	for _, name := range slices.Sorted(maps.Keys(r.AtLeast)) {
		fmt.Fprintf(&b, " %s>=%d", name, r.AtLeast[name])
	}
	for _, name := range slices.Sorted(maps.Keys(r.Below)) {
		fmt.Fprintf(&b, " %s<%d", name, r.Below[name])
	}
	return b.String()
}

// Priority plays the first playable card of an ordered action list and buys
// the first card of an ordered rule list whose conditions hold.
type Priority struct {
	name    string
	actions []card.Name
	buys    []BuyRule
	logger  *log.Logger
}

// NewPriority creates a priority strategy. name is used in logs and reports.
func NewPriority(name string, actions []card.Name, buys []BuyRule, logger *log.Logger) *Priority {
	return &Priority{
		name:    name,
		actions: slices.Clone(actions),
		buys:    slices.Clone(buys),
		logger:  logger,
	}
}

// Name returns the strategy's display name.
func (s *Priority) Name() string { return s.name }

// Actions returns the action play order.
func (s *Priority) Actions() []card.Name { return slices.Clone(s.actions) }

// Rules returns the buy rules in priority order.
func (s *Priority) Rules() []BuyRule { return slices.Clone(s.buys) }

func (s *Priority) ActionPhase(p *game.Player) bool {
	for _, name := range s.actions {
		if p.TryPlayCard(name, nil) {
			return true
		}
	}
	return false
}

func (s *Priority) BuyPhase(p *game.Player) bool {
	p.PlayAllTreasures()
	for _, rule := range s.buys {
		if !rule.Allows(p) {
			continue
		}
		if p.TryBuy(rule.Card) {
			if s.logger != nil {
				s.logger.Debug("rule matched", "strategy", s.name, "player", p.Name(), "rule", rule.String())
			}
			return true
		}
	}
	return false
}

// Validate checks every card the strategy refers to against catalog.
func (s *Priority) Validate(catalog *card.Catalog) error {
	if err := catalog.Validate(s.actions); err != nil {
		return fmt.Errorf("strategy %s actions: %w", s.name, err)
	}
	for i, rule := range s.buys {
		refs := []card.Name{rule.Card}
		refs = append(refs, slices.Collect(maps.Keys(rule.AtLeast))...)
		refs = append(refs, slices.Collect(maps.Keys(rule.Below))...)
		if err := catalog.Validate(refs); err != nil {
			return fmt.Errorf("strategy %s buy rule %d: %w", s.name, i+1, err)
		}
	}
	return nil
}
