package game

import (
	"errors"
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/dominionsim/internal/card"
)

// Seat assigns a strategy to a player slot. An empty Name becomes
// "player<N>", counting from 1.
type Seat struct {
	Name     string
	Strategy Strategy
}

// BoardConfig describes one game's setup.
type BoardConfig struct {
	Catalog     *card.Catalog // nil means card.DefaultCatalog()
	Seats       []Seat
	Kingdom     []card.Name
	InitialDeck []card.Name

	// ShuffleTurnZero shuffles each starting deck before the first draw.
	// When false the opening hand is the first five InitialDeck cards.
	ShuffleTurnZero bool

	Rand          *rand.Rand
	Logger        *log.Logger
	RecordPlayLog bool
}

// DefaultInitialDeck is the standard starting deck: seven Coppers and three
// Estates.
func DefaultInitialDeck() []card.Name {
	deck := make([]card.Name, 0, 10)
	for range 7 {
		deck = append(deck, card.Copper)
	}
	for range 3 {
		deck = append(deck, card.Estate)
	}
	return deck
}

// Board is the state of one game: the shared supply and the seated players.
type Board struct {
	supply  *Supply
	players []*Player
}

// NewBoard builds the supply, seats the players and deals each its starting
// deck from the supply piles. Configuration errors are returned before any
// card moves.
func NewBoard(cfg BoardConfig) (*Board, error) {
	if len(cfg.Seats) == 0 {
		return nil, errors.New("board needs at least one seat")
	}
	if cfg.Rand == nil {
		return nil, errors.New("board needs a random source")
	}
	catalog := cfg.Catalog
	if catalog == nil {
		catalog = card.DefaultCatalog()
	}
	if err := catalog.Validate(cfg.Kingdom); err != nil {
		return nil, fmt.Errorf("kingdom: %w", err)
	}
	if err := catalog.Validate(cfg.InitialDeck); err != nil {
		return nil, fmt.Errorf("initial deck: %w", err)
	}

	supply, err := NewSupply(catalog, cfg.Kingdom, len(cfg.Seats))
	if err != nil {
		return nil, err
	}
	if err := checkInitialDeck(supply, cfg.InitialDeck, len(cfg.Seats)); err != nil {
		return nil, err
	}

	b := &Board{supply: supply}
	seen := make(map[string]bool, len(cfg.Seats))
	for i, seat := range cfg.Seats {
		if seat.Strategy == nil {
			return nil, fmt.Errorf("seat %d has no strategy", i+1)
		}
		name := seat.Name
		if name == "" {
			name = fmt.Sprintf("player%d", i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate player name %q", name)
		}
		seen[name] = true

		p := newPlayer(name, seat.Strategy, supply, cfg.Rand, cfg.Logger, cfg.RecordPlayLog)
		starting := make([]*card.Card, 0, len(cfg.InitialDeck))
		for _, n := range cfg.InitialDeck {
			c, _ := supply.Pop(n)
			starting = append(starting, c)
		}
		p.Prepare(starting, cfg.ShuffleTurnZero)
		if cfg.Logger != nil {
			cfg.Logger.Debug("player ready", "player", name, "hand", joinNames(p.hand.Names()))
		}
		b.players = append(b.players, p)
	}
	return b, nil
}

// checkInitialDeck fails when the supply cannot deal every player the full
// starting deck.
func checkInitialDeck(supply *Supply, deck []card.Name, players int) error {
	need := make(map[card.Name]int)
	for _, n := range deck {
		need[n] += players
	}
	for n, count := range need {
		if !supply.Has(n) {
			return fmt.Errorf("initial deck: %w: %s has no supply pile", ErrUnknownCard, n)
		}
		if have := supply.Count(n); have < count {
			return fmt.Errorf("initial deck: %w: need %d %s, supply has %d", ErrPileEmpty, count, n, have)
		}
	}
	return nil
}

// Supply returns the shared supply.
func (b *Board) Supply() *Supply { return b.supply }

// Players returns the players in turn order.
func (b *Board) Players() []*Player { return b.players }

// PlayerNum returns the number of seated players.
func (b *Board) PlayerNum() int { return len(b.players) }

// Player returns the player at index i, counting from 0.
func (b *Board) Player(i int) (*Player, bool) {
	if i < 0 || i >= len(b.players) {
		return nil, false
	}
	return b.players[i], true
}

// PlayerByName returns the player with the given name.
func (b *Board) PlayerByName(name string) (*Player, bool) {
	for _, p := range b.players {
		if p.name == name {
			return p, true
		}
	}
	return nil, false
}
