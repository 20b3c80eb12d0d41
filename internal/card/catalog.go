package card

import (
	"errors"
	"fmt"
)

// ErrUnknownCard is returned when a name has no record in the catalog.
var ErrUnknownCard = errors.New("unknown card")

// SupplyPolicy decides how many copies of a card go into its supply pile for
// a given player count.
type SupplyPolicy func(r *Record, players int) int

// NormalPolicy always uses the record's supply count.
func NormalPolicy(r *Record, _ int) int {
	return r.Supply
}

// VictoryPolicy uses 8 copies for games of two or fewer players and the
// record's supply count otherwise.
func VictoryPolicy(r *Record, players int) int {
	if players <= 2 {
		return 8
	}
	return r.Supply
}

// Effect resolves a card being played. ctx is an optional value the caller
// passes through to the effect.
type Effect func(a Actor, c *Card, ctx any)

// Record is the immutable definition of a card.
type Record struct {
	Name          Name
	Types         []Type
	Cost          Cost
	VictoryPoints int
	Supply        int          // default pile size
	Policy        SupplyPolicy // nil means NormalPolicy
	Play          Effect
	Duration      DurationKind
}

// PileSize returns the supply pile size for the given player count.
func (r *Record) PileSize(players int) int {
	if r.Policy == nil {
		return NormalPolicy(r, players)
	}
	return r.Policy(r, players)
}

// Catalog is the set of card definitions available to a simulation.
type Catalog struct {
	records map[Name]*Record
	order   []Name
}

// NewCatalog builds a catalog. Record names must be unique and non-empty.
func NewCatalog(records ...Record) (*Catalog, error) {
	c := &Catalog{records: make(map[Name]*Record, len(records))}
	for i := range records {
		r := records[i]
		if r.Name == "" {
			return nil, fmt.Errorf("record %d has no name", i)
		}
		if _, dup := c.records[r.Name]; dup {
			return nil, fmt.Errorf("duplicate card record %s", r.Name)
		}
		if r.Supply < 0 {
			return nil, fmt.Errorf("card %s: negative supply count %d", r.Name, r.Supply)
		}
		c.records[r.Name] = &r
		c.order = append(c.order, r.Name)
	}
	return c, nil
}

// Lookup returns the record for name.
func (c *Catalog) Lookup(name Name) (*Record, bool) {
	r, ok := c.records[name]
	return r, ok
}

// Has reports whether the catalog defines name.
func (c *Catalog) Has(name Name) bool {
	_, ok := c.records[name]
	return ok
}

// Names returns every card name in definition order.
func (c *Catalog) Names() []Name {
	out := make([]Name, len(c.order))
	copy(out, c.order)
	return out
}

// Records returns every record in definition order.
func (c *Catalog) Records() []*Record {
	out := make([]*Record, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.records[name])
	}
	return out
}

// New creates a fresh card instance.
func (c *Catalog) New(name Name) (*Card, error) {
	r, ok := c.records[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCard, name)
	}
	return &Card{record: r}, nil
}

// NewN creates n fresh instances of the same card.
func (c *Catalog) NewN(name Name, n int) ([]*Card, error) {
	r, ok := c.records[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCard, name)
	}
	cards := make([]*Card, n)
	for i := range cards {
		cards[i] = &Card{record: r}
	}
	return cards, nil
}

// PileSize returns the supply pile size of name for the given player count.
func (c *Catalog) PileSize(name Name, players int) (int, error) {
	r, ok := c.records[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCard, name)
	}
	return r.PileSize(players), nil
}

// Validate checks that every name is defined.
func (c *Catalog) Validate(names []Name) error {
	for _, name := range names {
		if !c.Has(name) {
			return fmt.Errorf("%w: %s", ErrUnknownCard, name)
		}
	}
	return nil
}
