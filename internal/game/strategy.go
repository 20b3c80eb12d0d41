package game

// Strategy decides a player's plays and purchases. Implementations may only
// act through the Player's exported operations.
type Strategy interface {
	// ActionPhase attempts at most one action play and reports whether a
	// card was played.
	ActionPhase(p *Player) bool

	// BuyPhase may play treasures and attempts at most one purchase. It
	// reports whether a card was bought.
	BuyPhase(p *Player) bool
}

// StrategyFunc adapts a pair of functions to Strategy. A nil field never
// plays or buys.
type StrategyFunc struct {
	Action func(p *Player) bool
	Buy    func(p *Player) bool
}

func (s StrategyFunc) ActionPhase(p *Player) bool {
	if s.Action == nil {
		return false
	}
	return s.Action(p)
}

func (s StrategyFunc) BuyPhase(p *Player) bool {
	if s.Buy == nil {
		return false
	}
	return s.Buy(p)
}
