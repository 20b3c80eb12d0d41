package game

import (
	"fmt"
	rand "math/rand/v2"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/dominionsim/internal/card"
)

// HandSize is the number of cards drawn at clean-up and at setup.
const HandSize = 5

// maxPhaseSteps bounds the phase loop of one turn. A strategy that keeps
// reporting plays it never made would otherwise spin forever.
const maxPhaseSteps = 1000

// Player is one seat in a game: its cards, its turn counters and the
// strategy that drives it.
type Player struct {
	name     string
	strategy Strategy
	supply   *Supply
	rng      *rand.Rand
	logger   *log.Logger

	hand     card.Hand
	deck     card.Deck
	discard  card.DiscardPile
	playArea card.PlayArea

	coins   int
	actions int
	buys    int
	phase   Phase
	turnNum int

	tasks TaskQueue
	log   *PlayLog

	// resolving counts card effects currently on the stack.
	resolving int
}

var _ card.Actor = (*Player)(nil)

func newPlayer(name string, strategy Strategy, supply *Supply, rng *rand.Rand, logger *log.Logger, record bool) *Player {
	p := &Player{
		name:     name,
		strategy: strategy,
		supply:   supply,
		rng:      rng,
		logger:   logger,
		log:      newPlayLog(logger, record),
	}
	p.resetCounters()
	return p
}

// Name returns the player's name.
func (p *Player) Name() string { return p.name }

// Strategy returns the strategy driving the player.
func (p *Player) Strategy() Strategy { return p.strategy }

// Supply returns the shared supply the player buys from.
func (p *Player) Supply() *Supply { return p.supply }

func (p *Player) Coins() int   { return p.coins }
func (p *Player) Actions() int { return p.actions }
func (p *Player) Buys() int    { return p.buys }
func (p *Player) Phase() Phase { return p.phase }

// TurnNum returns the number of turns the player has started.
func (p *Player) TurnNum() int { return p.turnNum }

func (p *Player) Hand() *card.Hand               { return &p.hand }
func (p *Player) Deck() *card.Deck               { return &p.deck }
func (p *Player) DiscardPile() *card.DiscardPile { return &p.discard }
func (p *Player) PlayArea() *card.PlayArea       { return &p.playArea }
func (p *Player) Tasks() *TaskQueue              { return &p.tasks }
func (p *Player) Log() *PlayLog                  { return p.log }

func (p *Player) AddActions(n int) { p.actions += n }
func (p *Player) AddCoins(n int)   { p.coins += n }
func (p *Player) AddBuys(n int)    { p.buys += n }

func (p *Player) resetCounters() {
	p.coins = 0
	p.actions = 1
	p.buys = 1
}

// Prepare sets up the starting deck. The first card of cards ends up on top,
// so without shuffling the opening hand is the first five cards in order.
func (p *Player) Prepare(cards []*card.Card, shuffle bool) {
	p.deck.PushAll(cards...)
	p.deck.Reverse()
	if shuffle {
		p.deck.Shuffle(p.rng)
	}
	p.Draw(HandSize)
}

// ProcessTurn plays one full turn: turn-start tasks, then the action, buy
// and clean-up phases.
func (p *Player) ProcessTurn() {
	p.turnNum++
	p.resetCounters()
	p.phase = PhaseAction
	p.log.startTurn(p.turnNum)
	if p.log.enabled() {
		p.log.add(p.name, p.turnNum, "hand: %s", joinNames(p.hand.Names()))
	}

	p.tasks.Run(p)

	for steps := 0; p.phase != PhaseCleanUp; steps++ {
		if steps >= maxPhaseSteps {
			if p.logger != nil {
				p.logger.Warn("phase loop did not settle, forcing clean-up",
					"player", p.name, "turn", p.turnNum, "phase", p.phase)
			}
			p.phase = PhaseCleanUp
			break
		}
		switch p.phase {
		case PhaseAction:
			p.actionStep()
		case PhaseBuy:
			p.buyStep()
		}
	}

	p.cleanUp()
}

func (p *Player) actionStep() {
	if p.actions <= 0 {
		p.phase = PhaseBuy
		return
	}
	played := p.strategy.ActionPhase(p)
	if !played || p.actions <= 0 || p.hand.CountByType(card.Action) == 0 {
		p.phase = PhaseBuy
	}
}

func (p *Player) buyStep() {
	if p.buys <= 0 {
		p.phase = PhaseCleanUp
		return
	}
	bought := p.strategy.BuyPhase(p)
	if !bought || p.buys <= 0 {
		p.phase = PhaseCleanUp
	}
}

func (p *Player) cleanUp() {
	p.phase = PhaseCleanUp
	p.DiscardHand()
	p.discard.PushAll(p.playArea.PopAllMatching(func(c *card.Card) bool {
		return !c.Durational
	})...)
	p.Draw(HandSize)
	p.resetCounters()
}

// CanPlayAction reports whether PlayAction would succeed for name.
func (p *Player) CanPlayAction(name card.Name) bool {
	return p.checkPlayAction(name) == nil
}

func (p *Player) checkPlayAction(name card.Name) error {
	if p.phase != PhaseAction {
		return fmt.Errorf("%w: %s during %s", ErrWrongPhase, name, p.phase)
	}
	c, ok := p.hand.Find(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrCardNotInHand, name)
	}
	if !c.HasType(card.Action) {
		return fmt.Errorf("%w: %s", ErrNotAction, name)
	}
	if p.actions <= 0 {
		return ErrNoActions
	}
	return nil
}

// PlayAction spends an action to play name from hand. ctx is handed to the
// card's effect unchanged.
func (p *Player) PlayAction(name card.Name, ctx any) error {
	if err := p.checkPlayAction(name); err != nil {
		return err
	}
	p.actions--
	c, _ := p.hand.PopByName(name)
	p.log.add(p.name, p.turnNum, "play %s", name)
	p.resolve(c, ctx)
	p.playArea.Push(c)
	return nil
}

func (p *Player) resolve(c *card.Card, ctx any) {
	p.resolving++
	defer func() { p.resolving-- }()
	c.Play(p, ctx)
}

// TryPlayCard plays name if it can and reports whether it did.
func (p *Player) TryPlayCard(name card.Name, ctx any) bool {
	return p.PlayAction(name, ctx) == nil
}

// PlayFromHand plays an action card from hand without spending an action.
// Only a card effect that is resolving may chain this way; outside one, or
// for a card that is not in hand or not an action, it reports false and
// changes nothing.
func (p *Player) PlayFromHand(name card.Name, ctx any) bool {
	if p.resolving == 0 {
		return false
	}
	c, ok := p.hand.Find(name)
	if !ok || !c.HasType(card.Action) {
		return false
	}
	p.hand.PopByName(name)
	p.log.add(p.name, p.turnNum, "play %s (chained)", name)
	p.resolve(c, ctx)
	p.playArea.Push(c)
	return true
}

// PlayAllTreasures plays every treasure in hand, in hand order.
func (p *Player) PlayAllTreasures() {
	treasures := p.hand.PopAllByType(card.Treasure)
	if len(treasures) == 0 {
		return
	}
	for _, c := range treasures {
		c.Play(p, nil)
		p.playArea.Push(c)
	}
	if p.log.enabled() {
		p.log.add(p.name, p.turnNum, "play treasures: %s (coins %d)", joinCards(treasures), p.coins)
	}
}

func (p *Player) checkBuy(name card.Name) (*SupplyPile, error) {
	pile, ok := p.supply.Pile(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no supply pile", ErrUnknownCard, name)
	}
	top, ok := pile.Peek()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPileEmpty, name)
	}
	if p.buys <= 0 {
		return nil, ErrNoBuys
	}
	if cost := top.Cost().Coin; p.coins < cost {
		return nil, fmt.Errorf("%w: %s costs %d, have %d", ErrNotAffordable, name, cost, p.coins)
	}
	return pile, nil
}

// CanBuy reports whether Buy would succeed for name.
func (p *Player) CanBuy(name card.Name) bool {
	_, err := p.checkBuy(name)
	return err == nil
}

// Buy pays for the top card of name's pile and puts it in the discard pile.
// On error nothing changes.
func (p *Player) Buy(name card.Name) error {
	pile, err := p.checkBuy(name)
	if err != nil {
		return err
	}
	c, _ := pile.Pop()
	p.coins -= c.Cost().Coin
	p.buys--
	p.discard.Push(c)
	p.log.add(p.name, p.turnNum, "buy %s (coins left %d)", name, p.coins)
	return nil
}

// TryBuy buys name if it can and reports whether it did.
func (p *Player) TryBuy(name card.Name) bool {
	return p.Buy(name) == nil
}

// Gain moves the top card of name's pile to the given zone without paying.
// It reports false when the pile is missing or empty.
func (p *Player) Gain(name card.Name, to card.Zone) bool {
	c, ok := p.supply.Pop(name)
	if !ok {
		return false
	}
	switch to {
	case card.ZoneHand:
		p.hand.Push(c)
	case card.ZoneDeck:
		p.deck.Push(c)
	default:
		p.discard.Push(c)
	}
	p.log.add(p.name, p.turnNum, "gain %s to %s", name, to)
	return true
}

// Draw moves up to n cards from the deck into hand, reshuffling the discard
// pile into the deck when the deck runs short. It returns the drawn cards,
// which may be fewer than n when both piles run out.
func (p *Player) Draw(n int) []*card.Card {
	if n <= 0 {
		return nil
	}
	drawn := p.deck.PopN(n)
	if len(drawn) < n && !p.discard.IsEmpty() {
		p.deck.PushAll(p.discard.PopAll()...)
		p.deck.Shuffle(p.rng)
		drawn = append(drawn, p.deck.PopN(n-len(drawn))...)
	}
	p.hand.PushAll(drawn...)
	return drawn
}

// DiscardHand moves the whole hand to the discard pile.
func (p *Player) DiscardHand() {
	p.discard.PushAll(p.hand.PopAll()...)
}

// PutOnDeck moves name from hand to the top of the deck. When name is not in
// hand the most recently drawn card goes instead. It reports false only for
// an empty hand.
func (p *Player) PutOnDeck(name card.Name) bool {
	c, ok := p.hand.PopByName(name)
	if !ok {
		c, ok = p.hand.Pop()
	}
	if !ok {
		return false
	}
	p.deck.Push(c)
	return true
}

// ScheduleTurnStart queues an effect of c to fire at the start of the next
// turns, firings times or card.Unlimited.
func (p *Player) ScheduleTurnStart(c *card.Card, kind card.DurationKind, firings int) {
	if firings == 0 {
		return
	}
	p.tasks.Add(&Task{Card: c, Kind: kind, Remaining: firings})
}

func (p *Player) zones() []*card.Collection {
	return []*card.Collection{
		&p.hand.Collection,
		&p.deck.Collection,
		&p.discard.Collection,
		&p.playArea.Collection,
	}
}

// CountInDeck counts the copies of name the player owns across hand, deck,
// discard pile and play area.
func (p *Player) CountInDeck(name card.Name) int {
	n := 0
	for _, z := range p.zones() {
		n += z.CountByName(name)
	}
	return n
}

// CardCounts returns how many of each card the player owns.
func (p *Player) CardCounts() map[card.Name]int {
	counts := make(map[card.Name]int)
	for _, z := range p.zones() {
		for _, name := range z.Names() {
			counts[name]++
		}
	}
	return counts
}

// CardNames returns the names of every owned card, sorted.
func (p *Player) CardNames() []card.Name {
	var names []card.Name
	for _, z := range p.zones() {
		names = append(names, z.Names()...)
	}
	slices.Sort(names)
	return names
}

// CardTotal returns the number of cards the player owns.
func (p *Player) CardTotal() int {
	n := 0
	for _, z := range p.zones() {
		n += z.Len()
	}
	return n
}

// VictoryPoints sums the points of every owned card.
func (p *Player) VictoryPoints() int {
	vp := 0
	for _, z := range p.zones() {
		for _, c := range z.Cards() {
			vp += c.VictoryPoints()
		}
	}
	return vp
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (turn %d, %s)", p.name, p.turnNum, p.phase)
}

func joinNames(names []card.Name) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = string(n)
	}
	return strings.Join(parts, " ")
}

func joinCards(cards []*card.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = string(c.Name())
	}
	return strings.Join(parts, " ")
}
