// Package game implements the turn engine of the deck-building simulation.
//
// A Board owns the shared Supply and an ordered list of Players. Each Player
// runs its own turn state machine (ACTION, BUY, CLEAN_UP), consulting its
// Strategy once per phase step, and moves card instances between its hand,
// deck, discard pile and play area.
//
// # Basic Usage
//
//	board, err := game.NewBoard(game.BoardConfig{
//	    Catalog:     card.DefaultCatalog(),
//	    Seats:       []game.Seat{{Strategy: strategy.NewBigMoney()}},
//	    Kingdom:     []card.Name{card.Smithy},
//	    InitialDeck: game.DefaultInitialDeck(),
//	    Rand:        randutil.New(42),
//	})
//	for _, p := range board.Players() {
//	    p.ProcessTurn()
//	}
//
// # Deterministic Testing
//
// All shuffling goes through the *rand.Rand handed to NewBoard, so a fixed
// seed and deterministic strategies reproduce a game exactly. Setting
// ShuffleTurnZero to false draws the first hand in configured deck order.
//
// # Durational cards
//
// Durational cards schedule a Task on the owner's TaskQueue when played. The
// queue fires at the start of the owner's next turns, before the action phase.
// Whether a card stays in the play area is governed by its Durational flag,
// which each effect clears itself; the queue and the flag are independent.
package game
