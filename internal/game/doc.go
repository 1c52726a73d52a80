// Package game implements the round state machine for single-player
// Blackjack against a dealer.
//
// The main type is Round, a snapshot of one round: the deck, the dealer's
// cards, the player's hands and the current phase. Every transition returns a
// new Round and leaves the receiver untouched, so earlier snapshots stay
// valid.
//
// # Basic Usage
//
//	r := game.Deal()
//	for r.Phase == game.Playing {
//	    if r.PlayerScore(r.Active) < 17 {
//	        r = r.Hit()
//	    } else {
//	        r = r.Stand()
//	    }
//	}
//	for _, h := range r.Hands {
//	    fmt.Println(h.Result)
//	}
//
// # Deterministic Testing
//
// The random source used for every shuffle is injectable:
//
//	r := game.Deal(game.WithRNG(randutil.New(42)))
//
// A stacked deck fixes the exact cards, first card dealt first:
//
//	r := game.Deal(game.WithDeck(deck.Stacked(deck.MustParseCards("10,6,A,9")...)))
//
// # Phases
//
// A round moves Betting → Playing → DealerTurn → Complete. Actions that do
// not apply to the current phase (hitting a finished round, splitting a hand
// that is not a pair) are no-ops that return the round unchanged; callers
// check CanPlayerSplit and CanDouble before offering those actions.
//
// When the deck runs out mid-round a fresh shuffled 52-card deck replaces it
// and an EventReshuffle is recorded.
package game
