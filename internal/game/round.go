package game

import (
	rand "math/rand/v2"

	"github.com/lox/blackjack/internal/deck"
)

// DealerStandsOn is the total at which the dealer stops drawing. Soft 17
// stands too.
const DealerStandsOn = 17

// Phase is the stage a round is in
type Phase int

const (
	Betting Phase = iota
	Playing
	DealerTurn
	Complete
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case Betting:
		return "betting"
	case Playing:
		return "playing"
	case DealerTurn:
		return "dealer-turn"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// Round is a snapshot of one round of blackjack
type Round struct {
	Deck           deck.Deck
	Dealer         []deck.Card
	Hands          []Hand
	Active         int
	Phase          Phase
	DealerRevealed bool
	Reshuffles     int // fresh decks brought in after the first ran out
	Events         []Event

	rng *rand.Rand
}

// NewRound creates a round in the Betting phase with a freshly shuffled deck
// and a single empty player hand.
func NewRound(opts ...Option) Round {
	cfg := newRoundConfig(opts)

	var d deck.Deck
	if cfg.deck != nil {
		d = *cfg.deck
	} else {
		d = deck.NewShuffled(cfg.rng)
	}

	return Round{
		Deck:  d,
		Hands: []Hand{{}},
		Phase: Betting,
		rng:   cfg.rng,
	}
}

// Deal starts a new round: two cards each, dealt player, dealer, player,
// dealer. A natural 21 ends the round immediately.
func Deal(opts ...Option) Round {
	r := NewRound(opts...)
	r.drawPlayer(0)
	r.drawDealer()
	r.drawPlayer(0)
	r.drawDealer()
	r.Phase = Playing
	return r.CheckForBlackjack()
}

// CheckForBlackjack ends the round when the initial two-card hand scores 21.
// The hand pushes if the dealer also has 21 and is paid as a blackjack
// otherwise. It only applies before any split.
func (r Round) CheckForBlackjack() Round {
	if r.Phase != Playing || len(r.Hands) != 1 || len(r.Hands[0].Cards) != 2 {
		return r
	}
	if deck.Score(r.Hands[0].Cards) != deck.Blackjack {
		return r
	}

	next := r.clone()
	next.reveal()

	h := &next.Hands[0]
	if deck.Score(next.Dealer) == deck.Blackjack {
		h.Result = Push
	} else {
		h.Result = Blackjack
		next.record(Event{Type: EventBlackjack, Hand: 0, Score: deck.Blackjack})
	}
	next.record(Event{Type: EventSettle, Hand: 0, Score: deck.Blackjack, Result: h.Result})
	next.Phase = Complete
	return next
}

// Hit draws a card into the active hand. A hand that goes over 21 loses at
// once and play moves on.
func (r Round) Hit() Round {
	if r.Phase != Playing {
		return r
	}

	next := r.clone()
	next.drawPlayer(next.Active)
	if h := &next.Hands[next.Active]; h.IsBust() {
		next.bust(h)
		next.advance()
	}
	return next
}

// Stand ends play on the active hand
func (r Round) Stand() Round {
	if r.Phase != Playing {
		return r
	}

	next := r.clone()
	h := &next.Hands[next.Active]
	h.Stood = true
	next.record(Event{Type: EventStand, Hand: next.Active, Score: h.Score()})
	next.advance()
	return next
}

// Double draws exactly one more card into a two-card hand and stands on it.
// Doubling the stake is the caller's business; Doubled marks the hand.
func (r Round) Double() Round {
	if !r.CanDouble() {
		return r
	}

	next := r.clone()
	next.record(Event{Type: EventDouble, Hand: next.Active})
	next.drawPlayer(next.Active)

	h := &next.Hands[next.Active]
	h.Doubled = true
	if h.IsBust() {
		next.bust(h)
	} else {
		h.Stood = true
		next.record(Event{Type: EventStand, Hand: next.Active, Score: h.Score()})
	}
	next.advance()
	return next
}

// Split turns the active pair into two hands, each topped up with a fresh
// card. The new hands take the place of the original; Active stays on the
// first. Pairs formed after a split may be split again.
func (r Round) Split() Round {
	if !r.CanPlayerSplit() {
		return r
	}

	next := r.clone()
	i := next.Active
	pair := next.Hands[i].Cards

	hands := make([]Hand, 0, len(next.Hands)+1)
	hands = append(hands, next.Hands[:i]...)
	hands = append(hands,
		Hand{Cards: []deck.Card{pair[0]}},
		Hand{Cards: []deck.Card{pair[1]}},
	)
	hands = append(hands, next.Hands[i+1:]...)
	next.Hands = hands

	next.record(Event{Type: EventSplit, Hand: i})
	next.drawPlayer(i)
	next.drawPlayer(i + 1)
	return next
}

// CanPlayerSplit reports whether Split would do anything
func (r Round) CanPlayerSplit() bool {
	if r.Phase != Playing {
		return false
	}
	return r.Hands[r.Active].CanSplit()
}

// CanDouble reports whether Double would do anything
func (r Round) CanDouble() bool {
	return r.Phase == Playing && len(r.Hands[r.Active].Cards) == 2
}

// ActiveHand returns the hand being played, if any
func (r Round) ActiveHand() (Hand, bool) {
	if r.Phase != Playing {
		return Hand{}, false
	}
	return r.Hands[r.Active], true
}

// UpCard returns the dealer's face-up card
func (r Round) UpCard() (deck.Card, bool) {
	if len(r.Dealer) == 0 {
		return deck.Card{}, false
	}
	return r.Dealer[0], true
}

// PlayerScore returns the score of hand i, or 0 when there is no such hand
func (r Round) PlayerScore(i int) int {
	if i < 0 || i >= len(r.Hands) {
		return 0
	}
	return r.Hands[i].Score()
}

// DealerScore returns the dealer's total. Until the hole card is revealed
// only the up-card counts, unless revealed asks for the full total.
func (r Round) DealerScore(revealed bool) int {
	if !revealed && !r.DealerRevealed {
		if len(r.Dealer) == 0 {
			return 0
		}
		return deck.Score(r.Dealer[:1])
	}
	return deck.Score(r.Dealer)
}

// IsComplete reports whether every hand has a final result
func (r Round) IsComplete() bool {
	return r.Phase == Complete
}

// Results returns each hand's result in order
func (r Round) Results() []Result {
	results := make([]Result, len(r.Hands))
	for i, h := range r.Hands {
		results[i] = h.Result
	}
	return results
}

// CardsDealt returns how many cards are on the table
func (r Round) CardsDealt() int {
	n := len(r.Dealer)
	for _, h := range r.Hands {
		n += len(h.Cards)
	}
	return n
}

// advance moves to the next unplayed hand, or to the dealer once every hand
// has acted.
func (r *Round) advance() {
	if r.Active+1 < len(r.Hands) {
		r.Active++
		return
	}
	r.playDealer()
}

// playDealer reveals the hole card, draws to 17 and settles every open hand.
// If every hand already busted the dealer does not draw.
func (r *Round) playDealer() {
	r.Phase = DealerTurn
	r.reveal()

	if r.allBusted() {
		r.Phase = Complete
		return
	}

	for deck.Score(r.Dealer) < DealerStandsOn {
		r.drawDealer()
	}

	dealerScore := deck.Score(r.Dealer)
	dealerBust := dealerScore > deck.Blackjack
	if dealerBust {
		r.record(Event{Type: EventBust, Hand: DealerHand, Score: dealerScore})
	}

	for i := range r.Hands {
		h := &r.Hands[i]
		if h.Result.IsFinal() {
			continue
		}

		score := h.Score()
		switch {
		case dealerBust, score > dealerScore:
			h.Result = Win
		case score < dealerScore:
			h.Result = Lose
		default:
			h.Result = Push
		}
		r.record(Event{Type: EventSettle, Hand: i, Score: score, Result: h.Result})
	}

	r.Phase = Complete
}

func (r *Round) allBusted() bool {
	for _, h := range r.Hands {
		if h.Result != Lose {
			return false
		}
	}
	return true
}

func (r *Round) bust(h *Hand) {
	h.Result = Lose
	h.Stood = true
	r.record(Event{Type: EventBust, Hand: r.Active, Score: h.Score(), Result: Lose})
}

func (r *Round) reveal() {
	if r.DealerRevealed {
		return
	}
	r.DealerRevealed = true
	if len(r.Dealer) > 1 {
		r.record(Event{Type: EventReveal, Hand: DealerHand, Card: r.Dealer[1], Score: deck.Score(r.Dealer)})
	}
}

// draw takes the next card, bringing in a fresh shuffled deck when the
// current one is empty.
func (r *Round) draw() deck.Card {
	if r.Deck.IsEmpty() {
		r.Deck = deck.NewShuffled(r.rng)
		r.Reshuffles++
		r.record(Event{Type: EventReshuffle, Hand: DealerHand})
	}
	card, _ := r.Deck.Draw()
	return card
}

func (r *Round) drawPlayer(i int) {
	card := r.draw()
	h := &r.Hands[i]
	h.Cards = append(h.Cards, card)
	r.record(Event{Type: EventCardDrawn, Hand: i, Card: card, Score: h.Score()})
}

func (r *Round) drawDealer() {
	card := r.draw()
	r.Dealer = append(r.Dealer, card)
	if len(r.Dealer) == 2 && !r.DealerRevealed {
		r.record(Event{Type: EventCardDrawn, Hand: DealerHand, Hidden: true, Score: deck.Score(r.Dealer[:1])})
		return
	}
	r.record(Event{Type: EventCardDrawn, Hand: DealerHand, Card: card, Score: deck.Score(r.Dealer)})
}

func (r *Round) record(e Event) {
	r.Events = append(r.Events, e)
}

// clone copies every slice so the receiver is never touched by a transition
func (r Round) clone() Round {
	next := r
	next.Deck = r.Deck.Clone()
	next.Dealer = append([]deck.Card(nil), r.Dealer...)
	next.Hands = make([]Hand, len(r.Hands))
	for i, h := range r.Hands {
		next.Hands[i] = h.clone()
	}
	next.Events = append([]Event(nil), r.Events...)
	return next
}
