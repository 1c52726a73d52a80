package deck

import (
	rand "math/rand/v2"
)

// Size is the number of cards in a standard deck
const Size = 52

// Deck is an ordered stack of cards. Cards are drawn from the tail.
type Deck struct {
	cards []Card
}

// Build returns the 52 canonical cards in a fixed order: suits in
// Spades, Hearts, Diamonds, Clubs order, each running Ace through King.
func Build() Deck {
	cards := make([]Card, 0, Size)
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return Deck{cards: cards}
}

// FromCards creates a deck from the given cards. The last card is drawn
// first. The slice is copied.
func FromCards(cards ...Card) Deck {
	return Deck{cards: append([]Card(nil), cards...)}
}

// Stacked creates a deck that deals the given cards in order, first card
// first. Handy for scripting a round in tests.
func Stacked(cards ...Card) Deck {
	d := Deck{cards: make([]Card, len(cards))}
	for i, c := range cards {
		d.cards[len(cards)-1-i] = c
	}
	return d
}

// Shuffle returns a uniformly random permutation of d using Fisher-Yates.
// d itself is left untouched.
func Shuffle(d Deck, rng *rand.Rand) Deck {
	shuffled := d.Clone()
	for i := len(shuffled.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		shuffled.cards[i], shuffled.cards[j] = shuffled.cards[j], shuffled.cards[i]
	}
	return shuffled
}

// NewShuffled returns a freshly built and shuffled deck
func NewShuffled(rng *rand.Rand) Deck {
	return Shuffle(Build(), rng)
}

// Draw removes and returns the top (last) card
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, true
}

// Peek returns the next card to be drawn without removing it
func (d Deck) Peek() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	return d.cards[len(d.cards)-1], true
}

// Len returns the number of cards left in the deck
func (d Deck) Len() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the remaining cards, bottom first
func (d Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}

// Clone returns an independent copy of the deck
func (d Deck) Clone() Deck {
	return Deck{cards: append([]Card(nil), d.cards...)}
}
