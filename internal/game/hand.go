package game

import "github.com/lox/blackjack/internal/deck"

// Result is the outcome of a single player hand
type Result int

const (
	Undetermined Result = iota
	Win
	Lose
	Push
	Blackjack
)

// String returns the string representation of a result
func (r Result) String() string {
	switch r {
	case Win:
		return "win"
	case Lose:
		return "lose"
	case Push:
		return "push"
	case Blackjack:
		return "blackjack"
	default:
		return "undetermined"
	}
}

// IsFinal reports whether the result can no longer change
func (r Result) IsFinal() bool {
	return r != Undetermined
}

// IsWin reports whether the player is paid on this result
func (r Result) IsWin() bool {
	return r == Win || r == Blackjack
}

// Hand is one of the player's hands. A round starts with one; splits add more.
type Hand struct {
	Cards   []deck.Card
	Result  Result
	Stood   bool
	Doubled bool
}

// Score returns the blackjack total of the hand
func (h Hand) Score() int {
	return deck.Score(h.Cards)
}

// IsBust reports whether the hand went over 21
func (h Hand) IsBust() bool {
	return deck.IsBust(h.Cards)
}

// CanSplit reports whether the hand is a splittable pair
func (h Hand) CanSplit() bool {
	return deck.CanSplit(h.Cards)
}

// IsDone reports whether the player can no longer act on the hand
func (h Hand) IsDone() bool {
	return h.Stood || h.Result.IsFinal()
}

func (h Hand) clone() Hand {
	h.Cards = append([]deck.Card(nil), h.Cards...)
	return h
}
