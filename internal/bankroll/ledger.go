// Package bankroll tracks the player's money across rounds: the stake on
// each hand, payouts when a round completes, and win/loss statistics.
package bankroll

import (
	"errors"
	"fmt"
	"slices"

	"github.com/lox/blackjack/internal/game"
)

var (
	// ErrInsufficientFunds is returned when the balance cannot cover a stake
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrNoHand is returned for a hand index with no stake on it
	ErrNoHand = errors.New("no stake on hand")
	// ErrAlreadySettled is returned when a round is settled twice
	ErrAlreadySettled = errors.New("round already settled")
	// ErrUnsettledHand is returned when settling a hand without a final result
	ErrUnsettledHand = errors.New("hand has no result")
)

// Ledger holds the balance and the stakes for the current round. Stakes are
// deducted when placed and paid back, with winnings, on Settle.
type Ledger struct {
	balance int
	base    int
	bets    []int
	settled bool
	stats   Stats
}

// New creates a ledger with a starting balance and a fixed base bet
func New(balance, baseBet int) *Ledger {
	return &Ledger{balance: balance, base: baseBet, settled: true}
}

// Balance returns the money not currently staked
func (l *Ledger) Balance() int { return l.balance }

// BaseBet returns the stake placed on each new hand
func (l *Ledger) BaseBet() int { return l.base }

// Bets returns the stake on each hand of the current round
func (l *Ledger) Bets() []int { return slices.Clone(l.bets) }

// Stats returns the results recorded so far
func (l *Ledger) Stats() Stats { return l.stats }

// TotalBet returns the sum of stakes on the current round
func (l *Ledger) TotalBet() int {
	total := 0
	for _, b := range l.bets {
		total += b
	}
	return total
}

// CanBet reports whether the balance covers a new round
func (l *Ledger) CanBet() bool {
	return l.balance >= l.base
}

// PlaceBet stakes the base bet on a new round
func (l *Ledger) PlaceBet() error {
	if !l.CanBet() {
		return fmt.Errorf("bet %d with balance %d: %w", l.base, l.balance, ErrInsufficientFunds)
	}
	l.balance -= l.base
	l.bets = []int{l.base}
	l.settled = false
	return nil
}

// CanSplit reports whether the balance covers matching the stake on hand i
func (l *Ledger) CanSplit(i int) bool {
	return i >= 0 && i < len(l.bets) && l.balance >= l.bets[i]
}

// Split matches the stake on hand i for the new hand inserted after it,
// mirroring game.Round.Split.
func (l *Ledger) Split(i int) error {
	if i < 0 || i >= len(l.bets) {
		return fmt.Errorf("split hand %d: %w", i, ErrNoHand)
	}
	stake := l.bets[i]
	if l.balance < stake {
		return fmt.Errorf("split hand %d: %w", i, ErrInsufficientFunds)
	}
	l.balance -= stake
	l.bets = slices.Insert(l.bets, i+1, stake)
	return nil
}

// CanDouble reports whether the balance covers doubling hand i
func (l *Ledger) CanDouble(i int) bool {
	return l.CanSplit(i)
}

// Double doubles the stake on hand i
func (l *Ledger) Double(i int) error {
	if i < 0 || i >= len(l.bets) {
		return fmt.Errorf("double hand %d: %w", i, ErrNoHand)
	}
	stake := l.bets[i]
	if l.balance < stake {
		return fmt.Errorf("double hand %d: %w", i, ErrInsufficientFunds)
	}
	l.balance -= stake
	l.bets[i] = 2 * stake
	return nil
}

// Settlement is what a completed round paid
type Settlement struct {
	Payouts []int // returned to the balance per hand, stake included
	Staked  int
	Paid    int
}

// Net returns the round's profit or loss
func (s Settlement) Net() int {
	return s.Paid - s.Staked
}

// Settle pays out every hand of a completed round and records the results.
// results must line up with the stakes.
func (l *Ledger) Settle(results []game.Result) (Settlement, error) {
	if l.settled {
		return Settlement{}, ErrAlreadySettled
	}
	if len(results) != len(l.bets) {
		return Settlement{}, fmt.Errorf("settle %d results against %d stakes: %w", len(results), len(l.bets), ErrNoHand)
	}
	for i, r := range results {
		if !r.IsFinal() {
			return Settlement{}, fmt.Errorf("settle hand %d: %w", i, ErrUnsettledHand)
		}
	}

	s := Settlement{Payouts: make([]int, len(results))}
	for i, r := range results {
		s.Payouts[i] = Payout(r, l.bets[i])
		s.Staked += l.bets[i]
		s.Paid += s.Payouts[i]
		l.stats.Record(r)
	}
	l.balance += s.Paid
	l.settled = true
	return s, nil
}

// Payout returns what a hand with the given result and stake gets back,
// stake included: win pays 1:1, blackjack 3:2 (rounded down), push returns
// the stake and a loss returns nothing.
func Payout(r game.Result, stake int) int {
	switch r {
	case game.Win:
		return 2 * stake
	case game.Blackjack:
		return stake + stake*3/2
	case game.Push:
		return stake
	default:
		return 0
	}
}

// Stake returns the stake a hand carried given the base bet
func Stake(h game.Hand, baseBet int) int {
	if h.Doubled {
		return 2 * baseBet
	}
	return baseBet
}

// Net returns the profit or loss of a completed round played for baseBet per
// hand, without touching a ledger.
func Net(r game.Round, baseBet int) int {
	net := 0
	for _, h := range r.Hands {
		stake := Stake(h, baseBet)
		net += Payout(h.Result, stake) - stake
	}
	return net
}
