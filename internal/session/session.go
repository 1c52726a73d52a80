// Package session plays consecutive rounds against one bankroll. It is the
// table both user interfaces drive: it deals, forwards player actions to the
// round, keeps the stakes in step with splits and doubles and settles each
// round exactly once.
package session

import (
	"errors"
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/bankroll"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/strategy"
)

var (
	// ErrRoundInProgress is returned when dealing before the round is over
	ErrRoundInProgress = errors.New("round in progress")
	// ErrUnknownAction is returned by Apply for an unrecognised action name
	ErrUnknownAction = errors.New("unknown action")
)

// Action names accepted by Apply
const (
	ActionDeal   = "deal"
	ActionHit    = "hit"
	ActionStand  = "stand"
	ActionSplit  = "split"
	ActionDouble = "double"
)

// Options configures a session
type Options struct {
	ID       string // tags logs and the browser state
	Bankroll int
	Bet      int
	Seed     int64
	Logger   *log.Logger

	// Decks are dealt in order, one per round, before shuffled decks
	Decks []deck.Deck
}

// Session is a single player's seat at the table. It is not safe for
// concurrent use.
type Session struct {
	id     string
	rng    *rand.Rand
	ledger *bankroll.Ledger
	round  game.Round
	rounds int
	decks  []deck.Deck
	last   bankroll.Settlement
	logger *log.Logger
}

// New creates a session in the Betting phase. Every round shuffles from a
// source seeded with opts.Seed, so a seed replays the whole session.
func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.WithPrefix("session")
	if opts.ID != "" {
		logger = logger.With("id", opts.ID)
	}

	rng := randutil.New(opts.Seed)
	return &Session{
		id:     opts.ID,
		rng:    rng,
		ledger: bankroll.New(opts.Bankroll, opts.Bet),
		round:  game.NewRound(game.WithRNG(rng)),
		decks:  opts.Decks,
		logger: logger,
	}
}

// ID returns the session's identifier, if it was given one
func (s *Session) ID() string { return s.id }

// Round returns the current round snapshot
func (s *Session) Round() game.Round { return s.round }

// Ledger returns the session's bankroll
func (s *Session) Ledger() *bankroll.Ledger { return s.ledger }

// Rounds returns how many rounds have been dealt
func (s *Session) Rounds() int { return s.rounds }

// LastSettlement returns what the most recently completed round paid
func (s *Session) LastSettlement() bankroll.Settlement { return s.last }

// Playing reports whether the player has decisions to make
func (s *Session) Playing() bool {
	return s.round.Phase == game.Playing
}

// CanDeal reports whether a new round can start
func (s *Session) CanDeal() bool {
	return !s.Playing() && s.ledger.CanBet()
}

// CanDouble reports whether the active hand can double, bankroll included
func (s *Session) CanDouble() bool {
	return s.round.CanDouble() && s.ledger.CanDouble(s.round.Active)
}

// CanSplit reports whether the active hand can split, bankroll included
func (s *Session) CanSplit() bool {
	return s.round.CanPlayerSplit() && s.ledger.CanSplit(s.round.Active)
}

// Deal stakes the base bet and deals a new round
func (s *Session) Deal() error {
	if s.Playing() {
		return ErrRoundInProgress
	}
	if err := s.ledger.PlaceBet(); err != nil {
		return fmt.Errorf("deal: %w", err)
	}

	s.rounds++
	opts := []game.Option{game.WithRNG(s.rng)}
	if len(s.decks) > 0 {
		opts = append(opts, game.WithDeck(s.decks[0]))
		s.decks = s.decks[1:]
	}
	s.round = game.Deal(opts...)
	s.logger.Debug("Dealt round", "round", s.rounds, "bet", s.ledger.BaseBet(), "balance", s.ledger.Balance())
	return s.settle()
}

// Hit draws a card into the active hand
func (s *Session) Hit() error {
	s.round = s.round.Hit()
	return s.settle()
}

// Stand ends play on the active hand
func (s *Session) Stand() error {
	s.round = s.round.Stand()
	return s.settle()
}

// Double doubles the active hand's stake and draws its last card. It does
// nothing when the round does not allow a double.
func (s *Session) Double() error {
	if !s.round.CanDouble() {
		return nil
	}
	if err := s.ledger.Double(s.round.Active); err != nil {
		return fmt.Errorf("double: %w", err)
	}
	s.round = s.round.Double()
	return s.settle()
}

// Split stakes another bet and splits the active pair. It does nothing when
// the hand is not a pair.
func (s *Session) Split() error {
	if !s.round.CanPlayerSplit() {
		return nil
	}
	if err := s.ledger.Split(s.round.Active); err != nil {
		return fmt.Errorf("split: %w", err)
	}
	s.round = s.round.Split()
	return s.settle()
}

// Apply runs the named action
func (s *Session) Apply(action string) error {
	switch action {
	case ActionDeal:
		return s.Deal()
	case ActionHit:
		return s.Hit()
	case ActionStand:
		return s.Stand()
	case ActionSplit:
		return s.Split()
	case ActionDouble:
		return s.Double()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
}

// Advice returns the advisor's recommendation for the active hand
func (s *Session) Advice() (strategy.Advice, bool) {
	hand, ok := s.round.ActiveHand()
	if !ok {
		return strategy.Advice{}, false
	}
	up, ok := s.round.UpCard()
	if !ok {
		return strategy.Advice{}, false
	}
	return strategy.Advise(hand.Cards, up, s.round.CanPlayerSplit()), true
}

// Recommended returns the action to highlight: the advice, with a double the
// player cannot make shown as a hit.
func (s *Session) Recommended() (strategy.Action, bool) {
	advice, ok := s.Advice()
	if !ok {
		return 0, false
	}
	return advice.Action.Fallback(s.CanDouble()), true
}

// settle pays out the round the first time it is seen complete
func (s *Session) settle() error {
	if s.round.Phase != game.Complete || len(s.ledger.Bets()) == 0 {
		return nil
	}

	settlement, err := s.ledger.Settle(s.round.Results())
	if errors.Is(err, bankroll.ErrAlreadySettled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("settle round %d: %w", s.rounds, err)
	}

	s.last = settlement
	s.logger.Info("Round settled",
		"round", s.rounds,
		"results", s.round.Results(),
		"net", settlement.Net(),
		"balance", s.ledger.Balance())
	return nil
}
