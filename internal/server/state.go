package server

import (
	"time"

	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/render"
	"github.com/lox/blackjack/internal/session"
	"github.com/lox/blackjack/internal/strategy"
)

// NewState projects a session onto the wire format
func NewState(s *session.Session, advisor bool, dealDelay time.Duration) StateData {
	r := s.Round()
	ledger := s.Ledger()
	bets := ledger.Bets()
	playing := s.Playing()

	state := StateData{
		Session: s.ID(),
		Phase:   r.Phase.String(),
		Round:   s.Rounds(),
		Dealer: DealerState{
			Cards:    render.Glyphs(r.Dealer, render.Options{HideSecond: !r.DealerRevealed}),
			Score:    r.DealerScore(false),
			Revealed: r.DealerRevealed,
		},
		Hands:    make([]HandState, len(r.Hands)),
		Bankroll: ledger.Balance(),
		TotalBet: ledger.TotalBet(),
		Actions: ActionsState{
			Deal:   s.CanDeal(),
			Hit:    playing,
			Stand:  playing,
			Double: s.CanDouble(),
			Split:  s.CanSplit(),
		},
		Advisor:     advisor,
		Message:     render.RoundMessage(r),
		Log:         make([]string, len(r.Events)),
		DealDelayMS: int(dealDelay / time.Millisecond),
	}
	if r.Phase == game.Betting {
		state.TotalBet = 0
	}

	for i, h := range r.Hands {
		hs := HandState{
			Cards:   render.Glyphs(h.Cards, render.Options{}),
			Score:   h.Score(),
			Result:  render.ResultLabel(h),
			Active:  playing && i == r.Active,
			Doubled: h.Doubled,
		}
		if i < len(bets) {
			hs.Bet = bets[i]
		}
		state.Hands[i] = hs
	}

	for i, e := range r.Events {
		state.Log[i] = e.String()
	}

	stats := ledger.Stats()
	state.Stats = StatsState{
		Wins:       stats.Wins,
		Losses:     stats.Losses,
		Pushes:     stats.Pushes,
		Blackjacks: stats.Blackjacks,
		WinRate:    stats.WinRate(),
	}

	if advice, ok := s.Advice(); ok {
		recommended, _ := s.Recommended()
		up, _ := r.UpCard()
		state.Advice = &AdviceState{
			Action:      advice.Action.String(),
			Label:       advice.Action.Label(),
			Reason:      advice.Reason,
			Recommended: recommended.String(),
			BustChance:  strategy.DealerBustChance(up.Value()),
		}
	}
	return state
}
