package render

import "github.com/lox/blackjack/internal/game"

// ResultLabel returns the badge shown under a settled hand, or "" while the
// hand is still open.
func ResultLabel(h game.Hand) string {
	switch h.Result {
	case game.Win:
		return "WIN"
	case game.Lose:
		if h.IsBust() {
			return "BUST"
		}
		return "LOSE"
	case game.Push:
		return "PUSH"
	case game.Blackjack:
		return "BLACKJACK!"
	default:
		return ""
	}
}

// RoundMessage returns the headline for a round
func RoundMessage(r game.Round) string {
	if r.Phase == game.Betting {
		return "Press deal to start"
	}
	if r.Phase != game.Complete {
		return ""
	}

	allWin, allLose := true, true
	for _, h := range r.Hands {
		if !h.Result.IsWin() {
			allWin = false
		}
		if h.Result != game.Lose {
			allLose = false
		}
	}
	switch {
	case allWin:
		return "You win!"
	case allLose:
		return "Dealer wins!"
	default:
		return "Round complete"
	}
}
