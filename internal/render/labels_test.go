package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

func TestResultLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hand game.Hand
		want string
	}{
		{"open", game.Hand{Cards: deck.MustParseCards("10h,6s")}, ""},
		{"win", game.Hand{Cards: deck.MustParseCards("10h,9s"), Result: game.Win}, "WIN"},
		{"lose", game.Hand{Cards: deck.MustParseCards("10h,7s"), Result: game.Lose}, "LOSE"},
		{"bust", game.Hand{Cards: deck.MustParseCards("10h,7s,8d"), Result: game.Lose}, "BUST"},
		{"push", game.Hand{Cards: deck.MustParseCards("10h,8s"), Result: game.Push}, "PUSH"},
		{"blackjack", game.Hand{Cards: deck.MustParseCards("Ah,Ks"), Result: game.Blackjack}, "BLACKJACK!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResultLabel(tt.hand))
		})
	}
}

func TestRoundMessage(t *testing.T) {
	t.Parallel()

	round := func(phase game.Phase, results ...game.Result) game.Round {
		r := game.Round{Phase: phase}
		for _, res := range results {
			r.Hands = append(r.Hands, game.Hand{Result: res})
		}
		return r
	}

	tests := []struct {
		name  string
		round game.Round
		want  string
	}{
		{"betting", round(game.Betting, game.Undetermined), "Press deal to start"},
		{"playing", round(game.Playing, game.Undetermined), ""},
		{"all win", round(game.Complete, game.Win, game.Blackjack), "You win!"},
		{"all lose", round(game.Complete, game.Lose, game.Lose), "Dealer wins!"},
		{"mixed", round(game.Complete, game.Win, game.Lose), "Round complete"},
		{"push", round(game.Complete, game.Push), "Round complete"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundMessage(tt.round))
		})
	}
}
