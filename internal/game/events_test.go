package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/blackjack/internal/deck"
)

func TestEventString(t *testing.T) {
	t.Parallel()

	seven := deck.NewCard(deck.Seven, deck.Hearts)

	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{"player draw", Event{Type: EventCardDrawn, Hand: 0, Card: seven, Score: 17}, "Hand 1 draws 7♥ (17)"},
		{"hidden hole card", Event{Type: EventCardDrawn, Hand: DealerHand, Hidden: true, Score: 10}, "Dealer draws a face-down card"},
		{"second hand stands", Event{Type: EventStand, Hand: 1, Score: 18}, "Hand 2 stands on 18"},
		{"dealer busts", Event{Type: EventBust, Hand: DealerHand, Score: 24}, "Dealer busts with 24"},
		{"reveal", Event{Type: EventReveal, Hand: DealerHand, Card: seven, Score: 17}, "Dealer reveals 7♥ (17)"},
		{"double", Event{Type: EventDouble, Hand: 0}, "Hand 1 doubles down"},
		{"split", Event{Type: EventSplit, Hand: 0}, "Hand 1 splits"},
		{"blackjack", Event{Type: EventBlackjack, Hand: 0, Score: 21}, "Hand 1 has blackjack"},
		{"reshuffle", Event{Type: EventReshuffle, Hand: DealerHand}, "Deck exhausted, shuffling a fresh deck"},
		{"settle", Event{Type: EventSettle, Hand: 0, Score: 20, Result: Win}, "Hand 1: win (20)"},
		{"unknown", Event{Type: EventType("surrender")}, "surrender"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.event.String())
		})
	}
}

func TestEventTrailOrder(t *testing.T) {
	t.Parallel()

	// 10+6 stands against 9+7, dealer draws a 5 to 21
	r := dealStacked(t, "10h,9s,6d,7c,5h").Stand()

	var types []EventType
	for _, e := range r.Events {
		types = append(types, e.Type)
	}
	assert.Equal(t, []EventType{
		EventCardDrawn, EventCardDrawn, EventCardDrawn, EventCardDrawn,
		EventStand, EventReveal, EventCardDrawn, EventSettle,
	}, types)

	last := r.Events[len(r.Events)-1]
	assert.Equal(t, Lose, last.Result)
	assert.Equal(t, 16, last.Score)
}
