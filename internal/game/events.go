package game

import (
	"fmt"

	"github.com/lox/blackjack/internal/deck"
)

// EventType identifies what happened during a round
type EventType string

const (
	EventCardDrawn EventType = "card_drawn"
	EventBlackjack EventType = "blackjack"
	EventSplit     EventType = "split"
	EventDouble    EventType = "double"
	EventStand     EventType = "stand"
	EventBust      EventType = "bust"
	EventReveal    EventType = "reveal"
	EventReshuffle EventType = "reshuffle"
	EventSettle    EventType = "settle"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// DealerHand is the Hand index recorded on events that concern the dealer
const DealerHand = -1

// Event is one step of a round, in the order it happened. Hand is the index
// of the player hand at the time of the event, or DealerHand. The dealer's
// hole card is recorded Hidden with no Card until EventReveal.
type Event struct {
	Type   EventType
	Hand   int
	Card   deck.Card
	Hidden bool
	Score  int
	Result Result
}

// String formats the event for a game log
func (e Event) String() string {
	who := "Dealer"
	if e.Hand != DealerHand {
		who = fmt.Sprintf("Hand %d", e.Hand+1)
	}

	switch e.Type {
	case EventCardDrawn:
		if e.Hidden {
			return fmt.Sprintf("%s draws a face-down card", who)
		}
		return fmt.Sprintf("%s draws %s (%d)", who, e.Card, e.Score)
	case EventBlackjack:
		return fmt.Sprintf("%s has blackjack", who)
	case EventSplit:
		return fmt.Sprintf("%s splits", who)
	case EventDouble:
		return fmt.Sprintf("%s doubles down", who)
	case EventStand:
		return fmt.Sprintf("%s stands on %d", who, e.Score)
	case EventBust:
		return fmt.Sprintf("%s busts with %d", who, e.Score)
	case EventReveal:
		return fmt.Sprintf("Dealer reveals %s (%d)", e.Card, e.Score)
	case EventReshuffle:
		return "Deck exhausted, shuffling a fresh deck"
	case EventSettle:
		return fmt.Sprintf("%s: %s (%d)", who, e.Result, e.Score)
	default:
		return string(e.Type)
	}
}
