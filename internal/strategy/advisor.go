// Package strategy recommends a basic-strategy action for the active hand.
//
// Advise is a pure function of the player's cards, the dealer's up-card and
// whether a split is currently allowed. It never looks at or changes a round.
package strategy

import (
	"fmt"

	"github.com/lox/blackjack/internal/deck"
)

// Advice is a recommended action with a one-line rationale
type Advice struct {
	Action Action
	Reason string
}

// dealerBustChance is the approximate chance (percent) that the dealer busts,
// keyed by up-card value. It only feeds the rationale text.
var dealerBustChance = map[int]int{
	2: 35, 3: 37, 4: 40, 5: 42, 6: 42,
	7: 26, 8: 24, 9: 23, 10: 23, 11: 17,
}

const defaultBustChance = 23

// DealerBustChance returns the approximate dealer bust percentage for an
// up-card value (A=11, faces=10).
func DealerBustChance(upValue int) int {
	if chance, ok := dealerBustChance[upValue]; ok {
		return chance
	}
	return defaultBustChance
}

// IsDealerWeak reports whether the up-card is a 2 through 6
func IsDealerWeak(up deck.Card) bool {
	v := up.Value()
	return v >= 2 && v <= 6
}

// Advise returns the recommended action for the player's hand against the
// dealer's up-card. canSplit is whether the round currently allows a split.
// The first matching rule wins.
func Advise(player []deck.Card, up deck.Card, canSplit bool) Advice {
	score := deck.Score(player)
	upValue := up.Value()
	weak := IsDealerWeak(up)
	bust := DealerBustChance(upValue)

	if canSplit && deck.CanSplit(player) {
		if advice, ok := advisePair(player[0].Rank, weak, bust); ok {
			return advice
		}
	}

	switch {
	case score >= 17:
		return Advice{Stand, "17+ is strong. Risk of busting outweighs potential gain."}
	case score <= 8:
		return Advice{Hit, "Can't bust with one card. Always improve a weak hand."}
	case score == 11:
		return Advice{Double, "Best doubling spot - any 10-card gives you 21."}
	case score == 10 && weak:
		return Advice{Double, fmt.Sprintf("Strong hand + dealer %d%% bust chance = double your bet.", bust)}
	case score >= 12 && score <= 16:
		if weak {
			return Advice{Stand, fmt.Sprintf("Dealer has %d%% bust chance. Let them take the risk.", bust)}
		}
		return Advice{Hit, fmt.Sprintf("Dealer likely has %d. You need to improve to have a chance.", likelyDealerTotal(upValue))}
	case score == 9:
		return Advice{Hit, "Good starting point. One more card could make this strong."}
	case score == 10:
		return Advice{Hit, "Strong hand - a 10-card gives you 20."}
	}

	return Advice{Hit, "Improve your hand."}
}

// advisePair handles splittable pairs. Fives are never split: two fives are
// a ten and go through the totals rules instead.
func advisePair(rank deck.Rank, weak bool, bust int) (Advice, bool) {
	switch {
	case rank == deck.Ace:
		return Advice{Split, "Two chances at 21 beats one hand starting at 12."}, true
	case rank == deck.Eight:
		return Advice{Split, "16 is the worst hand. Two hands starting at 8 are much better."}, true
	case rank.IsTenValued():
		return Advice{Stand, "20 is nearly unbeatable. Never break up a winning hand."}, true
	case rank == deck.Five:
		return Advice{}, false
	case weak:
		return Advice{Split, fmt.Sprintf("Dealer has %d%% bust chance. Split to maximize winnings.", bust)}, true
	}
	return Advice{}, false
}

// likelyDealerTotal assumes a ten under the up-card
func likelyDealerTotal(upValue int) int {
	if upValue == 11 {
		return 21
	}
	return upValue + 10
}
