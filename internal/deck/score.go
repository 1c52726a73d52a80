package deck

// Blackjack is the best possible hand total
const Blackjack = 21

// Score returns the blackjack total of cards. Each ace counts 11 unless that
// would bust the hand, in which case it drops to 1. A busted hand reports the
// total with every ace counted as 1.
func Score(cards []Card) int {
	total, aces := 0, 0
	for _, c := range cards {
		total += c.Value()
		if c.IsAce() {
			aces++
		}
	}
	for total > Blackjack && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

// IsSoft reports whether the hand's score counts an ace as 11
func IsSoft(cards []Card) bool {
	hard := 0
	hasAce := false
	for _, c := range cards {
		if c.IsAce() {
			hard++
			hasAce = true
			continue
		}
		hard += c.Value()
	}
	return hasAce && Score(cards) != hard
}

// IsBust reports whether the hand is over 21
func IsBust(cards []Card) bool {
	return Score(cards) > Blackjack
}

// CanSplit reports whether cards is exactly two cards of the same rank.
// Ten-valued cards of different ranks (10 and K) are not a pair.
func CanSplit(cards []Card) bool {
	return len(cards) == 2 && cards[0].Rank == cards[1].Rank
}
