package bankroll

import (
	"math"

	"github.com/lox/blackjack/internal/game"
)

// Stats counts settled hands by outcome. Blackjacks also count as wins.
type Stats struct {
	Wins       int
	Losses     int
	Pushes     int
	Blackjacks int
}

// Record adds one settled hand
func (s *Stats) Record(r game.Result) {
	switch r {
	case game.Win:
		s.Wins++
	case game.Blackjack:
		s.Wins++
		s.Blackjacks++
	case game.Lose:
		s.Losses++
	case game.Push:
		s.Pushes++
	}
}

// Total returns the number of settled hands
func (s Stats) Total() int {
	return s.Wins + s.Losses + s.Pushes
}

// WinRate returns the percentage of hands won, rounded to the nearest whole
// number
func (s Stats) WinRate() int {
	total := s.Total()
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(s.Wins) / float64(total) * 100))
}
