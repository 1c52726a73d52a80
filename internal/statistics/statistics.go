package statistics

import (
	"fmt"
	"math"
	"sort"
)

// RoundResult represents the outcome of a single simulated round
type RoundResult struct {
	Net        float64 // Net base bets won/lost across every hand of the round
	Seed       int64   // RNG seed for this round (for replay)
	Hands      int     // Player hands at settlement (more than one after a split)
	Wins       int     // Hands paid, blackjacks included
	Losses     int
	Pushes     int
	Blackjack  bool // Natural on the initial deal
	Doubled    bool // At least one hand doubled
	DealerBust bool
}

// Split reports whether the round was split at least once
func (r RoundResult) Split() bool {
	return r.Hands > 1
}

// Statistics aggregates simulated rounds
type Statistics struct {
	Rounds  int
	SumNet  float64
	SumNet2 float64   // Sum of squares for variance calculation
	Values  []float64 // Store all values for median/percentile calculation

	// Outcome counts per hand
	Hands  int
	Wins   int
	Losses int
	Pushes int

	Blackjacks  int
	DealerBusts int

	// Net split by how the round was played; every round lands in exactly
	// one bucket.
	SplitRounds   int
	SplitNet      float64
	DoubledRounds int
	DoubledNet    float64
	PlainNet      float64
	AllNet        float64 // Total for sanity check

	BestRound  float64
	WorstRound float64
}

// Mean returns the arithmetic mean of all results in base bets per round
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.SumNet / float64(s.Rounds)
}

// Variance returns the sample variance of all results
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumNet2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation of all results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Add incorporates a new round result into the statistics
func (s *Statistics) Add(result RoundResult) {
	net := result.Net
	if s.Rounds == 0 || net > s.BestRound {
		s.BestRound = net
	}
	if s.Rounds == 0 || net < s.WorstRound {
		s.WorstRound = net
	}

	s.Rounds++
	s.SumNet += net
	s.SumNet2 += net * net
	s.Values = append(s.Values, net)

	s.Hands += result.Hands
	s.Wins += result.Wins
	s.Losses += result.Losses
	s.Pushes += result.Pushes
	if result.Blackjack {
		s.Blackjacks++
	}
	if result.DealerBust {
		s.DealerBusts++
	}

	// Split takes precedence: a split round can also hold a doubled hand
	switch {
	case result.Split():
		s.SplitRounds++
		s.SplitNet += net
	case result.Doubled:
		s.DoubledRounds++
		s.DoubledNet += net
	default:
		s.PlainNet += net
	}
	s.AllNet += net
}

// Merge folds another set of results into s. Values keep their relative order.
func (s *Statistics) Merge(other *Statistics) {
	switch {
	case other.Rounds == 0:
	case s.Rounds == 0:
		s.BestRound, s.WorstRound = other.BestRound, other.WorstRound
	default:
		s.BestRound = math.Max(s.BestRound, other.BestRound)
		s.WorstRound = math.Min(s.WorstRound, other.WorstRound)
	}

	s.Rounds += other.Rounds
	s.SumNet += other.SumNet
	s.SumNet2 += other.SumNet2
	s.Values = append(s.Values, other.Values...)
	s.Hands += other.Hands
	s.Wins += other.Wins
	s.Losses += other.Losses
	s.Pushes += other.Pushes
	s.Blackjacks += other.Blackjacks
	s.DealerBusts += other.DealerBusts
	s.SplitRounds += other.SplitRounds
	s.SplitNet += other.SplitNet
	s.DoubledRounds += other.DoubledRounds
	s.DoubledNet += other.DoubledNet
	s.PlainNet += other.PlainNet
	s.AllNet += other.AllNet
}

// WinRate returns the share of settled hands that were paid, in percent
func (s *Statistics) WinRate() float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Hands) * 100
}

// Median returns the median value of all results
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// IsLedgerBalanced checks if the accounting is consistent
func (s *Statistics) IsLedgerBalanced() bool {
	return math.Abs(s.AllNet-s.SplitNet-s.DoubledNet-s.PlainNet) <= 1e-6
}

// Validate performs comprehensive validation of statistics data
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: AllNet=%.6f, SplitNet=%.6f, DoubledNet=%.6f, PlainNet=%.6f",
			s.AllNet, s.SplitNet, s.DoubledNet, s.PlainNet)
	}

	if s.Rounds <= 0 {
		return fmt.Errorf("invalid rounds count: %d", s.Rounds)
	}

	if len(s.Values) != s.Rounds {
		return fmt.Errorf("values array length (%d) does not match rounds count (%d)",
			len(s.Values), s.Rounds)
	}

	if settled := s.Wins + s.Losses + s.Pushes; settled != s.Hands {
		return fmt.Errorf("settled hands (%d) do not match hands played (%d)", settled, s.Hands)
	}

	if s.Hands < s.Rounds {
		return fmt.Errorf("hands played (%d) fewer than rounds (%d)", s.Hands, s.Rounds)
	}

	if s.Blackjacks > s.Wins {
		return fmt.Errorf("blackjacks (%d) exceed wins (%d)", s.Blackjacks, s.Wins)
	}

	return nil
}
