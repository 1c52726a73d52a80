package simulator

import (
	"fmt"
	"io"

	"github.com/lox/blackjack/internal/statistics"
)

// Report is the machine-readable summary written by simulate --output
type Report struct {
	Rounds      int       `json:"rounds"`
	Hands       int       `json:"hands"`
	Seed        int64     `json:"seed"`
	Bet         int       `json:"bet"`
	Mean        float64   `json:"mean_units_per_round"`
	StdDev      float64   `json:"stddev_units"`
	StdError    float64   `json:"stderr_units"`
	CI95        []float64 `json:"ci95"`
	Median      float64   `json:"median"`
	WinRate     float64   `json:"win_rate_pct"`
	Wins        int       `json:"wins"`
	Losses      int       `json:"losses"`
	Pushes      int       `json:"pushes"`
	Blackjacks  int       `json:"blackjacks"`
	DealerBusts int       `json:"dealer_busts"`
	SplitRounds int       `json:"split_rounds"`
	Doubled     int       `json:"doubled_rounds"`
	BestRound   float64   `json:"best_round"`
	WorstRound  float64   `json:"worst_round"`
}

// NewReport builds a Report from aggregated statistics
func NewReport(stats *statistics.Statistics, seed int64, bet int) Report {
	low, high := stats.ConfidenceInterval95()
	return Report{
		Rounds:      stats.Rounds,
		Hands:       stats.Hands,
		Seed:        seed,
		Bet:         bet,
		Mean:        stats.Mean(),
		StdDev:      stats.StdDev(),
		StdError:    stats.StdError(),
		CI95:        []float64{low, high},
		Median:      stats.Median(),
		WinRate:     stats.WinRate(),
		Wins:        stats.Wins,
		Losses:      stats.Losses,
		Pushes:      stats.Pushes,
		Blackjacks:  stats.Blackjacks,
		DealerBusts: stats.DealerBusts,
		SplitRounds: stats.SplitRounds,
		Doubled:     stats.DoubledRounds,
		BestRound:   stats.BestRound,
		WorstRound:  stats.WorstRound,
	}
}

// PrintSummary writes a human-readable summary of simulation results
func PrintSummary(w io.Writer, stats *statistics.Statistics) {
	low, high := stats.ConfidenceInterval95()

	fmt.Fprintf(w, "\n=== FINAL RESULTS ===\n")
	fmt.Fprintf(w, "Rounds played: %d (%d hands)\n", stats.Rounds, stats.Hands)

	fmt.Fprintf(w, "\n=== STATISTICAL RESULTS ===\n")
	fmt.Fprintf(w, "Mean: %.4f units/round\n", stats.Mean())
	fmt.Fprintf(w, "Median: %.4f units/round\n", stats.Median())
	fmt.Fprintf(w, "Std Dev: %.4f units\n", stats.StdDev())
	fmt.Fprintf(w, "Std Error: %.4f units\n", stats.StdError())
	fmt.Fprintf(w, "95%% CI: [%.4f, %.4f] units/round\n", low, high)
	fmt.Fprintf(w, "Best/worst round: %+.1f / %+.1f units\n", stats.BestRound, stats.WorstRound)

	fmt.Fprintf(w, "\n=== OUTCOMES ===\n")
	fmt.Fprintf(w, "Wins: %d, Losses: %d, Pushes: %d (win rate %.1f%%)\n",
		stats.Wins, stats.Losses, stats.Pushes, stats.WinRate())
	fmt.Fprintf(w, "Blackjacks: %d, Dealer busts: %d\n", stats.Blackjacks, stats.DealerBusts)

	fmt.Fprintf(w, "\n=== PLAY ANALYSIS ===\n")
	rounds := float64(stats.Rounds)
	fmt.Fprintf(w, "Split rounds: %d (%.2f units/round avg over all rounds)\n", stats.SplitRounds, stats.SplitNet/rounds)
	fmt.Fprintf(w, "Doubled rounds: %d (%.2f units/round avg over all rounds)\n", stats.DoubledRounds, stats.DoubledNet/rounds)
	fmt.Fprintf(w, "Other rounds: %.2f units/round avg over all rounds\n", stats.PlainNet/rounds)
	fmt.Fprintf(w, "Sanity check: %.2f + %.2f + %.2f = %.2f (should equal %.2f)\n",
		stats.SplitNet/rounds, stats.DoubledNet/rounds, stats.PlainNet/rounds,
		(stats.SplitNet+stats.DoubledNet+stats.PlainNet)/rounds, stats.Mean())
}
