// Package simulator plays rounds on autopilot, following the strategy
// advisor, and aggregates the results.
package simulator

import (
	"context"
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack/internal/bankroll"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
	"github.com/lox/blackjack/internal/strategy"
)

// progressEvery is how many rounds a worker plays between progress logs and
// cancellation checks.
const progressEvery = 10_000

// Config holds configuration for running simulations
type Config struct {
	Rounds  int
	Workers int   // defaults to GOMAXPROCS
	Seed    int64 // every round's seed is derived from this one
	Bet     int   // base bet per hand; results are reported in units of it
	Logger  *log.Logger
}

// Simulator runs blackjack round simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.Bet <= 0 {
		config.Bet = 10
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	return &Simulator{config: config}
}

// Run plays every round and returns the aggregated results. Rounds are split
// into contiguous blocks, one per worker, and merged back in order, so a
// seed gives the same statistics whatever the worker count.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Rounds <= 0 {
		return nil, fmt.Errorf("rounds must be positive, got %d", s.config.Rounds)
	}

	workers := min(s.config.Workers, s.config.Rounds)
	block := (s.config.Rounds + workers - 1) / workers
	parts := make([]*statistics.Statistics, workers)

	s.config.Logger.Info("Starting simulation",
		"rounds", s.config.Rounds,
		"workers", workers,
		"seed", s.config.Seed)

	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		start := w * block
		end := min(start+block, s.config.Rounds)
		parts[w] = &statistics.Statistics{}

		g.Go(func() error {
			return s.playBlock(ctx, w, start, end, parts[w])
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, part := range parts {
		stats.Merge(part)
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

func (s *Simulator) playBlock(ctx context.Context, worker, start, end int, stats *statistics.Statistics) error {
	logger := s.config.Logger.With("worker", worker)
	for n := start; n < end; n++ {
		if (n-start)%progressEvery == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("worker %d stopped after %d rounds: %w", worker, n-start, err)
			}
			if n > start {
				logger.Debug("Progress", "played", n-start, "of", end-start)
			}
		}

		seed := randutil.Derive(s.config.Seed, n)
		_, result := PlayRound(seed, s.config.Bet)
		stats.Add(result)
	}
	return nil
}

// PlayRound deals a round from seed, plays it to completion with Autoplay
// and summarises it in units of bet.
func PlayRound(seed int64, bet int) (game.Round, statistics.RoundResult) {
	r := Autoplay(game.Deal(game.WithRNG(randutil.New(seed))))
	return r, Summarize(r, seed, bet)
}

// Autoplay follows the advisor's recommendation for every hand until the
// round leaves the Playing phase. A recommended double that is not allowed
// becomes a hit.
func Autoplay(r game.Round) game.Round {
	for r.Phase == game.Playing {
		switch Decide(r) {
		case strategy.Split:
			r = r.Split()
		case strategy.Double:
			r = r.Double()
		case strategy.Stand:
			r = r.Stand()
		default:
			r = r.Hit()
		}
	}
	return r
}

// Decide returns the action Autoplay takes for the active hand
func Decide(r game.Round) strategy.Action {
	hand, ok := r.ActiveHand()
	if !ok {
		return strategy.Stand
	}
	up, _ := r.UpCard()
	advice := strategy.Advise(hand.Cards, up, r.CanPlayerSplit())
	return advice.Action.Fallback(r.CanDouble())
}

// Summarize converts a completed round into a statistics entry
func Summarize(r game.Round, seed int64, bet int) statistics.RoundResult {
	result := statistics.RoundResult{
		Net:        float64(bankroll.Net(r, bet)) / float64(bet),
		Seed:       seed,
		Hands:      len(r.Hands),
		DealerBust: r.DealerScore(true) > 21,
	}
	for _, h := range r.Hands {
		switch h.Result {
		case game.Blackjack:
			result.Blackjack = true
			result.Wins++
		case game.Win:
			result.Wins++
		case game.Lose:
			result.Losses++
		case game.Push:
			result.Pushes++
		}
		if h.Doubled {
			result.Doubled = true
		}
	}
	return result
}

// RunSimulation is a convenience function for running a simulation with basic parameters
func RunSimulation(ctx context.Context, rounds int, seed int64, logger *log.Logger) (*statistics.Statistics, error) {
	return New(Config{Rounds: rounds, Seed: seed, Logger: logger}).Run(ctx)
}
