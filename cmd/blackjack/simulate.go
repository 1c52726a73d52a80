package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lox/blackjack/internal/fileutil"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/simulator"
)

type SimulateCmd struct {
	Rounds  int    `short:"n" help:"Number of rounds to play (overrides config)"`
	Workers int    `short:"w" help:"Parallel workers, 0 for one per CPU (overrides config)"`
	Seed    *int64 `help:"Deterministic RNG seed (overrides config)"`
	Output  string `short:"o" type:"path" help:"Write a JSON report to this file"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	if c.Rounds != 0 {
		cfg.Simulation.Rounds = c.Rounds
	}
	if c.Workers != 0 {
		cfg.Simulation.Workers = c.Workers
	}
	if c.Seed != nil {
		cfg.Simulation.Seed = c.Seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(os.Stderr, cfg, "simulate")
	seed := randutil.Resolve(cfg.Simulation.Seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting simulation: %d rounds at $%d (seed: %d)\n",
		cfg.Simulation.Rounds, cfg.Table.Bet, seed)

	start := time.Now()
	stats, err := simulator.New(simulator.Config{
		Rounds:  cfg.Simulation.Rounds,
		Workers: cfg.Simulation.Workers,
		Seed:    seed,
		Bet:     cfg.Table.Bet,
		Logger:  logger,
	}).Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	duration := time.Since(start)

	simulator.PrintSummary(os.Stdout, stats)
	fmt.Printf("Completed in %s (%.0f rounds/sec)\n",
		duration.Round(time.Millisecond), float64(stats.Rounds)/duration.Seconds())

	if c.Output != "" {
		report := simulator.NewReport(stats, seed, cfg.Table.Bet)
		if err := fileutil.WriteJSONAtomic(c.Output, report); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		logger.Info("Report written", "file", c.Output)
	}
	return nil
}
