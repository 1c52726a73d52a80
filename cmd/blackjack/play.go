package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/fileutil"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/session"
	"github.com/lox/blackjack/internal/sessionid"
	"github.com/lox/blackjack/internal/tui"
)

type PlayCmd struct {
	Bankroll *int           `help:"Starting bankroll (overrides config)"`
	Bet      *int           `help:"Base bet per hand (overrides config)"`
	Seed     *int64         `help:"Deterministic RNG seed (optional)"`
	Delay    *time.Duration `help:"Pause between cards of the opening deal (overrides config)"`
	Advisor  bool           `short:"a" help:"Show the strategy advisor from the start"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	if c.Bankroll != nil {
		cfg.Table.Bankroll = *c.Bankroll
	}
	if c.Bet != nil {
		cfg.Table.Bet = *c.Bet
	}
	if c.Delay != nil {
		cfg.UI.DealDelay = *c.Delay
	}
	if c.Advisor {
		cfg.UI.Advisor = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// The terminal belongs to the table, so logs go to a file
	logFile, err := fileutil.OpenLog(cfg.Log.File)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()
	logger := newLogger(logFile, cfg, "blackjack")

	seed := randutil.Resolve(c.Seed)
	id := sessionid.NewGenerator(nil, nil).Generate()
	logger.Info("Starting table",
		"id", id,
		"seed", seed,
		"bankroll", cfg.Table.Bankroll,
		"bet", cfg.Table.Bet,
		"deal_delay", cfg.UI.DealDelay)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = tui.Run(ctx, tui.Options{
		Session: session.New(session.Options{
			ID:       id,
			Bankroll: cfg.Table.Bankroll,
			Bet:      cfg.Table.Bet,
			Seed:     seed,
			Logger:   logger,
		}),
		DealDelay: cfg.UI.DealDelay,
		Advisor:   cfg.UI.Advisor,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("table: %w", err)
	}
	logger.Info("Table closed")
	return nil
}
