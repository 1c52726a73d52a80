package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/lox/blackjack/internal/server"
)

type ServeCmd struct {
	Address string `short:"a" help:"Address to bind to (overrides config)"`
	Port    int    `short:"p" help:"Port to listen on (overrides config)"`
	Seed    *int64 `help:"Deterministic RNG seed; each connection derives its own (optional)"`
}

func (c *ServeCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	if c.Address != "" {
		cfg.Server.Address = c.Address
	}
	if c.Port != 0 {
		cfg.Server.Port = c.Port
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(os.Stderr, cfg, "blackjack")
	if c.Seed != nil {
		logger.Info("Using deterministic seed", "seed", *c.Seed)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.NewServer(server.Options{
		Addr:      cfg.Server.Addr(),
		Bankroll:  cfg.Table.Bankroll,
		Bet:       cfg.Table.Bet,
		DealDelay: cfg.UI.DealDelay,
		Advisor:   cfg.UI.Advisor,
		Seed:      c.Seed,
	}, logger)

	logger.Info("Open the table in a browser", "url", "http://"+cfg.Server.Addr())
	return srv.Start(ctx)
}
