package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/render"
	"github.com/lox/blackjack/internal/strategy"
)

var adviceStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

type AdviseCmd struct {
	Cards   string `arg:"" help:"Player cards, comma separated (e.g. Ah,7s)"`
	Dealer  string `short:"d" required:"" help:"Dealer up-card (e.g. 6h)"`
	NoSplit bool   `help:"Treat pairs as if splitting were not allowed"`
}

func (c *AdviseCmd) Run(g *Globals) error {
	if _, err := g.load(); err != nil {
		return err
	}

	player, err := deck.ParseCards(c.Cards)
	if err != nil {
		return fmt.Errorf("player cards: %w", err)
	}
	if len(player) < 2 {
		return fmt.Errorf("player cards: need at least two, got %d", len(player))
	}
	up, err := deck.ParseCard(c.Dealer)
	if err != nil {
		return fmt.Errorf("dealer card: %w", err)
	}

	advice := strategy.Advise(player, up, !c.NoSplit)

	fmt.Println(render.Cards(player, render.Options{}))
	fmt.Printf("You have %d against a dealer %s (busts %d%% of the time)\n\n",
		deck.Score(player), up, strategy.DealerBustChance(up.Value()))
	fmt.Println(adviceStyle.Render(advice.Action.Label()))
	fmt.Println(advice.Reason)
	if fallback := advice.Action.Fallback(len(player) == 2); fallback != advice.Action {
		fmt.Printf("Doubling is only allowed on two cards, so %s instead.\n", fallback.Label())
	}
	return nil
}
