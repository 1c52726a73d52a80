// Package render draws cards as ASCII art glyphs.
package render

import (
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

const (
	// Height is the number of lines in a card glyph
	Height = 7
	// Width is the number of columns in a card glyph
	Width = 9

	cardGap      = " "
	separatedGap = "      "
)

// Options controls how a row of cards is drawn
type Options struct {
	// HideSecond draws the second card face down (the dealer's hole card)
	HideSecond bool
	// SeparateFirst leaves a wider gap after the first card
	SeparateFirst bool
}

// Card returns the glyph for c, one string per line
func Card(c deck.Card) []string {
	rank := c.Rank.String()
	suit := c.Suit.String()

	return []string{
		"┌───────┐",
		"│" + padRight(rank, 2) + "     │",
		"│       │",
		"│   " + suit + "   │",
		"│       │",
		"│     " + padLeft(rank, 2) + "│",
		"└───────┘",
	}
}

// Back returns the glyph for a face-down card
func Back() []string {
	return []string{
		"┌───────┐",
		"│▒▒▒▒▒▒▒│",
		"│▒▒▒▒▒▒▒│",
		"│▒▒▒▒▒▒▒│",
		"│▒▒▒▒▒▒▒│",
		"│▒▒▒▒▒▒▒│",
		"└───────┘",
	}
}

// IsHidden reports whether the i-th card is drawn face down under opts
func (o Options) IsHidden(i int) bool {
	return o.HideSecond && i == 1
}

// Glyphs returns one multi-line glyph per card, in order. The browser UI
// places each in its own <pre>.
func Glyphs(cards []deck.Card, opts Options) []string {
	glyphs := make([]string, len(cards))
	for i, c := range cards {
		if opts.IsHidden(i) {
			glyphs[i] = strings.Join(Back(), "\n")
			continue
		}
		glyphs[i] = strings.Join(Card(c), "\n")
	}
	return glyphs
}

// Cards draws the cards side by side
func Cards(cards []deck.Card, opts Options) string {
	if len(cards) == 0 {
		return ""
	}

	rendered := make([][]string, len(cards))
	for i, c := range cards {
		if opts.IsHidden(i) {
			rendered[i] = Back()
		} else {
			rendered[i] = Card(c)
		}
	}
	return join(rendered, opts.SeparateFirst)
}

// join lays out glyphs horizontally, row by row
func join(rendered [][]string, separateFirst bool) string {
	lines := make([]string, Height)
	for row := range Height {
		parts := make([]string, len(rendered))
		for i, glyph := range rendered {
			parts[i] = glyph[row]
		}
		if separateFirst && len(parts) > 1 {
			lines[row] = parts[0] + separatedGap + strings.Join(parts[1:], cardGap)
			continue
		}
		lines[row] = strings.Join(parts, cardGap)
	}
	return strings.Join(lines, "\n")
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}

func padLeft(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return strings.Repeat(" ", n-len(s)) + s
}
