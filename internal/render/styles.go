package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/blackjack/internal/deck"
)

// Card colours
var (
	RedCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	BlackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	BackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4"))
)

// Styled draws the cards side by side with red suits in red and the hole
// card in the back colour.
func Styled(cards []deck.Card, opts Options) string {
	if len(cards) == 0 {
		return ""
	}

	rendered := make([][]string, len(cards))
	for i, c := range cards {
		glyph, style := Card(c), BlackCardStyle
		if opts.IsHidden(i) {
			glyph, style = Back(), BackStyle
		} else if c.IsRed() {
			style = RedCardStyle
		}

		lines := make([]string, len(glyph))
		for row, line := range glyph {
			lines[row] = style.Render(line)
		}
		rendered[i] = lines
	}
	return join(rendered, opts.SeparateFirst)
}

// Inline formats cards compactly, e.g. [A♠ 10♥], coloured by suit
func Inline(cards []deck.Card) string {
	out := "["
	for i, c := range cards {
		if i > 0 {
			out += " "
		}
		if c.IsRed() {
			out += RedCardStyle.Render(c.String())
		} else {
			out += BlackCardStyle.Render(c.String())
		}
	}
	return out + "]"
}
