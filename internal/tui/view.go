package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/render"
	"github.com/lox/blackjack/internal/strategy"
)

const sidebarWidth = 32

// View renders the table
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	// Don't render until we have valid dimensions
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	table := m.renderTable()
	sidebar := m.renderSidebar()
	topHeight := max(lipgloss.Height(table), lipgloss.Height(sidebar))
	tableWidth := max(m.width-sidebarWidth-4, 1)

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		paneStyle.Width(tableWidth).Height(topHeight).Render(table),
		paneStyle.Width(sidebarWidth).Height(topHeight).Render(sidebar),
	)

	helpView := m.help.View(m.keys)
	m.logView.Width = max(m.width-2, 1)
	m.logView.Height = max(m.height-lipgloss.Height(top)-lipgloss.Height(helpView)-2, 1)
	logPane := paneStyle.Width(m.logView.Width).Height(m.logView.Height).Render(m.logView.View())

	return lipgloss.JoinVertical(lipgloss.Left, top, logPane, helpView)
}

func (m *Model) renderTable() string {
	r := m.session.Round()
	playerShown, dealerShown := m.visibleCards()
	hideHole := !r.DealerRevealed || m.dealing

	var b strings.Builder

	dealer := r.Dealer[:dealerShown]
	b.WriteString(HandInfoStyle.Render("DEALER"))
	if len(dealer) > 0 {
		score := r.DealerScore(!hideHole)
		if hideHole {
			score = deck.Score(dealer[:1])
		}
		fmt.Fprintf(&b, " (%d)", score)
	}
	b.WriteString("\n")
	b.WriteString(render.Styled(dealer, render.Options{HideSecond: hideHole, SeparateFirst: true}))
	b.WriteString("\n\n")

	b.WriteString(HandInfoStyle.Render("PLAYER"))
	if len(r.Hands) == 1 {
		fmt.Fprintf(&b, " (%d)", deck.Score(r.Hands[0].Cards[:playerShown]))
	}
	b.WriteString("\n")

	blocks := make([]string, 0, len(r.Hands))
	for i, h := range r.Hands {
		cards := h.Cards
		if i == 0 {
			cards = cards[:playerShown]
		}
		label := fmt.Sprintf("Hand %d: %d", i+1, deck.Score(cards))
		style := InfoStyle
		if m.session.Playing() && !m.dealing && i == r.Active {
			label = "> " + label
			style = ActiveHandStyle
		}
		if !m.dealing {
			if result := render.ResultLabel(h); result != "" {
				label += "  " + resultStyle(h.Result.IsWin(), result).Render(result)
			}
		}
		block := lipgloss.JoinVertical(lipgloss.Left, render.Styled(cards, render.Options{}), style.Render(label))
		blocks = append(blocks, lipgloss.NewStyle().MarginRight(2).Render(block))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
	b.WriteString("\n\n")

	if !m.dealing {
		if msg := render.RoundMessage(r); msg != "" {
			b.WriteString(WarningStyle.Render(msg))
			b.WriteString("\n")
		}
	}
	if m.flash != "" {
		b.WriteString(ErrorStyle.Render(m.flash))
		b.WriteString("\n")
	}
	b.WriteString(m.renderActions())
	return b.String()
}

func resultStyle(win bool, label string) lipgloss.Style {
	switch {
	case win:
		return SuccessStyle
	case label == "PUSH":
		return WarningStyle
	default:
		return ErrorStyle
	}
}

// renderActions draws the action bar, highlighting the advisor's pick when
// the advisor is open.
func (m *Model) renderActions() string {
	recommended, hasAdvice := strategy.Action(0), false
	if m.showAdvisor && !m.dealing {
		recommended, hasAdvice = m.session.Recommended()
	}

	button := func(label string, enabled bool, action strategy.Action, advisable bool) string {
		switch {
		case !enabled:
			return DisabledStyle.Render(label)
		case advisable && hasAdvice && action == recommended:
			return RecommendedStyle.Render(label)
		default:
			return ActionsStyle.Render(label)
		}
	}

	buttons := []string{
		button("[n] Deal", m.keys.Deal.Enabled(), 0, false),
		button("[h] Hit", m.keys.Hit.Enabled(), strategy.Hit, true),
		button("[s] Stand", m.keys.Stand.Enabled(), strategy.Stand, true),
		button("[d] Double", m.keys.Double.Enabled(), strategy.Double, true),
		button("[p] Split", m.keys.Split.Enabled(), strategy.Split, true),
	}
	return strings.Join(buttons, "  ")
}

func (m *Model) renderSidebar() string {
	ledger := m.session.Ledger()
	stats := ledger.Stats()

	bet := ledger.BaseBet()
	if m.session.Playing() {
		bet = ledger.TotalBet()
	}

	var b strings.Builder
	b.WriteString(WarningStyle.Render(fmt.Sprintf("Bankroll: $%d", ledger.Balance())))
	b.WriteString(" | ")
	b.WriteString(fmt.Sprintf("Bet: $%d", bet))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%d W  %d L  %d P\n", stats.Wins, stats.Losses, stats.Pushes)
	fmt.Fprintf(&b, "Win rate: %d%%\n", stats.WinRate())
	fmt.Fprintf(&b, "Blackjacks: %d\n", stats.Blackjacks)

	if !m.showAdvisor {
		b.WriteString("\n")
		b.WriteString(InfoStyle.Render("[a] show advisor"))
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(HeaderStyle.Render("ADVISOR"))
	b.WriteString("\n")

	advice, ok := m.session.Advice()
	if !ok || m.dealing {
		b.WriteString("-\n")
		b.WriteString(InfoStyle.Render("Deal to start"))
		return b.String()
	}

	b.WriteString(RecommendedStyle.Render(advice.Action.Label()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(sidebarWidth).Render(advice.Reason))
	if up, ok := m.session.Round().UpCard(); ok {
		fmt.Fprintf(&b, "\n\nDealer %s: %d%% bust", up, strategy.DealerBustChance(up.Value()))
	}
	return b.String()
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
