// Package tui is the terminal blackjack table, built on Bubble Tea.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/session"
)

// initialCards is the number of cards in the staggered opening deal
const initialCards = 4

// Options configures the table
type Options struct {
	Session   *session.Session
	Clock     quartz.Clock  // defaults to the real clock
	DealDelay time.Duration // pause before each opening card; 0 deals at once
	Advisor   bool          // show the advisor pane from the start
	Logger    *log.Logger
}

// Model is the Bubble Tea model for the blackjack table
type Model struct {
	session *session.Session
	clock   quartz.Clock
	delay   time.Duration
	logger  *log.Logger

	keys    keyMap
	help    help.Model
	logView viewport.Model

	// Game log built from round events
	logLines []string
	logged   int // events of the current round already in logLines
	netShown bool

	// Staggered opening deal
	dealing  bool
	dealID   int
	revealed int

	showAdvisor bool
	flash       string

	width    int
	height   int
	quitting bool
}

// revealMsg shows the next card of the opening deal
type revealMsg struct {
	deal int
}

// New creates the table model
func New(opts Options) *Model {
	clock := opts.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	vp := viewport.New(10, 5)
	vp.KeyMap = viewport.KeyMap{
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		Up:       key.NewBinding(key.WithKeys("up")),
		Down:     key.NewBinding(key.WithKeys("down")),
	}

	m := &Model{
		session:     opts.Session,
		clock:       clock,
		delay:       opts.DealDelay,
		logger:      logger.WithPrefix("tui"),
		keys:        newKeyMap(),
		help:        help.New(),
		logView:     vp,
		showAdvisor: opts.Advisor,
	}
	m.updateKeys()
	return m
}

// Run starts the table in the alternate screen and blocks until the player
// quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.logger.Debug("Resized", "width", m.width, "height", m.height)
		return m, nil

	case revealMsg:
		return m, m.reveal(msg)

	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			m.updateKeys()
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.logView, cmd = m.logView.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit, true
	case key.Matches(msg, m.keys.Advisor):
		m.showAdvisor = !m.showAdvisor
		return nil, true
	}

	// Everything else waits for the opening deal to finish
	if m.dealing {
		return nil, false
	}

	switch {
	case key.Matches(msg, m.keys.Deal):
		return m.deal(), true
	case key.Matches(msg, m.keys.Hit):
		m.act(session.ActionHit, m.session.Hit)
	case key.Matches(msg, m.keys.Stand):
		m.act(session.ActionStand, m.session.Stand)
	case key.Matches(msg, m.keys.Double):
		m.act(session.ActionDouble, m.session.Double)
	case key.Matches(msg, m.keys.Split):
		m.act(session.ActionSplit, m.session.Split)
	default:
		return nil, false
	}
	return nil, true
}

func (m *Model) act(name string, action func() error) {
	if !m.session.Playing() {
		return
	}
	m.flash = ""
	if err := action(); err != nil {
		m.logger.Warn("Action refused", "action", name, "error", err)
		m.flash = err.Error()
	}
	m.syncLog()
}

func (m *Model) deal() tea.Cmd {
	if err := m.session.Deal(); err != nil {
		m.logger.Warn("Deal refused", "error", err)
		m.flash = err.Error()
		return nil
	}

	m.flash = ""
	m.logged = 0
	m.netShown = false
	m.addLog(HeaderStyle.Render(fmt.Sprintf("Round %d", m.session.Rounds())))

	if m.delay <= 0 {
		m.syncLog()
		return nil
	}
	m.dealing = true
	m.dealID++
	m.revealed = 0
	return m.scheduleReveal()
}

// scheduleReveal arms the timer now, so the clock sees it before the
// returned command runs.
func (m *Model) scheduleReveal() tea.Cmd {
	fired := make(chan revealMsg, 1)
	id := m.dealID
	m.clock.AfterFunc(m.delay, func() {
		fired <- revealMsg{deal: id}
	})
	return func() tea.Msg {
		return <-fired
	}
}

func (m *Model) reveal(msg revealMsg) tea.Cmd {
	if !m.dealing || msg.deal != m.dealID {
		return nil
	}

	m.revealed++
	if m.revealed >= initialCards {
		m.dealing = false
		m.syncLog()
		m.updateKeys()
		return nil
	}
	m.syncLog()
	return m.scheduleReveal()
}

// visibleCards returns how many player and dealer cards are on show
func (m *Model) visibleCards() (player, dealer int) {
	r := m.session.Round()
	if !m.dealing {
		return len(r.Hands[0].Cards), len(r.Dealer)
	}
	return (m.revealed + 1) / 2, m.revealed / 2
}

// syncLog appends round events not yet in the log. During the opening deal
// only the revealed draws are added.
func (m *Model) syncLog() {
	events := m.session.Round().Events
	limit := len(events)
	if m.dealing {
		limit = min(m.revealed, limit)
	}
	for ; m.logged < limit; m.logged++ {
		m.addLog(events[m.logged].String())
	}
	if !m.dealing && !m.netShown && m.session.Round().Phase == game.Complete {
		s := m.session.LastSettlement()
		m.addLog(fmt.Sprintf("Net %+d, balance $%d", s.Net(), m.session.Ledger().Balance()))
		m.netShown = true
	}
}

func (m *Model) addLog(line string) {
	m.logLines = append(m.logLines, line)
	m.logView.SetContent(joinLines(m.logLines))
	if m.logView.Height > 0 && m.logView.Width > 0 {
		m.logView.GotoBottom()
	}
}

// updateKeys enables the bindings that would do something right now, so the
// help bar only offers real moves.
func (m *Model) updateKeys() {
	playing := m.session.Playing() && !m.dealing
	m.keys.Deal.SetEnabled(!m.dealing && m.session.CanDeal())
	m.keys.Hit.SetEnabled(playing)
	m.keys.Stand.SetEnabled(playing)
	m.keys.Double.SetEnabled(playing && m.session.CanDouble())
	m.keys.Split.SetEnabled(playing && m.session.CanSplit())
}

// LogLines returns the game log
func (m *Model) LogLines() []string {
	return append([]string(nil), m.logLines...)
}

// Dealing reports whether the opening deal is still being revealed
func (m *Model) Dealing() bool {
	return m.dealing
}
