// Package tui provides the full-screen keypad calculator.
package tui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leapstack-labs/leapcalc/internal/keypad"
)

const minWidth = 24

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
	expressionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	displayStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	noticeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// Model is the bubbletea model of the calculator.
type Model struct {
	state  *keypad.State
	keys   keyMap
	help   help.Model
	logger *slog.Logger
	notice string
	width  int
}

// New returns a cleared calculator model. A nil logger discards output.
func New(logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return Model{
		state:  keypad.New(),
		keys:   defaultKeyMap(),
		help:   help.New(),
		logger: logger,
		width:  minWidth,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Display returns the current calculator display.
func (m Model) Display() string {
	return m.state.Display()
}

// Notice returns the notice shown under the display.
func (m Model) Notice() string {
	return m.notice
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = max(msg.Width-4, minWidth)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Digit):
		m.state.Digit(msg.Runes[0])

	case key.Matches(msg, m.keys.Decimal):
		m.state.Decimal()

	case key.Matches(msg, m.keys.Operator):
		if op, ok := keypad.ParseOperator(msg.String()); ok {
			m.state.Operator(op)
		}

	case key.Matches(msg, m.keys.Equals):
		m.state.Equals()

	case key.Matches(msg, m.keys.Percent):
		m.state.Percent()

	case key.Matches(msg, m.keys.Sign):
		m.state.ToggleSign()

	case key.Matches(msg, m.keys.Clear):
		m.state.Clear()

	case key.Matches(msg, m.keys.Backspace):
		if !m.state.Backspace() {
			return m, tea.Quit
		}
	}

	if n := m.state.TakeNotice(); n != "" {
		m.notice = n
		m.logger.Debug("keypad notice", "notice", n)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	right := lipgloss.NewStyle().Width(m.width).Align(lipgloss.Right)

	display := m.state.Display()
	style := displayStyle
	if display == keypad.ErrorDisplay {
		style = errorStyle
	}

	lines := []string{
		right.Render(expressionStyle.Render(m.state.Expression())),
		right.Render(style.Render(display)),
	}
	if m.notice != "" {
		lines = append(lines, right.Render(noticeStyle.Render(m.notice)))
	}

	var b strings.Builder
	b.WriteString(frameStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}
