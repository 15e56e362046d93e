package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapcalc/internal/testutil"
)

func runes(s string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModel_Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		keys string
		want string
	}{
		{"addition", "12+3=", "15"},
		{"multiplication", "6*7=", "42"},
		{"x multiplies", "6x7=", "42"},
		{"division", "7/2=", "3.5"},
		{"percent", "9%", "0.09"},
		{"sign", "5n", "-5"},
		{"decimal", "1.5", "1.5"},
		{"clear", "123c", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, cmd := send(t, New(testutil.NewTestLogger(t)), runes(tt.keys)...)
			assert.Equal(t, tt.want, m.Display())
			assert.False(t, isQuit(cmd))
		})
	}
}

func TestModel_EnterEquals(t *testing.T) {
	msgs := append(runes("2+2"), tea.KeyMsg{Type: tea.KeyEnter})
	m, _ := send(t, New(nil), msgs...)
	assert.Equal(t, "4", m.Display())
}

func TestModel_DivideByZeroNotice(t *testing.T) {
	m, _ := send(t, New(testutil.NewTestLogger(t)), runes("5/0=")...)
	assert.Equal(t, "Error", m.Display())
	assert.Equal(t, "Cannot divide by zero", m.Notice())
	assert.Contains(t, m.View(), "Cannot divide by zero")

	// The notice is transient.
	m, _ = send(t, m, runes("1")...)
	assert.Empty(t, m.Notice())
	assert.Equal(t, "1", m.Display())
}

func TestModel_Backspace(t *testing.T) {
	m, cmd := send(t, New(nil), append(runes("12"), tea.KeyMsg{Type: tea.KeyBackspace})...)
	assert.Equal(t, "1", m.Display())
	assert.False(t, isQuit(cmd))
}

func TestModel_Quit(t *testing.T) {
	for _, msg := range []tea.Msg{
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}},
		tea.KeyMsg{Type: tea.KeyEsc},
		tea.KeyMsg{Type: tea.KeyCtrlC},
	} {
		_, cmd := send(t, New(nil), msg)
		assert.True(t, isQuit(cmd))
	}
}

func TestModel_View(t *testing.T) {
	m, _ := send(t, New(nil), tea.WindowSizeMsg{Width: 40, Height: 20})
	m, _ = send(t, m, runes("12+")...)

	view := m.View()
	assert.Contains(t, view, "12 +")
	assert.Contains(t, view, "quit")

	m, _ = send(t, m, runes("?")...)
	assert.Contains(t, m.View(), "percent")
}

func TestModel_ShortHelpFitsNarrowTerminal(t *testing.T) {
	m, _ := send(t, New(nil), tea.WindowSizeMsg{Width: 40, Height: 20})
	view := m.View()
	for _, want := range []string{"equals", "clear", "help", "quit"} {
		assert.Contains(t, view, want)
	}
}
