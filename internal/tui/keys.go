package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the calculator key bindings.
type keyMap struct {
	Digit     key.Binding
	Decimal   key.Binding
	Operator  key.Binding
	Equals    key.Binding
	Percent   key.Binding
	Sign      key.Binding
	Backspace key.Binding
	Clear     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Digit: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "digit"),
		),
		Decimal: key.NewBinding(
			key.WithKeys(".", ","),
			key.WithHelp(".", "decimal"),
		),
		Operator: key.NewBinding(
			key.WithKeys("+", "-", "*", "x", "/"),
			key.WithHelp("+-*/", "operator"),
		),
		Equals: key.NewBinding(
			key.WithKeys("=", "enter"),
			key.WithHelp("=", "equals"),
		),
		Percent: key.NewBinding(
			key.WithKeys("%"),
			key.WithHelp("%", "percent"),
		),
		Sign: key.NewBinding(
			key.WithKeys("n", "~"),
			key.WithHelp("n", "±"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c", "delete"),
			key.WithHelp("c", "clear"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Equals, k.Clear, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digit, k.Decimal, k.Operator, k.Equals},
		{k.Percent, k.Sign, k.Backspace, k.Clear},
		{k.Help, k.Quit},
	}
}
