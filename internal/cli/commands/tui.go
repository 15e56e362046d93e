package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapcalc/internal/cli/config"
	"github.com/leapstack-labs/leapcalc/internal/tui"
)

// NewTUICommand creates the tui command.
func NewTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the full-screen keypad calculator",
		Long: `Open a full-screen calculator driven by the keyboard.

Keys:
  0-9 .        enter a number
  + - * x /    choose an operator
  = enter      evaluate
  %            divide the display by 100
  n            toggle the sign
  backspace    delete the last character
  c            clear
  ?            toggle help
  q esc        quit`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := config.GetLogger(cmd.Context())
			p := tea.NewProgram(
				tui.New(logger),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("calculator UI failed: %w", err)
			}
			return nil
		},
	}
}
