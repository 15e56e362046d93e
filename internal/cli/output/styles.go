package output

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	colorError   = lipgloss.AdaptiveColor{Light: "#FF4672", Dark: "#ED567A"}
	colorWarning = lipgloss.AdaptiveColor{Light: "#F1A10D", Dark: "#F5B83D"}
	colorInfo    = lipgloss.AdaptiveColor{Light: "#1E88E5", Dark: "#64B5F6"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
)

// Styles holds the lipgloss styles used by commands.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Value   lipgloss.Style
}

// NewStyles builds styles bound to lr.
func NewStyles(lr *lipgloss.Renderer) *Styles {
	return &Styles{
		Header1: lr.NewStyle().Bold(true).Foreground(colorPrimary),
		Header2: lr.NewStyle().Bold(true).Underline(true),
		Bold:    lr.NewStyle().Bold(true),
		Muted:   lr.NewStyle().Foreground(colorMuted),
		Success: lr.NewStyle().Foreground(colorSuccess),
		Error:   lr.NewStyle().Foreground(colorError),
		Warning: lr.NewStyle().Foreground(colorWarning),
		Info:    lr.NewStyle().Foreground(colorInfo),
		Value:   lr.NewStyle().Bold(true).Foreground(colorSuccess),
	}
}
