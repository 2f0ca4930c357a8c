package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Frame    *lipgloss.Style
	Title    *lipgloss.Style
	UpRow    *lipgloss.Style
	Branch   *lipgloss.Style
	Leaf     *lipgloss.Style
	Selected *lipgloss.Style
	Footer   *lipgloss.Style
}

// HighlightSymbol prefixes the row under the cursor; other rows are indented
// by the same width.
const HighlightSymbol = ">>> "

var defaultStyles = Styles{
	Frame: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
	),
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	UpRow: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	Branch: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	Leaf: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
	),
	Selected: ptr(
		lipgloss.NewStyle().Reverse(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
