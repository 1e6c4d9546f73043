package ui

import "github.com/charmbracelet/lipgloss"

// Color palette for polywal's own messages
var (
	ColorPrimary = lipgloss.Color("212") // Pink/magenta for names and headings
	ColorMuted   = lipgloss.Color("241") // Gray for hints and detail lines
	ColorBorder  = lipgloss.Color("240")

	ColorSuccess = lipgloss.Color("46")  // Green
	ColorError   = lipgloss.Color("196") // Red
	ColorWarning = lipgloss.Color("214") // Orange
)

// Styles holds message styles bound to one renderer
type Styles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Hint    lipgloss.Style
	Detail  lipgloss.Style
	Name    lipgloss.Style
}

// NewStyles builds message styles for r. Colors are dropped automatically
// when r writes to something that is not a color terminal.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Success: r.NewStyle().Foreground(ColorSuccess).Bold(true),
		Error:   r.NewStyle().Foreground(ColorError).Bold(true),
		Warning: r.NewStyle().Foreground(ColorWarning),
		Hint:    r.NewStyle().Foreground(ColorMuted).Italic(true),
		Detail:  r.NewStyle().Foreground(ColorMuted),
		Name:    r.NewStyle().Foreground(ColorPrimary).Bold(true),
	}
}
