package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/localdumbkat/polywal/internal/ui"
)

// Styles defines all visual styles for the picker
type Styles struct {
	Header       lipgloss.Style
	Footer       lipgloss.Style
	SelectedName lipgloss.Style
	NormalName   lipgloss.Style
	Description  lipgloss.Style
	Cursor       lipgloss.Style
}

// DefaultStyles returns the default style configuration
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.ColorPrimary).
			Padding(0, 1).
			MarginBottom(1),

		Footer: lipgloss.NewStyle().
			Foreground(ui.ColorBorder).
			Padding(0, 1).
			MarginTop(1),

		SelectedName: lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.ColorPrimary),

		NormalName: lipgloss.NewStyle(),

		Description: lipgloss.NewStyle().
			Foreground(ui.ColorMuted),

		Cursor: lipgloss.NewStyle().
			Foreground(ui.ColorPrimary),
	}
}

// Width of one color swatch cell
const swatchWidth = 9
