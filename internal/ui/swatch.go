package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// ParseHex parses "#rgb", "#rrggbb" and polybar's "#aarrggbb".
// The alpha channel is ignored.
func ParseHex(s string) (colorful.Color, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 9 && strings.HasPrefix(s, "#") {
		s = "#" + s[3:]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

// ContrastText returns black or white, whichever reads better on bg
func ContrastText(bg colorful.Color) lipgloss.Color {
	l, _, _ := bg.Lab()
	if l < 0.55 {
		return lipgloss.Color("#ffffff")
	}
	return lipgloss.Color("#000000")
}

// Swatch renders label padded to width on a background of color.
// Values that are not hex colors are rendered as plain text.
func Swatch(r *lipgloss.Renderer, color, label string, width int) string {
	text := runewidth.FillRight(runewidth.Truncate(label, width, "…"), width)
	c, ok := ParseHex(color)
	if !ok {
		return text
	}
	normalized := c.Hex()
	return r.NewStyle().
		Background(lipgloss.Color(normalized)).
		Foreground(ContrastText(c)).
		Render(text)
}
