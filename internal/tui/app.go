package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/localdumbkat/polywal/internal/model"
	"github.com/localdumbkat/polywal/internal/ui"
)

// Model is the profile picker's Bubble Tea model
type Model struct {
	profiles []model.Profile
	palette  model.Palette
	keys     KeyMap
	styles   Styles
	help     help.Model

	cursor  int
	chosen  int
	nameCol int
}

// New creates a picker over profiles, previewed against palette, with the
// cursor on the profile named current.
func New(profiles []model.Profile, palette model.Palette, current string) Model {
	m := Model{
		profiles: profiles,
		palette:  palette,
		keys:     DefaultKeyMap(),
		styles:   DefaultStyles(),
		help:     help.New(),
		chosen:   -1,
	}
	for i, p := range profiles {
		if p.Name == current {
			m.cursor = i
		}
		if w := runewidth.StringWidth(p.Name); w > m.nameCol {
			m.nameCol = w
		}
	}
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.profiles)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Apply):
			if len(m.profiles) > 0 {
				m.chosen = m.cursor
			}
			return m, tea.Quit
		}
	}
	return m, nil
}

// Chosen returns the profile picked with enter, if any
func (m Model) Chosen() (model.Profile, bool) {
	if m.chosen < 0 || m.chosen >= len(m.profiles) {
		return model.Profile{}, false
	}
	return m.profiles[m.chosen].Clone(), true
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Header.Render("Select a polybar color profile"))
	b.WriteString("\n")

	r := lipgloss.DefaultRenderer()
	for i, p := range m.profiles {
		cursor := " "
		name := m.styles.NormalName.Render(runewidth.FillRight(p.Name, m.nameCol))
		if i == m.cursor {
			cursor = m.styles.Cursor.Render(ui.IconCursor)
			name = m.styles.SelectedName.Render(runewidth.FillRight(p.Name, m.nameCol))
		}

		kind := ui.IconUserMade
		if p.BuiltIn {
			kind = ui.IconBuiltIn
		}

		b.WriteString(cursor + " " + kind + " " + name + "  ")
		for _, res := range p.Resolve(m.palette) {
			label := res.Color
			if res.Outcome == model.Skipped {
				label = "--"
			}
			b.WriteString(ui.Swatch(r, res.Color, label, swatchWidth))
		}
		if p.Description != "" {
			b.WriteString("  " + m.styles.Description.Render(p.Description))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Footer.Render(m.help.View(m.keys)))
	b.WriteString("\n")
	return b.String()
}
