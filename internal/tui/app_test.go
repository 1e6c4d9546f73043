package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localdumbkat/polywal/internal/model"
)

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	pm, ok := next.(Model)
	require.True(t, ok)
	return pm, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPicker_StartsOnCurrentProfile(t *testing.T) {
	m := New(model.Builtins(), model.NewPalette(nil), "profile2")
	assert.Equal(t, 1, m.cursor)

	_, ok := m.Chosen()
	assert.False(t, ok)
}

func TestPicker_MoveAndApply(t *testing.T) {
	m := New(model.Builtins(), model.NewPalette(nil), "profile1")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(t, m, runes("j"))
	m, _ = press(t, m, runes("j"))
	assert.Equal(t, 2, m.cursor, "cursor stops at the last profile")

	m, _ = press(t, m, runes("k"))
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	p, ok := m.Chosen()
	require.True(t, ok)
	assert.Equal(t, "profile2", p.Name)
}

func TestPicker_UpStopsAtTop(t *testing.T) {
	m := New(model.Builtins(), model.NewPalette(nil), "profile1")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)
}

func TestPicker_QuitChoosesNothing(t *testing.T) {
	m := New(model.Builtins(), model.NewPalette(nil), "profile1")

	m, cmd := press(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, ok := m.Chosen()
	assert.False(t, ok)
}

func TestPicker_ViewShowsResolvedColors(t *testing.T) {
	palette := model.NewPalette([]string{"#111111", "#222222", "#333333", "#444444", "#555555", "#666666", "#777777", "#888888"})
	m := New(model.Builtins(), palette, "profile1")

	view := m.View()
	assert.Contains(t, view, "Select a polybar color profile")
	assert.Contains(t, view, "profile1")
	assert.Contains(t, view, "#888888")
	assert.Contains(t, view, "#0000ff")
	assert.Contains(t, view, "pywal palette")
}

func TestPicker_ViewMarksSkippedSlots(t *testing.T) {
	m := New(model.Builtins()[:1], model.NewPalette(nil), "profile1")
	assert.Contains(t, m.View(), "--")
}
