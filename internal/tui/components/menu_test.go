package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMenu() Menu[string] {
	return NewMenu(
		MenuOption[string]{Label: "First", Value: "first"},
		MenuOption[string]{Label: "Second", Value: "second"},
		MenuOption[string]{Label: "Third", Value: "third"},
	)
}

func TestNewMenu(t *testing.T) {
	t.Parallel()

	menu := newTestMenu()

	assert.Equal(t, 3, menu.Len())
	assert.Equal(t, 0, menu.FocusedIndex())
	opt, ok := menu.Focused()
	require.True(t, ok)
	assert.Equal(t, "first", opt.Value)
}

func TestMenu_Empty(t *testing.T) {
	t.Parallel()

	menu := NewMenu[int]()

	_, ok := menu.Focused()
	assert.False(t, ok)

	menu, selected := menu.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, selected)
	assert.Contains(t, menu.View(), "No options")
}

func TestMenu_ArrowNavigationStopsAtEnds(t *testing.T) {
	t.Parallel()

	menu := newTestMenu()

	menu, _ = menu.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, menu.FocusedIndex())

	menu, _ = menu.Update(tea.KeyMsg{Type: tea.KeyDown})
	menu, _ = menu.Update(tea.KeyMsg{Type: tea.KeyDown})
	menu, _ = menu.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, menu.FocusedIndex())
}

func TestMenu_VimNavigation(t *testing.T) {
	t.Parallel()

	menu := newTestMenu()

	menu, _ = menu.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 1, menu.FocusedIndex())

	menu, _ = menu.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 0, menu.FocusedIndex())
}

func TestMenu_TabWraps(t *testing.T) {
	t.Parallel()

	menu := newTestMenu()

	menu, _ = menu.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 2, menu.FocusedIndex())

	menu, _ = menu.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, menu.FocusedIndex())
}

func TestMenu_Select(t *testing.T) {
	t.Parallel()

	menu := newTestMenu().SetFocused(1)

	menu, selected := menu.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, selected)
	opt, _ := menu.Focused()
	assert.Equal(t, "second", opt.Value)
}

func TestMenu_SetFocusedClamps(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, newTestMenu().SetFocused(10).FocusedIndex())
	assert.Equal(t, 0, newTestMenu().SetFocused(-3).FocusedIndex())
}

func TestMenu_View(t *testing.T) {
	t.Parallel()

	view := newTestMenu().SetFocused(1).View()

	assert.Contains(t, view, "▸ Second")
	assert.Contains(t, view, "First")
	assert.Contains(t, view, "Third")
}

func TestMenu_OptionsReturnsCopy(t *testing.T) {
	t.Parallel()

	menu := newTestMenu()
	opts := menu.Options()
	opts[0].Label = "changed"

	first, _ := menu.Focused()
	assert.Equal(t, "First", first.Label)
}
