// Package components provides reusable TUI components built on Bubble Tea.
package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/felixgeelhaar/bighelp/internal/tui/ui"
)

// MenuOption is one selectable entry of a Menu.
type MenuOption[T any] struct {
	Label string
	Value T
}

// Menu is a vertical list of options with a single focused entry.
// Arrow keys stop at the ends; tab and shift+tab wrap around.
type Menu[T any] struct {
	options []MenuOption[T]
	focused int
	keys    ui.KeyMap
	styles  ui.Styles
}

// NewMenu creates a menu focused on its first option.
func NewMenu[T any](options ...MenuOption[T]) Menu[T] {
	return Menu[T]{
		options: options,
		keys:    ui.DefaultKeyMap(),
		styles:  ui.DefaultStyles(),
	}
}

// Options returns a copy of the options.
func (m Menu[T]) Options() []MenuOption[T] {
	out := make([]MenuOption[T], len(m.options))
	copy(out, m.options)
	return out
}

// Len returns the number of options.
func (m Menu[T]) Len() int {
	return len(m.options)
}

// FocusedIndex returns the index of the focused option.
func (m Menu[T]) FocusedIndex() int {
	return m.focused
}

// Focused returns the focused option; ok is false for an empty menu.
func (m Menu[T]) Focused() (MenuOption[T], bool) {
	if len(m.options) == 0 {
		return MenuOption[T]{}, false
	}
	return m.options[m.focused], true
}

// SetFocused focuses index, clamped to the valid range.
func (m Menu[T]) SetFocused(index int) Menu[T] {
	if index >= len(m.options) {
		index = len(m.options) - 1
	}
	if index < 0 {
		index = 0
	}
	m.focused = index
	return m
}

// WithStyles returns the menu with custom styles.
func (m Menu[T]) WithStyles(styles ui.Styles) Menu[T] {
	m.styles = styles
	return m
}

// Update moves focus for navigation keys. selected is true when the key
// activates the focused option.
func (m Menu[T]) Update(msg tea.KeyMsg) (menu Menu[T], selected bool) {
	n := len(m.options)
	if n == 0 {
		return m, false
	}

	switch {
	case m.keys.IsUp(msg):
		if m.focused > 0 {
			m.focused--
		}
	case m.keys.IsDown(msg):
		if m.focused < n-1 {
			m.focused++
		}
	case key.Matches(msg, m.keys.Next):
		m.focused = (m.focused + 1) % n
	case key.Matches(msg, m.keys.Previous):
		m.focused = (m.focused - 1 + n) % n
	case key.Matches(msg, m.keys.Select):
		return m, true
	}
	return m, false
}

// View renders one option per line with a marker on the focused one.
func (m Menu[T]) View() string {
	if len(m.options) == 0 {
		return m.styles.Help.Render("No options")
	}

	lines := make([]string, len(m.options))
	for i, opt := range m.options {
		if i == m.focused {
			lines[i] = m.styles.OptionActive.Render("▸ " + opt.Label)
		} else {
			lines[i] = m.styles.Option.Render("  " + opt.Label)
		}
	}
	return strings.Join(lines, "\n")
}
