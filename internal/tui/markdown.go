package tui

import (
	"github.com/charmbracelet/glamour"
)

// markdownRenderer renders Markdown for the detail and about pages. The
// glamour renderer is rebuilt only when the wrap width changes.
type markdownRenderer struct {
	theme    string
	width    int
	renderer *glamour.TermRenderer
}

func newMarkdownRenderer(theme string) *markdownRenderer {
	if theme == "" {
		theme = "dark"
	}
	return &markdownRenderer{theme: theme}
}

// Render returns md rendered for width. On failure the source is returned.
func (m *markdownRenderer) Render(md string, width int) string {
	if width < 20 {
		width = 20
	}
	if m.renderer == nil || m.width != width {
		style := glamour.WithStylePath(m.theme)
		if m.theme == "auto" {
			style = glamour.WithAutoStyle()
		}
		r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
		if err != nil {
			return md
		}
		m.renderer = r
		m.width = width
	}

	out, err := m.renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}
