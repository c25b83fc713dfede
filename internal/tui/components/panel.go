package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/felixgeelhaar/bighelp/internal/tui/ui"
)

// Panel is a bordered box for command and action output.
type Panel struct {
	title   string
	content string
	width   int
	styles  ui.Styles
}

// NewPanel creates a new panel with the given title.
func NewPanel(title string) Panel {
	return Panel{
		title:  title,
		width:  ui.DefaultWidth,
		styles: ui.DefaultStyles(),
	}
}

// Title returns the panel title.
func (p Panel) Title() string {
	return p.title
}

// Content returns the panel content.
func (p Panel) Content() string {
	return p.content
}

// IsEmpty reports whether the panel has no content.
func (p Panel) IsEmpty() bool {
	return p.content == ""
}

// WithContent returns the panel with new content.
func (p Panel) WithContent(content string) Panel {
	p.content = content
	return p
}

// WithWidth returns the panel with a new width.
func (p Panel) WithWidth(width int) Panel {
	p.width = width
	return p
}

// WithStyles returns the panel with custom styles.
func (p Panel) WithStyles(styles ui.Styles) Panel {
	p.styles = styles
	return p
}

// View renders the panel. Content lines are colored by their status prefix.
func (p Panel) View() string {
	var b strings.Builder
	if p.title != "" {
		b.WriteString(p.styles.PanelTitle.Render(p.title))
		b.WriteString("\n")
	}
	b.WriteString(p.colorize(strings.TrimRight(p.content, "\n")))

	style := p.styles.Panel
	if p.width > 4 {
		style = style.Width(p.width - 4)
	}
	return style.Render(b.String())
}

func (p Panel) colorize(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = p.lineStyle(line).Render(line)
	}
	return strings.Join(lines, "\n")
}

func (p Panel) lineStyle(line string) lipgloss.Style {
	switch {
	case strings.HasPrefix(line, "✅"):
		return p.styles.Success
	case strings.HasPrefix(line, "❌"), strings.HasPrefix(line, "🚫"):
		return p.styles.Error
	case strings.HasPrefix(line, "⚠️"), strings.HasPrefix(line, "💡"):
		return p.styles.Warning
	default:
		return p.styles.Paragraph
	}
}
