package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownRenderer_Render(t *testing.T) {
	t.Parallel()

	r := newMarkdownRenderer("notty")
	out := r.Render("# Title\n\nSome **bold** text.\n", 60)

	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "bold")
	assert.Equal(t, 60, r.width)
}

func TestMarkdownRenderer_RebuildsOnWidthChange(t *testing.T) {
	t.Parallel()

	r := newMarkdownRenderer("notty")
	r.Render("text", 60)
	first := r.renderer

	r.Render("text", 60)
	assert.Same(t, first, r.renderer)

	r.Render("text", 40)
	assert.NotSame(t, first, r.renderer)
	assert.Equal(t, 40, r.width)
}

func TestMarkdownRenderer_MinimumWidth(t *testing.T) {
	t.Parallel()

	r := newMarkdownRenderer("")
	r.Render("text", 5)

	assert.Equal(t, "dark", r.theme)
	assert.Equal(t, 20, r.width)
}

func TestMarkdownRenderer_UnknownThemeFallsBackToSource(t *testing.T) {
	t.Parallel()

	r := newMarkdownRenderer("/no/such/style.json")
	assert.Equal(t, "# Title\n", r.Render("# Title\n", 60))
}

func TestAboutMarkdown(t *testing.T) {
	t.Parallel()

	assert.Contains(t, aboutMarkdown(""), "## Version\n\n0.1.0")
	assert.Contains(t, aboutMarkdown("dev"), "0.1.0")
	assert.Contains(t, aboutMarkdown("1.4.0"), "## Version\n\n1.4.0")
	assert.Contains(t, aboutMarkdown("1.4.0"), "Made with ❤️ for Linux learners!")
}
