package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/felixgeelhaar/bighelp/internal/domain/sandbox"
	"github.com/felixgeelhaar/bighelp/internal/domain/tutorial"
	"github.com/felixgeelhaar/bighelp/internal/export"
	"github.com/felixgeelhaar/bighelp/internal/ports"
	"github.com/felixgeelhaar/bighelp/internal/tui/components"
	"github.com/felixgeelhaar/bighelp/internal/tui/ui"
)

type detailAction int

const (
	detailTry detailAction = iota
	detailBack
)

func (a detailAction) label() string {
	switch a {
	case detailTry:
		return "🔧 Try This Command"
	case detailBack:
		return "🔙 Back"
	default:
		return ""
	}
}

// page is a scrollable Markdown document above a row of options.
type page struct {
	env      *env
	markdown string
	viewport viewport.Model
	width    int
}

func newPage(e *env, markdown string) page {
	p := page{
		env:      e,
		markdown: markdown,
		viewport: viewport.New(ui.DefaultWidth, ui.DefaultHeight),
	}
	p.setSize(ui.DefaultWidth-4, ui.DefaultHeight-ui.ChromeHeight)
	return p
}

// setSize re-renders the document when the wrap width changes.
func (p *page) setSize(width, height int) {
	p.viewport.Width = width
	p.viewport.Height = max(height, 3)
	if width != p.width {
		p.width = width
		p.viewport.SetContent(p.env.markdown.Render(p.markdown, width))
	}
}

// scroll handles the page keys; it reports whether msg was consumed.
func (p *page) scroll(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, p.env.keys.PageUp):
		p.viewport.HalfPageUp()
	case key.Matches(msg, p.env.keys.PageDown):
		p.viewport.HalfPageDown()
	default:
		return false
	}
	return true
}

type commandDetail struct {
	env      *env
	id       uuid.UUID
	category tutorial.CategoryID
	record   tutorial.CommandRecord
	page     page
	menu     components.Menu[detailAction]
}

func newCommandDetail(e *env, category tutorial.CategoryID, record tutorial.CommandRecord) *commandDetail {
	return &commandDetail{
		env:      e,
		id:       uuid.New(),
		category: category,
		record:   record,
		page:     newPage(e, export.Markdown(record)),
		menu: components.NewMenu(
			components.MenuOption[detailAction]{Label: detailTry.label(), Value: detailTry},
			components.MenuOption[detailAction]{Label: detailBack.label(), Value: detailBack},
		).WithStyles(e.styles),
	}
}

func (s *commandDetail) Kind() Kind    { return KindCommandDetail }
func (s *commandDetail) ID() uuid.UUID { return s.id }
func (s *commandDetail) Title() string { return "🚀 " + s.record.Name }

func (s *commandDetail) SetSize(width, height int) {
	s.page.setSize(width, height-3)
}

func (s *commandDetail) Update(msg tea.KeyMsg) (Transition, tea.Cmd) {
	if s.page.scroll(msg) {
		return stay(), nil
	}
	if key.Matches(msg, s.env.keys.Try) {
		return s.try(), nil
	}

	var selected bool
	s.menu, selected = s.menu.Update(msg)
	if !selected {
		return stay(), nil
	}
	opt, _ := s.menu.Focused()

	switch opt.Value {
	case detailTry:
		return s.try(), nil
	case detailBack:
		return pop(), nil
	}
	return stay(), nil
}

func (s *commandDetail) try() Transition {
	s.env.logger.Debug(s.env.ctx, "trying command",
		ports.F("category", string(s.category)),
		ports.F("command", s.record.Name))
	return push(newInteractiveTerminal(s.env, s.record))
}

func (s *commandDetail) View(_, _ int) string {
	return s.page.viewport.View() + "\n" + s.menu.View()
}

// terminalAction runs an example, returns to the detail page or goes back.
type terminalAction struct {
	kind    terminalActionKind
	example int
}

type terminalActionKind int

const (
	terminalRun terminalActionKind = iota
	terminalReadMore
	terminalBack
)

const outputPanelTitle = "💻 Output"

type interactiveTerminal struct {
	env    *env
	id     uuid.UUID
	record tutorial.CommandRecord
	menu   components.Menu[terminalAction]
	output components.Panel
}

func newInteractiveTerminal(e *env, record tutorial.CommandRecord) *interactiveTerminal {
	options := make([]components.MenuOption[terminalAction], 0, len(record.Examples)+2)
	for i, ex := range record.Examples {
		options = append(options, components.MenuOption[terminalAction]{
			Label: "Run: " + ex.Command,
			Value: terminalAction{kind: terminalRun, example: i},
		})
	}
	options = append(options,
		components.MenuOption[terminalAction]{
			Label: "📖 Read More About This Command",
			Value: terminalAction{kind: terminalReadMore},
		},
		components.MenuOption[terminalAction]{
			Label: "🔙 Back",
			Value: terminalAction{kind: terminalBack},
		},
	)

	return &interactiveTerminal{
		env:    e,
		id:     uuid.New(),
		record: record,
		menu:   components.NewMenu(options...).WithStyles(e.styles),
		output: components.NewPanel(outputPanelTitle).WithStyles(e.styles),
	}
}

func (s *interactiveTerminal) Kind() Kind    { return KindInteractiveTerminal }
func (s *interactiveTerminal) ID() uuid.UUID { return s.id }
func (s *interactiveTerminal) Title() string {
	return "🔧 Try the '" + s.record.Name + "' command"
}

// Output returns the text of the output panel.
func (s *interactiveTerminal) Output() string {
	return s.output.Content()
}

func (s *interactiveTerminal) SetSize(width, _ int) {
	s.output = s.output.WithWidth(width)
}

func (s *interactiveTerminal) Update(msg tea.KeyMsg) (Transition, tea.Cmd) {
	var selected bool
	s.menu, selected = s.menu.Update(msg)
	if !selected {
		return stay(), nil
	}
	opt, _ := s.menu.Focused()

	switch opt.Value.kind {
	case terminalRun:
		command := s.record.Examples[opt.Value.example].Command
		outcome := sandbox.Simulate(command)
		s.output = s.output.WithContent(outcome.Output)
		s.env.logger.Debug(s.env.ctx, "example simulated",
			ports.F("command", command),
			ports.F("verdict", outcome.Verdict.String()))
		return stay(), nil
	case terminalReadMore, terminalBack:
		return pop(), nil
	}
	return stay(), nil
}

func (s *interactiveTerminal) View(_, _ int) string {
	var b strings.Builder
	b.WriteString(s.env.styles.Title.Render(s.Title()))
	b.WriteString("\n")
	b.WriteString(s.env.styles.Subtitle.Render("Select an example to try:"))
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())
	if !s.output.IsEmpty() {
		b.WriteString("\n\n")
		b.WriteString(s.output.View())
	}
	return b.String()
}
