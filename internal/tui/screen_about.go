package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/felixgeelhaar/bighelp/internal/tui/components"
)

// aboutVersion is shown when the build carries no version.
const aboutVersion = "0.1.0"

func aboutMarkdown(version string) string {
	if version == "" || version == "dev" {
		version = aboutVersion
	}

	var b strings.Builder
	b.WriteString("# 🚀 BigHelp - Learn Linux Terminal!\n\n")
	b.WriteString("## What is BigHelp?\n\n")
	b.WriteString("BigHelp is a friendly tool designed to help users learn the Linux terminal.\n")
	b.WriteString("It makes learning commands fun and safe!\n\n")
	b.WriteString("## Version\n\n" + version + "\n\n")
	b.WriteString("## Features\n\n")
	b.WriteString("- 📚 Interactive tutorials for Linux commands\n")
	b.WriteString("- 🛡️ Safe learning environment\n")
	b.WriteString("- 🎮 Easy-to-use keyboard interface\n")
	b.WriteString("- 🎯 Designed for beginners\n\n")
	b.WriteString("## How to Use\n\n")
	b.WriteString("1. Choose 'Learn Terminal Commands' to start\n")
	b.WriteString("2. Choose a category (Basic, Network, or System)\n")
	b.WriteString("3. Pick a command to learn about\n")
	b.WriteString("4. Try it out safely!\n\n")
	b.WriteString("## Tips for Learning\n\n")
	b.WriteString("- Take your time\n")
	b.WriteString("- Try the examples\n")
	b.WriteString("- Don't be afraid to explore\n")
	b.WriteString("- Ask for help when needed\n\n")
	b.WriteString("**Made with ❤️ for Linux learners!**\n")
	return b.String()
}

type aboutAction int

const aboutBack aboutAction = 0

type aboutScreen struct {
	env  *env
	id   uuid.UUID
	page page
	menu components.Menu[aboutAction]
}

func newAboutScreen(e *env) *aboutScreen {
	return &aboutScreen{
		env:  e,
		id:   uuid.New(),
		page: newPage(e, aboutMarkdown(e.version)),
		menu: components.NewMenu(
			components.MenuOption[aboutAction]{Label: "🔙 Back to Main Menu", Value: aboutBack},
		).WithStyles(e.styles),
	}
}

func (s *aboutScreen) Kind() Kind    { return KindAbout }
func (s *aboutScreen) ID() uuid.UUID { return s.id }
func (s *aboutScreen) Title() string { return "🚀 BigHelp - Learn Linux Terminal!" }

func (s *aboutScreen) SetSize(width, height int) {
	s.page.setSize(width, height-2)
}

func (s *aboutScreen) Update(msg tea.KeyMsg) (Transition, tea.Cmd) {
	if s.page.scroll(msg) {
		return stay(), nil
	}

	var selected bool
	s.menu, selected = s.menu.Update(msg)
	if selected {
		return pop(), nil
	}
	return stay(), nil
}

func (s *aboutScreen) View(_, _ int) string {
	return s.page.viewport.View() + "\n" + s.menu.View()
}
