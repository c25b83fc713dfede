package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/felixgeelhaar/bighelp/internal/tui/components"
)

const welcomeText = "Welcome to BigHelp! The friendly terminal assistant!"

type mainMenuAction int

const (
	mainLearn mainMenuAction = iota
	mainNetwork
	mainPackages
	mainSystem
	mainAbout
	mainExit
)

func (a mainMenuAction) label() string {
	switch a {
	case mainLearn:
		return "📚 Learn Terminal Commands"
	case mainNetwork:
		return "🌐 Connect to Internet"
	case mainPackages:
		return "📦 Manage Packages"
	case mainSystem:
		return "⚙️ System Settings"
	case mainAbout:
		return "ℹ️ About BigHelp"
	case mainExit:
		return "👋 Exit"
	default:
		return ""
	}
}

type mainMenu struct {
	env  *env
	id   uuid.UUID
	menu components.Menu[mainMenuAction]
}

func newMainMenu(e *env) *mainMenu {
	all := []mainMenuAction{mainLearn, mainNetwork, mainPackages, mainSystem, mainAbout, mainExit}
	options := make([]components.MenuOption[mainMenuAction], len(all))
	for i, a := range all {
		options[i] = components.MenuOption[mainMenuAction]{Label: a.label(), Value: a}
	}
	return &mainMenu{
		env:  e,
		id:   uuid.New(),
		menu: components.NewMenu(options...).WithStyles(e.styles),
	}
}

func (s *mainMenu) Kind() Kind    { return KindMainMenu }
func (s *mainMenu) ID() uuid.UUID { return s.id }
func (s *mainMenu) Title() string { return "🚀 What would you like to do today?" }

func (s *mainMenu) Update(msg tea.KeyMsg) (Transition, tea.Cmd) {
	var selected bool
	s.menu, selected = s.menu.Update(msg)
	if !selected {
		return stay(), nil
	}
	opt, _ := s.menu.Focused()

	switch opt.Value {
	case mainLearn:
		return push(newTutorialMenu(s.env)), nil
	case mainNetwork:
		return push(newNetworkTools(s.env)), nil
	case mainPackages:
		return push(newPackageTools(s.env)), nil
	case mainSystem:
		return push(newSystemTools(s.env)), nil
	case mainAbout:
		return push(newAboutScreen(s.env)), nil
	case mainExit:
		return quit(), nil
	}
	return stay(), nil
}

func (s *mainMenu) View(_, _ int) string {
	var b strings.Builder
	b.WriteString(s.env.styles.Welcome.Render(welcomeText))
	b.WriteString("\n")
	b.WriteString(s.env.styles.Title.Render(s.Title()))
	b.WriteString("\n")
	b.WriteString(s.menu.View())
	return b.String()
}
