package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/felixgeelhaar/bighelp/internal/domain/tutorial"
	"github.com/felixgeelhaar/bighelp/internal/tui/components"
)

// tutorialMenuAction is either a category or the way back.
type tutorialMenuAction struct {
	category tutorial.CategoryID
	back     bool
}

type tutorialMenu struct {
	env  *env
	id   uuid.UUID
	menu components.Menu[tutorialMenuAction]
}

func newTutorialMenu(e *env) *tutorialMenu {
	cats := e.store.Categories()
	options := make([]components.MenuOption[tutorialMenuAction], 0, len(cats)+1)
	for _, c := range cats {
		options = append(options, components.MenuOption[tutorialMenuAction]{
			Label: c.Label,
			Value: tutorialMenuAction{category: c.ID},
		})
	}
	options = append(options, components.MenuOption[tutorialMenuAction]{
		Label: "🔙 Back to Main Menu",
		Value: tutorialMenuAction{back: true},
	})

	return &tutorialMenu{
		env:  e,
		id:   uuid.New(),
		menu: components.NewMenu(options...).WithStyles(e.styles),
	}
}

func (s *tutorialMenu) Kind() Kind    { return KindTutorialMenu }
func (s *tutorialMenu) ID() uuid.UUID { return s.id }
func (s *tutorialMenu) Title() string { return "📖 Choose a Topic to Learn" }

func (s *tutorialMenu) Update(msg tea.KeyMsg) (Transition, tea.Cmd) {
	var selected bool
	s.menu, selected = s.menu.Update(msg)
	if !selected {
		return stay(), nil
	}
	opt, _ := s.menu.Focused()
	if opt.Value.back {
		return pop(), nil
	}

	list, err := newCommandList(s.env, opt.Value.category)
	if err != nil {
		s.env.logger.Error(s.env.ctx, "open category", errField(err))
		return stay(), nil
	}
	return push(list), nil
}

func (s *tutorialMenu) View(_, _ int) string {
	return s.env.styles.Title.Render(s.Title()) + "\n" + s.menu.View()
}

// commandListAction is a command name, or the way back when back is set.
type commandListAction struct {
	command string
	back    bool
}

type commandList struct {
	env      *env
	id       uuid.UUID
	category tutorial.Category
	menu     components.Menu[commandListAction]
}

func newCommandList(e *env, id tutorial.CategoryID) (*commandList, error) {
	cat, err := e.store.Category(id)
	if err != nil {
		return nil, err
	}
	records, err := e.store.ListCategory(id)
	if err != nil {
		return nil, err
	}

	options := make([]components.MenuOption[commandListAction], 0, len(records)+1)
	for _, r := range records {
		options = append(options, components.MenuOption[commandListAction]{
			Label: r.Name + " - " + r.Description,
			Value: commandListAction{command: r.Name},
		})
	}
	options = append(options, components.MenuOption[commandListAction]{
		Label: "🔙 Back",
		Value: commandListAction{back: true},
	})

	return &commandList{
		env:      e,
		id:       uuid.New(),
		category: cat,
		menu:     components.NewMenu(options...).WithStyles(e.styles),
	}, nil
}

func (s *commandList) Kind() Kind    { return KindCommandList }
func (s *commandList) ID() uuid.UUID { return s.id }
func (s *commandList) Title() string { return s.category.Title }

func (s *commandList) Update(msg tea.KeyMsg) (Transition, tea.Cmd) {
	var selected bool
	s.menu, selected = s.menu.Update(msg)
	if !selected {
		return stay(), nil
	}
	opt, _ := s.menu.Focused()
	if opt.Value.back {
		return pop(), nil
	}

	record, err := s.env.store.Lookup(s.category.ID, opt.Value.command)
	if err != nil {
		s.env.logger.Error(s.env.ctx, "open command", errField(err))
		return stay(), nil
	}
	return push(newCommandDetail(s.env, s.category.ID, record)), nil
}

func (s *commandList) View(_, _ int) string {
	var b strings.Builder
	b.WriteString(s.env.styles.Title.Render(s.Title()))
	b.WriteString("\n")
	b.WriteString(s.menu.View())
	return b.String()
}
