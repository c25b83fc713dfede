package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/felixgeelhaar/bighelp/internal/domain/actions"
	"github.com/felixgeelhaar/bighelp/internal/ports"
	"github.com/felixgeelhaar/bighelp/internal/tui/components"
	"github.com/felixgeelhaar/bighelp/internal/tui/ui"
)

// toolAction is the option set of one tools screen. action reports the
// handler to run, or false for the way back.
type toolAction interface {
	comparable
	label() string
	action() (actions.Kind, bool)
}

type networkAction int

const (
	networkCheckConnection networkAction = iota
	networkTestWebsites
	networkShowInfo
	networkBack
)

func (a networkAction) label() string {
	switch a {
	case networkCheckConnection:
		return "📡 Check Internet Connection"
	case networkTestWebsites:
		return "🔍 Test Website Connection"
	case networkShowInfo:
		return "📊 Show Network Information"
	case networkBack:
		return "🔙 Back"
	default:
		return ""
	}
}

func (a networkAction) action() (actions.Kind, bool) {
	switch a {
	case networkCheckConnection:
		return actions.CheckConnectivity, true
	case networkTestWebsites:
		return actions.TestWebsites, true
	case networkShowInfo:
		return actions.NetworkInfo, true
	default:
		return 0, false
	}
}

type packageAction int

const (
	packageUpdate packageAction = iota
	packageUpgrade
	packageSearch
	packageBack
)

func (a packageAction) label() string {
	switch a {
	case packageUpdate:
		return "🔄 Update Package List"
	case packageUpgrade:
		return "🆕 Upgrade Packages"
	case packageSearch:
		return "🔍 Search for Package"
	case packageBack:
		return "🔙 Back"
	default:
		return ""
	}
}

func (a packageAction) action() (actions.Kind, bool) {
	switch a {
	case packageUpdate:
		return actions.UpdatePackageList, true
	case packageUpgrade:
		return actions.UpgradePackages, true
	case packageSearch:
		return actions.SearchPackage, true
	default:
		return 0, false
	}
}

type systemAction int

const (
	systemShowInfo systemAction = iota
	systemDiskSpace
	systemProcesses
	systemBack
)

func (a systemAction) label() string {
	switch a {
	case systemShowInfo:
		return "📊 Show System Information"
	case systemDiskSpace:
		return "💾 Check Disk Space"
	case systemProcesses:
		return "🖥️ Show Running Processes"
	case systemBack:
		return "🔙 Back"
	default:
		return ""
	}
}

func (a systemAction) action() (actions.Kind, bool) {
	switch a {
	case systemShowInfo:
		return actions.SystemInfo, true
	case systemDiskSpace:
		return actions.DiskSpace, true
	case systemProcesses:
		return actions.Processes, true
	default:
		return 0, false
	}
}

const resultPanelTitle = "📋 Result"

// toolsScreen runs actions as commands. While one is in flight the screen
// is busy and shows its progress line next to a spinner.
type toolsScreen[T toolAction] struct {
	env      *env
	id       uuid.UUID
	kind     Kind
	title    string
	warning  string
	menu     components.Menu[T]
	spinner  spinner.Model
	result   components.Panel
	busy     bool
	progress string
}

func newToolsScreen[T toolAction](e *env, kind Kind, title, warning string, all ...T) *toolsScreen[T] {
	options := make([]components.MenuOption[T], len(all))
	for i, a := range all {
		options[i] = components.MenuOption[T]{Label: a.label(), Value: a}
	}
	return &toolsScreen[T]{
		env:     e,
		id:      uuid.New(),
		kind:    kind,
		title:   title,
		warning: warning,
		menu:    components.NewMenu(options...).WithStyles(e.styles),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(e.styles.Spinner)),
		result:  components.NewPanel(resultPanelTitle).WithStyles(e.styles),
	}
}

func newNetworkTools(e *env) *toolsScreen[networkAction] {
	return newToolsScreen(e, KindNetworkActions, "🌐 Network Tools", "",
		networkCheckConnection, networkTestWebsites, networkShowInfo, networkBack)
}

func newPackageTools(e *env) *toolsScreen[packageAction] {
	return newToolsScreen(e, KindPackageActions, "📦 Package Management", "⚠️ These actions might need admin permission",
		packageUpdate, packageUpgrade, packageSearch, packageBack)
}

func newSystemTools(e *env) *toolsScreen[systemAction] {
	return newToolsScreen(e, KindSystemActions, "⚙️ System Tools", "",
		systemShowInfo, systemDiskSpace, systemProcesses, systemBack)
}

func (s *toolsScreen[T]) Kind() Kind    { return s.kind }
func (s *toolsScreen[T]) ID() uuid.UUID { return s.id }
func (s *toolsScreen[T]) Title() string { return s.title }

// Busy reports whether an action is running.
func (s *toolsScreen[T]) Busy() bool { return s.busy }

// Result returns the last final status.
func (s *toolsScreen[T]) Result() string { return s.result.Content() }

func (s *toolsScreen[T]) SetSize(width, _ int) {
	s.result = s.result.WithWidth(width)
}

func (s *toolsScreen[T]) Update(msg tea.KeyMsg) (Transition, tea.Cmd) {
	if s.busy {
		return stay(), nil
	}

	var selected bool
	s.menu, selected = s.menu.Update(msg)
	if !selected {
		return stay(), nil
	}
	opt, _ := s.menu.Focused()

	kind, ok := opt.Value.action()
	if !ok {
		return pop(), nil
	}
	return stay(), s.start(kind)
}

func (s *toolsScreen[T]) start(kind actions.Kind) tea.Cmd {
	if s.env.actions == nil {
		s.result = s.result.WithContent("❌ Tools are not available")
		return nil
	}

	s.busy = true
	s.progress = actions.ProgressLine(kind)
	s.env.logger.Info(s.env.ctx, "action started", ports.F("action", kind.String()))

	ctx, handlers, id := s.env.ctx, s.env.actions, s.id
	run := func() tea.Msg {
		return ui.ActionDoneMsg{ScreenID: id, Status: handlers.Run(ctx, kind)}
	}
	return tea.Batch(s.spinner.Tick, run)
}

// Receive handles action results and spinner ticks.
func (s *toolsScreen[T]) Receive(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ui.ActionDoneMsg:
		if msg.ScreenID != s.id {
			return nil
		}
		s.busy = false
		s.progress = ""
		s.result = s.result.WithContent(msg.Status)
		return nil
	case spinner.TickMsg:
		if !s.busy {
			return nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return cmd
	}
	return nil
}

func (s *toolsScreen[T]) View(_, _ int) string {
	var b strings.Builder
	b.WriteString(s.env.styles.Title.Render(s.title))
	b.WriteString("\n")
	if s.warning != "" {
		b.WriteString(s.env.styles.Warning.Render(s.warning))
		b.WriteString("\n\n")
	}
	b.WriteString(s.menu.View())

	switch {
	case s.busy:
		b.WriteString("\n\n")
		b.WriteString(s.spinner.View() + " " + s.progress)
	case !s.result.IsEmpty():
		b.WriteString("\n\n")
		b.WriteString(s.result.View())
	}
	return b.String()
}
