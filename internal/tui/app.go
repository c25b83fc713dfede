package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/felixgeelhaar/bighelp/internal/adapters/logging"
	"github.com/felixgeelhaar/bighelp/internal/domain/actions"
	"github.com/felixgeelhaar/bighelp/internal/domain/tutorial"
	"github.com/felixgeelhaar/bighelp/internal/ports"
	"github.com/felixgeelhaar/bighelp/internal/tui/ui"
)

// AppTitle is shown in the header of every screen.
const AppTitle = "BigHelp - Learn Linux Terminal!"

// Deps are the collaborators the application shell hands to its screens.
type Deps struct {
	Store   *tutorial.Store
	Actions *actions.Handlers
	Logger  ports.Logger
	// Theme is the glamour style for Markdown pages: dark, light, notty or auto.
	Theme   string
	Version string
}

// env is shared by every screen of one App.
type env struct {
	ctx      context.Context
	store    *tutorial.Store
	actions  *actions.Handlers
	logger   ports.Logger
	markdown *markdownRenderer
	styles   ui.Styles
	keys     ui.KeyMap
	version  string
}

// App is the application shell: it owns the screen stack, handles the
// global key bindings and forwards everything else to the top screen.
type App struct {
	env         *env
	stack       *ScreenStack
	width       int
	height      int
	quitting    bool
	interrupted bool
}

// NewApp creates the shell with the main menu as its only screen.
func NewApp(ctx context.Context, deps Deps) App {
	if ctx == nil {
		ctx = context.Background()
	}
	if deps.Store == nil {
		deps.Store = tutorial.Default()
	}
	if deps.Logger == nil {
		deps.Logger = logging.NewNopLogger()
	}
	e := &env{
		ctx:      ctx,
		store:    deps.Store,
		actions:  deps.Actions,
		logger:   deps.Logger,
		markdown: newMarkdownRenderer(deps.Theme),
		styles:   ui.DefaultStyles(),
		keys:     ui.DefaultKeyMap(),
		version:  deps.Version,
	}
	return App{
		env:    e,
		stack:  NewScreenStack(newMainMenu(e)),
		width:  ui.DefaultWidth,
		height: ui.DefaultHeight,
	}
}

// Stack returns the navigation stack.
func (a App) Stack() *ScreenStack {
	return a.stack
}

// Interrupted reports whether the user left with ctrl+c.
func (a App) Interrupted() bool {
	return a.interrupted
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.env.styles = a.env.styles.WithWidth(msg.Width)
		a.resize(a.stack.Top())
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case ui.ActionDoneMsg:
		if screen, ok := a.stack.Find(msg.ScreenID); ok {
			if r, ok := screen.(receiver); ok {
				return a, r.Receive(msg)
			}
		}
		return a, nil
	}

	if r, ok := a.stack.Top().(receiver); ok {
		return a, r.Receive(msg)
	}
	return a, nil
}

func (a App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := a.env.keys

	if key.Matches(msg, keys.Quit) {
		a.interrupted = msg.Type == tea.KeyCtrlC
		return a.apply(quit(), nil)
	}

	top := a.stack.Top()
	if b, ok := top.(busyScreen); ok && b.Busy() {
		return a, nil
	}

	switch {
	case key.Matches(msg, keys.Home):
		return a.apply(home(), nil)
	case key.Matches(msg, keys.Back):
		return a.apply(pop(), nil)
	}

	t, cmd := top.Update(msg)
	return a.apply(t, cmd)
}

// apply performs a transition on the stack.
func (a App) apply(t Transition, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	ctx := a.env.ctx
	log := a.env.logger

	switch t.Kind {
	case TransitionNone:
	case TransitionPush:
		if t.Screen == nil {
			break
		}
		a.resize(t.Screen)
		a.stack.Push(t.Screen)
		log.Debug(ctx, "screen pushed",
			ports.F("screen", t.Screen.Kind().String()),
			ports.F("depth", a.stack.Depth()))
	case TransitionPop:
		if popped, ok := a.stack.Pop(); ok {
			a.resize(a.stack.Top())
			log.Debug(ctx, "screen popped",
				ports.F("screen", popped.Kind().String()),
				ports.F("depth", a.stack.Depth()))
		}
	case TransitionHome:
		a.stack.Reset(newMainMenu(a.env))
		log.Debug(ctx, "returned home")
	case TransitionQuit:
		a.quitting = true
		log.Debug(ctx, "quit", ports.F("interrupted", a.interrupted))
		return a, tea.Quit
	}
	return a, cmd
}

func (a App) resize(s Screen) {
	if sized, ok := s.(sizedScreen); ok {
		sized.SetSize(a.contentWidth(), a.contentHeight())
	}
}

func (a App) contentWidth() int {
	return max(a.width-4, 20)
}

func (a App) contentHeight() int {
	return max(a.height-ui.ChromeHeight, 5)
}

// View implements tea.Model.
func (a App) View() string {
	if a.quitting {
		return ""
	}

	styles := a.env.styles
	keys := a.env.keys
	top := a.stack.Top()

	var b strings.Builder
	b.WriteString(styles.Header.Render("🚀 " + AppTitle))
	b.WriteString("\n\n")
	b.WriteString(styles.App.Render(top.View(a.contentWidth(), a.contentHeight())))
	b.WriteString("\n\n")

	bindings := []key.Binding{keys.Up, keys.Down, keys.Select, keys.Back, keys.Home, keys.Quit}
	if top.Kind() == KindCommandDetail {
		bindings = append(bindings, keys.Try)
	}
	b.WriteString(ui.HelpLine(styles, bindings...))
	return b.String()
}

func errField(err error) ports.Field {
	return ports.F("error", err)
}
