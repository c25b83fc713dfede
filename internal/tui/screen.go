package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Kind identifies the type of a screen.
type Kind int

const (
	KindMainMenu Kind = iota
	KindTutorialMenu
	KindCommandList
	KindCommandDetail
	KindInteractiveTerminal
	KindNetworkActions
	KindPackageActions
	KindSystemActions
	KindAbout
)

// String returns the screen kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindMainMenu:
		return "main-menu"
	case KindTutorialMenu:
		return "tutorial-menu"
	case KindCommandList:
		return "command-list"
	case KindCommandDetail:
		return "command-detail"
	case KindInteractiveTerminal:
		return "interactive-terminal"
	case KindNetworkActions:
		return "network-actions"
	case KindPackageActions:
		return "package-actions"
	case KindSystemActions:
		return "system-actions"
	case KindAbout:
		return "about"
	default:
		return "unknown"
	}
}

// Screen is one entry of the navigation stack. Only the top screen
// receives key input.
type Screen interface {
	Kind() Kind
	ID() uuid.UUID
	Title() string
	// Update handles a key the shell did not consume.
	Update(msg tea.KeyMsg) (Transition, tea.Cmd)
	View(width, height int) string
}

// receiver is implemented by screens that handle non-key messages such as
// spinner ticks and action results.
type receiver interface {
	Receive(msg tea.Msg) tea.Cmd
}

// busyScreen is implemented by screens that can refuse input while work is
// in flight.
type busyScreen interface {
	Busy() bool
}

// sizedScreen is implemented by screens whose layout depends on the
// terminal size.
type sizedScreen interface {
	SetSize(width, height int)
}

// TransitionKind says what the shell does with the stack after an update.
type TransitionKind int

const (
	TransitionNone TransitionKind = iota
	TransitionPush
	TransitionPop
	TransitionHome
	TransitionQuit
)

// Transition is the result of a screen update.
type Transition struct {
	Kind   TransitionKind
	Screen Screen // set for TransitionPush
}

func stay() Transition { return Transition{Kind: TransitionNone} }

func push(s Screen) Transition { return Transition{Kind: TransitionPush, Screen: s} }

func pop() Transition { return Transition{Kind: TransitionPop} }

func home() Transition { return Transition{Kind: TransitionHome} }

func quit() Transition { return Transition{Kind: TransitionQuit} }
