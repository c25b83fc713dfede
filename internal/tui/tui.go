// Package tui implements the interactive BigHelp application: a stack of
// menu screens driven by Bubble Tea.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrInterrupted is returned by Run when the user interrupts the program.
var ErrInterrupted = errors.New("interrupted")

// Run shows the application until the user quits.
func Run(ctx context.Context, deps Deps, opts ...tea.ProgramOption) error {
	model := NewApp(ctx, deps)

	options := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(model, options...)
	finalModel, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
			return ErrInterrupted
		}
		return fmt.Errorf("bighelp tui failed: %w", err)
	}

	if app, ok := finalModel.(App); ok && app.Interrupted() {
		return ErrInterrupted
	}
	return nil
}
