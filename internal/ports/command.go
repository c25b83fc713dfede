// Package ports defines interfaces for the host collaborators BigHelp talks to.
package ports

import (
	"context"
)

// CommandResult is the captured outcome of an external process.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success returns true if the process exited with code 0.
func (r CommandResult) Success() bool {
	return r.ExitCode == 0
}

// CommandCall records a command invocation.
type CommandCall struct {
	Command string
	Args    []string
}

// CommandRunner starts host processes.
//
// A non-zero exit is reported through CommandResult.ExitCode; the error is
// reserved for processes that could not be started at all.
type CommandRunner interface {
	Run(ctx context.Context, command string, args ...string) (CommandResult, error)
}

// ExecutableResolver resolves a program name on the executable search path.
type ExecutableResolver interface {
	LookPath(name string) (string, error)
}
