// Package mocks provides test doubles for the host ports.
package mocks

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"

	"github.com/felixgeelhaar/bighelp/internal/ports"
)

// CommandRunner is a thread-safe test double for ports.CommandRunner and
// ports.ExecutableResolver.
type CommandRunner struct {
	mu        sync.RWMutex
	results   map[string]ports.CommandResult
	errors    map[string]error
	hangs     map[string]bool
	installed map[string]bool
	calls     []ports.CommandCall
}

// NewCommandRunner creates a new CommandRunner mock.
func NewCommandRunner() *CommandRunner {
	return &CommandRunner{
		results:   make(map[string]ports.CommandResult),
		errors:    make(map[string]error),
		hangs:     make(map[string]bool),
		installed: make(map[string]bool),
		calls:     make([]ports.CommandCall, 0),
	}
}

// AddResult registers an expected command and its result.
func (m *CommandRunner) AddResult(command string, args []string, result ports.CommandResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[buildKey(command, args)] = result
}

// AddError registers an expected command that fails to start.
func (m *CommandRunner) AddError(command string, args []string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[buildKey(command, args)] = err
}

// AddHang registers a command that blocks until its context is done.
func (m *CommandRunner) AddHang(command string, args []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hangs[buildKey(command, args)] = true
}

// Install marks executables as present for LookPath.
func (m *CommandRunner) Install(names ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, n := range names {
		m.installed[n] = true
	}
}

// Run executes a mock command.
func (m *CommandRunner) Run(ctx context.Context, command string, args ...string) (ports.CommandResult, error) {
	m.mu.Lock()
	m.calls = append(m.calls, ports.CommandCall{
		Command: command,
		Args:    args,
	})
	m.mu.Unlock()

	key := buildKey(command, args)

	m.mu.RLock()
	hang := m.hangs[key]
	err, hasErr := m.errors[key]
	result, hasResult := m.results[key]
	m.mu.RUnlock()

	if hang {
		<-ctx.Done()
		return ports.CommandResult{ExitCode: -1}, ctx.Err()
	}
	if hasErr {
		return ports.CommandResult{ExitCode: -1}, err
	}
	if hasResult {
		return result, nil
	}

	return ports.CommandResult{}, fmt.Errorf("no mock result for command: %s %v", command, args)
}

// LookPath reports installed executables under a fake /usr/bin.
func (m *CommandRunner) LookPath(name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.installed[name] {
		return "/usr/bin/" + name, nil
	}
	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}

// Calls returns all recorded command invocations.
func (m *CommandRunner) Calls() []ports.CommandCall {
	m.mu.RLock()
	defer m.mu.RUnlock()

	calls := make([]ports.CommandCall, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// Reset clears all registered behavior and recorded calls.
func (m *CommandRunner) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = make(map[string]ports.CommandResult)
	m.errors = make(map[string]error)
	m.hangs = make(map[string]bool)
	m.installed = make(map[string]bool)
	m.calls = make([]ports.CommandCall, 0)
}

// buildKey creates a unique key for a command and its arguments.
func buildKey(command string, args []string) string {
	return command + ":" + strings.Join(args, ":")
}

var (
	_ ports.CommandRunner      = (*CommandRunner)(nil)
	_ ports.ExecutableResolver = (*CommandRunner)(nil)
)
