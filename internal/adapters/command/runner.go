// Package command runs host tools for the system probe.
package command

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/felixgeelhaar/bighelp/internal/ports"
)

// waitDelay bounds how long Run waits for output pipes after the process
// was killed. Grandchildren that inherited the pipes would otherwise hold
// Run open until they exit.
const waitDelay = 100 * time.Millisecond

// RealRunner starts real processes and resolves executables on PATH.
type RealRunner struct {
	env []string
}

// NewRealRunner creates a RealRunner that inherits the current environment.
func NewRealRunner() *RealRunner {
	return &RealRunner{}
}

// WithEnv returns a runner whose processes see only env (KEY=VALUE pairs).
func (r *RealRunner) WithEnv(env []string) *RealRunner {
	return &RealRunner{env: append([]string(nil), env...)}
}

// Run executes command and captures stdout and stderr separately.
// When ctx expires the process and everything it started is killed and the
// result carries exit code -1.
func (r *RealRunner) Run(ctx context.Context, command string, args ...string) (ports.CommandResult, error) {
	cmd := exec.CommandContext(ctx, command, args...)
	killProcessGroup(cmd)
	cmd.WaitDelay = waitDelay
	if r.env != nil {
		cmd.Env = r.env
	}

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := ports.CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}
	result.ExitCode = -1
	return result, err
}

// LookPath resolves name on the executable search path.
func (r *RealRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

var (
	_ ports.CommandRunner      = (*RealRunner)(nil)
	_ ports.ExecutableResolver = (*RealRunner)(nil)
)
