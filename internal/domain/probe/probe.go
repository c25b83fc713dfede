// Package probe runs short-lived host tools on behalf of the action screens
// and answers questions about the host. Failures are reported as text,
// never as errors.
package probe

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/felixgeelhaar/bighelp/internal/domain/platform"
	"github.com/felixgeelhaar/bighelp/internal/ports"
)

// DefaultTimeout bounds a probe call when no timeout is configured.
const DefaultTimeout = 5 * time.Second

// TimedOutMessage is the output of a call that exceeded its timeout.
const TimedOutMessage = "Command timed out"

// Result is the outcome of a probe call.
type Result struct {
	Success bool
	Output  string
}

// Probe wraps the host collaborators used by the action handlers.
type Probe struct {
	runner   ports.CommandRunner
	resolver ports.ExecutableResolver
	detector *platform.Detector
	timeout  time.Duration
	logger   ports.Logger
}

// Option configures a Probe.
type Option func(*Probe)

// WithTimeout sets the timeout used when RunExternal is given none.
func WithTimeout(d time.Duration) Option {
	return func(p *Probe) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithDetector replaces the host detector.
func WithDetector(d *platform.Detector) Option {
	return func(p *Probe) {
		p.detector = d
	}
}

// WithLogger sets the logger for probe calls, which are logged at debug level.
func WithLogger(l ports.Logger) Option {
	return func(p *Probe) {
		p.logger = l
	}
}

// New creates a Probe over runner and resolver.
func New(runner ports.CommandRunner, resolver ports.ExecutableResolver, opts ...Option) *Probe {
	p := &Probe{
		runner:   runner,
		resolver: resolver,
		detector: platform.NewDetector(),
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Timeout returns the configured default timeout.
func (p *Probe) Timeout() time.Duration {
	return p.timeout
}

// RunExternal runs argv and waits at most timeout (the configured default
// when timeout <= 0).
func (p *Probe) RunExternal(ctx context.Context, argv []string, timeout time.Duration) Result {
	if len(argv) == 0 {
		return Result{Output: "Error running command: no command given"}
	}
	if timeout <= 0 {
		timeout = p.timeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	res, err := p.runner.Run(ctx, argv[0], argv[1:]...)
	result := interpret(ctx, argv[0], res, err)

	if p.logger == nil {
		return result
	}
	p.logger.Debug(ctx, "probe call",
		ports.F("argv", strings.Join(argv, " ")),
		ports.F("success", result.Success),
		ports.F("exit_code", res.ExitCode),
		ports.F("duration", time.Since(start).String()),
	)
	return result
}

func interpret(ctx context.Context, name string, res ports.CommandResult, err error) Result {
	// A killed process reports a non-zero exit; the deadline decides.
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return Result{Output: TimedOutMessage}
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Result{Output: TimedOutMessage}
		}
		if isCommandNotFound(err) {
			return Result{Output: fmt.Sprintf("Error running command: %s: command not found", name)}
		}
		return Result{Output: fmt.Sprintf("Error running command: %v", err)}
	}
	if res.Success() {
		return Result{Success: true, Output: res.Stdout}
	}
	if res.Stderr != "" {
		return Result{Output: res.Stderr}
	}
	return Result{Output: fmt.Sprintf("command exited with status %d", res.ExitCode)}
}

// isCommandNotFound reports whether err indicates a missing executable.
func isCommandNotFound(err error) bool {
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	var pathErr *os.PathError
	if errors.As(err, &pathErr) && errors.Is(pathErr.Err, os.ErrNotExist) {
		return true
	}
	return false
}

// CommandExists reports whether name resolves on the executable search path.
func (p *Probe) CommandExists(name string) bool {
	if name == "" {
		return false
	}
	_, err := p.resolver.LookPath(name)
	return err == nil
}

// SystemInfo describes the host.
func (p *Probe) SystemInfo() platform.Info {
	return p.detector.Detect()
}
