package mocks

import (
	"context"
	"errors"
	"os/exec"
	"sync"
	"testing"
	"time"

	"github.com/felixgeelhaar/bighelp/internal/ports"
)

func TestCommandRunner_AddResult(t *testing.T) {
	runner := NewCommandRunner()
	runner.AddResult("df", []string{"-h"}, ports.CommandResult{
		ExitCode: 0,
		Stdout:   "Filesystem Size Used Avail Use% Mounted on",
	})

	result, err := runner.Run(context.Background(), "df", "-h")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Stdout != "Filesystem Size Used Avail Use% Mounted on" {
		t.Errorf("Stdout = %q", result.Stdout)
	}
}

func TestCommandRunner_NotFound(t *testing.T) {
	runner := NewCommandRunner()

	_, err := runner.Run(context.Background(), "unknown", "command")
	if err == nil {
		t.Error("Run() should return error for unregistered command")
	}
}

func TestCommandRunner_RecordsCalls(t *testing.T) {
	runner := NewCommandRunner()
	runner.AddResult("ping", []string{"-c", "1", "google.com"}, ports.CommandResult{})
	runner.AddResult("ping", []string{"-c", "1", "github.com"}, ports.CommandResult{})

	_, _ = runner.Run(context.Background(), "ping", "-c", "1", "google.com")
	_, _ = runner.Run(context.Background(), "ping", "-c", "1", "github.com")

	calls := runner.Calls()
	if len(calls) != 2 {
		t.Fatalf("Calls() len = %d, want 2", len(calls))
	}
	if calls[1].Args[2] != "github.com" {
		t.Errorf("calls[1].Args[2] = %q, want %q", calls[1].Args[2], "github.com")
	}
}

func TestCommandRunner_AddError(t *testing.T) {
	runner := NewCommandRunner()
	want := errors.New("boom")
	runner.AddError("ip", []string{"addr", "show"}, want)

	result, err := runner.Run(context.Background(), "ip", "addr", "show")
	if !errors.Is(err, want) {
		t.Errorf("Run() error = %v, want %v", err, want)
	}
	if result.ExitCode != -1 {
		t.Errorf("ExitCode = %d, want -1", result.ExitCode)
	}
}

func TestCommandRunner_AddHang(t *testing.T) {
	runner := NewCommandRunner()
	runner.AddHang("sleep", []string{"10"})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := runner.Run(ctx, "sleep", "10")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() error = %v, want deadline exceeded", err)
	}
}

func TestCommandRunner_LookPath(t *testing.T) {
	runner := NewCommandRunner()
	runner.Install("apt")

	path, err := runner.LookPath("apt")
	if err != nil || path != "/usr/bin/apt" {
		t.Errorf("LookPath(apt) = %q, %v", path, err)
	}

	_, err = runner.LookPath("pacman")
	if !errors.Is(err, exec.ErrNotFound) {
		t.Errorf("LookPath(pacman) error = %v, want exec.ErrNotFound", err)
	}
}

func TestCommandRunner_Reset(t *testing.T) {
	runner := NewCommandRunner()
	runner.AddResult("ps", nil, ports.CommandResult{})
	runner.Install("ps")
	_, _ = runner.Run(context.Background(), "ps")

	runner.Reset()

	if len(runner.Calls()) != 0 {
		t.Error("Reset() should clear calls")
	}
	if _, err := runner.LookPath("ps"); err == nil {
		t.Error("Reset() should clear installed executables")
	}
}

func TestCommandRunner_Concurrent(t *testing.T) {
	runner := NewCommandRunner()
	runner.AddResult("whoami", nil, ports.CommandResult{Stdout: "student"})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = runner.Run(context.Background(), "whoami")
		}()
	}
	wg.Wait()

	if got := len(runner.Calls()); got != 20 {
		t.Errorf("Calls() len = %d, want 20", got)
	}
}
