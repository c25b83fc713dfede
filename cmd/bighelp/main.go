// Package main provides the entry point for the bighelp CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/bighelp/internal/tui"
)

const (
	goodbyeMessage = "Goodbye! Hope you learned something new today!"
	oopsPrefix     = "Oops! Something went wrong: "
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := Execute(ctx)
	stop()
	os.Exit(exitCode(os.Stdout, os.Stderr, err))
}

// exitCode reports the outcome of a run and returns the process exit code.
// An interrupt is a normal way to leave the tutorial.
func exitCode(stdout, stderr io.Writer, err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, tui.ErrInterrupted):
		_, _ = fmt.Fprintln(stdout, goodbyeMessage)
		return 0
	default:
		_, _ = fmt.Fprintf(stderr, "%s%s\n", oopsPrefix, formatError(err))
		return 1
	}
}
