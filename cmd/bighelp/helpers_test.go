package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/felixgeelhaar/bighelp/internal/export"
)

// executeCommand runs rootCmd with args and returns everything it printed.
// Commands share package-level flag variables, so callers must not run in
// parallel.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(resetFlags)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func resetFlags() {
	cfgFile = ""
	verbose = false
	logFile = ""
	probeTimeout = 0
	showMarkdown = false
	exportFormat = string(export.FormatYAML)
	exportOutput = ""
	rootCmd.SetOut(nil)
	rootCmd.SetErr(nil)
	rootCmd.SetArgs(nil)
}
