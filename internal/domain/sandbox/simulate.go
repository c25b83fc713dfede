// Package sandbox decides what the "try it" terminal shows for an example
// command. Nothing in this package starts a process.
package sandbox

import (
	"fmt"
	"strings"
)

// Verdict classifies a simulated command.
type Verdict int

const (
	// VerdictRefused means the command matched the deny-list.
	VerdictRefused Verdict = iota
	// VerdictSimulated means canned output exists for the command.
	VerdictSimulated
	// VerdictGeneric means the command is allowed but has no canned output.
	VerdictGeneric
)

// String returns the verdict name.
func (v Verdict) String() string {
	switch v {
	case VerdictRefused:
		return "refused"
	case VerdictSimulated:
		return "simulated"
	case VerdictGeneric:
		return "generic"
	default:
		return "unknown"
	}
}

// Outcome is what the terminal screen displays for a command.
type Outcome struct {
	Command string
	Verdict Verdict
	Output  string
}

// DenyPrefixes are command prefixes that are never run, even in simulation.
var DenyPrefixes = []string{"rm", "sudo", "reboot", "shutdown"}

// cannedOutput maps exact commands to fake output.
var cannedOutput = map[string]string{
	"whoami": "student",
	"pwd":    "/home/student",
	"date":   "Mon Dec 25 10:30:00 EST 2023",
}

const lsOutput = "Documents  Pictures  Music  Videos  Downloads"

// IsDenied reports whether command starts with a deny-listed prefix.
func IsDenied(command string) bool {
	for _, p := range DenyPrefixes {
		if strings.HasPrefix(command, p) {
			return true
		}
	}
	return false
}

// Simulate returns the outcome for command.
func Simulate(command string) Outcome {
	if IsDenied(command) {
		return Outcome{
			Command: command,
			Verdict: VerdictRefused,
			Output:  RefusalMessage(command),
		}
	}
	if out, ok := cannedOutput[command]; ok {
		return Outcome{Command: command, Verdict: VerdictSimulated, Output: out}
	}
	if strings.HasPrefix(command, "ls") {
		return Outcome{Command: command, Verdict: VerdictSimulated, Output: lsOutput}
	}
	return Outcome{
		Command: command,
		Verdict: VerdictGeneric,
		Output:  fmt.Sprintf("✅ Command '%s' would run here safely", command),
	}
}

// RefusalMessage is shown for deny-listed commands.
func RefusalMessage(command string) string {
	return fmt.Sprintf("🚫 For safety, '%s' is not executed in demo mode", command)
}
