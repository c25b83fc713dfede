package sandbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestSimulate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		command string
		verdict Verdict
		output  string
	}{
		{"whoami", VerdictSimulated, "student"},
		{"pwd", VerdictSimulated, "/home/student"},
		{"date", VerdictSimulated, "Mon Dec 25 10:30:00 EST 2023"},
		{"ls", VerdictSimulated, "Documents  Pictures  Music  Videos  Downloads"},
		{"ls -la", VerdictSimulated, "Documents  Pictures  Music  Videos  Downloads"},
		{"date +%Y-%m-%d", VerdictGeneric, "✅ Command 'date +%Y-%m-%d' would run here safely"},
		{"ping google.com", VerdictGeneric, "✅ Command 'ping google.com' would run here safely"},
		{"rmdir EmptyFolder", VerdictRefused, "🚫 For safety, 'rmdir EmptyFolder' is not executed in demo mode"},
		{"sudo reboot", VerdictRefused, "🚫 For safety, 'sudo reboot' is not executed in demo mode"},
		{"shutdown now", VerdictRefused, "🚫 For safety, 'shutdown now' is not executed in demo mode"},
		{"reboot", VerdictRefused, "🚫 For safety, 'reboot' is not executed in demo mode"},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			t.Parallel()

			got := Simulate(tt.command)
			assert.Equal(t, tt.command, got.Command)
			assert.Equal(t, tt.verdict, got.Verdict, got.Verdict.String())
			assert.Equal(t, tt.output, got.Output)
		})
	}
}

func TestSimulate_DeniedPrefixesAlwaysRefused(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		prefix := rapid.SampledFrom(DenyPrefixes).Draw(t, "prefix")
		rest := rapid.String().Draw(t, "rest")
		command := prefix + rest

		got := Simulate(command)
		if got.Verdict != VerdictRefused {
			t.Fatalf("Simulate(%q) verdict = %v, want refused", command, got.Verdict)
		}
		if got.Output != RefusalMessage(command) {
			t.Fatalf("Simulate(%q) output = %q", command, got.Output)
		}
	})
}

func TestVerdict_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "refused", VerdictRefused.String())
	assert.Equal(t, "simulated", VerdictSimulated.String())
	assert.Equal(t, "generic", VerdictGeneric.String())
	assert.Equal(t, "unknown", Verdict(42).String())
}
