package main

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/bighelp/internal/config"
	"github.com/felixgeelhaar/bighelp/internal/domain/tutorial"
	"github.com/felixgeelhaar/bighelp/internal/export"
	"github.com/felixgeelhaar/bighelp/internal/testutil"
)

func TestTopicsCmd_ListsCategories(t *testing.T) {
	out, err := executeCommand(t, "topics")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"CATEGORY", "NAME", "COMMANDS"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"basic", "Basic", "10"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"network", "Network", "4"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"system", "System", "8"}, strings.Fields(lines[3]))
}

func TestTopicsCmd_ListsOneCategory(t *testing.T) {
	out, err := executeCommand(t, "topics", "network")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "🌐 Network Commands\n"))
	for _, name := range []string{"ping", "wget", "curl", "ifconfig"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "Test if you can reach a website or computer")
}

func TestTopicsCmd_UnknownCategory(t *testing.T) {
	_, err := executeCommand(t, "topics", "games")

	var userErr *config.UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, config.ErrCodeTopicNotFound, userErr.Code)
	assert.Equal(t, "Run 'bighelp topics' to see the categories", userErr.Suggestion)
}

func TestShowCmd_PlainText(t *testing.T) {
	out, err := executeCommand(t, "show", "basic", "ls")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "✨ ls ✨\n"))
	assert.Contains(t, out, "Try this:")
	assert.Contains(t, out, "  $ ls -la")
	assert.Contains(t, out, "💡 Tip:")
	assert.Contains(t, out, "⚠️ Safety Note:")
}

func TestShowCmd_Markdown(t *testing.T) {
	out, err := executeCommand(t, "show", "system", "df", "--markdown")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "# 📚 df\n"))
	assert.Contains(t, out, "## Examples")
	assert.Contains(t, out, "`df -h`")
}

func TestShowCmd_UnknownCommand(t *testing.T) {
	_, err := executeCommand(t, "show", "network", "ls")

	var userErr *config.UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, config.ErrCodeTopicNotFound, userErr.Code)
	assert.Equal(t, "Run 'bighelp topics network' to see its commands", userErr.Suggestion)
}

func TestShowCmd_RequiresTwoArgs(t *testing.T) {
	_, err := executeCommand(t, "show", "basic")
	require.Error(t, err)
}

func TestExportCmd_JSON(t *testing.T) {
	out, err := executeCommand(t, "export", "--format", "json")
	require.NoError(t, err)

	var doc export.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Categories, 3)
	assert.Equal(t, tutorial.CategoryBasic, doc.Categories[0].ID)
	assert.Len(t, doc.Categories[2].Commands, 8)
}

func TestExportCmd_DefaultsToYAML(t *testing.T) {
	out, err := executeCommand(t, "export")
	require.NoError(t, err)
	assert.Contains(t, out, "categories:")
}

func TestExportCmd_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lessons.toml")

	out, err := executeCommand(t, "export", "-f", "toml", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported tutorials to "+path)

	testutil.AssertFileContains(t, path, "[[categories]]")
}

func TestExportCmd_UnknownFormat(t *testing.T) {
	_, err := executeCommand(t, "export", "--format", "xml")

	var userErr *config.UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, config.ErrCodeInvalidFlag, userErr.Code)
	assert.Equal(t, "Use one of: yaml, toml, json", userErr.Suggestion)
}

func TestSysinfoCmd(t *testing.T) {
	cfgPath := testutil.WriteTempFile(t, "config.yaml", "probe-timeout: 2s\n")

	out, err := executeCommand(t, "sysinfo", "--config", cfgPath)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "💻 System Information:\n"))
	assert.Contains(t, out, "🖥️ Operating System:")
	assert.Contains(t, out, "📟 Terminal:")
}

func TestSysinfoCmd_WritesLogFile(t *testing.T) {
	cfgPath := testutil.WriteTempFile(t, "config.yaml", "log-level: info\n")
	logPath := filepath.Join(t.TempDir(), "bighelp.log")

	_, err := executeCommand(t, "sysinfo", "--config", cfgPath, "--log-file", logPath, "-v")
	require.NoError(t, err)

	testutil.AssertFileContains(t, logPath, "[DEBUG] system info platform=")
}

func TestSysinfoCmd_MissingConfig(t *testing.T) {
	_, err := executeCommand(t, "sysinfo", "--config", filepath.Join(t.TempDir(), "nope.yaml"))

	var userErr *config.UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, config.ErrCodeConfigNotFound, userErr.Code)
}

func TestSysinfoCmd_NegativeTimeout(t *testing.T) {
	cfgPath := testutil.WriteTempFile(t, "config.toml", "theme = \"light\"\n")

	_, err := executeCommand(t, "sysinfo", "--config", cfgPath, "--timeout=-1s")

	var userErr *config.UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, config.ErrCodeInvalidFlag, userErr.Code)
}

func TestVersionCmd(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "bighelp dev (development build)")
	assert.Contains(t, out, "  commit: none")
	assert.Contains(t, out, "  built:  unknown")
}

func TestDescribeVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"1.2.3", "1.2.3"},
		{"v1.2.3", "1.2.3"},
		{"v1.2", "1.2.0"},
		{"1.0.0-rc.1", "1.0.0-rc.1 (pre-release)"},
		{"dev", "dev (development build)"},
		{"", " (development build)"},
		{"abc123", "abc123 (development build)"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, describeVersion(tt.in))
		})
	}
}

func TestCompleteTopicArgs(t *testing.T) {
	t.Parallel()

	cats, directive := completeTopicArgs(nil, nil, "")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	require.Len(t, cats, 3)
	assert.True(t, strings.HasPrefix(cats[0], "basic\t"))

	cmds, _ := completeTopicArgs(nil, []string{"network"}, "")
	require.Len(t, cmds, 4)
	assert.True(t, strings.HasPrefix(cmds[0], "ping\t"))

	none, _ := completeTopicArgs(nil, []string{"games"}, "")
	assert.Empty(t, none)

	extra, _ := completeTopicArgs(nil, []string{"basic", "ls"}, "")
	assert.Empty(t, extra)
}
