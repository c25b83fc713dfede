package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/felixgeelhaar/bighelp/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopLogger(t *testing.T) {
	t.Parallel()

	logger := NewNopLogger()
	ctx := context.Background()

	logger.Debug(ctx, "debug")
	logger.Info(ctx, "info")
	logger.Warn(ctx, "warn")
	logger.Error(ctx, "error")

	assert.Same(t, logger, logger.With(ports.F("k", "v")))
	assert.Equal(t, ports.LevelInfo, logger.Level())

	logger.SetLevel(ports.LevelDebug)
	assert.Equal(t, ports.LevelDebug, logger.Level())
}

func TestConsoleLogger_TextOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewConsoleLogger(
		WithOutput(&buf),
		WithTimestamp(false),
	)

	logger.Info(context.Background(), "screen pushed", ports.F("screen", "about"), ports.F("depth", 2))

	assert.Equal(t, "[INFO] screen pushed screen=about depth=2\n", buf.String())
}

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewConsoleLogger(
		WithOutput(&buf),
		WithLevel(ports.LevelWarn),
		WithTimestamp(false),
		WithLevelLabel(false),
	)
	ctx := context.Background()

	logger.Debug(ctx, "hidden debug")
	logger.Info(ctx, "hidden info")
	logger.Warn(ctx, "shown warn")
	logger.Error(ctx, "shown error")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown warn")
	assert.Contains(t, out, "shown error")
}

func TestConsoleLogger_JSONOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewConsoleLogger(
		WithOutput(&buf),
		WithJSONFormat(true),
		WithLevel(ports.LevelDebug),
	)
	logger.now = func() time.Time { return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC) }

	logger.Debug(context.Background(), "probe finished", ports.F("tool", "df"), ports.F("err", errors.New("boom")))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "probe finished", entry["msg"])
	assert.Equal(t, "df", entry["tool"])
	assert.Equal(t, "boom", entry["err"])
	assert.Equal(t, "2024-01-01T12:00:00Z", entry["time"])
}

func TestConsoleLogger_WithSharesOutputAndLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := NewConsoleLogger(WithOutput(&buf), WithTimestamp(false), WithLevelLabel(false))
	child := base.With(ports.F("component", "probe"))

	base.SetLevel(ports.LevelError)
	child.Info(context.Background(), "dropped")
	child.Error(context.Background(), "kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, "kept component=probe", lines[0])
	assert.Equal(t, ports.LevelError, child.Level())
}
