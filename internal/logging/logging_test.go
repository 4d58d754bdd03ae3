package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	config := Config{
		Level:  LevelDebug,
		Format: "json",
		Output: &buf,
	}

	logger := NewLogger(config)
	require.NotNil(t, logger)

	logger.Info("test message", "key", "value")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "test message", record["msg"])
	assert.Equal(t, "value", record["key"])
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, LevelInfo, config.Level)
	assert.Equal(t, "text", config.Format)
	assert.NotNil(t, config.Output)
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  slog.Level
	}{
		{LevelDebug, slog.LevelDebug},
		{LevelInfo, slog.LevelInfo},
		{LevelWarn, slog.LevelWarn},
		{LevelError, slog.LevelError},
		{"DEBUG", slog.LevelDebug},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.SlogLevel())
		})
	}
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		level    LogLevel
		logFunc  func(logger *slog.Logger, msg string)
		expected bool
	}{
		{LevelDebug, func(l *slog.Logger, msg string) { l.Debug(msg) }, true},
		{LevelInfo, func(l *slog.Logger, msg string) { l.Debug(msg) }, false},
		{LevelInfo, func(l *slog.Logger, msg string) { l.Info(msg) }, true},
		{LevelWarn, func(l *slog.Logger, msg string) { l.Info(msg) }, false},
		{LevelError, func(l *slog.Logger, msg string) { l.Error(msg) }, true},
	}

	for _, test := range tests {
		var buf bytes.Buffer
		logger := NewLogger(Config{Level: test.level, Format: "text", Output: &buf})
		test.logFunc(logger, "test message")

		containsMessage := strings.Contains(buf.String(), "test message")
		assert.Equal(t, test.expected, containsMessage, "level %s", test.level)
	}
}

func TestWithRun(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: LevelInfo, Format: "text", Output: &buf})

	runLogger, runID := WithRun(logger)
	runLogger.Info("checking fixtures")

	require.Len(t, runID, 36)
	assert.Contains(t, buf.String(), "run_id="+runID)

	_, otherID := WithRun(logger)
	assert.NotEqual(t, runID, otherID)
}

func TestWithFixtureAndTarget(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: LevelInfo, Format: "text", Output: &buf})

	WithFixture(logger, "datafile", "tests/smoke/data/datafile.txt").Info("fixture present")
	WithTarget(logger, "//tests/smoke:app").Info("building")
	WithOperation(logger, "fetch").Info("starting operation")

	output := buf.String()
	assert.Contains(t, output, "fixture=datafile")
	assert.Contains(t, output, "path=tests/smoke/data/datafile.txt")
	assert.Contains(t, output, "target=//tests/smoke:app")
	assert.Contains(t, output, "operation=fetch")
}
