package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
	}{
		{
			name:  "debug_level",
			level: slog.LevelDebug,
		},
		{
			name:  "info_level",
			level: slog.LevelInfo,
		},
		{
			name:  "error_level",
			level: slog.LevelError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.level)
			require.NotNil(t, logger)

			assert.True(t, logger.Enabled(context.Background(), tt.level))
		})
	}
}

func TestNewTestLogger(t *testing.T) {
	logger := NewTestLogger()
	require.NotNil(t, logger)

	ctx := context.Background()
	assert.False(t, logger.Enabled(ctx, slog.LevelDebug))
	assert.False(t, logger.Enabled(ctx, slog.LevelError))
}

func TestNewTestLogger_SuppressesOutput(t *testing.T) {
	var buf bytes.Buffer
	opts := &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}
	testLogger := slog.New(slog.NewTextHandler(&buf, opts))

	testLogger.Error("should not appear")

	assert.Empty(t, buf.String())
}
