package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevel_ToSlogLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    Level
		expected slog.Level
	}{
		{"error level", LevelError, slog.LevelError},
		{"warn level", LevelWarn, slog.LevelWarn},
		{"info level", LevelInfo, slog.LevelInfo},
		{"debug level", LevelDebug, slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.ToSlogLevel())
		})
	}
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelWarn)

	logger.Debug("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogger_WithContext(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelDebug).WithComponent("dispatcher").WithRequest("GET", "http://example.com")

	logger.Debug("sending")

	out := buf.String()
	assert.Contains(t, out, "component=dispatcher")
	assert.Contains(t, out, "method=GET")
	assert.Contains(t, out, "url=http://example.com")
	assert.Equal(t, LevelDebug, logger.Level())
}

func TestLogger_PrintfStyle(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelDebug)

	logger.Warnf("retrying %s\n", "request")
	logger.Errorf("failed: %d", 42)

	out := buf.String()
	assert.Contains(t, out, `msg="retrying request"`)
	assert.Contains(t, out, `msg="failed: 42"`)
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.NotPanics(t, func() {
		logger.Error("dropped")
	})
}
