package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"Warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestNewStructuredLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, "jenkins-helper", "v1.2.3", "info", true)

	logger.Debug("hidden")
	logger.Info("inventory written", "nodes", 42)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "inventory written", entry["msg"])
	assert.Equal(t, "jenkins-helper", entry["module"])
	assert.Equal(t, "v1.2.3", entry["version"])
	assert.Equal(t, float64(42), entry["nodes"])
	assert.NotContains(t, entry, "source")
}

func TestNewStructuredLoggerDebugAddsSource(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, "m", "v", "debug", false)

	logger.Debug("classifying")
	assert.Contains(t, buf.String(), "msg=classifying")
	assert.Contains(t, buf.String(), "source=")
}
