package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"", zapcore.InfoLevel},
		{"debug", zapcore.DebugLevel},
		{" WARN ", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, zapcore.WarnLevel)
	logger.Info("hidden")
	logger.Warn("shown", zap.String("id", "fed-001"))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "fed-001", entry["id"])
	assert.Contains(t, entry, "ts")
}

func TestNewFileCreatesDirAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "legtrack.log")

	logger, closeFn, err := NewFile(path, "info")
	require.NoError(t, err)
	logger.Info("first")
	require.NoError(t, closeFn())

	logger, closeFn, err = NewFile(path, "info")
	require.NoError(t, err)
	logger.Info("second")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	assert.Len(t, lines, 2)
}

func TestNewFileRejectsBadLevel(t *testing.T) {
	_, _, err := NewFile(filepath.Join(t.TempDir(), "x.log"), "chatty")
	assert.Error(t, err)
}
