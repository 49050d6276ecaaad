package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{in: "DEBUG", want: slog.LevelDebug},
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "Warning", want: slog.LevelWarn},
		{in: "warn", want: slog.LevelWarn},
		{in: "ERROR", want: slog.LevelError},
		{in: "CRITICAL", want: slog.LevelError},
		{in: "", want: slog.LevelInfo},
		{in: "verbose", want: slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewWithWriter_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("WARN", &buf)

	log.Info("hidden")
	log.Warn("shown", "key", "value")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "key=value")
}

func TestNewWithLevel_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.log")
	require.NoError(t, os.WriteFile(path, []byte("previous\n"), 0o644))

	log := NewWithLevel("debug", path)
	log.Debug("calculation done", "operation", "add")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "previous\n")
	assert.Contains(t, string(data), "msg=\"calculation done\"")
	assert.Contains(t, string(data), "operation=add")
}

func TestLogWriter_FallsBackToStderr(t *testing.T) {
	assert.Equal(t, os.Stderr, logWriter(""))
	assert.Equal(t, os.Stderr, logWriter(filepath.Join(t.TempDir(), "missing", "calc.log")))
}
