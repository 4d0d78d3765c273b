package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := New(Options{Writer: buf})

	log = log.WithFields(map[string]any{"style": "error", "theme": "default.yaml"})
	log.Info("rendering styled output")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "rendering styled output", entry["message"])
	require.Equal(t, "error", entry["style"])
	require.Equal(t, "default.yaml", entry["theme"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugDroppedWithoutVerbose(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := New(Options{Writer: buf})

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerVerboseEnablesDebug(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := New(Options{Verbose: true, Writer: buf})

	log.Debug("rendering with style kind")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "rendering with style kind", entry["message"])
	require.Equal(t, "debug", entry["level"])
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := New(Options{Verbose: true, Writer: buf})

	log = log.WithFields(map[string]any{"style": "fg256"})
	log.Error(errors.New("index out of range"), "resolve failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "resolve failed", entry["message"])
	require.Equal(t, "fg256", entry["style"])
	require.Equal(t, "index out of range", entry["error"])
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.Nil(t, log.WithFields(map[string]any{"a": 1}))
	log.Debug("no-op")
	log.Info("no-op")
	log.Error(errors.New("x"), "no-op")
}
