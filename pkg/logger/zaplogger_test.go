package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestLogger_WritesStructuredEntries(t *testing.T) {
	var buf bytes.Buffer
	l := NewZapLogger("test-app", &buf)
	l.SetEnv("test")

	l.Info("session created", map[string]any{"session": "abc"})
	l.Error(errors.New("upstream down"), map[string]any{"provider": "openweathermap"})

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)

	assert.Equal(t, "info", entries[0]["level"])
	assert.Equal(t, "session created", entries[0]["msg"])
	assert.Equal(t, "abc", entries[0]["session"])
	assert.Equal(t, "test-app", entries[0]["app_name"])
	assert.Equal(t, "test", entries[0]["app_zone"])
	assert.Contains(t, entries[0]["caller_func"], "TestLogger_WritesStructuredEntries")
	assert.NotEmpty(t, entries[0]["timestamp"])

	assert.Equal(t, "error", entries[1]["level"])
	assert.Equal(t, "upstream down", entries[1]["error"])
	assert.Equal(t, "openweathermap", entries[1]["provider"])
	assert.NotEmpty(t, entries[1]["stack"])
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewZapLogger("test-app", &buf)

	require.NoError(t, l.SetLevel("warn"))
	l.Debug("hidden")
	l.Info("hidden")
	l.Warning("shown")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["msg"])

	assert.Error(t, l.SetLevel("loud"))
}

func TestLogger_Log(t *testing.T) {
	var buf bytes.Buffer
	l := NewZapLogger("test-app", &buf)

	require.NoError(t, l.Log("method", "GET", 42, "dropped key", "dangling"))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "GET", entries[0]["method"])
	assert.Equal(t, "dropped key", entries[0]["invalid-key"])
	_, ok := entries[0]["dangling"]
	assert.False(t, ok)
}
