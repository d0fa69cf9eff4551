package logutil_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/andyle182810/liquidplanner/logutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseZerologLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected zerolog.Level
	}{
		{name: "trace level", input: "trace", expected: zerolog.TraceLevel},
		{name: "debug level", input: "debug", expected: zerolog.DebugLevel},
		{name: "info level", input: "info", expected: zerolog.InfoLevel},
		{name: "warn level", input: "warn", expected: zerolog.WarnLevel},
		{name: "error level", input: "error", expected: zerolog.ErrorLevel},
		{name: "fatal level", input: "fatal", expected: zerolog.FatalLevel},
		{name: "panic level", input: "panic", expected: zerolog.PanicLevel},
		{name: "disabled", input: "off", expected: zerolog.Disabled},
		{name: "mixed case", input: " Debug ", expected: zerolog.DebugLevel},
		{name: "unknown level defaults to info", input: "unknown", expected: zerolog.InfoLevel},
		{name: "empty string defaults to info", input: "", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := logutil.ParseZerologLevel(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestNew_JSONFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logutil.New("warn", logutil.FormatJSON, &buf)
	logger.Info().Msg("hidden")
	logger.Warn().Int("wait_seconds", 12).Msg("API throttling in effect")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "API throttling in effect", entry["message"])
	assert.InDelta(t, 12, entry["wait_seconds"], 0)
	assert.Contains(t, entry, "time")
}

func TestNew_ConsoleFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logutil.New("debug", logutil.FormatConsole, &buf)
	logger.Debug().Str("method", "GET").Msg("sending request")

	out := buf.String()
	assert.Contains(t, out, "DBG")
	assert.Contains(t, out, "sending request")
	assert.Contains(t, out, "method=GET")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}
