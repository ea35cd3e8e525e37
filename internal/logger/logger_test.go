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

func decodeLine(t *testing.T, buf *bytes.Buffer) logEntry {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	return entry
}

func TestInfoWritesJSONLine(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Info("theme loaded")

	entry := decodeLine(t, buf)
	require.Equal(t, "theme loaded", entry["message"])
	require.Equal(t, "info", entry["level"])
	require.Contains(t, entry, "time")
}

func TestLevelFiltersLowerEntries(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "warn", Writer: buf})
	require.NoError(t, err)

	log.Info("dropped")
	require.Empty(t, strings.TrimSpace(buf.String()))

	log.Error(nil, "kept")
	require.Contains(t, buf.String(), "kept")
}

func TestForStampsComponent(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.For("preview").Info().Str("path", "theme.yaml").Msg("serving gallery")

	entry := decodeLine(t, buf)
	require.Equal(t, "serving gallery", entry["message"])
	require.Equal(t, "preview", entry["component"])
	require.Equal(t, "theme.yaml", entry["path"])
}

func TestErrorAttachesCause(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.Error(errors.New("boom"), "reload failed")

	entry := decodeLine(t, buf)
	require.Equal(t, "reload failed", entry["message"])
	require.Equal(t, "boom", entry["error"])
}

func TestUnknownLevelRejected(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "shouting"})
	require.Error(t, err)
}

func TestNilReceiverIsSilent(t *testing.T) {
	t.Parallel()

	var log *Logger
	log.Info("dropped")
	log.Error(errors.New("boom"), "dropped")
	log.Zerolog().Info().Msg("dropped")
	log.For("preview").Info().Msg("dropped")
}
