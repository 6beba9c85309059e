package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":    slog.LevelDebug,
		" DEBUG ":  slog.LevelDebug,
		"warn":     slog.LevelWarn,
		"warning":  slog.LevelWarn,
		"error":    slog.LevelError,
		"info":     slog.LevelInfo,
		"":         slog.LevelInfo,
		"verbose?": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLogLevel(in), in)
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "navmenu", "v1.2.3", "info", "")

	log.Debug("hidden")
	log.Info("rendered", "menu", "main")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "rendered", rec["msg"])
	assert.Equal(t, "navmenu", rec["module"])
	assert.Equal(t, "v1.2.3", rec["version"])
	assert.Equal(t, "main", rec["menu"])
	assert.NotContains(t, rec, "source")
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "navmenu", "dev", "debug", "TEXT")

	log.Debug("activating item", "item", "home")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "item=home")
	assert.Contains(t, out, "source=")
}
