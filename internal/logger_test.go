package internal

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerProdEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "prod", "info")

	logger.Info("server started", slog.String("address", ":3000"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "server started", entry["msg"])
	assert.Equal(t, ":3000", entry["address"])
	assert.NotEmpty(t, entry["time"])
}

func TestNewLoggerDevEmitsText(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "dev", "debug")

	logger.Debug("migrations completed")

	out := buf.String()
	assert.Contains(t, out, "migrations completed")
	assert.False(t, json.Valid(buf.Bytes()), "dev output should not be JSON")
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "dev", "error")

	logger.Info("dropped")
	assert.Empty(t, buf.String())

	logger.Error("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestParseLevelDefaultsToInfo(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
}
