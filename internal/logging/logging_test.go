package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/RehahnC/shared-rexdb-fastapi-sql/internal/config"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.Log{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("HTTP Response", zap.Int("status", 200))
	require.NoError(t, logger.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "HTTP Response", entry["msg"])
	assert.Equal(t, float64(200), entry["status"])
	assert.Contains(t, entry, "caller")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.Log{Level: "debug", Format: "console"}, &buf)
	require.NoError(t, err)

	logger.Debug("executing statement", zap.Int("statement_bytes", 8))
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "executing statement")
	assert.Contains(t, out, `"statement_bytes": 8`)
}

func TestNew_ErrorsCarryNoStacktrace(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.Log{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)

	logger.Error("MySQL error: Error 1146: Table 'app.missing' doesn't exist", zap.String("kind", "BackendError"))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.NotContains(t, entry, "stacktrace")
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sqlgate.log")

	var buf bytes.Buffer
	logger, err := New(config.Log{Level: "warn", Format: "console", File: path}, &buf)
	require.NoError(t, err)

	logger.Info("not written")
	logger.Warn("release connection", zap.String("backend", "MySQL"))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"release connection"`)
	assert.NotContains(t, string(data), "not written")
	assert.Contains(t, buf.String(), "release connection")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(config.Log{Level: "loud", Format: "json"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")
}
