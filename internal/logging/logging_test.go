package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jwulff/nexa/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWithoutFileIsNop(t *testing.T) {
	log, closeFn, err := New(config.LogConfig{})
	require.NoError(t, err)
	log.Info("dropped")
	assert.NoError(t, closeFn())
}

func TestNewWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "nexa.log")
	log, closeFn, err := New(config.LogConfig{File: path, Level: "info", MaxSizeMB: 1})
	require.NoError(t, err)

	log.Named("backend").Info("request done", zap.Int("status", 200))
	log.Debug("below level")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "request done", entry["message"])
	assert.Equal(t, "backend", entry["logger"])
	assert.EqualValues(t, 200, entry["status"])
	assert.Contains(t, entry, "timestamp")
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, _, err := New(config.LogConfig{File: filepath.Join(t.TempDir(), "x.log"), Level: "loud"})
	assert.Error(t, err)
}
