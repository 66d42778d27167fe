package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jwulff/nexa/internal/speech"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "http://127.0.0.1:5000", cfg.Server.URL)
	assert.Equal(t, 60*time.Second, cfg.Server.Timeout)
	assert.True(t, cfg.Speech.Enabled)
	assert.Equal(t, speech.DefaultSocketPath(), cfg.Speech.Socket)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Server, cfg.Server)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yml")

	original := DefaultConfig()
	original.Server.URL = "https://nexa.example.com/api"
	original.Server.Timeout = 15 * time.Second
	original.Speech.Enabled = false
	original.Speech.Locale = "fr-FR"
	original.Log.Level = "debug"
	original.Log.MaxBackups = 2

	require.NoError(t, original.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  url: http://10.0.0.2:8080\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.2:8080", cfg.Server.URL)
	assert.Equal(t, 60*time.Second, cfg.Server.Timeout)
	assert.True(t, cfg.Speech.Enabled)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("NEXA_SERVER_URL", "http://override:9000")
	t.Setenv("NEXA_SERVER_TIMEOUT", "5s")
	t.Setenv("NEXA_SPEECH_ENABLED", "false")
	t.Setenv("NEXA_LOG_MAX_SIZE_MB", "42")

	cfg, err := Load(filepath.Join(t.TempDir(), "none.yml"))
	require.NoError(t, err)
	assert.Equal(t, "http://override:9000", cfg.Server.URL)
	assert.Equal(t, 5*time.Second, cfg.Server.Timeout)
	assert.False(t, cfg.Speech.Enabled)
	assert.Equal(t, 42, cfg.Log.MaxSizeMB)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "server.url", envKey("NEXA_SERVER_URL"))
	assert.Equal(t, "log.max_age_days", envKey("NEXA_LOG_MAX_AGE_DAYS"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"ftp url", func(c *Config) { c.Server.URL = "ftp://host" }, true},
		{"no host", func(c *Config) { c.Server.URL = "http://" }, true},
		{"zero timeout", func(c *Config) { c.Server.Timeout = 0 }, true},
		{"speech without socket", func(c *Config) { c.Speech.Socket = "" }, true},
		{"disabled speech without socket", func(c *Config) {
			c.Speech.Enabled = false
			c.Speech.Socket = ""
		}, false},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, true},
		{"negative backups", func(c *Config) { c.Log.MaxBackups = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
