// Package config loads the client configuration from YAML and NEXA_*
// environment variables.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jwulff/nexa/internal/speech"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap/zapcore"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides: NEXA_SERVER_URL -> server.url.
const EnvPrefix = "NEXA_"

// Config is the top-level client configuration.
type Config struct {
	Server ServerConfig `yaml:"server" koanf:"server"`
	Speech SpeechConfig `yaml:"speech" koanf:"speech"`
	Log    LogConfig    `yaml:"log" koanf:"log"`
}

// ServerConfig points at the question-answering service.
type ServerConfig struct {
	URL     string        `yaml:"url" koanf:"url"`
	Timeout time.Duration `yaml:"timeout" koanf:"timeout"`
}

// SpeechConfig controls dictation.
type SpeechConfig struct {
	Enabled bool   `yaml:"enabled" koanf:"enabled"`
	Socket  string `yaml:"socket" koanf:"socket"`
	Locale  string `yaml:"locale" koanf:"locale"`
}

// LogConfig controls the rotating log file. An empty File disables logging.
type LogConfig struct {
	File       string `yaml:"file" koanf:"file"`
	Level      string `yaml:"level" koanf:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb" koanf:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" koanf:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days" koanf:"max_age_days"`
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Server: ServerConfig{
			URL:     "http://127.0.0.1:5000",
			Timeout: 60 * time.Second,
		},
		Speech: SpeechConfig{
			Enabled: true,
			Socket:  speech.DefaultSocketPath(),
			Locale:  "en-US",
		},
		Log: LogConfig{
			File:       filepath.Join(home, ".nexa", "nexa.log"),
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 5,
			MaxAgeDays: 30,
		},
	}
}

// DefaultPath is where the config file lives unless --config says otherwise.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".nexa", "config.yml")
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (NEXA_*). A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: NEXA_LOG_MAX_SIZE_MB -> log.max_size_mb.
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps NEXA_SECTION_FIELD_NAME to section.field_name.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(s, "_", ".", 1)
}

// Save writes the configuration to the given YAML file path, creating its
// directory.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Server.URL)
	if err != nil {
		return fmt.Errorf("invalid server.url %q: %w", c.Server.URL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid server.url %q: must be http or https", c.Server.URL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid server.url %q: missing host", c.Server.URL)
	}

	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive")
	}

	if c.Speech.Enabled && c.Speech.Socket == "" {
		return fmt.Errorf("speech.socket is required when speech is enabled")
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level %q: %w", c.Log.Level, err)
	}

	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return fmt.Errorf("log rotation limits must be non-negative")
	}

	return nil
}
