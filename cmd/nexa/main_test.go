package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jwulff/nexa/internal/config"
	"go.uber.org/zap"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out.String(), "nexa ") {
		t.Errorf("output = %q", out.String())
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil); forceInit = false })

	rootCmd.SetArgs([]string{"config", "init", "--config", path})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config init: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load written config: %v", err)
	}
	if cfg.Server.URL != config.DefaultConfig().Server.URL {
		t.Errorf("server.url = %q", cfg.Server.URL)
	}

	rootCmd.SetArgs([]string{"config", "init", "--config", path})
	if err := rootCmd.Execute(); err == nil {
		t.Error("second init without --force should fail")
	}

	rootCmd.SetArgs([]string{"config", "init", "--config", path, "--force"})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("init --force: %v", err)
	}
}

func TestSpeechDialer(t *testing.T) {
	if speechDialer(config.SpeechConfig{Enabled: false}, zap.NewNop()) != nil {
		t.Error("disabled speech should have no dialer")
	}

	dial := speechDialer(config.SpeechConfig{
		Enabled: true,
		Socket:  filepath.Join(t.TempDir(), "missing.sock"),
	}, zap.NewNop())
	if dial == nil {
		t.Fatal("enabled speech should have a dialer")
	}
	rec, err := dial()
	if err == nil {
		t.Fatal("dialing a missing socket should fail")
	}
	if rec != nil {
		t.Error("a failed dial must return a nil Recognizer")
	}
}
