package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.RateLimit != 100 || cfg.RateLimitBurst != 200 {
		t.Errorf("unexpected rate limit defaults: %v/%v", cfg.RateLimit, cfg.RateLimitBurst)
	}
	if cfg.StreamInterval != 2*time.Second {
		t.Errorf("unexpected stream interval: %v", cfg.StreamInterval)
	}
}

func TestConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "5")
	t.Setenv("SYSMON_STREAM_INTERVAL", "500ms")

	cfg := DefaultConfig()

	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("expected 5s shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
	if cfg.StreamInterval != 500*time.Millisecond {
		t.Errorf("expected 500ms stream interval, got %v", cfg.StreamInterval)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("port: 7070\nrate_limit: 10\nrate_limit_burst: 20\nstream_interval: 1s\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Port != 7070 {
		t.Errorf("expected port 7070, got %d", cfg.Port)
	}
	if cfg.RateLimit != 10 || cfg.RateLimitBurst != 20 {
		t.Errorf("unexpected rate limits: %v/%v", cfg.RateLimit, cfg.RateLimitBurst)
	}
	if cfg.StreamInterval != time.Second {
		t.Errorf("expected 1s stream interval, got %v", cfg.StreamInterval)
	}
}

func TestLoadConfigEnvWinsOverFile(t *testing.T) {
	t.Setenv("PORT", "6060")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("port: 7070\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Port != 6060 {
		t.Errorf("expected env port 6060 to win, got %d", cfg.Port)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("port: [not a number\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for malformed config file")
	}
}
