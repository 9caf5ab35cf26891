package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadWritesAndAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, resolved, err := Load(nil, path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if resolved != path {
		t.Fatalf("unexpected resolved path: %s", resolved)
	}
	if cfg.Addr != ":8080" || cfg.MaxPosts != 10000 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}

	// A default config file must have been written for the next run.
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config not written: %v", err)
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := "addr: \":9090\"\nmax_content_bytes: 128\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, err := Load(nil, path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Fatalf("addr not read from file: %s", cfg.Addr)
	}
	if cfg.MaxContentBytes != 128 {
		t.Fatalf("max_content_bytes not read from file: %d", cfg.MaxContentBytes)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log_level not read from file: %s", cfg.LogLevel)
	}
	// untouched keys keep their defaults
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Fatalf("shutdown_timeout default lost: %v", cfg.ShutdownTimeout)
	}
}

func TestUpdateFromSkipsZeroValues(t *testing.T) {
	cfg := Default()
	cfg.UpdateFrom(Config{Addr: ":7070", MaxPosts: 42})

	if cfg.Addr != ":7070" || cfg.MaxPosts != 42 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.LogLevel != "info" || cfg.StreamWriteTimeout != 5*time.Second {
		t.Fatalf("zero-value override clobbered defaults: %+v", cfg)
	}
}
