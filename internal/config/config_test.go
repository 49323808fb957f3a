package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.MaxRequestBodyBytes != 10<<20 {
			t.Errorf("MaxRequestBodyBytes = %d", cfg.MaxRequestBodyBytes)
		}
		if cfg.DefaultDedupeColumn != "LinkedIn URL" {
			t.Errorf("DefaultDedupeColumn = %q", cfg.DefaultDedupeColumn)
		}
		if cfg.RateLimit.Window() != time.Minute {
			t.Errorf("Window() = %v", cfg.RateLimit.Window())
		}
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeConfig(t, `
max_request_body_bytes: 1024
rate_limit:
  requests: 5
  window_seconds: 10
  burst: 2
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.MaxRequestBodyBytes != 1024 {
			t.Errorf("MaxRequestBodyBytes = %d, want 1024", cfg.MaxRequestBodyBytes)
		}
		if cfg.RateLimit.Requests != 5 || cfg.RateLimit.Burst != 2 {
			t.Errorf("RateLimit = %+v", cfg.RateLimit)
		}
		if cfg.RateLimit.Window() != 10*time.Second {
			t.Errorf("Window() = %v", cfg.RateLimit.Window())
		}
		// Unset fields keep defaults.
		if cfg.DefaultDedupeColumn != "LinkedIn URL" {
			t.Errorf("DefaultDedupeColumn = %q", cfg.DefaultDedupeColumn)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
			t.Fatal("Load() expected error")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeConfig(t, "rate_limit: [not a map")
		if _, err := Load(path); err == nil {
			t.Fatal("Load() expected error")
		}
	})

	t.Run("rejects bad values", func(t *testing.T) {
		path := writeConfig(t, `
rate_limit:
  requests: 0
  window_seconds: 60
  burst: 10
`)
		if _, err := Load(path); err == nil {
			t.Fatal("Load() expected error for zero requests")
		}
	})
}
