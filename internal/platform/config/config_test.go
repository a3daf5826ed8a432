package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gateprep/internal/platform/config"
)

func TestNewRequiresDataDir(t *testing.T) {
	t.Parallel()
	if _, err := config.New(""); err == nil {
		t.Fatalf("expected error for empty data dir")
	}
	cfg, err := config.New("/tmp/gp")
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.DBPath != filepath.Join("/tmp/gp", "gateprep.db") || cfg.TickInterval != time.Second || cfg.DefaultMode != "da" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadWithoutFileKeepsDefaults(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg, err := config.Load(dir, "")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel != "warn" || cfg.DBPath != filepath.Join(dir, "gateprep.db") {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadReadsYAMLOverrides(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	payload := "log_level: debug\ndefault_mode: cse\ntick_interval: 500ms\ndb_file: state.db\n"
	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.Load(dir, "")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.DefaultMode != "cse" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.TickInterval != 500*time.Millisecond {
		t.Fatalf("expected 500ms tick, got %s", cfg.TickInterval)
	}
	if cfg.DBPath != filepath.Join(dir, "state.db") {
		t.Fatalf("expected db in data dir, got %s", cfg.DBPath)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("log_level: [unclosed\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.Load(dir, path); err == nil {
		t.Fatalf("expected malformed config to fail")
	}
}

func TestLoadRejectsOutOfRangeValues(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"unknown level": "log_level: loud\n",
		"tick too fast": "tick_interval: 10ms\n",
		"mixed case":    "default_mode: CSE\n",
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte(payload), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, err := config.Load(dir, ""); err == nil {
				t.Fatalf("expected %q to be rejected", payload)
			}
		})
	}
}
