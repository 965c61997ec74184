package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DatabasePath != "" || cfg.Logging.Level != "warn" || cfg.Companion.Enabled {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
database_path: /tmp/orders.db
logging:
  level: debug
companion:
  enabled: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DatabasePath != "/tmp/orders.db" {
		t.Fatalf("database_path: %q", cfg.DatabasePath)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("logging level: %q", cfg.Logging.Level)
	}
	if !cfg.Companion.Enabled {
		t.Fatal("companion should be enabled")
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("database_path: /tmp/x.db\n"), 0o644)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("unset keys should keep defaults, got %q", cfg.Logging.Level)
	}
}

func TestLoadMalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte(":\t- broken"), 0o644)

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestResolveDBPath(t *testing.T) {
	cfg := Default()
	path, err := cfg.ResolveDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if path == "" {
		t.Fatal("empty default path")
	}

	cfg.DatabasePath = "/tmp/custom.db"
	path, _ = cfg.ResolveDBPath()
	if path != "/tmp/custom.db" {
		t.Fatalf("override ignored: %q", path)
	}
}
