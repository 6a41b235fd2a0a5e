package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg.DataSource.BaseURL != "" || cfg.Database.SQLitePath != "" || cfg.Schedule.Cron != "" {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
data_source:
  base_url: "http://localhost:9000"
  api_key: "k"
database:
  sqlite_path: "data/history.db"
schedule:
  cron: "0 0 9 * * 1-5"
proxy: "http://127.0.0.1:7890"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataSource.BaseURL != "http://localhost:9000" {
		t.Errorf("base_url = %q", cfg.DataSource.BaseURL)
	}
	if cfg.DataSource.APIKey != "k" {
		t.Errorf("api_key = %q", cfg.DataSource.APIKey)
	}
	if cfg.Database.SQLitePath != "data/history.db" {
		t.Errorf("sqlite_path = %q", cfg.Database.SQLitePath)
	}
	if cfg.Schedule.Cron != "0 0 9 * * 1-5" {
		t.Errorf("cron = %q", cfg.Schedule.Cron)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("data_source:\n  base_url: \"http://from-file\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CHART_BASE_URL", "http://from-env")
	t.Setenv("SQLITE_PATH", "/tmp/hist.db")
	t.Setenv("WATCH_CRON", "@hourly")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataSource.BaseURL != "http://from-env" {
		t.Errorf("env should override file, got %q", cfg.DataSource.BaseURL)
	}
	if cfg.Database.SQLitePath != "/tmp/hist.db" {
		t.Errorf("sqlite_path = %q", cfg.Database.SQLitePath)
	}
	if cfg.Schedule.Cron != "@hourly" {
		t.Errorf("cron = %q", cfg.Schedule.Cron)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("- not a mapping\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
