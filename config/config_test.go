package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Window != "1.week" {
		t.Errorf("Window = %q, expected %q", cfg.Window, "1.week")
	}
	if cfg.Output.Dir != "." {
		t.Errorf("Output.Dir = %q, expected %q", cfg.Output.Dir, ".")
	}
	if cfg.Output.Format != "console" {
		t.Errorf("Output.Format = %q, expected %q", cfg.Output.Format, "console")
	}
	if !cfg.Output.IncludeDiffs {
		t.Error("Output.IncludeDiffs = false, expected true")
	}
	if !cfg.GitHub.Enabled {
		t.Error("GitHub.Enabled = false, expected true")
	}
	if cfg.GitHub.Limit != 1000 {
		t.Errorf("GitHub.Limit = %d, expected 1000", cfg.GitHub.Limit)
	}
	if cfg.History.Branch != "HEAD" {
		t.Errorf("History.Branch = %q, expected %q", cfg.History.Branch, "HEAD")
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Window != "1.week" {
		t.Errorf("Window = %q, expected default", cfg.Window)
	}
}

func TestLoadConfig_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	content := `{
		"window": "2.weeks",
		"output": {"dir": "/tmp/reports", "format": "markdown", "includeDiffs": false},
		"filters": {"exclude": ["vendor/**"]},
		"github": {"enabled": false, "limit": 200}
	}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Window != "2.weeks" {
		t.Errorf("Window = %q, expected %q", cfg.Window, "2.weeks")
	}
	if cfg.Output.Dir != "/tmp/reports" {
		t.Errorf("Output.Dir = %q, expected %q", cfg.Output.Dir, "/tmp/reports")
	}
	if cfg.Output.IncludeDiffs {
		t.Error("Output.IncludeDiffs = true, expected false")
	}
	if len(cfg.Filters.Exclude) != 1 || cfg.Filters.Exclude[0] != "vendor/**" {
		t.Errorf("Filters.Exclude = %v, expected [vendor/**]", cfg.Filters.Exclude)
	}
	if cfg.GitHub.Enabled {
		t.Error("GitHub.Enabled = true, expected false")
	}
	if cfg.GitHub.Limit != 200 {
		t.Errorf("GitHub.Limit = %d, expected 200", cfg.GitHub.Limit)
	}
	// Untouched sections keep defaults.
	if cfg.History.Branch != "HEAD" {
		t.Errorf("History.Branch = %q, expected default", cfg.History.Branch)
	}
}

func TestLoadConfig_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	content := "window: 3.months\noutput:\n  format: json\nfilters:\n  include:\n    - \"**/*.go\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Window != "3.months" {
		t.Errorf("Window = %q, expected %q", cfg.Window, "3.months")
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %q, expected %q", cfg.Output.Format, "json")
	}
	if len(cfg.Filters.Include) != 1 || cfg.Filters.Include[0] != "**/*.go" {
		t.Errorf("Filters.Include = %v, expected [**/*.go]", cfg.Filters.Include)
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected parse error, got nil")
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	for _, ext := range []string{"json", "yaml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cfg."+ext)

			cfg := DefaultConfig()
			cfg.Window = "6.months"
			cfg.GitHub.Limit = 50

			if err := SaveConfig(cfg, path); err != nil {
				t.Fatalf("save: %v", err)
			}

			loaded, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if loaded.Window != "6.months" {
				t.Errorf("Window = %q, expected %q", loaded.Window, "6.months")
			}
			if loaded.GitHub.Limit != 50 {
				t.Errorf("GitHub.Limit = %d, expected 50", loaded.GitHub.Limit)
			}
		})
	}
}
