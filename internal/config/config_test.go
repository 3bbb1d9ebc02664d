package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Picker.Mode != "range" {
		t.Errorf("expected mode range, got %s", cfg.Picker.Mode)
	}
	if !cfg.Picker.AllowClear {
		t.Error("expected allow_clear true by default")
	}
	if !cfg.Picker.AllowRangeModification {
		t.Error("expected allow_range_modification true by default")
	}
	if cfg.Picker.CloseOnSelect {
		t.Error("expected close_on_select false by default")
	}
	if cfg.UI.Theme != "mocha" {
		t.Errorf("expected theme mocha, got %s", cfg.UI.Theme)
	}
	if cfg.UI.FirstWeekday != "monday" {
		t.Errorf("expected first_weekday monday, got %s", cfg.UI.FirstWeekday)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should return defaults
	if cfg.Picker.Mode != "range" {
		t.Errorf("expected default mode, got %s", cfg.Picker.Mode)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[picker]
mode = "single"
allow_clear = false
close_on_select = true

[bounds]
min_date = "2024-01-01"
max_date = "2024-12-31"
max_month_window = 2

[ui]
theme = "latte"
first_weekday = "sunday"

[storage]
db_path = "/tmp/test.db"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Picker.Mode != "single" {
		t.Errorf("expected mode single, got %s", cfg.Picker.Mode)
	}
	if cfg.Picker.AllowClear {
		t.Error("expected allow_clear false")
	}
	if !cfg.Picker.CloseOnSelect {
		t.Error("expected close_on_select true")
	}
	if cfg.Bounds.MinDate != "2024-01-01" {
		t.Errorf("expected min_date 2024-01-01, got %s", cfg.Bounds.MinDate)
	}
	if cfg.Bounds.MaxMonthWindow != 2 {
		t.Errorf("expected max_month_window 2, got %d", cfg.Bounds.MaxMonthWindow)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("expected theme latte, got %s", cfg.UI.Theme)
	}
	if cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path /tmp/test.db, got %s", cfg.Storage.DBPath)
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	if err := os.WriteFile(configPath, []byte("not [valid toml"), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FECHA_MODE", "single")
	t.Setenv("FECHA_UI_THEME", "frappe")
	t.Setenv("FECHA_MIN_DATE", "2023-06-01")

	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Picker.Mode != "single" {
		t.Errorf("expected mode single from env, got %s", cfg.Picker.Mode)
	}
	if cfg.UI.Theme != "frappe" {
		t.Errorf("expected theme frappe from env, got %s", cfg.UI.Theme)
	}
	if cfg.Bounds.MinDate != "2023-06-01" {
		t.Errorf("expected min_date from env, got %s", cfg.Bounds.MinDate)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "bad mode", mutate: func(c *Config) { c.Picker.Mode = "multi" }, wantErr: true},
		{name: "bad min_date", mutate: func(c *Config) { c.Bounds.MinDate = "Jan 1" }, wantErr: true},
		{name: "min after max", mutate: func(c *Config) {
			c.Bounds.MinDate = "2024-12-31"
			c.Bounds.MaxDate = "2024-01-01"
		}, wantErr: true},
		{name: "min equals max", mutate: func(c *Config) {
			c.Bounds.MinDate = "2024-06-01"
			c.Bounds.MaxDate = "2024-06-01"
		}},
		{name: "negative month window", mutate: func(c *Config) { c.Bounds.MinMonthWindow = -1 }, wantErr: true},
		{name: "bad first_weekday", mutate: func(c *Config) { c.UI.FirstWeekday = "mondy" }, wantErr: true},
		{name: "history without db path", mutate: func(c *Config) {
			c.Storage.History = true
			c.Storage.DBPath = ""
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.toml")

	cfg := Default()
	cfg.UI.Theme = "macchiato"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.UI.Theme != "macchiato" {
		t.Errorf("expected theme macchiato after round trip, got %s", loaded.UI.Theme)
	}
}
