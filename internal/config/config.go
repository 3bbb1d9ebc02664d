// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/fecha/internal/dateutil"
)

// Config holds the application configuration.
type Config struct {
	Picker  PickerConfig  `toml:"picker"`
	Bounds  BoundsConfig  `toml:"bounds"`
	UI      UIConfig      `toml:"ui"`
	Storage StorageConfig `toml:"storage"`
}

// PickerConfig holds selection behavior settings.
type PickerConfig struct {
	Mode                   string `toml:"mode"`                     // "single" or "range"
	AllowClear             bool   `toml:"allow_clear"`              // Tapping the selection again clears it
	AllowRangeModification bool   `toml:"allow_range_modification"` // Taps extend an existing range
	SelectWholeMonth       bool   `toml:"select_whole_month"`       // Header tap selects the month (range mode)
	CloseOnSelect          bool   `toml:"close_on_select"`          // Confirm as soon as the selection completes
}

// BoundsConfig holds selectable date limits.
type BoundsConfig struct {
	MinDate        string `toml:"min_date"`         // YYYY-MM-DD, empty means unbounded
	MaxDate        string `toml:"max_date"`         // YYYY-MM-DD, empty means unbounded
	MinMonthWindow int    `toml:"min_month_window"` // Extra months shown before min_date
	MaxMonthWindow int    `toml:"max_month_window"` // Extra months shown after max_date
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme        string `toml:"theme"`         // "mocha", "macchiato", "frappe", "latte"
	FirstWeekday string `toml:"first_weekday"` // Leftmost grid column, e.g. "monday"
}

// StorageConfig holds the selection-history database settings.
type StorageConfig struct {
	DBPath  string `toml:"db_path"`
	History bool   `toml:"history"` // Record confirmed selections
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Picker: PickerConfig{
			Mode:                   "range",
			AllowClear:             true,
			AllowRangeModification: true,
			SelectWholeMonth:       false,
			CloseOnSelect:          false,
		},
		Bounds: BoundsConfig{},
		UI: UIConfig{
			Theme:        "mocha",
			FirstWeekday: "monday",
		},
		Storage: StorageConfig{
			DBPath:  defaultDBPath(),
			History: true,
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "fecha.db"
	}
	return filepath.Join(home, ".local", "share", "fecha", "fecha.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "fecha", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FECHA_MODE"); v != "" {
		cfg.Picker.Mode = v
	}
	if v := os.Getenv("FECHA_MIN_DATE"); v != "" {
		cfg.Bounds.MinDate = v
	}
	if v := os.Getenv("FECHA_MAX_DATE"); v != "" {
		cfg.Bounds.MaxDate = v
	}
	if v := os.Getenv("FECHA_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("FECHA_FIRST_WEEKDAY"); v != "" {
		cfg.UI.FirstWeekday = v
	}
	if v := os.Getenv("FECHA_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	mode := strings.ToLower(c.Picker.Mode)
	if mode != "single" && mode != "range" {
		return fmt.Errorf("mode must be \"single\" or \"range\", got %q", c.Picker.Mode)
	}

	minDate, err := dateutil.ParseDate(c.Bounds.MinDate)
	if err != nil {
		return fmt.Errorf("min_date: %w", err)
	}
	maxDate, err := dateutil.ParseDate(c.Bounds.MaxDate)
	if err != nil {
		return fmt.Errorf("max_date: %w", err)
	}
	if !minDate.IsZero() && !maxDate.IsZero() && maxDate.Before(minDate) {
		return errors.New("min_date must be on or before max_date")
	}

	if c.Bounds.MinMonthWindow < 0 || c.Bounds.MaxMonthWindow < 0 {
		return errors.New("month windows must not be negative")
	}

	if _, err := dateutil.ParseWeekday(c.UI.FirstWeekday); err != nil {
		return fmt.Errorf("invalid first_weekday: %s", c.UI.FirstWeekday)
	}

	if c.Storage.History && c.Storage.DBPath == "" {
		return errors.New("db_path must be set when history is enabled")
	}

	return nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
