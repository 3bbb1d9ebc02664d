// Package ui provides the command line interface for fecha.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/fecha/internal/config"
	"github.com/javiermolinar/fecha/internal/dateutil"
	"github.com/javiermolinar/fecha/internal/history"
	"github.com/javiermolinar/fecha/internal/picker"
	"github.com/javiermolinar/fecha/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging

	// Root flag overrides
	flagMode    string
	flagMin     string
	flagMax     string
	flagTheme   string
	flagInitial string
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "fecha",
		Short: "A calendar date picker for the terminal",
		Long: `Fecha is a calendar date picker for the terminal.

It presents a month grid for picking a single date or a date range,
with shortcut presets, min/max bounds, and configurable appearance.
The picked value is printed to stdout for use in scripts.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runPicker()
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to current directory)")
	a.root.Flags().StringVar(&a.flagMode, "mode", "", "Selection mode: single or range")
	a.root.Flags().StringVar(&a.flagMin, "min", "", "Earliest selectable date (YYYY-MM-DD)")
	a.root.Flags().StringVar(&a.flagMax, "max", "", "Latest selectable date (YYYY-MM-DD)")
	a.root.Flags().StringVar(&a.flagTheme, "theme", "", "Color theme")
	a.root.Flags().StringVar(&a.flagInitial, "initial", "", "Initial selection (YYYY-MM-DD or YYYY-MM-DD..YYYY-MM-DD)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.historyCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("fecha %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// runPicker presents the picker and prints the outcome.
func (a *App) runPicker() error {
	if err := a.applyFlagOverrides(); err != nil {
		return err
	}

	pcfg, err := buildPickerConfig(a.config)
	if err != nil {
		return err
	}

	initial, err := parseInitialValue(a.flagInitial, pcfg.Options.Mode)
	if err != nil {
		return err
	}

	result, err := tui.RunWithDebug(pcfg, a.config, initial, a.debug)
	if err != nil {
		return fmt.Errorf("running picker: %w", err)
	}

	printResult(result)

	if !result.Canceled && result.Value != nil && a.config.Storage.History {
		if err := a.recordHistory(result.Value); err != nil {
			// History is a convenience; a failed write must not break
			// the scripted output above.
			fmt.Println(formatMuted(fmt.Sprintf("(history not recorded: %v)", err)))
		}
	}

	return nil
}

func (a *App) applyFlagOverrides() error {
	if a.flagMode != "" {
		a.config.Picker.Mode = a.flagMode
	}
	if a.flagMin != "" {
		a.config.Bounds.MinDate = a.flagMin
	}
	if a.flagMax != "" {
		a.config.Bounds.MaxDate = a.flagMax
	}
	if a.flagTheme != "" {
		a.config.UI.Theme = a.flagTheme
	}
	if err := a.config.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

func (a *App) recordHistory(v *picker.Value) error {
	store, err := history.New(a.config.Storage.DBPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()
	return store.Record(context.Background(), v)
}

// buildPickerConfig translates the file/flag config into a picker config.
func buildPickerConfig(cfg *config.Config) (picker.Config, error) {
	mode := picker.ModeSingle
	if strings.ToLower(cfg.Picker.Mode) == "range" {
		mode = picker.ModeRange
	}

	minDate, err := dateutil.ParseDate(cfg.Bounds.MinDate)
	if err != nil {
		return picker.Config{}, fmt.Errorf("min date: %w", err)
	}
	maxDate, err := dateutil.ParseDate(cfg.Bounds.MaxDate)
	if err != nil {
		return picker.Config{}, fmt.Errorf("max date: %w", err)
	}

	return picker.Config{
		Options: picker.Options{
			Mode:                   mode,
			AllowClear:             cfg.Picker.AllowClear,
			AllowRangeModification: cfg.Picker.AllowRangeModification,
		},
		Bounds:           picker.NewBounds(minDate, maxDate, cfg.Bounds.MinMonthWindow, cfg.Bounds.MaxMonthWindow),
		Shortcuts:        picker.DefaultShortcuts(mode),
		SelectWholeMonth: cfg.Picker.SelectWholeMonth,
		CloseOnSelect:    cfg.Picker.CloseOnSelect,
	}, nil
}

// parseInitialValue parses the --initial flag: a date, or from..to.
func parseInitialValue(s string, mode picker.Mode) (*picker.Value, error) {
	if s == "" {
		return nil, nil
	}

	if from, to, ok := strings.Cut(s, ".."); ok {
		if mode != picker.ModeRange {
			return nil, fmt.Errorf("initial range %q requires range mode", s)
		}
		fromDate, err := dateutil.ParseDate(from)
		if err != nil || fromDate.IsZero() {
			return nil, fmt.Errorf("initial range start %q: %w", from, dateutil.ErrInvalidDateFormat)
		}
		toDate, err := dateutil.ParseDate(to)
		if err != nil || toDate.IsZero() {
			return nil, fmt.Errorf("initial range end %q: %w", to, dateutil.ErrInvalidDateFormat)
		}
		if toDate.Before(fromDate) {
			return nil, dateutil.ErrEndDateBeforeStart
		}
		return picker.DateRange(fromDate, toDate), nil
	}

	d, err := dateutil.ParseDate(s)
	if err != nil || d.IsZero() {
		return nil, fmt.Errorf("initial date %q: %w", s, dateutil.ErrInvalidDateFormat)
	}
	if mode == picker.ModeRange {
		return picker.DateRange(d, d), nil
	}
	return picker.SingleDate(d), nil
}
