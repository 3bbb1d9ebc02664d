package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/fecha/internal/config"
	"github.com/javiermolinar/fecha/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  fecha config`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigInteractive()
		},
	}
}

func runConfigInteractive() error {
	configPath := config.DefaultConfigPath()
	fmt.Printf("Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		fmt.Println("No config file found. Creating with default values...")
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Created %s\n\n", configPath)
	}

	// Display current config
	printConfig(cfg)

	// Ask if user wants to edit
	if !promptYesNo("\nWould you like to edit the configuration?") {
		return nil
	}

	// Interactive editing
	reader := bufio.NewReader(os.Stdin)

	cfg.Picker.Mode = promptValue(reader, "Selection mode (single/range)", cfg.Picker.Mode)
	cfg.Picker.AllowClear = promptBool(reader, "Allow clearing the selection", cfg.Picker.AllowClear)
	cfg.Picker.AllowRangeModification = promptBool(reader, "Allow extending an existing range", cfg.Picker.AllowRangeModification)
	cfg.Picker.SelectWholeMonth = promptBool(reader, "Month header selects the whole month", cfg.Picker.SelectWholeMonth)
	cfg.Picker.CloseOnSelect = promptBool(reader, "Close as soon as the selection completes", cfg.Picker.CloseOnSelect)
	cfg.Bounds.MinDate = promptValue(reader, "Earliest selectable date (empty for none)", cfg.Bounds.MinDate)
	cfg.Bounds.MaxDate = promptValue(reader, "Latest selectable date (empty for none)", cfg.Bounds.MaxDate)
	cfg.UI.FirstWeekday = promptValue(reader, "First weekday of the grid", cfg.UI.FirstWeekday)
	cfg.UI.Theme = promptTheme(reader, cfg.UI.Theme)
	cfg.Storage.DBPath = promptValue(reader, "History database path", cfg.Storage.DBPath)
	cfg.Storage.History = promptBool(reader, "Record confirmed selections", cfg.Storage.History)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Save
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println("\nConfiguration saved!")
	return nil
}

func printConfig(cfg *config.Config) {
	fmt.Println("Current configuration:")
	fmt.Println("──────────────────────")
	fmt.Println("[picker]")
	fmt.Printf("  mode                     = %s\n", cfg.Picker.Mode)
	fmt.Printf("  allow_clear              = %t\n", cfg.Picker.AllowClear)
	fmt.Printf("  allow_range_modification = %t\n", cfg.Picker.AllowRangeModification)
	fmt.Printf("  select_whole_month       = %t\n", cfg.Picker.SelectWholeMonth)
	fmt.Printf("  close_on_select          = %t\n", cfg.Picker.CloseOnSelect)
	fmt.Println("\n[bounds]")
	fmt.Printf("  min_date                 = %s\n", orNone(cfg.Bounds.MinDate))
	fmt.Printf("  max_date                 = %s\n", orNone(cfg.Bounds.MaxDate))
	if cfg.Bounds.MinMonthWindow > 0 || cfg.Bounds.MaxMonthWindow > 0 {
		fmt.Printf("  min_month_window         = %d\n", cfg.Bounds.MinMonthWindow)
		fmt.Printf("  max_month_window         = %d\n", cfg.Bounds.MaxMonthWindow)
	}
	fmt.Println("\n[ui]")
	fmt.Printf("  theme                    = %s\n", cfg.UI.Theme)
	fmt.Printf("  first_weekday            = %s\n", cfg.UI.FirstWeekday)
	fmt.Println("\n[storage]")
	fmt.Printf("  db_path                  = %s\n", cfg.Storage.DBPath)
	fmt.Printf("  history                  = %t\n", cfg.Storage.History)
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func promptYesNo(question string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, label, current string) string {
	if current == "" {
		fmt.Printf("  %s: ", label)
	} else {
		fmt.Printf("  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptBool(reader *bufio.Reader, label string, current bool) bool {
	value := promptValue(reader, label+" (true/false)", fmt.Sprintf("%t", current))
	return strings.ToLower(value) == "true"
}

func promptTheme(reader *bufio.Reader, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Printf("  Invalid theme %q. Available: %s\n", value, options)
	}
}
