package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/fecha/internal/history"
)

func (a *App) historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "View or clear recorded selections",
	}
	cmd.AddCommand(a.historyListCmd())
	cmd.AddCommand(a.historyClearCmd())
	return cmd
}

func (a *App) historyListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded selections, newest first",
		Example: `  fecha history list
  fecha history list --limit=5`,
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := a.openHistory()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			entries, err := store.List(context.Background(), limit)
			if err != nil {
				return fmt.Errorf("listing history: %w", err)
			}

			printHistory(entries)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of entries to show")
	return cmd
}

func (a *App) historyClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded selections",
		RunE: func(_ *cobra.Command, _ []string) error {
			if !promptYesNo("Delete all recorded selections?") {
				fmt.Println("Aborted.")
				return nil
			}

			store, err := a.openHistory()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.Clear(context.Background()); err != nil {
				return fmt.Errorf("clearing history: %w", err)
			}

			fmt.Println("History cleared.")
			return nil
		},
	}
}

func (a *App) openHistory() (*history.SQLite, error) {
	if a.config.Storage.DBPath == "" {
		return nil, fmt.Errorf("no database path configured")
	}
	return history.New(a.config.Storage.DBPath)
}
