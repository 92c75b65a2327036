// ABOUTME: Root Cobra command for tracker CLI.
// ABOUTME: Opens the configured storage backend and gateway via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ekaterinarb/tracker/internal/analytics"
	"github.com/ekaterinarb/tracker/internal/config"
	"github.com/ekaterinarb/tracker/internal/store"
)

var (
	gateway  *store.Gateway
	reporter analytics.Reporter
)

var rootCmd = &cobra.Command{
	Use:   "tracker",
	Short: "Habit and event tracker",
	Long: `Tracker is a CLI tool for tracking recurring habits and one-off events.

Trackers live in named categories and recur on a weekday schedule. Each day
you mark the trackers you completed; the list view shows what is scheduled
for a given date and the stats view shows completion totals.

QUICK START:

  $ tracker add "Morning Run" --category Health --schedule mon,wed,fri
  $ tracker list                          # What is scheduled today
  $ tracker done <id>                     # Mark completed for today
  $ tracker undone <id>                   # Take the completion back
  $ tracker list --date 2024-01-10       # Another day's view
  $ tracker stats                         # Completion totals

CATEGORIES:

  $ tracker category add Health           # Explicit empty category
  $ tracker category list
  $ tracker category delete Health        # Deletes its trackers too

DATA STORAGE:

  Data is stored at ~/.local/share/tracker (XDG aware). The backend is
  configurable in ~/.config/tracker/config.json: "sqlite" (default),
  "badger", or "memory".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		repo, err := cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}
		gateway = store.New(repo, slog.Default())
		reporter = analytics.NewLogReporter(slog.Default())
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if gateway != nil {
			return gateway.Close()
		}
		return nil
	},
}
