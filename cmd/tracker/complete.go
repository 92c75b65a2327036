// ABOUTME: CLI commands for marking and un-marking tracker completion.
// ABOUTME: Future dates are rejected before anything reaches storage.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ekaterinarb/tracker/internal/analytics"
	"github.com/ekaterinarb/tracker/internal/engine"
	"github.com/ekaterinarb/tracker/internal/models"
)

var (
	doneDate   string
	undoneDate string
)

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a tracker completed",
	Long: `Mark a tracker completed for a date (default today). Marking a date in
the future is rejected. Marking an already-completed day changes nothing.

Examples:
  tracker done 3f2a
  tracker done 3f2a --date 2024-01-10`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return toggle(args[0], doneDate, true)
	},
}

var undoneCmd = &cobra.Command{
	Use:   "undone <id>",
	Short: "Take a completion back",
	Long: `Remove the completion of a tracker for a date (default today). Removing
a completion that does not exist is a no-op.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return toggle(args[0], undoneDate, false)
	},
}

func toggle(idArg, dateArg string, nowCompleted bool) error {
	id, err := resolveTrackerID(idArg)
	if err != nil {
		return err
	}
	date, err := parseDate(dateArg)
	if err != nil {
		return err
	}

	if err := engine.ToggleCompletion(gateway.Records, id, nowCompleted, date, time.Now()); err != nil {
		return err
	}
	analytics.Send(reporter, analytics.Click(analytics.ScreenMain, analytics.ItemTrack))

	day := date.Format(models.DayFormat)
	if nowCompleted {
		color.Green("✓ Completed %s on %s", idArg, day)
	} else {
		fmt.Printf("Removed completion of %s on %s\n", idArg, day)
	}
	return nil
}

func init() {
	doneCmd.Flags().StringVarP(&doneDate, "date", "d", "", "completion date (YYYY-MM-DD, default today)")
	undoneCmd.Flags().StringVarP(&undoneDate, "date", "d", "", "completion date (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(undoneCmd)
}
