// ABOUTME: CLI command for deleting a tracker.
// ABOUTME: Deleting a tracker removes its completion records as well.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ekaterinarb/tracker/internal/analytics"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a tracker",
	Long: `Delete a tracker by ID or ID prefix. Its completion history is deleted
with it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveTrackerID(args[0])
		if err != nil {
			return err
		}
		if err := gateway.Trackers.Delete(id); err != nil {
			return fmt.Errorf("failed to delete tracker: %w", err)
		}
		analytics.Send(reporter, analytics.Click(analytics.ScreenMain, analytics.ItemDelete))
		fmt.Printf("Deleted tracker %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
