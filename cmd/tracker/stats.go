// ABOUTME: CLI command for completion statistics.
// ABOUTME: Shows all-time completion totals per tracker and overall.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ekaterinarb/tracker/internal/analytics"
	"github.com/ekaterinarb/tracker/internal/engine"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show completion statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		analytics.Send(reporter, analytics.Open(analytics.ScreenStatistics))
		defer analytics.Send(reporter, analytics.Close(analytics.ScreenStatistics))

		trackers, err := gateway.Trackers.FetchAll()
		if err != nil {
			return fmt.Errorf("failed to list trackers: %w", err)
		}
		records, err := gateway.Records.FetchAll()
		if err != nil {
			return fmt.Errorf("failed to list records: %w", err)
		}

		if len(trackers) == 0 {
			fmt.Println("Nothing to analyze yet.")
			return nil
		}

		faint := color.New(color.Faint)
		total := 0
		for _, t := range trackers {
			count := engine.CompletionState(t.ID, records, t.CreatedAt).Count
			total += count
			fmt.Printf("%s %s: %d\n", faint.Sprint(t.ID.String()[:8]), t.Title, count)
		}
		color.New(color.Bold).Printf("Total completions: %d\n", total)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
