// ABOUTME: CLI command for adding trackers.
// ABOUTME: Truncates over-long titles at the input boundary instead of rejecting them.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ekaterinarb/tracker/internal/analytics"
	"github.com/ekaterinarb/tracker/internal/models"
)

var (
	addCategory string
	addSchedule string
	addColor    string
	addEmoji    string
	addEvent    bool
)

var addCmd = &cobra.Command{
	Use:     "add <title>",
	Aliases: []string{"a"},
	Short:   "Add a tracker",
	Long: `Add a tracker to a category. Habits recur on a weekday schedule;
pass --event for a one-off event instead.

The category is created automatically if it does not exist yet. Titles
longer than 38 characters are shortened to fit.

Examples:
  tracker add "Morning Run" --category Health --schedule mon,wed,fri
  tracker add "Water plants" -c Home -s daily --emoji 🪴
  tracker add "Dentist" -c Health -s tue --event`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		schedule, err := parseSchedule(addSchedule)
		if err != nil {
			return err
		}

		title := models.TruncateTitle(args[0])
		t, err := models.NewTracker(title, addColor, addEmoji, schedule, !addEvent)
		if err != nil {
			return err
		}

		if err := gateway.Trackers.Add(t, addCategory); err != nil {
			return fmt.Errorf("failed to add tracker: %w", err)
		}
		analytics.Send(reporter, analytics.Click(analytics.ScreenMain, analytics.ItemAddTrack))

		color.Green("✓ Added %s", t.Title)
		fmt.Printf("  %s %s in %s\n",
			color.New(color.Faint).Sprint(t.ID.String()[:8]),
			scheduleSummary(t), addCategory)
		return nil
	},
}

func scheduleSummary(t *models.Tracker) string {
	if len(t.Schedule) == len(models.AllWeekdays) {
		return "daily"
	}
	if len(t.Schedule) == 0 {
		return "unscheduled"
	}
	out := ""
	for i, d := range t.Schedule {
		if i > 0 {
			out += ","
		}
		out += d.Abbrev()
	}
	return out
}

func init() {
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "General", "category to add the tracker to")
	addCmd.Flags().StringVarP(&addSchedule, "schedule", "s", "daily", "weekday schedule (mon,wed,... or daily)")
	addCmd.Flags().StringVar(&addColor, "color", "#34C759", "display color")
	addCmd.Flags().StringVar(&addEmoji, "emoji", "", "display emoji (single grapheme)")
	addCmd.Flags().BoolVar(&addEvent, "event", false, "one-off event instead of a recurring habit")
	rootCmd.AddCommand(addCmd)
}
