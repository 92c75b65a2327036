// ABOUTME: CLI command for listing trackers scheduled on a date.
// ABOUTME: Renders the engine's date/search-scoped view with completion marks.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ekaterinarb/tracker/internal/analytics"
	"github.com/ekaterinarb/tracker/internal/engine"
	"github.com/ekaterinarb/tracker/internal/i18n"
	"github.com/ekaterinarb/tracker/internal/viewstate"
)

var (
	listDate   string
	listSearch string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List trackers scheduled for a date",
	Long: `List the trackers scheduled for a date, grouped by category.

Each line shows: MARK ID TITLE EMOJI STREAK. The mark is ✓ when the tracker
is completed on that date; the 8-character ID works with done/undone/delete.

Examples:
  tracker list                       # Today's view
  tracker list --date 2024-01-10
  tracker list --search run          # Filter by title substring`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDate(listDate)
		if err != nil {
			return err
		}

		analytics.Send(reporter, analytics.Open(analytics.ScreenMain))
		defer analytics.Send(reporter, analytics.Close(analytics.ScreenMain))
		if listSearch != "" {
			analytics.Send(reporter, analytics.Click(analytics.ScreenMain, analytics.ItemFilter))
		}

		vm := viewstate.NewTrackersViewModel(gateway, nil)
		defer vm.Close()
		vm.SetDate(date)
		vm.SetSearch(listSearch)

		visible := vm.Visible()
		if len(visible) == 0 {
			if listSearch != "" {
				fmt.Println(i18n.Localize("nothing_found"))
			} else {
				fmt.Println(i18n.Localize("no_trackers_placeholder"))
			}
			return nil
		}

		faint := color.New(color.Faint)
		bold := color.New(color.Bold)
		for _, c := range visible {
			bold.Println(c.Title)
			for _, t := range c.Trackers {
				state := vm.Completion(t.ID)
				fmt.Printf("  %s %s %s%s %s\n",
					completionMark(state),
					faint.Sprint(t.ID.String()[:8]),
					t.Title,
					emojiSuffix(t.Emoji),
					faint.Sprintf("(%d)", state.Count))
			}
		}
		return nil
	},
}

func completionMark(state engine.Completion) string {
	if state.CompletedToday {
		return color.GreenString("✓")
	}
	return "·"
}

func emojiSuffix(emoji string) string {
	if emoji == "" {
		return ""
	}
	return " " + emoji
}

func init() {
	listCmd.Flags().StringVarP(&listDate, "date", "d", "", "date to list (YYYY-MM-DD, default today)")
	listCmd.Flags().StringVar(&listSearch, "search", "", "filter by title substring")
	rootCmd.AddCommand(listCmd)
}
