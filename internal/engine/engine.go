// ABOUTME: Pure filtering and aggregation over tracker collections.
// ABOUTME: Date scoping is by weekday containment; search is a case-insensitive substring match.
package engine

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ekaterinarb/tracker/internal/i18n"
	"github.com/ekaterinarb/tracker/internal/models"
)

// Completion is the derived completion state of one tracker for a selected
// date. Count is the all-time total, not scoped to the date.
type Completion struct {
	CompletedToday bool
	Count          int
}

// VisibleCategories derives the date- and search-scoped view of the
// category collection. A tracker is visible when its schedule contains the
// weekday of selectedDate and, if searchText is non-empty, its title
// contains searchText case-insensitively. Habits and one-off events are
// filtered by the same schedule-containment rule. Categories left with no
// visible trackers are dropped; relative order is preserved.
func VisibleCategories(categories []models.TrackerCategory, selectedDate time.Time, searchText string) []models.TrackerCategory {
	weekday := models.WeekdayOf(selectedDate)
	search := strings.ToLower(searchText)

	var out []models.TrackerCategory
	for _, c := range categories {
		var visible []models.Tracker
		for _, t := range c.Trackers {
			if !t.ScheduledOn(weekday) {
				continue
			}
			if search != "" && !strings.Contains(strings.ToLower(t.Title), search) {
				continue
			}
			visible = append(visible, t)
		}
		if len(visible) > 0 {
			out = append(out, models.TrackerCategory{Title: c.Title, Trackers: visible})
		}
	}
	return out
}

// CompletionState derives a tracker's completion for selectedDate from the
// full record collection.
func CompletionState(trackerID uuid.UUID, records []models.TrackerRecord, selectedDate time.Time) Completion {
	var c Completion
	for _, r := range records {
		if r.TrackerID != trackerID {
			continue
		}
		c.Count++
		if models.SameDay(r.Day, selectedDate) {
			c.CompletedToday = true
		}
	}
	return c
}

// RecordWriter is the slice of the record store that ToggleCompletion needs.
type RecordWriter interface {
	Add(r models.TrackerRecord) error
	Remove(trackerID uuid.UUID, day time.Time) error
}

// ToggleCompletion records or removes a completion for selectedDate.
// Completion cannot be recorded for a calendar day after today; that is
// rejected with a ValidationError before the writer is touched.
func ToggleCompletion(w RecordWriter, trackerID uuid.UUID, nowCompleted bool, selectedDate, today time.Time) error {
	if models.DayOf(selectedDate).After(models.DayOf(today)) {
		return &models.ValidationError{Field: "date", Reason: i18n.Localize("future_date_error")}
	}
	if nowCompleted {
		return w.Add(models.NewTrackerRecord(trackerID, selectedDate))
	}
	return w.Remove(trackerID, selectedDate)
}
