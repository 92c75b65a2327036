// ABOUTME: Tracker and TrackerCategory domain models with construction-time validation.
// ABOUTME: Trackers are immutable once created; edits replace the whole value.
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/rivo/uniseg"
)

// MaxTitleLength is the display cap on tracker titles, counted in grapheme
// clusters. Longer input is truncated at the input boundary, never rejected.
const MaxTitleLength = 38

// Tracker is a trackable habit or one-off event.
type Tracker struct {
	ID        uuid.UUID
	Title     string
	Color     string
	Emoji     string
	Schedule  []Weekday
	IsHabit   bool
	CreatedAt time.Time
}

// NewTracker creates a Tracker with a generated ID. The title must be
// non-empty (truncate it with TruncateTitle first if it may exceed the cap),
// the emoji must be a single grapheme, and the schedule is deduplicated and
// sorted by weekday code.
func NewTracker(title, color, emoji string, schedule []Weekday, isHabit bool) (*Tracker, error) {
	t := &Tracker{
		ID:        uuid.New(),
		Title:     title,
		Color:     color,
		Emoji:     emoji,
		Schedule:  NormalizeSchedule(schedule),
		IsHabit:   isHabit,
		CreatedAt: time.Now(),
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the tracker invariants.
func (t *Tracker) Validate() error {
	if t.Title == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if uniseg.GraphemeClusterCount(t.Title) > MaxTitleLength {
		return &ValidationError{Field: "title", Reason: "exceeds maximum length"}
	}
	if t.Emoji != "" && uniseg.GraphemeClusterCount(t.Emoji) != 1 {
		return &ValidationError{Field: "emoji", Reason: "must be a single grapheme"}
	}
	for _, d := range t.Schedule {
		if !d.Valid() {
			return &ValidationError{Field: "schedule", Reason: "invalid weekday code"}
		}
	}
	return nil
}

// ScheduledOn reports whether the tracker recurs on the given weekday.
func (t *Tracker) ScheduledOn(day Weekday) bool {
	for _, d := range t.Schedule {
		if d == day {
			return true
		}
	}
	return false
}

// TruncateTitle cuts s down to MaxTitleLength grapheme clusters. Counting
// graphemes rather than bytes keeps emoji and combining marks intact.
func TruncateTitle(s string) string {
	if uniseg.GraphemeClusterCount(s) <= MaxTitleLength {
		return s
	}
	g := uniseg.NewGraphemes(s)
	var end, n int
	for g.Next() {
		n++
		if n > MaxTitleLength {
			break
		}
		_, end = g.Positions()
	}
	return s[:end]
}

// TrackerCategory is a named grouping of trackers. The category owns its
// trackers in the persisted model; a tracker belongs to exactly one category.
type TrackerCategory struct {
	Title    string
	Trackers []Tracker
}
