// ABOUTME: TrackerRecord model for per-day completion events.
// ABOUTME: All date comparisons are calendar-day granular; timestamps are normalized away.
package models

import (
	"time"

	"github.com/google/uuid"
)

// DayFormat is the serialized form of a completion day.
const DayFormat = "2006-01-02"

// TrackerRecord is evidence that a tracker was completed on a specific
// calendar day. Records reference trackers by ID only. At most one record
// exists per (tracker, day) pair; the stores enforce this.
type TrackerRecord struct {
	TrackerID uuid.UUID
	Day       time.Time
}

// NewTrackerRecord builds a record for the calendar day containing date.
func NewTrackerRecord(trackerID uuid.UUID, date time.Time) TrackerRecord {
	return TrackerRecord{TrackerID: trackerID, Day: DayOf(date)}
}

// Matches reports structural equality: same tracker ID and same calendar day.
func (r TrackerRecord) Matches(trackerID uuid.UUID, date time.Time) bool {
	return r.TrackerID == trackerID && SameDay(r.Day, date)
}

// DayOf truncates t to its calendar day in UTC.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
