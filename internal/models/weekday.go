// ABOUTME: Weekday enum with calendar day-of-week codes.
// ABOUTME: Codes follow the platform calendar convention: 1 = Sunday .. 7 = Saturday.
package models

import (
	"time"

	"github.com/ekaterinarb/tracker/internal/i18n"
)

// Weekday is one of the seven days of the week. The numeric code matches the
// calendar day-of-week numbering (1 = Sunday .. 7 = Saturday), which is what
// gets persisted in tracker schedules.
type Weekday int

const (
	Sunday Weekday = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// AllWeekdays lists the seven weekdays in calendar order.
var AllWeekdays = []Weekday{
	Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday,
}

var weekdayKeys = map[Weekday]string{
	Sunday:    "sunday",
	Monday:    "monday",
	Tuesday:   "tuesday",
	Wednesday: "wednesday",
	Thursday:  "thursday",
	Friday:    "friday",
	Saturday:  "saturday",
}

// Valid reports whether w is one of the seven weekday codes.
func (w Weekday) Valid() bool {
	return w >= Sunday && w <= Saturday
}

// Name returns the full localized weekday name.
func (w Weekday) Name() string {
	return i18n.Localize(weekdayKeys[w])
}

// Abbrev returns the short localized weekday abbreviation.
func (w Weekday) Abbrev() string {
	return i18n.Localize(weekdayKeys[w] + "_short")
}

// WeekdayOf returns the weekday code for the calendar day containing t.
func WeekdayOf(t time.Time) Weekday {
	return Weekday(int(t.Weekday()) + 1)
}

// NormalizeSchedule removes duplicate and invalid weekdays and returns the
// remaining set sorted by code. A nil or empty input yields an empty slice.
func NormalizeSchedule(days []Weekday) []Weekday {
	var seen [8]bool
	out := make([]Weekday, 0, len(days))
	for _, d := range AllWeekdays {
		seen[d] = false
	}
	for _, d := range days {
		if d.Valid() && !seen[d] {
			seen[d] = true
		}
	}
	for _, d := range AllWeekdays {
		if seen[d] {
			out = append(out, d)
		}
	}
	return out
}
