// ABOUTME: Shared CLI helpers for date parsing, schedule parsing, and ID resolution.
// ABOUTME: Tracker IDs may be given as unambiguous UUID prefixes.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ekaterinarb/tracker/internal/models"
)

var scheduleAbbrevs = map[string]models.Weekday{
	"sun": models.Sunday,
	"mon": models.Monday,
	"tue": models.Tuesday,
	"wed": models.Wednesday,
	"thu": models.Thursday,
	"fri": models.Friday,
	"sat": models.Saturday,
}

// parseSchedule turns a comma-separated weekday list ("mon,wed,fri") or the
// shorthand "daily" into a weekday set.
func parseSchedule(s string) ([]models.Weekday, error) {
	if s == "" {
		return nil, nil
	}
	if strings.EqualFold(s, "daily") {
		return models.AllWeekdays, nil
	}

	var days []models.Weekday
	for _, part := range strings.Split(s, ",") {
		d, ok := scheduleAbbrevs[strings.ToLower(strings.TrimSpace(part))]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q (use sun,mon,tue,wed,thu,fri,sat or daily)", part)
		}
		days = append(days, d)
	}
	return models.NormalizeSchedule(days), nil
}

// parseDate accepts YYYY-MM-DD or "today".
func parseDate(s string) (time.Time, error) {
	if s == "" || strings.EqualFold(s, "today") {
		return time.Now(), nil
	}
	t, err := time.Parse(models.DayFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}

// resolveTrackerID finds the existing tracker whose UUID starts with
// idOrPrefix. A full UUID still has to match a stored tracker.
func resolveTrackerID(idOrPrefix string) (uuid.UUID, error) {
	trackers, err := gateway.Trackers.FetchAll()
	if err != nil {
		return uuid.Nil, fmt.Errorf("list trackers: %w", err)
	}

	var matches []uuid.UUID
	for _, t := range trackers {
		if strings.HasPrefix(t.ID.String(), strings.ToLower(idOrPrefix)) {
			matches = append(matches, t.ID)
		}
	}
	if len(matches) == 0 {
		return uuid.Nil, fmt.Errorf("not found: %s", idOrPrefix)
	}
	if len(matches) > 1 {
		return uuid.Nil, fmt.Errorf("ambiguous prefix %s: matches multiple trackers", idOrPrefix)
	}
	return matches[0], nil
}
