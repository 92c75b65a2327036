// ABOUTME: Tests for TrackerRecord day normalization and structural equality.
// ABOUTME: Verifies that time-of-day never influences record matching.
package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewTrackerRecordNormalizes(t *testing.T) {
	id := uuid.New()
	stamp := time.Date(2024, 1, 10, 18, 42, 7, 0, time.Local)
	r := NewTrackerRecord(id, stamp)

	if r.Day.Hour() != 0 || r.Day.Minute() != 0 {
		t.Errorf("day not normalized: %v", r.Day)
	}
	if !SameDay(r.Day, stamp) {
		t.Error("normalized day should compare equal to the source timestamp")
	}
}

func TestRecordMatches(t *testing.T) {
	id := uuid.New()
	r := NewTrackerRecord(id, time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC))

	if !r.Matches(id, time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC)) {
		t.Error("same day, different time should match")
	}
	if r.Matches(id, time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)) {
		t.Error("different day should not match")
	}
	if r.Matches(uuid.New(), time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)) {
		t.Error("different tracker should not match")
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 1, 10, 0, 0, 1, 0, time.UTC)
	b := time.Date(2024, 1, 10, 23, 59, 59, 0, time.UTC)
	c := time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)

	if !SameDay(a, b) {
		t.Error("same calendar day should match")
	}
	if SameDay(b, c) {
		t.Error("adjacent days should not match")
	}
}
