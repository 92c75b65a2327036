// ABOUTME: Tests for CLI argument parsing helpers.
// ABOUTME: Covers schedule shorthand, date formats, and error cases.
package main

import (
	"testing"
	"time"

	"github.com/ekaterinarb/tracker/internal/models"
)

func TestParseSchedule(t *testing.T) {
	tests := []struct {
		in   string
		want []models.Weekday
	}{
		{"", nil},
		{"mon", []models.Weekday{models.Monday}},
		{"mon,wed,fri", []models.Weekday{models.Monday, models.Wednesday, models.Friday}},
		{"FRI, Mon", []models.Weekday{models.Monday, models.Friday}},
		{"mon,mon", []models.Weekday{models.Monday}},
		{"daily", models.AllWeekdays},
		{"DAILY", models.AllWeekdays},
	}
	for _, tt := range tests {
		got, err := parseSchedule(tt.in)
		if err != nil {
			t.Errorf("parseSchedule(%q) failed: %v", tt.in, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("parseSchedule(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseSchedule(%q)[%d] = %v, want %v", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestParseScheduleUnknownDay(t *testing.T) {
	if _, err := parseSchedule("mon,funday"); err == nil {
		t.Error("expected an error for an unknown weekday")
	}
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("2024-01-08")
	if err != nil {
		t.Fatalf("parseDate failed: %v", err)
	}
	want := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parseDate = %v, want %v", got, want)
	}

	if _, err := parseDate("08/01/2024"); err == nil {
		t.Error("expected an error for a non-ISO date")
	}
}

func TestParseDateToday(t *testing.T) {
	for _, in := range []string{"", "today", "TODAY"} {
		got, err := parseDate(in)
		if err != nil {
			t.Fatalf("parseDate(%q) failed: %v", in, err)
		}
		if !models.SameDay(got, time.Now()) {
			t.Errorf("parseDate(%q) = %v, want today", in, got)
		}
	}
}
