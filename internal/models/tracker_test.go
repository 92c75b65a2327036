// ABOUTME: Tests for Tracker construction and title truncation.
// ABOUTME: Verifies validation rules and grapheme-aware length handling.
package models

import (
	"errors"
	"strings"
	"testing"
)

func TestNewTracker(t *testing.T) {
	tr, err := NewTracker("Morning Run", "#FF0000", "🔥", []Weekday{Wednesday, Monday, Monday}, true)
	if err != nil {
		t.Fatalf("NewTracker failed: %v", err)
	}
	if tr.ID.String() == "" {
		t.Error("expected generated ID")
	}
	if len(tr.Schedule) != 2 || tr.Schedule[0] != Monday || tr.Schedule[1] != Wednesday {
		t.Errorf("schedule not normalized: %v", tr.Schedule)
	}
	if !tr.ScheduledOn(Monday) || tr.ScheduledOn(Friday) {
		t.Error("ScheduledOn mismatch")
	}
}

func TestNewTrackerValidation(t *testing.T) {
	tests := []struct {
		name  string
		title string
		emoji string
	}{
		{"empty title", "", ""},
		{"multi-grapheme emoji", "Run", "🔥🔥"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTracker(tt.title, "", tt.emoji, nil, true)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestTruncateTitle(t *testing.T) {
	short := "Morning Run"
	if got := TruncateTitle(short); got != short {
		t.Errorf("short title changed: %q", got)
	}

	long := strings.Repeat("a", 50)
	got := TruncateTitle(long)
	if len(got) != MaxTitleLength {
		t.Errorf("truncated length = %d, want %d", len(got), MaxTitleLength)
	}

	// Emoji count as one grapheme each, even when multi-byte.
	emoji := strings.Repeat("🏃", 40)
	got = TruncateTitle(emoji)
	if got != strings.Repeat("🏃", MaxTitleLength) {
		t.Errorf("emoji truncation split a grapheme: %q", got)
	}

	tr, err := NewTracker(TruncateTitle(long), "", "", nil, true)
	if err != nil {
		t.Fatalf("truncated title should validate: %v", err)
	}
	if tr.Title != long[:MaxTitleLength] {
		t.Errorf("unexpected title %q", tr.Title)
	}
}
