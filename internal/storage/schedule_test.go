// ABOUTME: Tests for the versioned schedule encoding.
// ABOUTME: Verifies exact round-trips and rejection of malformed encodings.
package storage

import (
	"testing"

	"github.com/ekaterinarb/tracker/internal/models"
)

func TestScheduleRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		days []models.Weekday
		want string
	}{
		{"empty", nil, "v1:"},
		{"single", []models.Weekday{models.Monday}, "v1:2"},
		{"unordered input", []models.Weekday{models.Friday, models.Monday, models.Wednesday}, "v1:2,4,6"},
		{"duplicates collapsed", []models.Weekday{models.Monday, models.Monday}, "v1:2"},
		{"full week", models.AllWeekdays, "v1:1,2,3,4,5,6,7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := EncodeSchedule(tt.days)
			if encoded != tt.want {
				t.Fatalf("EncodeSchedule = %q, want %q", encoded, tt.want)
			}
			decoded, err := DecodeSchedule(encoded)
			if err != nil {
				t.Fatalf("DecodeSchedule failed: %v", err)
			}
			want := models.NormalizeSchedule(tt.days)
			if len(decoded) != len(want) {
				t.Fatalf("round trip changed the set: got %v, want %v", decoded, want)
			}
			for i := range want {
				if decoded[i] != want[i] {
					t.Errorf("round trip [%d] = %d, want %d", i, decoded[i], want[i])
				}
			}
		})
	}
}

func TestDecodeScheduleErrors(t *testing.T) {
	for _, bad := range []string{"", "1,2,3", "v2:1", "v1:x", "v1:0", "v1:8"} {
		if _, err := DecodeSchedule(bad); err == nil {
			t.Errorf("DecodeSchedule(%q) should fail", bad)
		}
	}
}
