// ABOUTME: SQLite-specific storage tests.
// ABOUTME: Verifies read-time tolerance of malformed persisted rows.
package storage

import (
	"testing"

	"github.com/ekaterinarb/tracker/internal/models"
)

func TestMalformedRowsDroppedNotFatal(t *testing.T) {
	db := setupTestDB(t)

	good := mustTracker(t, "Morning Run", models.Monday)
	if err := db.AddTracker(good, "Health"); err != nil {
		t.Fatalf("AddTracker failed: %v", err)
	}

	// Corrupt rows written around the decoder: a bogus id and a bogus
	// schedule encoding.
	for _, args := range [][]any{
		{"not-a-uuid", "Broken", "v1:2"},
		{"6b1d1a66-0000-0000-0000-000000000000", "Broken Too", "garbage"},
	} {
		if _, err := db.db.Exec(`
			INSERT INTO trackers (id, title, color, emoji, schedule, is_habit, category_title, created_at)
			VALUES (?, ?, '', '', ?, 1, 'Health', '2024-01-01T00:00:00Z')`,
			args[0], args[1], args[2]); err != nil {
			t.Fatalf("inject corrupt row: %v", err)
		}
	}

	categories, err := db.Categories()
	if err != nil {
		t.Fatalf("Categories should tolerate corrupt rows: %v", err)
	}
	if len(categories) != 1 || len(categories[0].Trackers) != 1 {
		t.Fatalf("expected only the good tracker, got %+v", categories)
	}
	if categories[0].Trackers[0].ID != good.ID {
		t.Errorf("surviving tracker is wrong: %+v", categories[0].Trackers[0])
	}

	if got := db.IntegrityWarnings(); got != 2 {
		t.Errorf("IntegrityWarnings = %d, want 2", got)
	}
}

func TestOpenCreatesParentDirs(t *testing.T) {
	db := setupTestDB(t)
	if err := db.AddCategory("Health"); err != nil {
		t.Fatalf("AddCategory failed: %v", err)
	}
}
