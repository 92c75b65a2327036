// ABOUTME: Tests for the filtering and aggregation engine.
// ABOUTME: Covers weekday scoping, search, completion state, and the future-date guard.
package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ekaterinarb/tracker/internal/models"
	"github.com/ekaterinarb/tracker/internal/store"
	"github.com/ekaterinarb/tracker/internal/storage"
)

var (
	monday  = time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC)
	tuesday = time.Date(2024, 1, 9, 12, 0, 0, 0, time.UTC)
)

func mustTracker(t *testing.T, title string, days ...models.Weekday) models.Tracker {
	t.Helper()
	tr, err := models.NewTracker(title, "#FF0000", "", days, true)
	if err != nil {
		t.Fatalf("NewTracker failed: %v", err)
	}
	return *tr
}

func TestVisibleCategoriesByWeekday(t *testing.T) {
	t1 := mustTracker(t, "Morning Run", models.Monday, models.Wednesday)
	categories := []models.TrackerCategory{
		{Title: "Health", Trackers: []models.Tracker{t1}},
	}

	visible := VisibleCategories(categories, monday, "")
	if len(visible) != 1 || visible[0].Title != "Health" || len(visible[0].Trackers) != 1 {
		t.Fatalf("Monday view = %+v, want Health with one tracker", visible)
	}

	if visible = VisibleCategories(categories, tuesday, ""); len(visible) != 0 {
		t.Errorf("Tuesday view = %+v, want empty", visible)
	}
}

func TestVisibleCategoriesSearch(t *testing.T) {
	categories := []models.TrackerCategory{
		{Title: "Health", Trackers: []models.Tracker{
			mustTracker(t, "Morning Run", models.Monday),
			mustTracker(t, "Yoga", models.Monday),
		}},
	}

	visible := VisibleCategories(categories, monday, "run")
	if len(visible) != 1 || len(visible[0].Trackers) != 1 {
		t.Fatalf("search view = %+v, want one tracker", visible)
	}
	if visible[0].Trackers[0].Title != "Morning Run" {
		t.Errorf("search matched %q, want Morning Run", visible[0].Trackers[0].Title)
	}

	// Case-insensitive in both directions.
	if got := VisibleCategories(categories, monday, "YOGA"); len(got) != 1 || got[0].Trackers[0].Title != "Yoga" {
		t.Errorf("upper-case search failed: %+v", got)
	}
}

func TestVisibleCategoriesDropsEmptyAndKeepsOrder(t *testing.T) {
	categories := []models.TrackerCategory{
		{Title: "Home", Trackers: []models.Tracker{mustTracker(t, "Dishes", models.Tuesday)}},
		{Title: "Health", Trackers: []models.Tracker{mustTracker(t, "Run", models.Monday)}},
		{Title: "Work", Trackers: []models.Tracker{mustTracker(t, "Standup", models.Monday)}},
	}

	visible := VisibleCategories(categories, monday, "")
	if len(visible) != 2 {
		t.Fatalf("expected 2 visible categories, got %d", len(visible))
	}
	if visible[0].Title != "Health" || visible[1].Title != "Work" {
		t.Errorf("relative order not preserved: %q, %q", visible[0].Title, visible[1].Title)
	}
}

func TestCompletionStateEmpty(t *testing.T) {
	got := CompletionState(uuid.New(), nil, monday)
	if got.CompletedToday || got.Count != 0 {
		t.Errorf("empty records = %+v, want zero state", got)
	}
}

func TestCompletionStateCountsAllTime(t *testing.T) {
	id := uuid.New()
	other := uuid.New()
	records := []models.TrackerRecord{
		models.NewTrackerRecord(id, monday),
		models.NewTrackerRecord(id, monday.AddDate(0, 0, -7)),
		models.NewTrackerRecord(id, monday.AddDate(0, 0, -14)),
		models.NewTrackerRecord(other, monday),
	}

	got := CompletionState(id, records, monday)
	if !got.CompletedToday {
		t.Error("expected CompletedToday on Monday")
	}
	if got.Count != 3 {
		t.Errorf("Count = %d, want 3 (all-time, not date-scoped)", got.Count)
	}

	// A different selected date changes CompletedToday but not Count.
	got = CompletionState(id, records, tuesday)
	if got.CompletedToday {
		t.Error("Tuesday should not be completed")
	}
	if got.Count != 3 {
		t.Errorf("Count = %d, want 3", got.Count)
	}
}

func setupRecords(t *testing.T) (*store.RecordStore, uuid.UUID) {
	t.Helper()
	g := store.New(storage.NewMemory(), nil)
	t.Cleanup(func() { _ = g.Close() })

	tr := mustTracker(t, "Morning Run", models.Monday)
	if err := g.Trackers.Add(&tr, "Health"); err != nil {
		t.Fatalf("Add tracker failed: %v", err)
	}
	return g.Records, tr.ID
}

func TestToggleCompletionRoundTrip(t *testing.T) {
	records, id := setupRecords(t)
	today := monday.AddDate(0, 0, 2)

	if err := ToggleCompletion(records, id, true, monday, today); err != nil {
		t.Fatalf("toggle on failed: %v", err)
	}
	all, err := records.FetchAll()
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}
	state := CompletionState(id, all, monday)
	if !state.CompletedToday || state.Count != 1 {
		t.Fatalf("after toggle on: %+v", state)
	}

	if err := ToggleCompletion(records, id, false, monday, today); err != nil {
		t.Fatalf("toggle off failed: %v", err)
	}
	all, err = records.FetchAll()
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}
	state = CompletionState(id, all, monday)
	if state.CompletedToday || state.Count != 0 {
		t.Errorf("after toggle off: %+v", state)
	}
}

func TestToggleCompletionRejectsFutureDate(t *testing.T) {
	records, id := setupRecords(t)
	tomorrow := monday.AddDate(0, 0, 1)

	err := ToggleCompletion(records, id, true, tomorrow, monday)
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	all, err := records.FetchAll()
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("rejected toggle must leave records unchanged: %+v", all)
	}
}

func TestToggleCompletionSameDayLaterTimeAllowed(t *testing.T) {
	records, id := setupRecords(t)

	// Selected date later in the day than "now", but the same calendar day.
	now := time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)
	laterToday := time.Date(2024, 1, 8, 22, 0, 0, 0, time.UTC)

	if err := ToggleCompletion(records, id, true, laterToday, now); err != nil {
		t.Errorf("same-day toggle should pass the guard: %v", err)
	}
}
