// ABOUTME: Tests for the persistence gateway's change notification behavior.
// ABOUTME: Uses the in-memory backend; snapshots must arrive synchronously with the mutation.
package store

import (
	"testing"
	"time"

	"github.com/ekaterinarb/tracker/internal/models"
	"github.com/ekaterinarb/tracker/internal/storage"
)

func setupGateway(t *testing.T) *Gateway {
	t.Helper()
	g := New(storage.NewMemory(), nil)
	t.Cleanup(func() { _ = g.Close() })
	return g
}

func mustTracker(t *testing.T, title string, days ...models.Weekday) *models.Tracker {
	t.Helper()
	tr, err := models.NewTracker(title, "#FF0000", "", days, true)
	if err != nil {
		t.Fatalf("NewTracker failed: %v", err)
	}
	return tr
}

func TestMutationDeliversSnapshotSynchronously(t *testing.T) {
	g := setupGateway(t)

	var snapshots [][]models.TrackerCategory
	g.Categories.Subscribe(func(cs []models.TrackerCategory) {
		snapshots = append(snapshots, cs)
	})

	if err := g.Categories.Add("Health"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if len(snapshots) != 1 {
		t.Fatalf("expected 1 snapshot delivered synchronously, got %d", len(snapshots))
	}
	if len(snapshots[0]) != 1 || snapshots[0][0].Title != "Health" {
		t.Errorf("snapshot = %+v", snapshots[0])
	}
}

func TestAddTrackerNotifiesCategoriesToo(t *testing.T) {
	g := setupGateway(t)

	var categorySnapshots, trackerSnapshots int
	g.Categories.Subscribe(func([]models.TrackerCategory) { categorySnapshots++ })
	g.Trackers.Subscribe(func([]models.Tracker) { trackerSnapshots++ })

	if err := g.Trackers.Add(mustTracker(t, "Morning Run", models.Monday), "Health"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if categorySnapshots != 1 {
		t.Errorf("category subscribers notified %d times, want 1", categorySnapshots)
	}
	if trackerSnapshots != 1 {
		t.Errorf("tracker subscribers notified %d times, want 1", trackerSnapshots)
	}
}

func TestDeleteCategoryNotifiesAllStreams(t *testing.T) {
	g := setupGateway(t)

	tr := mustTracker(t, "Morning Run", models.Monday)
	if err := g.Trackers.Add(tr, "Health"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := g.Records.Add(models.NewTrackerRecord(tr.ID, time.Now())); err != nil {
		t.Fatalf("Add record failed: %v", err)
	}

	var lastTrackers []models.Tracker
	var lastRecords []models.TrackerRecord
	sawTrackers, sawRecords := false, false
	g.Trackers.Subscribe(func(ts []models.Tracker) { lastTrackers, sawTrackers = ts, true })
	g.Records.Subscribe(func(rs []models.TrackerRecord) { lastRecords, sawRecords = rs, true })

	if err := g.Categories.Delete("Health"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if !sawTrackers || !sawRecords {
		t.Fatal("cascade delete should notify tracker and record streams")
	}
	if len(lastTrackers) != 0 {
		t.Errorf("tracker snapshot after cascade = %+v", lastTrackers)
	}
	if len(lastRecords) != 0 {
		t.Errorf("record snapshot after cascade = %+v", lastRecords)
	}
}

func TestFailedMutationDeliversNothing(t *testing.T) {
	g := setupGateway(t)

	notified := 0
	g.Categories.Subscribe(func([]models.TrackerCategory) { notified++ })

	if err := g.Categories.Delete("missing"); err == nil {
		t.Fatal("deleting a missing category should fail")
	}
	if notified != 0 {
		t.Errorf("failed mutation should not notify, got %d notifications", notified)
	}
}

func TestUnsubscribedCallbackNotCalled(t *testing.T) {
	g := setupGateway(t)

	notified := 0
	unsub := g.Categories.Subscribe(func([]models.TrackerCategory) { notified++ })
	unsub()

	if err := g.Categories.Add("Health"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if notified != 0 {
		t.Errorf("unsubscribed callback was called %d times", notified)
	}
}
