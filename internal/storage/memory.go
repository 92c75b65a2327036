// ABOUTME: In-memory Repository implementation.
// ABOUTME: Reference backend for tests and the "memory" config backend.
package storage

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ekaterinarb/tracker/internal/models"
)

// Memory is an in-memory Repository. It mirrors the SQLite backend's
// semantics exactly: categories sorted by title, trackers in insertion
// order, one record per (tracker, day), cascade deletes.
type Memory struct {
	mu sync.Mutex

	// categories and trackers keep insertion order; reads sort categories
	// by title to match the gateway contract.
	categories []string
	trackers   []memTracker
	records    map[recordKey]struct{}
}

type memTracker struct {
	tracker  models.Tracker
	category string
}

type recordKey struct {
	trackerID uuid.UUID
	day       string
}

// Compile-time check that Memory implements Repository.
var _ Repository = (*Memory)(nil)

// NewMemory creates an empty in-memory repository.
func NewMemory() *Memory {
	return &Memory{records: make(map[recordKey]struct{})}
}

// Close is a no-op for the in-memory backend.
func (m *Memory) Close() error { return nil }

// Categories returns categories sorted by title with their trackers.
func (m *Memory) Categories() ([]models.TrackerCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	titles := make([]string, len(m.categories))
	copy(titles, m.categories)
	sort.Strings(titles)

	var out []models.TrackerCategory
	for _, title := range titles {
		c := models.TrackerCategory{Title: title}
		for _, mt := range m.trackers {
			if mt.category == title {
				c.Trackers = append(c.Trackers, mt.tracker)
			}
		}
		out = append(out, c)
	}
	return out, nil
}

// AddCategory creates an empty category.
func (m *Memory) AddCategory(title string) error {
	if title == "" {
		return &models.ValidationError{Field: "title", Reason: "must not be empty"}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.hasCategory(title) {
		return fmt.Errorf("category %q already exists", title)
	}
	m.categories = append(m.categories, title)
	return nil
}

// DeleteCategory removes a category, its trackers, and their records.
func (m *Memory) DeleteCategory(title string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.hasCategory(title) {
		return fmt.Errorf("delete category %q: %w", title, ErrNotFound)
	}
	for i, t := range m.categories {
		if t == title {
			m.categories = append(m.categories[:i], m.categories[i+1:]...)
			break
		}
	}

	kept := m.trackers[:0]
	for _, mt := range m.trackers {
		if mt.category == title {
			m.deleteRecords(mt.tracker.ID)
			continue
		}
		kept = append(kept, mt)
	}
	m.trackers = kept
	return nil
}

// Trackers returns all trackers in insertion order.
func (m *Memory) Trackers() ([]models.Tracker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Tracker, 0, len(m.trackers))
	for _, mt := range m.trackers {
		out = append(out, mt.tracker)
	}
	return out, nil
}

// AddTracker inserts a tracker, creating the category if needed.
func (m *Memory) AddTracker(t *models.Tracker, categoryTitle string) error {
	if categoryTitle == "" {
		return &models.ValidationError{Field: "category", Reason: "must not be empty"}
	}
	if err := t.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.hasCategory(categoryTitle) {
		m.categories = append(m.categories, categoryTitle)
	}
	m.trackers = append(m.trackers, memTracker{tracker: *t, category: categoryTitle})
	return nil
}

// DeleteTracker removes a tracker and its records.
func (m *Memory) DeleteTracker(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, mt := range m.trackers {
		if mt.tracker.ID == id {
			m.trackers = append(m.trackers[:i], m.trackers[i+1:]...)
			m.deleteRecords(id)
			return nil
		}
	}
	return fmt.Errorf("delete tracker %s: %w", id, ErrNotFound)
}

// Records returns all completion records in a stable (day, tracker) order.
func (m *Memory) Records() ([]models.TrackerRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.TrackerRecord, 0, len(m.records))
	for k := range m.records {
		day, _ := time.Parse(models.DayFormat, k.day)
		out = append(out, models.TrackerRecord{TrackerID: k.trackerID, Day: day})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Day.Equal(out[j].Day) {
			return out[i].Day.Before(out[j].Day)
		}
		return out[i].TrackerID.String() < out[j].TrackerID.String()
	})
	return out, nil
}

// AddRecord stores a completion. The tracker must exist; duplicates for the
// same day are no-ops.
func (m *Memory) AddRecord(r models.TrackerRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.hasTracker(r.TrackerID) {
		return fmt.Errorf("add record: tracker %s: %w", r.TrackerID, ErrNotFound)
	}
	m.records[newRecordKey(r.TrackerID, r.Day)] = struct{}{}
	return nil
}

// RemoveRecord deletes a completion; removing a missing one is a no-op.
func (m *Memory) RemoveRecord(trackerID uuid.UUID, day time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, newRecordKey(trackerID, day))
	return nil
}

// CompletionCount returns the all-time number of completions for a tracker.
func (m *Memory) CompletionCount(trackerID uuid.UUID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for k := range m.records {
		if k.trackerID == trackerID {
			count++
		}
	}
	return count, nil
}

// IsCompleted reports whether a completion exists for the given day.
func (m *Memory) IsCompleted(trackerID uuid.UUID, day time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.records[newRecordKey(trackerID, day)]
	return ok, nil
}

func (m *Memory) hasTracker(id uuid.UUID) bool {
	for _, mt := range m.trackers {
		if mt.tracker.ID == id {
			return true
		}
	}
	return false
}

func (m *Memory) hasCategory(title string) bool {
	for _, t := range m.categories {
		if t == title {
			return true
		}
	}
	return false
}

func (m *Memory) deleteRecords(trackerID uuid.UUID) {
	for k := range m.records {
		if k.trackerID == trackerID {
			delete(m.records, k)
		}
	}
}

func newRecordKey(trackerID uuid.UUID, day time.Time) recordKey {
	return recordKey{trackerID: trackerID, day: models.DayOf(day).Format(models.DayFormat)}
}
