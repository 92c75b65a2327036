// ABOUTME: Repository interface for tracker data storage.
// ABOUTME: Defines the contract shared by the SQLite, in-memory, and Badger backends.
package storage

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ekaterinarb/tracker/internal/models"
)

// ErrNotFound marks lookups and deletions that matched nothing. Record
// removal is exempt: removing a non-existent record is a no-op.
var ErrNotFound = errors.New("not found")

// Repository defines the storage contract for tracker data. All backends
// return collections in a stable order: categories sorted by title, trackers
// in insertion order within their category. Persisted entries that fail to
// decode are dropped from results, counted, and logged rather than failing
// the whole fetch.
type Repository interface {
	// Category operations
	Categories() ([]models.TrackerCategory, error)
	AddCategory(title string) error
	DeleteCategory(title string) error

	// Tracker operations
	Trackers() ([]models.Tracker, error)
	AddTracker(t *models.Tracker, categoryTitle string) error
	DeleteTracker(id uuid.UUID) error

	// Record operations
	Records() ([]models.TrackerRecord, error)
	AddRecord(r models.TrackerRecord) error
	RemoveRecord(trackerID uuid.UUID, day time.Time) error
	CompletionCount(trackerID uuid.UUID) (int, error)
	IsCompleted(trackerID uuid.UUID, day time.Time) (bool, error)

	// Lifecycle
	Close() error
}
