// ABOUTME: Completion record store of the persistence gateway.
// ABOUTME: Adds are idempotent per (tracker, day); removes of missing records are no-ops.
package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/ekaterinarb/tracker/internal/models"
	"github.com/ekaterinarb/tracker/internal/watch"
)

// RecordStore exposes completion record operations and a change stream
// carrying the full record collection.
type RecordStore struct {
	gateway  *Gateway
	notifier watch.Notifier[[]models.TrackerRecord]
}

// FetchAll returns all completion records.
func (s *RecordStore) FetchAll() ([]models.TrackerRecord, error) {
	return s.gateway.repo.Records()
}

// Add stores a completion and notifies subscribers. Re-adding an existing
// (tracker, day) pair commits nothing new but still re-emits the snapshot.
func (s *RecordStore) Add(r models.TrackerRecord) error {
	if err := s.gateway.repo.AddRecord(r); err != nil {
		return err
	}
	s.gateway.notify(recordsChanged)
	return nil
}

// Remove deletes the completion for the calendar day containing day and
// notifies subscribers. Zero deletions is not an error.
func (s *RecordStore) Remove(trackerID uuid.UUID, day time.Time) error {
	if err := s.gateway.repo.RemoveRecord(trackerID, day); err != nil {
		return err
	}
	s.gateway.notify(recordsChanged)
	return nil
}

// CompletionCount returns the all-time number of completions for a tracker.
func (s *RecordStore) CompletionCount(trackerID uuid.UUID) (int, error) {
	return s.gateway.repo.CompletionCount(trackerID)
}

// IsCompleted reports whether the tracker has a completion on the calendar
// day containing day.
func (s *RecordStore) IsCompleted(trackerID uuid.UUID, day time.Time) (bool, error) {
	return s.gateway.repo.IsCompleted(trackerID, day)
}

// Subscribe registers fn to receive the full collection after every commit
// that affects records. The returned handle cancels the subscription.
func (s *RecordStore) Subscribe(fn func([]models.TrackerRecord)) (unsubscribe func()) {
	return s.notifier.Subscribe(fn)
}
