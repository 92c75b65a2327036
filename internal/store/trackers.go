// ABOUTME: Tracker store of the persistence gateway.
// ABOUTME: Adding a tracker resolves or creates its category transactionally.
package store

import (
	"github.com/google/uuid"

	"github.com/ekaterinarb/tracker/internal/models"
	"github.com/ekaterinarb/tracker/internal/watch"
)

// TrackerStore exposes tracker operations and a change stream carrying the
// full tracker collection.
type TrackerStore struct {
	gateway  *Gateway
	notifier watch.Notifier[[]models.Tracker]
}

// FetchAll returns all trackers in insertion order.
func (s *TrackerStore) FetchAll() ([]models.Tracker, error) {
	return s.gateway.repo.Trackers()
}

// Add inserts a tracker into the named category, creating the category when
// it does not exist, and notifies the tracker and category streams.
func (s *TrackerStore) Add(t *models.Tracker, categoryTitle string) error {
	if err := s.gateway.repo.AddTracker(t, categoryTitle); err != nil {
		return err
	}
	s.gateway.notify(categoriesChanged, trackersChanged)
	return nil
}

// Delete removes a tracker and its records, then notifies the category,
// tracker, and record streams.
func (s *TrackerStore) Delete(id uuid.UUID) error {
	if err := s.gateway.repo.DeleteTracker(id); err != nil {
		return err
	}
	s.gateway.notify(categoriesChanged, trackersChanged, recordsChanged)
	return nil
}

// Subscribe registers fn to receive the full collection after every commit
// that affects trackers. The returned handle cancels the subscription.
func (s *TrackerStore) Subscribe(fn func([]models.Tracker)) (unsubscribe func()) {
	return s.notifier.Subscribe(fn)
}
