// ABOUTME: Category store of the persistence gateway.
// ABOUTME: Category deletion cascades to trackers and records, and notifies all three streams.
package store

import (
	"github.com/ekaterinarb/tracker/internal/models"
	"github.com/ekaterinarb/tracker/internal/watch"
)

// CategoryStore exposes category operations and a change stream carrying the
// full category collection.
type CategoryStore struct {
	gateway  *Gateway
	notifier watch.Notifier[[]models.TrackerCategory]
}

// FetchAll returns the current materialized category collection, sorted by
// title.
func (s *CategoryStore) FetchAll() ([]models.TrackerCategory, error) {
	return s.gateway.repo.Categories()
}

// Add creates an empty category and notifies subscribers.
func (s *CategoryStore) Add(title string) error {
	if err := s.gateway.repo.AddCategory(title); err != nil {
		return err
	}
	s.gateway.notify(categoriesChanged)
	return nil
}

// Delete removes a category together with its trackers and their records,
// then notifies the category, tracker, and record streams.
func (s *CategoryStore) Delete(title string) error {
	if err := s.gateway.repo.DeleteCategory(title); err != nil {
		return err
	}
	s.gateway.notify(categoriesChanged, trackersChanged, recordsChanged)
	return nil
}

// Subscribe registers fn to receive the full collection after every commit
// that affects categories. The returned handle cancels the subscription.
func (s *CategoryStore) Subscribe(fn func([]models.TrackerCategory)) (unsubscribe func()) {
	return s.notifier.Subscribe(fn)
}
