// ABOUTME: View-state coordinator for the main tracker list screen.
// ABOUTME: Combines category and record snapshots with the date/search-scoped engine view.
package viewstate

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ekaterinarb/tracker/internal/engine"
	"github.com/ekaterinarb/tracker/internal/models"
	"github.com/ekaterinarb/tracker/internal/store"
)

// TrackersViewModel backs the main screen: the full category and record
// snapshots, the selected date, and the search text. The visible view is
// derived on demand through the engine.
type TrackersViewModel struct {
	gateway      *store.Gateway
	log          *slog.Logger
	categories   []models.TrackerCategory
	records      []models.TrackerRecord
	selectedDate time.Time
	searchText   string
	unsubs       []func()

	// now is the clock used for the future-date completion guard.
	now func() time.Time

	OnUpdate func()
}

// NewTrackersViewModel subscribes to the category and record streams and
// loads the initial snapshots. The selected date starts at today.
func NewTrackersViewModel(g *store.Gateway, logger *slog.Logger) *TrackersViewModel {
	if logger == nil {
		logger = slog.Default()
	}
	vm := &TrackersViewModel{
		gateway:      g,
		log:          logger.With("component", "viewstate"),
		selectedDate: time.Now(),
		now:          time.Now,
	}
	vm.unsubs = append(vm.unsubs,
		g.Categories.Subscribe(func(categories []models.TrackerCategory) {
			vm.categories = categories
			vm.changed()
		}),
		g.Records.Subscribe(func(records []models.TrackerRecord) {
			vm.records = records
			vm.changed()
		}),
	)
	vm.Load()
	return vm
}

// Load refreshes both snapshots from the gateway. Read failures degrade to
// empty collections.
func (vm *TrackersViewModel) Load() {
	categories, err := vm.gateway.Categories.FetchAll()
	if err != nil {
		vm.log.Error("load categories", "error", err)
		categories = nil
	}
	records, err := vm.gateway.Records.FetchAll()
	if err != nil {
		vm.log.Error("load records", "error", err)
		records = nil
	}
	vm.categories = categories
	vm.records = records
	vm.changed()
}

// SetDate changes the selected date.
func (vm *TrackersViewModel) SetDate(date time.Time) {
	vm.selectedDate = date
	vm.changed()
}

// SelectedDate returns the currently selected date.
func (vm *TrackersViewModel) SelectedDate() time.Time {
	return vm.selectedDate
}

// SetSearch changes the search text.
func (vm *TrackersViewModel) SetSearch(text string) {
	vm.searchText = text
	vm.changed()
}

// Visible returns the categories and trackers visible for the selected date
// and search text.
func (vm *TrackersViewModel) Visible() []models.TrackerCategory {
	return engine.VisibleCategories(vm.categories, vm.selectedDate, vm.searchText)
}

// Completion returns the derived completion state of a tracker for the
// selected date.
func (vm *TrackersViewModel) Completion(trackerID uuid.UUID) engine.Completion {
	return engine.CompletionState(trackerID, vm.records, vm.selectedDate)
}

// Toggle records or removes a completion for the selected date. Marking a
// future date is rejected with a ValidationError.
func (vm *TrackersViewModel) Toggle(trackerID uuid.UUID, nowCompleted bool) error {
	return engine.ToggleCompletion(vm.gateway.Records, trackerID, nowCompleted, vm.selectedDate, vm.now())
}

// AddTracker inserts a tracker into the named category.
func (vm *TrackersViewModel) AddTracker(t *models.Tracker, categoryTitle string) error {
	return vm.gateway.Trackers.Add(t, categoryTitle)
}

// Close cancels the store subscriptions.
func (vm *TrackersViewModel) Close() {
	for _, unsub := range vm.unsubs {
		unsub()
	}
	vm.unsubs = nil
}

func (vm *TrackersViewModel) changed() {
	if vm.OnUpdate != nil {
		vm.OnUpdate()
	}
}
