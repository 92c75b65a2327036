// ABOUTME: View-state coordinator for the category picking screen.
// ABOUTME: Holds the latest store snapshot plus transient selection state.
package viewstate

import (
	"log/slog"

	"github.com/ekaterinarb/tracker/internal/models"
	"github.com/ekaterinarb/tracker/internal/store"
)

// CategoriesViewModel adapts the category store for a selection screen. It
// keeps the last delivered snapshot and the currently highlighted category,
// and signals changes through optional callbacks. Out-of-bounds selection is
// a no-op, never a fault.
type CategoriesViewModel struct {
	store       *store.CategoryStore
	log         *slog.Logger
	categories  []models.TrackerCategory
	selected    string
	hasSelected bool
	unsubscribe func()

	OnUpdate           func()
	OnSelect           func(models.TrackerCategory)
	OnEmptyStateChange func(empty bool)
}

// NewCategoriesViewModel subscribes to the store and loads the initial
// snapshot. Call Close when the screen goes away.
func NewCategoriesViewModel(cs *store.CategoryStore, logger *slog.Logger) *CategoriesViewModel {
	if logger == nil {
		logger = slog.Default()
	}
	vm := &CategoriesViewModel{store: cs, log: logger.With("component", "viewstate")}
	vm.unsubscribe = cs.Subscribe(func(categories []models.TrackerCategory) {
		vm.categories = categories
		vm.changed()
	})
	vm.Load()
	return vm
}

// Load refreshes the snapshot from the store. A read failure degrades to an
// empty collection.
func (vm *CategoriesViewModel) Load() {
	categories, err := vm.store.FetchAll()
	if err != nil {
		vm.log.Error("load categories", "error", err)
		categories = nil
	}
	vm.categories = categories
	vm.changed()
}

// Count returns the number of categories in the current snapshot.
func (vm *CategoriesViewModel) Count() int {
	return len(vm.categories)
}

// TitleAt returns the category title at index, or false when the index is
// out of the current snapshot's bounds.
func (vm *CategoriesViewModel) TitleAt(index int) (string, bool) {
	if index < 0 || index >= len(vm.categories) {
		return "", false
	}
	return vm.categories[index].Title, true
}

// SelectAt highlights the category at index and signals the selection.
// Indexes outside the current snapshot are ignored.
func (vm *CategoriesViewModel) SelectAt(index int) {
	if index < 0 || index >= len(vm.categories) {
		return
	}
	vm.selected = vm.categories[index].Title
	vm.hasSelected = true
	if vm.OnSelect != nil {
		vm.OnSelect(vm.categories[index])
	}
}

// IsSelectedAt reports whether the category at index is the highlighted one.
func (vm *CategoriesViewModel) IsSelectedAt(index int) bool {
	if !vm.hasSelected || index < 0 || index >= len(vm.categories) {
		return false
	}
	return vm.categories[index].Title == vm.selected
}

// AddCategory creates a new empty category through the store; the resulting
// change notification refreshes the snapshot.
func (vm *CategoriesViewModel) AddCategory(title string) error {
	return vm.store.Add(title)
}

// Close cancels the store subscription.
func (vm *CategoriesViewModel) Close() {
	if vm.unsubscribe != nil {
		vm.unsubscribe()
		vm.unsubscribe = nil
	}
}

func (vm *CategoriesViewModel) changed() {
	if vm.OnUpdate != nil {
		vm.OnUpdate()
	}
	if vm.OnEmptyStateChange != nil {
		vm.OnEmptyStateChange(len(vm.categories) == 0)
	}
}
