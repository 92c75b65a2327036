// ABOUTME: Persistence gateway: per-entity stores over a shared Repository.
// ABOUTME: Every mutation re-derives the affected collections and publishes them to subscribers.
package store

import (
	"log/slog"

	"github.com/ekaterinarb/tracker/internal/storage"
)

// Gateway bundles the three per-entity stores over one Repository. It is
// the single source of truth: after any mutation it re-fetches the affected
// collections and pushes them, synchronously, to every subscriber. A
// mutation by one store notifies the other stores whose entities it touched
// (cascade deletes in particular).
type Gateway struct {
	repo storage.Repository
	log  *slog.Logger

	Categories *CategoryStore
	Trackers   *TrackerStore
	Records    *RecordStore
}

// New builds a gateway over repo. The gateway does not own stdout; pass a
// logger configured by the composition root.
func New(repo storage.Repository, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	g := &Gateway{repo: repo, log: logger.With("component", "store")}
	g.Categories = &CategoryStore{gateway: g}
	g.Trackers = &TrackerStore{gateway: g}
	g.Records = &RecordStore{gateway: g}
	return g
}

// Close closes the underlying repository.
func (g *Gateway) Close() error {
	return g.repo.Close()
}

type entityKind int

const (
	categoriesChanged entityKind = iota
	trackersChanged
	recordsChanged
)

// notify re-derives and publishes the collection for each affected entity
// kind. A fetch failure here degrades to a skipped notification rather than
// failing the mutation that already committed.
func (g *Gateway) notify(kinds ...entityKind) {
	for _, kind := range kinds {
		switch kind {
		case categoriesChanged:
			snapshot, err := g.repo.Categories()
			if err != nil {
				g.log.Error("refresh categories snapshot", "error", err)
				continue
			}
			g.Categories.notifier.Publish(snapshot)
		case trackersChanged:
			snapshot, err := g.repo.Trackers()
			if err != nil {
				g.log.Error("refresh trackers snapshot", "error", err)
				continue
			}
			g.Trackers.notifier.Publish(snapshot)
		case recordsChanged:
			snapshot, err := g.repo.Records()
			if err != nil {
				g.log.Error("refresh records snapshot", "error", err)
				continue
			}
			g.Records.notifier.Publish(snapshot)
		}
	}
}
