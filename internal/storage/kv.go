// ABOUTME: Badger key-value Repository implementation.
// ABOUTME: Entities are stored as JSON under typed key prefixes; cascades are manual prefix scans.
package storage

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"

	"github.com/ekaterinarb/tracker/internal/models"
)

const (
	kvCategoryPrefix = "c:"
	kvTrackerPrefix  = "t:"
	kvRecordPrefix   = "r:"
	kvSeqKey         = "meta:seq"
)

// KV is a Badger-backed Repository. Categories live under "c:<title>",
// trackers under "t:<id>", records under "r:<id>:<day>". Tracker values
// carry a sequence number to preserve insertion order across scans.
type KV struct {
	db        *badger.DB
	log       *slog.Logger
	integrity atomic.Int64
}

type kvTracker struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Color    string `json:"color"`
	Emoji    string `json:"emoji"`
	Schedule string `json:"schedule"`
	IsHabit  bool   `json:"is_habit"`
	Category string `json:"category"`
	Created  string `json:"created_at"`
	Seq      uint64 `json:"seq"`
}

// Compile-time check that KV implements Repository.
var _ Repository = (*KV)(nil)

// OpenKV opens or creates a Badger database rooted at dir.
func OpenKV(dir string) (*KV, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open kv store: %w", err)
	}
	return &KV{db: db, log: slog.With("component", "storage")}, nil
}

// Close flushes and closes the underlying Badger database.
func (s *KV) Close() error {
	return s.db.Close()
}

// IntegrityWarnings returns the number of malformed persisted entries
// dropped from fetch results since the store was opened.
func (s *KV) IntegrityWarnings() int {
	return int(s.integrity.Load())
}

func (s *KV) dropEntry(key string, err error) {
	s.integrity.Add(1)
	s.log.Warn("dropping malformed entry", "key", key, "error", err)
}

// Categories returns categories sorted by title with their trackers.
func (s *KV) Categories() ([]models.TrackerCategory, error) {
	titles, err := s.categoryTitles()
	if err != nil {
		return nil, err
	}
	trackers, err := s.loadTrackers()
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string][]models.Tracker)
	for _, kt := range trackers {
		t, err := kt.decode()
		if err != nil {
			s.dropEntry(kvTrackerPrefix+kt.ID, err)
			continue
		}
		byCategory[kt.Category] = append(byCategory[kt.Category], *t)
	}

	var out []models.TrackerCategory
	for _, title := range titles {
		out = append(out, models.TrackerCategory{Title: title, Trackers: byCategory[title]})
	}
	return out, nil
}

// AddCategory creates an empty category.
func (s *KV) AddCategory(title string) error {
	if title == "" {
		return &models.ValidationError{Field: "title", Reason: "must not be empty"}
	}

	key := []byte(kvCategoryPrefix + title)
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err == nil {
			return fmt.Errorf("category %q already exists", title)
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return txn.Set(key, []byte(time.Now().Format(time.RFC3339)))
	})
	if err != nil {
		return fmt.Errorf("add category: %w", err)
	}
	return nil
}

// DeleteCategory removes a category, its trackers, and their records in one
// transaction.
func (s *KV) DeleteCategory(title string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		key := []byte(kvCategoryPrefix + title)
		if _, err := txn.Get(key); errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		} else if err != nil {
			return err
		}
		if err := txn.Delete(key); err != nil {
			return err
		}

		trackers, err := scanTrackers(txn)
		if err != nil {
			return err
		}
		for _, kt := range trackers {
			if kt.Category != title {
				continue
			}
			if err := txn.Delete([]byte(kvTrackerPrefix + kt.ID)); err != nil {
				return err
			}
			if err := deleteRecordsFor(txn, kt.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete category %q: %w", title, err)
	}
	return nil
}

// Trackers returns all trackers in insertion order.
func (s *KV) Trackers() ([]models.Tracker, error) {
	kts, err := s.loadTrackers()
	if err != nil {
		return nil, err
	}

	var out []models.Tracker
	for _, kt := range kts {
		t, err := kt.decode()
		if err != nil {
			s.dropEntry(kvTrackerPrefix+kt.ID, err)
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

// AddTracker inserts a tracker, creating the category if needed.
func (s *KV) AddTracker(t *models.Tracker, categoryTitle string) error {
	if categoryTitle == "" {
		return &models.ValidationError{Field: "category", Reason: "must not be empty"}
	}
	if err := t.Validate(); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		catKey := []byte(kvCategoryPrefix + categoryTitle)
		if _, err := txn.Get(catKey); errors.Is(err, badger.ErrKeyNotFound) {
			if err := txn.Set(catKey, []byte(time.Now().Format(time.RFC3339))); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		seq, err := nextSeq(txn)
		if err != nil {
			return err
		}
		value, err := json.Marshal(kvTracker{
			ID:       t.ID.String(),
			Title:    t.Title,
			Color:    t.Color,
			Emoji:    t.Emoji,
			Schedule: EncodeSchedule(t.Schedule),
			IsHabit:  t.IsHabit,
			Category: categoryTitle,
			Created:  t.CreatedAt.Format(time.RFC3339),
			Seq:      seq,
		})
		if err != nil {
			return err
		}
		return txn.Set([]byte(kvTrackerPrefix+t.ID.String()), value)
	})
	if err != nil {
		return fmt.Errorf("add tracker: %w", err)
	}
	return nil
}

// DeleteTracker removes a tracker and its records.
func (s *KV) DeleteTracker(id uuid.UUID) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		key := []byte(kvTrackerPrefix + id.String())
		if _, err := txn.Get(key); errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		} else if err != nil {
			return err
		}
		if err := txn.Delete(key); err != nil {
			return err
		}
		return deleteRecordsFor(txn, id.String())
	})
	if err != nil {
		return fmt.Errorf("delete tracker %s: %w", id, err)
	}
	return nil
}

// Records returns all completion records in a stable (day, tracker) order.
func (s *KV) Records() ([]models.TrackerRecord, error) {
	var out []models.TrackerRecord
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(kvRecordPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			r, err := decodeRecordKey(key)
			if err != nil {
				s.dropEntry(key, err)
				continue
			}
			out = append(out, r)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
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
func (s *KV) AddRecord(r models.TrackerRecord) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get([]byte(kvTrackerPrefix + r.TrackerID.String())); errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("tracker %s: %w", r.TrackerID, ErrNotFound)
		} else if err != nil {
			return err
		}
		return txn.Set([]byte(recordKeyFor(r.TrackerID, r.Day)), nil)
	})
	if err != nil {
		return fmt.Errorf("add record: %w", err)
	}
	return nil
}

// RemoveRecord deletes a completion; removing a missing one is a no-op.
func (s *KV) RemoveRecord(trackerID uuid.UUID, day time.Time) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(recordKeyFor(trackerID, day)))
	})
	if err != nil {
		return fmt.Errorf("remove record: %w", err)
	}
	return nil
}

// CompletionCount returns the all-time number of completions for a tracker.
func (s *KV) CompletionCount(trackerID uuid.UUID) (int, error) {
	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		prefix := []byte(kvRecordPrefix + trackerID.String() + ":")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("completion count: %w", err)
	}
	return count, nil
}

// IsCompleted reports whether a completion exists for the given day.
func (s *KV) IsCompleted(trackerID uuid.UUID, day time.Time) (bool, error) {
	var exists bool
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(recordKeyFor(trackerID, day)))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		exists = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("is completed: %w", err)
	}
	return exists, nil
}

func (s *KV) categoryTitles() ([]string, error) {
	var titles []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		prefix := []byte(kvCategoryPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			titles = append(titles, strings.TrimPrefix(string(it.Item().Key()), kvCategoryPrefix))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	sort.Strings(titles)
	return titles, nil
}

func (s *KV) loadTrackers() ([]kvTracker, error) {
	var out []kvTracker
	err := s.db.View(func(txn *badger.Txn) error {
		kts, err := scanTrackers(txn)
		if err != nil {
			return err
		}
		out = kts
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list trackers: %w", err)
	}
	return out, nil
}

func scanTrackers(txn *badger.Txn) ([]kvTracker, error) {
	var out []kvTracker
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()
	prefix := []byte(kvTrackerPrefix)
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		var kt kvTracker
		err := it.Item().Value(func(v []byte) error {
			return json.Unmarshal(v, &kt)
		})
		if err != nil {
			// Keep the key so the caller can report the entry; decode
			// fails again later and the entry is dropped there.
			kt = kvTracker{ID: strings.TrimPrefix(string(it.Item().Key()), kvTrackerPrefix)}
		}
		out = append(out, kt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out, nil
}

func (kt kvTracker) decode() (*models.Tracker, error) {
	id, err := uuid.Parse(kt.ID)
	if err != nil {
		return nil, fmt.Errorf("parse tracker id: %w", err)
	}
	if kt.Title == "" {
		return nil, fmt.Errorf("tracker %s has empty title", kt.ID)
	}
	days, err := DecodeSchedule(kt.Schedule)
	if err != nil {
		return nil, err
	}

	t := &models.Tracker{
		ID:       id,
		Title:    kt.Title,
		Color:    kt.Color,
		Emoji:    kt.Emoji,
		Schedule: days,
		IsHabit:  kt.IsHabit,
	}
	t.CreatedAt, _ = time.Parse(time.RFC3339, kt.Created)
	return t, nil
}

func nextSeq(txn *badger.Txn) (uint64, error) {
	var seq uint64
	item, err := txn.Get([]byte(kvSeqKey))
	switch {
	case errors.Is(err, badger.ErrKeyNotFound):
	case err != nil:
		return 0, err
	default:
		if err := item.Value(func(v []byte) error {
			if len(v) == 8 {
				seq = binary.BigEndian.Uint64(v)
			}
			return nil
		}); err != nil {
			return 0, err
		}
	}

	seq++
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, seq)
	if err := txn.Set([]byte(kvSeqKey), buf); err != nil {
		return 0, err
	}
	return seq, nil
}

// deleteRecordsFor removes every record key of one tracker inside txn.
// Keys are collected before deleting so the iterator never sees its own
// writes.
func deleteRecordsFor(txn *badger.Txn, trackerID string) error {
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	it := txn.NewIterator(opts)
	prefix := []byte(kvRecordPrefix + trackerID + ":")
	var keys [][]byte
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	it.Close()

	for _, key := range keys {
		if err := txn.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

func recordKeyFor(trackerID uuid.UUID, day time.Time) string {
	return kvRecordPrefix + trackerID.String() + ":" + models.DayOf(day).Format(models.DayFormat)
}

func decodeRecordKey(key string) (models.TrackerRecord, error) {
	rest := strings.TrimPrefix(key, kvRecordPrefix)
	idStr, dayStr, ok := strings.Cut(rest, ":")
	if !ok {
		return models.TrackerRecord{}, fmt.Errorf("malformed record key %q", key)
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return models.TrackerRecord{}, fmt.Errorf("parse record id: %w", err)
	}
	day, err := time.Parse(models.DayFormat, dayStr)
	if err != nil {
		return models.TrackerRecord{}, fmt.Errorf("parse record day: %w", err)
	}
	return models.TrackerRecord{TrackerID: id, Day: day}, nil
}
