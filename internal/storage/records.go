// ABOUTME: Completion record operations for SQLite storage.
// ABOUTME: Records are keyed by (tracker, calendar day); duplicate adds are no-ops.
package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ekaterinarb/tracker/internal/models"
)

// Records returns all completion records in a stable (day, tracker) order.
func (d *DB) Records() ([]models.TrackerRecord, error) {
	rows, err := d.db.Query(`SELECT tracker_id, day FROM records ORDER BY day, tracker_id`)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var records []models.TrackerRecord
	for rows.Next() {
		var idStr, day string
		if err := rows.Scan(&idStr, &day); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		id, err := uuid.Parse(idStr)
		if err != nil {
			d.dropRow("record", idStr, err)
			continue
		}
		parsed, err := time.Parse(models.DayFormat, day)
		if err != nil {
			d.dropRow("record", idStr, err)
			continue
		}
		records = append(records, models.TrackerRecord{TrackerID: id, Day: parsed})
	}
	return records, rows.Err()
}

// AddRecord stores a completion. The tracker must exist; inserting an
// already-recorded (tracker, day) pair is a no-op, which keeps completion
// toggles idempotent.
func (d *DB) AddRecord(r models.TrackerRecord) error {
	var exists bool
	err := d.db.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM trackers WHERE id = ?)`,
		r.TrackerID.String(),
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("add record: %w", err)
	}
	if !exists {
		return fmt.Errorf("add record: tracker %s: %w", r.TrackerID, ErrNotFound)
	}

	_, err = d.db.Exec(
		`INSERT INTO records (tracker_id, day) VALUES (?, ?) ON CONFLICT DO NOTHING`,
		r.TrackerID.String(),
		models.DayOf(r.Day).Format(models.DayFormat),
	)
	if err != nil {
		return fmt.Errorf("add record: %w", err)
	}
	return nil
}

// RemoveRecord deletes the completion for the calendar day containing day.
// Removing a record that does not exist is not an error.
func (d *DB) RemoveRecord(trackerID uuid.UUID, day time.Time) error {
	_, err := d.db.Exec(
		`DELETE FROM records WHERE tracker_id = ? AND day = ?`,
		trackerID.String(),
		models.DayOf(day).Format(models.DayFormat),
	)
	if err != nil {
		return fmt.Errorf("remove record: %w", err)
	}
	return nil
}

// CompletionCount returns the all-time number of completions for a tracker.
func (d *DB) CompletionCount(trackerID uuid.UUID) (int, error) {
	var count int
	err := d.db.QueryRow(
		`SELECT COUNT(*) FROM records WHERE tracker_id = ?`,
		trackerID.String(),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("completion count: %w", err)
	}
	return count, nil
}

// IsCompleted reports whether the tracker has a completion on the calendar
// day containing day.
func (d *DB) IsCompleted(trackerID uuid.UUID, day time.Time) (bool, error) {
	var exists bool
	err := d.db.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM records WHERE tracker_id = ? AND day = ?)`,
		trackerID.String(),
		models.DayOf(day).Format(models.DayFormat),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("is completed: %w", err)
	}
	return exists, nil
}
