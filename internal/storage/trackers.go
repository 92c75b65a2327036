// ABOUTME: Tracker CRUD operations for SQLite storage.
// ABOUTME: AddTracker resolves or creates the named category in one transaction.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ekaterinarb/tracker/internal/models"
)

// Trackers returns all trackers in insertion order.
func (d *DB) Trackers() ([]models.Tracker, error) {
	rows, err := d.db.Query(`
		SELECT id, title, color, emoji, schedule, is_habit, created_at
		FROM trackers
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("list trackers: %w", err)
	}
	defer rows.Close()

	var trackers []models.Tracker
	for rows.Next() {
		t, err := d.scanTracker(rows)
		if err != nil {
			return nil, err
		}
		if t != nil {
			trackers = append(trackers, *t)
		}
	}
	return trackers, rows.Err()
}

// AddTracker inserts a tracker into the named category, creating the
// category if it does not exist yet. The insert is transactional: either the
// tracker and its category linkage both land, or neither does.
func (d *DB) AddTracker(t *models.Tracker, categoryTitle string) error {
	if categoryTitle == "" {
		return &models.ValidationError{Field: "category", Reason: "must not be empty"}
	}
	if err := t.Validate(); err != nil {
		return err
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("add tracker: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(
		`INSERT INTO categories (title) VALUES (?) ON CONFLICT (title) DO NOTHING`,
		categoryTitle,
	); err != nil {
		return fmt.Errorf("add tracker: resolve category: %w", err)
	}

	if _, err := tx.Exec(`
		INSERT INTO trackers (id, title, color, emoji, schedule, is_habit, category_title, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID.String(),
		t.Title,
		t.Color,
		t.Emoji,
		EncodeSchedule(t.Schedule),
		t.IsHabit,
		categoryTitle,
		t.CreatedAt.Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("add tracker: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("add tracker: %w", err)
	}
	return nil
}

// DeleteTracker removes a tracker and, via the schema's cascade rules, all
// of its completion records.
func (d *DB) DeleteTracker(id uuid.UUID) error {
	result, err := d.db.Exec(`DELETE FROM trackers WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("delete tracker: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete tracker: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete tracker %s: %w", id, ErrNotFound)
	}
	return nil
}

// trackersByCategory groups all decodable trackers by their category title,
// preserving insertion order within each category.
func (d *DB) trackersByCategory() (map[string][]models.Tracker, error) {
	rows, err := d.db.Query(`
		SELECT id, title, color, emoji, schedule, is_habit, created_at, category_title
		FROM trackers
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("list trackers: %w", err)
	}
	defer rows.Close()

	byCategory := make(map[string][]models.Tracker)
	for rows.Next() {
		var (
			idStr, title, color, emoji, schedule, createdAt, category string
			isHabit                                                   bool
		)
		if err := rows.Scan(&idStr, &title, &color, &emoji, &schedule, &isHabit, &createdAt, &category); err != nil {
			return nil, fmt.Errorf("scan tracker: %w", err)
		}
		t, err := decodeTracker(idStr, title, color, emoji, schedule, createdAt, isHabit)
		if err != nil {
			d.dropRow("tracker", idStr, err)
			continue
		}
		byCategory[category] = append(byCategory[category], *t)
	}
	return byCategory, rows.Err()
}

// scanTracker decodes the current row, returning (nil, nil) for a malformed
// row after counting it.
func (d *DB) scanTracker(rows *sql.Rows) (*models.Tracker, error) {
	var (
		idStr, title, color, emoji, schedule, createdAt string
		isHabit                                         bool
	)
	if err := rows.Scan(&idStr, &title, &color, &emoji, &schedule, &isHabit, &createdAt); err != nil {
		return nil, fmt.Errorf("scan tracker: %w", err)
	}
	t, err := decodeTracker(idStr, title, color, emoji, schedule, createdAt, isHabit)
	if err != nil {
		d.dropRow("tracker", idStr, err)
		return nil, nil
	}
	return t, nil
}

func decodeTracker(idStr, title, color, emoji, schedule, createdAt string, isHabit bool) (*models.Tracker, error) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("parse tracker id: %w", err)
	}
	if title == "" {
		return nil, fmt.Errorf("tracker %s has empty title", idStr)
	}
	days, err := DecodeSchedule(schedule)
	if err != nil {
		return nil, err
	}

	t := &models.Tracker{
		ID:       id,
		Title:    title,
		Color:    color,
		Emoji:    emoji,
		Schedule: days,
		IsHabit:  isHabit,
	}
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return t, nil
}
