// ABOUTME: Category CRUD operations for SQLite storage.
// ABOUTME: Deleting a category cascades to its trackers and their records.
package storage

import (
	"fmt"

	"github.com/ekaterinarb/tracker/internal/models"
)

// Categories returns the full materialized collection, sorted by title, with
// each category's trackers attached in insertion order.
func (d *DB) Categories() ([]models.TrackerCategory, error) {
	rows, err := d.db.Query(`SELECT title FROM categories ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []models.TrackerCategory
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, models.TrackerCategory{Title: title})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	byCategory, err := d.trackersByCategory()
	if err != nil {
		return nil, err
	}
	for i := range categories {
		categories[i].Trackers = byCategory[categories[i].Title]
	}
	return categories, nil
}

// AddCategory creates an empty category. The title must be non-empty and
// unique among categories.
func (d *DB) AddCategory(title string) error {
	if title == "" {
		return &models.ValidationError{Field: "title", Reason: "must not be empty"}
	}

	var exists bool
	err := d.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM categories WHERE title = ?)`, title).Scan(&exists)
	if err != nil {
		return fmt.Errorf("add category: %w", err)
	}
	if exists {
		return fmt.Errorf("category %q already exists", title)
	}

	if _, err := d.db.Exec(`INSERT INTO categories (title) VALUES (?)`, title); err != nil {
		return fmt.Errorf("add category: %w", err)
	}
	return nil
}

// DeleteCategory removes a category and, via the schema's cascade rules, all
// trackers it contains and their records.
func (d *DB) DeleteCategory(title string) error {
	result, err := d.db.Exec(`DELETE FROM categories WHERE title = ?`, title)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete category %q: %w", title, ErrNotFound)
	}
	return nil
}
