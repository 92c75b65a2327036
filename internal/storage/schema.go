// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for categories, trackers, and completion records.
package storage

// initSchema creates or updates the database schema. Category deletion
// cascades to trackers, and tracker deletion cascades to records. The
// records primary key enforces at most one record per (tracker, day).
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS categories (
		title TEXT PRIMARY KEY CHECK (title <> ''),
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS trackers (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		color TEXT NOT NULL,
		emoji TEXT NOT NULL,
		schedule TEXT NOT NULL,
		is_habit INTEGER NOT NULL DEFAULT 1,
		category_title TEXT NOT NULL REFERENCES categories(title) ON DELETE CASCADE,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS records (
		tracker_id TEXT NOT NULL REFERENCES trackers(id) ON DELETE CASCADE,
		day TEXT NOT NULL,
		PRIMARY KEY (tracker_id, day)
	);

	CREATE INDEX IF NOT EXISTS idx_trackers_category ON trackers(category_title);
	CREATE INDEX IF NOT EXISTS idx_records_tracker ON records(tracker_id);
	`

	_, err := d.db.Exec(schema)
	return err
}
