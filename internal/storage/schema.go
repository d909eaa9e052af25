// ABOUTME: SQLite schema definition and additive column migrations.
// ABOUTME: Migrations are idempotent and safe to re-run on every open.
package storage

import "strings"

// initSchema creates the tables and applies column migrations.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS workouts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL,
		notes TEXT,
		started_at TEXT,
		ended_at TEXT,
		name TEXT
	);

	CREATE TABLE IF NOT EXISTS sets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		workout_id INTEGER NOT NULL REFERENCES workouts(id) ON DELETE CASCADE,
		exercise TEXT NOT NULL,
		reps INTEGER NOT NULL,
		weight REAL,
		unit TEXT DEFAULT 'kg'
	);

	CREATE INDEX IF NOT EXISTS idx_workouts_date ON workouts(date);
	CREATE INDEX IF NOT EXISTS idx_sets_workout ON sets(workout_id);
	`

	if _, err := d.db.Exec(schema); err != nil {
		return err
	}

	return d.migrateColumns()
}

// migrateColumns adds columns missing from databases created by
// older versions. Failures from columns that already exist are
// expected and swallowed; anything else is a real error.
func (d *DB) migrateColumns() error {
	migrations := []string{
		`ALTER TABLE workouts ADD COLUMN started_at TEXT`,
		`ALTER TABLE workouts ADD COLUMN ended_at TEXT`,
		`ALTER TABLE workouts ADD COLUMN name TEXT`,
	}
	for _, m := range migrations {
		if _, err := d.db.Exec(m); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return err
		}
	}
	return nil
}
