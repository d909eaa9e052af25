// ABOUTME: Workout operations for the SQLite storage backend.
// ABOUTME: Stop targets the newest still-active workout for the date.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/harperreed/lift/internal/models"
)

// StartWorkout inserts a new workout row for the date, started now.
// It never checks for an existing active workout; starting twice on
// the same date creates two rows and the newer one wins by recency.
func (d *DB) StartWorkout(date, name string) (*models.Workout, error) {
	w := models.NewWorkout(date, name)

	query := `
		INSERT INTO workouts (date, notes, started_at, ended_at, name)
		VALUES (?, ?, ?, ?, ?)
	`
	res, err := d.db.Exec(query,
		w.Date,
		w.Notes,
		timePtrString(w.StartedAt),
		timePtrString(w.EndedAt),
		w.Name,
	)
	if err != nil {
		return nil, fmt.Errorf("start workout: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("start workout: %w", err)
	}
	w.ID = id
	return w, nil
}

// StopWorkoutForDate sets ended_at on the most recently created
// workout for the date that is still active. Returns (nil, nil) when
// no workout on that date is active.
func (d *DB) StopWorkoutForDate(date string) (*models.Workout, error) {
	endedAt := time.Now()

	// Resolve the target id first so the returned row is the one that
	// was stopped, not just the newest row for the date.
	var id int64
	err := d.db.QueryRow(`
		SELECT id FROM workouts
		WHERE date = ? AND ended_at IS NULL
		ORDER BY id DESC
		LIMIT 1
	`, date).Scan(&id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stop workout: %w", err)
	}

	_, err = d.db.Exec(`UPDATE workouts SET ended_at = ? WHERE id = ?`,
		endedAt.Format(time.RFC3339), id)
	if err != nil {
		return nil, fmt.Errorf("stop workout: %w", err)
	}

	w, err := d.workoutByID(id)
	if err != nil {
		return nil, fmt.Errorf("stop workout: %w", err)
	}
	return w, nil
}

// workoutByID fetches a single workout row.
func (d *DB) workoutByID(id int64) (*models.Workout, error) {
	query := `
		SELECT id, date, notes, started_at, ended_at, name
		FROM workouts
		WHERE id = ?
	`
	return scanWorkout(d.db.QueryRow(query, id))
}

// LatestWorkoutForDate returns the newest workout for the date, or
// (nil, nil) when the date has none.
func (d *DB) LatestWorkoutForDate(date string) (*models.Workout, error) {
	query := `
		SELECT id, date, notes, started_at, ended_at, name
		FROM workouts
		WHERE date = ?
		ORDER BY id DESC
		LIMIT 1
	`
	w, err := scanWorkout(d.db.QueryRow(query, date))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest workout: %w", err)
	}
	return w, nil
}

// WorkoutsForDate returns all workouts for the date, newest first.
func (d *DB) WorkoutsForDate(date string) ([]*models.Workout, error) {
	query := `
		SELECT id, date, notes, started_at, ended_at, name
		FROM workouts
		WHERE date = ?
		ORDER BY id DESC
	`
	rows, err := d.db.Query(query, date)
	if err != nil {
		return nil, fmt.Errorf("workouts for date: %w", err)
	}
	defer rows.Close()

	return scanWorkouts(rows)
}

// ListWorkouts returns workouts across all dates ordered by date
// descending then id descending, paginated when limit > 0.
func (d *DB) ListWorkouts(limit, offset int) ([]*models.Workout, error) {
	query := `
		SELECT id, date, notes, started_at, ended_at, name
		FROM workouts
		ORDER BY date DESC, id DESC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, limit, offset)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	return scanWorkouts(rows)
}

// CountWorkouts returns the total number of workouts.
func (d *DB) CountWorkouts() (int, error) {
	var c int
	if err := d.db.QueryRow(`SELECT COUNT(*) FROM workouts`).Scan(&c); err != nil {
		return 0, fmt.Errorf("count workouts: %w", err)
	}
	return c, nil
}

// DeleteWorkout removes a workout and all its sets (cascade delete).
func (d *DB) DeleteWorkout(id int64) error {
	// CASCADE is enabled, so deleting the workout deletes its sets
	res, err := d.db.Exec(`DELETE FROM workouts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete workout %d: %w", id, ErrNotFound)
	}
	return nil
}

// RestoreWorkout inserts a workout and its sets preserving every
// field value, assigning fresh ids. Used by import and backend
// migration.
func (d *DB) RestoreWorkout(w *models.Workout, sets []*models.Set) (*models.Workout, error) {
	restored := *w

	query := `
		INSERT INTO workouts (date, notes, started_at, ended_at, name)
		VALUES (?, ?, ?, ?, ?)
	`
	res, err := d.db.Exec(query,
		restored.Date,
		restored.Notes,
		timePtrString(restored.StartedAt),
		timePtrString(restored.EndedAt),
		restored.Name,
	)
	if err != nil {
		return nil, fmt.Errorf("restore workout: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("restore workout: %w", err)
	}
	restored.ID = id

	for _, set := range sets {
		if _, err := d.AddSet(id, set.Exercise, set.Reps, set.Weight, set.Unit); err != nil {
			return nil, fmt.Errorf("restore workout: %w", err)
		}
	}
	return &restored, nil
}

// timePtrString formats an optional timestamp for storage.
func timePtrString(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanWorkout scans a single row into a Workout struct.
func scanWorkout(row rowScanner) (*models.Workout, error) {
	var w models.Workout
	var notes, startedAt, endedAt, name sql.NullString

	if err := row.Scan(&w.ID, &w.Date, &notes, &startedAt, &endedAt, &name); err != nil {
		return nil, err
	}

	if notes.Valid {
		w.Notes = &notes.String
	}
	if name.Valid {
		w.Name = &name.String
	}
	if startedAt.Valid {
		if t, err := time.Parse(time.RFC3339, startedAt.String); err == nil {
			w.StartedAt = &t
		}
	}
	if endedAt.Valid {
		if t, err := time.Parse(time.RFC3339, endedAt.String); err == nil {
			w.EndedAt = &t
		}
	}
	return &w, nil
}

// scanWorkouts scans multiple rows into a slice of Workouts.
func scanWorkouts(rows *sql.Rows) ([]*models.Workout, error) {
	var workouts []*models.Workout
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}
