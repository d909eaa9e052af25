// ABOUTME: Stats queries for the SQLite storage backend.
// ABOUTME: SQL fetches the joined base rows; the shared folds aggregate them.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/harperreed/lift/internal/models"
)

// DailyMaxWeight returns, per calendar date, the heaviest weighted
// set of the exercise (case-insensitive), ascending by date. Ties on
// weight go to the earliest-inserted set.
func (d *DB) DailyMaxWeight(exercise string) ([]models.DailyMax, error) {
	query := `
		SELECT w.date, s.id, s.workout_id, s.exercise, s.reps, s.weight, s.unit
		FROM sets s
		JOIN workouts w ON w.id = s.workout_id
		WHERE LOWER(TRIM(s.exercise)) = LOWER(TRIM(?)) AND s.weight IS NOT NULL
		ORDER BY w.date ASC, s.weight DESC, s.id ASC
	`
	rows, err := d.querySetRows(query, exercise)
	if err != nil {
		return nil, fmt.Errorf("daily max weight: %w", err)
	}
	return foldDailyMax(rows), nil
}

// RecentExercises groups all sets case-insensitively by exercise and
// returns the groups ordered by most recently logged, truncated to
// limit when limit > 0.
func (d *DB) RecentExercises(limit int) ([]models.RecentExercise, error) {
	query := `
		SELECT w.date, s.id, s.workout_id, s.exercise, s.reps, s.weight, s.unit
		FROM sets s
		JOIN workouts w ON w.id = s.workout_id
	`
	rows, err := d.querySetRows(query)
	if err != nil {
		return nil, fmt.Errorf("recent exercises: %w", err)
	}
	return foldRecentExercises(rows, limit), nil
}

// ExerciseHistory returns the full chronological trace of an
// exercise: every matching set ordered by date, workout id, set id.
func (d *DB) ExerciseHistory(exercise string) ([]models.HistoryEntry, error) {
	query := `
		SELECT w.date, s.id, s.workout_id, s.exercise, s.reps, s.weight, s.unit
		FROM sets s
		JOIN workouts w ON w.id = s.workout_id
		WHERE LOWER(TRIM(s.exercise)) = LOWER(TRIM(?))
		ORDER BY w.date ASC, s.workout_id ASC, s.id ASC
	`
	rows, err := d.querySetRows(query, exercise)
	if err != nil {
		return nil, fmt.Errorf("exercise history: %w", err)
	}
	return foldHistory(rows), nil
}

// querySetRows runs a date+set projection query and collects the rows.
func (d *DB) querySetRows(query string, args ...interface{}) ([]setRow, error) {
	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []setRow
	for rows.Next() {
		var r setRow
		var weight sql.NullFloat64
		var unit sql.NullString
		err := rows.Scan(&r.Date, &r.Set.ID, &r.Set.WorkoutID, &r.Set.Exercise, &r.Set.Reps, &weight, &unit)
		if err != nil {
			return nil, err
		}
		if weight.Valid {
			r.Set.Weight = &weight.Float64
		}
		r.Set.Unit = models.DefaultUnit
		if unit.Valid && unit.String != "" {
			r.Set.Unit = unit.String
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
