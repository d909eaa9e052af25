// ABOUTME: Set operations for the SQLite storage backend.
// ABOUTME: Referential integrity is enforced by the sets -> workouts foreign key.
package storage

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/harperreed/lift/internal/models"
)

// AddSet inserts a set under the given workout. The foreign key
// rejects inserts referencing a workout that does not exist.
func (d *DB) AddSet(workoutID int64, exercise string, reps int, weight *float64, unit string) (*models.Set, error) {
	s := models.NewSet(workoutID, exercise, reps, weight, unit)

	query := `
		INSERT INTO sets (workout_id, exercise, reps, weight, unit)
		VALUES (?, ?, ?, ?, ?)
	`
	res, err := d.db.Exec(query, s.WorkoutID, s.Exercise, s.Reps, s.Weight, s.Unit)
	if err != nil {
		if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
			return nil, fmt.Errorf("add set: workout %d: %w", workoutID, ErrNotFound)
		}
		return nil, fmt.Errorf("add set: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("add set: %w", err)
	}
	s.ID = id
	return s, nil
}

// EditSet replaces every field of an existing set. Editing a set that
// does not exist is a no-op.
func (d *DB) EditSet(id int64, exercise string, reps int, weight *float64, unit string) error {
	if unit == "" {
		unit = models.DefaultUnit
	}
	query := `
		UPDATE sets SET exercise = ?, reps = ?, weight = ?, unit = ?
		WHERE id = ?
	`
	_, err := d.db.Exec(query, strings.TrimSpace(exercise), reps, weight, unit, id)
	if err != nil {
		return fmt.Errorf("edit set: %w", err)
	}
	return nil
}

// DeleteSet removes a set by id. Deleting a missing set is a no-op.
func (d *DB) DeleteSet(id int64) error {
	if _, err := d.db.Exec(`DELETE FROM sets WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete set: %w", err)
	}
	return nil
}

// SetsForWorkout returns all sets for a workout, newest first.
func (d *DB) SetsForWorkout(workoutID int64) ([]*models.Set, error) {
	query := `
		SELECT id, workout_id, exercise, reps, weight, unit
		FROM sets
		WHERE workout_id = ?
		ORDER BY id DESC
	`
	rows, err := d.db.Query(query, workoutID)
	if err != nil {
		return nil, fmt.Errorf("sets for workout: %w", err)
	}
	defer rows.Close()

	return scanSets(rows)
}

// scanSet scans a single row into a Set struct.
func scanSet(row rowScanner) (*models.Set, error) {
	var s models.Set
	var weight sql.NullFloat64
	var unit sql.NullString

	if err := row.Scan(&s.ID, &s.WorkoutID, &s.Exercise, &s.Reps, &weight, &unit); err != nil {
		return nil, err
	}

	if weight.Valid {
		s.Weight = &weight.Float64
	}
	s.Unit = models.DefaultUnit
	if unit.Valid && unit.String != "" {
		s.Unit = unit.String
	}
	return &s, nil
}

// scanSets scans multiple rows into a slice of Sets.
func scanSets(rows *sql.Rows) ([]*models.Set, error) {
	var sets []*models.Set
	for rows.Next() {
		s, err := scanSet(rows)
		if err != nil {
			return nil, fmt.Errorf("scan set: %w", err)
		}
		sets = append(sets, s)
	}
	return sets, rows.Err()
}
