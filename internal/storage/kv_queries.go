// ABOUTME: Stats queries for the key-value storage backend.
// ABOUTME: Builds the same base rows as the SQLite backend and reuses the shared folds.
package storage

import (
	"fmt"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/harperreed/lift/internal/models"
)

// DailyMaxWeight returns the heaviest weighted set per date for the
// exercise, ascending by date.
func (s *KVStore) DailyMaxWeight(exercise string) ([]models.DailyMax, error) {
	rows, err := s.allSetRows()
	if err != nil {
		return nil, fmt.Errorf("daily max weight: %w", err)
	}

	matched := rows[:0]
	for _, r := range rows {
		if r.Set.Weight != nil && matchesExercise(r.Set, exercise) {
			matched = append(matched, r)
		}
	}
	sortForDailyMax(matched)
	return foldDailyMax(matched), nil
}

// RecentExercises groups all sets case-insensitively by exercise,
// most recently logged first.
func (s *KVStore) RecentExercises(limit int) ([]models.RecentExercise, error) {
	rows, err := s.allSetRows()
	if err != nil {
		return nil, fmt.Errorf("recent exercises: %w", err)
	}
	return foldRecentExercises(rows, limit), nil
}

// ExerciseHistory returns the full chronological trace of an exercise.
func (s *KVStore) ExerciseHistory(exercise string) ([]models.HistoryEntry, error) {
	rows, err := s.allSetRows()
	if err != nil {
		return nil, fmt.Errorf("exercise history: %w", err)
	}

	matched := rows[:0]
	for _, r := range rows {
		if matchesExercise(r.Set, exercise) {
			matched = append(matched, r)
		}
	}
	return foldHistory(matched), nil
}

// allSetRows joins every set with its workout's date. Sets whose
// workout is unknown are skipped; they cannot be dated.
func (s *KVStore) allSetRows() ([]setRow, error) {
	workouts, err := s.allWorkouts()
	if err != nil {
		return nil, err
	}
	dateByID := make(map[int64]string, len(workouts))
	for _, w := range workouts {
		dateByID[w.ID] = w.Date
	}

	var rows []setRow
	err = s.db.View(func(txn *badger.Txn) error {
		return forEachPrefix(txn, setListPrefix, func(key string, val []byte) error {
			var list []*models.Set
			if err := decodeJSON(val, &list); err != nil {
				return err
			}
			for _, set := range list {
				date, ok := dateByID[set.WorkoutID]
				if !ok {
					continue
				}
				rows = append(rows, setRow{Date: date, Set: *set})
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}
