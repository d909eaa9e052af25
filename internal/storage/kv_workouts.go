// ABOUTME: Workout and set operations for the key-value storage backend.
// ABOUTME: Cascade delete is replicated by hand since there are no foreign keys.
package storage

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/harperreed/lift/internal/models"
)

// StartWorkout appends a new workout to the date's list. Like the
// SQLite backend it never checks for an existing active workout.
func (s *KVStore) StartWorkout(date, name string) (*models.Workout, error) {
	w := models.NewWorkout(date, name)
	w.ID = s.nextID()

	err := s.db.Update(func(txn *badger.Txn) error {
		list, err := workoutList(txn, date)
		if err != nil {
			return err
		}
		list = append(list, w)
		return setJSON(txn, workoutListKey(date), list)
	})
	if err != nil {
		return nil, fmt.Errorf("start workout: %w", err)
	}
	return w, nil
}

// StopWorkoutForDate sets ended_at on the newest still-active workout
// for the date. Returns (nil, nil) when none is active.
func (s *KVStore) StopWorkoutForDate(date string) (*models.Workout, error) {
	endedAt := time.Now()
	var stopped *models.Workout

	err := s.db.Update(func(txn *badger.Txn) error {
		list, err := workoutList(txn, date)
		if err != nil {
			return err
		}

		sortWorkoutsNewestFirst(list)
		for _, w := range list {
			if w.EndedAt == nil {
				t := endedAt
				w.EndedAt = &t
				stopped = w
				return setJSON(txn, workoutListKey(date), list)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("stop workout: %w", err)
	}
	return stopped, nil
}

// LatestWorkoutForDate returns the newest workout for the date, or
// (nil, nil) when the date has none.
func (s *KVStore) LatestWorkoutForDate(date string) (*models.Workout, error) {
	workouts, err := s.WorkoutsForDate(date)
	if err != nil {
		return nil, err
	}
	if len(workouts) == 0 {
		return nil, nil
	}
	return workouts[0], nil
}

// WorkoutsForDate returns all workouts for the date, newest first.
func (s *KVStore) WorkoutsForDate(date string) ([]*models.Workout, error) {
	var list []*models.Workout
	err := s.db.Update(func(txn *badger.Txn) error {
		var err error
		list, err = workoutList(txn, date)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("workouts for date: %w", err)
	}
	sortWorkoutsNewestFirst(list)
	return list, nil
}

// ListWorkouts returns workouts across all dates ordered by date
// descending then id descending, paginated when limit > 0.
func (s *KVStore) ListWorkouts(limit, offset int) ([]*models.Workout, error) {
	all, err := s.allWorkouts()
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Date != all[j].Date {
			return all[i].Date > all[j].Date
		}
		return all[i].ID > all[j].ID
	})

	if limit <= 0 {
		return all, nil
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

// CountWorkouts returns the total number of workouts.
func (s *KVStore) CountWorkouts() (int, error) {
	all, err := s.allWorkouts()
	if err != nil {
		return 0, fmt.Errorf("count workouts: %w", err)
	}
	return len(all), nil
}

// DeleteWorkout removes a workout from its date list and drops the
// whole set list keyed to it, replicating the foreign-key cascade.
func (s *KVStore) DeleteWorkout(id int64) error {
	found := false
	err := s.db.Update(func(txn *badger.Txn) error {
		dates, err := collectWorkoutDates(txn)
		if err != nil {
			return err
		}

		for _, date := range dates {
			list, err := workoutList(txn, date)
			if err != nil {
				return err
			}
			kept := list[:0]
			for _, w := range list {
				if w.ID == id {
					found = true
					continue
				}
				kept = append(kept, w)
			}
			if !found {
				continue
			}
			if err := setJSON(txn, workoutListKey(date), kept); err != nil {
				return err
			}
			if err := txn.Delete(setListKey(id)); err != nil {
				return err
			}
			return nil
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	if !found {
		return fmt.Errorf("delete workout %d: %w", id, ErrNotFound)
	}
	return nil
}

// AddSet appends a set to the workout's list. The owning workout must
// exist, matching the foreign-key check on the SQLite backend.
func (s *KVStore) AddSet(workoutID int64, exercise string, reps int, weight *float64, unit string) (*models.Set, error) {
	set := models.NewSet(workoutID, exercise, reps, weight, unit)
	set.ID = s.nextID()

	err := s.db.Update(func(txn *badger.Txn) error {
		exists, err := workoutExists(txn, workoutID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("workout %d: %w", workoutID, ErrNotFound)
		}

		list, err := setList(txn, workoutID)
		if err != nil {
			return err
		}
		list = append(list, set)
		return setJSON(txn, setListKey(workoutID), list)
	})
	if err != nil {
		return nil, fmt.Errorf("add set: %w", err)
	}
	return set, nil
}

// EditSet replaces every field of an existing set. Editing a set that
// does not exist is a no-op. The set is located by scanning every
// workout's list; there is no secondary index on set ids.
func (s *KVStore) EditSet(id int64, exercise string, reps int, weight *float64, unit string) error {
	if unit == "" {
		unit = models.DefaultUnit
	}
	exercise = strings.TrimSpace(exercise)

	err := s.db.Update(func(txn *badger.Txn) error {
		keys, err := collectSetListKeys(txn)
		if err != nil {
			return err
		}
		for _, workoutID := range keys {
			list, err := setList(txn, workoutID)
			if err != nil {
				return err
			}
			for _, set := range list {
				if set.ID != id {
					continue
				}
				set.Exercise = exercise
				set.Reps = reps
				set.Weight = weight
				set.Unit = unit
				return setJSON(txn, setListKey(workoutID), list)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("edit set: %w", err)
	}
	return nil
}

// DeleteSet removes a set by id, scanning every workout's list.
func (s *KVStore) DeleteSet(id int64) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		keys, err := collectSetListKeys(txn)
		if err != nil {
			return err
		}
		for _, workoutID := range keys {
			list, err := setList(txn, workoutID)
			if err != nil {
				return err
			}
			kept := list[:0]
			removed := false
			for _, set := range list {
				if set.ID == id {
					removed = true
					continue
				}
				kept = append(kept, set)
			}
			if removed {
				if err := setJSON(txn, setListKey(workoutID), kept); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete set: %w", err)
	}
	return nil
}

// SetsForWorkout returns all sets for a workout, newest first.
func (s *KVStore) SetsForWorkout(workoutID int64) ([]*models.Set, error) {
	var list []*models.Set
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		list, err = setList(txn, workoutID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("sets for workout: %w", err)
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].ID > list[j].ID
	})
	return list, nil
}

// RestoreWorkout inserts a workout and its sets preserving every
// field value, assigning fresh ids.
func (s *KVStore) RestoreWorkout(w *models.Workout, sets []*models.Set) (*models.Workout, error) {
	restored := *w
	restored.ID = s.nextID()

	err := s.db.Update(func(txn *badger.Txn) error {
		list, err := workoutList(txn, restored.Date)
		if err != nil {
			return err
		}
		list = append(list, &restored)
		if err := setJSON(txn, workoutListKey(restored.Date), list); err != nil {
			return err
		}

		if len(sets) == 0 {
			return nil
		}
		copies := make([]*models.Set, 0, len(sets))
		for _, set := range sets {
			c := *set
			c.ID = s.nextID()
			c.WorkoutID = restored.ID
			copies = append(copies, &c)
		}
		return setJSON(txn, setListKey(restored.ID), copies)
	})
	if err != nil {
		return nil, fmt.Errorf("restore workout: %w", err)
	}
	return &restored, nil
}

// allWorkouts loads every workout from every date list. Legacy
// single-workout keys that were never touched are not included, same
// as the original flat-storage layout.
func (s *KVStore) allWorkouts() ([]*models.Workout, error) {
	var all []*models.Workout
	err := s.db.View(func(txn *badger.Txn) error {
		return forEachPrefix(txn, workoutListPrefix, func(key string, val []byte) error {
			var list []*models.Workout
			if err := decodeJSON(val, &list); err != nil {
				return err
			}
			all = append(all, list...)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return all, nil
}

// collectWorkoutDates returns every date that has a workout list.
func collectWorkoutDates(txn *badger.Txn) ([]string, error) {
	var dates []string
	err := forEachPrefix(txn, workoutListPrefix, func(key string, val []byte) error {
		dates = append(dates, strings.TrimPrefix(key, workoutListPrefix))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(dates)
	return dates, nil
}

// collectSetListKeys returns the workout id of every set list.
func collectSetListKeys(txn *badger.Txn) ([]int64, error) {
	var ids []int64
	err := forEachPrefix(txn, setListPrefix, func(key string, val []byte) error {
		raw := strings.TrimPrefix(key, setListPrefix)
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil
		}
		ids = append(ids, id)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// workoutExists reports whether any date list contains the id.
// Workouts still sitting under an untouched legacy single-workout key
// count too; they keep their id when the list migration runs later.
func workoutExists(txn *badger.Txn, id int64) (bool, error) {
	found := false
	err := forEachPrefix(txn, workoutListPrefix, func(key string, val []byte) error {
		if found {
			return nil
		}
		var list []*models.Workout
		if err := decodeJSON(val, &list); err != nil {
			return err
		}
		for _, w := range list {
			if w.ID == id {
				found = true
				return nil
			}
		}
		return nil
	})
	if err != nil || found {
		return found, err
	}

	err = forEachPrefix(txn, legacyPrefix, func(key string, val []byte) error {
		if found {
			return nil
		}
		var w models.Workout
		if err := decodeJSON(val, &w); err != nil {
			return err
		}
		if w.ID == id {
			found = true
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

func sortWorkoutsNewestFirst(list []*models.Workout) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].ID > list[j].ID
	})
}
