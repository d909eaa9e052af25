// ABOUTME: Repository interface for workout data storage.
// ABOUTME: The method set is the closed list of queries a backend must support.
package storage

import (
	"errors"

	"github.com/harperreed/lift/internal/models"
)

// ErrNotFound is returned when an operation references a workout or
// set that does not exist.
var ErrNotFound = errors.New("not found")

// Repository defines the storage contract for workout data. Both
// backends (SQLite and the key-value store) implement every method
// and must return the same rows for the same call sequence, up to the
// backend's id assignment scheme.
type Repository interface {
	// Workout operations
	StartWorkout(date, name string) (*models.Workout, error)
	StopWorkoutForDate(date string) (*models.Workout, error)
	LatestWorkoutForDate(date string) (*models.Workout, error)
	WorkoutsForDate(date string) ([]*models.Workout, error)
	ListWorkouts(limit, offset int) ([]*models.Workout, error)
	CountWorkouts() (int, error)
	DeleteWorkout(id int64) error

	// Set operations
	AddSet(workoutID int64, exercise string, reps int, weight *float64, unit string) (*models.Set, error)
	EditSet(id int64, exercise string, reps int, weight *float64, unit string) error
	DeleteSet(id int64) error
	SetsForWorkout(workoutID int64) ([]*models.Set, error)

	// Stats queries
	DailyMaxWeight(exercise string) ([]models.DailyMax, error)
	RecentExercises(limit int) ([]models.RecentExercise, error)
	ExerciseHistory(exercise string) ([]models.HistoryEntry, error)

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error
	RestoreWorkout(w *models.Workout, sets []*models.Set) (*models.Workout, error)

	// Lifecycle
	Close() error
}
