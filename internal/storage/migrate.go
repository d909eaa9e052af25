// ABOUTME: Data migration between workout storage backends.
// ABOUTME: Copies workouts and their sets from source to destination.
package storage

import "fmt"

// MigrateSummary holds counts of migrated entities.
type MigrateSummary struct {
	Workouts int
	Sets     int
}

// MigrateData copies all data from src to dst storage. Workouts are
// copied oldest first so the destination's id assignment keeps the
// source's recency ordering. The destination should be empty before
// calling this function.
func MigrateData(src, dst Repository) (*MigrateSummary, error) {
	data, err := src.GetAllData()
	if err != nil {
		return nil, fmt.Errorf("export source: %w", err)
	}

	summary := &MigrateSummary{}
	for _, w := range reversed(data.Workouts) {
		sets := reversed(data.Sets[w.ID])
		if _, err := dst.RestoreWorkout(w, sets); err != nil {
			return nil, fmt.Errorf("migrate workout %d: %w", w.ID, err)
		}
		summary.Workouts++
		summary.Sets += len(sets)
	}
	return summary, nil
}
