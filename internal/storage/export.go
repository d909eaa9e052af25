// ABOUTME: Export and import of the full workout log.
// ABOUTME: Supports JSON and YAML formats for backups and backend moves.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/lift/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData is the full export format for the workout log. Sets are
// keyed by their owning workout id.
type ExportData struct {
	SnapshotID uuid.UUID               `json:"snapshot_id" yaml:"snapshot_id"`
	Version    string                  `json:"version" yaml:"version"`
	ExportedAt time.Time               `json:"exported_at" yaml:"exported_at"`
	Tool       string                  `json:"tool" yaml:"tool"`
	Workouts   []*models.Workout       `json:"workouts" yaml:"workouts"`
	Sets       map[int64][]*models.Set `json:"sets" yaml:"sets"`
}

// NewExportData builds an export envelope around the given rows.
func NewExportData(workouts []*models.Workout, sets map[int64][]*models.Set) *ExportData {
	return &ExportData{
		SnapshotID: uuid.New(),
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "lift",
		Workouts:   workouts,
		Sets:       sets,
	}
}

// ToJSON renders the export as indented JSON.
func (e *ExportData) ToJSON() ([]byte, error) {
	return json.MarshalIndent(e, "", "  ")
}

// ToYAML renders the export as YAML.
func (e *ExportData) ToYAML() ([]byte, error) {
	return yaml.Marshal(e)
}

// GetAllData retrieves all data for export from the SQLite backend.
func (d *DB) GetAllData() (*ExportData, error) {
	return exportAll(d)
}

// ImportData loads an export into the SQLite backend. Rows keep their
// exported field values but receive fresh backend-assigned ids.
func (d *DB) ImportData(data *ExportData) error {
	return importAll(d, data)
}

// GetAllData retrieves all data for export from the key-value backend.
func (s *KVStore) GetAllData() (*ExportData, error) {
	return exportAll(s)
}

// ImportData loads an export into the key-value backend.
func (s *KVStore) ImportData(data *ExportData) error {
	return importAll(s, data)
}

// exportAll walks every workout and its sets through the Repository
// surface, so both backends export identically.
func exportAll(r Repository) (*ExportData, error) {
	workouts, err := r.ListWorkouts(0, 0)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	sets := make(map[int64][]*models.Set)
	for _, w := range workouts {
		ws, err := r.SetsForWorkout(w.ID)
		if err != nil {
			return nil, fmt.Errorf("sets for workout %d: %w", w.ID, err)
		}
		if len(ws) > 0 {
			sets[w.ID] = ws
		}
	}

	return NewExportData(workouts, sets), nil
}

// importAll replays an export against a Repository. Workouts are
// restored oldest first so recency ordering survives the id rewrite;
// within a workout, sets are restored oldest first for the same
// reason. Field values, timestamps included, are preserved.
func importAll(r Repository, data *ExportData) error {
	workouts := reversed(data.Workouts)
	for _, w := range workouts {
		sets := reversed(data.Sets[w.ID])
		if _, err := r.RestoreWorkout(w, sets); err != nil {
			return fmt.Errorf("import workout %d: %w", w.ID, err)
		}
	}
	return nil
}

// reversed copies a newest-first export slice into oldest-first order.
func reversed[T any](in []T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}
