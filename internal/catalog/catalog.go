// ABOUTME: Static read-only exercise catalog used for autocomplete.
// ABOUTME: Ships an embedded subset of the free-exercise-db dataset.
package catalog

import (
	_ "embed"
	"encoding/json"
	"strings"
	"sync"
)

//go:embed exercises.json
var rawExercises []byte

// Exercise is one catalog record. The tracker treats the catalog as
// an opaque list of names; the rest of the metadata is only surfaced
// when showing a single exercise.
type Exercise struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Force            string   `json:"force,omitempty"`
	Level            string   `json:"level,omitempty"`
	Mechanic         string   `json:"mechanic,omitempty"`
	Equipment        string   `json:"equipment,omitempty"`
	PrimaryMuscles   []string `json:"primaryMuscles"`
	SecondaryMuscles []string `json:"secondaryMuscles"`
	Instructions     []string `json:"instructions"`
	Category         string   `json:"category,omitempty"`
	Images           []string `json:"images"`
}

var (
	loadOnce sync.Once
	loaded   []Exercise
)

// All returns every catalog exercise.
func All() []Exercise {
	loadOnce.Do(func() {
		// The dataset is embedded at build time; a decode failure is
		// a build defect, not a runtime condition.
		if err := json.Unmarshal(rawExercises, &loaded); err != nil {
			loaded = nil
		}
	})
	return loaded
}

// Names returns every exercise name, in catalog order.
func Names() []string {
	all := All()
	names := make([]string, 0, len(all))
	for _, e := range all {
		names = append(names, e.Name)
	}
	return names
}

// Find returns the catalog record whose name matches exactly,
// ignoring case.
func Find(name string) (Exercise, bool) {
	for _, e := range All() {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return Exercise{}, false
}

// Search returns up to limit exercises whose names contain the query,
// case-insensitively. Prefix matches sort ahead of substring matches;
// within each class catalog order is kept. An empty query returns the
// head of the catalog.
func Search(query string, limit int) []Exercise {
	q := strings.ToLower(strings.TrimSpace(query))
	all := All()

	var prefix, substr []Exercise
	for _, e := range all {
		name := strings.ToLower(e.Name)
		switch {
		case q == "" || strings.HasPrefix(name, q):
			prefix = append(prefix, e)
		case strings.Contains(name, q):
			substr = append(substr, e)
		}
	}

	out := append(prefix, substr...)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
