// ABOUTME: Set model plus derived row types for stats queries.
// ABOUTME: A set is one logged exercise performance owned by a workout.
package models

import "strings"

// DefaultUnit is the weight unit used when none is given.
const DefaultUnit = "kg"

// Set is one logged performance of an exercise within a workout.
// Weight is nil for bodyweight work. Exercise is case-preserving but
// compared case-insensitively by the stats queries.
type Set struct {
	ID        int64    `json:"id" yaml:"id"`
	WorkoutID int64    `json:"workout_id" yaml:"workout_id"`
	Exercise  string   `json:"exercise" yaml:"exercise"`
	Reps      int      `json:"reps" yaml:"reps"`
	Weight    *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
	Unit      string   `json:"unit" yaml:"unit"`
}

// NewSet creates a set for the given workout. The exercise name is
// trimmed; an empty unit defaults to "kg". The ID is assigned by the
// storage backend on insert.
func NewSet(workoutID int64, exercise string, reps int, weight *float64, unit string) *Set {
	if unit == "" {
		unit = DefaultUnit
	}
	return &Set{
		WorkoutID: workoutID,
		Exercise:  strings.TrimSpace(exercise),
		Reps:      reps,
		Weight:    weight,
		Unit:      unit,
	}
}

// DailyMax is the heaviest set of an exercise on one calendar date,
// carrying the reps performed at that weight.
type DailyMax struct {
	Date   string  `json:"date" yaml:"date"`
	Weight float64 `json:"weight" yaml:"weight"`
	Reps   int     `json:"reps" yaml:"reps"`
}

// RecentExercise summarizes one case-insensitive exercise group:
// its display spelling, the most recent date it was logged, and the
// total number of sets across all workouts.
type RecentExercise struct {
	Name     string `json:"name" yaml:"name"`
	LastDate string `json:"last_date" yaml:"last_date"`
	SetCount int    `json:"set_count" yaml:"set_count"`
}

// HistoryEntry is one set in an exercise's chronological trace,
// annotated with the date of its owning workout.
type HistoryEntry struct {
	Date string `json:"date" yaml:"date"`
	Set  Set    `json:"set" yaml:"set"`
}
