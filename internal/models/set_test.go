// ABOUTME: Tests for the set model constructor.
// ABOUTME: Exercise trimming and unit defaulting happen at creation.
package models

import "testing"

func TestNewSet(t *testing.T) {
	weight := 100.0

	tests := []struct {
		name         string
		exercise     string
		unit         string
		wantExercise string
		wantUnit     string
	}{
		{"trims exercise", "  Bench Press  ", "kg", "Bench Press", "kg"},
		{"defaults unit", "Squat", "", "Squat", DefaultUnit},
		{"keeps lbs", "Deadlift", "lbs", "Deadlift", "lbs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSet(42, tt.exercise, 5, &weight, tt.unit)
			if s.Exercise != tt.wantExercise {
				t.Errorf("exercise = %q, want %q", s.Exercise, tt.wantExercise)
			}
			if s.Unit != tt.wantUnit {
				t.Errorf("unit = %q, want %q", s.Unit, tt.wantUnit)
			}
			if s.WorkoutID != 42 || s.Reps != 5 {
				t.Errorf("fields lost: %+v", s)
			}
		})
	}
}

func TestNewSetBodyweight(t *testing.T) {
	s := NewSet(1, "Pull Up", 12, nil, "")
	if s.Weight != nil {
		t.Errorf("bodyweight set must keep nil weight, got %v", s.Weight)
	}
}
