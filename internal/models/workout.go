// ABOUTME: Workout model for daily training sessions.
// ABOUTME: A workout is active while its ended_at timestamp is unset.
package models

import (
	"strings"
	"time"
)

// DateFormat is the calendar-date layout used for Workout.Date.
const DateFormat = "2006-01-02"

// DefaultWorkoutName is used when a workout is started without a name.
const DefaultWorkoutName = "Workout"

// Workout represents one training session on a calendar date.
// Multiple workouts may share a date; the newest one (highest ID)
// is "the" workout for that date.
type Workout struct {
	ID        int64      `json:"id" yaml:"id"`
	Date      string     `json:"date" yaml:"date"`
	Name      *string    `json:"name,omitempty" yaml:"name,omitempty"`
	Notes     *string    `json:"notes,omitempty" yaml:"notes,omitempty"`
	StartedAt *time.Time `json:"started_at,omitempty" yaml:"started_at,omitempty"`
	EndedAt   *time.Time `json:"ended_at,omitempty" yaml:"ended_at,omitempty"`
}

// NewWorkout creates a workout for the given date, started now.
// The ID is assigned by the storage backend on insert.
func NewWorkout(date, name string) *Workout {
	now := time.Now()
	w := &Workout{
		Date:      date,
		StartedAt: &now,
	}
	if name != "" {
		w.Name = &name
	}
	return w
}

// WithNotes sets notes on the workout.
func (w *Workout) WithNotes(notes string) *Workout {
	w.Notes = &notes
	return w
}

// Active reports whether the workout has not been stopped yet.
func (w *Workout) Active() bool {
	return w.EndedAt == nil
}

// DisplayName returns the workout name, falling back to "Workout"
// when no name was given at start.
func (w *Workout) DisplayName() string {
	if w.Name != nil && strings.TrimSpace(*w.Name) != "" {
		return *w.Name
	}
	return DefaultWorkoutName
}

// DurationMinutes returns the session length in whole minutes,
// floored and clamped at zero. The second return is false when either
// timestamp is missing, meaning the duration is unknown rather than 0.
func (w *Workout) DurationMinutes() (int, bool) {
	if w.StartedAt == nil || w.EndedAt == nil {
		return 0, false
	}
	ms := w.EndedAt.UnixMilli() - w.StartedAt.UnixMilli()
	if ms < 0 {
		ms = 0
	}
	return int(ms / 60000), true
}
