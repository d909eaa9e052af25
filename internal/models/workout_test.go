// ABOUTME: Tests for workout model helpers.
// ABOUTME: Duration math, activity state, and display naming.
package models

import (
	"testing"
	"time"
)

func TestDurationMinutes(t *testing.T) {
	base := time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		started *time.Time
		ended   *time.Time
		want    int
		known   bool
	}{
		{
			name:    "floors partway through a minute",
			started: &base,
			ended:   tptr(base.Add(125 * time.Second)),
			want:    2,
			known:   true,
		},
		{
			name:    "under a minute is zero",
			started: &base,
			ended:   tptr(base.Add(59 * time.Second)),
			want:    0,
			known:   true,
		},
		{
			name:    "clock skew clamps to zero",
			started: tptr(base.Add(5 * time.Minute)),
			ended:   &base,
			want:    0,
			known:   true,
		},
		{
			name:    "missing start is unknown",
			started: nil,
			ended:   &base,
			want:    0,
			known:   false,
		},
		{
			name:    "missing end is unknown",
			started: &base,
			ended:   nil,
			want:    0,
			known:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &Workout{Date: "2026-08-30", StartedAt: tt.started, EndedAt: tt.ended}
			got, known := w.DurationMinutes()
			if got != tt.want || known != tt.known {
				t.Errorf("DurationMinutes() = (%d, %v), want (%d, %v)", got, known, tt.want, tt.known)
			}
		})
	}
}

func TestActive(t *testing.T) {
	w := NewWorkout("2026-08-30", "")
	if !w.Active() {
		t.Error("new workout must be active")
	}
	now := time.Now()
	w.EndedAt = &now
	if w.Active() {
		t.Error("stopped workout must not be active")
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		in   *string
		want string
	}{
		{"named", sptr("Push Day"), "Push Day"},
		{"unnamed", nil, DefaultWorkoutName},
		{"blank", sptr("   "), DefaultWorkoutName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &Workout{Date: "2026-08-30", Name: tt.in}
			if got := w.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewWorkout(t *testing.T) {
	w := NewWorkout("2026-08-30", "Pull")
	if w.Date != "2026-08-30" {
		t.Errorf("date = %q", w.Date)
	}
	if w.Name == nil || *w.Name != "Pull" {
		t.Errorf("name = %v", w.Name)
	}
	if w.StartedAt == nil {
		t.Error("started_at must be set")
	}

	unnamed := NewWorkout("2026-08-30", "")
	if unnamed.Name != nil {
		t.Errorf("empty name must stay nil, got %v", unnamed.Name)
	}
}

func tptr(t time.Time) *time.Time { return &t }

func sptr(s string) *string { return &s }
