// ABOUTME: Tests for MCP tool handlers against a temporary SQLite store.
// ABOUTME: Handlers are invoked directly; transport wiring is not exercised.
package mcp

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/storage"
)

func setupTestServer(t *testing.T) *Server {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "lift.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	s, err := NewServer(db)
	require.NoError(t, err)
	return s
}

func fptr(v float64) *float64 { return &v }

// Tool registration infers input schemas from the struct tags; a tag
// the SDK cannot parse panics inside AddTool, so constructing the
// server at all is the guard.
func TestNewServerRegistersTools(t *testing.T) {
	db, err := storage.Open(filepath.Join(t.TempDir(), "lift.db"))
	require.NoError(t, err)
	defer db.Close()

	s, err := NewServer(db)
	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestHandleStartAndStopWorkout(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()

	_, out, err := s.handleStartWorkout(ctx, nil, startWorkoutInput{Date: "2026-08-30", Name: "Push"})
	require.NoError(t, err)
	assert.Equal(t, "Push", out.Name)
	assert.True(t, out.Active)
	assert.Contains(t, out.Message, "Started Push")

	_, stopped, err := s.handleStopWorkout(ctx, nil, dateInput{Date: "2026-08-30"})
	require.NoError(t, err)
	assert.False(t, stopped.Active)
	assert.Contains(t, stopped.Message, "Stopped")
}

func TestHandleStopWithoutActiveWorkout(t *testing.T) {
	s := setupTestServer(t)

	_, out, err := s.handleStopWorkout(context.Background(), nil, dateInput{Date: "2026-08-30"})
	require.NoError(t, err)
	assert.Contains(t, out.Message, "No active workout")
}

func TestHandleStartDefaultsToToday(t *testing.T) {
	s := setupTestServer(t)

	_, out, err := s.handleStartWorkout(context.Background(), nil, startWorkoutInput{})
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format(models.DateFormat), out.Date)
	assert.Equal(t, models.DefaultWorkoutName, out.Name)
}

func TestHandleAddSetExplicitWorkout(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()

	_, w, err := s.handleStartWorkout(ctx, nil, startWorkoutInput{Date: "2026-08-30"})
	require.NoError(t, err)

	_, out, err := s.handleAddSet(ctx, nil, addSetInput{
		WorkoutID: w.ID,
		Exercise:  "Bench Press",
		Reps:      5,
		Weight:    fptr(100),
	})
	require.NoError(t, err)
	assert.Contains(t, out.Message, "Bench Press")
	assert.Contains(t, out.Message, "5 x 100.0 kg")
}

func TestHandleAddSetDefaultsToTodaysWorkout(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()

	// No workout today yet: adding a set must fail with guidance.
	_, _, err := s.handleAddSet(ctx, nil, addSetInput{Exercise: "Squat", Reps: 5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start one first")

	_, _, err = s.handleStartWorkout(ctx, nil, startWorkoutInput{})
	require.NoError(t, err)

	_, out, err := s.handleAddSet(ctx, nil, addSetInput{Exercise: "Pull Up", Reps: 12})
	require.NoError(t, err)
	assert.Contains(t, out.Message, "bodyweight")
}

func TestHandleAddSetToMissingWorkout(t *testing.T) {
	s := setupTestServer(t)

	_, _, err := s.handleAddSet(context.Background(), nil, addSetInput{
		WorkoutID: 999,
		Exercise:  "Squat",
		Reps:      5,
	})
	assert.Error(t, err)
}

func TestHandleListWorkouts(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()

	_, empty, err := s.handleListWorkouts(ctx, nil, listWorkoutsInput{})
	require.NoError(t, err)
	msg, ok := empty.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "No workouts found.", msg["message"])

	_, _, err = s.handleStartWorkout(ctx, nil, startWorkoutInput{Date: "2026-08-29"})
	require.NoError(t, err)
	_, _, err = s.handleStartWorkout(ctx, nil, startWorkoutInput{Date: "2026-08-30"})
	require.NoError(t, err)

	_, listed, err := s.handleListWorkouts(ctx, nil, listWorkoutsInput{})
	require.NoError(t, err)
	rows, ok := listed.([]workoutOutput)
	require.True(t, ok)
	require.Len(t, rows, 2)
	assert.Equal(t, "2026-08-30", rows[0].Date)
}

func TestHandleDeleteWorkoutCascades(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()

	_, w, err := s.handleStartWorkout(ctx, nil, startWorkoutInput{Date: "2026-08-30"})
	require.NoError(t, err)
	_, _, err = s.handleAddSet(ctx, nil, addSetInput{WorkoutID: w.ID, Exercise: "Squat", Reps: 5})
	require.NoError(t, err)

	_, out, err := s.handleDeleteWorkout(ctx, nil, idInput{ID: w.ID})
	require.NoError(t, err)
	assert.Contains(t, out.Message, "Deleted workout")

	_, got, err := s.handleGetWorkout(ctx, nil, idInput{ID: w.ID})
	require.NoError(t, err)
	view, ok := got.(map[string]interface{})
	require.True(t, ok)
	assert.Empty(t, view["sets"])
}

func TestHandleStatsTools(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()

	_, w, err := s.handleStartWorkout(ctx, nil, startWorkoutInput{Date: "2026-08-30"})
	require.NoError(t, err)
	for _, set := range []addSetInput{
		{WorkoutID: w.ID, Exercise: "Bench Press", Reps: 5, Weight: fptr(100)},
		{WorkoutID: w.ID, Exercise: "bench press", Reps: 3, Weight: fptr(110)},
	} {
		_, _, err := s.handleAddSet(ctx, nil, set)
		require.NoError(t, err)
	}

	_, maxOut, err := s.handleDailyMax(ctx, nil, exerciseInput{Exercise: "Bench Press"})
	require.NoError(t, err)
	maxRows, ok := maxOut.([]models.DailyMax)
	require.True(t, ok)
	require.Len(t, maxRows, 1)
	assert.Equal(t, 110.0, maxRows[0].Weight)
	assert.Equal(t, 3, maxRows[0].Reps)

	_, recentOut, err := s.handleRecentExercises(ctx, nil, recentInput{})
	require.NoError(t, err)
	recentRows, ok := recentOut.([]models.RecentExercise)
	require.True(t, ok)
	require.Len(t, recentRows, 1)
	assert.Equal(t, 2, recentRows[0].SetCount)

	_, histOut, err := s.handleExerciseHistory(ctx, nil, exerciseInput{Exercise: "BENCH PRESS"})
	require.NoError(t, err)
	histRows, ok := histOut.([]models.HistoryEntry)
	require.True(t, ok)
	assert.Len(t, histRows, 2)
}

func TestHandleStatsToolsEmpty(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()

	_, out, err := s.handleDailyMax(ctx, nil, exerciseInput{Exercise: "Squat"})
	require.NoError(t, err)
	msg, ok := out.(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, msg["message"], "No weighted sets")
}
