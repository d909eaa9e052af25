// ABOUTME: MCP tool implementations for the workout log.
// ABOUTME: Exposes workout/set operations and stats queries as typed tools.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/lift/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "start_workout",
		Description: "Start a workout session for a date (defaults to today)",
	}, s.handleStartWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "stop_workout",
		Description: "Stop the most recent active workout for a date",
	}, s.handleStopWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_set",
		Description: "Log a set (exercise, reps, optional weight) against a workout",
	}, s.handleAddSet)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "edit_set",
		Description: "Replace all fields of an existing set",
	}, s.handleEditSet)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_set",
		Description: "Delete a set by id",
	}, s.handleDeleteSet)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List workouts, newest first, with durations",
	}, s.handleListWorkouts)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_workout",
		Description: "Get a workout with all its sets",
	}, s.handleGetWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_workout",
		Description: "Delete a workout and all its sets",
	}, s.handleDeleteWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "daily_max_weight",
		Description: "Best weight per day for an exercise, ascending by date",
	}, s.handleDailyMax)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "recent_exercises",
		Description: "Recently logged exercises with last date and set counts",
	}, s.handleRecentExercises)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "exercise_history",
		Description: "Full chronological set history for an exercise",
	}, s.handleExerciseHistory)
}

// Tool input/output types

type startWorkoutInput struct {
	Date string `json:"date,omitempty" jsonschema:"Calendar date (YYYY-MM-DD); defaults to today"`
	Name string `json:"name,omitempty" jsonschema:"Workout display name"`
}

type dateInput struct {
	Date string `json:"date,omitempty" jsonschema:"Calendar date (YYYY-MM-DD); defaults to today"`
}

type workoutOutput struct {
	ID       int64  `json:"id"`
	Date     string `json:"date"`
	Name     string `json:"name"`
	Active   bool   `json:"active"`
	Duration string `json:"duration"`
	Message  string `json:"message"`
}

type addSetInput struct {
	WorkoutID int64    `json:"workout_id,omitempty" jsonschema:"Workout id; defaults to today's newest workout"`
	Exercise  string   `json:"exercise" jsonschema:"Exercise name"`
	Reps      int      `json:"reps" jsonschema:"Repetitions"`
	Weight    *float64 `json:"weight,omitempty" jsonschema:"Weight; omit for bodyweight"`
	Unit      string   `json:"unit,omitempty" jsonschema:"Weight unit (default kg)"`
}

type editSetInput struct {
	ID       int64    `json:"id" jsonschema:"Set id"`
	Exercise string   `json:"exercise" jsonschema:"Exercise name"`
	Reps     int      `json:"reps" jsonschema:"Repetitions"`
	Weight   *float64 `json:"weight,omitempty" jsonschema:"Weight; omit for bodyweight"`
	Unit     string   `json:"unit,omitempty" jsonschema:"Weight unit (default kg)"`
}

type idInput struct {
	ID int64 `json:"id" jsonschema:"Record id"`
}

type listWorkoutsInput struct {
	Limit  int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
	Offset int `json:"offset,omitempty" jsonschema:"Rows to skip"`
}

type exerciseInput struct {
	Exercise string `json:"exercise" jsonschema:"Exercise name (case-insensitive)"`
}

type recentInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max groups (default 10)"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleStartWorkout(ctx context.Context, req *mcp.CallToolRequest, input startWorkoutInput) (*mcp.CallToolResult, workoutOutput, error) {
	date := input.Date
	if date == "" {
		date = time.Now().Format(models.DateFormat)
	}

	w, err := s.repo.StartWorkout(date, input.Name)
	if err != nil {
		return nil, workoutOutput{}, fmt.Errorf("failed to start workout: %w", err)
	}

	return nil, workoutView(w, fmt.Sprintf("Started %s on %s (ID: %d)", w.DisplayName(), w.Date, w.ID)), nil
}

func (s *Server) handleStopWorkout(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, workoutOutput, error) {
	date := input.Date
	if date == "" {
		date = time.Now().Format(models.DateFormat)
	}

	w, err := s.repo.StopWorkoutForDate(date)
	if err != nil {
		return nil, workoutOutput{}, fmt.Errorf("failed to stop workout: %w", err)
	}
	if w == nil {
		return nil, workoutOutput{Message: fmt.Sprintf("No active workout on %s.", date)}, nil
	}

	return nil, workoutView(w, fmt.Sprintf("Stopped %s (ID: %d)", w.DisplayName(), w.ID)), nil
}

func (s *Server) handleAddSet(ctx context.Context, req *mcp.CallToolRequest, input addSetInput) (*mcp.CallToolResult, simpleOutput, error) {
	workoutID := input.WorkoutID
	if workoutID == 0 {
		today := time.Now().Format(models.DateFormat)
		w, err := s.repo.LatestWorkoutForDate(today)
		if err != nil {
			return nil, simpleOutput{}, fmt.Errorf("failed to find today's workout: %w", err)
		}
		if w == nil {
			return nil, simpleOutput{}, fmt.Errorf("no workout on %s; start one first", today)
		}
		workoutID = w.ID
	}

	set, err := s.repo.AddSet(workoutID, input.Exercise, input.Reps, input.Weight, input.Unit)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to add set: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %s %s (ID: %d)", set.Exercise, formatSet(set), set.ID),
	}, nil
}

func (s *Server) handleEditSet(ctx context.Context, req *mcp.CallToolRequest, input editSetInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.EditSet(input.ID, input.Exercise, input.Reps, input.Weight, input.Unit); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to edit set: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Updated set %d", input.ID)}, nil
}

func (s *Server) handleDeleteSet(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteSet(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete set: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted set %d", input.ID)}, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listWorkoutsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	workouts, err := s.repo.ListWorkouts(input.Limit, input.Offset)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	if len(workouts) == 0 {
		return nil, map[string]interface{}{"message": "No workouts found."}, nil
	}

	out := make([]workoutOutput, 0, len(workouts))
	for _, w := range workouts {
		out = append(out, workoutView(w, ""))
	}
	return nil, out, nil
}

func (s *Server) handleGetWorkout(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, any, error) {
	sets, err := s.repo.SetsForWorkout(input.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get workout sets: %w", err)
	}
	return nil, map[string]interface{}{
		"workout_id": input.ID,
		"sets":       sets,
	}, nil
}

func (s *Server) handleDeleteWorkout(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteWorkout(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete workout: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted workout %d and its sets", input.ID)}, nil
}

func (s *Server) handleDailyMax(ctx context.Context, req *mcp.CallToolRequest, input exerciseInput) (*mcp.CallToolResult, any, error) {
	rows, err := s.repo.DailyMaxWeight(input.Exercise)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get daily max: %w", err)
	}
	if len(rows) == 0 {
		return nil, map[string]interface{}{"message": "No weighted sets found."}, nil
	}
	return nil, rows, nil
}

func (s *Server) handleRecentExercises(ctx context.Context, req *mcp.CallToolRequest, input recentInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 10
	}
	rows, err := s.repo.RecentExercises(input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get recent exercises: %w", err)
	}
	if len(rows) == 0 {
		return nil, map[string]interface{}{"message": "No sets logged yet."}, nil
	}
	return nil, rows, nil
}

func (s *Server) handleExerciseHistory(ctx context.Context, req *mcp.CallToolRequest, input exerciseInput) (*mcp.CallToolResult, any, error) {
	rows, err := s.repo.ExerciseHistory(input.Exercise)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get history: %w", err)
	}
	if len(rows) == 0 {
		return nil, map[string]interface{}{"message": "No sets found for that exercise."}, nil
	}
	return nil, rows, nil
}

// workoutView flattens a workout for tool output.
func workoutView(w *models.Workout, message string) workoutOutput {
	duration := "unknown"
	if min, ok := w.DurationMinutes(); ok {
		duration = fmt.Sprintf("%d min", min)
	}
	return workoutOutput{
		ID:       w.ID,
		Date:     w.Date,
		Name:     w.DisplayName(),
		Active:   w.Active(),
		Duration: duration,
		Message:  message,
	}
}

// formatSet renders "reps x weight unit" or "reps (bodyweight)".
func formatSet(s *models.Set) string {
	if s.Weight == nil {
		return fmt.Sprintf("%d reps (bodyweight)", s.Reps)
	}
	return fmt.Sprintf("%d x %.1f %s", s.Reps, *s.Weight, s.Unit)
}
