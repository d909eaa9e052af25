// ABOUTME: CLI commands for logging, editing, and deleting sets.
// ABOUTME: Sets default to the newest workout on today's date.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	setUnit    string
	setWorkout int64
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Manage sets",
	Long: `Log and manage sets within a workout.

COMMANDS:

  add     Log a set against a workout
  edit    Replace all fields of an existing set
  rm      Delete a set by id

Weight is optional; a set without weight is bodyweight work.`,
}

var setAddCmd = &cobra.Command{
	Use:   "add <exercise> <reps> [weight]",
	Short: "Log a set",
	Long: `Log one set of an exercise.

Examples:
  lift set add "Bench Press" 5 100
  lift set add "Bench Press" 5 225 --unit lb
  lift set add "Push Up" 20
  lift set add Squat 5 140 --workout 12`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		exercise := args[0]
		reps, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("reps must be an integer: %q", args[1])
		}

		var weight *float64
		if len(args) == 3 {
			v, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("weight must be a number: %q", args[2])
			}
			weight = &v
		}

		workoutID := setWorkout
		if workoutID == 0 {
			w, err := repo.LatestWorkoutForDate(today())
			if err != nil {
				return fmt.Errorf("failed to find today's workout: %w", err)
			}
			if w == nil {
				return fmt.Errorf("no workout today; run 'lift start' first")
			}
			workoutID = w.ID
		}

		s, err := repo.AddSet(workoutID, exercise, reps, weight, setUnit)
		if err != nil {
			return fmt.Errorf("failed to add set: %w", err)
		}

		if s.Weight != nil {
			color.Green("✓ %s: %d x %.1f %s", s.Exercise, s.Reps, *s.Weight, s.Unit)
		} else {
			color.Green("✓ %s: %d reps", s.Exercise, s.Reps)
		}
		fmt.Printf("  ID: %d\n", s.ID)
		return nil
	},
}

var setEditCmd = &cobra.Command{
	Use:   "edit <id> <exercise> <reps> [weight]",
	Short: "Edit a set",
	Long: `Replace every field of an existing set. Editing an id that does
not exist is a no-op.`,
	Args: cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("id must be an integer: %q", args[0])
		}
		reps, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("reps must be an integer: %q", args[2])
		}

		var weight *float64
		if len(args) == 4 {
			v, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return fmt.Errorf("weight must be a number: %q", args[3])
			}
			weight = &v
		}

		if err := repo.EditSet(id, args[1], reps, weight, setUnit); err != nil {
			return fmt.Errorf("failed to edit set: %w", err)
		}

		color.Green("✓ Updated set %d", id)
		return nil
	},
}

var setRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a set",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("id must be an integer: %q", args[0])
		}

		if err := repo.DeleteSet(id); err != nil {
			return fmt.Errorf("failed to delete set: %w", err)
		}

		color.Green("✓ Deleted set %d", id)
		return nil
	},
}

func init() {
	setAddCmd.Flags().StringVar(&setUnit, "unit", "", "Weight unit (default kg)")
	setAddCmd.Flags().Int64Var(&setWorkout, "workout", 0, "Workout id (defaults to today's newest)")
	setEditCmd.Flags().StringVar(&setUnit, "unit", "", "Weight unit (default kg)")

	setCmd.AddCommand(setAddCmd)
	setCmd.AddCommand(setEditCmd)
	setCmd.AddCommand(setRmCmd)
	rootCmd.AddCommand(setCmd)
}
