// ABOUTME: CLI commands for browsing and deleting past workouts.
// ABOUTME: List is paginated by date descending, matching the history view.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	workoutLimit  int
	workoutOffset int
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Browse past workouts",
	Long: `Browse and manage past workout sessions.

COMMANDS:

  list     List workouts, newest first, with durations
  show     View one workout and all its sets
  rm       Delete a workout and all its sets`,
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		workouts, err := repo.ListWorkouts(workoutLimit, workoutOffset)
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}

		if len(workouts) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}

		total, err := repo.CountWorkouts()
		if err != nil {
			return fmt.Errorf("failed to count workouts: %w", err)
		}

		for _, w := range workouts {
			duration := "duration unknown"
			if min, ok := w.DurationMinutes(); ok {
				duration = fmt.Sprintf("%d min", min)
			}
			marker := " "
			if w.Active() {
				marker = color.GreenString("●")
			}
			fmt.Printf("%s [%d] %s  %s  (%s)\n", marker, w.ID, w.Date, w.DisplayName(), duration)
		}
		fmt.Printf("\n%d of %d workouts\n", len(workouts), total)
		return nil
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a workout and its sets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("id must be an integer: %q", args[0])
		}

		sets, err := repo.SetsForWorkout(id)
		if err != nil {
			return fmt.Errorf("failed to load sets: %w", err)
		}

		if len(sets) == 0 {
			fmt.Printf("Workout %d has no sets.\n", id)
			return nil
		}
		for _, s := range sets {
			if s.Weight != nil {
				fmt.Printf("  [%d] %s  %d x %.1f %s\n", s.ID, s.Exercise, s.Reps, *s.Weight, s.Unit)
			} else {
				fmt.Printf("  [%d] %s  %d reps\n", s.ID, s.Exercise, s.Reps)
			}
		}
		return nil
	},
}

var workoutRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a workout and all its sets",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("id must be an integer: %q", args[0])
		}

		if err := repo.DeleteWorkout(id); err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}

		color.Green("✓ Deleted workout %d and its sets", id)
		return nil
	},
}

func init() {
	workoutListCmd.Flags().IntVar(&workoutLimit, "limit", 20, "Max workouts to show")
	workoutListCmd.Flags().IntVar(&workoutOffset, "offset", 0, "Rows to skip")

	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutShowCmd)
	workoutCmd.AddCommand(workoutRmCmd)
	rootCmd.AddCommand(workoutCmd)
}
