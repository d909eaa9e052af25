// ABOUTME: CLI command showing the current day's workout session.
// ABOUTME: Prints the active session, its running time, and its sets.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's workout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		date := today()
		w, err := repo.LatestWorkoutForDate(date)
		if err != nil {
			return fmt.Errorf("failed to load today's workout: %w", err)
		}
		if w == nil {
			fmt.Printf("No workout today. Run 'lift start' to begin one.\n")
			return nil
		}

		if w.Active() {
			color.Green("%s (%s) — active", w.DisplayName(), w.Date)
			if w.StartedAt != nil {
				elapsed := int(time.Since(*w.StartedAt).Minutes())
				if elapsed < 0 {
					elapsed = 0
				}
				fmt.Printf("  Running for %d min\n", elapsed)
			}
		} else {
			fmt.Printf("%s (%s) — stopped\n", w.DisplayName(), w.Date)
			if min, ok := w.DurationMinutes(); ok {
				fmt.Printf("  Duration: %d min\n", min)
			}
		}

		sets, err := repo.SetsForWorkout(w.ID)
		if err != nil {
			return fmt.Errorf("failed to load sets: %w", err)
		}
		if len(sets) == 0 {
			fmt.Println("  No sets logged yet.")
			return nil
		}

		fmt.Println()
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

func init() {
	rootCmd.AddCommand(todayCmd)
}
