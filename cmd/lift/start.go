// ABOUTME: CLI commands for starting and stopping workout sessions.
// ABOUTME: Stop always targets the newest still-active workout for the date.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	startDate string
	stopDate  string
)

var startCmd = &cobra.Command{
	Use:   "start [name]",
	Short: "Start a workout",
	Long: `Start a new workout session.

Starting does not check for an already-active workout: starting twice
on the same date creates a second session, and the newer one becomes
"the" workout for that date.

Examples:
  lift start
  lift start "Leg day"
  lift start "Push day" --date 2026-08-30`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		date := startDate
		if date == "" {
			date = today()
		}

		w, err := repo.StartWorkout(date, name)
		if err != nil {
			return fmt.Errorf("failed to start workout: %w", err)
		}

		color.Green("✓ Started %s", w.DisplayName())
		fmt.Printf("  ID: %d\n", w.ID)
		fmt.Printf("  Date: %s\n", w.Date)
		return nil
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the active workout",
	Long: `Stop the most recently started workout for the date that is
still active. Does nothing when no workout on that date is active.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		date := stopDate
		if date == "" {
			date = today()
		}

		w, err := repo.StopWorkoutForDate(date)
		if err != nil {
			return fmt.Errorf("failed to stop workout: %w", err)
		}
		if w == nil {
			fmt.Printf("No active workout on %s.\n", date)
			return nil
		}

		color.Green("✓ Stopped %s", w.DisplayName())
		if min, ok := w.DurationMinutes(); ok {
			fmt.Printf("  Duration: %d min\n", min)
		}
		return nil
	},
}

func init() {
	startCmd.Flags().StringVar(&startDate, "date", "", "Date (YYYY-MM-DD), defaults to today")
	stopCmd.Flags().StringVar(&stopDate, "date", "", "Date (YYYY-MM-DD), defaults to today")
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
}
