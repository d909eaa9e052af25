// ABOUTME: CLI commands for exercise stats and progression.
// ABOUTME: Covers recent exercises, daily max weight, and full history.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var recentLimit int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Exercise stats",
	Long: `Aggregate views over logged sets.

COMMANDS:

  recent   Recently trained exercises with last date and set counts
  max      Best weight per day for one exercise, ascending by date`,
}

var statsRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Recently trained exercises",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := repo.RecentExercises(recentLimit)
		if err != nil {
			return fmt.Errorf("failed to get recent exercises: %w", err)
		}
		if len(rows) == 0 {
			fmt.Println("No sets logged yet.")
			return nil
		}

		for _, r := range rows {
			fmt.Printf("%-28s %s  %d sets\n", r.Name, r.LastDate, r.SetCount)
		}
		return nil
	},
}

var statsMaxCmd = &cobra.Command{
	Use:   "max <exercise>",
	Short: "Best weight per day for an exercise",
	Long: `Show the heaviest weighted set of an exercise per calendar day,
ascending by date, with the reps performed at that weight. The
exercise name matches case-insensitively.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := repo.DailyMaxWeight(args[0])
		if err != nil {
			return fmt.Errorf("failed to get daily max: %w", err)
		}
		if len(rows) == 0 {
			fmt.Printf("No weighted sets found for %q.\n", args[0])
			return nil
		}

		color.Cyan("%s — best set per day", args[0])
		for _, r := range rows {
			fmt.Printf("  %s  %.1f x %d\n", r.Date, r.Weight, r.Reps)
		}
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history <exercise>",
	Short: "Full set history for an exercise",
	Long: `Show every logged set of an exercise in chronological order —
the trace behind progression charts.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := repo.ExerciseHistory(args[0])
		if err != nil {
			return fmt.Errorf("failed to get history: %w", err)
		}
		if len(rows) == 0 {
			fmt.Printf("No sets found for %q.\n", args[0])
			return nil
		}

		for _, r := range rows {
			if r.Set.Weight != nil {
				fmt.Printf("%s  %d x %.1f %s\n", r.Date, r.Set.Reps, *r.Set.Weight, r.Set.Unit)
			} else {
				fmt.Printf("%s  %d reps\n", r.Date, r.Set.Reps)
			}
		}
		return nil
	},
}

func init() {
	statsRecentCmd.Flags().IntVar(&recentLimit, "limit", 10, "Max exercises to show")

	statsCmd.AddCommand(statsRecentCmd)
	statsCmd.AddCommand(statsMaxCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
}
