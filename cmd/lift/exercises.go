// ABOUTME: CLI command for searching the static exercise catalog.
// ABOUTME: The catalog only feeds autocomplete; it is not part of the log.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/catalog"
	"github.com/spf13/cobra"
)

var exercisesLimit int

var exercisesCmd = &cobra.Command{
	Use:   "exercises [query]",
	Short: "Search the exercise catalog",
	Long: `Search the built-in exercise catalog by name. Without a query the
head of the catalog is shown.

Examples:
  lift exercises
  lift exercises bench
  lift exercises "pull"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) > 0 {
			query = args[0]
		}

		matches := catalog.Search(query, exercisesLimit)
		if len(matches) == 0 {
			fmt.Printf("No exercises match %q.\n", query)
			return nil
		}

		for _, e := range matches {
			color.Cyan(e.Name)
			fmt.Printf("  %s", strings.Join(e.PrimaryMuscles, ", "))
			if e.Equipment != "" {
				fmt.Printf("  (%s)", e.Equipment)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	exercisesCmd.Flags().IntVar(&exercisesLimit, "limit", 10, "Max matches to show")
	rootCmd.AddCommand(exercisesCmd)
}
