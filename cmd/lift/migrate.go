// ABOUTME: CLI command for moving data between storage backends.
// ABOUTME: Copies all workouts and sets, then updates the config.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/config"
	"github.com/harperreed/lift/internal/storage"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate <sqlite|kv>",
	Short: "Migrate data to the other storage backend",
	Long: `Copy all workouts and sets from the current backend to the named
one, then switch the config over. The destination must be empty.

Aggregate queries answer identically on both backends; only the id
assignment scheme differs (auto-increment vs millisecond timestamps),
so records receive fresh ids in the destination.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target != "sqlite" && target != "kv" {
			return fmt.Errorf("unknown backend: %q (want sqlite or kv)", target)
		}
		if target == cfg.GetBackend() {
			return fmt.Errorf("already using the %s backend", target)
		}

		dst, err := config.OpenBackend(target, cfg.GetDataDir())
		if err != nil {
			return fmt.Errorf("failed to open %s backend: %w", target, err)
		}
		defer dst.Close()

		count, err := dst.CountWorkouts()
		if err != nil {
			return fmt.Errorf("failed to inspect %s backend: %w", target, err)
		}
		if count > 0 {
			return fmt.Errorf("%s backend already has %d workouts; refusing to migrate into it", target, count)
		}

		summary, err := storage.MigrateData(repo, dst)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		cfg.Backend = target
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("migrated but failed to save config: %w", err)
		}

		color.Green("✓ Migrated %d workouts and %d sets to %s", summary.Workouts, summary.Sets, target)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
