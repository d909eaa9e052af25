// ABOUTME: Root Cobra command for lift CLI.
// ABOUTME: Opens the storage backend once per run via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"time"

	"github.com/harperreed/lift/internal/config"
	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg  *config.Config
	repo storage.Repository

	dataDirFlag string
	backendFlag string
)

var rootCmd = &cobra.Command{
	Use:   "lift",
	Short: "Personal workout log",
	Long: `Lift is a CLI tool for logging workouts and sets.

QUICK START:

  $ lift start "Push day"               # Start today's workout
  $ lift set add "Bench Press" 5 100    # Log 5 reps at 100 kg
  $ lift set add "Push Up" 20           # Bodyweight set, no load
  $ lift stop                           # Stop today's workout
  $ lift today                          # Current session and its sets

STATS:

  $ lift stats recent                   # Recently trained exercises
  $ lift stats max "Bench Press"        # Best weight per day
  $ lift history "Bench Press"          # Full chronological trace

DATA STORAGE:

  Data lives in ~/.local/share/lift by default, in SQLite. Platforms
  without an embedded SQL engine can switch to a flat key-value store
  with "backend": "kv" in ~/.config/lift/config.json. Both backends
  answer every query identically; 'lift migrate' moves data between
  them.

MCP INTEGRATION:

  Run 'lift mcp' to start the Model Context Protocol server for use
  with MCP-compatible AI assistants:

  {
    "mcpServers": {
      "lift": { "command": "lift", "args": ["mcp"] }
    }
  }`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage for commands that don't touch it
		if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "exercises" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if dataDirFlag != "" {
			cfg.DataDir = dataDirFlag
		}
		if backendFlag != "" {
			cfg.Backend = backendFlag
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "Data directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "Storage backend: sqlite or kv (overrides config)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// today returns the current calendar date in the storage format.
func today() string {
	return time.Now().Format(models.DateFormat)
}
