// ABOUTME: CLI command for exporting the full workout log.
// ABOUTME: Writes JSON or YAML to stdout or a file.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all workout data",
	Long: `Export every workout and set as JSON or YAML.

Examples:
  lift export > backup.json
  lift export --format yaml --output backup.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := repo.GetAllData()
		if err != nil {
			return fmt.Errorf("failed to export data: %w", err)
		}

		var out []byte
		switch exportFormat {
		case "json":
			out, err = data.ToJSON()
		case "yaml":
			out, err = data.ToYAML()
		default:
			return fmt.Errorf("unknown format: %q (want json or yaml)", exportFormat)
		}
		if err != nil {
			return fmt.Errorf("failed to encode export: %w", err)
		}

		if exportOutput == "" {
			fmt.Println(string(out))
			return nil
		}

		if err := os.WriteFile(exportOutput, out, 0600); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		color.Green("✓ Exported %d workouts to %s", len(data.Workouts), exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Export format: json or yaml")
	exportCmd.Flags().StringVar(&exportOutput, "output", "", "Write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
