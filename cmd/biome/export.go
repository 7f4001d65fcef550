// ABOUTME: CLI command for exporting training data.
// ABOUTME: Writes the real log and weight history as JSON or YAML.
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
	Short: "Export training data as JSON or YAML",
	Long: `Export your real training log and body weight history.

The export always covers your real data, regardless of demo mode.

Examples:
  biome export                      # JSON to stdout
  biome export --format yaml        # YAML to stdout
  biome export -o backup.json       # JSON to a file`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		switch exportFormat {
		case "json":
			data, err = store.ExportJSON()
		case "yaml":
			data, err = store.ExportYAML()
		default:
			return fmt.Errorf("unknown format: %s (want json or yaml)", exportFormat)
		}
		if err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}

		if exportOutput == "" {
			fmt.Print(string(data))
			return nil
		}
		if err := os.WriteFile(exportOutput, data, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		color.Green("✓ Exported to %s", exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "export format (json or yaml)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
