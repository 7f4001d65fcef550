// ABOUTME: CLI command for bulk CSV import.
// ABOUTME: All-or-nothing: the target partition is replaced only if every row parses.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/biome/internal/importer"
	"github.com/harperreed/biome/internal/storage"
	"github.com/spf13/cobra"
)

var importDemo bool

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import a training log CSV",
	Long: `Import a CSV export of your training log, replacing the target partition.

The import is all-or-nothing: if any row fails to parse, nothing changes.
Required columns are date and exercise; workout, set_number, reps,
duration_seconds, weight_kg, machine_level, warm_up, rpe, and notes are
optional.

Examples:
  biome import training.csv          # Replace your real log
  biome import sample.csv --demo     # Replace the demo partition`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer f.Close()

		entries, err := importer.Parse(f)
		if err != nil {
			return err
		}

		partition := storage.PartitionPrimary
		if importDemo {
			partition = storage.PartitionDemo
		}
		if err := store.ReplaceAll(partition, entries); err != nil {
			return fmt.Errorf("failed to import: %w", err)
		}

		color.Green("✓ Imported %d entries into the %s log", len(entries), partition)
		return nil
	},
}

func init() {
	importCmd.Flags().BoolVar(&importDemo, "demo", false, "import into the demo partition")
	rootCmd.AddCommand(importCmd)
}
