// ABOUTME: CLI command for listing recent raw training log entries.
// ABOUTME: Most recent entries first, limited with -n.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"hist"},
	Short:   "List recent training log entries",
	Long: `List raw training log entries from the active partition, most recent
first.

Examples:
  biome history
  biome history -n 100`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := engine.RecentHistory(historyLimit)
		if err != nil {
			return fmt.Errorf("failed to list history: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No training history yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range entries {
			var load []string
			if e.WeightKg != nil {
				load = append(load, fmt.Sprintf("%.1f kg", *e.WeightKg))
			}
			if e.MachineLevel != nil {
				load = append(load, fmt.Sprintf("level %.0f", *e.MachineLevel))
			}
			if e.Reps != nil {
				load = append(load, fmt.Sprintf("× %d", *e.Reps))
			}
			if e.RPE != nil {
				load = append(load, fmt.Sprintf("@%.1f", *e.RPE))
			}
			fmt.Printf("%s %s %-24s %s\n",
				faint.Sprint(e.ID.String()[:8]),
				faint.Sprint(e.Date),
				e.Exercise,
				strings.Join(load, " "))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 50, "max number of entries")
	rootCmd.AddCommand(historyCmd)
}
