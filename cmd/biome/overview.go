// ABOUTME: CLI command for the current-week KPI overview.
// ABOUTME: Shows frequency, volume load, and weak point count.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var overviewCmd = &cobra.Command{
	Use:     "overview",
	Aliases: []string{"o"},
	Short:   "Show current-week training KPIs",
	Long: `Show the KPIs for the current training week: training frequency
(distinct days), total volume load (weight × reps), and the number of sets
flagged as weak point work.

The week starts on Monday and is anchored to your most recent logged date.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		overview, err := engine.Overview()
		if err != nil {
			return fmt.Errorf("failed to compute overview: %w", err)
		}

		if overview.IsDemo {
			color.Yellow("(demo data)")
		}
		fmt.Printf("Weekly frequency   %d days\n", overview.WeeklyFrequency)
		fmt.Printf("Volume load        %.0f kg\n", overview.VolumeLoad)
		fmt.Printf("Weak point sets    %d\n", overview.WeakPointCount)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}
