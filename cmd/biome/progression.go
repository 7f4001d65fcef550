// ABOUTME: CLI command for progression analysis.
// ABOUTME: Shows top weight progressions and recent session summaries.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var progressionCmd = &cobra.Command{
	Use:     "progression",
	Aliases: []string{"prog"},
	Short:   "Show top weight progressions and recent sessions",
	Long: `Compare the average weight of each exercise's first and last logged
dates and rank the biggest movers, then summarize the most recent sessions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := engine.Progression()
		if err != nil {
			return fmt.Errorf("failed to compute progression: %w", err)
		}

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		bold.Println("Top progressions")
		if len(report.TopProgressions) == 0 {
			fmt.Println("  No exercises with weight logged on more than one date.")
		}
		for _, p := range report.TopProgressions {
			diff := fmt.Sprintf("%+.1f kg", p.Diff)
			if p.Diff > 0 {
				diff = color.GreenString(diff)
			} else {
				diff = color.RedString(diff)
			}
			fmt.Printf("  %-24s %s %s\n", p.Exercise, diff,
				faint.Sprintf("(%.1f → %.1f)", p.StartWeight, p.EndWeight))
		}

		bold.Println("\nRecent sessions")
		if len(report.RecentSessions) == 0 {
			fmt.Println("  No sessions logged yet.")
		}
		for _, s := range report.RecentSessions {
			workout := s.Workout
			if workout == "" {
				workout = "(unlabeled)"
			}
			fmt.Printf("  %s  %-20s %d sets, %.0f kg volume\n",
				faint.Sprint(s.Date), workout, s.Sets, s.Volume)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(progressionCmd)
}
