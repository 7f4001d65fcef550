// ABOUTME: CLI commands for exercise listing and lifetime stats.
// ABOUTME: Reads from the active partition.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exercisesCmd = &cobra.Command{
	Use:     "exercises",
	Aliases: []string{"ex"},
	Short:   "List all logged exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		exercises, err := engine.Exercises()
		if err != nil {
			return fmt.Errorf("failed to list exercises: %w", err)
		}
		if len(exercises) == 0 {
			fmt.Println("No exercises logged yet.")
			return nil
		}
		for _, name := range exercises {
			fmt.Println(name)
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats <exercise>",
	Short: "Show lifetime stats for one exercise",
	Long: `Show lifetime aggregates for one exercise: max weight, max machine
level, average RPE, total volume, and total set count.

Example:
  biome stats "Bench Press"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := engine.ExerciseStats(args[0])
		if err != nil {
			return fmt.Errorf("failed to compute stats: %w", err)
		}
		if stats.TotalSets == 0 {
			fmt.Printf("No loaded sets recorded for %s.\n", args[0])
			return nil
		}

		color.New(color.Bold).Println(args[0])
		fmt.Printf("  Max weight    %.1f kg\n", stats.MaxWeight)
		fmt.Printf("  Max level     %.0f\n", stats.MaxLevel)
		fmt.Printf("  Average RPE   %.1f\n", stats.AverageRPE)
		fmt.Printf("  Total volume  %.0f kg\n", stats.TotalVolume)
		fmt.Printf("  Total sets    %d\n", stats.TotalSets)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exercisesCmd)
	rootCmd.AddCommand(statsCmd)
}
