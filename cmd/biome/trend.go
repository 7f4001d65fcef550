// ABOUTME: CLI command for metric time series.
// ABOUTME: Prints date/value pairs for one of the chartable metrics.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/biome/internal/analytics"
	"github.com/spf13/cobra"
)

var trendExercise string

var trendCmd = &cobra.Command{
	Use:     "trend <metric>",
	Aliases: []string{"t"},
	Short:   "Show a metric time series",
	Long: `Show a time series for one metric, one point per date (or per week
for weekly_frequency).

Metrics:
  volume_load       total weight × reps per date
  average_rpe       mean RPE per date
  max_weight        heaviest combined load per date
  weekly_frequency  distinct training days per Monday-anchored week

Examples:
  biome trend volume_load
  biome trend max_weight --exercise "Bench Press"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		points, err := engine.Trend(args[0], trendExercise)
		if err != nil {
			return fmt.Errorf("failed to compute trend: %w", err)
		}
		if len(points) == 0 {
			fmt.Printf("No data for %s.\nValid metrics: %s\n",
				args[0], strings.Join(analytics.TrendMetrics, ", "))
			return nil
		}

		faint := color.New(color.Faint)
		for _, p := range points {
			fmt.Printf("%s  %.1f\n", faint.Sprint(p.Date), p.Value)
		}
		return nil
	},
}

func init() {
	trendCmd.Flags().StringVarP(&trendExercise, "exercise", "e", "", "filter to one exercise")
	rootCmd.AddCommand(trendCmd)
}
