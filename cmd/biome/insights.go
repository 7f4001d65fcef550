// ABOUTME: CLI command for heuristic coaching insights.
// ABOUTME: Colors findings by severity: critical red, warning yellow, success green.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/biome/internal/models"
	"github.com/spf13/cobra"
)

var insightsExercise string

var insightsCmd = &cobra.Command{
	Use:     "insights",
	Aliases: []string{"i"},
	Short:   "Show heuristic coaching findings",
	Long: `Run the heuristic insight rules over your training history:

  integrity    chronology errors in the log (year going backwards)
  stagnation   top load unchanged over your last few sessions
  progress     clear load increase in the last month
  fatigue      sustained high RPE over the last week

Examples:
  biome insights
  biome insights --exercise "Squat"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		findings := engine.Insights(insightsExercise)
		if len(findings) == 0 {
			fmt.Println("No findings. Keep logging.")
			return nil
		}

		for _, f := range findings {
			marker := "•"
			switch f.Type {
			case models.FindingCritical:
				marker = color.RedString("✗")
			case models.FindingWarning:
				marker = color.YellowString("!")
			case models.FindingSuccess:
				marker = color.GreenString("✓")
			}
			fmt.Printf("%s %s\n", marker, f.Message)
		}
		return nil
	},
}

func init() {
	insightsCmd.Flags().StringVarP(&insightsExercise, "exercise", "e", "", "focus the rules on one exercise")
	rootCmd.AddCommand(insightsCmd)
}
