// ABOUTME: CLI commands for body weight tracking.
// ABOUTME: One measurement per date; re-logging a date overwrites it.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/biome/internal/models"
	"github.com/spf13/cobra"
)

var weightDate string

var weightCmd = &cobra.Command{
	Use:   "weight <kg>",
	Short: "Log a body weight measurement",
	Long: `Log a body weight measurement. One entry per date; logging again for
the same date overwrites the previous value.

Examples:
  biome weight 82.5
  biome weight 81.9 --date 2026-08-20
  biome weight history`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kg, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid weight: %s", args[0])
		}

		date := models.DateOf(time.Now())
		if weightDate != "" {
			date, err = models.ParseDate(weightDate)
			if err != nil {
				return fmt.Errorf("invalid date: %s", weightDate)
			}
		}

		if err := store.UpsertWeight(date, kg); err != nil {
			return fmt.Errorf("failed to log weight: %w", err)
		}

		color.Green("✓ Recorded %.1f kg on %s", kg, date)
		return nil
	},
}

var weightHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the body weight history",
	RunE: func(cmd *cobra.Command, args []string) error {
		history, err := store.WeightHistory()
		if err != nil {
			return fmt.Errorf("failed to get weight history: %w", err)
		}
		if len(history) == 0 {
			fmt.Println("No weight entries yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, w := range history {
			fmt.Printf("%s  %.1f kg\n", faint.Sprint(w.Date), w.WeightKg)
		}
		return nil
	},
}

func init() {
	weightCmd.Flags().StringVar(&weightDate, "date", "", "measurement date (YYYY-MM-DD), defaults to today")
	weightCmd.AddCommand(weightHistoryCmd)
	rootCmd.AddCommand(weightCmd)
}
