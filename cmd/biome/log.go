// ABOUTME: CLI command for logging a single working set.
// ABOUTME: Always appends to the real training log, never the demo partition.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/biome/internal/models"
	"github.com/spf13/cobra"
)

var (
	logDate     string
	logWorkout  string
	logSet      int
	logReps     int
	logDuration int
	logWeight   float64
	logLevel    float64
	logRPE      float64
	logWarmUp   string
	logNotes    string
)

var logCmd = &cobra.Command{
	Use:     "log <exercise>",
	Aliases: []string{"l"},
	Short:   "Log a working set",
	Long: `Log a single working set to your training history.

Sets always go to your real log, even when demo mode is on.

Examples:
  biome log "Bench Press" --weight 80 --reps 5 --rpe 8
  biome log "Leg Press" --level 12 --reps 10 --workout "Leg Day"
  biome log "Plank" --duration 60
  biome log "Squat" --weight 100 --reps 3 --date 2026-08-20`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := models.DateOf(time.Now())
		if logDate != "" {
			var err error
			date, err = models.ParseDate(logDate)
			if err != nil {
				return fmt.Errorf("invalid date: %s", logDate)
			}
		}

		entry := models.NewSetEntry(date, args[0])
		if logWorkout != "" {
			entry.WithWorkout(logWorkout)
		}
		if cmd.Flags().Changed("set") {
			entry.WithSetNumber(logSet)
		}
		if cmd.Flags().Changed("reps") {
			entry.WithReps(logReps)
		}
		if cmd.Flags().Changed("duration") {
			entry.WithDuration(logDuration)
		}
		if cmd.Flags().Changed("weight") {
			entry.WithWeight(logWeight)
		}
		if cmd.Flags().Changed("level") {
			entry.WithMachineLevel(logLevel)
		}
		if cmd.Flags().Changed("rpe") {
			entry.WithRPE(logRPE)
		}
		if logWarmUp != "" {
			entry.WithWarmUp(logWarmUp)
		}
		if logNotes != "" {
			entry.WithNotes(logNotes)
		}

		if err := store.Append(entry); err != nil {
			return fmt.Errorf("failed to log set: %w", err)
		}

		color.Green("✓ Logged %s", entry.Exercise)
		detail := fmt.Sprintf("  %s %s", color.New(color.Faint).Sprint(entry.ID.String()[:8]), entry.Date)
		if entry.WeightKg != nil {
			detail += fmt.Sprintf("  %.1f kg", *entry.WeightKg)
		}
		if entry.MachineLevel != nil {
			detail += fmt.Sprintf("  level %.0f", *entry.MachineLevel)
		}
		if entry.Reps != nil {
			detail += fmt.Sprintf(" × %d", *entry.Reps)
		}
		fmt.Println(detail)
		return nil
	},
}

func init() {
	logCmd.Flags().StringVar(&logDate, "date", "", "session date (YYYY-MM-DD), defaults to today")
	logCmd.Flags().StringVarP(&logWorkout, "workout", "w", "", "session label (e.g. \"Leg Day\")")
	logCmd.Flags().IntVar(&logSet, "set", 0, "set number within the session")
	logCmd.Flags().IntVarP(&logReps, "reps", "r", 0, "rep count")
	logCmd.Flags().IntVar(&logDuration, "duration", 0, "duration in seconds for timed exercises")
	logCmd.Flags().Float64Var(&logWeight, "weight", 0, "free-weight load in kg")
	logCmd.Flags().Float64Var(&logLevel, "level", 0, "machine resistance level")
	logCmd.Flags().Float64Var(&logRPE, "rpe", 0, "rate of perceived exertion (0-10)")
	logCmd.Flags().StringVar(&logWarmUp, "warmup", "", "warm-up marker")
	logCmd.Flags().StringVar(&logNotes, "notes", "", "free-text notes")
	rootCmd.AddCommand(logCmd)
}
