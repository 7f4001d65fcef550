// ABOUTME: Exercise listing, lifetime exercise stats, and recent history.
// ABOUTME: Read-only aggregates consumed by the CLI and agent tools.
package analytics

import (
	"fmt"
	"sort"

	"github.com/harperreed/biome/internal/models"
)

// defaultHistoryLimit caps RecentHistory when the caller passes no limit.
const defaultHistoryLimit = 50

// Exercises returns the sorted distinct exercise names in the active
// partition.
func (e *Engine) Exercises() ([]string, error) {
	return e.store.Exercises(e.store.ActivePartition())
}

// ExerciseStats computes lifetime aggregates for one exercise. An exercise
// with no weighted or machine-loaded sets yields all zeros.
func (e *Engine) ExerciseStats(exercise string) (models.ExerciseStats, error) {
	entries, err := e.store.Entries(e.store.ActivePartition())
	if err != nil {
		return models.ExerciseStats{}, fmt.Errorf("exercise stats: %w", err)
	}

	var stats models.ExerciseStats
	var rpeSum float64
	var rpeCount int
	hasLoad := false

	for _, entry := range entries {
		if entry.Exercise != exercise {
			continue
		}
		stats.TotalSets++
		if entry.WeightKg != nil {
			hasLoad = true
			if *entry.WeightKg > stats.MaxWeight {
				stats.MaxWeight = *entry.WeightKg
			}
		}
		if entry.MachineLevel != nil {
			hasLoad = true
			if *entry.MachineLevel > stats.MaxLevel {
				stats.MaxLevel = *entry.MachineLevel
			}
		}
		if entry.RPE != nil {
			rpeSum += *entry.RPE
			rpeCount++
		}
		if entry.Reps != nil {
			var combined float64
			if entry.MachineLevel != nil {
				combined += *entry.MachineLevel
			}
			if entry.WeightKg != nil {
				combined += *entry.WeightKg
			}
			stats.TotalVolume += combined * float64(*entry.Reps)
		}
	}

	if !hasLoad {
		return models.ExerciseStats{}, nil
	}
	if rpeCount > 0 {
		stats.AverageRPE = rpeSum / float64(rpeCount)
	}
	return stats, nil
}

// RecentHistory returns the most recent raw entries, date-descending, with
// later-appended rows first within a date. Limit defaults to 50.
func (e *Engine) RecentHistory(limit int) ([]*models.SetEntry, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	entries, err := e.store.Entries(e.store.ActivePartition())
	if err != nil {
		return nil, fmt.Errorf("recent history: %w", err)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date.After(entries[j].Date.Time)
		}
		return entries[i].RowID > entries[j].RowID
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
