// ABOUTME: Time-series trend generation for a fixed set of named metrics.
// ABOUTME: Unknown metric names yield an empty series, never an error.
package analytics

import (
	"fmt"

	"github.com/harperreed/biome/internal/models"
)

// Trend metric names. Anything else returns an empty series so callers can
// probe availability without exception handling.
const (
	MetricVolumeLoad      = "volume_load"
	MetricAverageRPE      = "average_rpe"
	MetricMaxWeight       = "max_weight"
	MetricWeeklyFrequency = "weekly_frequency"
)

// TrendMetrics lists the supported metric names.
var TrendMetrics = []string{MetricVolumeLoad, MetricAverageRPE, MetricMaxWeight, MetricWeeklyFrequency}

// Trend produces an ordered time series for the named metric, optionally
// scoped to one exercise. Points are ascending by date (or week start for
// weekly metrics).
func (e *Engine) Trend(metric, exercise string) ([]models.TrendPoint, error) {
	entries, err := e.store.Entries(e.store.ActivePartition())
	if err != nil {
		return nil, fmt.Errorf("trend %s: %w", metric, err)
	}
	if exercise != "" {
		entries = filterExercise(entries, exercise)
	}

	switch metric {
	case MetricVolumeLoad:
		return volumeLoadTrend(entries), nil
	case MetricAverageRPE:
		return averageRPETrend(entries), nil
	case MetricMaxWeight:
		return maxWeightTrend(entries), nil
	case MetricWeeklyFrequency:
		return weeklyFrequencyTrend(entries), nil
	default:
		return []models.TrendPoint{}, nil
	}
}

func filterExercise(entries []*models.SetEntry, exercise string) []*models.SetEntry {
	var filtered []*models.SetEntry
	for _, e := range entries {
		if e.Exercise == exercise {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// volumeLoadTrend sums weight*reps per date; sets missing either field are
// excluded rather than counted as zero.
func volumeLoadTrend(entries []*models.SetEntry) []models.TrendPoint {
	byDate := make(map[models.Date]float64)
	for _, e := range entries {
		if volume, ok := e.Volume(); ok {
			byDate[e.Date] += volume
		}
	}
	return toPoints(byDate)
}

// averageRPETrend computes the per-date mean RPE over sets that have one.
func averageRPETrend(entries []*models.SetEntry) []models.TrendPoint {
	sums := make(map[models.Date]float64)
	counts := make(map[models.Date]int)
	for _, e := range entries {
		if e.RPE == nil {
			continue
		}
		sums[e.Date] += *e.RPE
		counts[e.Date]++
	}
	byDate := make(map[models.Date]float64, len(sums))
	for date, sum := range sums {
		byDate[date] = sum / float64(counts[date])
	}
	return toPoints(byDate)
}

// maxWeightTrend takes the per-date max of machine_level + weight_kg with
// nulls coalesced to zero. The additive coalescing is deliberate: it
// projects free-weight and machine work onto one comparable scalar even
// though the units differ. Sets with neither value are excluded.
func maxWeightTrend(entries []*models.SetEntry) []models.TrendPoint {
	byDate := make(map[models.Date]float64)
	for _, e := range entries {
		if e.WeightKg == nil && e.MachineLevel == nil {
			continue
		}
		var combined float64
		if e.MachineLevel != nil {
			combined += *e.MachineLevel
		}
		if e.WeightKg != nil {
			combined += *e.WeightKg
		}
		if current, ok := byDate[e.Date]; !ok || combined > current {
			byDate[e.Date] = combined
		}
	}
	return toPoints(byDate)
}

// weeklyFrequencyTrend counts distinct training dates per Monday-anchored
// ISO week.
func weeklyFrequencyTrend(entries []*models.SetEntry) []models.TrendPoint {
	weeks := make(map[models.Date]map[models.Date]struct{})
	for _, e := range entries {
		weekStart := e.Date.StartOfWeek()
		if weeks[weekStart] == nil {
			weeks[weekStart] = make(map[models.Date]struct{})
		}
		weeks[weekStart][e.Date] = struct{}{}
	}
	byWeek := make(map[models.Date]float64, len(weeks))
	for weekStart, days := range weeks {
		byWeek[weekStart] = float64(len(days))
	}
	return toPoints(byWeek)
}

func toPoints(byDate map[models.Date]float64) []models.TrendPoint {
	points := make([]models.TrendPoint, 0, len(byDate))
	for _, date := range sortedKeys(byDate) {
		points = append(points, models.TrendPoint{Date: date, Value: byDate[date]})
	}
	return points
}
