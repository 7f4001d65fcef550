// ABOUTME: Weekly KPI aggregation for the dashboard overview.
// ABOUTME: Week window is Monday-anchored, ending at the latest logged date.
package analytics

import (
	"fmt"
	"strings"

	"github.com/harperreed/biome/internal/models"
	"github.com/harperreed/biome/internal/storage"
)

// weakPointMarker tags sessions that target a specific weakness, matched
// case-insensitively as a substring of the workout label.
const weakPointMarker = "weak point"

// Overview computes the current-week KPIs from the active partition:
// distinct training days, total volume load, and weak-point session count.
// An empty partition yields zeros.
func (e *Engine) Overview() (models.Overview, error) {
	p := e.store.ActivePartition()
	overview := models.Overview{IsDemo: p == storage.PartitionDemo}

	latest, err := e.store.LatestDate(p)
	if err != nil {
		return overview, fmt.Errorf("overview: %w", err)
	}
	weekStart := latest.StartOfWeek()

	entries, err := e.store.EntriesSince(p, weekStart)
	if err != nil {
		return overview, fmt.Errorf("overview: %w", err)
	}

	days := make(map[models.Date]struct{})
	for _, entry := range entries {
		if !entry.Date.Within(weekStart, latest) {
			continue
		}
		days[entry.Date] = struct{}{}
		if volume, ok := entry.Volume(); ok {
			overview.VolumeLoad += volume
		}
		if strings.Contains(strings.ToLower(entry.Workout), weakPointMarker) {
			overview.WeakPointCount++
		}
	}
	overview.WeeklyFrequency = len(days)

	return overview, nil
}
