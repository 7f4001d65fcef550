// ABOUTME: Heuristic insight engine: integrity, stagnation, progress, fatigue.
// ABOUTME: Rules run in fixed order and are failure-isolated from each other.
package analytics

import (
	"fmt"
	"sort"

	"github.com/harperreed/biome/internal/models"
)

// insightDateLayout matches the human-readable dates in integrity findings.
const insightDateLayout = "Jan 02, 2006"

// Insights runs the four heuristic rules against the active partition and
// returns their findings in rule order, capped at MaxFindings (or
// MaxFindingsPerExercise when scoped to one exercise). A failing rule is
// logged and skipped; the remaining rules still contribute.
func (e *Engine) Insights(exercise string) []models.Finding {
	rules := []struct {
		name string
		run  func(exercise string) ([]models.Finding, error)
	}{
		{"integrity", e.integrityFindings},
		{"stagnation", e.stagnationFindings},
		{"progress", e.progressFindings},
		{"fatigue", e.fatigueFindings},
	}

	findings := make([]models.Finding, 0)
	for _, rule := range rules {
		ruleFindings, err := rule.run(exercise)
		if err != nil {
			e.logger.Warn("insight rule failed", "rule", rule.name, "err", err)
			continue
		}
		findings = append(findings, ruleFindings...)
	}

	limit := e.thresholds.MaxFindings
	if exercise != "" {
		limit = e.thresholds.MaxFindingsPerExercise
	}
	if len(findings) > limit {
		findings = findings[:limit]
	}
	return findings
}

// integrityFindings walks the partition in insertion order and reports the
// first adjacent pair where the later-appended row has an earlier calendar
// year. That local inversion is the practical signature of a mis-typed
// year; the dataset as a whole is not assumed chronologically monotonic.
// The exercise filter deliberately does not apply here.
func (e *Engine) integrityFindings(string) ([]models.Finding, error) {
	entries, err := e.store.Entries(e.store.ActivePartition())
	if err != nil {
		return nil, err
	}

	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1], entries[i]
		if cur.Date.Year() < prev.Date.Year() {
			return []models.Finding{{
				Type:     models.FindingCritical,
				Category: models.CategoryIntegrity,
				Message: fmt.Sprintf("Data entry error? %s follows %s in your logs.",
					cur.Date.Format(insightDateLayout), prev.Date.Format(insightDateLayout)),
			}}, nil
		}
	}
	return nil, nil
}

// stagnationFindings warns when an exercise's per-date max load has not
// moved across the most recent sessions. Load is weight_kg if present,
// otherwise machine_level; only one is expected populated per exercise.
func (e *Engine) stagnationFindings(exercise string) ([]models.Finding, error) {
	entries, err := e.store.Entries(e.store.ActivePartition())
	if err != nil {
		return nil, err
	}

	maxByExerciseDate := make(map[string]map[models.Date]float64)
	for _, entry := range entries {
		if exercise != "" && entry.Exercise != exercise {
			continue
		}
		load, ok := entry.Load()
		if !ok {
			continue
		}
		if maxByExerciseDate[entry.Exercise] == nil {
			maxByExerciseDate[entry.Exercise] = make(map[models.Date]float64)
		}
		dates := maxByExerciseDate[entry.Exercise]
		if current, seen := dates[entry.Date]; !seen || load > current {
			dates[entry.Date] = load
		}
	}

	window := e.thresholds.StagnationSessions
	var findings []models.Finding
	for _, name := range sortedExercises(maxByExerciseDate) {
		byDate := maxByExerciseDate[name]
		if len(byDate) < window {
			continue
		}
		dates := sortedKeys(byDate)
		recent := dates[len(dates)-window:]
		stagnant := true
		for _, d := range recent[1:] {
			if byDate[d] != byDate[recent[0]] {
				stagnant = false
				break
			}
		}
		if stagnant {
			findings = append(findings, models.Finding{
				Type:     models.FindingWarning,
				Category: models.CategoryStagnation,
				Exercise: name,
				Message: fmt.Sprintf("Your performance on %s hasn't changed in the last %d sessions. Consider increasing load or reps.",
					name, window),
			})
		}
	}
	return findings, nil
}

// progressFindings celebrates a load swing above the configured ratio
// within the trailing window. This is a pure range test: the max is not
// required to come after the min, so a dip-then-recovery also qualifies.
func (e *Engine) progressFindings(exercise string) ([]models.Finding, error) {
	cutoff := e.today().AddDays(-e.thresholds.ProgressWindowDays)
	entries, err := e.store.EntriesSince(e.store.ActivePartition(), cutoff)
	if err != nil {
		return nil, err
	}

	type loadRange struct {
		min, max float64
	}
	ranges := make(map[string]*loadRange)
	for _, entry := range entries {
		if exercise != "" && entry.Exercise != exercise {
			continue
		}
		load, ok := entry.Load()
		if !ok {
			continue
		}
		r, seen := ranges[entry.Exercise]
		if !seen {
			ranges[entry.Exercise] = &loadRange{min: load, max: load}
			continue
		}
		if load < r.min {
			r.min = load
		}
		if load > r.max {
			r.max = load
		}
	}

	var findings []models.Finding
	for _, name := range sortedExercises(ranges) {
		r := ranges[name]
		if r.max > r.min*e.thresholds.ProgressSwingRatio {
			findings = append(findings, models.Finding{
				Type:     models.FindingSuccess,
				Category: models.CategoryProgress,
				Exercise: name,
				Message:  fmt.Sprintf("Solid progress on %s! You've increased your load recently.", name),
			})
		}
	}
	return findings, nil
}

// fatigueFindings warns of overtraining risk when the trailing-window mean
// RPE for an exercise exceeds the cutoff.
func (e *Engine) fatigueFindings(exercise string) ([]models.Finding, error) {
	cutoff := e.today().AddDays(-e.thresholds.FatigueWindowDays)
	entries, err := e.store.EntriesSince(e.store.ActivePartition(), cutoff)
	if err != nil {
		return nil, err
	}

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, entry := range entries {
		if exercise != "" && entry.Exercise != exercise {
			continue
		}
		if entry.RPE == nil {
			continue
		}
		sums[entry.Exercise] += *entry.RPE
		counts[entry.Exercise]++
	}

	names := make([]string, 0, len(sums))
	for name := range sums {
		names = append(names, name)
	}
	sort.Strings(names)

	var findings []models.Finding
	for _, name := range names {
		avg := sums[name] / float64(counts[name])
		if avg > e.thresholds.FatigueRPECutoff {
			findings = append(findings, models.Finding{
				Type:     models.FindingWarning,
				Category: models.CategoryFatigue,
				Exercise: name,
				Message:  fmt.Sprintf("Intensity alert for %s (Avg RPE %.1f). Consider a deload.", name, avg),
			})
		}
	}
	return findings, nil
}
