// ABOUTME: Progression-over-time analysis and recent session summaries.
// ABOUTME: Compares first-date vs last-date mean weights per exercise.
package analytics

import (
	"fmt"
	"sort"

	"github.com/harperreed/biome/internal/models"
)

const (
	topProgressionLimit = 5
	recentSessionLimit  = 5
)

// Progression identifies the exercises with the largest first-vs-last
// average weight change and summarizes the most recent sessions. Exercises
// whose change is zero — including those seen on only one date — are
// dropped.
func (e *Engine) Progression() (*models.ProgressionReport, error) {
	entries, err := e.store.Entries(e.store.ActivePartition())
	if err != nil {
		return nil, fmt.Errorf("progression: %w", err)
	}

	report := &models.ProgressionReport{
		TopProgressions: topProgressions(entries),
		RecentSessions:  recentSessions(entries),
	}
	return report, nil
}

func topProgressions(entries []*models.SetEntry) []models.ProgressionEntry {
	type bounds struct {
		first, last models.Date
	}
	byExercise := make(map[string]*bounds)
	for _, e := range entries {
		if e.WeightKg == nil {
			continue
		}
		b, ok := byExercise[e.Exercise]
		if !ok {
			byExercise[e.Exercise] = &bounds{first: e.Date, last: e.Date}
			continue
		}
		if e.Date.Before(b.first.Time) {
			b.first = e.Date
		}
		if e.Date.After(b.last.Time) {
			b.last = e.Date
		}
	}

	meanWeightAt := func(exercise string, date models.Date) float64 {
		var sum float64
		var n int
		for _, e := range entries {
			if e.Exercise == exercise && e.Date == date && e.WeightKg != nil {
				sum += *e.WeightKg
				n++
			}
		}
		return sum / float64(n)
	}

	var progressions []models.ProgressionEntry
	for _, exercise := range sortedExercises(byExercise) {
		b := byExercise[exercise]
		start := meanWeightAt(exercise, b.first)
		end := meanWeightAt(exercise, b.last)
		if end == start {
			continue
		}
		progressions = append(progressions, models.ProgressionEntry{
			Exercise:    exercise,
			StartWeight: start,
			EndWeight:   end,
			Diff:        end - start,
		})
	}

	sort.SliceStable(progressions, func(i, j int) bool {
		return progressions[i].Diff > progressions[j].Diff
	})
	if len(progressions) > topProgressionLimit {
		progressions = progressions[:topProgressionLimit]
	}
	return progressions
}

func recentSessions(entries []*models.SetEntry) []models.SessionSummary {
	type sessionKey struct {
		date    models.Date
		workout string
	}
	sessions := make(map[sessionKey]*models.SessionSummary)
	for _, e := range entries {
		key := sessionKey{date: e.Date, workout: e.Workout}
		s, ok := sessions[key]
		if !ok {
			s = &models.SessionSummary{Date: e.Date, Workout: e.Workout}
			sessions[key] = s
		}
		s.Sets++
		if volume, ok := e.Volume(); ok {
			s.Volume += volume
		}
	}

	summaries := make([]models.SessionSummary, 0, len(sessions))
	for _, s := range sessions {
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Date != summaries[j].Date {
			return summaries[i].Date.After(summaries[j].Date.Time)
		}
		return summaries[i].Workout < summaries[j].Workout
	})
	if len(summaries) > recentSessionLimit {
		summaries = summaries[:recentSessionLimit]
	}
	return summaries
}
