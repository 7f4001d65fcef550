// ABOUTME: Analytics engine over the training-log store.
// ABOUTME: Synchronous, read-only aggregation; all writes stay in storage.
package analytics

import (
	"os"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/harperreed/biome/internal/models"
	"github.com/harperreed/biome/internal/storage"
)

// Thresholds collects the tunable constants behind the insight rules, so
// tests can exercise boundary values without code edits.
type Thresholds struct {
	// ProgressSwingRatio is the min/max ratio above which the progress
	// rule fires. 1.05 means a >5% load swing within the window.
	ProgressSwingRatio float64
	// FatigueRPECutoff is the trailing-average RPE above which the
	// fatigue rule fires. Strictly greater-than.
	FatigueRPECutoff float64
	// StagnationSessions is how many most-recent distinct-date maxima
	// must be equal for the stagnation rule to fire.
	StagnationSessions int
	// ProgressWindowDays and FatigueWindowDays are trailing lookback
	// windows measured from the current date.
	ProgressWindowDays int
	FatigueWindowDays  int
	// MaxFindings caps the combined insight list; MaxFindingsPerExercise
	// applies instead when a single exercise is requested.
	MaxFindings            int
	MaxFindingsPerExercise int
}

// DefaultThresholds returns the production rule constants.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ProgressSwingRatio:     1.05,
		FatigueRPECutoff:       9.0,
		StagnationSessions:     3,
		ProgressWindowDays:     30,
		FatigueWindowDays:      7,
		MaxFindings:            5,
		MaxFindingsPerExercise: 3,
	}
}

// Engine computes metrics, trends, progression, and insights from whichever
// partition the store currently selects. It never writes.
type Engine struct {
	store      *storage.DB
	thresholds Thresholds
	now        func() time.Time
	logger     *log.Logger
}

// New creates an engine with default thresholds and the system clock.
func New(store *storage.DB) *Engine {
	return &Engine{
		store:      store,
		thresholds: DefaultThresholds(),
		now:        time.Now,
		logger:     log.New(os.Stderr),
	}
}

// WithThresholds overrides the rule constants.
func (e *Engine) WithThresholds(t Thresholds) *Engine {
	e.thresholds = t
	return e
}

// WithClock overrides the wall clock used for trailing windows.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// WithLogger overrides the logger used for rule-failure reporting.
func (e *Engine) WithLogger(logger *log.Logger) *Engine {
	e.logger = logger
	return e
}

// today returns the current calendar date from the engine's clock.
func (e *Engine) today() models.Date {
	return models.DateOf(e.now())
}

// sortedKeys returns map keys in ascending date order.
func sortedKeys[V any](m map[models.Date]V) []models.Date {
	keys := make([]models.Date, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j].Time) })
	return keys
}

// sortedExercises returns map keys alphabetically, for deterministic output.
func sortedExercises[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
