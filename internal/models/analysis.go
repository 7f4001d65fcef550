// ABOUTME: Result types produced by the analytics engine.
// ABOUTME: All types are plain JSON-serializable structs consumed by CLI and MCP.
package models

// Overview holds the KPIs for the current training week.
type Overview struct {
	WeeklyFrequency int     `json:"weekly_frequency"`
	VolumeLoad      float64 `json:"total_volume_load_current_week"`
	WeakPointCount  int     `json:"active_weak_points_count"`
	IsDemo          bool    `json:"is_demo"`
}

// TrendPoint is one sample of a charted metric. Date is the calendar date,
// or the Monday of the week for weekly metrics.
type TrendPoint struct {
	Date  Date    `json:"date"`
	Value float64 `json:"value"`
}

// FindingType classifies the severity of an insight finding.
type FindingType string

const (
	FindingCritical FindingType = "critical"
	FindingWarning  FindingType = "warning"
	FindingSuccess  FindingType = "success"
)

// Finding categories, one per insight rule.
const (
	CategoryIntegrity  = "integrity"
	CategoryStagnation = "stagnation"
	CategoryProgress   = "progress"
	CategoryFatigue    = "fatigue"
)

// Finding is one human-readable insight produced by a heuristic rule.
type Finding struct {
	Type     FindingType `json:"type"`
	Category string      `json:"category"`
	Exercise string      `json:"exercise,omitempty"`
	Message  string      `json:"message"`
}

// ProgressionEntry captures first-vs-last average weight for one exercise.
type ProgressionEntry struct {
	Exercise    string  `json:"exercise"`
	StartWeight float64 `json:"start_weight"`
	EndWeight   float64 `json:"end_weight"`
	Diff        float64 `json:"diff"`
}

// SessionSummary aggregates one (date, workout) training session.
type SessionSummary struct {
	Date    Date    `json:"date"`
	Workout string  `json:"workout"`
	Sets    int     `json:"sets"`
	Volume  float64 `json:"volume"`
}

// ProgressionReport is the combined progression analysis output.
type ProgressionReport struct {
	TopProgressions []ProgressionEntry `json:"top_progressions"`
	RecentSessions  []SessionSummary   `json:"recent_workout_summaries"`
}

// ExerciseStats holds lifetime aggregates for a single exercise.
type ExerciseStats struct {
	MaxWeight   float64 `json:"max_weight"`
	MaxLevel    float64 `json:"max_level"`
	AverageRPE  float64 `json:"average_rpe"`
	TotalVolume float64 `json:"total_volume"`
	TotalSets   int     `json:"total_sets"`
}
