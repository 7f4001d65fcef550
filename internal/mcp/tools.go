// ABOUTME: MCP tool implementations for the training analytics engine.
// ABOUTME: Read tools mirror the engine surface; write tools hit the store.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/biome/internal/models"
	"github.com/harperreed/biome/internal/profile"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// get_overview
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_overview",
		Description: "Get current-week training KPIs: frequency, volume load, weak point count",
	}, s.handleGetOverview)

	// get_trends
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_trends",
		Description: "Get a time series for a metric (volume_load, average_rpe, max_weight, weekly_frequency)",
	}, s.handleGetTrends)

	// list_exercises
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List all distinct exercise names in the training log",
	}, s.handleListExercises)

	// get_exercise_stats
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_exercise_stats",
		Description: "Get lifetime stats for one exercise (max weight, max level, avg RPE, volume, sets)",
	}, s.handleGetExerciseStats)

	// get_progression
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_progression",
		Description: "Get top weight progressions per exercise and recent session summaries",
	}, s.handleGetProgression)

	// get_insights
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_insights",
		Description: "Run the heuristic insight rules (integrity, stagnation, progress, fatigue)",
	}, s.handleGetInsights)

	// get_recent_history
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_recent_history",
		Description: "Get raw recent training log entries, most recent first",
	}, s.handleGetRecentHistory)

	// log_set
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_set",
		Description: "Log a single working set to the training history",
	}, s.handleLogSet)

	// log_weight
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_weight",
		Description: "Record a body weight measurement (overwrites the date's entry)",
	}, s.handleLogWeight)

	// get_weight_history
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_weight_history",
		Description: "Get the full body weight history, oldest first",
	}, s.handleGetWeightHistory)

	// get_profile
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_profile",
		Description: "Get the user's coaching profile (goals, experience, bio)",
	}, s.handleGetProfile)

	// update_profile
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_profile",
		Description: "Update fields of the user's coaching profile",
	}, s.handleUpdateProfile)

	// save_memory
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "save_memory",
		Description: "Persist a coaching memory record (plan_snapshot, finding_snapshot, user_feedback, reflection)",
	}, s.handleSaveMemory)

	// list_memories
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_memories",
		Description: "List saved coaching memory records, newest first",
	}, s.handleListMemories)
}

// Tool input/output types

type emptyInput struct{}

type simpleOutput struct {
	Message string `json:"message"`
}

type getTrendsInput struct {
	Metric   string `json:"metric" jsonschema:"Metric name (volume_load, average_rpe, max_weight, weekly_frequency)"`
	Exercise string `json:"exercise,omitempty" jsonschema:"Optional exercise filter"`
}

type exerciseInput struct {
	Exercise string `json:"exercise" jsonschema:"Exercise name"`
}

type getInsightsInput struct {
	Exercise string `json:"exercise,omitempty" jsonschema:"Optional exercise to focus the rules on"`
}

type limitInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 50)"`
}

type logSetInput struct {
	Date            string   `json:"date,omitempty" jsonschema:"Session date (YYYY-MM-DD), defaults to today"`
	Workout         string   `json:"workout,omitempty" jsonschema:"Session label (e.g. Leg Day)"`
	Exercise        string   `json:"exercise" jsonschema:"Exercise name"`
	SetNumber       *int     `json:"set_number,omitempty" jsonschema:"Set number within the session"`
	Reps            *int     `json:"reps,omitempty" jsonschema:"Rep count"`
	DurationSeconds *int     `json:"duration_seconds,omitempty" jsonschema:"Duration for timed exercises"`
	WeightKg        *float64 `json:"weight_kg,omitempty" jsonschema:"Free-weight load in kg"`
	MachineLevel    *float64 `json:"machine_level,omitempty" jsonschema:"Machine resistance level"`
	WarmUp          string   `json:"warm_up,omitempty" jsonschema:"Warm-up marker"`
	RPE             *float64 `json:"rpe,omitempty" jsonschema:"Rate of perceived exertion, 0-10"`
	Notes           string   `json:"notes,omitempty" jsonschema:"Free-text notes"`
}

type logWeightInput struct {
	Date     string  `json:"date,omitempty" jsonschema:"Measurement date (YYYY-MM-DD), defaults to today"`
	WeightKg float64 `json:"weight_kg" jsonschema:"Body weight in kg"`
}

type updateProfileInput struct {
	Name            *string  `json:"name,omitempty" jsonschema:"Display name"`
	Bio             *string  `json:"bio,omitempty" jsonschema:"Short biography"`
	Sex             *string  `json:"sex,omitempty" jsonschema:"Sex"`
	DateOfBirth     *string  `json:"date_of_birth,omitempty" jsonschema:"Date of birth (YYYY-MM-DD)"`
	Age             *int     `json:"age,omitempty" jsonschema:"Age in years"`
	Goal            *string  `json:"goal,omitempty" jsonschema:"Training goal"`
	ExperienceLevel *string  `json:"experience_level,omitempty" jsonschema:"Training experience level"`
	WagePerHour     *float64 `json:"wage_per_hour,omitempty" jsonschema:"Hourly wage, used for time-cost estimates"`
}

type saveMemoryInput struct {
	Type    string         `json:"type" jsonschema:"Record type (plan_snapshot, finding_snapshot, user_feedback, reflection)"`
	Content map[string]any `json:"content" jsonschema:"Flexible payload for the summarized insight"`
	Tags    []string       `json:"tags,omitempty" jsonschema:"Optional tags"`
}

type memoryOutput struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleGetOverview(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, models.Overview, error) {
	overview, err := s.engine.Overview()
	if err != nil {
		return nil, models.Overview{}, fmt.Errorf("failed to compute overview: %w", err)
	}
	return nil, overview, nil
}

func (s *Server) handleGetTrends(ctx context.Context, req *mcp.CallToolRequest, input getTrendsInput) (*mcp.CallToolResult, any, error) {
	points, err := s.engine.Trend(input.Metric, input.Exercise)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compute trend: %w", err)
	}
	return nil, points, nil
}

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	exercises, err := s.engine.Exercises()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	if len(exercises) == 0 {
		return nil, map[string]any{"message": "No exercises logged yet."}, nil
	}
	return nil, exercises, nil
}

func (s *Server) handleGetExerciseStats(ctx context.Context, req *mcp.CallToolRequest, input exerciseInput) (*mcp.CallToolResult, models.ExerciseStats, error) {
	stats, err := s.engine.ExerciseStats(input.Exercise)
	if err != nil {
		return nil, models.ExerciseStats{}, fmt.Errorf("failed to compute exercise stats: %w", err)
	}
	return nil, stats, nil
}

func (s *Server) handleGetProgression(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	report, err := s.engine.Progression()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compute progression: %w", err)
	}
	return nil, report, nil
}

func (s *Server) handleGetInsights(ctx context.Context, req *mcp.CallToolRequest, input getInsightsInput) (*mcp.CallToolResult, any, error) {
	return nil, s.engine.Insights(input.Exercise), nil
}

func (s *Server) handleGetRecentHistory(ctx context.Context, req *mcp.CallToolRequest, input limitInput) (*mcp.CallToolResult, any, error) {
	entries, err := s.engine.RecentHistory(input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list history: %w", err)
	}
	if len(entries) == 0 {
		return nil, map[string]any{"message": "No training history yet."}, nil
	}
	return nil, entries, nil
}

func (s *Server) handleLogSet(ctx context.Context, req *mcp.CallToolRequest, input logSetInput) (*mcp.CallToolResult, simpleOutput, error) {
	date := models.DateOf(time.Now())
	if input.Date != "" {
		var err error
		date, err = models.ParseDate(input.Date)
		if err != nil {
			return nil, simpleOutput{}, err
		}
	}

	entry := models.NewSetEntry(date, input.Exercise)
	entry.Workout = input.Workout
	entry.SetNumber = input.SetNumber
	entry.Reps = input.Reps
	entry.DurationSeconds = input.DurationSeconds
	entry.WeightKg = input.WeightKg
	entry.MachineLevel = input.MachineLevel
	entry.RPE = input.RPE
	if input.WarmUp != "" {
		entry.WithWarmUp(input.WarmUp)
	}
	if input.Notes != "" {
		entry.WithNotes(input.Notes)
	}

	if err := s.store.Append(entry); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log set: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %s on %s", input.Exercise, date),
	}, nil
}

func (s *Server) handleLogWeight(ctx context.Context, req *mcp.CallToolRequest, input logWeightInput) (*mcp.CallToolResult, simpleOutput, error) {
	date := models.DateOf(time.Now())
	if input.Date != "" {
		var err error
		date, err = models.ParseDate(input.Date)
		if err != nil {
			return nil, simpleOutput{}, err
		}
	}

	if err := s.store.UpsertWeight(date, input.WeightKg); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log weight: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Recorded %.1f kg on %s", input.WeightKg, date),
	}, nil
}

func (s *Server) handleGetWeightHistory(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	history, err := s.store.WeightHistory()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get weight history: %w", err)
	}
	if len(history) == 0 {
		return nil, map[string]any{"message": "No weight entries yet."}, nil
	}
	return nil, history, nil
}

func (s *Server) handleGetProfile(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	p, err := s.profiles.GetProfile()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return nil, p, nil
}

func (s *Server) handleUpdateProfile(ctx context.Context, req *mcp.CallToolRequest, input updateProfileInput) (*mcp.CallToolResult, any, error) {
	p, err := s.profiles.GetProfile()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if input.Name != nil {
		p.Name = input.Name
	}
	if input.Bio != nil {
		p.Bio = input.Bio
	}
	if input.Sex != nil {
		p.Sex = input.Sex
	}
	if input.DateOfBirth != nil {
		p.DateOfBirth = input.DateOfBirth
	}
	if input.Age != nil {
		p.Age = input.Age
	}
	if input.Goal != nil {
		p.Goal = input.Goal
	}
	if input.ExperienceLevel != nil {
		p.ExperienceLevel = input.ExperienceLevel
	}
	if input.WagePerHour != nil {
		p.WagePerHour = input.WagePerHour
	}

	if err := s.profiles.SaveProfile(p); err != nil {
		return nil, nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return nil, p, nil
}

func (s *Server) handleSaveMemory(ctx context.Context, req *mcp.CallToolRequest, input saveMemoryInput) (*mcp.CallToolResult, memoryOutput, error) {
	rec := &profile.MemoryRecord{
		Type:    input.Type,
		Content: input.Content,
		Tags:    input.Tags,
	}
	id, err := s.profiles.SaveMemory(rec)
	if err != nil {
		return nil, memoryOutput{}, fmt.Errorf("failed to save memory: %w", err)
	}
	return nil, memoryOutput{
		ID:      id,
		Message: fmt.Sprintf("Saved %s memory (ID: %s)", input.Type, id[:8]),
	}, nil
}

func (s *Server) handleListMemories(ctx context.Context, req *mcp.CallToolRequest, input limitInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}
	records, err := s.profiles.ListMemories(input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list memories: %w", err)
	}
	if len(records) == 0 {
		return nil, map[string]any{"message": "No memories saved yet."}, nil
	}
	return nil, records, nil
}
