// ABOUTME: Tests for progression analysis and session summaries.
// ABOUTME: Covers first-vs-last means, ranking, and session tie-breaks.
package analytics

import (
	"fmt"
	"testing"

	"github.com/harperreed/biome/internal/models"
)

func TestTopProgressions(t *testing.T) {
	engine, _ := setupEngine(t,
		// Squat: first date mean 100, last date mean (105+110)/2 = 107.5.
		entryOn(t, "2026-07-01", "Squat").WithWeight(100),
		entryOn(t, "2026-08-17", "Squat").WithWeight(105),
		entryOn(t, "2026-08-17", "Squat").WithWeight(110),
		// Bench: +2.5.
		entryOn(t, "2026-07-01", "Bench Press").WithWeight(80),
		entryOn(t, "2026-08-17", "Bench Press").WithWeight(82.5),
	)

	report, err := engine.Progression()
	if err != nil {
		t.Fatalf("Progression failed: %v", err)
	}
	if len(report.TopProgressions) != 2 {
		t.Fatalf("expected 2 progressions, got %d", len(report.TopProgressions))
	}

	top := report.TopProgressions[0]
	if top.Exercise != "Squat" {
		t.Errorf("top exercise = %s, want Squat (largest diff first)", top.Exercise)
	}
	if top.StartWeight != 100 || top.EndWeight != 107.5 || top.Diff != 7.5 {
		t.Errorf("squat progression = %+v, want 100 → 107.5 (+7.5)", top)
	}
	if report.TopProgressions[1].Diff != 2.5 {
		t.Errorf("bench diff = %.1f, want 2.5", report.TopProgressions[1].Diff)
	}
}

func TestProgressionSkipsSingleDateExercises(t *testing.T) {
	engine, _ := setupEngine(t,
		entryOn(t, "2026-08-17", "Squat").WithWeight(100),
		entryOn(t, "2026-08-17", "Squat").WithWeight(105),
	)

	report, err := engine.Progression()
	if err != nil {
		t.Fatalf("Progression failed: %v", err)
	}
	if len(report.TopProgressions) != 0 {
		t.Errorf("single-date exercise should be dropped, got %+v", report.TopProgressions)
	}
}

func TestProgressionSkipsZeroDiff(t *testing.T) {
	engine, _ := setupEngine(t,
		entryOn(t, "2026-07-01", "Squat").WithWeight(100),
		entryOn(t, "2026-08-17", "Squat").WithWeight(100),
	)

	report, err := engine.Progression()
	if err != nil {
		t.Fatalf("Progression failed: %v", err)
	}
	if len(report.TopProgressions) != 0 {
		t.Errorf("unchanged exercise should be dropped, got %+v", report.TopProgressions)
	}
}

func TestProgressionIgnoresMachineOnlySets(t *testing.T) {
	engine, _ := setupEngine(t,
		entryOn(t, "2026-07-01", "Leg Press").WithMachineLevel(10),
		entryOn(t, "2026-08-17", "Leg Press").WithMachineLevel(14),
	)

	report, err := engine.Progression()
	if err != nil {
		t.Fatalf("Progression failed: %v", err)
	}
	if len(report.TopProgressions) != 0 {
		t.Error("progression tracks weight_kg only")
	}
}

func TestTopProgressionsCappedAtFive(t *testing.T) {
	var entries []*models.SetEntry
	for i := 0; i < 6; i++ {
		name := fmt.Sprintf("Exercise %d", i)
		entries = append(entries,
			entryOn(t, "2026-07-01", name).WithWeight(100),
			entryOn(t, "2026-08-17", name).WithWeight(100+float64(i+1)),
		)
	}
	engine, _ := setupEngine(t, entries...)

	report, err := engine.Progression()
	if err != nil {
		t.Fatalf("Progression failed: %v", err)
	}
	if len(report.TopProgressions) != 5 {
		t.Fatalf("expected 5 progressions, got %d", len(report.TopProgressions))
	}
	// The smallest mover (+1) is the one cut.
	for _, p := range report.TopProgressions {
		if p.Diff == 1 {
			t.Error("cap should drop the smallest progression")
		}
	}
}

func TestRecentSessions(t *testing.T) {
	engine, _ := setupEngine(t,
		entryOn(t, "2026-08-17", "Squat").WithWorkout("Leg Day").WithWeight(100).WithReps(5),
		entryOn(t, "2026-08-17", "Leg Press").WithWorkout("Leg Day").WithMachineLevel(12).WithReps(10),
		entryOn(t, "2026-08-18", "Bench Press").WithWorkout("Push Day").WithWeight(80).WithReps(5),
		// Same date as Push Day but a different label: separate session,
		// ordered after it by the workout tie-break.
		entryOn(t, "2026-08-18", "Curl").WithWorkout("Arm Day").WithWeight(20).WithReps(12),
	)

	report, err := engine.Progression()
	if err != nil {
		t.Fatalf("Progression failed: %v", err)
	}
	sessions := report.RecentSessions
	if len(sessions) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(sessions))
	}

	if sessions[0].Workout != "Arm Day" || sessions[1].Workout != "Push Day" {
		t.Errorf("2026-08-18 sessions out of order: %s, %s", sessions[0].Workout, sessions[1].Workout)
	}
	legDay := sessions[2]
	if legDay.Date.String() != "2026-08-17" || legDay.Workout != "Leg Day" {
		t.Fatalf("unexpected oldest session: %+v", legDay)
	}
	if legDay.Sets != 2 {
		t.Errorf("leg day sets = %d, want 2", legDay.Sets)
	}
	// Machine-level work adds no volume.
	if legDay.Volume != 500 {
		t.Errorf("leg day volume = %.0f, want 500", legDay.Volume)
	}
}

func TestRecentSessionsCappedAtFive(t *testing.T) {
	var entries []*models.SetEntry
	for day := 10; day < 17; day++ {
		date := fmt.Sprintf("2026-08-%d", day)
		entries = append(entries, entryOn(t, date, "Squat").WithWorkout("Leg Day"))
	}
	engine, _ := setupEngine(t, entries...)

	report, err := engine.Progression()
	if err != nil {
		t.Fatalf("Progression failed: %v", err)
	}
	if len(report.RecentSessions) != 5 {
		t.Fatalf("expected 5 sessions, got %d", len(report.RecentSessions))
	}
	if report.RecentSessions[0].Date.String() != "2026-08-16" {
		t.Errorf("most recent session = %s, want 2026-08-16", report.RecentSessions[0].Date)
	}
}
