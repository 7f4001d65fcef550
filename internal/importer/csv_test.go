// ABOUTME: Tests for CSV training-log parsing.
// ABOUTME: Covers header handling, optional fields, and strict row errors.
package importer

import (
	"strings"
	"testing"
)

func TestParseFullPayload(t *testing.T) {
	csv := `date,workout,exercise,set_number,reps,weight_kg,machine_level,rpe,notes
2026-08-17,Push Day,Bench Press,1,5,80,,8,felt strong
2026-08-17,Push Day,Leg Press,1,10,,12,,
2026-08-18,,Plank,,,,,,`

	entries, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	bench := entries[0]
	if bench.Exercise != "Bench Press" || bench.Workout != "Push Day" {
		t.Errorf("unexpected first entry: %+v", bench)
	}
	if bench.WeightKg == nil || *bench.WeightKg != 80 {
		t.Error("weight_kg not parsed")
	}
	if bench.Reps == nil || *bench.Reps != 5 {
		t.Error("reps not parsed")
	}
	if bench.Notes == nil || *bench.Notes != "felt strong" {
		t.Error("notes not parsed")
	}

	legPress := entries[1]
	if legPress.WeightKg != nil {
		t.Error("blank weight_kg should be nil")
	}
	if legPress.MachineLevel == nil || *legPress.MachineLevel != 12 {
		t.Error("machine_level not parsed")
	}

	plank := entries[2]
	if plank.Workout != "" || plank.Reps != nil || plank.RPE != nil {
		t.Errorf("blank optionals should stay empty: %+v", plank)
	}
}

func TestParseColumnOrderIsFree(t *testing.T) {
	csv := `exercise,weight_kg,date
Squat,100,2026-08-17`

	entries, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if entries[0].Exercise != "Squat" || entries[0].Date.String() != "2026-08-17" {
		t.Errorf("reordered columns misparsed: %+v", entries[0])
	}
}

func TestParseMissingRequiredColumn(t *testing.T) {
	csv := `workout,exercise
Push Day,Bench Press`

	_, err := Parse(strings.NewReader(csv))
	if err == nil {
		t.Fatal("expected error for missing date column")
	}
	if !strings.Contains(err.Error(), `"date"`) {
		t.Errorf("error should name the missing column: %v", err)
	}
}

func TestParseBadRowNamesRowNumber(t *testing.T) {
	csv := `date,exercise,reps
2026-08-17,Bench Press,5
2026-08-18,Squat,heavy`

	_, err := Parse(strings.NewReader(csv))
	if err == nil {
		t.Fatal("expected error for non-numeric reps")
	}
	if !strings.Contains(err.Error(), "row 3") {
		t.Errorf("error should name row 3: %v", err)
	}
}

func TestParseRejectsBadDate(t *testing.T) {
	csv := `date,exercise
17/08/2026,Bench Press`

	if _, err := Parse(strings.NewReader(csv)); err == nil {
		t.Fatal("expected error for non-ISO date")
	}
}

func TestParseEmptyPayload(t *testing.T) {
	if _, err := Parse(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty payload")
	}
}

func TestParseHeaderOnly(t *testing.T) {
	entries, err := Parse(strings.NewReader("date,exercise\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}
