// ABOUTME: Tests for SetEntry validation and load/volume helpers.
// ABOUTME: Covers the weight-vs-machine-level coalescing rules.
package models

import (
	"testing"
	"time"
)

func TestSetEntryValidate(t *testing.T) {
	entry := NewSetEntry(NewDate(2026, time.August, 17), "Bench Press")
	if err := entry.Validate(); err != nil {
		t.Fatalf("valid entry rejected: %v", err)
	}

	noDate := &SetEntry{Exercise: "Bench Press"}
	if err := noDate.Validate(); err == nil {
		t.Error("expected error for missing date")
	}

	noExercise := NewSetEntry(NewDate(2026, time.August, 17), "")
	if err := noExercise.Validate(); err == nil {
		t.Error("expected error for missing exercise")
	}

	badRPE := NewSetEntry(NewDate(2026, time.August, 17), "Squat").WithRPE(11)
	if err := badRPE.Validate(); err == nil {
		t.Error("expected error for RPE above 10")
	}

	edgeRPE := NewSetEntry(NewDate(2026, time.August, 17), "Squat").WithRPE(10)
	if err := edgeRPE.Validate(); err != nil {
		t.Errorf("RPE 10 should be valid: %v", err)
	}
}

func TestLoadPrefersWeight(t *testing.T) {
	entry := NewSetEntry(NewDate(2026, time.August, 17), "Leg Press").
		WithWeight(80).WithMachineLevel(12)

	load, ok := entry.Load()
	if !ok || load != 80 {
		t.Errorf("Load = %.1f, %v; want 80, true", load, ok)
	}

	machineOnly := NewSetEntry(NewDate(2026, time.August, 17), "Leg Press").
		WithMachineLevel(12)
	load, ok = machineOnly.Load()
	if !ok || load != 12 {
		t.Errorf("Load = %.1f, %v; want 12, true", load, ok)
	}

	bare := NewSetEntry(NewDate(2026, time.August, 17), "Plank")
	if _, ok := bare.Load(); ok {
		t.Error("entry with no load should report false")
	}
}

func TestVolumeRequiresBothFields(t *testing.T) {
	full := NewSetEntry(NewDate(2026, time.August, 17), "Bench Press").
		WithWeight(80).WithReps(5)
	if v, ok := full.Volume(); !ok || v != 400 {
		t.Errorf("Volume = %.1f, %v; want 400, true", v, ok)
	}

	noReps := NewSetEntry(NewDate(2026, time.August, 17), "Bench Press").
		WithWeight(80)
	if _, ok := noReps.Volume(); ok {
		t.Error("volume without reps should report false")
	}

	// Machine level does not count toward volume load.
	machine := NewSetEntry(NewDate(2026, time.August, 17), "Leg Press").
		WithMachineLevel(12).WithReps(10)
	if _, ok := machine.Volume(); ok {
		t.Error("volume without weight should report false")
	}
}
