// ABOUTME: SetEntry and WeightEntry models for the training log.
// ABOUTME: Optional fields are pointers; missing values stay null in storage.
package models

import (
	"fmt"

	"github.com/google/uuid"
)

// SetEntry represents one recorded working set.
//
// RowID is the insertion order within its partition, assigned by the store
// at write time. It reflects append sequence, not calendar order; the two
// can diverge when sets are logged retroactively.
type SetEntry struct {
	ID              uuid.UUID `json:"id" yaml:"id"`
	RowID           int64     `json:"row_id" yaml:"row_id"`
	Date            Date      `json:"date" yaml:"date"`
	Workout         string    `json:"workout,omitempty" yaml:"workout,omitempty"`
	Exercise        string    `json:"exercise" yaml:"exercise"`
	SetNumber       *int      `json:"set_number,omitempty" yaml:"set_number,omitempty"`
	Reps            *int      `json:"reps,omitempty" yaml:"reps,omitempty"`
	DurationSeconds *int      `json:"duration_seconds,omitempty" yaml:"duration_seconds,omitempty"`
	WeightKg        *float64  `json:"weight_kg,omitempty" yaml:"weight_kg,omitempty"`
	MachineLevel    *float64  `json:"machine_level,omitempty" yaml:"machine_level,omitempty"`
	WarmUp          *string   `json:"warm_up,omitempty" yaml:"warm_up,omitempty"`
	RPE             *float64  `json:"rpe,omitempty" yaml:"rpe,omitempty"`
	Notes           *string   `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// NewSetEntry creates a set entry with a generated UUID.
// RowID is left zero; the store assigns it on write.
func NewSetEntry(date Date, exercise string) *SetEntry {
	return &SetEntry{
		ID:       uuid.New(),
		Date:     date,
		Exercise: exercise,
	}
}

// WithWorkout sets the session label.
func (e *SetEntry) WithWorkout(workout string) *SetEntry {
	e.Workout = workout
	return e
}

// WithSetNumber sets the set number within the session.
func (e *SetEntry) WithSetNumber(n int) *SetEntry {
	e.SetNumber = &n
	return e
}

// WithReps sets the rep count.
func (e *SetEntry) WithReps(reps int) *SetEntry {
	e.Reps = &reps
	return e
}

// WithDuration sets the duration in seconds for timed exercises.
func (e *SetEntry) WithDuration(seconds int) *SetEntry {
	e.DurationSeconds = &seconds
	return e
}

// WithWeight sets the free-weight load in kilograms.
func (e *SetEntry) WithWeight(kg float64) *SetEntry {
	e.WeightKg = &kg
	return e
}

// WithMachineLevel sets the machine resistance level.
func (e *SetEntry) WithMachineLevel(level float64) *SetEntry {
	e.MachineLevel = &level
	return e
}

// WithWarmUp marks the set as a warm-up.
func (e *SetEntry) WithWarmUp(warmUp string) *SetEntry {
	e.WarmUp = &warmUp
	return e
}

// WithRPE sets the rate of perceived exertion (0-10).
func (e *SetEntry) WithRPE(rpe float64) *SetEntry {
	e.RPE = &rpe
	return e
}

// WithNotes sets free-text notes.
func (e *SetEntry) WithNotes(notes string) *SetEntry {
	e.Notes = &notes
	return e
}

// Validate checks the fields required for any write: date and exercise.
// Everything else is optional and stored as null when absent.
func (e *SetEntry) Validate() error {
	if e.Date.IsZero() {
		return fmt.Errorf("set entry: date is required")
	}
	if e.Exercise == "" {
		return fmt.Errorf("set entry: exercise is required")
	}
	if e.RPE != nil && (*e.RPE < 0 || *e.RPE > 10) {
		return fmt.Errorf("set entry: rpe %.1f outside 0-10 scale", *e.RPE)
	}
	return nil
}

// Load returns the single comparable load scalar for the set: weight if
// present, otherwise machine level. The second value is false when the set
// carries neither.
func (e *SetEntry) Load() (float64, bool) {
	if e.WeightKg != nil {
		return *e.WeightKg, true
	}
	if e.MachineLevel != nil {
		return *e.MachineLevel, true
	}
	return 0, false
}

// Volume returns weight*reps, or false when either field is missing.
func (e *SetEntry) Volume() (float64, bool) {
	if e.WeightKg == nil || e.Reps == nil {
		return 0, false
	}
	return *e.WeightKg * float64(*e.Reps), true
}

// WeightEntry is one body-weight measurement. Date is the unique key;
// a second write for the same date overwrites the first.
type WeightEntry struct {
	Date     Date    `json:"date" yaml:"date"`
	WeightKg float64 `json:"weight_kg" yaml:"weight_kg"`
}
