// ABOUTME: CSV parsing for bulk training-log imports.
// ABOUTME: Header-driven; any malformed cell fails the whole payload.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/harperreed/biome/internal/models"
)

// Columns recognized in an import payload. date and exercise are required
// per row; everything else may be blank.
const (
	colDate            = "date"
	colWorkout         = "workout"
	colExercise        = "exercise"
	colSetNumber       = "set_number"
	colReps            = "reps"
	colDurationSeconds = "duration_seconds"
	colWeightKg        = "weight_kg"
	colMachineLevel    = "machine_level"
	colWarmUp          = "warm_up"
	colRPE             = "rpe"
	colNotes           = "notes"
)

// Parse reads a CSV payload into set entries, in input order. The first
// record must be a header naming at least the date and exercise columns;
// column order is free. The returned entries have no row_id assigned; the
// store does that on ReplaceAll.
//
// Parsing is strict so that a bulk replace never half-applies: the first
// bad cell aborts with an error naming the offending row.
func Parse(r io.Reader) ([]*models.SetEntry, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv import: empty payload")
	}
	if err != nil {
		return nil, fmt.Errorf("csv import: read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{colDate, colExercise} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("csv import: missing required column %q", required)
		}
	}

	var entries []*models.SetEntry
	rowNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			return nil, fmt.Errorf("csv import: row %d: %w", rowNum, err)
		}

		entry, err := parseRecord(cols, record)
		if err != nil {
			return nil, fmt.Errorf("csv import: row %d: %w", rowNum, err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func parseRecord(cols map[string]int, record []string) (*models.SetEntry, error) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	date, err := models.ParseDate(field(colDate))
	if err != nil {
		return nil, err
	}

	entry := models.NewSetEntry(date, field(colExercise))
	entry.Workout = field(colWorkout)

	if entry.SetNumber, err = optionalInt(colSetNumber, field(colSetNumber)); err != nil {
		return nil, err
	}
	if entry.Reps, err = optionalInt(colReps, field(colReps)); err != nil {
		return nil, err
	}
	if entry.DurationSeconds, err = optionalInt(colDurationSeconds, field(colDurationSeconds)); err != nil {
		return nil, err
	}
	if entry.WeightKg, err = optionalFloat(colWeightKg, field(colWeightKg)); err != nil {
		return nil, err
	}
	if entry.MachineLevel, err = optionalFloat(colMachineLevel, field(colMachineLevel)); err != nil {
		return nil, err
	}
	if entry.RPE, err = optionalFloat(colRPE, field(colRPE)); err != nil {
		return nil, err
	}
	if warmUp := field(colWarmUp); warmUp != "" {
		entry.WarmUp = &warmUp
	}
	if notes := field(colNotes); notes != "" {
		entry.Notes = &notes
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}
	return entry, nil
}

func optionalInt(name, s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("column %s: invalid integer %q", name, s)
	}
	return &n, nil
}

func optionalFloat(name, s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("column %s: invalid number %q", name, s)
	}
	return &f, nil
}
