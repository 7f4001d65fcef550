// ABOUTME: Set-entry operations: append, atomic bulk replace, ordered reads.
// ABOUTME: row_id carries insertion order; bulk replace is all-or-nothing.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/biome/internal/models"
)

const entryColumns = "id, row_id, date, workout, exercise, set_number, reps, duration_seconds, weight_kg, machine_level, warm_up, rpe, notes"

// Append stores a single set entry in the primary partition, regardless of
// the active partition. The entry gets row_id = max existing + 1, or 1 on
// an empty partition.
func (d *DB) Append(e *models.SetEntry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("append entry: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var maxRow int64
	row := tx.QueryRow("SELECT COALESCE(MAX(row_id), 0) FROM training_log")
	if err := row.Scan(&maxRow); err != nil {
		return fmt.Errorf("append entry: next row id: %w", err)
	}
	e.RowID = maxRow + 1

	if err := insertEntry(tx, PartitionPrimary, e); err != nil {
		return fmt.Errorf("append entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("append entry: %w", err)
	}
	return nil
}

// ReplaceAll atomically discards every row in the partition and loads the
// given entries with fresh row_id values 1..N in input order. Any failure
// rolls back, leaving the partition exactly as it was.
func (d *DB) ReplaceAll(p Partition, entries []*models.SetEntry) error {
	// Validate everything before touching the store.
	for i, e := range entries {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("replace %s: entry %d: %w", p, i+1, err)
		}
	}

	// Exclusive section: no reader may observe the partition mid-reload.
	d.mu.Lock()
	defer d.mu.Unlock()

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("replace %s: %w", p, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM " + p.table()); err != nil {
		return fmt.Errorf("replace %s: clear: %w", p, err)
	}

	for i, e := range entries {
		if e.ID == uuid.Nil {
			e.ID = uuid.New()
		}
		e.RowID = int64(i + 1)
		if err := insertEntry(tx, p, e); err != nil {
			return fmt.Errorf("replace %s: entry %d: %w", p, i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace %s: %w", p, err)
	}
	return nil
}

// Entries returns all set entries of a partition ordered by insertion.
func (d *DB) Entries(p Partition) ([]*models.SetEntry, error) {
	query := "SELECT " + entryColumns + " FROM " + p.table() + " ORDER BY row_id"
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// EntriesSince returns entries dated on or after the given date, ordered by
// insertion.
func (d *DB) EntriesSince(p Partition, since models.Date) ([]*models.SetEntry, error) {
	query := "SELECT " + entryColumns + " FROM " + p.table() + " WHERE date >= ? ORDER BY row_id"
	rows, err := d.db.Query(query, since.String())
	if err != nil {
		return nil, fmt.Errorf("list entries since %s: %w", since, err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// LatestDate returns the most recent entry date in the partition. An empty
// partition yields today's wall-clock date so callers can still anchor a
// week window.
func (d *DB) LatestDate(p Partition) (models.Date, error) {
	var latest sql.NullString
	row := d.db.QueryRow("SELECT MAX(date) FROM " + p.table())
	if err := row.Scan(&latest); err != nil {
		return models.Date{}, fmt.Errorf("latest date: %w", err)
	}
	if !latest.Valid {
		return models.DateOf(time.Now().UTC()), nil
	}
	return models.ParseDate(latest.String)
}

// Exercises returns the sorted distinct exercise names in the partition.
func (d *DB) Exercises(p Partition) ([]string, error) {
	query := "SELECT DISTINCT exercise FROM " + p.table() + " WHERE exercise != '' ORDER BY exercise"
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	var exercises []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, name)
	}
	return exercises, rows.Err()
}

// Count returns the number of set entries in the partition.
func (d *DB) Count(p Partition) (int, error) {
	var n int
	row := d.db.QueryRow("SELECT COUNT(*) FROM " + p.table())
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return n, nil
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func insertEntry(ex execer, p Partition, e *models.SetEntry) error {
	query := "INSERT INTO " + p.table() + " (" + entryColumns + ") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"
	_, err := ex.Exec(query,
		e.ID.String(),
		e.RowID,
		e.Date.String(),
		e.Workout,
		e.Exercise,
		e.SetNumber,
		e.Reps,
		e.DurationSeconds,
		e.WeightKg,
		e.MachineLevel,
		e.WarmUp,
		e.RPE,
		e.Notes,
	)
	return err
}

func scanEntries(rows *sql.Rows) ([]*models.SetEntry, error) {
	var entries []*models.SetEntry
	for rows.Next() {
		var e models.SetEntry
		var idStr, dateStr string
		var workout, warmUp, notes sql.NullString
		var setNumber, reps, duration sql.NullInt64
		var weight, level, rpe sql.NullFloat64

		err := rows.Scan(&idStr, &e.RowID, &dateStr, &workout, &e.Exercise,
			&setNumber, &reps, &duration, &weight, &level, &warmUp, &rpe, &notes)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}

		e.ID, _ = uuid.Parse(idStr)
		e.Date, err = models.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		if workout.Valid {
			e.Workout = workout.String
		}
		if setNumber.Valid {
			n := int(setNumber.Int64)
			e.SetNumber = &n
		}
		if reps.Valid {
			n := int(reps.Int64)
			e.Reps = &n
		}
		if duration.Valid {
			n := int(duration.Int64)
			e.DurationSeconds = &n
		}
		if weight.Valid {
			e.WeightKg = &weight.Float64
		}
		if level.Valid {
			e.MachineLevel = &level.Float64
		}
		if warmUp.Valid {
			e.WarmUp = &warmUp.String
		}
		if rpe.Valid {
			e.RPE = &rpe.Float64
		}
		if notes.Valid {
			e.Notes = &notes.String
		}

		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
