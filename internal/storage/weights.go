// ABOUTME: Body-weight history operations.
// ABOUTME: Upsert by date key, last write wins; ordered history reads.
package storage

import (
	"fmt"

	"github.com/harperreed/biome/internal/models"
)

// UpsertWeight records a body-weight measurement for a date, overwriting
// any existing entry for that date.
func (d *DB) UpsertWeight(date models.Date, weightKg float64) error {
	if date.IsZero() {
		return fmt.Errorf("weight entry: date is required")
	}
	query := `
		INSERT INTO weight_history (date, weight_kg)
		VALUES (?, ?)
		ON CONFLICT (date) DO UPDATE SET weight_kg = excluded.weight_kg
	`
	if _, err := d.db.Exec(query, date.String(), weightKg); err != nil {
		return fmt.Errorf("upsert weight: %w", err)
	}
	return nil
}

// WeightHistory returns all body-weight entries ordered by date ascending.
func (d *DB) WeightHistory() ([]models.WeightEntry, error) {
	rows, err := d.db.Query("SELECT date, weight_kg FROM weight_history ORDER BY date ASC")
	if err != nil {
		return nil, fmt.Errorf("weight history: %w", err)
	}
	defer rows.Close()

	var entries []models.WeightEntry
	for rows.Next() {
		var dateStr string
		var e models.WeightEntry
		if err := rows.Scan(&dateStr, &e.WeightKg); err != nil {
			return nil, fmt.Errorf("scan weight entry: %w", err)
		}
		e.Date, err = models.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("scan weight entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
