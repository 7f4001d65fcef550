// ABOUTME: Shared test helpers for storage tests.
// ABOUTME: Provides setupTestDB and a compact set-entry constructor.
package storage

import (
	"path/filepath"
	"testing"

	"github.com/harperreed/biome/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testEntry(t *testing.T, date, exercise string, weightKg float64, reps int) *models.SetEntry {
	t.Helper()
	d, err := models.ParseDate(date)
	if err != nil {
		t.Fatalf("bad test date %s: %v", date, err)
	}
	return models.NewSetEntry(d, exercise).WithWeight(weightKg).WithReps(reps)
}
