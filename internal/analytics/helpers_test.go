// ABOUTME: Shared test helpers for analytics tests.
// ABOUTME: Provides an engine over a temp store with a frozen clock.
package analytics

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/harperreed/biome/internal/models"
	"github.com/harperreed/biome/internal/storage"
)

// testToday is the frozen "now" for every engine test: Thursday 2026-08-20.
// The containing week runs Monday 2026-08-17 through Sunday 2026-08-23.
var testToday = time.Date(2026, time.August, 20, 12, 0, 0, 0, time.UTC)

func setupEngine(t *testing.T, entries ...*models.SetEntry) (*Engine, *storage.DB) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if len(entries) > 0 {
		if err := db.ReplaceAll(storage.PartitionPrimary, entries); err != nil {
			t.Fatalf("failed to seed entries: %v", err)
		}
	}

	engine := New(db).WithClock(func() time.Time { return testToday })
	return engine, db
}

func entryOn(t *testing.T, date, exercise string) *models.SetEntry {
	t.Helper()
	d, err := models.ParseDate(date)
	if err != nil {
		t.Fatalf("bad test date %s: %v", date, err)
	}
	return models.NewSetEntry(d, exercise)
}
