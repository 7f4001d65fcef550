// ABOUTME: Tests for body weight storage.
// ABOUTME: Covers date-keyed upsert and ascending history order.
package storage

import (
	"testing"

	"github.com/harperreed/biome/internal/models"
)

func TestUpsertWeightOverwrites(t *testing.T) {
	db := setupTestDB(t)
	date, _ := models.ParseDate("2026-08-17")

	if err := db.UpsertWeight(date, 82.5); err != nil {
		t.Fatalf("UpsertWeight failed: %v", err)
	}
	if err := db.UpsertWeight(date, 82.1); err != nil {
		t.Fatalf("UpsertWeight failed: %v", err)
	}

	history, err := db.WeightHistory()
	if err != nil {
		t.Fatalf("WeightHistory failed: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(history))
	}
	if history[0].WeightKg != 82.1 {
		t.Errorf("weight = %.1f, want 82.1 (second write wins)", history[0].WeightKg)
	}
}

func TestWeightHistoryOrder(t *testing.T) {
	db := setupTestDB(t)

	for _, day := range []string{"2026-08-18", "2026-08-10", "2026-08-14"} {
		date, _ := models.ParseDate(day)
		if err := db.UpsertWeight(date, 82); err != nil {
			t.Fatalf("UpsertWeight failed: %v", err)
		}
	}

	history, err := db.WeightHistory()
	if err != nil {
		t.Fatalf("WeightHistory failed: %v", err)
	}
	want := []string{"2026-08-10", "2026-08-14", "2026-08-18"}
	for i, w := range history {
		if w.Date.String() != want[i] {
			t.Errorf("history[%d] = %s, want %s", i, w.Date, want[i])
		}
	}
}
