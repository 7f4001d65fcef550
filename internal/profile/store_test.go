// ABOUTME: Tests for the badger-backed profile and memory store.
// ABOUTME: Covers empty defaults, round trips, and memory ordering.
package profile

import (
	"testing"
	"time"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestGetProfileEmpty(t *testing.T) {
	store := setupTestStore(t)

	p, err := store.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if p.Name != nil || p.Goal != nil {
		t.Errorf("fresh store should yield an empty profile: %+v", p)
	}
}

func TestSaveProfileRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	name := "Sam"
	goal := "hypertrophy"
	age := 34
	if err := store.SaveProfile(&Profile{Name: &name, Goal: &goal, Age: &age}); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	p, err := store.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if p.Name == nil || *p.Name != "Sam" {
		t.Error("name did not survive the round trip")
	}
	if p.Age == nil || *p.Age != 34 {
		t.Error("age did not survive the round trip")
	}
	if p.UpdatedAt.IsZero() {
		t.Error("SaveProfile should stamp UpdatedAt")
	}
}

func TestSaveMemoryAssignsID(t *testing.T) {
	store := setupTestStore(t)

	id, err := store.SaveMemory(&MemoryRecord{
		Type:    MemoryUserFeedback,
		Content: map[string]any{"note": "knee felt off"},
		Tags:    []string{"squat"},
	})
	if err != nil {
		t.Fatalf("SaveMemory failed: %v", err)
	}
	if id == "" {
		t.Fatal("SaveMemory should return an ID")
	}

	records, err := store.ListMemories(0)
	if err != nil {
		t.Fatalf("ListMemories failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	rec := records[0]
	if rec.ID != id || rec.Type != MemoryUserFeedback {
		t.Errorf("unexpected record: %+v", rec)
	}
	if rec.Content["note"] != "knee felt off" {
		t.Error("content did not survive the round trip")
	}
	if rec.CreatedAt.IsZero() {
		t.Error("SaveMemory should stamp CreatedAt")
	}
}

func TestSaveMemoryRejectsUnknownType(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.SaveMemory(&MemoryRecord{Type: "grocery_list"})
	if err == nil {
		t.Fatal("expected error for unknown memory type")
	}
}

func TestListMemoriesNewestFirst(t *testing.T) {
	store := setupTestStore(t)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		_, err := store.SaveMemory(&MemoryRecord{
			Type:      MemoryReflection,
			Content:   map[string]any{"n": i},
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("SaveMemory failed: %v", err)
		}
	}

	records, err := store.ListMemories(0)
	if err != nil {
		t.Fatalf("ListMemories failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i].CreatedAt.After(records[i-1].CreatedAt) {
			t.Error("records not in newest-first order")
		}
	}

	limited, err := store.ListMemories(2)
	if err != nil {
		t.Fatalf("ListMemories failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("expected 2 records with limit, got %d", len(limited))
	}
}
