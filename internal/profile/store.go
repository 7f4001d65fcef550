// ABOUTME: Badger-backed store for the coach profile and memory records.
// ABOUTME: Single-user key-value CRUD; values are JSON-encoded.
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"
)

const (
	profileKey   = "profile"
	memoryPrefix = "memory:"
)

// Memory record types the curator agents are allowed to write.
const (
	MemoryPlanSnapshot    = "plan_snapshot"
	MemoryFindingSnapshot = "finding_snapshot"
	MemoryUserFeedback    = "user_feedback"
	MemoryReflection      = "reflection"
)

var memoryTypes = []string{MemoryPlanSnapshot, MemoryFindingSnapshot, MemoryUserFeedback, MemoryReflection}

// Profile holds the user's permanent coaching context: goals, experience,
// and the bits of biography a plan generator needs.
type Profile struct {
	Name            *string   `json:"name,omitempty"`
	Bio             *string   `json:"bio,omitempty"`
	Sex             *string   `json:"sex,omitempty"`
	DateOfBirth     *string   `json:"date_of_birth,omitempty"`
	Age             *int      `json:"age,omitempty"`
	Goal            *string   `json:"goal,omitempty"`
	ExperienceLevel *string   `json:"experience_level,omitempty"`
	WagePerHour     *float64  `json:"wage_per_hour,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// MemoryRecord is one long-term coaching note: a plan snapshot, a finding
// snapshot, user feedback, or a free reflection.
type MemoryRecord struct {
	ID        string         `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	Type      string         `json:"type"`
	Content   map[string]any `json:"content"`
	Tags      []string       `json:"tags,omitempty"`
}

// Store wraps a badger database holding the profile and memory records.
type Store struct {
	db *badger.DB
}

// Open opens or creates the profile store in the given directory.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open profile store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// GetProfile returns the stored profile, or an empty one if none exists.
func (s *Store) GetProfile() (*Profile, error) {
	var p Profile
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(profileKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &p)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return &Profile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// SaveProfile stores the profile, stamping UpdatedAt.
func (s *Store) SaveProfile(p *Profile) error {
	p.UpdatedAt = time.Now()
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(profileKey), data)
	})
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// SaveMemory persists a memory record, assigning an ID and timestamp if
// absent, and returns the record's ID.
func (s *Store) SaveMemory(rec *MemoryRecord) (string, error) {
	if !validMemoryType(rec.Type) {
		return "", fmt.Errorf("save memory: unknown type %q (want one of %s)",
			rec.Type, strings.Join(memoryTypes, ", "))
	}
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("save memory: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(memoryPrefix+rec.ID), data)
	})
	if err != nil {
		return "", fmt.Errorf("save memory: %w", err)
	}
	return rec.ID, nil
}

// ListMemories returns memory records newest-first, up to limit (0 = all).
func (s *Store) ListMemories(limit int) ([]MemoryRecord, error) {
	var records []MemoryRecord
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(memoryPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var rec MemoryRecord
				if err := json.Unmarshal(val, &rec); err != nil {
					return err
				}
				records = append(records, rec)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list memories: %w", err)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func validMemoryType(t string) bool {
	for _, valid := range memoryTypes {
		if t == valid {
			return true
		}
	}
	return false
}
