// Package storage implements the durable mirror: one string-keyed slot per
// entity kind, each holding the serialized array of that kind's records.
package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Slot keys, one per entity kind. Fixed and stable; changing one orphans the
// previously stored records.
const (
	KeyEmployees       = "agriassist_employees"
	KeyEquipment       = "agriassist_equipment"
	KeyPlantingRecords = "agriassist_planting_records"
	KeyDocuments       = "agriassist_documents"
)

// Slot is a single named slot in the collections table. Each collection
// manager owns exactly one slot; no two slots share state.
type Slot struct {
	db  *sql.DB
	key string
}

// NewSlot returns a slot bound to the given key.
func NewSlot(db *sql.DB, key string) *Slot {
	return &Slot{db: db, key: key}
}

// Key returns the slot's storage key.
func (s *Slot) Key() string { return s.key }

// Read returns the slot's current value. The second return value is false
// when the slot has never been written.
func (s *Slot) Read(ctx context.Context) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM collections WHERE key = ?`, s.key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading slot %s: %w", s.key, err)
	}
	return value, true, nil
}

// Write replaces the slot's value.
func (s *Slot) Write(ctx context.Context, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO collections (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		s.key, value,
	)
	if err != nil {
		return fmt.Errorf("writing slot %s: %w", s.key, err)
	}
	return nil
}
