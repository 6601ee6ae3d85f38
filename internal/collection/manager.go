// Package collection implements the generic entity collection manager: an
// in-memory ordered collection of records of one entity kind, mirrored to a
// durable storage slot on every mutation, with all mutations routed through a
// validated form session.
package collection

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/emruiz81/agriassist/internal/storage"
	"github.com/emruiz81/agriassist/internal/validate"
)

// ErrSessionClosed is returned by Submit when the form session has already
// been submitted or cancelled.
var ErrSessionClosed = errors.New("form session is closed")

// Mode distinguishes create from edit submissions.
type Mode int

// Submission modes.
const (
	ModeCreate Mode = iota + 1
	ModeEdit
)

// Schema parameterizes a Manager for one entity kind. ID and WithID give the
// manager access to the record's identifier without reflection; Validate and
// Merge carry the entity's field rules and edit-merge semantics.
type Schema[T any] struct {
	// Key is the durable storage slot for this entity kind.
	Key string

	// ID extracts the record's identifier.
	ID func(record T) string

	// WithID returns a copy of the record with the identifier set.
	WithID func(record T, id string) T

	// Validate checks submitted values against the entity's field rules and
	// returns a field-keyed error map, or nil when valid.
	Validate func(values T, mode Mode) validate.Errors

	// Merge combines an existing record with submitted values on edit:
	// submitted fields overwrite, fields the form legitimately leaves empty
	// (such as carried-over file metadata) are preserved from existing.
	// A nil Merge means submitted values replace the record wholesale.
	Merge func(existing, submitted T) T
}

// Manager owns the collection of one entity kind. All operations are safe for
// concurrent use, with at most one writer mutating the collection and its
// durable mirror at a time.
type Manager[T any] struct {
	mu      sync.Mutex
	slot    *storage.Slot
	schema  Schema[T]
	records []T

	// newID generates record identifiers; overridable in tests.
	newID func() string
}

// NewManager creates a manager for the schema's entity kind, backed by the
// schema's storage slot. Call Load before using it.
func NewManager[T any](db *sql.DB, schema Schema[T]) *Manager[T] {
	return &Manager[T]{
		slot:   storage.NewSlot(db, schema.Key),
		schema: schema,
		newID:  uuid.NewString,
	}
}

// Load hydrates the collection from its durable slot. An absent slot yields
// an empty collection. Malformed stored data also yields an empty collection,
// with a warning, rather than failing startup.
func (m *Manager[T]) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, ok, err := m.slot.Read(ctx)
	if err != nil {
		return fmt.Errorf("loading collection: %w", err)
	}
	if !ok {
		m.records = nil
		return nil
	}

	var records []T
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		slog.Warn("discarding unreadable collection data", "key", m.slot.Key(), "error", err)
		m.records = nil
		return nil
	}
	m.records = records
	return nil
}

// Records returns a copy of the collection in insertion order.
func (m *Manager[T]) Records() []T {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]T, len(m.records))
	copy(out, m.records)
	return out
}

// Len returns the number of records in the collection.
func (m *Manager[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

// Get returns the record with the given id.
func (m *Manager[T]) Get(id string) (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, rec := range m.records {
		if m.schema.ID(rec) == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// BeginCreate opens a form session for a new record.
func (m *Manager[T]) BeginCreate() *FormSession {
	return &FormSession{state: FormCreating}
}

// BeginEdit opens a form session pre-bound to an existing record's id.
func (m *Manager[T]) BeginEdit(record T) *FormSession {
	return &FormSession{state: FormEditing, id: m.schema.ID(record)}
}

// Submit validates the submitted values and applies them. On validation
// failure it returns the field-keyed errors, performs no mutation and leaves
// the session open for resubmission. On success it appends a new record (with
// a freshly generated id) or merges into the existing one, persists the
// collection, closes the session and returns the resulting record. A persist
// failure is returned alongside the record so the caller can surface it; it
// is not retried.
func (m *Manager[T]) Submit(ctx context.Context, session *FormSession, values T) (T, validate.Errors, error) {
	var zero T
	if session == nil || !session.Open() {
		return zero, nil, ErrSessionClosed
	}

	mode := ModeCreate
	if session.state == FormEditing {
		mode = ModeEdit
	}
	if errs := m.schema.Validate(values, mode); errs != nil {
		return zero, errs, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var record T
	switch mode {
	case ModeCreate:
		record = m.schema.WithID(values, m.newID())
		m.records = append(m.records, record)
	case ModeEdit:
		idx := -1
		for i, rec := range m.records {
			if m.schema.ID(rec) == session.id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return zero, nil, fmt.Errorf("record %s not found", session.id)
		}
		if m.schema.Merge != nil {
			record = m.schema.Merge(m.records[idx], values)
		} else {
			record = values
		}
		record = m.schema.WithID(record, session.id)
		m.records[idx] = record
	}

	session.close()
	if err := m.persistLocked(ctx); err != nil {
		return record, nil, err
	}
	return record, nil, nil
}

// Remove deletes the record with the given id, preserving the order of the
// remaining records, then persists. A missing id is a no-op, so Remove is
// idempotent. The caller is expected to have gated this behind explicit user
// confirmation.
func (m *Manager[T]) Remove(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, rec := range m.records {
		if m.schema.ID(rec) == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			break
		}
	}
	return m.persistLocked(ctx)
}

// persistLocked serializes the collection to its slot. Records never carry
// binary payloads, so the serialization boundary needs no field stripping.
// Callers must hold m.mu.
func (m *Manager[T]) persistLocked(ctx context.Context) error {
	records := m.records
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("serializing collection: %w", err)
	}
	if err := m.slot.Write(ctx, string(data)); err != nil {
		return fmt.Errorf("persisting collection: %w", err)
	}
	return nil
}
