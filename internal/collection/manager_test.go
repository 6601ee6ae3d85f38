package collection

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/emruiz81/agriassist/internal/db"
	"github.com/emruiz81/agriassist/internal/storage"
	"github.com/emruiz81/agriassist/internal/validate"
)

// note is a minimal entity kind for exercising the manager.
type note struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

func noteSchema() Schema[note] {
	return Schema[note]{
		Key:    "test_notes",
		ID:     func(n note) string { return n.ID },
		WithID: func(n note, id string) note { n.ID = id; return n },
		Validate: func(n note, _ Mode) validate.Errors {
			v := validate.New()
			v.MinLen("title", n.Title, 2, "title must have at least 2 characters")
			return v.Errors()
		},
		Merge: func(existing, submitted note) note {
			if submitted.Body == "" {
				submitted.Body = existing.Body
			}
			return submitted
		},
	}
}

func newTestManager(t *testing.T) (*Manager[note], *sql.DB) {
	t.Helper()
	database := db.NewTestDB(t)
	m := NewManager(database, noteSchema())
	if err := m.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return m, database
}

func mustSubmitCreate(t *testing.T, m *Manager[note], values note) note {
	t.Helper()
	rec, errs, err := m.Submit(context.Background(), m.BeginCreate(), values)
	if errs != nil {
		t.Fatalf("unexpected validation errors: %v", errs)
	}
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	return rec
}

func TestSubmitCreateAppendsWithFreshID(t *testing.T) {
	m, _ := newTestManager(t)

	first := mustSubmitCreate(t, m, note{Title: "First"})
	second := mustSubmitCreate(t, m, note{Title: "Second"})

	if first.ID == "" || second.ID == "" {
		t.Fatal("expected generated ids")
	}
	if first.ID == second.ID {
		t.Errorf("expected unique ids, both are %s", first.ID)
	}

	records := m.Records()
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != first.ID || records[1].ID != second.ID {
		t.Error("expected insertion order to be preserved")
	}
}

func TestSubmitValidationFailureMutatesNothing(t *testing.T) {
	m, _ := newTestManager(t)

	session := m.BeginCreate()
	_, errs, err := m.Submit(context.Background(), session, note{Title: "x"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if errs == nil {
		t.Fatal("expected validation errors")
	}
	if errs["title"] == "" {
		t.Errorf("expected title error, got %v", errs)
	}
	if m.Len() != 0 {
		t.Errorf("expected no mutation, got %d records", m.Len())
	}

	// The session stays open for resubmission.
	if !session.Open() {
		t.Error("expected session to remain open after validation failure")
	}
	if _, errs, _ := m.Submit(context.Background(), session, note{Title: "Fixed"}); errs != nil {
		t.Fatalf("resubmission failed: %v", errs)
	}
	if m.Len() != 1 {
		t.Errorf("expected 1 record after resubmission, got %d", m.Len())
	}
}

func TestSubmitClosedSession(t *testing.T) {
	m, _ := newTestManager(t)

	session := m.BeginCreate()
	session.Cancel()

	if _, _, err := m.Submit(context.Background(), session, note{Title: "Late"}); err != ErrSessionClosed {
		t.Errorf("expected ErrSessionClosed, got %v", err)
	}
	if m.Len() != 0 {
		t.Errorf("cancelled session must not mutate, got %d records", m.Len())
	}
}

func TestSubmitEditMergesInPlace(t *testing.T) {
	m, _ := newTestManager(t)

	first := mustSubmitCreate(t, m, note{Title: "First", Body: "kept"})
	second := mustSubmitCreate(t, m, note{Title: "Second"})

	// Edit the first record without resupplying the body.
	session := m.BeginEdit(first)
	updated, errs, err := m.Submit(context.Background(), session, note{Title: "Renamed"})
	if errs != nil || err != nil {
		t.Fatalf("Submit edit: errs=%v err=%v", errs, err)
	}

	if updated.ID != first.ID {
		t.Errorf("id must be immutable: %s != %s", updated.ID, first.ID)
	}
	if updated.Title != "Renamed" {
		t.Errorf("expected overwritten title, got %q", updated.Title)
	}
	if updated.Body != "kept" {
		t.Errorf("expected carried-over body, got %q", updated.Body)
	}

	records := m.Records()
	if len(records) != 2 {
		t.Fatalf("edit must not change length, got %d", len(records))
	}
	if records[0].ID != first.ID || records[1].ID != second.ID {
		t.Error("edit must not reorder records")
	}
}

func TestSubmitEditMissingRecord(t *testing.T) {
	m, _ := newTestManager(t)

	ghost := note{ID: "gone", Title: "Ghost"}
	if _, _, err := m.Submit(context.Background(), m.BeginEdit(ghost), note{Title: "New"}); err == nil {
		t.Error("expected error editing a missing record")
	}
}

func TestRemoveIsDurableAndIdempotent(t *testing.T) {
	m, database := newTestManager(t)
	ctx := context.Background()

	first := mustSubmitCreate(t, m, note{Title: "First"})
	second := mustSubmitCreate(t, m, note{Title: "Second"})
	third := mustSubmitCreate(t, m, note{Title: "Third"})

	if err := m.Remove(ctx, second.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	// Removing again is a no-op.
	if err := m.Remove(ctx, second.ID); err != nil {
		t.Fatalf("second Remove: %v", err)
	}

	records := m.Records()
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != first.ID || records[1].ID != third.ID {
		t.Error("remove must preserve the order of remaining records")
	}

	// A fresh manager hydrated from the same slot must not see the record.
	reloaded := NewManager(database, noteSchema())
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := reloaded.Get(second.ID); ok {
		t.Error("removed record resurfaced after reload")
	}
	if reloaded.Len() != 2 {
		t.Errorf("expected 2 records after reload, got %d", reloaded.Len())
	}
}

func TestRemoveMissingIDIsNoOp(t *testing.T) {
	m, _ := newTestManager(t)

	mustSubmitCreate(t, m, note{Title: "Only"})
	if err := m.Remove(context.Background(), "P9"); err != nil {
		t.Fatalf("Remove missing: %v", err)
	}
	if m.Len() != 1 {
		t.Errorf("expected collection unchanged, got %d records", m.Len())
	}
}

func TestLoadRoundTrip(t *testing.T) {
	m, database := newTestManager(t)
	ctx := context.Background()

	created := mustSubmitCreate(t, m, note{Title: "Round", Body: "trip"})

	reloaded := NewManager(database, noteSchema())
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}

	got, ok := reloaded.Get(created.ID)
	if !ok {
		t.Fatal("expected record after reload")
	}
	if got != created {
		t.Errorf("round trip mismatch: %+v != %+v", got, created)
	}
}

func TestLoadAbsentSlot(t *testing.T) {
	m, _ := newTestManager(t)
	if m.Len() != 0 {
		t.Errorf("expected empty collection, got %d records", m.Len())
	}
}

func TestLoadMalformedSlot(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if err := storage.NewSlot(database, "test_notes").Write(ctx, "{not json"); err != nil {
		t.Fatalf("Write: %v", err)
	}

	m := NewManager(database, noteSchema())
	if err := m.Load(ctx); err != nil {
		t.Fatalf("Load must not fail on malformed data: %v", err)
	}
	if m.Len() != 0 {
		t.Errorf("expected empty collection, got %d records", m.Len())
	}
}

func TestGeneratedIDsNeverCollide(t *testing.T) {
	m, _ := newTestManager(t)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		rec := mustSubmitCreate(t, m, note{Title: fmt.Sprintf("Note %d", i)})
		if seen[rec.ID] {
			t.Fatalf("duplicate id %s", rec.ID)
		}
		seen[rec.ID] = true
	}
}
