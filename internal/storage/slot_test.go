package storage

import (
	"context"
	"testing"

	"github.com/emruiz81/agriassist/internal/db"
)

func TestSlotReadAbsent(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	slot := NewSlot(database, KeyEmployees)
	_, ok, err := slot.Read(ctx)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if ok {
		t.Error("expected absent slot")
	}
}

func TestSlotWriteAndRead(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	slot := NewSlot(database, KeyEquipment)
	if err := slot.Write(ctx, `[{"id":"a"}]`); err != nil {
		t.Fatalf("Write: %v", err)
	}

	value, ok, err := slot.Read(ctx)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !ok {
		t.Fatal("expected slot to exist")
	}
	if value != `[{"id":"a"}]` {
		t.Errorf("unexpected value: %s", value)
	}
}

func TestSlotOverwrite(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	slot := NewSlot(database, KeyDocuments)
	slot.Write(ctx, "first")
	if err := slot.Write(ctx, "second"); err != nil {
		t.Fatalf("second Write: %v", err)
	}

	value, _, _ := slot.Read(ctx)
	if value != "second" {
		t.Errorf("expected overwritten value, got %s", value)
	}
}

func TestSlotsAreIndependent(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	NewSlot(database, KeyEmployees).Write(ctx, "employees")
	NewSlot(database, KeyPlantingRecords).Write(ctx, "planting")

	value, ok, _ := NewSlot(database, KeyEmployees).Read(ctx)
	if !ok || value != "employees" {
		t.Errorf("employee slot affected by other writes: %q", value)
	}
}
