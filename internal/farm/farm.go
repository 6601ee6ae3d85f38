// Package farm wires the generic collection manager to the four entity kinds
// of the application and holds the session-resident attachment caches.
package farm

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/emruiz81/agriassist/internal/collection"
	"github.com/emruiz81/agriassist/internal/model"
)

// Farm aggregates the four entity collections and the attachment caches for
// document files and planting photos.
type Farm struct {
	Employees *collection.Manager[model.Employee]
	Equipment *collection.Manager[model.Equipment]
	Planting  *collection.Manager[model.PlantingRecord]
	Documents *collection.Manager[model.DocumentFile]

	Photos *AttachmentCache
	Files  *AttachmentCache
}

// Open constructs all four managers against the given database and hydrates
// them from their durable slots.
func Open(ctx context.Context, db *sql.DB) (*Farm, error) {
	f := &Farm{
		Employees: collection.NewManager(db, EmployeeSchema()),
		Equipment: collection.NewManager(db, EquipmentSchema()),
		Planting:  collection.NewManager(db, PlantingSchema()),
		Documents: collection.NewManager(db, DocumentSchema()),
		Photos:    NewAttachmentCache(),
		Files:     NewAttachmentCache(),
	}

	if err := f.Employees.Load(ctx); err != nil {
		return nil, fmt.Errorf("loading employees: %w", err)
	}
	if err := f.Equipment.Load(ctx); err != nil {
		return nil, fmt.Errorf("loading equipment: %w", err)
	}
	if err := f.Planting.Load(ctx); err != nil {
		return nil, fmt.Errorf("loading planting records: %w", err)
	}
	if err := f.Documents.Load(ctx); err != nil {
		return nil, fmt.Errorf("loading documents: %w", err)
	}

	return f, nil
}
