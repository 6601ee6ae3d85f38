package farm

import (
	"github.com/emruiz81/agriassist/internal/collection"
	"github.com/emruiz81/agriassist/internal/model"
	"github.com/emruiz81/agriassist/internal/storage"
	"github.com/emruiz81/agriassist/internal/validate"
)

// PlantingSchema describes the planting record collection. Photos are managed
// as a subresource, so an edit submission without a photo file name keeps the
// existing one.
func PlantingSchema() collection.Schema[model.PlantingRecord] {
	return collection.Schema[model.PlantingRecord]{
		Key:    storage.KeyPlantingRecords,
		ID:     func(p model.PlantingRecord) string { return p.ID },
		WithID: func(p model.PlantingRecord, id string) model.PlantingRecord { p.ID = id; return p },
		Validate: func(p model.PlantingRecord, _ collection.Mode) validate.Errors {
			v := validate.New()
			v.MinLen("cropName", p.CropName, 2, "crop name must have at least 2 characters")
			if p.PlantingDate.IsZero() {
				v.Add("plantingDate", "planting date is required")
			} else if p.PlantingDate.After(model.Today()) {
				v.Add("plantingDate", "planting date cannot be in the future")
			}
			v.Require("quantity", p.Quantity, "quantity is required")
			v.MinLen("location", p.Location, 2, "location must have at least 2 characters")
			return v.Errors()
		},
		Merge: func(existing, submitted model.PlantingRecord) model.PlantingRecord {
			if submitted.PhotoFileName == "" {
				submitted.PhotoFileName = existing.PhotoFileName
			}
			return submitted
		},
	}
}
