package farm

import (
	"time"

	"github.com/emruiz81/agriassist/internal/collection"
	"github.com/emruiz81/agriassist/internal/model"
	"github.com/emruiz81/agriassist/internal/storage"
	"github.com/emruiz81/agriassist/internal/validate"
)

// earliestPurchase is the lower bound for equipment purchase dates.
var earliestPurchase = model.NewDate(1900, time.January, 1)

// EquipmentSchema describes the equipment collection.
func EquipmentSchema() collection.Schema[model.Equipment] {
	return collection.Schema[model.Equipment]{
		Key:    storage.KeyEquipment,
		ID:     func(e model.Equipment) string { return e.ID },
		WithID: func(e model.Equipment, id string) model.Equipment { e.ID = id; return e },
		Validate: func(e model.Equipment, _ collection.Mode) validate.Errors {
			v := validate.New()
			v.MinLen("name", e.Name, 2, "name must have at least 2 characters")
			v.Require("reference", e.Reference, "reference is required")
			v.Enum("status", e.Status, "invalid status", model.EquipmentStatuses...)
			if e.PurchaseDate.IsZero() {
				v.Add("purchaseDate", "purchase date is required")
			} else if e.PurchaseDate.After(model.Today()) {
				v.Add("purchaseDate", "purchase date cannot be in the future")
			} else if e.PurchaseDate.Before(earliestPurchase) {
				v.Add("purchaseDate", "purchase date cannot be before 1900-01-01")
			}
			return v.Errors()
		},
	}
}
