package farm

import (
	"github.com/emruiz81/agriassist/internal/collection"
	"github.com/emruiz81/agriassist/internal/model"
	"github.com/emruiz81/agriassist/internal/storage"
	"github.com/emruiz81/agriassist/internal/validate"
)

// EmployeeSchema describes the employee collection.
func EmployeeSchema() collection.Schema[model.Employee] {
	return collection.Schema[model.Employee]{
		Key:    storage.KeyEmployees,
		ID:     func(e model.Employee) string { return e.ID },
		WithID: func(e model.Employee, id string) model.Employee { e.ID = id; return e },
		Validate: func(e model.Employee, _ collection.Mode) validate.Errors {
			v := validate.New()
			v.MinLen("name", e.Name, 2, "name must have at least 2 characters")
			v.MinLen("card", e.Card, 2, "ID number must have at least 2 characters")
			v.MinLen("role", e.Role, 2, "role must have at least 2 characters")
			v.MinLen("contact", e.Contact, 5, "contact must have at least 5 characters")
			return v.Errors()
		},
	}
}
