package api

import (
	"net/http"

	"github.com/emruiz81/agriassist/internal/farm"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(f *farm.Farm) http.Handler {
	mux := http.NewServeMux()

	employeesHandler := &EmployeesHandler{Farm: f}
	equipmentHandler := &EquipmentHandler{Farm: f}
	plantingHandler := &PlantingHandler{Farm: f}
	documentsHandler := &DocumentsHandler{Farm: f}
	remindersHandler := &RemindersHandler{}

	// Employees.
	mux.HandleFunc("GET /api/employees", employeesHandler.List)
	mux.HandleFunc("POST /api/employees", employeesHandler.Create)
	mux.HandleFunc("PUT /api/employees/{id}", employeesHandler.Update)
	mux.HandleFunc("DELETE /api/employees/{id}", employeesHandler.Delete)

	// Equipment.
	mux.HandleFunc("GET /api/equipment", equipmentHandler.List)
	mux.HandleFunc("POST /api/equipment", equipmentHandler.Create)
	mux.HandleFunc("PUT /api/equipment/{id}", equipmentHandler.Update)
	mux.HandleFunc("DELETE /api/equipment/{id}", equipmentHandler.Delete)

	// Planting records and photos.
	mux.HandleFunc("GET /api/planting", plantingHandler.List)
	mux.HandleFunc("POST /api/planting", plantingHandler.Create)
	mux.HandleFunc("PUT /api/planting/{id}", plantingHandler.Update)
	mux.HandleFunc("DELETE /api/planting/{id}", plantingHandler.Delete)
	mux.HandleFunc("PUT /api/planting/{id}/photo", plantingHandler.UploadPhoto)
	mux.HandleFunc("GET /api/planting/{id}/photo", plantingHandler.GetPhoto)

	// Documents and file downloads.
	mux.HandleFunc("GET /api/documents", documentsHandler.List)
	mux.HandleFunc("POST /api/documents", documentsHandler.Create)
	mux.HandleFunc("PUT /api/documents/{id}", documentsHandler.Update)
	mux.HandleFunc("DELETE /api/documents/{id}", documentsHandler.Delete)
	mux.HandleFunc("GET /api/documents/{id}/file", documentsHandler.Download)

	// Reminder drafting.
	mux.HandleFunc("POST /api/reminders", remindersHandler.Draft)

	return mux
}
