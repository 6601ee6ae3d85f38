package web

import (
	"net/http"

	"github.com/emruiz81/agriassist/internal/model"
)

// DashboardPage handles GET /.
func (s *Server) DashboardPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "dashboard.html", &struct {
		PageData
		EmployeeCount  int
		EquipmentCount int
		PlantingCount  int
		DocumentCount  int
	}{
		PageData:       PageData{Title: "Dashboard", Active: "dashboard"},
		EmployeeCount:  s.Farm.Employees.Len(),
		EquipmentCount: s.Farm.Equipment.Len(),
		PlantingCount:  s.Farm.Planting.Len(),
		DocumentCount:  s.Farm.Documents.Len(),
	})
}

// EmployeesPage handles GET /employees.
func (s *Server) EmployeesPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "employees.html", &struct {
		PageData
		Employees []model.Employee
	}{
		PageData:  PageData{Title: "Employees", Active: "employees"},
		Employees: s.Farm.Employees.Records(),
	})
}

// EquipmentPage handles GET /equipment.
func (s *Server) EquipmentPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "equipment.html", &struct {
		PageData
		Equipment []model.Equipment
	}{
		PageData:  PageData{Title: "Equipment", Active: "equipment"},
		Equipment: s.Farm.Equipment.Records(),
	})
}

// PlantingPage handles GET /planting.
func (s *Server) PlantingPage(w http.ResponseWriter, r *http.Request) {
	records := s.Farm.Planting.Records()

	// Flag which photos are still resident so the view buttons can be
	// disabled for records whose photo content was dropped by a restart.
	photoAvailable := make(map[string]bool, len(records))
	for _, rec := range records {
		_, ok := s.Farm.Photos.Get(rec.ID)
		photoAvailable[rec.ID] = ok
	}

	s.Templates.Render(w, "planting.html", &struct {
		PageData
		Records        []model.PlantingRecord
		PhotoAvailable map[string]bool
	}{
		PageData:       PageData{Title: "Planting", Active: "planting"},
		Records:        records,
		PhotoAvailable: photoAvailable,
	})
}

// DocumentsPage handles GET /documents.
func (s *Server) DocumentsPage(w http.ResponseWriter, r *http.Request) {
	documents := s.Farm.Documents.Records()

	fileAvailable := make(map[string]bool, len(documents))
	for _, doc := range documents {
		_, ok := s.Farm.Files.Get(doc.ID)
		fileAvailable[doc.ID] = ok
	}

	s.Templates.Render(w, "documents.html", &struct {
		PageData
		Documents     []model.DocumentFile
		FileAvailable map[string]bool
	}{
		PageData:      PageData{Title: "Documents", Active: "documents"},
		Documents:     documents,
		FileAvailable: fileAvailable,
	})
}

// NotificationsPage handles GET /notifications.
func (s *Server) NotificationsPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "notifications.html", &struct {
		PageData
	}{
		PageData: PageData{Title: "Notifications", Active: "notifications"},
	})
}
