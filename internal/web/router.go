package web

import (
	"fmt"
	"net/http"

	"github.com/emruiz81/agriassist/internal/farm"
	webembed "github.com/emruiz81/agriassist/web"
)

// NewRouter creates the web UI router with all pages registered.
func NewRouter(f *farm.Farm) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}

	s := &Server{Farm: f, Templates: templates}

	mux := http.NewServeMux()
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(webembed.StaticFS())))
	mux.HandleFunc("GET /{$}", s.DashboardPage)
	mux.HandleFunc("GET /employees", s.EmployeesPage)
	mux.HandleFunc("GET /equipment", s.EquipmentPage)
	mux.HandleFunc("GET /planting", s.PlantingPage)
	mux.HandleFunc("GET /documents", s.DocumentsPage)
	mux.HandleFunc("GET /notifications", s.NotificationsPage)

	return mux, nil
}
