package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/emruiz81/agriassist/internal/farm"
	"github.com/emruiz81/agriassist/internal/model"
	webembed "github.com/emruiz81/agriassist/web"
)

// Templates holds parsed HTML templates.
type Templates struct {
	templates map[string]*template.Template
}

// FuncMap returns the template function map.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"statusName": func(status string) string {
			switch status {
			case model.EquipmentStatusGood:
				return "Good"
			case model.EquipmentStatusNeedsMaintenance:
				return "Needs maintenance"
			case model.EquipmentStatusOutOfService:
				return "Out of service"
			default:
				return status
			}
		},
		"typeName": func(docType string) string {
			switch docType {
			case model.DocumentTypeContract:
				return "Contract"
			case model.DocumentTypePayroll:
				return "Payroll"
			case model.DocumentTypeOther:
				return "Other"
			default:
				return docType
			}
		},
		"fileSize": func(size int64) string {
			switch {
			case size <= 0:
				return "—"
			case size < 1024:
				return fmt.Sprintf("%d B", size)
			case size < 1024*1024:
				return fmt.Sprintf("%.1f KB", float64(size)/1024)
			default:
				return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
			}
		},
		"timestamp": func(t time.Time) string {
			if t.IsZero() {
				return "—"
			}
			return t.Format("2006-01-02 15:04")
		},
	}
}

// LoadTemplates parses all page templates with the layout.
func LoadTemplates() (*Templates, error) {
	tfs := webembed.TemplatesFS()

	// Read layout.
	layoutBytes, err := fs.ReadFile(tfs, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("reading layout template: %w", err)
	}

	pages := []string{
		"dashboard.html",
		"employees.html",
		"equipment.html",
		"planting.html",
		"documents.html",
		"notifications.html",
	}

	ts := &Templates{templates: make(map[string]*template.Template)}

	for _, page := range pages {
		pageBytes, err := fs.ReadFile(tfs, page)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", page, err)
		}

		tmpl := template.New(page).Funcs(FuncMap())
		tmpl, err = tmpl.Parse(string(layoutBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing layout for %s: %w", page, err)
		}
		tmpl, err = tmpl.Parse(string(pageBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}

		ts.templates[page] = tmpl
	}

	return ts, nil
}

// Render renders a template with the given data.
func (ts *Templates) Render(w http.ResponseWriter, name string, data any) {
	tmpl, ok := ts.templates[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
	}
}

// PageData is the base data passed to all templates.
type PageData struct {
	Title  string
	Active string
}

// Server holds all dependencies for page handlers.
type Server struct {
	Farm      *farm.Farm
	Templates *Templates
}
