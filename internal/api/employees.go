package api

import (
	"net/http"

	"github.com/emruiz81/agriassist/internal/farm"
	"github.com/emruiz81/agriassist/internal/model"
)

// EmployeesHandler handles employee CRUD endpoints.
type EmployeesHandler struct {
	Farm *farm.Farm
}

// List handles GET /api/employees.
func (h *EmployeesHandler) List(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Farm.Employees.Records())
}

// Create handles POST /api/employees.
func (h *EmployeesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var values model.Employee
	if err := decodeJSON(r, &values); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session := h.Farm.Employees.BeginCreate()
	employee, errs, err := h.Farm.Employees.Submit(r.Context(), session, values)
	if errs != nil {
		jsonValidationError(w, errs)
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save employee")
		return
	}

	jsonResponse(w, http.StatusCreated, employee)
}

// Update handles PUT /api/employees/{id}.
func (h *EmployeesHandler) Update(w http.ResponseWriter, r *http.Request) {
	existing, ok := h.Farm.Employees.Get(r.PathValue("id"))
	if !ok {
		jsonError(w, http.StatusNotFound, "employee not found")
		return
	}

	var values model.Employee
	if err := decodeJSON(r, &values); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session := h.Farm.Employees.BeginEdit(existing)
	employee, errs, err := h.Farm.Employees.Submit(r.Context(), session, values)
	if errs != nil {
		jsonValidationError(w, errs)
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save employee")
		return
	}

	jsonResponse(w, http.StatusOK, employee)
}

// Delete handles DELETE /api/employees/{id}. Deleting an unknown id is a
// no-op; the confirmation gate lives in the UI.
func (h *EmployeesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Farm.Employees.Remove(r.Context(), r.PathValue("id")); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete employee")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "employee deleted"})
}
