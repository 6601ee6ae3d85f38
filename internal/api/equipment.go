package api

import (
	"net/http"

	"github.com/emruiz81/agriassist/internal/farm"
	"github.com/emruiz81/agriassist/internal/model"
)

// EquipmentHandler handles equipment CRUD endpoints.
type EquipmentHandler struct {
	Farm *farm.Farm
}

// List handles GET /api/equipment.
func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Farm.Equipment.Records())
}

// Create handles POST /api/equipment.
func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var values model.Equipment
	if err := decodeJSON(r, &values); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session := h.Farm.Equipment.BeginCreate()
	equipment, errs, err := h.Farm.Equipment.Submit(r.Context(), session, values)
	if errs != nil {
		jsonValidationError(w, errs)
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save equipment")
		return
	}

	jsonResponse(w, http.StatusCreated, equipment)
}

// Update handles PUT /api/equipment/{id}.
func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	existing, ok := h.Farm.Equipment.Get(r.PathValue("id"))
	if !ok {
		jsonError(w, http.StatusNotFound, "equipment not found")
		return
	}

	var values model.Equipment
	if err := decodeJSON(r, &values); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session := h.Farm.Equipment.BeginEdit(existing)
	equipment, errs, err := h.Farm.Equipment.Submit(r.Context(), session, values)
	if errs != nil {
		jsonValidationError(w, errs)
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save equipment")
		return
	}

	jsonResponse(w, http.StatusOK, equipment)
}

// Delete handles DELETE /api/equipment/{id}.
func (h *EquipmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Farm.Equipment.Remove(r.Context(), r.PathValue("id")); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete equipment")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "equipment deleted"})
}
