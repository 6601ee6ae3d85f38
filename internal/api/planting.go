package api

import (
	"net/http"

	"github.com/emruiz81/agriassist/internal/farm"
	"github.com/emruiz81/agriassist/internal/imaging"
	"github.com/emruiz81/agriassist/internal/model"
)

// PlantingHandler handles planting record CRUD and photo endpoints.
type PlantingHandler struct {
	Farm *farm.Farm
}

// List handles GET /api/planting.
func (h *PlantingHandler) List(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Farm.Planting.Records())
}

// Create handles POST /api/planting.
func (h *PlantingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var values model.PlantingRecord
	if err := decodeJSON(r, &values); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session := h.Farm.Planting.BeginCreate()
	record, errs, err := h.Farm.Planting.Submit(r.Context(), session, values)
	if errs != nil {
		jsonValidationError(w, errs)
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save planting record")
		return
	}

	jsonResponse(w, http.StatusCreated, record)
}

// Update handles PUT /api/planting/{id}.
func (h *PlantingHandler) Update(w http.ResponseWriter, r *http.Request) {
	existing, ok := h.Farm.Planting.Get(r.PathValue("id"))
	if !ok {
		jsonError(w, http.StatusNotFound, "planting record not found")
		return
	}

	var values model.PlantingRecord
	if err := decodeJSON(r, &values); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session := h.Farm.Planting.BeginEdit(existing)
	record, errs, err := h.Farm.Planting.Submit(r.Context(), session, values)
	if errs != nil {
		jsonValidationError(w, errs)
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save planting record")
		return
	}

	jsonResponse(w, http.StatusOK, record)
}

// Delete handles DELETE /api/planting/{id}.
func (h *PlantingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.Farm.Planting.Remove(r.Context(), id); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete planting record")
		return
	}
	h.Farm.Photos.Delete(id)
	jsonResponse(w, http.StatusOK, map[string]string{"message": "planting record deleted"})
}

// UploadPhoto handles PUT /api/planting/{id}/photo. The processed photo is
// cached for the session and the record keeps only the file name.
func (h *PlantingHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	existing, ok := h.Farm.Planting.Get(id)
	if !ok {
		jsonError(w, http.StatusNotFound, "planting record not found")
		return
	}

	// Limit to 10 MB before processing; photos are downscaled afterwards.
	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		jsonError(w, http.StatusBadRequest, "photo too large or invalid multipart form")
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "photo file required")
		return
	}
	defer file.Close()

	photo, err := imaging.ProcessPhoto(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Route the file-name update through the regular form path so the record
	// stays schema-valid.
	values := existing
	values.PhotoFileName = header.Filename
	session := h.Farm.Planting.BeginEdit(existing)
	record, errs, err := h.Farm.Planting.Submit(r.Context(), session, values)
	if errs != nil {
		jsonValidationError(w, errs)
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save planting record")
		return
	}

	h.Farm.Photos.Put(id, farm.Attachment{
		Data:     photo.Data,
		MIME:     photo.MIME,
		FileName: header.Filename,
	})

	jsonResponse(w, http.StatusOK, record)
}

// GetPhoto handles GET /api/planting/{id}/photo. Photos are session-resident
// only, so a record reloaded from storage has no photo content to serve.
func (h *PlantingHandler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := h.Farm.Planting.Get(id); !ok {
		jsonError(w, http.StatusNotFound, "planting record not found")
		return
	}

	photo, ok := h.Farm.Photos.Get(id)
	if !ok {
		jsonError(w, http.StatusNotFound, "photo not available in this session")
		return
	}

	w.Header().Set("Content-Type", photo.MIME)
	w.Write(photo.Data)
}
