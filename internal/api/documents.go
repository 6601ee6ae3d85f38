package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/emruiz81/agriassist/internal/collection"
	"github.com/emruiz81/agriassist/internal/farm"
	"github.com/emruiz81/agriassist/internal/model"
)

// DocumentsHandler handles document CRUD and download endpoints. Create and
// update are multipart: field values plus an optional (create: required)
// file part.
type DocumentsHandler struct {
	Farm *farm.Farm
}

// List handles GET /api/documents.
func (h *DocumentsHandler) List(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Farm.Documents.Records())
}

// parseForm extracts document field values and the uploaded file, if any,
// from a multipart request. The body limit leaves headroom above the
// document size cap so an oversized file is reported as a validation error
// rather than a truncated read.
func (h *DocumentsHandler) parseForm(w http.ResponseWriter, r *http.Request) (model.DocumentFile, *farm.Attachment, error) {
	r.Body = http.MaxBytesReader(w, r.Body, farm.MaxDocumentSize+1<<20)

	if err := r.ParseMultipartForm(farm.MaxDocumentSize); err != nil {
		return model.DocumentFile{}, nil, fmt.Errorf("parsing multipart form: %w", err)
	}

	values := model.DocumentFile{
		Name: r.FormValue("name"),
		Type: r.FormValue("type"),
	}

	file, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return values, nil, nil
	}
	if err != nil {
		return model.DocumentFile{}, nil, fmt.Errorf("reading file part: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return model.DocumentFile{}, nil, fmt.Errorf("reading file data: %w", err)
	}

	return values, &farm.Attachment{
		Data:     data,
		MIME:     header.Header.Get("Content-Type"),
		FileName: header.Filename,
	}, nil
}

// submit validates the combined submission and routes it through the
// document collection's form path, stashing the payload in the session cache
// on success.
func (h *DocumentsHandler) submit(w http.ResponseWriter, r *http.Request, session *collection.FormSession, values model.DocumentFile, file *farm.Attachment, mode collection.Mode) {
	if errs := farm.ValidateDocumentSubmission(values, file, mode); errs != nil {
		jsonValidationError(w, errs)
		return
	}

	if file != nil {
		values.FileName = file.FileName
		values.FileSize = int64(len(file.Data))
		values.UploadDate = time.Now()
	}

	document, errs, err := h.Farm.Documents.Submit(r.Context(), session, values)
	if errs != nil {
		jsonValidationError(w, errs)
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save document")
		return
	}

	if file != nil {
		h.Farm.Files.Put(document.ID, *file)
	}

	status := http.StatusOK
	if mode == collection.ModeCreate {
		status = http.StatusCreated
	}
	jsonResponse(w, status, document)
}

// Create handles POST /api/documents.
func (h *DocumentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	values, file, err := h.parseForm(w, r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	session := h.Farm.Documents.BeginCreate()
	h.submit(w, r, session, values, file, collection.ModeCreate)
}

// Update handles PUT /api/documents/{id}. A replacement file is optional;
// without one the existing file metadata is carried over.
func (h *DocumentsHandler) Update(w http.ResponseWriter, r *http.Request) {
	existing, ok := h.Farm.Documents.Get(r.PathValue("id"))
	if !ok {
		jsonError(w, http.StatusNotFound, "document not found")
		return
	}

	values, file, err := h.parseForm(w, r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	session := h.Farm.Documents.BeginEdit(existing)
	h.submit(w, r, session, values, file, collection.ModeEdit)
}

// Delete handles DELETE /api/documents/{id}.
func (h *DocumentsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.Farm.Documents.Remove(r.Context(), id); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete document")
		return
	}
	h.Farm.Files.Delete(id)
	jsonResponse(w, http.StatusOK, map[string]string{"message": "document deleted"})
}

// Download handles GET /api/documents/{id}/file. File content is
// session-resident only: after a restart only the metadata survives, and the
// download reports that instead of serving anything.
func (h *DocumentsHandler) Download(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	document, ok := h.Farm.Documents.Get(id)
	if !ok {
		jsonError(w, http.StatusNotFound, "document not found")
		return
	}

	file, ok := h.Farm.Files.Get(id)
	if !ok {
		jsonError(w, http.StatusNotFound, "file content not available in this session")
		return
	}

	name := document.FileName
	if name == "" {
		name = document.Name
	}
	w.Header().Set("Content-Type", file.MIME)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Write(file.Data)
}
