package api

import (
	"net/http"

	"github.com/emruiz81/agriassist/internal/reminder"
)

// RemindersHandler drafts reminder messages for recurring farm activities.
type RemindersHandler struct{}

// Draft handles POST /api/reminders.
func (h *RemindersHandler) Draft(w http.ResponseWriter, r *http.Request) {
	var input reminder.DraftInput
	if err := decodeJSON(r, &input); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, errs := reminder.Draft(input)
	if errs != nil {
		jsonValidationError(w, errs)
		return
	}

	jsonResponse(w, http.StatusOK, result)
}
