package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"campaignadmin/internal/interfaces"
	"campaignadmin/internal/middleware"
	"campaignadmin/internal/models"
)

type TaskHandler struct {
	svc       interfaces.AdminService
	validator *validator.Validate
}

func NewTaskHandler(svc interfaces.AdminService) *TaskHandler {
	return &TaskHandler{svc: svc, validator: validator.New()}
}

// @Tags Tasks
// @Summary Review a submitted task
// @Description Approving a task also counts it as a campaign entry.
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Submission ID"
// @Param body body models.UpdateTaskRequest true "Review outcome"
// @Success 200 {object} models.Submission
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /api/v1/tasks/{id} [put]
func (h *TaskHandler) ReviewTask(w http.ResponseWriter, r *http.Request) {
	reviewerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSONErrorResponse(w, http.StatusUnauthorized, "unauthorized", "Missing user")
		return
	}

	var req models.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	submission, err := h.svc.ReviewTask(r.Context(), chi.URLParam(r, "id"), reviewerID, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, submission)
}
