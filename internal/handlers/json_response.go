package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"campaignadmin/internal/interfaces"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeJSONMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"message": message})
}

func writeJSONErrorResponse(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, errorResponse{Error: code, Message: message})
}

// writeServiceError maps the shared error taxonomy onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, interfaces.ErrNotFound):
		writeJSONErrorResponse(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, interfaces.ErrInvalidArgument):
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_argument", err.Error())
	case errors.Is(err, interfaces.ErrUnavailable):
		slog.ErrorContext(r.Context(), "store unavailable", "path", r.URL.Path, "error", err)
		writeJSONErrorResponse(w, http.StatusServiceUnavailable, "unavailable", "Service temporarily unavailable")
	default:
		slog.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", "Internal server error")
	}
}
