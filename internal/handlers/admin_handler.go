package handlers

import (
	"net/http"

	"campaignadmin/internal/interfaces"
	"campaignadmin/internal/middleware"
)

type AdminHandler struct {
	svc interfaces.AdminService
}

func NewAdminHandler(svc interfaces.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// @Tags Admins
// @Summary Resolve the calling admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errorResponse
// @Router /api/v1/admins/me [get]
func (h *AdminHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSONErrorResponse(w, http.StatusUnauthorized, "unauthorized", "Missing user")
		return
	}

	id, err := h.svc.FindAdmin(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}
