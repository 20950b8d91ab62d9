package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"campaignadmin/internal/interfaces"
	"campaignadmin/internal/middleware"
)

type RewardHandler struct {
	svc interfaces.AdminService
}

func NewRewardHandler(svc interfaces.AdminService) *RewardHandler {
	return &RewardHandler{svc: svc}
}

func decodePayload(r *http.Request) (json.RawMessage, bool) {
	var payload json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return nil, false
	}
	return payload, true
}

// @Tags Rewards
// @Summary Create reward
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body object true "Reward payload"
// @Success 201 {object} models.Reward
// @Failure 400 {object} errorResponse
// @Router /api/v1/rewards [post]
func (h *RewardHandler) CreateReward(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSONErrorResponse(w, http.StatusUnauthorized, "unauthorized", "Missing user")
		return
	}
	payload, ok := decodePayload(r)
	if !ok {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	reward, err := h.svc.AddRewards(r.Context(), userID, payload)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, reward)
}

// @Tags Rewards
// @Summary Merge fields into a reward
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Reward ID"
// @Param body body object true "Top-level keys to overwrite"
// @Success 200 {object} models.Reward
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /api/v1/rewards/{id} [put]
func (h *RewardHandler) UpdateReward(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSONErrorResponse(w, http.StatusUnauthorized, "unauthorized", "Missing user")
		return
	}
	payload, ok := decodePayload(r)
	if !ok {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	reward, err := h.svc.EditRewards(r.Context(), chi.URLParam(r, "id"), userID, payload)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reward)
}
