// internal/handlers/campaign_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"campaignadmin/internal/interfaces"
	"campaignadmin/internal/models"
)

type CampaignHandler struct {
	svc       interfaces.AdminService
	validator *validator.Validate
}

func NewCampaignHandler(svc interfaces.AdminService) *CampaignHandler {
	return &CampaignHandler{
		svc:       svc,
		validator: validator.New(),
	}
}

// @Tags Campaigns
// @Summary Create campaign
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.CreateCampaignRequest true "Campaign with DD-MM-YYYY dates"
// @Success 201 {object} models.Campaign
// @Failure 400 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /api/v1/campaigns [post]
func (h *CampaignHandler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	campaign, err := h.svc.InsertCampaign(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, campaign)
}

// @Tags Campaigns
// @Summary List started campaigns
// @Description Campaigns that have started. live=true also drops ended and deleted ones.
// @Security BearerAuth
// @Produce json
// @Param live query string false "exactly \"true\" restricts to live campaigns"
// @Success 200 {object} models.LiveCampaigns
// @Failure 503 {object} errorResponse
// @Router /api/v1/campaigns [get]
func (h *CampaignHandler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.GetLiveCampaigns(r.Context(), queryBool(r.URL.Query(), "live"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// @Tags Campaigns
// @Summary Campaign details with submitted entries
// @Security BearerAuth
// @Produce json
// @Param id path string true "Campaign ID"
// @Param lastRecordCreatedAt query string false "RFC 3339 cursor, exclusive"
// @Success 200 {object} models.CampaignDetails
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /api/v1/campaigns/{id} [get]
func (h *CampaignHandler) GetCampaign(w http.ResponseWriter, r *http.Request) {
	cursor, err := queryCursor(r.URL.Query(), "lastRecordCreatedAt")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	details, err := h.svc.GetCampaignDetails(r.Context(), chi.URLParam(r, "id"), cursor)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if details.Entries == nil {
		details.Entries = []models.Entry{}
	}
	writeJSON(w, http.StatusOK, details)
}

// @Tags Campaigns
// @Summary Campaign rewards
// @Security BearerAuth
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} models.CampaignRewards
// @Failure 404 {object} errorResponse
// @Router /api/v1/campaigns/{id}/rewards [get]
func (h *CampaignHandler) GetCampaignRewards(w http.ResponseWriter, r *http.Request) {
	rewards, err := h.svc.GetCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rewards)
}

// @Tags Campaigns
// @Summary Update campaign
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID"
// @Param body body models.UpdateCampaignRequest true "Fields to change"
// @Success 200 {object} models.Campaign
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /api/v1/campaigns/{id} [put]
func (h *CampaignHandler) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	campaign, err := h.svc.UpdateCampaign(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

// @Tags Campaigns
// @Summary Soft delete campaign
// @Security BearerAuth
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} models.Campaign
// @Failure 404 {object} errorResponse
// @Router /api/v1/campaigns/{id} [delete]
func (h *CampaignHandler) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.svc.DeleteCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

// @Tags Campaigns
// @Summary Adjust entry counter by one
// @Security BearerAuth
// @Produce json
// @Param id path string true "Campaign ID"
// @Param increment query string false "\"true\" adds one, anything else subtracts one"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errorResponse
// @Router /api/v1/campaigns/{id}/entries [post]
func (h *CampaignHandler) UpdateEntries(w http.ResponseWriter, r *http.Request) {
	increment := queryBool(r.URL.Query(), "increment")
	if err := h.svc.UpdateEntries(r.Context(), chi.URLParam(r, "id"), increment); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSONMessage(w, http.StatusOK, "Entries updated")
}
