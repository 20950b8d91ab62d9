package handlers

import (
	"net/http"

	"campaignadmin/internal/interfaces"
)

type ReportHandler struct {
	svc interfaces.AdminService
}

func NewReportHandler(svc interfaces.AdminService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// @Tags Reports
// @Summary Submission report
// @Security BearerAuth
// @Produce json
// @Param status query string false "Submission status"
// @Param locationNm query string false "Location name"
// @Param userId query string false "User ID"
// @Param campaignId query string false "Campaign ID"
// @Param lastRecordCreatedAt query string false "RFC 3339 cursor, exclusive"
// @Param live query string false "\"true\" hides ended and deleted campaigns"
// @Param applyLimit query string false "\"true\" caps the result"
// @Param limit query int false "Cap when applyLimit is true (default 10)"
// @Success 200 {array} models.ReportEntry
// @Failure 400 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /api/v1/reports [get]
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	filter, err := reportFilterFromQuery(r.URL.Query())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	entries, err := h.svc.GetReportDetails(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// @Tags Reports
// @Summary Export report as CSV to object storage
// @Security BearerAuth
// @Produce json
// @Param status query string false "Submission status"
// @Param campaignId query string false "Campaign ID"
// @Param live query string false "\"true\" hides ended and deleted campaigns"
// @Success 201 {object} models.ReportExport
// @Failure 400 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /api/v1/reports/export [post]
func (h *ReportHandler) ExportReport(w http.ResponseWriter, r *http.Request) {
	filter, err := reportFilterFromQuery(r.URL.Query())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	export, err := h.svc.ExportReport(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, export)
}
