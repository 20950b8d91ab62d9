package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"campaignadmin/internal/interfaces"
	"campaignadmin/internal/middleware"
	"campaignadmin/internal/models"
)

// stubService implements only what a test sets; any other call panics
// through the nil embedded interface.
type stubService struct {
	interfaces.AdminService

	insertCampaign     func(models.CreateCampaignRequest) (*models.Campaign, error)
	updateCampaign     func(string, models.UpdateCampaignRequest) (*models.Campaign, error)
	deleteCampaign     func(string) (*models.Campaign, error)
	getReportDetails   func(models.ReportFilter) ([]models.ReportEntry, error)
	getLiveCampaigns   func(bool) (*models.LiveCampaigns, error)
	getCampaignDetails func(string, *time.Time) (*models.CampaignDetails, error)
	getCampaign        func(string) (*models.CampaignRewards, error)
	reviewTask         func(string, string, models.UpdateTaskRequest) (*models.Submission, error)
	updateEntries      func(string, bool) error
	addRewards         func(string, json.RawMessage) (*models.Reward, error)
	editRewards        func(string, string, json.RawMessage) (*models.Reward, error)
	findAdmin          func(string) (string, error)
	exportReport       func(models.ReportFilter) (*models.ReportExport, error)
}

func (s *stubService) InsertCampaign(_ context.Context, req models.CreateCampaignRequest) (*models.Campaign, error) {
	return s.insertCampaign(req)
}
func (s *stubService) UpdateCampaign(_ context.Context, id string, req models.UpdateCampaignRequest) (*models.Campaign, error) {
	return s.updateCampaign(id, req)
}
func (s *stubService) DeleteCampaign(_ context.Context, id string) (*models.Campaign, error) {
	return s.deleteCampaign(id)
}
func (s *stubService) GetReportDetails(_ context.Context, f models.ReportFilter) ([]models.ReportEntry, error) {
	return s.getReportDetails(f)
}
func (s *stubService) GetLiveCampaigns(_ context.Context, live bool) (*models.LiveCampaigns, error) {
	return s.getLiveCampaigns(live)
}
func (s *stubService) GetCampaignDetails(_ context.Context, id string, cursor *time.Time) (*models.CampaignDetails, error) {
	return s.getCampaignDetails(id, cursor)
}
func (s *stubService) GetCampaign(_ context.Context, id string) (*models.CampaignRewards, error) {
	return s.getCampaign(id)
}
func (s *stubService) ReviewTask(_ context.Context, id, reviewer string, req models.UpdateTaskRequest) (*models.Submission, error) {
	return s.reviewTask(id, reviewer, req)
}
func (s *stubService) UpdateEntries(_ context.Context, id string, increment bool) error {
	return s.updateEntries(id, increment)
}
func (s *stubService) AddRewards(_ context.Context, userID string, payload json.RawMessage) (*models.Reward, error) {
	return s.addRewards(userID, payload)
}
func (s *stubService) EditRewards(_ context.Context, id, userID string, payload json.RawMessage) (*models.Reward, error) {
	return s.editRewards(id, userID, payload)
}
func (s *stubService) FindAdmin(_ context.Context, userID string) (string, error) {
	return s.findAdmin(userID)
}
func (s *stubService) ExportReport(_ context.Context, f models.ReportFilter) (*models.ReportExport, error) {
	return s.exportReport(f)
}

const testUserID = "0c1d2e3f-4a5b-4c6d-8e7f-8091a2b3c4d5"

// serve runs a single request through a chi router so URL params resolve.
func serve(method, pattern, target, body string, h http.HandlerFunc, user string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Method(method, pattern, h)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if user != "" {
		req = req.WithContext(middleware.WithUserID(req.Context(), user))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json got %q", ct)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v (%s)", err, w.Body.String())
	}
	return resp
}
