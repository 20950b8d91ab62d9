package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"campaignadmin/internal/interfaces"
	"campaignadmin/internal/metrics"
	"campaignadmin/internal/models"
)

var errExportDisabled = errors.New("report export is not configured")

// Repositories are the stores AdminService is built on.
type Repositories struct {
	Campaigns   interfaces.CampaignRepository
	Submissions interfaces.SubmissionRepository
	Reports     interfaces.ReportRepository
	Rewards     interfaces.RewardRepository
	Admins      interfaces.AdminRepository
}

type Option func(*AdminService)

// WithClock overrides the time source used for live checks.
func WithClock(now func() time.Time) Option {
	return func(s *AdminService) { s.now = now }
}

func WithPhotoSigner(signer PhotoSigner) Option {
	return func(s *AdminService) { s.photos = signer }
}

func WithReportExporter(exporter ReportExporter) Option {
	return func(s *AdminService) { s.exporter = exporter }
}

// AdminService exposes the campaign, review, reward and reporting operations.
// It holds no state besides its collaborators and is safe for concurrent use.
type AdminService struct {
	campaigns   interfaces.CampaignRepository
	submissions interfaces.SubmissionRepository
	reports     interfaces.ReportRepository
	rewards     interfaces.RewardRepository
	admins      interfaces.AdminRepository
	photos      PhotoSigner
	exporter    ReportExporter
	now         func() time.Time
}

func NewAdminService(repos Repositories, opts ...Option) *AdminService {
	s := &AdminService{
		campaigns:   repos.Campaigns,
		submissions: repos.Submissions,
		reports:     repos.Reports,
		rewards:     repos.Rewards,
		admins:      repos.Admins,
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func observe(op string, start time.Time, err error) {
	metrics.RecordOperation(op, outcome(err), time.Since(start).Seconds())
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, interfaces.ErrNotFound):
		return "not_found"
	case errors.Is(err, interfaces.ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, interfaces.ErrUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}

func parseID(field, id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", interfaces.InvalidArgument("%s %q is not a valid id", field, id)
	}
	return u.String(), nil
}

func parseDay(field, value string) (time.Time, error) {
	t, err := models.ParseDay(value)
	if err != nil {
		return time.Time{}, interfaces.InvalidArgument("%s %q is not a DD-MM-YYYY date", field, value)
	}
	return t, nil
}

func (s *AdminService) InsertCampaign(ctx context.Context, req models.CreateCampaignRequest) (campaign *models.Campaign, err error) {
	defer func(start time.Time) { observe("insert_campaign", start, err) }(time.Now())

	startDate, err := parseDay("startDate", req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDay("endDate", req.EndDate)
	if err != nil {
		return nil, err
	}
	if endDate.Before(startDate) {
		return nil, interfaces.InvalidArgument("endDate must not be before startDate")
	}

	campaign = &models.Campaign{
		CampaignInfo: models.CampaignInfo{
			ID:        uuid.NewString(),
			Name:      req.Name,
			StartDate: startDate,
			EndDate:   endDate,
			Status:    models.CampaignStatusActive,
			Rewards:   pq.StringArray(req.Rewards),
		},
		LocationIDs: pq.StringArray(req.LocationIDs),
	}
	if err := s.campaigns.Create(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// UpdateCampaign changes only the fields present in req.
func (s *AdminService) UpdateCampaign(ctx context.Context, id string, req models.UpdateCampaignRequest) (campaign *models.Campaign, err error) {
	defer func(start time.Time) { observe("update_campaign", start, err) }(time.Now())

	if id, err = parseID("campaignId", id); err != nil {
		return nil, err
	}

	patch := models.CampaignPatch{
		Name:        req.Name,
		Rewards:     req.Rewards,
		LocationIDs: req.LocationIDs,
	}
	if req.StartDate != nil {
		t, err := parseDay("startDate", *req.StartDate)
		if err != nil {
			return nil, err
		}
		patch.StartDate = &t
	}
	if req.EndDate != nil {
		t, err := parseDay("endDate", *req.EndDate)
		if err != nil {
			return nil, err
		}
		patch.EndDate = &t
	}
	if patch.StartDate != nil && patch.EndDate != nil && patch.EndDate.Before(*patch.StartDate) {
		return nil, interfaces.InvalidArgument("endDate must not be before startDate")
	}

	return s.campaigns.Update(ctx, id, patch)
}

// DeleteCampaign soft-deletes the campaign; the record and its counters stay.
func (s *AdminService) DeleteCampaign(ctx context.Context, id string) (campaign *models.Campaign, err error) {
	defer func(start time.Time) { observe("delete_campaign", start, err) }(time.Now())

	if id, err = parseID("campaignId", id); err != nil {
		return nil, err
	}
	return s.campaigns.SoftDelete(ctx, id)
}

func (s *AdminService) GetReportDetails(ctx context.Context, filter models.ReportFilter) (entries []models.ReportEntry, err error) {
	defer func(start time.Time) { observe("report_details", start, err) }(time.Now())

	entries, err = s.reports.Find(ctx, filter, s.now())
	if err != nil {
		return nil, err
	}
	metrics.RecordReportRows(len(entries))
	return entries, nil
}

func (s *AdminService) GetLiveCampaigns(ctx context.Context, live bool) (out *models.LiveCampaigns, err error) {
	defer func(start time.Time) { observe("live_campaigns", start, err) }(time.Now())

	return s.campaigns.ListLive(ctx, interfaces.LiveCampaignFilter{Now: s.now(), Live: live})
}

// GetCampaignDetails returns the campaign and the next page of its SUBMITTED
// entries created strictly after cursor.
func (s *AdminService) GetCampaignDetails(ctx context.Context, campaignID string, cursor *time.Time) (details *models.CampaignDetails, err error) {
	defer func(start time.Time) { observe("campaign_details", start, err) }(time.Now())

	if campaignID, err = parseID("campaignId", campaignID); err != nil {
		return nil, err
	}

	campaign, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	entries, err := s.submissions.ListEntries(ctx, interfaces.EntryPage{
		CampaignID: campaignID,
		After:      cursor,
		Limit:      models.CampaignEntriesPageSize,
	})
	if err != nil {
		return nil, err
	}

	if s.photos != nil {
		for i := range entries {
			if entries[i].PhotoID == "" {
				continue
			}
			url, err := s.photos.PhotoURL(ctx, entries[i].PhotoID)
			if err != nil {
				return nil, interfaces.Unavailable("sign photo url", err)
			}
			entries[i].PhotoURL = url
		}
	}

	return &models.CampaignDetails{Campaign: campaign.CampaignInfo, Entries: entries}, nil
}

func (s *AdminService) GetCampaign(ctx context.Context, campaignID string) (rewards *models.CampaignRewards, err error) {
	defer func(start time.Time) { observe("campaign_rewards", start, err) }(time.Now())

	if campaignID, err = parseID("campaignId", campaignID); err != nil {
		return nil, err
	}
	return s.campaigns.GetRewards(ctx, campaignID)
}

// UpdateTask moves a SUBMITTED submission to a terminal status. A submission
// that is already reviewed reports ErrNotFound.
func (s *AdminService) UpdateTask(ctx context.Context, submissionID, reviewerID string, req models.UpdateTaskRequest) (submission *models.Submission, err error) {
	defer func(start time.Time) { observe("update_task", start, err) }(time.Now())

	return s.review(ctx, submissionID, reviewerID, req, false)
}

// ReviewTask is UpdateTask where an approval also counts as a campaign
// entry. Both changes commit together or not at all, so a failed approval
// can be retried.
func (s *AdminService) ReviewTask(ctx context.Context, submissionID, reviewerID string, req models.UpdateTaskRequest) (submission *models.Submission, err error) {
	defer func(start time.Time) { observe("review_task", start, err) }(time.Now())

	return s.review(ctx, submissionID, reviewerID, req, true)
}

func (s *AdminService) review(ctx context.Context, submissionID, reviewerID string, req models.UpdateTaskRequest, countEntry bool) (*models.Submission, error) {
	submissionID, err := parseID("submissionId", submissionID)
	if err != nil {
		return nil, err
	}
	if reviewerID, err = parseID("reviewerId", reviewerID); err != nil {
		return nil, err
	}
	if req.Status != models.SubmissionStatusApproved && req.Status != models.SubmissionStatusRejected {
		return nil, interfaces.InvalidArgument("status %q is not a review outcome", req.Status)
	}

	return s.submissions.Review(ctx, submissionID, models.TaskReview{
		Status:     req.Status,
		Remarks:    req.Remarks,
		ReviewedBy: reviewerID,
		CountEntry: countEntry,
	})
}

func (s *AdminService) UpdateEntries(ctx context.Context, campaignID string, increment bool) (err error) {
	defer func(start time.Time) { observe("update_entries", start, err) }(time.Now())

	if campaignID, err = parseID("campaignId", campaignID); err != nil {
		return err
	}
	delta := -1
	if increment {
		delta = 1
	}
	return s.campaigns.AddEntries(ctx, campaignID, delta)
}

func (s *AdminService) AddRewards(ctx context.Context, userID string, payload json.RawMessage) (reward *models.Reward, err error) {
	defer func(start time.Time) { observe("add_rewards", start, err) }(time.Now())

	if userID, err = parseID("userId", userID); err != nil {
		return nil, err
	}
	if !isJSONObject(payload) {
		return nil, interfaces.InvalidArgument("reward payload must be a JSON object")
	}

	reward = &models.Reward{
		ID:        uuid.NewString(),
		Payload:   payload,
		CreatedBy: userID,
		UpdatedBy: userID,
	}
	if err := s.rewards.Create(ctx, reward); err != nil {
		return nil, err
	}
	return reward, nil
}

func (s *AdminService) EditRewards(ctx context.Context, rewardID, userID string, payload json.RawMessage) (reward *models.Reward, err error) {
	defer func(start time.Time) { observe("edit_rewards", start, err) }(time.Now())

	if rewardID, err = parseID("rewardId", rewardID); err != nil {
		return nil, err
	}
	if userID, err = parseID("userId", userID); err != nil {
		return nil, err
	}
	if !isJSONObject(payload) {
		return nil, interfaces.InvalidArgument("reward payload must be a JSON object")
	}
	return s.rewards.Merge(ctx, rewardID, userID, payload)
}

func (s *AdminService) FindAdmin(ctx context.Context, userID string) (adminID string, err error) {
	defer func(start time.Time) { observe("find_admin", start, err) }(time.Now())

	if userID, err = parseID("userId", userID); err != nil {
		return "", err
	}
	return s.admins.GetID(ctx, userID)
}

// ExportReport runs the report and uploads it as CSV.
func (s *AdminService) ExportReport(ctx context.Context, filter models.ReportFilter) (export *models.ReportExport, err error) {
	defer func(start time.Time) { observe("export_report", start, err) }(time.Now())

	if s.exporter == nil {
		return nil, interfaces.Unavailable("export report", errExportDisabled)
	}

	entries, err := s.reports.Find(ctx, filter, s.now())
	if err != nil {
		return nil, err
	}
	metrics.RecordReportRows(len(entries))
	return s.exporter.Export(ctx, entries)
}

func isJSONObject(payload json.RawMessage) bool {
	trimmed := bytes.TrimSpace(payload)
	return len(trimmed) > 0 && trimmed[0] == '{' && json.Valid(trimmed)
}

var _ interfaces.AdminService = (*AdminService)(nil)
