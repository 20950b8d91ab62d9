package interfaces

import (
	"context"
	"encoding/json"
	"time"

	"campaignadmin/internal/models"
)

// AdminService is the operation set the HTTP layer drives.
type AdminService interface {
	InsertCampaign(ctx context.Context, req models.CreateCampaignRequest) (*models.Campaign, error)
	UpdateCampaign(ctx context.Context, id string, req models.UpdateCampaignRequest) (*models.Campaign, error)
	DeleteCampaign(ctx context.Context, id string) (*models.Campaign, error)
	GetReportDetails(ctx context.Context, filter models.ReportFilter) ([]models.ReportEntry, error)
	GetLiveCampaigns(ctx context.Context, live bool) (*models.LiveCampaigns, error)
	GetCampaignDetails(ctx context.Context, campaignID string, cursor *time.Time) (*models.CampaignDetails, error)
	GetCampaign(ctx context.Context, campaignID string) (*models.CampaignRewards, error)
	UpdateTask(ctx context.Context, submissionID, reviewerID string, req models.UpdateTaskRequest) (*models.Submission, error)
	ReviewTask(ctx context.Context, submissionID, reviewerID string, req models.UpdateTaskRequest) (*models.Submission, error)
	UpdateEntries(ctx context.Context, campaignID string, increment bool) error
	AddRewards(ctx context.Context, userID string, payload json.RawMessage) (*models.Reward, error)
	EditRewards(ctx context.Context, rewardID, userID string, payload json.RawMessage) (*models.Reward, error)
	FindAdmin(ctx context.Context, userID string) (string, error)
	ExportReport(ctx context.Context, filter models.ReportFilter) (*models.ReportExport, error)
}
