// internal/interfaces/campaign_repository.go
package interfaces

import (
	"context"
	"time"

	"campaignadmin/internal/models"
)

// LiveCampaignFilter selects campaigns that have started by Now. When Live is
// set, campaigns that ended before Now or were deleted are excluded as well.
type LiveCampaignFilter struct {
	Now  time.Time
	Live bool
}

// CampaignRepository defines the interface for campaign data operations
type CampaignRepository interface {
	Create(ctx context.Context, campaign *models.Campaign) error
	GetByID(ctx context.Context, id string) (*models.Campaign, error)
	GetRewards(ctx context.Context, id string) (*models.CampaignRewards, error)
	Update(ctx context.Context, id string, patch models.CampaignPatch) (*models.Campaign, error)
	SoftDelete(ctx context.Context, id string) (*models.Campaign, error)
	ListLive(ctx context.Context, filter LiveCampaignFilter) (*models.LiveCampaigns, error)
	// AddEntries atomically adds delta to the campaign's entry counter.
	AddEntries(ctx context.Context, id string, delta int) error
}
