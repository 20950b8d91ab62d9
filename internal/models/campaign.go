// internal/models/campaign.go
package models

import (
	"time"

	"github.com/lib/pq"
)

type CampaignStatus string

const (
	CampaignStatusActive  CampaignStatus = "active"
	CampaignStatusDeleted CampaignStatus = "deleted"
)

// CampaignInfo is the public projection of a campaign: what detail views and
// joined report rows expose.
type CampaignInfo struct {
	ID          string         `json:"id" db:"id"`
	Name        string         `json:"campaignName" db:"campaign_name"`
	StartDate   time.Time      `json:"startDate" db:"start_date"`
	EndDate     time.Time      `json:"endDate" db:"end_date"`
	NoOfEntries int            `json:"noOfEntries" db:"no_of_entries"`
	Status      CampaignStatus `json:"status" db:"status"`
	Rewards     pq.StringArray `json:"rewards" db:"rewards"`
}

type Campaign struct {
	CampaignInfo
	LocationIDs pq.StringArray `json:"locationIds" db:"location_ids"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time      `json:"updatedAt" db:"updated_at"`
}

// CreateCampaignRequest carries dates as DD-MM-YYYY strings.
type CreateCampaignRequest struct {
	Name        string   `json:"campaignName" validate:"required,max=255"`
	StartDate   string   `json:"startDate" validate:"required"`
	EndDate     string   `json:"endDate" validate:"required"`
	Rewards     []string `json:"rewards" validate:"omitempty,dive,uuid"`
	LocationIDs []string `json:"locationIds" validate:"omitempty,dive,required"`
}

type UpdateCampaignRequest struct {
	Name        *string   `json:"campaignName,omitempty" validate:"omitempty,min=1,max=255"`
	StartDate   *string   `json:"startDate,omitempty"`
	EndDate     *string   `json:"endDate,omitempty"`
	Rewards     *[]string `json:"rewards,omitempty" validate:"omitempty,dive,uuid"`
	LocationIDs *[]string `json:"locationIds,omitempty"`
}

// CampaignPatch is an UpdateCampaignRequest with dates already normalized.
// Nil fields are left untouched by the store.
type CampaignPatch struct {
	Name        *string
	StartDate   *time.Time
	EndDate     *time.Time
	Rewards     *[]string
	LocationIDs *[]string
}

type CampaignSummary struct {
	ID          string `json:"id" db:"id"`
	Name        string `json:"campaignName" db:"campaign_name"`
	NoOfEntries int    `json:"noOfEntries" db:"no_of_entries"`
}

type LiveCampaigns struct {
	Campaigns    []CampaignSummary `json:"campaigns"`
	TotalEntries int               `json:"totalEntries"`
}

type CampaignRewards struct {
	ID      string         `json:"id" db:"id"`
	Rewards pq.StringArray `json:"rewards" db:"rewards"`
}

type CampaignDetails struct {
	Campaign CampaignInfo `json:"campaignDetails"`
	Entries  []Entry      `json:"entries"`
}
