package models

import "time"

// DefaultReportLimit caps a report when a limit is requested but not usable.
const DefaultReportLimit = 10

// CampaignEntriesPageSize is the fixed page size of campaign entry listings.
const CampaignEntriesPageSize = 10

// ReportFilter selects submissions for a report. Nil fields do not filter.
// CampaignID stays raw so the query builder can reject malformed ids.
type ReportFilter struct {
	Status              *string
	LocationNm          *string
	UserID              *string
	CampaignID          *string
	LastRecordCreatedAt *time.Time
	Live                bool
	ApplyLimit          bool
	Limit               int
}

// EffectiveLimit is the row cap for the filter, or 0 when uncapped.
func (f ReportFilter) EffectiveLimit() int {
	if !f.ApplyLimit {
		return 0
	}
	if f.Limit <= 0 {
		return DefaultReportLimit
	}
	return f.Limit
}

// ReportEntry is a submission joined with its campaign.
type ReportEntry struct {
	Submission
	Campaign CampaignInfo `json:"campaign" db:"campaign"`
}

type ReportExport struct {
	Key  string `json:"key"`
	URL  string `json:"url,omitempty"`
	Rows int    `json:"rows"`
}
