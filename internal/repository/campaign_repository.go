package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"campaignadmin/internal/interfaces"
	"campaignadmin/internal/models"
)

const campaignColumns = `id, campaign_name, start_date, end_date, no_of_entries, status,
            rewards, location_ids, created_at, updated_at`

type campaignRepository struct {
	db *sqlx.DB
}

func NewCampaignRepository(db *sqlx.DB) interfaces.CampaignRepository {
	return &campaignRepository{db: db}
}

func (r *campaignRepository) Create(ctx context.Context, campaign *models.Campaign) error {
	rewards := campaign.Rewards
	if rewards == nil {
		rewards = pq.StringArray{}
	}
	locations := campaign.LocationIDs
	if locations == nil {
		locations = pq.StringArray{}
	}

	query := `
        INSERT INTO campaigns (
            id, campaign_name, start_date, end_date, no_of_entries, status, rewards, location_ids
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING created_at, updated_at
    `

	err := r.db.QueryRowxContext(
		ctx,
		query,
		campaign.ID,
		campaign.Name,
		campaign.StartDate,
		campaign.EndDate,
		campaign.NoOfEntries,
		campaign.Status,
		rewards,
		locations,
	).Scan(&campaign.CreatedAt, &campaign.UpdatedAt)
	if err != nil {
		return storeError("insert campaign", err)
	}

	campaign.Rewards = rewards
	campaign.LocationIDs = locations
	return nil
}

func (r *campaignRepository) GetByID(ctx context.Context, id string) (*models.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`

	var campaign models.Campaign
	if err := r.db.GetContext(ctx, &campaign, query, id); err != nil {
		return nil, storeError("get campaign", err)
	}
	return &campaign, nil
}

func (r *campaignRepository) GetRewards(ctx context.Context, id string) (*models.CampaignRewards, error) {
	var rewards models.CampaignRewards
	if err := r.db.GetContext(ctx, &rewards, `SELECT id, rewards FROM campaigns WHERE id = $1`, id); err != nil {
		return nil, storeError("get campaign rewards", err)
	}
	return &rewards, nil
}

// Update applies a partial update; NULL parameters keep the stored value.
func (r *campaignRepository) Update(ctx context.Context, id string, patch models.CampaignPatch) (*models.Campaign, error) {
	query := `
        UPDATE campaigns
        SET campaign_name = COALESCE($1, campaign_name),
            start_date = COALESCE($2, start_date),
            end_date = COALESCE($3, end_date),
            rewards = COALESCE($4, rewards),
            location_ids = COALESCE($5, location_ids),
            updated_at = NOW()
        WHERE id = $6
        RETURNING ` + campaignColumns

	var campaign models.Campaign
	err := r.db.GetContext(
		ctx,
		&campaign,
		query,
		patch.Name,
		patch.StartDate,
		patch.EndDate,
		stringArrayOrNil(patch.Rewards),
		stringArrayOrNil(patch.LocationIDs),
		id,
	)
	if err != nil {
		return nil, storeError("update campaign", err)
	}
	return &campaign, nil
}

// SoftDelete marks the campaign deleted and leaves every other field as is.
func (r *campaignRepository) SoftDelete(ctx context.Context, id string) (*models.Campaign, error) {
	query := `
        UPDATE campaigns
        SET status = $1, updated_at = NOW()
        WHERE id = $2
        RETURNING ` + campaignColumns

	var campaign models.Campaign
	if err := r.db.GetContext(ctx, &campaign, query, models.CampaignStatusDeleted, id); err != nil {
		return nil, storeError("delete campaign", err)
	}
	return &campaign, nil
}

// ListLive lists started campaigns and sums their entry counters over the
// same selection.
func (r *campaignRepository) ListLive(ctx context.Context, filter interfaces.LiveCampaignFilter) (*models.LiveCampaigns, error) {
	whereClauses := []string{"start_date <= $1"}
	args := []any{filter.Now}
	argPos := 2

	if filter.Live {
		whereClauses = append(whereClauses, "end_date >= $1")
		whereClauses = append(whereClauses, fmt.Sprintf("status <> $%d", argPos))
		args = append(args, models.CampaignStatusDeleted)
		argPos++
	}
	where := " WHERE " + strings.Join(whereClauses, " AND ")

	out := &models.LiveCampaigns{Campaigns: []models.CampaignSummary{}}
	listQuery := `SELECT id, campaign_name, no_of_entries FROM campaigns` + where + ` ORDER BY start_date ASC, id ASC`
	if err := r.db.SelectContext(ctx, &out.Campaigns, listQuery, args...); err != nil {
		return nil, storeError("list live campaigns", err)
	}

	totalQuery := `SELECT COALESCE(SUM(no_of_entries), 0) FROM campaigns` + where
	if err := r.db.GetContext(ctx, &out.TotalEntries, totalQuery, args...); err != nil {
		return nil, storeError("sum campaign entries", err)
	}

	return out, nil
}

func (r *campaignRepository) AddEntries(ctx context.Context, id string, delta int) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE campaigns SET no_of_entries = no_of_entries + $1, updated_at = NOW() WHERE id = $2`,
		delta, id,
	)
	if err != nil {
		return storeError("update campaign entries", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storeError("update campaign entries", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("update campaign entries: %w", interfaces.ErrNotFound)
	}
	return nil
}

func stringArrayOrNil(values *[]string) any {
	if values == nil {
		return nil
	}
	if *values == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(*values)
}
