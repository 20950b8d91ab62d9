package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"campaignadmin/internal/interfaces"
	"campaignadmin/internal/models"
)

// reportSelect joins every submission to exactly one campaign. The inner join
// drops submissions whose campaign does not exist.
const reportSelect = `
        SELECT
            t.id, t.user_id, t.campaign_id, t.location_nm, t.status, t.photo_id,
            t.remarks, t.reviewed_by, t.created_at, t.updated_at,
            c.id AS "campaign.id",
            c.campaign_name AS "campaign.campaign_name",
            c.start_date AS "campaign.start_date",
            c.end_date AS "campaign.end_date",
            c.no_of_entries AS "campaign.no_of_entries",
            c.status AS "campaign.status",
            c.rewards AS "campaign.rewards"
        FROM user_tasks t
        INNER JOIN campaigns c ON c.id = t.campaign_id`

type reportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) interfaces.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Find(ctx context.Context, filter models.ReportFilter, now time.Time) ([]models.ReportEntry, error) {
	query, args, err := buildReportQuery(filter, now)
	if err != nil {
		return nil, err
	}

	entries := []models.ReportEntry{}
	if err := r.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, storeError("report details", err)
	}
	return entries, nil
}

// buildReportQuery renders the report as match, join, redact, sort, limit.
// The limit comes last so it caps redacted, sorted rows.
func buildReportQuery(filter models.ReportFilter, now time.Time) (string, []any, error) {
	var whereClauses []string
	var args []any
	argPos := 1

	add := func(clause string, arg any) {
		whereClauses = append(whereClauses, fmt.Sprintf(clause, argPos))
		args = append(args, arg)
		argPos++
	}

	if filter.Status != nil {
		add("t.status = $%d", *filter.Status)
	}
	if filter.LocationNm != nil {
		add("t.location_nm = $%d", *filter.LocationNm)
	}
	if filter.UserID != nil {
		add("t.user_id = $%d", *filter.UserID)
	}
	if filter.CampaignID != nil {
		id, err := uuid.Parse(*filter.CampaignID)
		if err != nil {
			return "", nil, interfaces.InvalidArgument("campaignId %q is not a valid id", *filter.CampaignID)
		}
		add("t.campaign_id = $%d", id.String())
	}
	if filter.LastRecordCreatedAt != nil {
		add("t.created_at > $%d", *filter.LastRecordCreatedAt)
	}

	if filter.Live {
		add("c.end_date >= $%d", now)
		add("c.status <> $%d", models.CampaignStatusDeleted)
	}

	query := reportSelect
	if len(whereClauses) > 0 {
		query += "\n        WHERE " + strings.Join(whereClauses, " AND ")
	}

	query += "\n        ORDER BY t.created_at ASC, t.id ASC"

	if limit := filter.EffectiveLimit(); limit > 0 {
		query += fmt.Sprintf("\n        LIMIT $%d", argPos)
		args = append(args, limit)
	}

	return query, args, nil
}
