package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"campaignadmin/internal/interfaces"
	"campaignadmin/internal/models"
)

const submissionColumns = `id, user_id, campaign_id, location_nm, status, photo_id, remarks,
            reviewed_by, created_at, updated_at`

type submissionRepository struct {
	db *sqlx.DB
}

func NewSubmissionRepository(db *sqlx.DB) interfaces.SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) ListEntries(ctx context.Context, page interfaces.EntryPage) ([]models.Entry, error) {
	query := `
        SELECT id, location_nm, photo_id, created_at
        FROM user_tasks
        WHERE campaign_id = $1 AND status = $2`
	args := []any{page.CampaignID, models.SubmissionStatusSubmitted}
	argPos := 3

	if page.After != nil {
		query += fmt.Sprintf(" AND created_at > $%d", argPos)
		args = append(args, *page.After)
		argPos++
	}

	query += " ORDER BY created_at ASC, id ASC"
	if page.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argPos)
		args = append(args, page.Limit)
	}

	entries := []models.Entry{}
	if err := r.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, storeError("list campaign entries", err)
	}
	return entries, nil
}

const reviewQuery = `
        UPDATE user_tasks
        SET status = $1,
            remarks = COALESCE($2, remarks),
            reviewed_by = $3,
            updated_at = NOW()
        WHERE id = $4 AND status = $5
        RETURNING ` + submissionColumns

func reviewArgs(id string, review models.TaskReview) []any {
	return []any{review.Status, review.Remarks, review.ReviewedBy, id, models.SubmissionStatusSubmitted}
}

func (r *submissionRepository) Review(ctx context.Context, id string, review models.TaskReview) (*models.Submission, error) {
	if review.CountEntry && review.Status == models.SubmissionStatusApproved {
		return r.approveAndCount(ctx, id, review)
	}

	var submission models.Submission
	if err := r.db.GetContext(ctx, &submission, reviewQuery, reviewArgs(id, review)...); err != nil {
		return nil, storeError("review submission", err)
	}
	return &submission, nil
}

// approveAndCount commits the approval only together with the entry
// increment. A submission whose campaign is missing stays SUBMITTED.
func (r *submissionRepository) approveAndCount(ctx context.Context, id string, review models.TaskReview) (*models.Submission, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, storeError("begin review", err)
	}
	defer tx.Rollback()

	var submission models.Submission
	if err := tx.GetContext(ctx, &submission, reviewQuery, reviewArgs(id, review)...); err != nil {
		return nil, storeError("review submission", err)
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE campaigns SET no_of_entries = no_of_entries + 1, updated_at = NOW() WHERE id = $1`,
		submission.CampaignID,
	)
	if err != nil {
		return nil, storeError("count approved entry", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, storeError("count approved entry", err)
	}
	if rowsAffected == 0 {
		return nil, fmt.Errorf("count approved entry: campaign %s: %w", submission.CampaignID, interfaces.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return nil, storeError("commit review", err)
	}
	return &submission, nil
}
