package interfaces

import (
	"context"
	"time"

	"campaignadmin/internal/models"
)

// EntryPage selects SUBMITTED entries of one campaign created strictly after
// After (when set), oldest first.
type EntryPage struct {
	CampaignID string
	After      *time.Time
	Limit      int
}

type SubmissionRepository interface {
	ListEntries(ctx context.Context, page EntryPage) ([]models.Entry, error)
	// Review applies review to the submission only while it is SUBMITTED.
	// Any other state reports ErrNotFound.
	Review(ctx context.Context, id string, review models.TaskReview) (*models.Submission, error)
}
