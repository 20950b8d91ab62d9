package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaignadmin/internal/interfaces"
	"campaignadmin/internal/models"
)

func TestListEntriesAfterCursor(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubmissionRepository(db)

	cursor := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM user_tasks\s+WHERE campaign_id = \$1 AND status = \$2 AND created_at > \$3 ORDER BY created_at ASC, id ASC LIMIT \$4`).
		WithArgs("c1", "SUBMITTED", cursor, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "location_nm", "photo_id", "created_at"}).
			AddRow("s1", "Mall", "p1", cursor.Add(time.Hour)).
			AddRow("s2", "Park", "p2", cursor.Add(2*time.Hour)))

	entries, err := repo.ListEntries(context.Background(), interfaces.EntryPage{CampaignID: "c1", After: &cursor, Limit: 10})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "s1", entries[0].ID)
	assert.Equal(t, "Park", entries[1].LocationNm)
}

func TestListEntriesWithoutCursor(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubmissionRepository(db)

	mock.ExpectQuery(`WHERE campaign_id = \$1 AND status = \$2 ORDER BY created_at ASC, id ASC LIMIT \$3`).
		WithArgs("c1", "SUBMITTED", 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "location_nm", "photo_id", "created_at"}))

	entries, err := repo.ListEntries(context.Background(), interfaces.EntryPage{CampaignID: "c1", Limit: 10})
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

var submissionCols = []string{
	"id", "user_id", "campaign_id", "location_nm", "status", "photo_id", "remarks",
	"reviewed_by", "created_at", "updated_at",
}

func TestReviewOnlyMatchesSubmitted(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubmissionRepository(db)

	now := time.Now().UTC()
	remarks := "looks good"
	review := models.TaskReview{Status: models.SubmissionStatusApproved, Remarks: &remarks, ReviewedBy: "a1"}

	mock.ExpectQuery(`UPDATE user_tasks[\s\S]+WHERE id = \$4 AND status = \$5`).
		WithArgs("APPROVED", "looks good", "a1", "s1", "SUBMITTED").
		WillReturnRows(sqlmock.NewRows(submissionCols).
			AddRow("s1", "u1", "c1", "Mall", "APPROVED", "p1", "looks good", "a1", now, now))
	mock.ExpectQuery(`UPDATE user_tasks`).
		WithArgs("APPROVED", "looks good", "a1", "s1", "SUBMITTED").
		WillReturnRows(sqlmock.NewRows(submissionCols))

	got, err := repo.Review(context.Background(), "s1", review)
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionStatusApproved, got.Status)
	require.NotNil(t, got.ReviewedBy)
	assert.Equal(t, "a1", *got.ReviewedBy)

	_, err = repo.Review(context.Background(), "s1", review)
	assert.True(t, errors.Is(err, interfaces.ErrNotFound))
}

func TestReviewApprovalCountsEntryInTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubmissionRepository(db)

	now := time.Now().UTC()
	review := models.TaskReview{Status: models.SubmissionStatusApproved, ReviewedBy: "a1", CountEntry: true}

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE user_tasks[\s\S]+WHERE id = \$4 AND status = \$5`).
		WithArgs("APPROVED", nil, "a1", "s1", "SUBMITTED").
		WillReturnRows(sqlmock.NewRows(submissionCols).
			AddRow("s1", "u1", "c1", "Mall", "APPROVED", "p1", "", "a1", now, now))
	mock.ExpectExec(`UPDATE campaigns SET no_of_entries = no_of_entries \+ 1, updated_at = NOW\(\) WHERE id = \$1`).
		WithArgs("c1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := repo.Review(context.Background(), "s1", review)
	require.NoError(t, err)
	assert.Equal(t, "c1", got.CampaignID)
}

func TestReviewApprovalOrphanCampaignRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubmissionRepository(db)

	now := time.Now().UTC()
	review := models.TaskReview{Status: models.SubmissionStatusApproved, ReviewedBy: "a1", CountEntry: true}

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE user_tasks`).
		WillReturnRows(sqlmock.NewRows(submissionCols).
			AddRow("s1", "u1", "gone", "Mall", "APPROVED", "p1", "", "a1", now, now))
	mock.ExpectExec(`UPDATE campaigns SET no_of_entries`).
		WithArgs("gone").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.Review(context.Background(), "s1", review)
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestReviewRejectionSkipsTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubmissionRepository(db)

	now := time.Now().UTC()
	review := models.TaskReview{Status: models.SubmissionStatusRejected, ReviewedBy: "a1", CountEntry: true}

	mock.ExpectQuery(`UPDATE user_tasks`).
		WithArgs("REJECTED", nil, "a1", "s1", "SUBMITTED").
		WillReturnRows(sqlmock.NewRows(submissionCols).
			AddRow("s1", "u1", "c1", "Mall", "REJECTED", "p1", "", "a1", now, now))

	got, err := repo.Review(context.Background(), "s1", review)
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionStatusRejected, got.Status)
}
