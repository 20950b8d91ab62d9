package models

import "time"

type SubmissionStatus string

const (
	SubmissionStatusSubmitted SubmissionStatus = "SUBMITTED"
	SubmissionStatusApproved  SubmissionStatus = "APPROVED"
	SubmissionStatusRejected  SubmissionStatus = "REJECTED"
)

// Submission is a user task attributed to a campaign. Only SUBMITTED
// submissions may change status.
type Submission struct {
	ID         string           `json:"id" db:"id"`
	UserID     string           `json:"userId" db:"user_id"`
	CampaignID string           `json:"campaignId" db:"campaign_id"`
	LocationNm string           `json:"locationNm" db:"location_nm"`
	Status     SubmissionStatus `json:"status" db:"status"`
	PhotoID    string           `json:"photoId" db:"photo_id"`
	Remarks    string           `json:"remarks,omitempty" db:"remarks"`
	ReviewedBy *string          `json:"reviewedBy,omitempty" db:"reviewed_by"`
	CreatedAt  time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time        `json:"updatedAt" db:"updated_at"`
}

// Entry is the slim submission view listed under a campaign.
type Entry struct {
	ID         string    `json:"id" db:"id"`
	LocationNm string    `json:"locationNm" db:"location_nm"`
	PhotoID    string    `json:"photoId" db:"photo_id"`
	PhotoURL   string    `json:"photoUrl,omitempty" db:"-"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

type UpdateTaskRequest struct {
	Status  SubmissionStatus `json:"status" validate:"required,oneof=APPROVED REJECTED"`
	Remarks *string          `json:"remarks,omitempty" validate:"omitempty,max=1000"`
}

// TaskReview is the store-level change applied to a SUBMITTED submission.
// With CountEntry set, an approval also adds one to the campaign's entry
// counter in the same transaction.
type TaskReview struct {
	Status     SubmissionStatus
	Remarks    *string
	ReviewedBy string
	CountEntry bool
}
