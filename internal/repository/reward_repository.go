package repository

import (
	"context"
	"encoding/json"

	"github.com/jmoiron/sqlx"

	"campaignadmin/internal/interfaces"
	"campaignadmin/internal/models"
)

const rewardColumns = `id, payload, created_by, updated_by, created_at, updated_at`

type rewardRepository struct {
	db *sqlx.DB
}

func NewRewardRepository(db *sqlx.DB) interfaces.RewardRepository {
	return &rewardRepository{db: db}
}

func (r *rewardRepository) Create(ctx context.Context, reward *models.Reward) error {
	query := `
        INSERT INTO rewards (id, payload, created_by, updated_by)
        VALUES ($1, $2::jsonb, $3, $4)
        RETURNING created_at, updated_at
    `

	err := r.db.QueryRowxContext(ctx, query,
		reward.ID,
		string(reward.Payload),
		reward.CreatedBy,
		reward.UpdatedBy,
	).Scan(&reward.CreatedAt, &reward.UpdatedAt)
	if err != nil {
		return storeError("insert reward", err)
	}
	return nil
}

func (r *rewardRepository) Merge(ctx context.Context, id string, updatedBy string, payload json.RawMessage) (*models.Reward, error) {
	query := `
        UPDATE rewards
        SET payload = payload || $1::jsonb,
            updated_by = $2,
            updated_at = NOW()
        WHERE id = $3
        RETURNING ` + rewardColumns

	var reward models.Reward
	if err := r.db.GetContext(ctx, &reward, query, string(payload), updatedBy, id); err != nil {
		return nil, storeError("update reward", err)
	}
	return &reward, nil
}
