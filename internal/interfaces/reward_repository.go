package interfaces

import (
	"context"
	"encoding/json"

	"campaignadmin/internal/models"
)

type RewardRepository interface {
	Create(ctx context.Context, reward *models.Reward) error
	// Merge overlays the top-level keys of payload onto the stored payload.
	Merge(ctx context.Context, id string, updatedBy string, payload json.RawMessage) (*models.Reward, error)
}

type AdminRepository interface {
	GetID(ctx context.Context, id string) (string, error)
}
