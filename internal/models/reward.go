package models

import (
	"encoding/json"
	"time"
)

// Reward payloads are opaque JSON objects owned by the rewards UI.
type Reward struct {
	ID        string          `json:"id" db:"id"`
	Payload   json.RawMessage `json:"payload" db:"payload"`
	CreatedBy string          `json:"createdBy" db:"created_by"`
	UpdatedBy string          `json:"updatedBy" db:"updated_by"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time       `json:"updatedAt" db:"updated_at"`
}
