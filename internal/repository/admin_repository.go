package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"campaignadmin/internal/interfaces"
)

type adminRepository struct {
	db *sqlx.DB
}

func NewAdminRepository(db *sqlx.DB) interfaces.AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetID(ctx context.Context, id string) (string, error) {
	var adminID string
	if err := r.db.GetContext(ctx, &adminID, `SELECT id FROM admins WHERE id = $1`, id); err != nil {
		return "", storeError("find admin", err)
	}
	return adminID, nil
}
