package accounts

import (
	"context"

	"gorm.io/gorm"

	"github.com/mavazidev/mavazi-backend/pkg/db/models"
)

// AdminRepository manages persistence for back-office admin accounts.
type AdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository builds a repository tied to the provided GORM DB.
func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *AdminRepository) WithTx(tx *gorm.DB) *AdminRepository {
	if tx == nil {
		return r
	}
	return &AdminRepository{db: tx}
}

func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *AdminRepository) List(ctx context.Context) ([]models.Admin, error) {
	var admins []models.Admin
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}
