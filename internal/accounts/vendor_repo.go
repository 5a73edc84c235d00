package accounts

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mavazidev/mavazi-backend/pkg/db/models"
)

// VendorRepository manages persistence for vendor accounts.
type VendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository builds a repository tied to the provided GORM DB.
func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *VendorRepository) WithTx(tx *gorm.DB) *VendorRepository {
	if tx == nil {
		return r
	}
	return &VendorRepository{db: tx}
}

func (r *VendorRepository) Create(ctx context.Context, vendor *models.Vendor) error {
	return r.db.WithContext(ctx).Create(vendor).Error
}

func (r *VendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := r.db.WithContext(ctx).First(&vendor, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *VendorRepository) List(ctx context.Context) ([]models.Vendor, error) {
	var vendors []models.Vendor
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

// CreditEscrow atomically adds amountCents to the vendor's escrow.
func (r *VendorRepository) CreditEscrow(ctx context.Context, id uuid.UUID, amountCents int64) error {
	res := r.db.WithContext(ctx).
		Model(&models.Vendor{}).
		Where("id = ?", id).
		UpdateColumn("escrow_cents", gorm.Expr("escrow_cents + ?", amountCents))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReleaseEscrow atomically moves amountCents from escrow into the spendable
// balance. It reports false when escrow holds less than the requested amount;
// nothing is changed in that case.
func (r *VendorRepository) ReleaseEscrow(ctx context.Context, id uuid.UUID, amountCents int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Vendor{}).
		Where("id = ? AND escrow_cents >= ?", id, amountCents).
		UpdateColumns(map[string]any{
			"escrow_cents":          gorm.Expr("escrow_cents - ?", amountCents),
			"account_balance_cents": gorm.Expr("account_balance_cents + ?", amountCents),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
