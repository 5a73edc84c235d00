package cart

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mavazidev/mavazi-backend/pkg/db/models"
)

// Repository persists purchases across their whole lifecycle: cart line,
// settled order line, delivered line.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// Create inserts a fresh cart line.
func (r *Repository) Create(ctx context.Context, purchase *models.Purchase) error {
	return r.db.WithContext(ctx).Create(purchase).Error
}

// FindByID loads one purchase with its product.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Purchase, error) {
	var purchase models.Purchase
	if err := r.db.WithContext(ctx).
		Preload("Product").
		First(&purchase, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &purchase, nil
}

// List returns every purchase, newest last, with products preloaded.
func (r *Repository) List(ctx context.Context) ([]models.Purchase, error) {
	var purchases []models.Purchase
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Order("created_at ASC").
		Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

// ListBasket returns the customer's unsettled cart lines.
func (r *Repository) ListBasket(ctx context.Context, customerID uuid.UUID) ([]models.Purchase, error) {
	var purchases []models.Purchase
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("customer_id = ? AND package_id IS NULL", customerID).
		Order("created_at ASC").
		Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

// ListByCustomer returns every purchase the customer ever made.
func (r *Repository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Purchase, error) {
	var purchases []models.Purchase
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("customer_id = ?", customerID).
		Order("created_at ASC").
		Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

// ListByProduct returns the purchases of one product with buyers attached.
func (r *Repository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]models.Purchase, error) {
	var purchases []models.Purchase
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("product_id = ?", productID).
		Order("created_at ASC").
		Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

// ListSoldByVendor returns the settled purchases of the vendor's products.
func (r *Repository) ListSoldByVendor(ctx context.Context, vendorID uuid.UUID) ([]models.Purchase, error) {
	var purchases []models.Purchase
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Joins("JOIN products pr ON pr.id = purchases.product_id").
		Where("pr.vendor_id = ? AND purchases.package_id IS NOT NULL", vendorID).
		Order("purchases.created_at ASC").
		Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

// FindForSettlement loads the batch with products attached. Callers must
// verify every requested id came back.
func (r *Repository) FindForSettlement(ctx context.Context, ids []uuid.UUID) ([]models.Purchase, error) {
	var purchases []models.Purchase
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("id IN ?", ids).
		Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

// MarkSettled stamps the batch with its pickup vendor and package id. The
// package_id IS NULL guard makes a second settlement of the same line a
// no-op, which the affected-rows count exposes to the caller.
func (r *Repository) MarkSettled(ctx context.Context, ids []uuid.UUID, pickupVendorID, packageID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Purchase{}).
		Where("id IN ? AND package_id IS NULL", ids).
		Updates(map[string]any{
			"pickup_vendor_id": pickupVendorID,
			"package_id":       packageID,
		})
	return res.RowsAffected, res.Error
}

// MarkDelivered flips the delivered flag on one settled, undelivered line.
func (r *Repository) MarkDelivered(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Purchase{}).
		Where("id = ? AND package_id IS NOT NULL AND delivered = ?", id, false).
		UpdateColumn("delivered", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
