package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mavazidev/mavazi-backend/pkg/db/models"
)

// Repository wires together product, size, and like persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
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

// Create persists the product together with its size rows.
func (r *Repository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// FindByID loads the product with its sizes and owning vendor.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).
		Preload("Sizes").
		Preload("Vendor").
		First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *Repository) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).
		Preload("Sizes").
		Preload("Vendor").
		Order("created_at ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListByVendor returns the vendor's products with sizes, no vendor preload.
func (r *Repository) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).
		Preload("Sizes").
		Where("vendor_id = ?", vendorID).
		Order("created_at ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListPurchasedBy returns products the customer has at least one purchase of.
func (r *Repository) ListPurchasedBy(ctx context.Context, customerID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).
		Preload("Sizes").
		Joins("JOIN purchases p ON p.product_id = products.id").
		Where("p.customer_id = ?", customerID).
		Distinct("products.*").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindSize loads one size row for the product.
func (r *Repository) FindSize(ctx context.Context, productID uuid.UUID, size string) (*models.ProductSize, error) {
	var row models.ProductSize
	if err := r.db.WithContext(ctx).
		First(&row, "product_id = ? AND size = ?", productID, size).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// DecrementStock atomically subtracts qty from the size's remaining quantity.
// It reports false when remaining stock is below qty; nothing changes then.
func (r *Repository) DecrementStock(ctx context.Context, productID uuid.UUID, size string, qty int) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.ProductSize{}).
		Where("product_id = ? AND size = ? AND quantity >= ?", productID, size, qty).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// AddLike records that the customer liked the product. Idempotent.
func (r *Repository) AddLike(ctx context.Context, productID, customerID uuid.UUID) error {
	like := models.ProductLike{ProductID: productID, CustomerID: customerID}
	return r.db.WithContext(ctx).
		Where("product_id = ? AND customer_id = ?", productID, customerID).
		FirstOrCreate(&like).Error
}

// ListLikers returns the customers that liked the product.
func (r *Repository) ListLikers(ctx context.Context, productID uuid.UUID) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.WithContext(ctx).
		Joins("JOIN product_likes pl ON pl.customer_id = customers.id").
		Where("pl.product_id = ?", productID).
		Order("customers.created_at ASC").
		Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}
