package accounts

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mavazidev/mavazi-backend/pkg/db/models"
)

// CustomerRepository manages persistence for customer accounts.
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository builds a repository tied to the provided GORM DB.
func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *CustomerRepository) WithTx(tx *gorm.DB) *CustomerRepository {
	if tx == nil {
		return r
	}
	return &CustomerRepository{db: tx}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

// FindByID loads the customer without associations.
func (r *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// FindByIDWithRelations loads the customer with starred products and subscriptions.
func (r *CustomerRepository) FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).
		Preload("Starred").
		Preload("Subscriptions").
		First(&customer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.WithContext(ctx).
		Preload("Starred").
		Preload("Subscriptions").
		Order("created_at ASC").
		Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// DebitBalance atomically subtracts amountCents from the customer's balance.
// It reports false when the account lacks sufficient funds; no row is changed
// in that case.
func (r *CustomerRepository) DebitBalance(ctx context.Context, id uuid.UUID, amountCents int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ? AND account_balance_cents >= ?", id, amountCents).
		UpdateColumn("account_balance_cents", gorm.Expr("account_balance_cents - ?", amountCents))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// CreditBalance atomically adds amountCents to the customer's balance.
func (r *CustomerRepository) CreditBalance(ctx context.Context, id uuid.UUID, amountCents int64) error {
	res := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ?", id).
		UpdateColumn("account_balance_cents", gorm.Expr("account_balance_cents + ?", amountCents))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AddSubscription records that the customer follows the vendor. Inserting the
// same pair twice is a no-op.
func (r *CustomerRepository) AddSubscription(ctx context.Context, customerID, vendorID uuid.UUID) error {
	sub := models.CustomerSubscription{CustomerID: customerID, VendorID: vendorID}
	return r.db.WithContext(ctx).
		Where("customer_id = ? AND vendor_id = ?", customerID, vendorID).
		FirstOrCreate(&sub).Error
}

// AddStarred saves the product onto the customer's wishlist. Idempotent.
func (r *CustomerRepository) AddStarred(ctx context.Context, customerID, productID uuid.UUID) error {
	star := models.StarredProduct{CustomerID: customerID, ProductID: productID}
	return r.db.WithContext(ctx).
		Where("customer_id = ? AND product_id = ?", customerID, productID).
		FirstOrCreate(&star).Error
}

// ListSubscribers returns the customers following the given vendor.
func (r *CustomerRepository) ListSubscribers(ctx context.Context, vendorID uuid.UUID) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.WithContext(ctx).
		Joins("JOIN customer_subscriptions cs ON cs.customer_id = customers.id").
		Where("cs.vendor_id = ?", vendorID).
		Order("customers.created_at ASC").
		Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}
