package cart

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mavazidev/mavazi-backend/pkg/db/models"
	pkgerrors "github.com/mavazidev/mavazi-backend/pkg/errors"
)

func setupCartTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	statements := []string{
		`CREATE TABLE customers (
  id TEXT PRIMARY KEY,
  phone_number TEXT NOT NULL,
  name TEXT NOT NULL,
  gender TEXT,
  account_balance_cents INTEGER NOT NULL DEFAULT 0,
  photo TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE vendors (
  id TEXT PRIMARY KEY,
  stall_name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  photo TEXT,
  phone_number TEXT NOT NULL,
  id_number TEXT NOT NULL DEFAULT '',
  account_balance_cents INTEGER NOT NULL DEFAULT 0,
  escrow_cents INTEGER NOT NULL DEFAULT 0,
  ratings TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE products (
  id TEXT PRIMARY KEY,
  vendor_id TEXT NOT NULL,
  name TEXT NOT NULL,
  gender TEXT NOT NULL,
  category TEXT NOT NULL,
  price_cents INTEGER NOT NULL,
  description TEXT,
  photos TEXT,
  keywords TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE product_sizes (
  product_id TEXT NOT NULL,
  size TEXT NOT NULL,
  quantity INTEGER NOT NULL DEFAULT 0,
  updated_at DATETIME,
  PRIMARY KEY (product_id, size)
);`,
		`CREATE TABLE purchases (
  id TEXT PRIMARY KEY,
  product_id TEXT NOT NULL,
  customer_id TEXT NOT NULL,
  quantity INTEGER NOT NULL DEFAULT 1,
  size TEXT NOT NULL,
  pickup_vendor_id TEXT,
  package_id TEXT,
  delivered INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`,
	}
	for _, stmt := range statements {
		require.NoError(t, conn.Exec(stmt).Error)
	}
	return conn
}

type stubCustomerCheck struct {
	customer *models.Customer
}

func (s *stubCustomerCheck) GetCustomer(_ context.Context, id uuid.UUID) (*models.Customer, error) {
	if s.customer != nil && s.customer.ID == id {
		return s.customer, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
}

type stubProductRead struct {
	product *models.Product
}

func (s *stubProductRead) GetProduct(_ context.Context, id uuid.UUID) (*models.Product, error) {
	if s.product != nil && s.product.ID == id {
		return s.product, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

type cartFixture struct {
	svc      Service
	repo     *Repository
	conn     *gorm.DB
	customer *models.Customer
	product  *models.Product
}

func newCartFixture(t *testing.T) *cartFixture {
	t.Helper()

	conn := setupCartTestDB(t)
	customer := &models.Customer{ID: uuid.New(), PhoneNumber: "0712345678", Name: "Amina"}
	require.NoError(t, conn.Create(customer).Error)

	vendor := &models.Vendor{ID: uuid.New(), StallName: "Corner Stall", PhoneNumber: "0798765432"}
	require.NoError(t, conn.Create(vendor).Error)

	product := &models.Product{
		ID: uuid.New(), VendorID: vendor.ID, Name: "Hoodie",
		Gender: "UNISEX", Category: "HOODIES", PriceCents: 2200,
		Sizes: []models.ProductSize{{Size: "M", Quantity: 5}},
	}
	require.NoError(t, conn.Create(product).Error)

	repo := NewRepository(conn)
	svc, err := NewService(ServiceParams{
		Repo:      repo,
		Customers: &stubCustomerCheck{customer: customer},
		Products:  &stubProductRead{product: product},
	})
	require.NoError(t, err)

	return &cartFixture{svc: svc, repo: repo, conn: conn, customer: customer, product: product}
}

func TestAddToCart(t *testing.T) {
	f := newCartFixture(t)

	purchase, err := f.svc.AddToCart(context.Background(), AddToCartInput{
		CustomerID: f.customer.ID.String(),
		ProductID:  f.product.ID.String(),
		Size:       "M",
		Quantity:   2,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, purchase.Quantity)
	assert.False(t, purchase.Settled())
	assert.Nil(t, purchase.PickupVendorID)

	// adding to the basket must not touch stock
	var row models.ProductSize
	require.NoError(t, f.conn.First(&row, "product_id = ? AND size = ?", f.product.ID, "M").Error)
	assert.Equal(t, 5, row.Quantity)
}

func TestAddToCartDefaultsQuantity(t *testing.T) {
	f := newCartFixture(t)

	purchase, err := f.svc.AddToCart(context.Background(), AddToCartInput{
		CustomerID: f.customer.ID.String(),
		ProductID:  f.product.ID.String(),
		Size:       "M",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, purchase.Quantity)
}

func TestAddToCartRejectsUnknownSize(t *testing.T) {
	f := newCartFixture(t)

	_, err := f.svc.AddToCart(context.Background(), AddToCartInput{
		CustomerID: f.customer.ID.String(),
		ProductID:  f.product.ID.String(),
		Size:       "XXL",
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestAddToCartUnknownCustomer(t *testing.T) {
	f := newCartFixture(t)

	_, err := f.svc.AddToCart(context.Background(), AddToCartInput{
		CustomerID: uuid.NewString(),
		ProductID:  f.product.ID.String(),
		Size:       "M",
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestAddToCartUnknownProduct(t *testing.T) {
	f := newCartFixture(t)

	_, err := f.svc.AddToCart(context.Background(), AddToCartInput{
		CustomerID: f.customer.ID.String(),
		ProductID:  uuid.NewString(),
		Size:       "M",
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestListBasketOnlyUnsettled(t *testing.T) {
	f := newCartFixture(t)

	open, err := f.svc.AddToCart(context.Background(), AddToCartInput{
		CustomerID: f.customer.ID.String(),
		ProductID:  f.product.ID.String(),
		Size:       "M",
	})
	require.NoError(t, err)

	// a settled line carries a package id and leaves the basket
	pkg := uuid.New()
	settled := &models.Purchase{
		ID: uuid.New(), ProductID: f.product.ID, CustomerID: f.customer.ID,
		Quantity: 1, Size: "M", PackageID: &pkg,
	}
	require.NoError(t, f.conn.Create(settled).Error)

	basket, err := f.svc.ListBasket(context.Background(), f.customer.ID)
	require.NoError(t, err)
	require.Len(t, basket, 1)
	assert.Equal(t, open.ID, basket[0].ID)

	all, err := f.svc.ListByCustomer(context.Background(), f.customer.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMarkSettledSkipsAlreadyStamped(t *testing.T) {
	f := newCartFixture(t)

	fresh := &models.Purchase{
		ID: uuid.New(), ProductID: f.product.ID, CustomerID: f.customer.ID,
		Quantity: 1, Size: "M",
	}
	require.NoError(t, f.conn.Create(fresh).Error)

	pkg := uuid.New()
	stamped := &models.Purchase{
		ID: uuid.New(), ProductID: f.product.ID, CustomerID: f.customer.ID,
		Quantity: 1, Size: "M", PackageID: &pkg,
	}
	require.NoError(t, f.conn.Create(stamped).Error)

	ids := []uuid.UUID{fresh.ID, stamped.ID}
	affected, err := f.repo.MarkSettled(context.Background(), ids, f.product.VendorID, uuid.New())
	require.NoError(t, err)

	// only the fresh line takes the stamp; the caller detects the shortfall
	assert.Equal(t, int64(1), affected)
}

func TestMarkDeliveredRequiresSettlement(t *testing.T) {
	f := newCartFixture(t)

	fresh := &models.Purchase{
		ID: uuid.New(), ProductID: f.product.ID, CustomerID: f.customer.ID,
		Quantity: 1, Size: "M",
	}
	require.NoError(t, f.conn.Create(fresh).Error)

	flipped, err := f.repo.MarkDelivered(context.Background(), fresh.ID)
	require.NoError(t, err)
	assert.False(t, flipped)

	pkg := uuid.New()
	require.NoError(t, f.conn.Model(&models.Purchase{}).
		Where("id = ?", fresh.ID).
		Update("package_id", pkg).Error)

	flipped, err = f.repo.MarkDelivered(context.Background(), fresh.ID)
	require.NoError(t, err)
	assert.True(t, flipped)

	// a second flip refuses
	flipped, err = f.repo.MarkDelivered(context.Background(), fresh.ID)
	require.NoError(t, err)
	assert.False(t, flipped)
}

func TestGetPurchaseNotFound(t *testing.T) {
	f := newCartFixture(t)

	_, err := f.svc.GetPurchase(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}
