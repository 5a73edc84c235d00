package accounts

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
	"github.com/mavazidev/mavazi-backend/pkg/enums"
	pkgerrors "github.com/mavazidev/mavazi-backend/pkg/errors"
)

func setupAccountsTestDB(t *testing.T) *gorm.DB {
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
		`CREATE TABLE admins (
  id TEXT PRIMARY KEY,
  username TEXT NOT NULL UNIQUE,
  first_name TEXT NOT NULL,
  last_name TEXT NOT NULL,
  email TEXT,
  phone_number TEXT,
  photo TEXT,
  account_balance_cents INTEGER NOT NULL DEFAULT 0,
  monthly_reports INTEGER NOT NULL DEFAULT 0,
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
		`CREATE TABLE customer_subscriptions (
  customer_id TEXT NOT NULL,
  vendor_id TEXT NOT NULL,
  created_at DATETIME,
  PRIMARY KEY (customer_id, vendor_id)
);`,
		`CREATE TABLE starred_products (
  customer_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  created_at DATETIME,
  PRIMARY KEY (customer_id, product_id)
);`,
	}
	for _, stmt := range statements {
		require.NoError(t, conn.Exec(stmt).Error)
	}
	return conn
}

func newAccountsService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	conn := setupAccountsTestDB(t)
	svc, err := NewService(ServiceParams{
		CustomerRepo: NewCustomerRepository(conn),
		VendorRepo:   NewVendorRepository(conn),
		AdminRepo:    NewAdminRepository(conn),
	})
	require.NoError(t, err)
	return svc, conn
}

func TestCreateCustomer(t *testing.T) {
	svc, _ := newAccountsService(t)

	customer, err := svc.CreateCustomer(context.Background(), CreateCustomerInput{
		PhoneNumber: "0712345678",
		Name:        "Amina",
		Gender:      "FEMALE",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, customer.ID)
	assert.Equal(t, enums.GenderFemale, customer.Gender)
	assert.Equal(t, int64(0), customer.AccountBalanceCents)

	loaded, err := svc.GetCustomer(context.Background(), customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Amina", loaded.Name)
}

func TestCreateCustomerRejectsBadGender(t *testing.T) {
	svc, _ := newAccountsService(t)

	_, err := svc.CreateCustomer(context.Background(), CreateCustomerInput{
		PhoneNumber: "0712345678",
		Name:        "Amina",
		Gender:      "OTHER",
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestGetCustomerNotFound(t *testing.T) {
	svc, _ := newAccountsService(t)

	_, err := svc.GetCustomer(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestCreateVendorAndList(t *testing.T) {
	svc, _ := newAccountsService(t)

	vendor, err := svc.CreateVendor(context.Background(), CreateVendorInput{
		StallName:   "Mama Ida Fashions",
		Description: "Second hand jackets and coats",
		PhoneNumber: "0798765432",
		IDNumber:    "12345678",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), vendor.EscrowCents)

	vendors, err := svc.ListVendors(context.Background())
	require.NoError(t, err)
	require.Len(t, vendors, 1)
	assert.Equal(t, "Mama Ida Fashions", vendors[0].StallName)
}

func TestCreditEscrowAccumulates(t *testing.T) {
	_, conn := newAccountsService(t)
	repo := NewVendorRepository(conn)

	vendor := &models.Vendor{
		ID:          uuid.New(),
		StallName:   "Mama Ida Fashions",
		PhoneNumber: "0798765432",
	}
	require.NoError(t, conn.Create(vendor).Error)

	ctx := context.Background()
	require.NoError(t, repo.CreditEscrow(ctx, vendor.ID, 285))
	require.NoError(t, repo.CreditEscrow(ctx, vendor.ID, 140))

	// each credit adds to the running escrow, the second never overwrites the first
	got, err := repo.FindByID(ctx, vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(425), got.EscrowCents)

	require.ErrorIs(t, repo.CreditEscrow(ctx, uuid.New(), 10), gorm.ErrRecordNotFound)
}

func TestCreateAdminDuplicateUsername(t *testing.T) {
	svc, _ := newAccountsService(t)

	_, err := svc.CreateAdmin(context.Background(), CreateAdminInput{
		Username:  "otieno",
		FirstName: "Brian",
		LastName:  "Otieno",
	})
	require.NoError(t, err)

	_, err = svc.CreateAdmin(context.Background(), CreateAdminInput{
		Username:  "otieno",
		FirstName: "Beryl",
		LastName:  "Otieno",
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeConflict, pkgerrors.As(err).Code())
}

func TestListSubscribers(t *testing.T) {
	svc, conn := newAccountsService(t)

	customer, err := svc.CreateCustomer(context.Background(), CreateCustomerInput{
		PhoneNumber: "0712345678",
		Name:        "Amina",
	})
	require.NoError(t, err)
	vendor, err := svc.CreateVendor(context.Background(), CreateVendorInput{
		StallName:   "Corner Stall",
		Description: "Shoes",
		PhoneNumber: "0798765432",
		IDNumber:    "87654321",
	})
	require.NoError(t, err)

	require.NoError(t, conn.Create(&models.CustomerSubscription{
		CustomerID: customer.ID,
		VendorID:   vendor.ID,
	}).Error)

	subscribers, err := svc.ListSubscribers(context.Background(), vendor.ID)
	require.NoError(t, err)
	require.Len(t, subscribers, 1)
	assert.Equal(t, customer.ID, subscribers[0].ID)

	none, err := svc.ListSubscribers(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetCustomerLoadsRelations(t *testing.T) {
	svc, conn := newAccountsService(t)

	customer, err := svc.CreateCustomer(context.Background(), CreateCustomerInput{
		PhoneNumber: "0712345678",
		Name:        "Amina",
	})
	require.NoError(t, err)
	vendor, err := svc.CreateVendor(context.Background(), CreateVendorInput{
		StallName:   "Corner Stall",
		Description: "Shoes",
		PhoneNumber: "0798765432",
		IDNumber:    "87654321",
	})
	require.NoError(t, err)

	product := &models.Product{
		ID: uuid.New(), VendorID: vendor.ID, Name: "Sneakers",
		Gender: "UNISEX", Category: "SNEAKERS", PriceCents: 4500,
	}
	require.NoError(t, conn.Create(product).Error)
	require.NoError(t, conn.Create(&models.StarredProduct{CustomerID: customer.ID, ProductID: product.ID}).Error)
	require.NoError(t, conn.Create(&models.CustomerSubscription{CustomerID: customer.ID, VendorID: vendor.ID}).Error)

	loaded, err := svc.GetCustomer(context.Background(), customer.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Starred, 1)
	assert.Equal(t, product.ID, loaded.Starred[0].ID)
	require.Len(t, loaded.Subscriptions, 1)
	assert.Equal(t, vendor.ID, loaded.Subscriptions[0].ID)
}
