package accounts

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mavazidev/mavazi-backend/pkg/db"
	"github.com/mavazidev/mavazi-backend/pkg/db/models"
	"github.com/mavazidev/mavazi-backend/pkg/enums"
	pkgerrors "github.com/mavazidev/mavazi-backend/pkg/errors"
)

// ServiceParams groups dependencies for the accounts service.
type ServiceParams struct {
	CustomerRepo *CustomerRepository
	VendorRepo   *VendorRepository
	AdminRepo    *AdminRepository
}

// Service exposes account creation and lookup for every account kind.
type Service interface {
	CreateCustomer(ctx context.Context, input CreateCustomerInput) (*models.Customer, error)
	CreateVendor(ctx context.Context, input CreateVendorInput) (*models.Vendor, error)
	CreateAdmin(ctx context.Context, input CreateAdminInput) (*models.Admin, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	GetVendor(ctx context.Context, id uuid.UUID) (*models.Vendor, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	ListVendors(ctx context.Context) ([]models.Vendor, error)
	ListAdmins(ctx context.Context) ([]models.Admin, error)
	ListSubscribers(ctx context.Context, vendorID uuid.UUID) ([]models.Customer, error)
}

type service struct {
	customers *CustomerRepository
	vendors   *VendorRepository
	admins    *AdminRepository
}

// NewService builds an accounts service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.CustomerRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer repo is required")
	}
	if params.VendorRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor repo is required")
	}
	if params.AdminRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "admin repo is required")
	}
	return &service{
		customers: params.CustomerRepo,
		vendors:   params.VendorRepo,
		admins:    params.AdminRepo,
	}, nil
}

func (s *service) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*models.Customer, error) {
	customer := &models.Customer{
		ID:          uuid.New(),
		PhoneNumber: input.PhoneNumber,
		Name:        input.Name,
	}
	if input.Gender != "" {
		gender, err := enums.ParseGender(input.Gender)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid gender")
		}
		customer.Gender = gender
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create customer")
	}
	return customer, nil
}

func (s *service) CreateVendor(ctx context.Context, input CreateVendorInput) (*models.Vendor, error) {
	vendor := &models.Vendor{
		ID:          uuid.New(),
		StallName:   input.StallName,
		Description: input.Description,
		PhoneNumber: input.PhoneNumber,
		IDNumber:    input.IDNumber,
		Photo:       input.Photo,
	}
	if err := s.vendors.Create(ctx, vendor); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create vendor")
	}
	return vendor, nil
}

func (s *service) CreateAdmin(ctx context.Context, input CreateAdminInput) (*models.Admin, error) {
	admin := &models.Admin{
		ID:          uuid.New(),
		Username:    input.Username,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Photo:       input.Photo,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "username already taken")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create admin")
	}
	return admin, nil
}

func (s *service) GetCustomer(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer id is required")
	}
	customer, err := s.customers.FindByIDWithRelations(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customer")
	}
	return customer, nil
}

func (s *service) GetVendor(ctx context.Context, id uuid.UUID) (*models.Vendor, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor id is required")
	}
	vendor, err := s.vendors.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "vendor not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load vendor")
	}
	return vendor, nil
}

func (s *service) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list customers")
	}
	return customers, nil
}

func (s *service) ListVendors(ctx context.Context) ([]models.Vendor, error) {
	vendors, err := s.vendors.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list vendors")
	}
	return vendors, nil
}

func (s *service) ListAdmins(ctx context.Context) ([]models.Admin, error) {
	admins, err := s.admins.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list admins")
	}
	return admins, nil
}

func (s *service) ListSubscribers(ctx context.Context, vendorID uuid.UUID) ([]models.Customer, error) {
	customers, err := s.customers.ListSubscribers(ctx, vendorID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list subscribers")
	}
	return customers, nil
}

