package social

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mavazidev/mavazi-backend/internal/accounts"
	"github.com/mavazidev/mavazi-backend/internal/catalog"
	"github.com/mavazidev/mavazi-backend/pkg/db/models"
	pkgerrors "github.com/mavazidev/mavazi-backend/pkg/errors"
)

// Service covers the engagement mutations: subscribing to a vendor, starring
// a product, and liking a product. All three are idempotent set inserts.
type Service interface {
	Subscribe(ctx context.Context, customerID, vendorID uuid.UUID) (*models.Customer, error)
	Star(ctx context.Context, customerID, productID uuid.UUID) (*models.Customer, error)
	Like(ctx context.Context, customerID, productID uuid.UUID) (*models.Product, error)
}

// ServiceParams groups dependencies for the social service.
type ServiceParams struct {
	Customers *accounts.CustomerRepository
	Vendors   *accounts.VendorRepository
	Products  *catalog.Repository
}

type service struct {
	customers *accounts.CustomerRepository
	vendors   *accounts.VendorRepository
	products  *catalog.Repository
}

func NewService(params ServiceParams) (Service, error) {
	if params.Customers == nil || params.Vendors == nil || params.Products == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer, vendor, and product repos are required")
	}
	return &service{
		customers: params.Customers,
		vendors:   params.Vendors,
		products:  params.Products,
	}, nil
}

func (s *service) Subscribe(ctx context.Context, customerID, vendorID uuid.UUID) (*models.Customer, error) {
	if _, err := s.vendors.FindByID(ctx, vendorID); err != nil {
		return nil, mapNotFound(err, "vendor not found")
	}
	if _, err := s.customers.FindByID(ctx, customerID); err != nil {
		return nil, mapNotFound(err, "customer not found")
	}
	if err := s.customers.AddSubscription(ctx, customerID, vendorID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save subscription")
	}
	return s.reloadCustomer(ctx, customerID)
}

func (s *service) Star(ctx context.Context, customerID, productID uuid.UUID) (*models.Customer, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, mapNotFound(err, "product not found")
	}
	if _, err := s.customers.FindByID(ctx, customerID); err != nil {
		return nil, mapNotFound(err, "customer not found")
	}
	if err := s.customers.AddStarred(ctx, customerID, productID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save star")
	}
	return s.reloadCustomer(ctx, customerID)
}

func (s *service) Like(ctx context.Context, customerID, productID uuid.UUID) (*models.Product, error) {
	if _, err := s.customers.FindByID(ctx, customerID); err != nil {
		return nil, mapNotFound(err, "customer not found")
	}
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, mapNotFound(err, "product not found")
	}
	if err := s.products.AddLike(ctx, productID, customerID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save like")
	}
	return product, nil
}

func (s *service) reloadCustomer(ctx context.Context, customerID uuid.UUID) (*models.Customer, error) {
	customer, err := s.customers.FindByIDWithRelations(ctx, customerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload customer")
	}
	return customer, nil
}

func mapNotFound(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, message)
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, message)
}
