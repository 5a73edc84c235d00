package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mavazidev/mavazi-backend/pkg/db/models"
	pkgerrors "github.com/mavazidev/mavazi-backend/pkg/errors"
)

// CustomerChecker verifies the buying customer exists.
type CustomerChecker interface {
	GetCustomer(ctx context.Context, id uuid.UUID) (*models.Customer, error)
}

// ProductReader resolves the product a cart line points at.
type ProductReader interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// ServiceParams groups dependencies for the cart service.
type ServiceParams struct {
	Repo      *Repository
	Customers CustomerChecker
	Products  ProductReader
}

// Service manages the pre-settlement basket.
type Service interface {
	AddToCart(ctx context.Context, input AddToCartInput) (*models.Purchase, error)
	GetPurchase(ctx context.Context, id uuid.UUID) (*models.Purchase, error)
	ListPurchases(ctx context.Context) ([]models.Purchase, error)
	ListBasket(ctx context.Context, customerID uuid.UUID) ([]models.Purchase, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Purchase, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]models.Purchase, error)
	ListSoldByVendor(ctx context.Context, vendorID uuid.UUID) ([]models.Purchase, error)
}

type service struct {
	repo      *Repository
	customers CustomerChecker
	products  ProductReader
}

func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart repo is required")
	}
	if params.Customers == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer checker is required")
	}
	if params.Products == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product reader is required")
	}
	return &service{
		repo:      params.Repo,
		customers: params.Customers,
		products:  params.Products,
	}, nil
}

// AddToCart records an unsettled purchase line. It does not reserve stock;
// availability and funds are only checked at settlement.
func (s *service) AddToCart(ctx context.Context, input AddToCartInput) (*models.Purchase, error) {
	customerID, err := uuid.Parse(input.CustomerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid customer id")
	}
	productID, err := uuid.Parse(input.ProductID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id")
	}
	if _, err := s.customers.GetCustomer(ctx, customerID); err != nil {
		return nil, err
	}
	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if !hasSize(product, input.Size) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product does not carry that size").
			WithDetails(map[string]any{"product_id": productID, "size": input.Size})
	}

	qty := input.Quantity
	if qty == 0 {
		qty = 1
	}
	if qty < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	purchase := &models.Purchase{
		ID:         uuid.New(),
		ProductID:  productID,
		CustomerID: customerID,
		Quantity:   qty,
		Size:       input.Size,
	}
	if err := s.repo.Create(ctx, purchase); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create purchase")
	}
	purchase.Product = product
	return purchase, nil
}

func (s *service) GetPurchase(ctx context.Context, id uuid.UUID) (*models.Purchase, error) {
	purchase, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "purchase not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load purchase")
	}
	return purchase, nil
}

func (s *service) ListPurchases(ctx context.Context) ([]models.Purchase, error) {
	purchases, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list purchases")
	}
	return purchases, nil
}

func (s *service) ListBasket(ctx context.Context, customerID uuid.UUID) ([]models.Purchase, error) {
	purchases, err := s.repo.ListBasket(ctx, customerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list basket")
	}
	return purchases, nil
}

func (s *service) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Purchase, error) {
	purchases, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list customer purchases")
	}
	return purchases, nil
}

func (s *service) ListByProduct(ctx context.Context, productID uuid.UUID) ([]models.Purchase, error) {
	purchases, err := s.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list product purchases")
	}
	return purchases, nil
}

func (s *service) ListSoldByVendor(ctx context.Context, vendorID uuid.UUID) ([]models.Purchase, error) {
	purchases, err := s.repo.ListSoldByVendor(ctx, vendorID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list vendor sales")
	}
	return purchases, nil
}

func hasSize(product *models.Product, size string) bool {
	for _, row := range product.Sizes {
		if row.Size == size {
			return true
		}
	}
	return false
}
