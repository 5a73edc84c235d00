package reviews

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mavazidev/mavazi-backend/pkg/db/models"
	pkgerrors "github.com/mavazidev/mavazi-backend/pkg/errors"
)

// Repository persists product reviews.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *Repository) List(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Customer").
		Order("created_at ASC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// ListByProduct returns the reviews left on one product.
func (r *Repository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("product_id = ?", productID).
		Order("created_at ASC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// AddReviewInput carries a new review.
type AddReviewInput struct {
	ProductID  string `json:"product" validate:"required,uuid"`
	CustomerID string `json:"customer" validate:"required,uuid"`
	Message    string `json:"message" validate:"required"`
}

// CustomerChecker verifies the reviewing customer exists.
type CustomerChecker interface {
	GetCustomer(ctx context.Context, id uuid.UUID) (*models.Customer, error)
}

// ProductChecker verifies the reviewed product exists.
type ProductChecker interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// Service manages product reviews.
type Service interface {
	AddReview(ctx context.Context, input AddReviewInput) (*models.Review, error)
	ListReviews(ctx context.Context) ([]models.Review, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]models.Review, error)
}

// ServiceParams groups dependencies for the reviews service.
type ServiceParams struct {
	Repo      *Repository
	Customers CustomerChecker
	Products  ProductChecker
}

type service struct {
	repo      *Repository
	customers CustomerChecker
	products  ProductChecker
}

func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "reviews repo is required")
	}
	if params.Customers == nil || params.Products == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer and product checkers are required")
	}
	return &service{
		repo:      params.Repo,
		customers: params.Customers,
		products:  params.Products,
	}, nil
}

func (s *service) AddReview(ctx context.Context, input AddReviewInput) (*models.Review, error) {
	productID, err := uuid.Parse(input.ProductID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id")
	}
	customerID, err := uuid.Parse(input.CustomerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid customer id")
	}
	if input.Message == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "review message is required")
	}
	if _, err := s.products.GetProduct(ctx, productID); err != nil {
		return nil, err
	}
	customer, err := s.customers.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	review := &models.Review{
		ID:         uuid.New(),
		ProductID:  productID,
		CustomerID: customerID,
		Message:    input.Message,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create review")
	}
	review.Customer = customer
	return review, nil
}

func (s *service) ListReviews(ctx context.Context) ([]models.Review, error) {
	reviews, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list reviews")
	}
	return reviews, nil
}

func (s *service) ListByProduct(ctx context.Context, productID uuid.UUID) ([]models.Review, error) {
	reviews, err := s.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list product reviews")
	}
	return reviews, nil
}
