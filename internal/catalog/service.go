package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/mavazidev/mavazi-backend/pkg/db/models"
	"github.com/mavazidev/mavazi-backend/pkg/enums"
	pkgerrors "github.com/mavazidev/mavazi-backend/pkg/errors"
	"github.com/mavazidev/mavazi-backend/pkg/logger"
	"github.com/mavazidev/mavazi-backend/pkg/redis"
)

const listingCacheKey = "products:all"

// ServiceParams groups dependencies for the catalog service.
type ServiceParams struct {
	Repo        *Repository
	Cache       *redis.Client
	Logger      *logger.Logger
	CacheTTL    time.Duration
	VendorCheck VendorChecker
}

// VendorChecker verifies the owning vendor exists before a listing is created.
type VendorChecker interface {
	GetVendor(ctx context.Context, id uuid.UUID) (*models.Vendor, error)
}

// Service exposes catalog browsing and listing management.
type Service interface {
	AddProduct(ctx context.Context, input CreateProductInput) (*models.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]models.Product, error)
	ListPurchasedBy(ctx context.Context, customerID uuid.UUID) ([]models.Product, error)
	ListLikers(ctx context.Context, productID uuid.UUID) ([]models.Customer, error)
	InvalidateListing(ctx context.Context)
}

type service struct {
	repo     *Repository
	cache    *redis.Client
	logg     *logger.Logger
	cacheTTL time.Duration
	vendors  VendorChecker
}

// NewService builds a catalog service with the required dependencies.
// Cache is optional; when nil the listing always hits the database.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog repo is required")
	}
	if params.VendorCheck == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor checker is required")
	}
	ttl := params.CacheTTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &service{
		repo:     params.Repo,
		cache:    params.Cache,
		logg:     params.Logger,
		cacheTTL: ttl,
		vendors:  params.VendorCheck,
	}, nil
}

func (s *service) AddProduct(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	vendorID, err := uuid.Parse(input.VendorID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid vendor id")
	}
	if _, err := s.vendors.GetVendor(ctx, vendorID); err != nil {
		return nil, err
	}
	gender, err := enums.ParseGender(input.Gender)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid gender")
	}
	category, err := enums.ParseProductCategory(input.Category)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
	}
	if len(input.Sizes) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one size is required")
	}

	sizes := make([]models.ProductSize, 0, len(input.Sizes))
	seen := map[string]bool{}
	for _, size := range input.Sizes {
		if seen[size.Size] {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "duplicate size label").
				WithDetails(map[string]any{"size": size.Size})
		}
		seen[size.Size] = true
		sizes = append(sizes, models.ProductSize{Size: size.Size, Quantity: size.Quantity})
	}

	product := &models.Product{
		ID:          uuid.New(),
		VendorID:    vendorID,
		Name:        input.Name,
		Gender:      gender,
		Category:    category,
		PriceCents:  input.PriceCents,
		Description: input.Description,
		Photos:      pq.StringArray(input.Photos),
		Keywords:    pq.StringArray(input.Keywords),
		Sizes:       sizes,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create product")
	}
	s.InvalidateListing(ctx)
	return product, nil
}

func (s *service) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return product, nil
}

// ListProducts serves the full catalog, preferring the redis cache when warm.
func (s *service) ListProducts(ctx context.Context) ([]models.Product, error) {
	if cached := s.readCachedListing(ctx); cached != nil {
		return cached, nil
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}

	s.writeCachedListing(ctx, products)
	return products, nil
}

func (s *service) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]models.Product, error) {
	products, err := s.repo.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list vendor products")
	}
	return products, nil
}

func (s *service) ListPurchasedBy(ctx context.Context, customerID uuid.UUID) ([]models.Product, error) {
	products, err := s.repo.ListPurchasedBy(ctx, customerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list purchased products")
	}
	return products, nil
}

func (s *service) ListLikers(ctx context.Context, productID uuid.UUID) ([]models.Customer, error) {
	customers, err := s.repo.ListLikers(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list likers")
	}
	return customers, nil
}

// InvalidateListing drops the cached catalog listing. Settlement calls this
// after stock changes so stale quantities are not served.
func (s *service) InvalidateListing(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, s.cache.CatalogKey(listingCacheKey)); err != nil && s.logg != nil {
		s.logg.Warn(ctx, "failed to invalidate catalog cache")
	}
}

func (s *service) readCachedListing(ctx context.Context) []models.Product {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, s.cache.CatalogKey(listingCacheKey))
	if err != nil {
		if !errors.Is(err, redis.Nil) && s.logg != nil {
			s.logg.Warn(ctx, "catalog cache read failed")
		}
		return nil
	}
	var products []models.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		return nil
	}
	return products
}

func (s *service) writeCachedListing(ctx context.Context, products []models.Product) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, s.cache.CatalogKey(listingCacheKey), payload, s.cacheTTL); err != nil && s.logg != nil {
		s.logg.Warn(ctx, "catalog cache write failed")
	}
}
