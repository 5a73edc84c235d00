package settlement

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mavazidev/mavazi-backend/internal/accounts"
	"github.com/mavazidev/mavazi-backend/internal/cart"
	"github.com/mavazidev/mavazi-backend/internal/catalog"
	"github.com/mavazidev/mavazi-backend/internal/transactions"
	"github.com/mavazidev/mavazi-backend/pkg/db"
	"github.com/mavazidev/mavazi-backend/pkg/db/models"
	"github.com/mavazidev/mavazi-backend/pkg/enums"
	pkgerrors "github.com/mavazidev/mavazi-backend/pkg/errors"
	"github.com/mavazidev/mavazi-backend/pkg/logger"
	"github.com/mavazidev/mavazi-backend/pkg/metrics"
)

// escrowRate is the share of a vendor sub-total held in escrow until
// delivery. The remaining 5% is the platform fee.
var escrowRate = decimal.New(95, -2)

const opMakeSale = "make_sale"

// EscrowCredit computes the escrow amount for a sub-total in cents. The
// computation runs on decimals and truncates to whole cents.
func EscrowCredit(subtotalCents int64) int64 {
	return decimal.NewFromInt(subtotalCents).Mul(escrowRate).IntPart()
}

// VendorCredit reports the escrow credited to one vendor by a settlement.
type VendorCredit struct {
	VendorID    uuid.UUID `json:"vendor_id"`
	EscrowCents int64     `json:"escrow_cents"`
}

// Receipt summarizes one committed settlement.
type Receipt struct {
	PackageID     uuid.UUID      `json:"package_id"`
	CustomerID    uuid.UUID      `json:"customer_id"`
	TotalCents    int64          `json:"total_cents"`
	PurchaseIDs   []uuid.UUID    `json:"purchase_ids"`
	VendorCredits []VendorCredit `json:"vendor_credits"`
}

// MakeSaleInput carries the settlement request.
type MakeSaleInput struct {
	PurchaseIDs    []string `json:"purchases" validate:"required,min=1,dive,uuid"`
	PickupVendorID string   `json:"pickup" validate:"required,uuid"`
}

// ServiceParams groups dependencies for the settlement engine.
type ServiceParams struct {
	DB           *db.Client
	Purchases    *cart.Repository
	Products     *catalog.Repository
	Customers    *accounts.CustomerRepository
	Vendors      *accounts.VendorRepository
	Transactions *transactions.Repository
	Logger       *logger.Logger
	Metrics      *metrics.SettlementMetrics
	Catalog      catalog.Service
	MaxRetries   int
}

// Service settles purchase batches into packages.
type Service interface {
	MakeSale(ctx context.Context, input MakeSaleInput) (*Receipt, error)
}

type service struct {
	db         *db.Client
	purchases  *cart.Repository
	products   *catalog.Repository
	customers  *accounts.CustomerRepository
	vendors    *accounts.VendorRepository
	ledger     *transactions.Repository
	logg       *logger.Logger
	metrics    *metrics.SettlementMetrics
	catalog    catalog.Service
	maxRetries int
}

func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "db client is required")
	}
	if params.Purchases == nil || params.Products == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "purchase and product repos are required")
	}
	if params.Customers == nil || params.Vendors == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "account repos are required")
	}
	if params.Transactions == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "transactions repo is required")
	}
	retries := params.MaxRetries
	if retries < 1 {
		retries = 3
	}
	return &service{
		db:         params.DB,
		purchases:  params.Purchases,
		products:   params.Products,
		customers:  params.Customers,
		vendors:    params.Vendors,
		ledger:     params.Transactions,
		logg:       params.Logger,
		metrics:    params.Metrics,
		catalog:    params.Catalog,
		maxRetries: retries,
	}, nil
}

// MakeSale validates and settles the batch in one transaction: the customer
// is debited for the full total, each vendor's escrow is credited 95% of its
// sub-total, stock is decremented, and every purchase is stamped with the
// pickup vendor and a fresh package id. Any failure rolls the whole batch
// back. Serialization conflicts are retried a bounded number of times.
func (s *service) MakeSale(ctx context.Context, input MakeSaleInput) (*Receipt, error) {
	start := time.Now()
	receipt, err := s.makeSale(ctx, input)
	s.metrics.ObserveDuration(opMakeSale, time.Since(start))
	if err != nil {
		s.metrics.IncFailure(opMakeSale, string(pkgerrors.As(err).Code()))
		return nil, err
	}
	s.metrics.IncSuccess(opMakeSale)
	if s.catalog != nil {
		s.catalog.InvalidateListing(ctx)
	}
	return receipt, nil
}

func (s *service) makeSale(ctx context.Context, input MakeSaleInput) (*Receipt, error) {
	ids, pickupID, err := parseInput(input)
	if err != nil {
		return nil, err
	}

	var receipt *Receipt
	for attempt := 0; ; attempt++ {
		receipt = nil
		err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
			var txErr error
			receipt, txErr = s.settle(ctx, tx, ids, pickupID)
			return txErr
		})
		if err == nil {
			return receipt, nil
		}
		if !db.IsSerializationFailure(err) || attempt+1 >= s.maxRetries {
			break
		}
		s.metrics.IncRetry()
		if s.logg != nil {
			s.logg.Warn(ctx, "settlement transaction conflicted, retrying")
		}
	}
	if db.IsSerializationFailure(err) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "settlement kept conflicting with concurrent writes")
	}
	return nil, err
}

func parseInput(input MakeSaleInput) ([]uuid.UUID, uuid.UUID, error) {
	if len(input.PurchaseIDs) == 0 {
		return nil, uuid.Nil, pkgerrors.New(pkgerrors.CodeInvalidBatch, "purchase batch is empty")
	}
	pickupID, err := uuid.Parse(input.PickupVendorID)
	if err != nil {
		return nil, uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid pickup vendor id")
	}
	ids := make([]uuid.UUID, 0, len(input.PurchaseIDs))
	seen := make(map[uuid.UUID]bool, len(input.PurchaseIDs))
	for _, raw := range input.PurchaseIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid purchase id")
		}
		if seen[id] {
			return nil, uuid.Nil, pkgerrors.New(pkgerrors.CodeInvalidBatch, "duplicate purchase in batch").
				WithDetails(map[string]any{"purchase_id": id})
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, pickupID, nil
}

func (s *service) settle(ctx context.Context, tx *gorm.DB, ids []uuid.UUID, pickupID uuid.UUID) (*Receipt, error) {
	purchases := s.purchases.WithTx(tx)
	products := s.products.WithTx(tx)
	customers := s.customers.WithTx(tx)
	vendors := s.vendors.WithTx(tx)
	ledger := s.ledger.WithTx(tx)

	if _, err := vendors.FindByID(ctx, pickupID); err != nil {
		if isNotFound(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "pickup vendor not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load pickup vendor")
	}

	batch, err := purchases.FindForSettlement(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load purchase batch")
	}
	if len(batch) != len(ids) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "purchase batch contains unknown ids").
			WithDetails(map[string]any{"requested": len(ids), "found": len(batch)})
	}

	customerID, err := validateBatch(batch)
	if err != nil {
		return nil, err
	}
	if _, err := customers.FindByID(ctx, customerID); err != nil {
		if isNotFound(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customer")
	}

	var totalCents int64
	subtotals := make(map[uuid.UUID]int64)
	for _, purchase := range batch {
		ok, err := products.DecrementStock(ctx, purchase.ProductID, purchase.Size, purchase.Quantity)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reserve stock")
		}
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeInsufficientStock, "not enough stock for requested size").
				WithDetails(map[string]any{
					"product_id": purchase.ProductID,
					"size":       purchase.Size,
					"quantity":   purchase.Quantity,
				})
		}
		line := purchase.Product.PriceCents * int64(purchase.Quantity)
		totalCents += line
		subtotals[purchase.Product.VendorID] += line
	}

	ok, err := customers.DebitBalance(ctx, customerID, totalCents)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "debit customer")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeInsufficientFunds, "customer balance cannot cover the batch total").
			WithDetails(map[string]any{"customer_id": customerID, "total_cents": totalCents})
	}

	credits := make([]VendorCredit, 0, len(subtotals))
	for vendorID := range subtotals {
		credits = append(credits, VendorCredit{VendorID: vendorID})
	}
	sort.Slice(credits, func(i, j int) bool {
		return credits[i].VendorID.String() < credits[j].VendorID.String()
	})
	for i := range credits {
		credits[i].EscrowCents = EscrowCredit(subtotals[credits[i].VendorID])
		if err := vendors.CreditEscrow(ctx, credits[i].VendorID, credits[i].EscrowCents); err != nil {
			if isNotFound(err) {
				return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "product points at a missing vendor")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "credit vendor escrow")
		}
	}

	packageID := uuid.New()
	stamped, err := purchases.MarkSettled(ctx, ids, pickupID, packageID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "stamp purchases")
	}
	if stamped != int64(len(ids)) {
		// A concurrent settlement claimed part of the batch after our load.
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "purchase batch was settled concurrently").
			WithDetails(map[string]any{"stamped": stamped, "expected": len(ids)})
	}

	record := &models.TransactionRecord{
		ID:              uuid.New(),
		TransactionCode: "PKG-" + packageID.String(),
		AmountCents:     totalCents,
		Name:            "package settlement",
		Type:            enums.TransactionTypeWithdrawal,
	}
	if err := ledger.Create(ctx, record); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record settlement transaction")
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithPackageID(ctx, packageID.String()), "package settled")
	}

	return &Receipt{
		PackageID:     packageID,
		CustomerID:    customerID,
		TotalCents:    totalCents,
		PurchaseIDs:   ids,
		VendorCredits: credits,
	}, nil
}

// validateBatch checks every line is unsettled, carries its product, and that
// the whole batch belongs to one customer.
func validateBatch(batch []models.Purchase) (uuid.UUID, error) {
	customerID := uuid.Nil
	for _, purchase := range batch {
		if purchase.Settled() {
			return uuid.Nil, pkgerrors.New(pkgerrors.CodeInvalidBatch, "batch contains an already settled purchase").
				WithDetails(map[string]any{"purchase_id": purchase.ID})
		}
		if purchase.Product == nil {
			return uuid.Nil, pkgerrors.New(pkgerrors.CodeNotFound, "purchase points at a missing product").
				WithDetails(map[string]any{"purchase_id": purchase.ID})
		}
		if customerID == uuid.Nil {
			customerID = purchase.CustomerID
			continue
		}
		if purchase.CustomerID != customerID {
			return uuid.Nil, pkgerrors.New(pkgerrors.CodeInvalidBatch, "batch mixes purchases from different customers")
		}
	}
	return customerID, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
