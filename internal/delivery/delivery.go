package delivery

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mavazidev/mavazi-backend/internal/accounts"
	"github.com/mavazidev/mavazi-backend/internal/cart"
	"github.com/mavazidev/mavazi-backend/internal/settlement"
	"github.com/mavazidev/mavazi-backend/internal/transactions"
	"github.com/mavazidev/mavazi-backend/pkg/db"
	"github.com/mavazidev/mavazi-backend/pkg/db/models"
	"github.com/mavazidev/mavazi-backend/pkg/enums"
	pkgerrors "github.com/mavazidev/mavazi-backend/pkg/errors"
	"github.com/mavazidev/mavazi-backend/pkg/logger"
	"github.com/mavazidev/mavazi-backend/pkg/metrics"
)

const opMarkDelivered = "mark_delivered"

// ServiceParams groups dependencies for the delivery finalizer.
type ServiceParams struct {
	DB           *db.Client
	Purchases    *cart.Repository
	Vendors      *accounts.VendorRepository
	Transactions *transactions.Repository
	Logger       *logger.Logger
	Metrics      *metrics.SettlementMetrics
	MaxRetries   int
}

// Service finalizes settled purchases on hand-over.
type Service interface {
	MarkDelivered(ctx context.Context, purchaseID uuid.UUID) (*models.Purchase, error)
}

type service struct {
	db         *db.Client
	purchases  *cart.Repository
	vendors    *accounts.VendorRepository
	ledger     *transactions.Repository
	logg       *logger.Logger
	metrics    *metrics.SettlementMetrics
	maxRetries int
}

func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "db client is required")
	}
	if params.Purchases == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "purchase repo is required")
	}
	if params.Vendors == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor repo is required")
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
		vendors:    params.Vendors,
		ledger:     params.Transactions,
		logg:       params.Logger,
		metrics:    params.Metrics,
		maxRetries: retries,
	}, nil
}

// MarkDelivered flips a settled purchase to delivered and releases the
// vendor's escrow for that line into their spendable balance. A purchase can
// only be delivered once; a second call is rejected and moves no money.
func (s *service) MarkDelivered(ctx context.Context, purchaseID uuid.UUID) (*models.Purchase, error) {
	start := time.Now()
	purchase, err := s.markDelivered(ctx, purchaseID)
	s.metrics.ObserveDuration(opMarkDelivered, time.Since(start))
	if err != nil {
		s.metrics.IncFailure(opMarkDelivered, string(pkgerrors.As(err).Code()))
		return nil, err
	}
	s.metrics.IncSuccess(opMarkDelivered)
	return purchase, nil
}

func (s *service) markDelivered(ctx context.Context, purchaseID uuid.UUID) (*models.Purchase, error) {
	if purchaseID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "purchase id is required")
	}

	var purchase *models.Purchase
	var err error
	for attempt := 0; ; attempt++ {
		purchase = nil
		err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
			var txErr error
			purchase, txErr = s.finalize(ctx, tx, purchaseID)
			return txErr
		})
		if err == nil {
			return purchase, nil
		}
		if !db.IsSerializationFailure(err) || attempt+1 >= s.maxRetries {
			break
		}
		s.metrics.IncRetry()
		if s.logg != nil {
			s.logg.Warn(ctx, "delivery transaction conflicted, retrying")
		}
	}
	if db.IsSerializationFailure(err) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "delivery kept conflicting with concurrent writes")
	}
	return nil, err
}

func (s *service) finalize(ctx context.Context, tx *gorm.DB, purchaseID uuid.UUID) (*models.Purchase, error) {
	purchases := s.purchases.WithTx(tx)
	vendors := s.vendors.WithTx(tx)
	ledger := s.ledger.WithTx(tx)

	purchase, err := purchases.FindByID(ctx, purchaseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "purchase not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load purchase")
	}
	if !purchase.Settled() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "purchase has not been settled").
			WithDetails(map[string]any{"purchase_id": purchaseID})
	}
	if purchase.Delivered {
		return nil, pkgerrors.New(pkgerrors.CodeAlreadyDelivered, "purchase is already delivered").
			WithDetails(map[string]any{"purchase_id": purchaseID})
	}
	if purchase.Product == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "purchase points at a missing product").
			WithDetails(map[string]any{"purchase_id": purchaseID})
	}

	flipped, err := purchases.MarkDelivered(ctx, purchaseID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "flag purchase delivered")
	}
	if !flipped {
		// Another delivery won the race between our load and the update.
		return nil, pkgerrors.New(pkgerrors.CodeAlreadyDelivered, "purchase was delivered concurrently").
			WithDetails(map[string]any{"purchase_id": purchaseID})
	}

	amount := settlement.EscrowCredit(purchase.Product.PriceCents * int64(purchase.Quantity))
	vendorID := purchase.Product.VendorID
	released, err := vendors.ReleaseEscrow(ctx, vendorID, amount)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "release vendor escrow")
	}
	if !released {
		// The vendor row is gone or escrow does not cover the line. Both mean
		// the books are inconsistent with the settlement that created this
		// package, so fail loudly instead of papering over it.
		if s.logg != nil {
			entry := s.logg.WithVendorID(ctx, vendorID.String())
			s.logg.Error(entry, "escrow release failed, books are inconsistent", nil)
		}
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "vendor escrow cannot cover the delivery release").
			WithDetails(map[string]any{"vendor_id": vendorID, "amount_cents": amount})
	}

	record := &models.TransactionRecord{
		ID:              uuid.New(),
		TransactionCode: "DLV-" + purchaseID.String(),
		AmountCents:     amount,
		Name:            "escrow release on delivery",
		Type:            enums.TransactionTypeDeposit,
	}
	if err := ledger.Create(ctx, record); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record delivery transaction")
	}

	purchase.Delivered = true
	if s.logg != nil && purchase.PackageID != nil {
		s.logg.Info(s.logg.WithPackageID(ctx, purchase.PackageID.String()), "purchase delivered")
	}
	return purchase, nil
}
