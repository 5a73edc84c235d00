package transactions

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mavazidev/mavazi-backend/pkg/db/models"
	"github.com/mavazidev/mavazi-backend/pkg/enums"
	pkgerrors "github.com/mavazidev/mavazi-backend/pkg/errors"
	"github.com/mavazidev/mavazi-backend/pkg/pagination"
)

// Page is one slice of the ledger. NextCursor is empty on the last page.
type Page struct {
	Records    []models.TransactionRecord
	NextCursor string
}

// Service records and lists ledger entries. Settlement and delivery both
// write through it inside their own transactions.
type Service interface {
	Record(ctx context.Context, name string, amountCents int64, txType enums.TransactionType) (*models.TransactionRecord, error)
	List(ctx context.Context) ([]models.TransactionRecord, error)
	ListPage(ctx context.Context, params pagination.Params) (*Page, error)
}

type service struct {
	repo *Repository
}

func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "transactions repo is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Record(ctx context.Context, name string, amountCents int64, txType enums.TransactionType) (*models.TransactionRecord, error) {
	if amountCents <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "amount must be positive")
	}
	if !txType.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid transaction type")
	}
	record := &models.TransactionRecord{
		ID:              uuid.New(),
		TransactionCode: fmt.Sprintf("TXN-%s", uuid.NewString()),
		AmountCents:     amountCents,
		Name:            name,
		Type:            txType,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record transaction")
	}
	return record, nil
}

func (s *service) List(ctx context.Context) ([]models.TransactionRecord, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list transactions")
	}
	return records, nil
}

// ListPage walks the ledger with a keyset cursor. One extra row is fetched to
// decide whether a next page exists.
func (s *service) ListPage(ctx context.Context, params pagination.Params) (*Page, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}
	limit := pagination.NormalizeLimit(params.Limit)

	records, err := s.repo.ListPage(ctx, pagination.LimitWithBuffer(params.Limit), cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list transactions")
	}

	page := &Page{Records: records}
	if len(records) > limit {
		page.Records = records[:limit]
		last := page.Records[limit-1]
		page.NextCursor = pagination.EncodeCursor(pagination.Cursor{
			CreatedAt: last.CreatedAt,
			ID:        last.ID,
		})
	}
	return page, nil
}
