package transactions

import (
	"context"

	"gorm.io/gorm"

	"github.com/mavazidev/mavazi-backend/pkg/db/models"
	"github.com/mavazidev/mavazi-backend/pkg/pagination"
)

// Repository persists the append-only transaction ledger.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// Create appends one ledger entry.
func (r *Repository) Create(ctx context.Context, record *models.TransactionRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// List returns the ledger oldest first.
func (r *Repository) List(ctx context.Context) ([]models.TransactionRecord, error) {
	var records []models.TransactionRecord
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListPage returns up to limit ledger entries after the cursor, ordered by
// (created_at, id) so the keyset is stable across entries sharing a timestamp.
func (r *Repository) ListPage(ctx context.Context, limit int, cursor *pagination.Cursor) ([]models.TransactionRecord, error) {
	query := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Limit(limit)
	if cursor != nil {
		query = query.Where(
			"created_at > ? OR (created_at = ? AND id > ?)",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
		)
	}
	var records []models.TransactionRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
