package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/mavazidev/mavazi-backend/pkg/enums"
)

// TransactionRecord is an append-only audit entry for money moving on or off
// an account: settlement debits, escrow releases, manual deposits.
type TransactionRecord struct {
	ID              uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	TransactionCode string                `gorm:"column:transaction_code;not null;uniqueIndex"`
	AmountCents     int64                 `gorm:"column:amount_cents;not null"`
	Name            string                `gorm:"column:name;not null"`
	Type            enums.TransactionType `gorm:"column:type;type:text;not null"`
	CreatedAt       time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}
