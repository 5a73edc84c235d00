package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Vendor represents a stall owner selling through the marketplace.
//
// AccountBalanceCents holds spendable funds; EscrowCents holds sale proceeds
// that are released only once the corresponding purchase is delivered.
type Vendor struct {
	ID                  uuid.UUID     `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	StallName           string        `gorm:"column:stall_name;not null"`
	Description         string        `gorm:"column:description"`
	Photo               *string       `gorm:"column:photo"`
	PhoneNumber         string        `gorm:"column:phone_number;not null"`
	IDNumber            string        `gorm:"column:id_number"`
	AccountBalanceCents int64         `gorm:"column:account_balance_cents;not null;default:0"`
	EscrowCents         int64         `gorm:"column:escrow_cents;not null;default:0"`
	Ratings             pq.Int64Array `gorm:"column:ratings;type:integer[]"`
	CreatedAt           time.Time     `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time     `gorm:"column:updated_at;autoUpdateTime"`
}
