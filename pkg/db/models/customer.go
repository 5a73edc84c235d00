package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/mavazidev/mavazi-backend/pkg/enums"
)

// Customer represents a marketplace buyer account.
type Customer struct {
	ID                  uuid.UUID    `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	PhoneNumber         string       `gorm:"column:phone_number;not null"`
	Name                string       `gorm:"column:name;not null"`
	Gender              enums.Gender `gorm:"column:gender;type:text"`
	AccountBalanceCents int64        `gorm:"column:account_balance_cents;not null;default:0"`
	Photo               *string      `gorm:"column:photo"`
	Starred             []Product    `gorm:"many2many:starred_products;joinForeignKey:CustomerID;joinReferences:ProductID"`
	Subscriptions       []Vendor     `gorm:"many2many:customer_subscriptions;joinForeignKey:CustomerID;joinReferences:VendorID"`
	CreatedAt           time.Time    `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time    `gorm:"column:updated_at;autoUpdateTime"`
}
