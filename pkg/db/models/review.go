package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is a customer comment on a product.
type Review struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID  uuid.UUID `gorm:"column:product_id;type:uuid;not null"`
	CustomerID uuid.UUID `gorm:"column:customer_id;type:uuid;not null"`
	Message    string    `gorm:"column:message;not null"`
	Product    *Product  `gorm:"foreignKey:ProductID"`
	Customer   *Customer `gorm:"foreignKey:CustomerID"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
