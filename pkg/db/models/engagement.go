package models

import (
	"time"

	"github.com/google/uuid"
)

// CustomerSubscription records that a customer follows a vendor's stall.
type CustomerSubscription struct {
	CustomerID uuid.UUID `gorm:"column:customer_id;type:uuid;primaryKey"`
	VendorID   uuid.UUID `gorm:"column:vendor_id;type:uuid;primaryKey"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

// StarredProduct records a product saved to the customer's wishlist.
type StarredProduct struct {
	CustomerID uuid.UUID `gorm:"column:customer_id;type:uuid;primaryKey"`
	ProductID  uuid.UUID `gorm:"column:product_id;type:uuid;primaryKey"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}
