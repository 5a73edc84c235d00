package models

import (
	"time"

	"github.com/google/uuid"
)

// Purchase is one cart/order line. It starts unsettled (no pickup vendor or
// package id), is stamped by settlement, and finally flagged delivered.
type Purchase struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID      uuid.UUID  `gorm:"column:product_id;type:uuid;not null"`
	CustomerID     uuid.UUID  `gorm:"column:customer_id;type:uuid;not null"`
	Quantity       int        `gorm:"column:quantity;not null;default:1"`
	Size           string     `gorm:"column:size;not null"`
	PickupVendorID *uuid.UUID `gorm:"column:pickup_vendor_id;type:uuid"`
	PackageID      *uuid.UUID `gorm:"column:package_id;type:uuid"`
	Delivered      bool       `gorm:"column:delivered;not null;default:false"`
	Product        *Product   `gorm:"foreignKey:ProductID"`
	Customer       *Customer  `gorm:"foreignKey:CustomerID"`
	PickupVendor   *Vendor    `gorm:"foreignKey:PickupVendorID"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// Settled reports whether the purchase has been through settlement.
func (p Purchase) Settled() bool {
	return p.PackageID != nil
}
