package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/mavazidev/mavazi-backend/pkg/enums"
)

// Product represents a catalog listing owned by a vendor.
type Product struct {
	ID          uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	VendorID    uuid.UUID             `gorm:"column:vendor_id;type:uuid;not null"`
	Name        string                `gorm:"column:name;not null"`
	Gender      enums.Gender          `gorm:"column:gender;type:text;not null"`
	Category    enums.ProductCategory `gorm:"column:category;type:text;not null"`
	PriceCents  int64                 `gorm:"column:price_cents;not null"`
	Description *string               `gorm:"column:description"`
	Photos      pq.StringArray        `gorm:"column:photos;type:text[]"`
	Keywords    pq.StringArray        `gorm:"column:keywords;type:text[]"`
	Vendor      *Vendor               `gorm:"foreignKey:VendorID"`
	Sizes       []ProductSize         `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}

// ProductSize tracks remaining stock for one size label of a product.
// Quantity must never go negative; settlement decrements it with a guarded
// conditional update.
type ProductSize struct {
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;primaryKey"`
	Size      string    `gorm:"column:size;primaryKey"`
	Quantity  int       `gorm:"column:quantity;not null;default:0"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// ProductLike is a set-membership row recording that a customer liked a product.
type ProductLike struct {
	ProductID  uuid.UUID `gorm:"column:product_id;type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"column:customer_id;type:uuid;primaryKey"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}
