package catalog

// SizeInput pairs one size label with its starting stock.
type SizeInput struct {
	Size     string `json:"size" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

// CreateProductInput carries the fields a vendor lists a product with.
type CreateProductInput struct {
	VendorID    string      `json:"vendor" validate:"required,uuid"`
	Name        string      `json:"name" validate:"required"`
	Gender      string      `json:"gender" validate:"required,oneof=MALE FEMALE UNISEX"`
	Category    string      `json:"category" validate:"required"`
	PriceCents  int64       `json:"price" validate:"gt=0"`
	Description *string     `json:"description"`
	Sizes       []SizeInput `json:"sizes" validate:"required,min=1,dive"`
	Photos      []string    `json:"photos"`
	Keywords    []string    `json:"keywords"`
}
