package cart

// AddToCartInput carries the fields a customer adds a product to their
// basket with. Quantity defaults to 1 when omitted.
type AddToCartInput struct {
	CustomerID string `json:"customer" validate:"required,uuid"`
	ProductID  string `json:"product" validate:"required,uuid"`
	Size       string `json:"size" validate:"required"`
	Quantity   int    `json:"quantity" validate:"gte=0"`
}
