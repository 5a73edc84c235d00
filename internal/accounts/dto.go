package accounts

// CreateCustomerInput carries the fields a customer signs up with.
type CreateCustomerInput struct {
	PhoneNumber string `json:"phone_number" validate:"required,min=7"`
	Name        string `json:"name" validate:"required"`
	Gender      string `json:"gender" validate:"omitempty,oneof=MALE FEMALE UNISEX"`
}

// CreateVendorInput carries the fields a vendor signs up with.
type CreateVendorInput struct {
	StallName   string  `json:"stall_name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	PhoneNumber string  `json:"phone_number" validate:"required,min=7"`
	IDNumber    string  `json:"id_number" validate:"required"`
	Photo       *string `json:"photo"`
}

// CreateAdminInput carries the fields used when a super admin adds an admin.
type CreateAdminInput struct {
	Username    string  `json:"username" validate:"required,min=3"`
	FirstName   string  `json:"first_name" validate:"required"`
	LastName    string  `json:"last_name" validate:"required"`
	Email       *string `json:"email" validate:"omitempty,email"`
	PhoneNumber *string `json:"phone_number"`
	Photo       *string `json:"photo"`
}
