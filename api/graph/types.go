package graph

import (
	"time"

	"github.com/graphql-go/graphql"

	"github.com/mavazidev/mavazi-backend/internal/settlement"
	"github.com/mavazidev/mavazi-backend/internal/transactions"
	"github.com/mavazidev/mavazi-backend/pkg/db/models"
	"github.com/mavazidev/mavazi-backend/pkg/enums"
)

// schemaTypes holds the object types of the schema. They reference each
// other, so construction runs in two phases: bare objects first, relation
// fields second.
type schemaTypes struct {
	gender          *graphql.Enum
	category        *graphql.Enum
	transactionType *graphql.Enum

	sizes           *graphql.Object
	customer        *graphql.Object
	vendor          *graphql.Object
	admin           *graphql.Object
	product         *graphql.Object
	purchase        *graphql.Object
	review          *graphql.Object
	transaction     *graphql.Object
	transactionPage *graphql.Object
	vendorCredit    *graphql.Object
	receipt         *graphql.Object

	sizeInput *graphql.InputObject
}

func newSchemaTypes(r *Resolver) *schemaTypes {
	t := &schemaTypes{}
	t.buildEnums()
	t.buildObjects(r)
	t.wireRelations(r)
	return t
}

func (t *schemaTypes) buildEnums() {
	genderValues := graphql.EnumValueConfigMap{}
	for _, g := range enums.Genders() {
		genderValues[string(g)] = &graphql.EnumValueConfig{Value: string(g)}
	}
	t.gender = graphql.NewEnum(graphql.EnumConfig{
		Name:   "Gender",
		Values: genderValues,
	})

	categoryValues := graphql.EnumValueConfigMap{}
	for _, c := range enums.ProductCategories() {
		categoryValues[string(c)] = &graphql.EnumValueConfig{Value: string(c)}
	}
	t.category = graphql.NewEnum(graphql.EnumConfig{
		Name:   "Category",
		Values: categoryValues,
	})

	t.transactionType = graphql.NewEnum(graphql.EnumConfig{
		Name: "TransactionType",
		Values: graphql.EnumValueConfigMap{
			"deposit":    &graphql.EnumValueConfig{Value: "deposit"},
			"withdrawal": &graphql.EnumValueConfig{Value: "withdrawal"},
		},
	})
}

func (t *schemaTypes) buildObjects(r *Resolver) {
	t.sizes = graphql.NewObject(graphql.ObjectConfig{
		Name: "SizesSchema",
		Fields: graphql.Fields{
			"size": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return sizeSource(p).Size, nil
				},
			},
			"quantity": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return sizeSource(p).Quantity, nil
				},
			},
		},
	})

	t.customer = graphql.NewObject(graphql.ObjectConfig{
		Name: "Customer",
		Fields: graphql.Fields{
			"id": idField(func(p graphql.ResolveParams) interface{} {
				return customerSource(p).ID.String()
			}),
			"phone_number": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return customerSource(p).PhoneNumber, nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return customerSource(p).Name, nil
				},
			},
			"account_balance": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return int(customerSource(p).AccountBalanceCents), nil
				},
			},
			"photo": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return derefString(customerSource(p).Photo), nil
				},
			},
			"gender": &graphql.Field{
				Type: t.gender,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return enumValue(string(customerSource(p).Gender)), nil
				},
			},
			"createdAt": timeField(func(p graphql.ResolveParams) time.Time {
				return customerSource(p).CreatedAt
			}),
		},
	})

	t.vendor = graphql.NewObject(graphql.ObjectConfig{
		Name: "Vendor",
		Fields: graphql.Fields{
			"id": idField(func(p graphql.ResolveParams) interface{} {
				return vendorSource(p).ID.String()
			}),
			"stall_name": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return vendorSource(p).StallName, nil
				},
			},
			"description": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return vendorSource(p).Description, nil
				},
			},
			"photo": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return derefString(vendorSource(p).Photo), nil
				},
			},
			"id_number": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return vendorSource(p).IDNumber, nil
				},
			},
			"phone_number": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return vendorSource(p).PhoneNumber, nil
				},
			},
			"account_balance": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return int(vendorSource(p).AccountBalanceCents), nil
				},
			},
			"escrow": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return int(vendorSource(p).EscrowCents), nil
				},
			},
			"ratings": &graphql.Field{
				Type: graphql.NewList(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					ratings := vendorSource(p).Ratings
					out := make([]int, 0, len(ratings))
					for _, rating := range ratings {
						out = append(out, int(rating))
					}
					return out, nil
				},
			},
			"createdAt": timeField(func(p graphql.ResolveParams) time.Time {
				return vendorSource(p).CreatedAt
			}),
		},
	})

	t.admin = graphql.NewObject(graphql.ObjectConfig{
		Name: "Admin",
		Fields: graphql.Fields{
			"id": idField(func(p graphql.ResolveParams) interface{} {
				return adminSource(p).ID.String()
			}),
			"username": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return adminSource(p).Username, nil
				},
			},
			"first_name": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return adminSource(p).FirstName, nil
				},
			},
			"last_name": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return adminSource(p).LastName, nil
				},
			},
			"email": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return derefString(adminSource(p).Email), nil
				},
			},
			"phone_number": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return derefString(adminSource(p).PhoneNumber), nil
				},
			},
			"photo": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return derefString(adminSource(p).Photo), nil
				},
			},
			"account_balance": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return int(adminSource(p).AccountBalanceCents), nil
				},
			},
			"monthly_reports": &graphql.Field{
				Type: graphql.Boolean,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return adminSource(p).MonthlyReports, nil
				},
			},
			"createdAt": timeField(func(p graphql.ResolveParams) time.Time {
				return adminSource(p).CreatedAt
			}),
		},
	})

	t.product = graphql.NewObject(graphql.ObjectConfig{
		Name: "Product",
		Fields: graphql.Fields{
			"id": idField(func(p graphql.ResolveParams) interface{} {
				return productSource(p).ID.String()
			}),
			"name": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return productSource(p).Name, nil
				},
			},
			"gender": &graphql.Field{
				Type: t.gender,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return enumValue(string(productSource(p).Gender)), nil
				},
			},
			"category": &graphql.Field{
				Type: t.category,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return enumValue(string(productSource(p).Category)), nil
				},
			},
			"price": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return int(productSource(p).PriceCents), nil
				},
			},
			"description": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return derefString(productSource(p).Description), nil
				},
			},
			"photos": &graphql.Field{
				Type: graphql.NewList(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return []string(productSource(p).Photos), nil
				},
			},
			"keywords": &graphql.Field{
				Type: graphql.NewList(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return []string(productSource(p).Keywords), nil
				},
			},
			"sizes": &graphql.Field{
				Type: graphql.NewList(t.sizes),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return productSource(p).Sizes, nil
				},
			},
			"quantity": &graphql.Field{
				Type:        graphql.Int,
				Description: "Total remaining stock across all sizes.",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					total := 0
					for _, size := range productSource(p).Sizes {
						total += size.Quantity
					}
					return total, nil
				},
			},
			"createdAt": timeField(func(p graphql.ResolveParams) time.Time {
				return productSource(p).CreatedAt
			}),
			"updatedAt": timeField(func(p graphql.ResolveParams) time.Time {
				return productSource(p).UpdatedAt
			}),
		},
	})

	t.purchase = graphql.NewObject(graphql.ObjectConfig{
		Name: "Purchase",
		Fields: graphql.Fields{
			"id": idField(func(p graphql.ResolveParams) interface{} {
				return purchaseSource(p).ID.String()
			}),
			"quantity": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return purchaseSource(p).Quantity, nil
				},
			},
			"size": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return purchaseSource(p).Size, nil
				},
			},
			"delivered": &graphql.Field{
				Type: graphql.Boolean,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return purchaseSource(p).Delivered, nil
				},
			},
			"package_id": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if pkg := purchaseSource(p).PackageID; pkg != nil {
						return pkg.String(), nil
					}
					return nil, nil
				},
			},
			"createdAt": timeField(func(p graphql.ResolveParams) time.Time {
				return purchaseSource(p).CreatedAt
			}),
			"updatedAt": timeField(func(p graphql.ResolveParams) time.Time {
				return purchaseSource(p).UpdatedAt
			}),
		},
	})

	t.review = graphql.NewObject(graphql.ObjectConfig{
		Name: "Review",
		Fields: graphql.Fields{
			"id": idField(func(p graphql.ResolveParams) interface{} {
				return reviewSource(p).ID.String()
			}),
			"message": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return reviewSource(p).Message, nil
				},
			},
			"createdAt": timeField(func(p graphql.ResolveParams) time.Time {
				return reviewSource(p).CreatedAt
			}),
			"updatedAt": timeField(func(p graphql.ResolveParams) time.Time {
				return reviewSource(p).UpdatedAt
			}),
		},
	})

	t.transaction = graphql.NewObject(graphql.ObjectConfig{
		Name: "Transaction",
		Fields: graphql.Fields{
			"id": idField(func(p graphql.ResolveParams) interface{} {
				return transactionSource(p).ID.String()
			}),
			"transaction_code": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return transactionSource(p).TransactionCode, nil
				},
			},
			"amount": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return int(transactionSource(p).AmountCents), nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return transactionSource(p).Name, nil
				},
			},
			"type": &graphql.Field{
				Type: t.transactionType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return string(transactionSource(p).Type), nil
				},
			},
		},
	})

	t.transactionPage = graphql.NewObject(graphql.ObjectConfig{
		Name: "TransactionPage",
		Fields: graphql.Fields{
			"items": &graphql.Field{
				Type: graphql.NewList(t.transaction),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return pageSource(p).Records, nil
				},
			},
			"next_cursor": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					page := pageSource(p)
					if page.NextCursor == "" {
						return nil, nil
					}
					return page.NextCursor, nil
				},
			},
		},
	})

	t.vendorCredit = graphql.NewObject(graphql.ObjectConfig{
		Name: "VendorCredit",
		Fields: graphql.Fields{
			"vendor_id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return creditSource(p).VendorID.String(), nil
				},
			},
			"escrow_credit": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return int(creditSource(p).EscrowCents), nil
				},
			},
		},
	})

	t.receipt = graphql.NewObject(graphql.ObjectConfig{
		Name: "PackageReceipt",
		Fields: graphql.Fields{
			"package_id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return receiptSource(p).PackageID.String(), nil
				},
			},
			"customer_id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return receiptSource(p).CustomerID.String(), nil
				},
			},
			"total": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return int(receiptSource(p).TotalCents), nil
				},
			},
			"purchase_ids": &graphql.Field{
				Type: graphql.NewList(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					ids := receiptSource(p).PurchaseIDs
					out := make([]string, 0, len(ids))
					for _, id := range ids {
						out = append(out, id.String())
					}
					return out, nil
				},
			},
			"vendor_credits": &graphql.Field{
				Type: graphql.NewList(t.vendorCredit),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return receiptSource(p).VendorCredits, nil
				},
			},
		},
	})

	t.sizeInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "SizeInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"size":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"quantity": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
	})
}

// wireRelations adds the cross-entity fields after every object exists.
func (t *schemaTypes) wireRelations(r *Resolver) {
	t.customer.AddFieldConfig("starred", &graphql.Field{
		Type: graphql.NewList(t.product),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return customerSource(p).Starred, nil
		},
	})
	t.customer.AddFieldConfig("subscriptions", &graphql.Field{
		Type: graphql.NewList(t.vendor),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return customerSource(p).Subscriptions, nil
		},
	})
	t.customer.AddFieldConfig("purchases", &graphql.Field{
		Type: graphql.NewList(t.purchase),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			out, err := r.cart.ListByCustomer(p.Context, customerSource(p).ID)
			return out, wrapErr(err)
		},
	})
	t.customer.AddFieldConfig("basket", &graphql.Field{
		Type: graphql.NewList(t.purchase),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			out, err := r.cart.ListBasket(p.Context, customerSource(p).ID)
			return out, wrapErr(err)
		},
	})

	t.vendor.AddFieldConfig("subscribers", &graphql.Field{
		Type: graphql.NewList(t.customer),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			out, err := r.accounts.ListSubscribers(p.Context, vendorSource(p).ID)
			return out, wrapErr(err)
		},
	})
	t.vendor.AddFieldConfig("products", &graphql.Field{
		Type: graphql.NewList(t.product),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			out, err := r.catalog.ListByVendor(p.Context, vendorSource(p).ID)
			return out, wrapErr(err)
		},
	})
	t.vendor.AddFieldConfig("sales", &graphql.Field{
		Type: graphql.NewList(t.purchase),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			out, err := r.cart.ListSoldByVendor(p.Context, vendorSource(p).ID)
			return out, wrapErr(err)
		},
	})

	t.product.AddFieldConfig("vendor", &graphql.Field{
		Type: t.vendor,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			product := productSource(p)
			if product.Vendor != nil {
				return product.Vendor, nil
			}
			out, err := r.accounts.GetVendor(p.Context, product.VendorID)
			return out, wrapErr(err)
		},
	})
	t.product.AddFieldConfig("liked_by", &graphql.Field{
		Type: graphql.NewList(t.customer),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			out, err := r.catalog.ListLikers(p.Context, productSource(p).ID)
			return out, wrapErr(err)
		},
	})
	t.product.AddFieldConfig("buyers", &graphql.Field{
		Type: graphql.NewList(t.purchase),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			out, err := r.cart.ListByProduct(p.Context, productSource(p).ID)
			return out, wrapErr(err)
		},
	})
	t.product.AddFieldConfig("reviews", &graphql.Field{
		Type: graphql.NewList(t.review),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			out, err := r.reviews.ListByProduct(p.Context, productSource(p).ID)
			return out, wrapErr(err)
		},
	})

	t.purchase.AddFieldConfig("product", &graphql.Field{
		Type: t.product,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			purchase := purchaseSource(p)
			if purchase.Product != nil {
				return purchase.Product, nil
			}
			out, err := r.catalog.GetProduct(p.Context, purchase.ProductID)
			return out, wrapErr(err)
		},
	})
	t.purchase.AddFieldConfig("customer", &graphql.Field{
		Type: t.customer,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			purchase := purchaseSource(p)
			if purchase.Customer != nil {
				return purchase.Customer, nil
			}
			out, err := r.accounts.GetCustomer(p.Context, purchase.CustomerID)
			return out, wrapErr(err)
		},
	})
	t.purchase.AddFieldConfig("pickup", &graphql.Field{
		Type: t.vendor,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			purchase := purchaseSource(p)
			if purchase.PickupVendorID == nil {
				return nil, nil
			}
			if purchase.PickupVendor != nil {
				return purchase.PickupVendor, nil
			}
			out, err := r.accounts.GetVendor(p.Context, *purchase.PickupVendorID)
			return out, wrapErr(err)
		},
	})

	t.review.AddFieldConfig("product", &graphql.Field{
		Type: t.product,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			review := reviewSource(p)
			if review.Product != nil {
				return review.Product, nil
			}
			out, err := r.catalog.GetProduct(p.Context, review.ProductID)
			return out, wrapErr(err)
		},
	})
	t.review.AddFieldConfig("customer", &graphql.Field{
		Type: t.customer,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			review := reviewSource(p)
			if review.Customer != nil {
				return review.Customer, nil
			}
			out, err := r.accounts.GetCustomer(p.Context, review.CustomerID)
			return out, wrapErr(err)
		},
	})
}

func idField(resolve func(graphql.ResolveParams) interface{}) *graphql.Field {
	return &graphql.Field{
		Type: graphql.NewNonNull(graphql.ID),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return resolve(p), nil
		},
	}
}

func timeField(extract func(graphql.ResolveParams) time.Time) *graphql.Field {
	return &graphql.Field{
		Type: graphql.String,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			ts := extract(p)
			if ts.IsZero() {
				return nil, nil
			}
			return ts.UTC().Format(time.RFC3339), nil
		},
	}
}

func enumValue(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}

func derefString(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}

func customerSource(p graphql.ResolveParams) *models.Customer {
	switch v := p.Source.(type) {
	case *models.Customer:
		return v
	case models.Customer:
		return &v
	}
	return &models.Customer{}
}

func vendorSource(p graphql.ResolveParams) *models.Vendor {
	switch v := p.Source.(type) {
	case *models.Vendor:
		return v
	case models.Vendor:
		return &v
	}
	return &models.Vendor{}
}

func adminSource(p graphql.ResolveParams) *models.Admin {
	switch v := p.Source.(type) {
	case *models.Admin:
		return v
	case models.Admin:
		return &v
	}
	return &models.Admin{}
}

func productSource(p graphql.ResolveParams) *models.Product {
	switch v := p.Source.(type) {
	case *models.Product:
		return v
	case models.Product:
		return &v
	}
	return &models.Product{}
}

func purchaseSource(p graphql.ResolveParams) *models.Purchase {
	switch v := p.Source.(type) {
	case *models.Purchase:
		return v
	case models.Purchase:
		return &v
	}
	return &models.Purchase{}
}

func reviewSource(p graphql.ResolveParams) *models.Review {
	switch v := p.Source.(type) {
	case *models.Review:
		return v
	case models.Review:
		return &v
	}
	return &models.Review{}
}

func transactionSource(p graphql.ResolveParams) *models.TransactionRecord {
	switch v := p.Source.(type) {
	case *models.TransactionRecord:
		return v
	case models.TransactionRecord:
		return &v
	}
	return &models.TransactionRecord{}
}

func pageSource(p graphql.ResolveParams) *transactions.Page {
	switch v := p.Source.(type) {
	case *transactions.Page:
		return v
	case transactions.Page:
		return &v
	}
	return &transactions.Page{}
}

func sizeSource(p graphql.ResolveParams) *models.ProductSize {
	switch v := p.Source.(type) {
	case *models.ProductSize:
		return v
	case models.ProductSize:
		return &v
	}
	return &models.ProductSize{}
}

func receiptSource(p graphql.ResolveParams) *settlement.Receipt {
	switch v := p.Source.(type) {
	case *settlement.Receipt:
		return v
	case settlement.Receipt:
		return &v
	}
	return &settlement.Receipt{}
}

func creditSource(p graphql.ResolveParams) *settlement.VendorCredit {
	switch v := p.Source.(type) {
	case *settlement.VendorCredit:
		return v
	case settlement.VendorCredit:
		return &v
	}
	return &settlement.VendorCredit{}
}
