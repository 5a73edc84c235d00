package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/mavazidev/mavazi-backend/api/validators"
	"github.com/mavazidev/mavazi-backend/internal/accounts"
	"github.com/mavazidev/mavazi-backend/internal/cart"
	"github.com/mavazidev/mavazi-backend/internal/catalog"
	"github.com/mavazidev/mavazi-backend/internal/reviews"
	"github.com/mavazidev/mavazi-backend/internal/settlement"
	"github.com/mavazidev/mavazi-backend/pkg/pagination"
)

func (r *Resolver) queryType() *graphql.Object {
	t := r.types
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"getCustomers": &graphql.Field{
				Type: graphql.NewList(t.customer),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					out, err := r.accounts.ListCustomers(p.Context)
					return out, wrapErr(err)
				},
			},
			"getCustomer": &graphql.Field{
				Type: t.customer,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := uuidArg(p, "id")
					if err != nil {
						return nil, wrapErr(err)
					}
					out, err := r.accounts.GetCustomer(p.Context, id)
					return out, wrapErr(err)
				},
			},
			"getVendors": &graphql.Field{
				Type: graphql.NewList(t.vendor),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					out, err := r.accounts.ListVendors(p.Context)
					return out, wrapErr(err)
				},
			},
			"getVendor": &graphql.Field{
				Type: t.vendor,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := uuidArg(p, "id")
					if err != nil {
						return nil, wrapErr(err)
					}
					out, err := r.accounts.GetVendor(p.Context, id)
					return out, wrapErr(err)
				},
			},
			"getAdmins": &graphql.Field{
				Type: graphql.NewList(t.admin),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					out, err := r.accounts.ListAdmins(p.Context)
					return out, wrapErr(err)
				},
			},
			"getProducts": &graphql.Field{
				Type: graphql.NewList(t.product),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					out, err := r.catalog.ListProducts(p.Context)
					return out, wrapErr(err)
				},
			},
			"getProduct": &graphql.Field{
				Type: t.product,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := uuidArg(p, "id")
					if err != nil {
						return nil, wrapErr(err)
					}
					out, err := r.catalog.GetProduct(p.Context, id)
					return out, wrapErr(err)
				},
			},
			"getPurchases": &graphql.Field{
				Type: graphql.NewList(t.purchase),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					out, err := r.cart.ListPurchases(p.Context)
					return out, wrapErr(err)
				},
			},
			"getReviews": &graphql.Field{
				Type: graphql.NewList(t.review),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					out, err := r.reviews.ListReviews(p.Context)
					return out, wrapErr(err)
				},
			},
			"getTransactions": &graphql.Field{
				Type: t.transactionPage,
				Args: graphql.FieldConfigArgument{
					"limit":  &graphql.ArgumentConfig{Type: graphql.Int},
					"cursor": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					out, err := r.transactions.ListPage(p.Context, pagination.Params{
						Limit:  intArg(p, "limit"),
						Cursor: stringArg(p, "cursor"),
					})
					return out, wrapErr(err)
				},
			},
			"productsPurchasedBy": &graphql.Field{
				Type: graphql.NewList(t.product),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := uuidArg(p, "id")
					if err != nil {
						return nil, wrapErr(err)
					}
					out, err := r.catalog.ListPurchasedBy(p.Context, id)
					return out, wrapErr(err)
				},
			},
		},
	})
}

func (r *Resolver) mutationType() *graphql.Object {
	t := r.types
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"addCustomer": &graphql.Field{
				Type: t.customer,
				Args: graphql.FieldConfigArgument{
					"phone_number": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"name":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"gender":       &graphql.ArgumentConfig{Type: t.gender},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input := accounts.CreateCustomerInput{
						PhoneNumber: stringArg(p, "phone_number"),
						Name:        stringArg(p, "name"),
						Gender:      stringArg(p, "gender"),
					}
					if err := validators.ValidateStruct(input); err != nil {
						return nil, wrapErr(err)
					}
					out, err := r.accounts.CreateCustomer(p.Context, input)
					return out, wrapErr(err)
				},
			},
			"addVendor": &graphql.Field{
				Type: t.vendor,
				Args: graphql.FieldConfigArgument{
					"stall_name":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"description":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"phone_number": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"id_number":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"photo":        &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input := accounts.CreateVendorInput{
						StallName:   stringArg(p, "stall_name"),
						Description: stringArg(p, "description"),
						PhoneNumber: stringArg(p, "phone_number"),
						IDNumber:    stringArg(p, "id_number"),
						Photo:       optionalStringArg(p, "photo"),
					}
					if err := validators.ValidateStruct(input); err != nil {
						return nil, wrapErr(err)
					}
					out, err := r.accounts.CreateVendor(p.Context, input)
					return out, wrapErr(err)
				},
			},
			"addAdmin": &graphql.Field{
				Type: t.admin,
				Args: graphql.FieldConfigArgument{
					"username":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"first_name":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"last_name":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":        &graphql.ArgumentConfig{Type: graphql.String},
					"phone_number": &graphql.ArgumentConfig{Type: graphql.String},
					"photo":        &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input := accounts.CreateAdminInput{
						Username:    stringArg(p, "username"),
						FirstName:   stringArg(p, "first_name"),
						LastName:    stringArg(p, "last_name"),
						Email:       optionalStringArg(p, "email"),
						PhoneNumber: optionalStringArg(p, "phone_number"),
						Photo:       optionalStringArg(p, "photo"),
					}
					if err := validators.ValidateStruct(input); err != nil {
						return nil, wrapErr(err)
					}
					out, err := r.accounts.CreateAdmin(p.Context, input)
					return out, wrapErr(err)
				},
			},
			"addProduct": &graphql.Field{
				Type: t.product,
				Args: graphql.FieldConfigArgument{
					"vendor":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"name":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"gender":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(t.gender)},
					"category":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(t.category)},
					"sizes":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(t.sizeInput)))},
					"price":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"description": &graphql.ArgumentConfig{Type: graphql.String},
					"photos":      &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
					"keywords":    &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input := catalog.CreateProductInput{
						VendorID:    stringArg(p, "vendor"),
						Name:        stringArg(p, "name"),
						Gender:      stringArg(p, "gender"),
						Category:    stringArg(p, "category"),
						PriceCents:  int64(intArg(p, "price")),
						Description: optionalStringArg(p, "description"),
						Sizes:       sizeInputsArg(p, "sizes"),
						Photos:      stringListArg(p, "photos"),
						Keywords:    stringListArg(p, "keywords"),
					}
					if err := validators.ValidateStruct(input); err != nil {
						return nil, wrapErr(err)
					}
					out, err := r.catalog.AddProduct(p.Context, input)
					return out, wrapErr(err)
				},
			},
			"addReview": &graphql.Field{
				Type: t.review,
				Args: graphql.FieldConfigArgument{
					"product":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"customer": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"message":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input := reviews.AddReviewInput{
						ProductID:  stringArg(p, "product"),
						CustomerID: stringArg(p, "customer"),
						Message:    stringArg(p, "message"),
					}
					if err := validators.ValidateStruct(input); err != nil {
						return nil, wrapErr(err)
					}
					out, err := r.reviews.AddReview(p.Context, input)
					return out, wrapErr(err)
				},
			},
			"addToCart": &graphql.Field{
				Type: t.purchase,
				Args: graphql.FieldConfigArgument{
					"customer": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"product":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"size":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"quantity": &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input := cart.AddToCartInput{
						CustomerID: stringArg(p, "customer"),
						ProductID:  stringArg(p, "product"),
						Size:       stringArg(p, "size"),
						Quantity:   intArg(p, "quantity"),
					}
					if err := validators.ValidateStruct(input); err != nil {
						return nil, wrapErr(err)
					}
					out, err := r.cart.AddToCart(p.Context, input)
					return out, wrapErr(err)
				},
			},
			"subscribe": &graphql.Field{
				Type: t.customer,
				Args: graphql.FieldConfigArgument{
					"customer": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"vendor":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					customerID, err := uuidArg(p, "customer")
					if err != nil {
						return nil, wrapErr(err)
					}
					vendorID, err := uuidArg(p, "vendor")
					if err != nil {
						return nil, wrapErr(err)
					}
					out, err := r.social.Subscribe(p.Context, customerID, vendorID)
					return out, wrapErr(err)
				},
			},
			"star": &graphql.Field{
				Type: t.customer,
				Args: graphql.FieldConfigArgument{
					"customer": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"product":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					customerID, err := uuidArg(p, "customer")
					if err != nil {
						return nil, wrapErr(err)
					}
					productID, err := uuidArg(p, "product")
					if err != nil {
						return nil, wrapErr(err)
					}
					out, err := r.social.Star(p.Context, customerID, productID)
					return out, wrapErr(err)
				},
			},
			"like": &graphql.Field{
				Type: t.product,
				Args: graphql.FieldConfigArgument{
					"customer": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"product":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					customerID, err := uuidArg(p, "customer")
					if err != nil {
						return nil, wrapErr(err)
					}
					productID, err := uuidArg(p, "product")
					if err != nil {
						return nil, wrapErr(err)
					}
					out, err := r.social.Like(p.Context, customerID, productID)
					return out, wrapErr(err)
				},
			},
			"makeSale": &graphql.Field{
				Type: t.receipt,
				Args: graphql.FieldConfigArgument{
					"purchase_ids": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.ID)))},
					"pickup":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input := settlement.MakeSaleInput{
						PurchaseIDs:    stringListArg(p, "purchase_ids"),
						PickupVendorID: stringArg(p, "pickup"),
					}
					if err := validators.ValidateStruct(input); err != nil {
						return nil, wrapErr(err)
					}
					out, err := r.settlement.MakeSale(p.Context, input)
					return out, wrapErr(err)
				},
			},
			"markDelivered": &graphql.Field{
				Type: t.purchase,
				Args: graphql.FieldConfigArgument{
					"purchase_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					purchaseID, err := uuidArg(p, "purchase_id")
					if err != nil {
						return nil, wrapErr(err)
					}
					out, err := r.delivery.MarkDelivered(p.Context, purchaseID)
					return out, wrapErr(err)
				},
			},
		},
	})
}
