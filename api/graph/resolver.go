package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/mavazidev/mavazi-backend/internal/accounts"
	"github.com/mavazidev/mavazi-backend/internal/cart"
	"github.com/mavazidev/mavazi-backend/internal/catalog"
	"github.com/mavazidev/mavazi-backend/internal/delivery"
	"github.com/mavazidev/mavazi-backend/internal/reviews"
	"github.com/mavazidev/mavazi-backend/internal/settlement"
	"github.com/mavazidev/mavazi-backend/internal/social"
	"github.com/mavazidev/mavazi-backend/internal/transactions"
	pkgerrors "github.com/mavazidev/mavazi-backend/pkg/errors"
	"github.com/mavazidev/mavazi-backend/pkg/logger"
)

// ResolverParams groups the services the GraphQL surface exposes.
type ResolverParams struct {
	Accounts     accounts.Service
	Catalog      catalog.Service
	Cart         cart.Service
	Settlement   settlement.Service
	Delivery     delivery.Service
	Reviews      reviews.Service
	Social       social.Service
	Transactions transactions.Service
	Logger       *logger.Logger
}

// Resolver maps GraphQL fields onto the internal services. Resolvers stay
// thin: argument mapping, service call, error translation.
type Resolver struct {
	accounts     accounts.Service
	catalog      catalog.Service
	cart         cart.Service
	settlement   settlement.Service
	delivery     delivery.Service
	reviews      reviews.Service
	social       social.Service
	transactions transactions.Service
	logg         *logger.Logger

	types *schemaTypes
}

func NewResolver(params ResolverParams) (*Resolver, error) {
	if params.Accounts == nil || params.Catalog == nil || params.Cart == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "accounts, catalog, and cart services are required")
	}
	if params.Settlement == nil || params.Delivery == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "settlement and delivery services are required")
	}
	if params.Reviews == nil || params.Social == nil || params.Transactions == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "reviews, social, and transactions services are required")
	}
	r := &Resolver{
		accounts:     params.Accounts,
		catalog:      params.Catalog,
		cart:         params.Cart,
		settlement:   params.Settlement,
		delivery:     params.Delivery,
		reviews:      params.Reviews,
		social:       params.Social,
		transactions: params.Transactions,
		logg:         params.Logger,
	}
	r.types = newSchemaTypes(r)
	return r, nil
}

// Schema builds the executable schema rooted at this resolver.
func (r *Resolver) Schema() (graphql.Schema, error) {
	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    r.queryType(),
		Mutation: r.mutationType(),
	})
}
