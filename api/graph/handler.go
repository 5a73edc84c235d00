package graph

import (
	"net/http"

	"github.com/graphql-go/graphql"
	gqlhandler "github.com/graphql-go/handler"
)

// NewHandler serves the schema over HTTP. GraphiQL is only exposed outside
// production.
func NewHandler(schema graphql.Schema, enableGraphiQL bool) http.Handler {
	return gqlhandler.New(&gqlhandler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: enableGraphiQL,
	})
}
