package graph

import (
	"github.com/google/uuid"
	"github.com/graphql-go/graphql"

	"github.com/mavazidev/mavazi-backend/internal/catalog"
	pkgerrors "github.com/mavazidev/mavazi-backend/pkg/errors"
)

func stringArg(p graphql.ResolveParams, name string) string {
	if raw, ok := p.Args[name].(string); ok {
		return raw
	}
	return ""
}

func intArg(p graphql.ResolveParams, name string) int {
	if raw, ok := p.Args[name].(int); ok {
		return raw
	}
	return 0
}

func uuidArg(p graphql.ResolveParams, name string) (uuid.UUID, error) {
	raw := stringArg(p, name)
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, name+" is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid "+name)
	}
	return id, nil
}

func optionalStringArg(p graphql.ResolveParams, name string) *string {
	if raw, ok := p.Args[name].(string); ok {
		return &raw
	}
	return nil
}

func sizeInputsArg(p graphql.ResolveParams, name string) []catalog.SizeInput {
	raw, ok := p.Args[name].([]interface{})
	if !ok {
		return nil
	}
	out := make([]catalog.SizeInput, 0, len(raw))
	for _, item := range raw {
		entry, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		size := catalog.SizeInput{}
		if s, ok := entry["size"].(string); ok {
			size.Size = s
		}
		if q, ok := entry["quantity"].(int); ok {
			size.Quantity = q
		}
		out = append(out, size)
	}
	return out
}

func stringListArg(p graphql.ResolveParams, name string) []string {
	raw, ok := p.Args[name].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
