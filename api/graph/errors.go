package graph

import (
	pkgerrors "github.com/mavazidev/mavazi-backend/pkg/errors"
)

// resolverError carries the typed error code into GraphQL error extensions.
type resolverError struct {
	err *pkgerrors.Error
}

func (e resolverError) Error() string {
	return e.err.Message()
}

// Extensions implements gqlerrors.ExtendedError so clients see the machine
// readable code alongside the message.
func (e resolverError) Extensions() map[string]interface{} {
	meta := pkgerrors.MetadataFor(e.err.Code())
	ext := map[string]interface{}{
		"code":      string(e.err.Code()),
		"retryable": meta.Retryable,
	}
	if meta.DetailsAllowed {
		if details := e.err.Details(); details != nil {
			ext["details"] = details
		}
	}
	return ext
}

// wrapErr converts a service error into a GraphQL-presentable one. Internal
// details never leak; only the public message for opaque codes.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}
	meta := pkgerrors.MetadataFor(typed.Code())
	switch typed.Code() {
	case pkgerrors.CodeInternal, pkgerrors.CodeDependency:
		typed = pkgerrors.New(typed.Code(), meta.PublicMessage)
	}
	return resolverError{err: typed}
}
