package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/mavazidev/mavazi-backend/pkg/logger"
)

const requestIDHeader = "X-Request-Id"

// RequestID echoes a caller-supplied request id, or mints one, and binds it
// to the request logger. Malformed inbound ids are replaced so log fields
// stay queryable.
func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(requestIDHeader)
			if _, err := uuid.Parse(reqID); err != nil {
				reqID = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, reqID)

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithRequestID(ctx, reqID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
