package middleware

import (
	"context"
	"net/http"

	"github.com/jmvillal/tasktrack/internal/api/shared"
)

// RequestHeaders carries the mandatory request headers after validation.
// X-Request-Id must be a UUID; the other two only need to be present.
type RequestHeaders struct {
	RequestID   string `validate:"required,uuid4"`
	RequestDate string `validate:"required"`
	UserID      string `validate:"required"`
}

// IdentityMiddleware extracts and validates the mandatory headers and places
// the caller identity and request ID into the context. Requests missing a
// header, or carrying a malformed X-Request-Id, are rejected with 400 before
// any handler runs.
func IdentityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers := RequestHeaders{
			RequestID:   r.Header.Get("X-Request-Id"),
			RequestDate: r.Header.Get("X-Request-Date"),
			UserID:      r.Header.Get("X-User-Id"),
		}

		if err := shared.ValidateRequest(headers); err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest,
				"Missing or invalid request headers")
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, headers.UserID)
		ctx = context.WithValue(ctx, shared.RequestIDContextKey, headers.RequestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
