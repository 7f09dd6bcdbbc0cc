package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/kelimeci/kelimeci-backend/pkg/ctxutil"
)

// RequestID propagates the inbound X-Request-Id header, generating one when
// absent, and echoes it on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		ctx := ctxutil.WithRequestID(r.Context(), id)
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
