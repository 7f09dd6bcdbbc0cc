package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/kelimeci/kelimeci-backend/pkg/ctxutil"
)

// userIDHeader is set by the gateway in front of this service; its value is
// trusted as-is. Requests without it reach the handlers anonymous, and the
// handlers that need an identity reject them there.
const userIDHeader = "X-User-Id"

// Identity reads the gateway identity header into the request context.
// A malformed value is rejected outright rather than treated as anonymous.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(userIDHeader)
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil || id == uuid.Nil {
			http.Error(w, "invalid "+userIDHeader+" header", http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctxutil.WithUserID(r.Context(), id)))
	})
}
