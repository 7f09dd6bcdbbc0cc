// Package middleware holds the HTTP middleware stack: request IDs,
// access logging, panic recovery, CORS, and caller identity.
package middleware

import "net/http"

// Middleware decorates an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain folds middlewares into one. The first argument ends up outermost,
// so Chain(a, b)(h) serves a(b(h)) and a sees the request first.
func Chain(middlewares ...Middleware) Middleware {
	return func(next http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			next = middlewares[i](next)
		}
		return next
	}
}
