// Package ctxutil carries per-request identity through the context: the
// caller's user ID and the request correlation ID.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type userIDKey struct{}

type requestIDKey struct{}

// WithUserID returns a context carrying the caller's user ID.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromCtx reports the caller's user ID. The second return is false
// for anonymous requests (no ID, or a nil one).
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID returns a context carrying the request correlation ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx reports the request correlation ID, empty when absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
