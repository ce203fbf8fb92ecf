package shared

import (
	"context"

	"github.com/andreluoliveira82/car-api/internal/domain"
)

type contextKey string

const (
	// currentUserKey carries the authenticated user set by the auth
	// middleware.
	currentUserKey contextKey = "currentUser"

	// traceIDKey carries the per-request trace ID.
	traceIDKey contextKey = "traceID"
)

// WithCurrentUser returns a context carrying the authenticated user.
func WithCurrentUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, currentUserKey, user)
}

// CurrentUser returns the authenticated user from the context, or false when
// the request is unauthenticated.
func CurrentUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(currentUserKey).(*domain.User)
	return user, ok && user != nil
}

// WithTraceID returns a context carrying the given trace ID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// TraceID returns the trace ID from the context, or an empty string.
func TraceID(ctx context.Context) string {
	traceID, _ := ctx.Value(traceIDKey).(string)
	return traceID
}
