package http

import "context"

type contextKey string

const (
	userIDKey    contextKey = "user-id"
	requestIDKey contextKey = "request-id"
)

// UserIDFromContext returns the authenticated user's ID placed there by the
// auth middleware. The bool is false on routes that skipped authentication.
func UserIDFromContext(ctx context.Context) (int32, bool) {
	id, ok := ctx.Value(userIDKey).(int32)
	return id, ok
}

// RequestIDFromContext returns the request correlation ID, or "" when the
// logging middleware did not run.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
