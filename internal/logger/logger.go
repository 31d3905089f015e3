package logger

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type ctxKey struct{}

// GenerateRequestID mints a fresh ID for correlating one request's log lines.
func GenerateRequestID() string {
	return uuid.NewString()
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

// RequestIDFromContext returns the request ID stored by WithRequestID.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

// FromContext returns the default logger, tagged with the request ID when the
// context carries one.
func FromContext(ctx context.Context) *slog.Logger {
	if id, ok := RequestIDFromContext(ctx); ok {
		return slog.Default().With(ContextKeyRequestID, id)
	}
	return slog.Default()
}
