package auth

import "context"

type contextKey string

const userIDKey contextKey = "auth_user_id"

// ContextWithUserID stores the authenticated user id on the context.
// The HTTP auth middleware calls this after verifying the access token.
func ContextWithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user id, if any
func UserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(userIDKey).(int)
	return userID, ok
}
