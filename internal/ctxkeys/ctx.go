package ctxkeys

import (
	"context"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	SessionEmailKey contextKey = "session_email"
)

// SessionEmail returns the email resolved from a verified session
// token, or "" when the request carried none.
func SessionEmail(ctx context.Context) string {
	email, _ := ctx.Value(SessionEmailKey).(string)
	return email
}

func WithSessionEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, SessionEmailKey, email)
}
