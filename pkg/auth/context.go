package auth

import (
	"context"
)

type contextKey string

const (
	// ContextKeyAccountID is the context key for the authenticated account id
	ContextKeyAccountID contextKey = "account_id"
	// ContextKeyEmail is the context key for the authenticated account email
	ContextKeyEmail contextKey = "email"
)

// WithAccountID adds the account id to the context
func WithAccountID(ctx context.Context, accountID int64) context.Context {
	return context.WithValue(ctx, ContextKeyAccountID, accountID)
}

// AccountIDFromContext retrieves the account id from the context
func AccountIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(ContextKeyAccountID).(int64)
	return id, ok
}

// WithEmail adds the account email to the context
func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, ContextKeyEmail, email)
}

// EmailFromContext retrieves the account email from the context
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(ContextKeyEmail).(string)
	return email, ok
}
