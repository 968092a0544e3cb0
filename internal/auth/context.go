// Package auth provides password hashing and request identity utilities.
package auth

import (
	"context"

	"github.com/google/uuid"
)

// Identity holds the authenticated caller resolved from a token.
// It is injected into the request context by the auth middleware.
type Identity struct {
	TokenID uuid.UUID
	UserID  int64
}

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// identityKey is the context key for storing Identity.
const identityKey contextKey = "identity"

// ContextWithIdentity adds an Identity to the context.
func ContextWithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext retrieves the Identity from the context.
// Returns nil if the request is not authenticated.
func IdentityFromContext(ctx context.Context) *Identity {
	id, ok := ctx.Value(identityKey).(*Identity)
	if !ok {
		return nil
	}
	return id
}

// UserIDFromContext is a convenience function to get the user ID from context.
// The second return value is false if the request is not authenticated.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id := IdentityFromContext(ctx)
	if id == nil {
		return 0, false
	}
	return id.UserID, true
}
