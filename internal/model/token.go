// Package model defines domain entities for the application.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Token is an opaque credential issued at login.
// A token is valid for a fixed TTL from its creation time and is
// never explicitly revoked; expired rows simply stop authenticating.
type Token struct {
	ID        uuid.UUID `json:"id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ExpiresAt returns the instant the token stops being valid.
func (t *Token) ExpiresAt(ttl time.Duration) time.Time {
	return t.CreatedAt.Add(ttl)
}

// IsExpired reports whether the token has outlived its TTL.
func (t *Token) IsExpired(ttl time.Duration) bool {
	return t.isExpiredAt(time.Now(), ttl)
}

// The boundary is inclusive: a token at exactly creation+TTL is expired.
func (t *Token) isExpiredAt(now time.Time, ttl time.Duration) bool {
	return !now.Before(t.ExpiresAt(ttl))
}
